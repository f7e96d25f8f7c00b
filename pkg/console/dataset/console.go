/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package dataset implements the data-preparation console.
package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/files"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/poller"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

const (
	Title = "Clara Datasets"

	viewList   = "datasets"
	viewDetail = "detail"
	viewNew    = "new"
)

type listMsg struct {
	seq    uint64
	manual bool
	sets   []models.DatasetSummary
	err    error
}

type detailMsg struct {
	set *models.DatasetDetail
}

type deletedMsg struct {
	id, name string
}

type createdMsg struct {
	ack  *models.CreateAck
	name string
}

type savedMsg struct {
	path string
	rows int
}

var (
	_ shell.Feature       = (*Console)(nil)
	_ shell.Content       = (*Console)(nil)
	_ shell.Closer        = (*Console)(nil)
	_ shell.InputCapturer = (*Console)(nil)
)

// Console is the dataset console.
type Console struct {
	*console.Base

	backend   Backend
	exportDir string

	list    *widgets.ResourceList
	detail  *widgets.DetailView
	form    *widgets.Form
	view    string
	format  string
	current string

	width  int
	height int
}

func New(backend Backend, settings console.Settings, log logger.Logger, opts ...poller.Option) (*Console, error) {
	base, err := console.NewBase("dataset-console", settings.PollInterval, settings.Workers, log,
		[]poller.Checker{backend}, opts...)
	if err != nil {
		return nil, err
	}

	return &Console{
		Base:      base,
		backend:   backend,
		exportDir: settings.ExportDir,
		list: widgets.NewResourceList([]widgets.Column{
			{Title: "Name", Width: 28},
			{Title: "Status", Width: 11},
			{Title: "Documents", Width: 12},
			{Title: "Size", Width: 10},
			{Title: "Created", Width: 20},
		}, widgets.WithStatuses(models.DatasetStatuses...)),
		detail: widgets.NewDetailView(),
		form: widgets.NewForm("New dataset",
			widgets.Field{Key: api.FieldName, Label: "Name", Required: true},
			widgets.Field{Key: api.FieldSourcePath, Label: "Source path", Placeholder: "data/raw/corpus", Required: true},
			widgets.Field{Key: api.FieldDescription, Label: "Description"},
		),
		view:   viewList,
		format: console.ExportFormats[0],
	}, nil
}

func (c *Console) PopulateToolbar(tb *shell.Toolbar) {
	tb.Add(shell.Left,
		shell.NewAction("refresh", "refresh", []string{"r"}, func() tea.Cmd { return c.refresh(true) }),
		shell.NewAction("new", "new dataset", []string{"n"}, func() tea.Cmd { return c.Shell.Navigate(viewNew) }),
		shell.NewAction("delete", "delete", []string{"d"}, c.confirmDelete),
		shell.NewAction("status", "status filter", []string{"s"}, c.cycleStatus),
	)
	tb.Add(shell.Right,
		shell.NewAction("export", "export", []string{"e"}, c.export),
		shell.NewAction("format", "format", []string{"f"}, c.cycleFormat),
		shell.NewAction("save", "save table", []string{"w"}, c.saveTable),
		shell.NewAction("copy", "copy id", []string{"y"}, c.copyID),
	)
}

func (c *Console) PopulateSidebar(sb *shell.Sidebar) {
	sb.SetTitle("Datasets")
	sb.Add(viewList, "Datasets")
	sb.Add(viewDetail, "Detail")
	sb.Add(viewNew, "New dataset")
}

func (c *Console) PopulateContent(s *shell.Shell) (shell.Content, error) {
	c.Attach(s)
	return c, nil
}

func (c *Console) Init() tea.Cmd {
	return tea.Batch(c.Base.Init(), c.refresh(false))
}

func (c *Console) CapturingInput() bool {
	return c.form.Active() || c.list.Filtering()
}

// Datasets exposes the dataset list.
func (c *Console) Datasets() *widgets.ResourceList {
	return c.list
}

func (c *Console) CurrentView() string {
	return c.view
}

func (c *Console) Format() string {
	return c.format
}

func (c *Console) refresh(manual bool) tea.Cmd {
	seq := c.list.NextSeq()

	c.Submit("refresh datasets", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		sets, err := c.backend.ListDatasets(ctx)
		return listMsg{seq: seq, manual: manual, sets: sets, err: err}, nil
	})

	return nil
}

func (c *Console) selected() (widgets.Item, bool) {
	it, ok := c.list.Selected()
	if !ok {
		c.Shell.Info("No dataset selected", "Select a dataset in the list first.")
	}

	return it, ok
}

func (c *Console) confirmDelete() tea.Cmd {
	it, ok := c.selected()
	if !ok {
		return nil
	}

	c.Shell.Confirm(fmt.Sprintf("Delete dataset %q (%s)?", it.Name, it.ID), func() tea.Cmd {
		c.Submit("delete dataset", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
			if _, err := c.backend.DeleteDataset(ctx, it.ID); err != nil {
				return nil, err
			}

			return deletedMsg{id: it.ID, name: it.Name}, nil
		})

		return nil
	}, nil)

	return nil
}

// cycleStatus filters the rows already loaded; no request is made.
func (c *Console) cycleStatus() tea.Cmd {
	if status := c.list.CycleStatus(); status != "" {
		c.Shell.SetStatus("Showing " + status + " datasets")
	} else {
		c.Shell.SetStatus("Showing all datasets")
	}

	return nil
}

func (c *Console) cycleFormat() tea.Cmd {
	c.format = console.NextFormat(c.format)
	c.Shell.SetStatus("Export format: " + c.format)

	return nil
}

func (c *Console) export() tea.Cmd {
	it, ok := c.selected()
	if !ok {
		return nil
	}

	dst := filepath.Join(c.exportDir, fmt.Sprintf("%s.%s", safeName(it.Name, it.ID), c.format))
	c.StartExport("dataset "+it.Name, it.ID, c.format, dst, c.backend.ExportDataset)

	return nil
}

func (c *Console) copyID() tea.Cmd {
	if it, ok := c.selected(); ok {
		c.CopyID(it.ID)
	}

	return nil
}

// saveTable writes the visible rows to a local file. A .jsonl destination
// gets the full records, anything else the displayed cells as CSV.
func (c *Console) saveTable() tea.Cmd {
	header := c.list.Header()
	rows := c.list.Rows()

	visible := c.list.Visible()
	records := make([]models.DatasetSummary, 0, len(visible))

	for _, it := range visible {
		if set, ok := it.Value.(models.DatasetSummary); ok {
			records = append(records, set)
		}
	}

	c.Shell.Prompt("Save table to", filepath.Join(c.exportDir, "datasets.csv"), func(dst string) tea.Cmd {
		dst = strings.TrimSpace(dst)
		if dst == "" {
			c.Shell.Warn("Invalid input", "destination is required")
			return nil
		}

		c.Submit("save table", func(context.Context, tasks.Report) (tea.Msg, error) {
			var err error

			if strings.EqualFold(filepath.Ext(dst), ".jsonl") {
				err = files.WriteJSONL(dst, records)
			} else {
				err = files.WriteCSV(dst, header, rows)
			}

			if err != nil {
				return nil, err
			}

			return savedMsg{path: dst, rows: len(rows)}, nil
		})

		return nil
	})

	return nil
}

func (c *Console) openDetail(id string) {
	c.current = id
	c.detail.SetContent("Loading...")

	c.Submit("load dataset", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		set, err := c.backend.GetDataset(ctx, id)
		if err != nil {
			return nil, err
		}

		return detailMsg{set: set}, nil
	})
}

func (c *Console) submitForm() tea.Cmd {
	if missing := c.form.Missing(); len(missing) > 0 {
		c.Shell.Warn("Invalid input", strings.Join(missing, ", ")+" required")
		return nil
	}

	values := c.form.Values()
	params := api.DatasetParams{
		Name:        values[api.FieldName],
		SourcePath:  values[api.FieldSourcePath],
		Description: values[api.FieldDescription],
	}

	c.form.Blur()

	c.Submit("create dataset", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		ack, err := c.backend.CreateDataset(ctx, params)
		if err != nil {
			return nil, err
		}

		return createdMsg{ack: ack, name: params.Name}, nil
	})

	return nil
}

func (c *Console) Update(msg tea.Msg) tea.Cmd {
	msg, baseCmd := c.Base.Update(msg)

	return tea.Batch(baseCmd, c.update(msg))
}

func (c *Console) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nil:
	case poller.TickMsg:
		return c.refresh(false)
	case shell.NavigateMsg:
		return c.navigate(msg.ID)
	case listMsg:
		c.applyList(msg)
	case detailMsg:
		if msg.set != nil && msg.set.ID == c.current {
			if err := c.detail.SetJSON(msg.set); err != nil {
				c.detail.SetContent(err.Error())
			}
		}
	case deletedMsg:
		c.list.ClearSelection()
		c.Shell.SetStatus(fmt.Sprintf("Deleted dataset %s", msg.name))

		return c.refresh(false)
	case createdMsg:
		c.form.Reset()
		c.Shell.SetStatus(fmt.Sprintf("Created dataset %s (%s)", msg.name, msg.ack.ID))

		return tea.Batch(c.Shell.Navigate(viewList), c.refresh(false))
	case savedMsg:
		c.Shell.SetStatus(fmt.Sprintf("Saved %d rows to %s", msg.rows, msg.path))
	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return nil
}

func (c *Console) navigate(id string) tea.Cmd {
	c.view = id

	if id == viewNew {
		return c.form.Focus()
	}

	c.form.Blur()

	if id == viewDetail {
		if it, ok := c.list.Selected(); ok && it.ID != c.current {
			c.openDetail(it.ID)
		}
	}

	return nil
}

func (c *Console) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch c.view {
	case viewNew:
		if !c.form.Active() {
			if msg.String() == "enter" {
				return c.form.Focus()
			}

			return nil
		}

		submitted, cmd := c.form.Update(msg)
		if submitted {
			return tea.Batch(cmd, c.submitForm())
		}

		return cmd
	case viewDetail:
		if msg.String() == "esc" {
			return c.Shell.Navigate(viewList)
		}

		return c.detail.Update(msg)
	}

	if msg.String() == "enter" && !c.list.Filtering() {
		if it, ok := c.list.Selected(); ok {
			c.openDetail(it.ID)
			return c.Shell.Navigate(viewDetail)
		}
	}

	return c.list.Update(msg)
}

func (c *Console) applyList(msg listMsg) {
	if msg.err != nil {
		if !c.list.SetError(msg.seq, msg.err) {
			return
		}

		if msg.manual {
			c.ReportError("refresh datasets", msg.err)
		} else {
			c.Shell.SetStatus("Refresh failed: " + msg.err.Error())
		}

		return
	}

	items := make([]widgets.Item, 0, len(msg.sets))
	for _, d := range msg.sets {
		items = append(items, widgets.Item{ID: d.ID, Name: d.Name, Status: d.Status, Cells: d.Row(), Value: d})
	}

	if c.list.SetItems(msg.seq, items) && msg.manual {
		c.Shell.SetStatus(fmt.Sprintf("Loaded %d datasets", len(items)))
	}
}

func (c *Console) SetSize(width, height int) {
	c.width, c.height = width, height

	c.list.SetSize(width, height-1)
	c.detail.SetSize(width, height-1)
}

func (c *Console) View() string {
	var title, body string

	switch c.view {
	case viewDetail:
		title = "Dataset detail"
		if c.current == "" {
			body = shell.Theme.Help.Render("Open a dataset from the list with enter.")
		} else {
			body = c.detail.View()
		}
	case viewNew:
		title = "New dataset"
		body = c.form.View()
	default:
		title = "Datasets  " + shell.Theme.Help.Render("export format "+c.format)
		body = c.list.View()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, shell.Theme.Title.Render(title), body)

	return c.Overlaid(view, c.width, c.height)
}

// safeName turns a dataset name into a file name, falling back to id.
func safeName(name, id string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		case r == ' ':
			return '_'
		}

		return -1
	}, name)

	if strings.Trim(out, "._") == "" {
		return id
	}

	return out
}
