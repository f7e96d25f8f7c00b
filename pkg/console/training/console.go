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

// Package training implements the training-job console: the job list with
// server-side status filtering, job detail with metric sparklines, the new
// job form, exports and the live event log.
package training

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/poller"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

const (
	Title = "Clara Training"

	viewJobs   = "jobs"
	viewDetail = "detail"
	viewNew    = "new"
	viewEvents = "events"

	fieldPriority = "priority"

	maxEventLines = 500
	eventBuffer   = 64
)

var (
	_ shell.Feature       = (*Console)(nil)
	_ shell.Content       = (*Console)(nil)
	_ shell.Closer        = (*Console)(nil)
	_ shell.InputCapturer = (*Console)(nil)
)

// Console is the training-job console. It implements shell.Feature and is
// also the shell's content.
type Console struct {
	*console.Base

	backend   Backend
	exportDir string

	jobs    *widgets.ResourceList
	detail  *widgets.DetailView
	form    *widgets.Form
	events  *widgets.DetailView
	lines   []string
	view    string
	format  string
	current string

	streamGen    int
	streamCancel context.CancelFunc

	width  int
	height int
}

// New builds the console for one training backend.
func New(backend Backend, settings console.Settings, log logger.Logger, opts ...poller.Option) (*Console, error) {
	base, err := console.NewBase("training-console", settings.PollInterval, settings.Workers, log,
		[]poller.Checker{backend}, opts...)
	if err != nil {
		return nil, err
	}

	c := &Console{
		Base:      base,
		backend:   backend,
		exportDir: settings.ExportDir,
		jobs: widgets.NewResourceList([]widgets.Column{
			{Title: "ID", Width: 24},
			{Title: "Type", Width: 12},
			{Title: "Status", Width: 11},
			{Title: "Progress", Width: 9},
			{Title: "Created", Width: 20},
		},
			widgets.WithStatuses(models.JobStatuses...),
			widgets.WithServerStatusFilter(),
		),
		detail: widgets.NewDetailView(),
		form: widgets.NewForm("New training job",
			widgets.Field{Key: api.FieldJobType, Label: "Job type", Placeholder: "lora", Required: true},
			widgets.Field{Key: api.FieldConfig, Label: "Config path", Placeholder: "configs/lora.yaml", Required: true},
			widgets.Field{Key: api.FieldDatasetID, Label: "Dataset id"},
			widgets.Field{Key: fieldPriority, Label: "Priority", Placeholder: "0"},
		),
		events: widgets.NewDetailView(),
		view:   viewJobs,
		format: console.ExportFormats[0],
	}

	c.OnClose(c.stopStream)

	return c, nil
}

func (c *Console) PopulateToolbar(tb *shell.Toolbar) {
	tb.Add(shell.Left,
		shell.NewAction("refresh", "refresh", []string{"r"}, func() tea.Cmd { return c.refresh(true) }),
		shell.NewAction("new", "new job", []string{"n"}, func() tea.Cmd { return c.Shell.Navigate(viewNew) }),
		shell.NewAction("cancel", "cancel", []string{"c"}, c.confirmCancel),
		shell.NewAction("delete", "delete", []string{"d"}, c.confirmDelete),
		shell.NewAction("status", "status filter", []string{"s"}, c.cycleStatus),
	)
	tb.Add(shell.Right,
		shell.NewAction("export", "export", []string{"e"}, c.export),
		shell.NewAction("format", "format", []string{"f"}, c.cycleFormat),
		shell.NewAction("copy", "copy id", []string{"y"}, c.copyID),
		shell.NewAction("events", "live events", []string{"L"}, c.toggleStream),
	)
}

func (c *Console) PopulateSidebar(sb *shell.Sidebar) {
	sb.SetTitle("Training")
	sb.Add(viewJobs, "Jobs")
	sb.Add(viewDetail, "Detail")
	sb.Add(viewNew, "New job")
	sb.Add(viewEvents, "Live events")
}

func (c *Console) PopulateContent(s *shell.Shell) (shell.Content, error) {
	c.Attach(s)
	return c, nil
}

func (c *Console) Init() tea.Cmd {
	return tea.Batch(c.Base.Init(), c.refresh(false))
}

// CapturingInput is true while the form or the list filter is being edited.
func (c *Console) CapturingInput() bool {
	return c.form.Active() || c.jobs.Filtering()
}

// Jobs exposes the job list.
func (c *Console) Jobs() *widgets.ResourceList {
	return c.jobs
}

// CurrentView returns the id of the visible view.
func (c *Console) CurrentView() string {
	return c.view
}

// Format is the export format the next export uses.
func (c *Console) Format() string {
	return c.format
}

// EventLines returns the live event log.
func (c *Console) EventLines() []string {
	return c.lines
}

func (c *Console) refresh(manual bool) tea.Cmd {
	seq := c.jobs.NextSeq()
	status := c.jobs.StatusFilter()

	c.Submit("refresh jobs", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		jobs, err := c.backend.ListJobs(ctx, status)
		return jobsMsg{seq: seq, manual: manual, jobs: jobs, err: err}, nil
	})

	return nil
}

func (c *Console) selected() (widgets.Item, bool) {
	it, ok := c.jobs.Selected()
	if !ok {
		c.Shell.Info("No job selected", "Select a job in the list first.")
	}

	return it, ok
}

func (c *Console) confirmCancel() tea.Cmd {
	it, ok := c.selected()
	if !ok {
		return nil
	}

	c.Shell.Confirm(fmt.Sprintf("Cancel training job %s?", it.ID), func() tea.Cmd {
		c.Submit("cancel job", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
			if _, err := c.backend.CancelJob(ctx, it.ID); err != nil {
				return nil, err
			}

			return actionMsg{verb: "Cancelled", id: it.ID}, nil
		})

		return nil
	}, nil)

	return nil
}

func (c *Console) confirmDelete() tea.Cmd {
	it, ok := c.selected()
	if !ok {
		return nil
	}

	c.Shell.Confirm(fmt.Sprintf("Delete training job %s?", it.ID), func() tea.Cmd {
		c.Submit("delete job", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
			if _, err := c.backend.DeleteJob(ctx, it.ID); err != nil {
				return nil, err
			}

			return actionMsg{verb: "Deleted", id: it.ID}, nil
		})

		return nil
	}, nil)

	return nil
}

func (c *Console) cycleStatus() tea.Cmd {
	status := c.jobs.CycleStatus()
	if status == "" {
		c.Shell.SetStatus("Showing all jobs")
	} else {
		c.Shell.SetStatus("Showing " + status + " jobs")
	}

	return c.refresh(true)
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

	dst := filepath.Join(c.exportDir, fmt.Sprintf("job-%s.%s", it.ID, c.format))
	c.StartExport("job "+it.ID, it.ID, c.format, dst, c.backend.ExportJob)

	return nil
}

func (c *Console) copyID() tea.Cmd {
	if it, ok := c.selected(); ok {
		c.CopyID(it.ID)
	}

	return nil
}

func (c *Console) openDetail(id string) {
	c.current = id
	c.detail.SetContent("Loading " + id + "...")

	c.Submit("load job", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		job, err := c.backend.GetJob(ctx, id)
		if err != nil {
			return nil, err
		}

		metrics, err := c.backend.JobMetrics(ctx, id)
		if err != nil && !api.IsNotFound(err) {
			c.Logger.Debug().Str("job", id).Err(err).Msg("Metrics unavailable")
		}

		return detailMsg{job: job, metrics: metrics}, nil
	})
}

func (c *Console) submitForm() tea.Cmd {
	if missing := c.form.Missing(); len(missing) > 0 {
		c.Shell.Warn("Invalid input", strings.Join(missing, ", ")+" required")
		return nil
	}

	values := c.form.Values()

	params := api.JobParams{
		JobType:    values[api.FieldJobType],
		ConfigPath: values[api.FieldConfig],
		DatasetID:  values[api.FieldDatasetID],
	}

	if raw := values[fieldPriority]; raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.Shell.Warn("Invalid input", "priority must be a whole number")
			return nil
		}

		params.Priority = n
	}

	c.form.Blur()

	c.Submit("create job", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		ack, err := c.backend.CreateJob(ctx, params)
		if err != nil {
			return nil, err
		}

		return createdMsg{ack: ack}, nil
	})

	return nil
}
