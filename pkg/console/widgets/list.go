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

// Package widgets holds the components the consoles compose their views from.
package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
)

const (
	timeLayout   = "15:04:05"
	footerHeight = 2
)

// Column is a table column.
type Column struct {
	Title string
	Width int
}

// Item is one row of a ResourceList. Cells are displayed verbatim.
type Item struct {
	ID     string
	Name   string
	Status string
	Cells  []string
	Value  interface{}
}

// ListOption configures a ResourceList.
type ListOption func(*ResourceList)

// WithStatuses sets the values the status filter cycles through.
func WithStatuses(statuses ...string) ListOption {
	return func(l *ResourceList) {
		l.statuses = statuses
	}
}

// WithServerStatusFilter marks the status filter as applied by the backend;
// the list then does not filter on status itself.
func WithServerStatusFilter() ListOption {
	return func(l *ResourceList) {
		l.serverStatus = true
	}
}

// WithClock replaces time.Now for the staleness footer.
func WithClock(now func() time.Time) ListOption {
	return func(l *ResourceList) {
		l.now = now
	}
}

// ResourceList is a table over the last fetched items with a free-text
// filter, an optional status filter, a selection and a staleness marker.
// Refreshes are numbered; a response older than the newest applied one is
// discarded.
type ResourceList struct {
	table        table.Model
	columns      []Column
	items        []Item
	visible      []Item
	filter       textinput.Model
	filtering    bool
	statusFilter string
	statuses     []string
	serverStatus bool
	selected     bool

	issued  uint64
	applied uint64
	lastOK  time.Time
	lastErr error
	loaded  bool

	now    func() time.Time
	width  int
	height int
}

// NewResourceList builds an empty list.
func NewResourceList(columns []Column, opts ...ListOption) *ResourceList {
	cols := make([]table.Column, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, table.Column{Title: c.Title, Width: c.Width})
	}

	t := table.New(table.WithColumns(cols), table.WithFocused(true))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = shell.Theme.Selected
	t.SetStyles(styles)

	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "filter"
	in.CharLimit = 128

	l := &ResourceList{
		table:    t,
		columns:  columns,
		filter:   in,
		selected: true,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NextSeq numbers a new refresh request.
func (l *ResourceList) NextSeq() uint64 {
	l.issued++
	return l.issued
}

// SetItems replaces the rows with the result of refresh seq. It returns false
// and changes nothing when a newer refresh has already been applied.
func (l *ResourceList) SetItems(seq uint64, items []Item) bool {
	if seq < l.applied {
		return false
	}

	var keep string
	if it, ok := l.Selected(); ok {
		keep = it.ID
	}

	l.applied = seq
	l.items = items
	l.lastOK = l.now()
	l.lastErr = nil
	l.loaded = true

	l.apply()

	if keep != "" {
		l.focusID(keep)
	}

	return true
}

// SetError records a failed refresh. Rows stay as they are and the footer
// shows them as stale.
func (l *ResourceList) SetError(seq uint64, err error) bool {
	if seq < l.applied {
		return false
	}

	l.applied = seq
	l.lastErr = err

	return true
}

// Stale reports whether the latest refresh failed.
func (l *ResourceList) Stale() bool {
	return l.lastErr != nil
}

// LastSuccess is the time of the last applied refresh.
func (l *ResourceList) LastSuccess() time.Time {
	return l.lastOK
}

// Items returns all rows of the last fetch in their original order.
func (l *ResourceList) Items() []Item {
	return l.items
}

// Visible returns the rows that pass the current filters.
func (l *ResourceList) Visible() []Item {
	return l.visible
}

// Rows returns the displayed cells of the visible rows.
func (l *ResourceList) Rows() [][]string {
	out := make([][]string, 0, len(l.visible))
	for _, it := range l.visible {
		out = append(out, it.Cells)
	}

	return out
}

// Header returns the column titles.
func (l *ResourceList) Header() []string {
	out := make([]string, 0, len(l.columns))
	for _, c := range l.columns {
		out = append(out, c.Title)
	}

	return out
}

// SetFilter sets the free-text filter, matched case-insensitively against
// name and id.
func (l *ResourceList) SetFilter(text string) {
	l.filter.SetValue(text)
	l.apply()
}

func (l *ResourceList) Filter() string {
	return l.filter.Value()
}

// ClearFilter drops the text filter and restores every row in original order.
func (l *ResourceList) ClearFilter() {
	l.filter.SetValue("")
	l.filtering = false
	l.filter.Blur()
	l.apply()
}

// SetStatusFilter restricts rows to one status; "" shows all.
func (l *ResourceList) SetStatusFilter(status string) {
	l.statusFilter = status
	l.apply()
}

func (l *ResourceList) StatusFilter() string {
	return l.statusFilter
}

// CycleStatus advances the status filter through "" and the configured
// statuses and returns the new value.
func (l *ResourceList) CycleStatus() string {
	options := append([]string{""}, l.statuses...)

	next := 0

	for i, s := range options {
		if s == l.statusFilter {
			next = (i + 1) % len(options)
			break
		}
	}

	l.SetStatusFilter(options[next])

	return l.statusFilter
}

// Selected returns the row under the cursor unless the selection was cleared.
func (l *ResourceList) Selected() (Item, bool) {
	if !l.selected || len(l.visible) == 0 {
		return Item{}, false
	}

	c := l.table.Cursor()
	if c < 0 || c >= len(l.visible) {
		return Item{}, false
	}

	return l.visible[c], true
}

// ClearSelection drops the selection until the cursor moves again.
func (l *ResourceList) ClearSelection() {
	l.selected = false
}

// Select moves the cursor to the row with id.
func (l *ResourceList) Select(id string) bool {
	if !l.focusID(id) {
		return false
	}

	l.selected = true

	return true
}

// Filtering reports whether the filter input has focus.
func (l *ResourceList) Filtering() bool {
	return l.filtering
}

func (l *ResourceList) focusID(id string) bool {
	for i, it := range l.visible {
		if it.ID == id {
			l.table.SetCursor(i)
			return true
		}
	}

	return false
}

func (l *ResourceList) apply() {
	needle := strings.ToLower(strings.TrimSpace(l.filter.Value()))

	visible := make([]Item, 0, len(l.items))

	for _, it := range l.items {
		if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}

		if l.statusFilter != "" && !l.serverStatus && !strings.EqualFold(it.Status, l.statusFilter) {
			continue
		}

		visible = append(visible, it)
	}

	l.visible = visible

	rows := make([]table.Row, 0, len(visible))
	for _, it := range visible {
		rows = append(rows, table.Row(it.Cells))
	}

	l.table.SetRows(rows)

	if c := l.table.Cursor(); c >= len(rows) {
		l.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Update handles filter editing and cursor movement.
func (l *ResourceList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if l.filtering {
		switch keyMsg.Type {
		case tea.KeyEnter:
			l.filtering = false
			l.filter.Blur()

			return nil
		case tea.KeyEsc:
			l.ClearFilter()
			return nil
		}

		var cmd tea.Cmd
		l.filter, cmd = l.filter.Update(msg)
		l.apply()

		return cmd
	}

	switch keyMsg.String() {
	case "/":
		l.filtering = true
		return l.filter.Focus()
	case "esc":
		if l.filter.Value() != "" {
			l.ClearFilter()
			return nil
		}

		l.ClearSelection()

		return nil
	}

	before := l.table.Cursor()

	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)

	if l.table.Cursor() != before || keyMsg.String() == "enter" || isMove(keyMsg.String()) {
		l.selected = true
	}

	return cmd
}

func isMove(k string) bool {
	switch k {
	case "up", "down", "k", "j", "pgup", "pgdown", "home", "end", "g", "G":
		return true
	}

	return false
}

// SetSize fits the table into the given area.
func (l *ResourceList) SetSize(width, height int) {
	l.width, l.height = width, height

	l.table.SetWidth(width)
	l.table.SetHeight(max(height-footerHeight, 3))
}

// View renders the table and its footer.
func (l *ResourceList) View() string {
	var body string

	switch {
	case !l.loaded && l.lastErr != nil:
		body = shell.Theme.Error.Render("Could not load: " + l.lastErr.Error())
	case !l.loaded:
		body = shell.Theme.Help.Render("Loading...")
	case len(l.items) == 0:
		body = shell.Theme.Help.Render("No entries.")
	default:
		body = l.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, l.footer())
}

func (l *ResourceList) footer() string {
	parts := []string{fmt.Sprintf("%d of %d", len(l.visible), len(l.items))}

	if l.filtering {
		parts = append(parts, l.filter.View())
	} else if v := l.filter.Value(); v != "" {
		parts = append(parts, fmt.Sprintf("filter %q", v))
	}

	if l.statusFilter != "" {
		parts = append(parts, "status "+l.statusFilter)
	}

	if l.lastErr != nil && l.loaded {
		return shell.Theme.Warning.Render(strings.Join(append(parts, "stale since "+l.lastOK.Format(timeLayout)), " • "))
	}

	if l.loaded {
		parts = append(parts, "updated "+l.lastOK.Format(timeLayout))
	}

	return shell.Theme.Help.Render(strings.Join(parts, " • "))
}
