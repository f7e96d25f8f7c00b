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

// Package console holds the plumbing shared by the admin, dataset and
// training consoles: routing task and poller messages, the connection
// indicator, error presentation and the export flow.
package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/files"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/poller"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Settings are the runtime knobs every console takes from the config file.
type Settings struct {
	PollInterval time.Duration
	Workers      int
	ExportDir    string
}

// Base is embedded by every console.
type Base struct {
	Shell   *shell.Shell
	Tasks   *tasks.Dispatcher
	Poller  *poller.Poller
	Overlay *widgets.ProgressOverlay
	Logger  zerolog.Logger
	stopped bool
	onClose []func()
}

// NewBase wires a dispatcher and a poller over the given checkers.
func NewBase(component string, interval time.Duration, workers int, log logger.Logger, checkers []poller.Checker, opts ...poller.Option) (*Base, error) {
	d := tasks.NewDispatcher(workers, log)

	p, err := poller.New(interval, d, log, checkers, opts...)
	if err != nil {
		_ = d.Shutdown(context.Background())
		return nil, err
	}

	return &Base{
		Tasks:   d,
		Poller:  p,
		Overlay: widgets.NewProgressOverlay(),
		Logger:  log.WithComponent(component),
	}, nil
}

// Attach binds the shell; consoles call it from PopulateContent.
func (b *Base) Attach(s *shell.Shell) {
	b.Shell = s
}

// Init starts draining task results and polling.
func (b *Base) Init() tea.Cmd {
	return tea.Batch(b.Tasks.Listen(), b.Poller.Start())
}

// OnClose registers cleanup run by Close before the dispatcher stops.
func (b *Base) OnClose(fn func()) {
	b.onClose = append(b.onClose, fn)
}

// Close stops polling and waits for background work.
func (b *Base) Close() error {
	if b.stopped {
		return nil
	}

	b.stopped = true

	for _, fn := range b.onClose {
		fn()
	}

	b.Poller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return b.Tasks.Shutdown(ctx)
}

// Submit runs fn on the dispatcher. A refused submission is shown as an error.
func (b *Base) Submit(name string, fn tasks.Func) (tasks.Handle, bool) {
	h, err := b.Tasks.Submit(name, fn)
	if err != nil {
		b.Shell.Error("Cannot run "+name, err.Error())
		return tasks.Handle{}, false
	}

	return h, true
}

// Update handles dispatcher and poller messages. It returns the message the
// console should act on (a task's result, or msg itself) and a command.
func (b *Base) Update(msg tea.Msg) (tea.Msg, tea.Cmd) {
	switch msg := msg.(type) {
	case tasks.DoneMsg:
		if b.Overlay.Owns(msg.Handle.ID) {
			b.Overlay.Hide()
		}

		if msg.Err != nil {
			b.ReportError(msg.Handle.Name, msg.Err)
			return nil, b.Tasks.Listen()
		}

		if export, ok := msg.Msg.(ExportDoneMsg); ok {
			b.finishExport(export)
			return nil, b.Tasks.Listen()
		}

		inner, cmd := b.Update(msg.Msg)

		return inner, tea.Batch(cmd, b.Tasks.Listen())
	case tasks.ProgressMsg:
		b.Overlay.Set(msg.Handle.ID, msg.Done, msg.Total)
		return nil, b.Tasks.Listen()
	case poller.TickMsg:
		cmd, _ := b.Poller.Update(msg)
		return msg, cmd
	case poller.ResultMsg:
		cmd, _ := b.Poller.Update(msg)
		b.refreshConnection()

		return msg, cmd
	}

	return msg, nil
}

func (b *Base) refreshConnection() {
	statuses := b.Poller.Statuses()

	up := 0

	for _, st := range statuses {
		if st.Status.Connected() {
			up++
		}
	}

	connected := up == len(statuses)

	var text string

	if len(statuses) == 1 {
		state := "Disconnected"
		if connected {
			state = "Connected"
		}

		text = fmt.Sprintf("%s: %s", state, statuses[0].Service)
	} else {
		text = fmt.Sprintf("%d/%d services up", up, len(statuses))
	}

	b.Shell.SetConnection(text, connected)
}

// ReportError presents err according to its kind: validation problems as a
// warning, unreachable services and server rejections as error dialogs.
func (b *Base) ReportError(action string, err error) {
	var (
		te *api.TransportError
		ae *api.APIError
		ve *api.ValidationError
	)

	b.Logger.Warn().Str("action", action).Err(err).Msg("Action failed")

	title := capitalize(action) + " failed"

	switch {
	case errors.As(err, &ve):
		b.Shell.Warn("Invalid input", ve.Error())
	case errors.Is(err, files.ErrInvalidYAML), errors.Is(err, files.ErrInvalidJSON):
		b.Shell.Warn("Invalid content", err.Error())
	case errors.As(err, &te):
		b.Shell.Error(title, fmt.Sprintf("Cannot reach %s: %v", te.Service, te.Err))
	case errors.As(err, &ae):
		b.Shell.Error(title, ae.Message)
	default:
		b.Shell.Error(title, err.Error())
	}

	b.Shell.SetStatus(title)
}

// CopyID puts a resource id on the clipboard.
func (b *Base) CopyID(id string) {
	if err := widgets.CopyToClipboard(id); err != nil {
		b.Shell.Error("Copy failed", err.Error())
		return
	}

	b.Shell.SetStatus("Copied " + id)
}

// Overlaid renders the progress overlay on top of view when it is visible.
func (b *Base) Overlaid(view string, width, height int) string {
	if !b.Overlay.Visible() {
		return view
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.Overlay.View())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
