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

// Package admin implements the admin console: service health and lifecycle,
// configuration file editing, the audit log and local host usage.
package admin

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/files"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/poller"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

const (
	Title = "Clara Admin"

	viewServices = "services"
	viewConfig   = "config"
	viewAudit    = "audit"
	viewHost     = "host"
)

// Paths locates the local files the console works on.
type Paths struct {
	ConfigDir string
	AuditLog  string
}

type options struct {
	sampler    HostSampler
	pollerOpts []poller.Option
}

// Option configures a Console.
type Option func(*options)

// WithHostSampler replaces the gopsutil sampler.
func WithHostSampler(s HostSampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithPollerOptions passes options through to the health poller.
func WithPollerOptions(opts ...poller.Option) Option {
	return func(o *options) {
		o.pollerOpts = append(o.pollerOpts, opts...)
	}
}

type lifecycleMsg struct {
	verb string
	name string
}

type hostMsg struct {
	sample HostSample
	err    error
}

var (
	_ shell.Feature       = (*Console)(nil)
	_ shell.Content       = (*Console)(nil)
	_ shell.Closer        = (*Console)(nil)
	_ shell.InputCapturer = (*Console)(nil)
)

// Console is the admin console.
type Console struct {
	*console.Base

	lifecycle Lifecycle
	sampler   HostSampler
	paths     Paths

	services *widgets.ResourceList
	cfg      *configView
	audit    *auditView
	host     *hostView
	view     string

	width  int
	height int
}

// New builds the admin console. checkers probe the services lifecycle manages;
// their names must match the service names.
func New(lc Lifecycle, checkers []poller.Checker, settings console.Settings, paths Paths, log logger.Logger, opts ...Option) (*Console, error) {
	o := options{sampler: NewHostSampler()}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := console.NewBase("admin-console", settings.PollInterval, settings.Workers, log, checkers, o.pollerOpts...)
	if err != nil {
		return nil, err
	}

	c := &Console{
		Base:      base,
		lifecycle: lc,
		sampler:   o.sampler,
		paths:     paths,
		services: widgets.NewResourceList([]widgets.Column{
			{Title: "Service", Width: 16},
			{Title: "Port", Width: 7},
			{Title: "Status", Width: 10},
			{Title: "Last check", Width: 10},
			{Title: "Version", Width: 12},
			{Title: "Detail", Width: 40},
		}),
		cfg:   newConfigView(paths.ConfigDir, files.ConfigFile{}),
		audit: newAuditView(paths.AuditLog),
		host:  &hostView{},
		view:  viewServices,
	}

	c.rebuildServices()
	c.OnClose(c.cfg.stopWatch)

	return c, nil
}

func (c *Console) PopulateToolbar(tb *shell.Toolbar) {
	tb.Add(shell.Left,
		shell.NewAction("refresh", "refresh", []string{"r"}, c.refresh),
		shell.NewAction("start", "start", []string{"s"}, c.start),
		shell.NewAction("stop", "stop", []string{"x"}, c.confirmStop),
		shell.NewAction("restart", "restart", []string{"R"}, c.confirmRestart),
	)
	tb.Add(shell.Right,
		shell.NewAction("reload", "reload file", []string{"L"}, c.reloadConfig),
		shell.NewAction("level", "level filter", []string{"v"}, c.cycleLevel),
	)
}

func (c *Console) PopulateSidebar(sb *shell.Sidebar) {
	sb.SetTitle("Admin")
	sb.Add(viewServices, "Services")
	sb.Add(viewConfig, "Configuration")
	sb.Add(viewAudit, "Audit log")
	sb.Add(viewHost, "Host")
}

func (c *Console) PopulateContent(s *shell.Shell) (shell.Content, error) {
	c.Attach(s)
	return c, nil
}

func (c *Console) Init() tea.Cmd {
	return c.Base.Init()
}

func (c *Console) CapturingInput() bool {
	return c.cfg.editing() || c.services.Filtering() || c.cfg.entries.Filtering() || c.audit.list.Filtering()
}

// Services exposes the service table.
func (c *Console) Services() *widgets.ResourceList {
	return c.services
}

func (c *Console) CurrentView() string {
	return c.view
}

// rebuildServices renders the poller's records next to the configured ports.
func (c *Console) rebuildServices() {
	ports := make(map[string]int)
	for _, svc := range c.lifecycle.Services() {
		ports[svc.Name] = svc.Port
	}

	statuses := c.Poller.Statuses()
	items := make([]widgets.Item, 0, len(statuses))

	for _, st := range statuses {
		port, checked, version, detail := "-", "-", "", st.Error

		if p, ok := ports[st.Service]; ok && p > 0 {
			port = fmt.Sprint(p)
		}

		if !st.CheckedAt.IsZero() {
			checked = st.CheckedAt.Format("15:04:05")
		}

		if st.Payload != nil {
			version = st.Payload.Version
		}

		items = append(items, widgets.Item{
			ID:     st.Service,
			Name:   st.Service,
			Status: string(st.Status),
			Cells:  []string{st.Service, port, string(st.Status), checked, version, detail},
			Value:  st,
		})
	}

	c.services.SetItems(c.services.NextSeq(), items)
}

func (c *Console) selectedService() (string, bool) {
	it, ok := c.services.Selected()
	if !ok {
		c.Shell.Info("No service selected", "Select a service on the Services view first.")
		return "", false
	}

	return it.ID, true
}

func (c *Console) refresh() tea.Cmd {
	for _, st := range c.Poller.Statuses() {
		if err := c.Poller.Poll(st.Service); err != nil {
			c.Logger.Debug().Str("service", st.Service).Err(err).Msg("Manual poll not scheduled")
		}
	}

	switch c.view {
	case viewAudit:
		c.loadAudit()
	case viewHost:
		c.sampleHost()
	case viewConfig:
		c.browse()
	}

	c.Shell.SetStatus("Refreshing...")

	return nil
}

func (c *Console) start() tea.Cmd {
	name, ok := c.selectedService()
	if !ok {
		return nil
	}

	c.Shell.SetStatus("Starting " + name + "...")
	c.runLifecycle("start "+name, "Started", name, c.lifecycle.Start)

	return nil
}

func (c *Console) confirmStop() tea.Cmd {
	name, ok := c.selectedService()
	if !ok {
		return nil
	}

	c.Shell.Confirm(fmt.Sprintf("Stop service %s?", name), func() tea.Cmd {
		c.Shell.SetStatus("Stopping " + name + "...")
		c.runLifecycle("stop "+name, "Stopped", name, c.lifecycle.Stop)

		return nil
	}, nil)

	return nil
}

func (c *Console) confirmRestart() tea.Cmd {
	name, ok := c.selectedService()
	if !ok {
		return nil
	}

	c.Shell.Confirm(fmt.Sprintf("Restart service %s?", name), func() tea.Cmd {
		c.Shell.SetStatus("Restarting " + name + "...")
		c.runLifecycle("restart "+name, "Restarted", name, c.lifecycle.Restart)

		return nil
	}, nil)

	return nil
}

func (c *Console) runLifecycle(task, verb, name string, fn func(context.Context, string) error) {
	c.Submit(task, func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		if err := fn(ctx, name); err != nil {
			return nil, err
		}

		return lifecycleMsg{verb: verb, name: name}, nil
	})
}

func (c *Console) sampleHost() {
	c.Submit("host stats", func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		s, err := c.sampler.Sample(ctx)
		return hostMsg{sample: s, err: err}, nil
	})
}

func (c *Console) cycleLevel() tea.Cmd {
	level := c.audit.list.CycleStatus()
	if level == "" {
		level = "all"
	}

	c.Shell.SetStatus("Audit level: " + level)

	return nil
}
