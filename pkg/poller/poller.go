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

// Package poller keeps service status records fresh by probing each backend's
// health endpoint on a fixed interval.
package poller

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
	"github.com/rs/zerolog"
)

const defaultInterval = 5 * time.Second

// TickMsg fires once per poll interval.
type TickMsg struct {
	At time.Time
}

// ResultMsg carries the outcome of one health probe back to the UI loop.
type ResultMsg struct {
	Service string
	Payload *models.HealthPayload
	Err     error
	At      time.Time
}

// Poller owns the status records of a fixed set of services. All methods
// except the probes themselves run on the UI loop.
type Poller struct {
	checkers map[string]Checker
	order    []string
	statuses map[string]*models.ServiceStatus
	interval time.Duration
	clock    Clock
	ticker   Ticker
	done     chan struct{}
	submit   Submitter
	logger   zerolog.Logger
}

// Option configures a Poller.
type Option func(*Poller)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(p *Poller) {
		p.clock = c
	}
}

// New creates a poller for the given checkers. Every status starts as unknown.
func New(interval time.Duration, submit Submitter, log logger.Logger, checkers []Checker, opts ...Option) (*Poller, error) {
	if len(checkers) == 0 {
		return nil, errNoCheckers
	}

	if interval <= 0 {
		interval = defaultInterval
	}

	p := &Poller{
		checkers: make(map[string]Checker, len(checkers)),
		statuses: make(map[string]*models.ServiceStatus, len(checkers)),
		interval: interval,
		clock:    realClock{},
		submit:   submit,
		logger:   log.WithComponent("poller"),
	}

	for _, opt := range opts {
		opt(p)
	}

	for _, c := range checkers {
		name := c.Name()
		if _, dup := p.checkers[name]; dup {
			return nil, fmt.Errorf("duplicate checker %q", name)
		}

		p.checkers[name] = c
		p.order = append(p.order, name)
		p.statuses[name] = models.NewServiceStatus(name)
	}

	return p, nil
}

// Start probes every service immediately and arms the interval ticker.
func (p *Poller) Start() tea.Cmd {
	if p.ticker == nil {
		p.ticker = p.clock.Ticker(p.interval)
		p.done = make(chan struct{})
	}

	p.pollAll()

	return p.wait()
}

// Stop releases the ticker and ends a pending wait for the next tick.
func (p *Poller) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		close(p.done)
	}
}

func (p *Poller) wait() tea.Cmd {
	ticker, done := p.ticker, p.done
	if ticker == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case at := <-ticker.Chan():
			return TickMsg{At: at}
		case <-done:
			return nil
		}
	}
}

// Update consumes poller messages. On a tick it submits a probe per service
// and always re-arms the next tick. On a result it updates the matching status
// record and returns it.
func (p *Poller) Update(msg tea.Msg) (tea.Cmd, *models.ServiceStatus) {
	switch msg := msg.(type) {
	case TickMsg:
		p.pollAll()

		return p.wait(), nil
	case ResultMsg:
		st, ok := p.statuses[msg.Service]
		if !ok {
			return nil, nil
		}

		if msg.Err != nil {
			p.logger.Debug().Str("service", msg.Service).Err(msg.Err).Msg("Health check failed")
		}

		st.Apply(msg.Payload, msg.Err, msg.At)

		out := *st

		return nil, &out
	}

	return nil, nil
}

// Poll submits a probe for one service outside the regular schedule.
func (p *Poller) Poll(name string) error {
	c, ok := p.checkers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownService, name)
	}

	return p.probe(c)
}

func (p *Poller) pollAll() {
	for _, name := range p.order {
		if err := p.probe(p.checkers[name]); err != nil {
			p.logger.Debug().Str("service", name).Err(err).Msg("Health probe not scheduled")
		}
	}
}

func (p *Poller) probe(c Checker) error {
	name := c.Name()

	_, err := p.submit.Submit("health "+name, func(ctx context.Context, _ tasks.Report) (tea.Msg, error) {
		payload, err := c.HealthCheck(ctx)

		return ResultMsg{Service: name, Payload: payload, Err: err, At: p.clock.Now()}, nil
	})

	return err
}

// MarkStopped records a confirmed stop of a service.
func (p *Poller) MarkStopped(name string) {
	if st, ok := p.statuses[name]; ok {
		st.MarkStopped(p.clock.Now())
	}
}

// Status returns a copy of one status record.
func (p *Poller) Status(name string) (models.ServiceStatus, bool) {
	st, ok := p.statuses[name]
	if !ok {
		return models.ServiceStatus{}, false
	}

	return *st, true
}

// Statuses returns copies of all records in registration order.
func (p *Poller) Statuses() []models.ServiceStatus {
	out := make([]models.ServiceStatus, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, *p.statuses[name])
	}

	return out
}

// Connected reports whether every polled service currently answers.
func (p *Poller) Connected() bool {
	for _, st := range p.statuses {
		if !st.Status.Connected() {
			return false
		}
	}

	return true
}

// Interval returns the poll interval.
func (p *Poller) Interval() time.Duration {
	return p.interval
}
