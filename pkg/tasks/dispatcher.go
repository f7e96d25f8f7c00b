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

// Package tasks runs background work off the UI loop and hands results back to it.
//
// Work is submitted to a Dispatcher, which bounds concurrency with a weighted
// semaphore. Completions and progress reports are queued on a single channel
// that the bubbletea program drains through the command returned by Listen,
// so widget state is only ever touched from the update loop.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

const (
	defaultWorkers = 4
	queueSize      = 64
)

// Report publishes progress of a running task.
type Report func(done, total int64)

// Func is a unit of background work. The returned message is delivered to the
// UI loop wrapped in a DoneMsg.
type Func func(ctx context.Context, report Report) (tea.Msg, error)

// Handle identifies a submitted task.
type Handle struct {
	ID        uuid.UUID
	Name      string
	Submitted time.Time
}

// ProgressMsg is emitted when a task reports progress.
type ProgressMsg struct {
	Handle Handle
	Done   int64
	Total  int64
}

// DoneMsg is emitted exactly once per task.
type DoneMsg struct {
	Handle  Handle
	Msg     tea.Msg
	Err     error
	Elapsed time.Duration
}

// Dispatcher is a bounded pool of background tasks.
type Dispatcher struct {
	sem    *semaphore.Weighted
	msgs   chan tea.Msg
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger zerolog.Logger

	mu      sync.Mutex
	closed  bool
	pending atomic.Int64
}

// NewDispatcher creates a dispatcher running at most workers tasks at once.
func NewDispatcher(workers int, log logger.Logger) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		sem:    semaphore.NewWeighted(int64(workers)),
		msgs:   make(chan tea.Msg, queueSize),
		ctx:    ctx,
		cancel: cancel,
		logger: log.WithComponent("tasks"),
	}
}

// Submit schedules fn and returns its handle immediately.
func (d *Dispatcher) Submit(name string, fn Func) (Handle, error) {
	if fn == nil {
		return Handle{}, errNilTask
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return Handle{}, ErrDispatcherClosed
	}

	h := Handle{ID: uuid.New(), Name: name, Submitted: time.Now()}

	d.wg.Add(1)
	d.pending.Add(1)

	go d.run(h, fn)

	return h, nil
}

func (d *Dispatcher) run(h Handle, fn Func) {
	defer d.wg.Done()
	defer d.pending.Add(-1)

	if err := d.sem.Acquire(d.ctx, 1); err != nil {
		d.logger.Debug().Str("task", h.Name).Err(err).Msg("Task dropped before start")
		return
	}
	defer d.sem.Release(1)

	start := time.Now()
	msg, err := d.invoke(h, fn)

	done := DoneMsg{Handle: h, Msg: msg, Err: err, Elapsed: time.Since(start)}

	if err != nil {
		d.logger.Debug().Str("task", h.Name).Err(err).Dur("elapsed", done.Elapsed).Msg("Task failed")
	}

	select {
	case d.msgs <- done:
	case <-d.ctx.Done():
	}
}

func (d *Dispatcher) invoke(h Handle, fn Func) (msg tea.Msg, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Str("task", h.Name).Interface("panic", r).Msg("Recovered task panic")
			err = fmt.Errorf("%w: %s: %v", errTaskPanic, h.Name, r)
		}
	}()

	report := func(done, total int64) {
		// progress is lossy; only completions must arrive
		select {
		case d.msgs <- ProgressMsg{Handle: h, Done: done, Total: total}:
		default:
		}
	}

	return fn(d.ctx, report)
}

// Listen returns the command that delivers the next task message to the UI
// loop. The receiver must call Listen again after handling each message.
func (d *Dispatcher) Listen() tea.Cmd {
	return func() tea.Msg {
		if d.ctx.Err() != nil {
			return nil
		}

		select {
		case msg := <-d.msgs:
			return msg
		case <-d.ctx.Done():
			return nil
		}
	}
}

// Pending returns the number of tasks submitted but not yet delivered.
func (d *Dispatcher) Pending() int {
	return int(d.pending.Load())
}

// Shutdown rejects new work, cancels the shared context and waits for
// in-flight tasks until ctx expires.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.cancel()

	waited := make(chan struct{})

	go func() {
		d.wg.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for %d tasks: %w", d.Pending(), ctx.Err())
	}
}

// IsTaskMsg reports whether msg was produced by a dispatcher.
func IsTaskMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case DoneMsg, ProgressMsg:
		return true
	default:
		return false
	}
}
