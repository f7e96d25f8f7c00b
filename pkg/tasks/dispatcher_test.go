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

package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultMsg struct{ value int }

func next(t *testing.T, d *Dispatcher) tea.Msg {
	t.Helper()

	ch := make(chan tea.Msg, 1)
	go func() { ch <- d.Listen()() }()

	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for task message")
		return nil
	}
}

func nextDone(t *testing.T, d *Dispatcher) DoneMsg {
	t.Helper()

	for {
		if done, ok := next(t, d).(DoneMsg); ok {
			return done
		}
	}
}

func TestSubmit_DeliversResult(t *testing.T) {
	d := NewDispatcher(2, logger.NewTestLogger())
	defer func() { _ = d.Shutdown(context.Background()) }()

	h, err := d.Submit("answer", func(context.Context, Report) (tea.Msg, error) {
		return resultMsg{value: 42}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "answer", h.Name)

	done := nextDone(t, d)
	assert.Equal(t, h.ID, done.Handle.ID)
	require.NoError(t, done.Err)
	assert.Equal(t, resultMsg{value: 42}, done.Msg)
	assert.True(t, IsTaskMsg(done))
}

func TestSubmit_ErrorAndPanic(t *testing.T) {
	d := NewDispatcher(1, logger.NewTestLogger())
	defer func() { _ = d.Shutdown(context.Background()) }()

	boom := errors.New("boom")

	_, err := d.Submit("fails", func(context.Context, Report) (tea.Msg, error) {
		return nil, boom
	})
	require.NoError(t, err)

	done := nextDone(t, d)
	require.ErrorIs(t, done.Err, boom)

	_, err = d.Submit("panics", func(context.Context, Report) (tea.Msg, error) {
		panic("unexpected")
	})
	require.NoError(t, err)

	done = nextDone(t, d)
	require.ErrorIs(t, done.Err, errTaskPanic)
	assert.Contains(t, done.Err.Error(), "panics")
}

func TestSubmit_BoundsConcurrency(t *testing.T) {
	const workers = 2

	d := NewDispatcher(workers, logger.NewTestLogger())
	defer func() { _ = d.Shutdown(context.Background()) }()

	var running, peak atomic.Int32

	release := make(chan struct{})

	for i := 0; i < 6; i++ {
		_, err := d.Submit("slow", func(context.Context, Report) (tea.Msg, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			<-release
			running.Add(-1)

			return nil, nil
		})
		require.NoError(t, err)
	}

	time.Sleep(100 * time.Millisecond)
	close(release)

	for i := 0; i < 6; i++ {
		nextDone(t, d)
	}

	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.Zero(t, d.Pending())
}

func TestProgressPrecedesDone(t *testing.T) {
	d := NewDispatcher(1, logger.NewTestLogger())
	defer func() { _ = d.Shutdown(context.Background()) }()

	_, err := d.Submit("download", func(_ context.Context, report Report) (tea.Msg, error) {
		report(10, 100)
		return nil, nil
	})
	require.NoError(t, err)

	first := next(t, d)
	progress, ok := first.(ProgressMsg)
	require.True(t, ok, "expected progress before completion, got %T", first)
	assert.Equal(t, int64(10), progress.Done)
	assert.Equal(t, int64(100), progress.Total)

	nextDone(t, d)
}

func TestShutdown(t *testing.T) {
	d := NewDispatcher(1, logger.NewTestLogger())

	started := make(chan struct{})

	_, err := d.Submit("blocks", func(ctx context.Context, _ Report) (tea.Msg, error) {
		close(started)
		<-ctx.Done()

		return nil, ctx.Err()
	})
	require.NoError(t, err)

	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, d.Shutdown(ctx))

	_, err = d.Submit("late", func(context.Context, Report) (tea.Msg, error) { return nil, nil })
	require.ErrorIs(t, err, ErrDispatcherClosed)

	assert.Nil(t, d.Listen()())
}

func TestSubmit_NilFunc(t *testing.T) {
	d := NewDispatcher(1, logger.NewTestLogger())
	defer func() { _ = d.Shutdown(context.Background()) }()

	_, err := d.Submit("nil", nil)
	assert.ErrorIs(t, err, errNilTask)
}
