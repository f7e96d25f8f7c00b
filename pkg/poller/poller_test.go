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

package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// syncSubmitter runs tasks inline and keeps their messages.
type syncSubmitter struct {
	msgs []tea.Msg
	err  error
}

func (s *syncSubmitter) Submit(name string, fn tasks.Func) (tasks.Handle, error) {
	if s.err != nil {
		return tasks.Handle{}, s.err
	}

	msg, _ := fn(context.Background(), func(int64, int64) {})
	s.msgs = append(s.msgs, msg)

	return tasks.Handle{Name: name}, nil
}

func (s *syncSubmitter) drain() []tea.Msg {
	out := s.msgs
	s.msgs = nil

	return out
}

func newMockChecker(ctrl *gomock.Controller, name string) *MockChecker {
	c := NewMockChecker(ctrl)
	c.EXPECT().Name().Return(name).AnyTimes()

	return c
}

func TestPoller_TransportFailureKeepsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ticks := make(chan time.Time, 1)

	clock := NewMockClock(ctrl)
	ticker := NewMockTicker(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	clock.EXPECT().Ticker(5 * time.Second).Return(ticker)
	ticker.EXPECT().Chan().Return((<-chan time.Time)(ticks)).AnyTimes()
	ticker.EXPECT().Stop()

	training := newMockChecker(ctrl, "training")
	transportErr := errors.New("dial tcp 127.0.0.1:45680: connect: connection refused")

	gomock.InOrder(
		training.EXPECT().HealthCheck(gomock.Any()).Return(nil, transportErr),
		training.EXPECT().HealthCheck(gomock.Any()).Return(&models.HealthPayload{Status: "ok"}, nil),
	)

	sub := &syncSubmitter{}

	p, err := New(5*time.Second, sub, logger.NewTestLogger(), []Checker{training}, WithClock(clock))
	require.NoError(t, err)

	st, _ := p.Status("training")
	assert.Equal(t, models.StatusUnknown, st.Status)

	wait := p.Start()
	require.NotNil(t, wait)

	results := sub.drain()
	require.Len(t, results, 1)

	_, updated := p.Update(results[0])
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusDown, updated.Status)
	assert.Equal(t, now, updated.CheckedAt)
	assert.False(t, p.Connected())

	ticks <- now.Add(5 * time.Second)

	tick := wait()
	require.IsType(t, TickMsg{}, tick)

	next, _ := p.Update(tick)
	assert.NotNil(t, next, "next poll must be scheduled after a failure")

	results = sub.drain()
	require.Len(t, results, 1)

	_, updated = p.Update(results[0])
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusHealthy, updated.Status)
	assert.True(t, p.Connected())

	p.Stop()
}

func TestPoller_SubmitFailureStillReschedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := NewMockClock(ctrl)
	ticker := NewMockTicker(ctrl)
	clock.EXPECT().Ticker(gomock.Any()).Return(ticker)
	ticker.EXPECT().Chan().Return(make(<-chan time.Time)).AnyTimes()

	training := newMockChecker(ctrl, "training")
	training.EXPECT().HealthCheck(gomock.Any()).Times(0)

	sub := &syncSubmitter{err: tasks.ErrDispatcherClosed}

	p, err := New(time.Second, sub, logger.NewTestLogger(), []Checker{training}, WithClock(clock))
	require.NoError(t, err)

	require.NotNil(t, p.Start())

	next, _ := p.Update(TickMsg{At: time.Now()})
	assert.NotNil(t, next)
	assert.ErrorIs(t, p.Poll("training"), tasks.ErrDispatcherClosed)
}

func TestPoller_StopReleasesPendingWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := NewMockClock(ctrl)
	ticker := NewMockTicker(ctrl)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	clock.EXPECT().Ticker(gomock.Any()).Return(ticker)
	ticker.EXPECT().Chan().Return(make(<-chan time.Time)).AnyTimes()
	ticker.EXPECT().Stop()

	training := newMockChecker(ctrl, "training")
	training.EXPECT().HealthCheck(gomock.Any()).Return(&models.HealthPayload{Status: "ok"}, nil).Times(2)

	p, err := New(time.Second, &syncSubmitter{}, logger.NewTestLogger(), []Checker{training}, WithClock(clock))
	require.NoError(t, err)

	wait := p.Start()
	require.NotNil(t, wait)

	out := make(chan tea.Msg, 1)
	go func() { out <- wait() }()

	p.Stop()

	select {
	case msg := <-out:
		assert.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("wait still blocked after Stop")
	}

	next, _ := p.Update(TickMsg{At: time.Now()})
	assert.Nil(t, next)
}

func TestPoller_StatusesInOrderAndMarkStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	checkers := []Checker{newMockChecker(ctrl, "training"), newMockChecker(ctrl, "dataset")}

	p, err := New(0, &syncSubmitter{}, logger.NewTestLogger(), checkers, WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, defaultInterval, p.Interval())

	p.MarkStopped("dataset")

	statuses := p.Statuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, "training", statuses[0].Service)
	assert.Equal(t, models.StatusStopped, statuses[1].Status)

	cmd, st := p.Update(ResultMsg{Service: "unknown-service"})
	assert.Nil(t, cmd)
	assert.Nil(t, st)

	assert.ErrorIs(t, p.Poll("nope"), ErrUnknownService)
}

func TestNew_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := New(time.Second, &syncSubmitter{}, logger.NewTestLogger(), nil)
	require.ErrorIs(t, err, errNoCheckers)

	_, err = New(time.Second, &syncSubmitter{}, logger.NewTestLogger(),
		[]Checker{newMockChecker(ctrl, "a"), newMockChecker(ctrl, "a")})
	require.Error(t, err)
}
