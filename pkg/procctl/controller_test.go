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

package procctl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/config"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const healthURL = "http://localhost:45680/health"

var errRefused = errors.New("connection refused")

func testService() config.Service {
	return config.Service{
		Name:            "training",
		Port:            45680,
		HealthURL:       healthURL,
		StartCommand:    []string{"./start.sh"},
		StartTimeout:    config.Duration(5 * time.Second),
		Attempts:        3,
		AttemptInterval: config.Duration(time.Millisecond),
	}
}

type mocks struct {
	locator  *MockPortLocator
	term     *MockTerminator
	prober   *MockHealthProber
	launcher *MockLauncher
}

func newController(t *testing.T) (*Controller, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		locator:  NewMockPortLocator(ctrl),
		term:     NewMockTerminator(ctrl),
		prober:   NewMockHealthProber(ctrl),
		launcher: NewMockLauncher(ctrl),
	}

	c := New([]config.Service{testService()}, logger.NewTestLogger(),
		WithLocator(m.locator), WithTerminator(m.term), WithProber(m.prober), WithLauncher(m.launcher))

	return c, m
}

func TestStart_WaitsForHealth(t *testing.T) {
	c, m := newController(t)

	gomock.InOrder(
		m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(errRefused),
		m.launcher.EXPECT().Launch(gomock.Any(), testService()).Return(4242, nil),
		m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(errRefused),
		m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(nil),
	)

	require.NoError(t, c.Start(context.Background(), "training"))
}

func TestStart_AlreadyRunning(t *testing.T) {
	c, m := newController(t)

	m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(nil)
	m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, c.Start(context.Background(), "training"))
}

func TestStart_AttemptBudgetExhausted(t *testing.T) {
	c, m := newController(t)

	m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(1, nil)
	m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(errRefused).Times(1 + testService().Attempts)

	err := c.Start(context.Background(), "training")
	require.ErrorIs(t, err, ErrStartTimeout)
}

func TestStart_LaunchFailure(t *testing.T) {
	c, m := newController(t)

	m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(errRefused)
	m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(0, errors.New("permission denied"))

	err := c.Start(context.Background(), "training")
	require.ErrorIs(t, err, errLaunch)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestStop(t *testing.T) {
	c, m := newController(t)

	gomock.InOrder(
		m.locator.EXPECT().PIDOnPort(gomock.Any(), 45680).Return(int32(777), nil),
		m.term.EXPECT().Terminate(gomock.Any(), int32(777)).Return(nil),
		m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(nil),
		m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(errRefused),
	)

	require.NoError(t, c.Stop(context.Background(), "training"))
}

func TestStop_NoProcessOnPort(t *testing.T) {
	c, m := newController(t)

	m.locator.EXPECT().PIDOnPort(gomock.Any(), 45680).Return(int32(0), nil)
	m.term.EXPECT().Terminate(gomock.Any(), gomock.Any()).Times(0)

	err := c.Stop(context.Background(), "training")
	require.ErrorIs(t, err, ErrNoProcessOnPort)
}

func TestStop_StillAnswering(t *testing.T) {
	c, m := newController(t)

	m.locator.EXPECT().PIDOnPort(gomock.Any(), 45680).Return(int32(9), nil)
	m.term.EXPECT().Terminate(gomock.Any(), int32(9)).Return(nil)
	m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(nil).Times(testService().Attempts)

	err := c.Stop(context.Background(), "training")
	require.ErrorIs(t, err, ErrStopTimeout)
}

func TestRestart_ToleratesStoppedService(t *testing.T) {
	c, m := newController(t)

	m.locator.EXPECT().PIDOnPort(gomock.Any(), 45680).Return(int32(0), nil)

	gomock.InOrder(
		m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(errRefused),
		m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(12, nil),
		m.prober.EXPECT().Probe(gomock.Any(), healthURL).Return(nil),
	)

	require.NoError(t, c.Restart(context.Background(), "training"))
}

func TestRestart_StopFailureAborts(t *testing.T) {
	c, m := newController(t)

	m.locator.EXPECT().PIDOnPort(gomock.Any(), 45680).Return(int32(0), errors.New("netstat unavailable"))
	m.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Times(0)

	err := c.Restart(context.Background(), "training")
	require.ErrorIs(t, err, errLocate)
}

func TestUnknownService(t *testing.T) {
	c, _ := newController(t)

	assert.ErrorIs(t, c.Start(context.Background(), "nope"), ErrUnknownService)
	assert.ErrorIs(t, c.Stop(context.Background(), "nope"), ErrUnknownService)
	assert.Len(t, c.Services(), 1)
}

func TestHTTPProber(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	p := newHTTPProber()

	require.NoError(t, p.Probe(context.Background(), healthy.URL))
	require.ErrorIs(t, p.Probe(context.Background(), failing.URL), errUnhealthy)
}

func TestExecLauncher_NoCommand(t *testing.T) {
	l := &execLauncher{}

	_, err := l.Launch(context.Background(), config.Service{Name: "x"})
	require.ErrorIs(t, err, errNoStartCommand)
}
