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

package training

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/consoletest"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/poller"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sampleJobs = []models.JobSummary{
	{ID: "job-1", JobType: "lora", Status: models.JobRunning, Progress: 0.5, CreatedAt: "2025-01-02T10:00:00"},
	{ID: "job-2", JobType: "qlora", Status: models.JobCompleted, Progress: 1, CreatedAt: "2025-01-02T11:00:00"},
	{ID: "job-3", JobType: "full", Status: models.JobFailed, Progress: 0.1, CreatedAt: "2025-01-02T12:00:00"},
}

func newTestConsole(t *testing.T) (*Console, *shell.Shell, *MockBackend) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Name().Return("training").AnyTimes()

	c, err := New(backend, console.Settings{Workers: 2, ExportDir: t.TempDir()}, logger.NewTestLogger())
	require.NoError(t, err)

	s, err := shell.New(Title, c)
	require.NoError(t, err)

	s.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	t.Cleanup(func() { _ = c.Close() })

	return c, s, backend
}

func loadJobs(t *testing.T, c *Console, s *shell.Shell, backend *MockBackend) {
	t.Helper()

	backend.EXPECT().ListJobs(gomock.Any(), "").Return(sampleJobs, nil)

	consoletest.Press(s, "r")
	consoletest.Settle(t, s, c.Tasks)
}

func TestRefresh_ShowsEveryJobVerbatim(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)

	rows := c.Jobs().Rows()
	require.Len(t, rows, len(sampleJobs))

	for i, j := range sampleJobs {
		assert.Equal(t, j.Row(), rows[i])
	}

	assert.Equal(t, []string{"job-2", "qlora", "completed", "100%", "2025-01-02T11:00:00"}, rows[1])
	assert.Equal(t, "Loaded 3 jobs", s.Status())
}

func TestTextFilter_IsLocalAndClears(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)

	consoletest.Press(s, "/")
	assert.True(t, c.CapturingInput())

	consoletest.Type(s, "LORA")
	consoletest.Press(s, "enter")

	visible := c.Jobs().Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "job-1", visible[0].ID)
	assert.Equal(t, "job-2", visible[1].ID)

	consoletest.Press(s, "esc")
	assert.Equal(t, c.Jobs().Items(), c.Jobs().Visible())
}

func TestTextFilter_MatchesJobTypeNotID(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)

	c.Jobs().SetFilter("job-")
	assert.Empty(t, c.Jobs().Visible())

	c.Jobs().SetFilter("full")
	require.Len(t, c.Jobs().Visible(), 1)
	assert.Equal(t, "job-3", c.Jobs().Visible()[0].ID)
}

func TestJobName_FallsBackToID(t *testing.T) {
	assert.Equal(t, "lora", jobName(models.JobSummary{ID: "job-1", JobType: "lora"}))
	assert.Equal(t, "job-9", jobName(models.JobSummary{ID: "job-9"}))
}

func TestStatusFilter_RefetchesFromServer(t *testing.T) {
	c, s, backend := newTestConsole(t)

	backend.EXPECT().ListJobs(gomock.Any(), models.JobPending).Return(sampleJobs[:1], nil)

	consoletest.Press(s, "s")
	consoletest.Settle(t, s, c.Tasks)

	assert.Equal(t, models.JobPending, c.Jobs().StatusFilter())
	assert.Len(t, c.Jobs().Rows(), 1, "server-side filtered rows are shown as returned")
}

func TestCancel_DeclinedMakesNoCall(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)

	consoletest.Press(s, "c")

	m, ok := s.ActiveModal()
	require.True(t, ok)
	assert.Equal(t, shell.KindConfirm, m.Kind)
	assert.Contains(t, m.Text, "job-1")

	consoletest.Press(s, "n")
	assert.Zero(t, s.ModalCount())
	assert.Zero(t, c.Tasks.Pending())
}

func TestCancel_ConfirmedCallsOnce(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)

	backend.EXPECT().CancelJob(gomock.Any(), "job-1").Return(&models.ActionResult{Success: true}, nil).Times(1)
	backend.EXPECT().ListJobs(gomock.Any(), "").Return(sampleJobs, nil)

	consoletest.Press(s, "c", "y")
	consoletest.SettleN(t, s, c.Tasks, 2)

	assert.Equal(t, "Cancelled job job-1", s.Status())

	_, selected := c.Jobs().Selected()
	assert.False(t, selected)
}

func TestDelete_ServerRejectionShowsMessage(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)
	consoletest.Press(s, "down")

	backend.EXPECT().DeleteJob(gomock.Any(), "job-2").
		Return(nil, &api.APIError{Service: "training", Op: "delete jobs", StatusCode: 409, Message: "job is running"})

	consoletest.Press(s, "d", "y")
	consoletest.Settle(t, s, c.Tasks)

	m, ok := s.ActiveModal()
	require.True(t, ok)
	assert.Equal(t, shell.KindError, m.Kind)
	assert.Equal(t, "job is running", m.Text)
}

func TestExport_FailureDismissesOverlay(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)

	backend.EXPECT().ExportJob(gomock.Any(), "job-1", "jsonl", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, progress api.ProgressFunc) (*models.ExportTicket, error) {
			progress(512, 1024)
			return nil, &api.TransportError{Service: "training", Op: "download", Err: errors.New("connection reset")}
		})

	consoletest.Press(s, "e")

	m, ok := s.ActiveModal()
	require.True(t, ok)
	require.Equal(t, shell.KindPrompt, m.Kind)

	consoletest.Press(s, "enter")
	assert.True(t, c.Overlay.Visible())

	for i := 0; i < 3 && c.Overlay.Visible(); i++ {
		consoletest.Settle(t, s, c.Tasks)
	}

	assert.False(t, c.Overlay.Visible())

	m, ok = s.ActiveModal()
	require.True(t, ok)
	assert.Equal(t, shell.KindError, m.Kind)
	assert.Contains(t, m.Text, "Cannot reach training")
}

func TestFormat_Cycles(t *testing.T) {
	c, s, _ := newTestConsole(t)

	assert.Equal(t, "jsonl", c.Format())

	consoletest.Press(s, "f")
	assert.Equal(t, "csv", c.Format())

	consoletest.Press(s, "f", "f")
	assert.Equal(t, "jsonl", c.Format())
}

func TestCreate_ValidatesBeforeSending(t *testing.T) {
	c, s, _ := newTestConsole(t)

	consoletest.Press(s, "3")
	require.Equal(t, viewNew, c.CurrentView())
	require.True(t, c.CapturingInput())

	consoletest.Press(s, "ctrl+s")

	m, ok := s.ActiveModal()
	require.True(t, ok)
	assert.Equal(t, shell.KindWarn, m.Kind)
	assert.Contains(t, m.Text, "Job type")
	assert.Zero(t, c.Tasks.Pending())
}

func TestCreate_SubmitsAndReturnsToList(t *testing.T) {
	c, s, backend := newTestConsole(t)

	backend.EXPECT().CreateJob(gomock.Any(), api.JobParams{JobType: "lora", ConfigPath: "configs/lora.yaml", Priority: 2}).
		Return(&models.CreateAck{ID: "job-9"}, nil)
	backend.EXPECT().ListJobs(gomock.Any(), "").Return(sampleJobs, nil)

	consoletest.Press(s, "3")
	consoletest.Type(s, "lora")
	consoletest.Press(s, "tab")
	consoletest.Type(s, "configs/lora.yaml")
	consoletest.Press(s, "tab", "tab")
	consoletest.Type(s, "2")
	consoletest.Press(s, "ctrl+s")

	consoletest.SettleN(t, s, c.Tasks, 2)

	assert.Equal(t, viewJobs, c.CurrentView())
	assert.Len(t, c.Jobs().Rows(), 3)
	assert.Empty(t, c.form.Value(api.FieldJobType))
}

func TestPeriodicRefreshFailure_MarksStaleWithoutDialog(t *testing.T) {
	c, s, backend := newTestConsole(t)

	loadJobs(t, c, s, backend)

	backend.EXPECT().ListJobs(gomock.Any(), "").Return(nil, &api.TransportError{Service: "training", Err: errors.New("refused")})
	backend.EXPECT().HealthCheck(gomock.Any()).Return(nil, &api.TransportError{Service: "training", Err: errors.New("refused")})

	s.Update(poller.TickMsg{At: time.Now()})
	consoletest.SettleN(t, s, c.Tasks, 2)

	assert.True(t, c.Jobs().Stale())
	assert.Len(t, c.Jobs().Rows(), 3, "last good rows stay visible")
	assert.Zero(t, s.ModalCount())

	text, connected := s.Connection()
	assert.False(t, connected)
	assert.Contains(t, text, "Disconnected")
}

func TestLiveEvents_AppendsUntilStreamEnds(t *testing.T) {
	c, s, backend := newTestConsole(t)

	release := make(chan struct{})

	backend.EXPECT().JobEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, handle func(models.StreamEvent)) error {
			handle(models.StreamEvent{Type: "job_update", ID: "job-1", Status: "running"})
			handle(models.StreamEvent{Type: "job_update", ID: "job-1", Status: "completed"})
			<-release

			return nil
		})

	cmd := c.toggleStream()
	require.True(t, c.Streaming())
	assert.Equal(t, viewEvents, c.CurrentView())

	msgs := consoletest.Execute(cmd)
	require.Len(t, msgs, 1)

	msgs = consoletest.Execute(c.Update(msgs[0]))
	require.Len(t, msgs, 1)

	close(release)
	c.Update(msgs[0])

	consoletest.Settle(t, s, c.Tasks)

	require.Len(t, c.EventLines(), 2)
	assert.Contains(t, c.EventLines()[1], "completed")
	assert.False(t, c.Streaming())
	assert.Equal(t, "Live events ended", s.Status())
}
