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

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/consoletest"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sampleSets = []models.DatasetSummary{
	{ID: "ds-1", Name: "alpha", Status: models.DatasetCompleted, DocumentCount: 42, SizeBytes: 2048, CreatedAt: "2025-03-01"},
	{ID: "ds-2", Name: "Beta corpus", Status: models.DatasetProcessing, DocumentCount: 7, CreatedAt: "2025-03-02"},
	{ID: "ds-3", Name: "alphabet soup", Status: models.DatasetFailed, CreatedAt: "2025-03-03"},
}

func newTestConsole(t *testing.T) (*Console, *shell.Shell, *MockBackend) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Name().Return("dataset").AnyTimes()

	c, err := New(backend, console.Settings{Workers: 2, ExportDir: t.TempDir()}, logger.NewTestLogger())
	require.NoError(t, err)

	s, err := shell.New(Title, c)
	require.NoError(t, err)

	s.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	t.Cleanup(func() { _ = c.Close() })

	backend.EXPECT().ListDatasets(gomock.Any()).Return(sampleSets, nil)
	consoletest.Press(s, "r")
	consoletest.Settle(t, s, c.Tasks)

	return c, s, backend
}

func TestRefresh_RowsVerbatim(t *testing.T) {
	c, s, _ := newTestConsole(t)

	rows := c.Datasets().Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "alpha", rows[0][0])
	assert.Equal(t, "completed", rows[0][1])
	assert.Equal(t, "42 docs", rows[0][2])
	assert.Equal(t, "Loaded 3 datasets", s.Status())
}

func TestFilter_HidesAndRestoresInOrder(t *testing.T) {
	c, s, _ := newTestConsole(t)

	consoletest.Press(s, "/")
	consoletest.Type(s, "ALPHA")
	consoletest.Press(s, "enter")

	visible := c.Datasets().Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "alpha", visible[0].Name)
	assert.Equal(t, "alphabet soup", visible[1].Name)

	consoletest.Press(s, "esc")

	names := make([]string, 0, 3)
	for _, it := range c.Datasets().Visible() {
		names = append(names, it.Name)
	}

	assert.Equal(t, []string{"alpha", "Beta corpus", "alphabet soup"}, names)
}

func TestStatusFilter_IsLocal(t *testing.T) {
	c, s, _ := newTestConsole(t)

	consoletest.Press(s, "s")

	assert.Equal(t, models.DatasetPending, c.Datasets().StatusFilter())
	assert.Empty(t, c.Datasets().Visible())
	assert.Zero(t, c.Tasks.Pending())

	consoletest.Press(s, "s", "s")

	visible := c.Datasets().Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "ds-1", visible[0].ID)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		c, s, _ := newTestConsole(t)

		consoletest.Press(s, "d")

		m, ok := s.ActiveModal()
		require.True(t, ok)
		assert.Contains(t, m.Text, "alpha")

		consoletest.Press(s, "esc")
		assert.Zero(t, s.ModalCount())
		assert.Zero(t, c.Tasks.Pending())
	})

	t.Run("confirmed", func(t *testing.T) {
		c, s, backend := newTestConsole(t)

		backend.EXPECT().DeleteDataset(gomock.Any(), "ds-1").Return(&models.ActionResult{Success: true}, nil).Times(1)
		backend.EXPECT().ListDatasets(gomock.Any()).Return(sampleSets[1:], nil)

		consoletest.Press(s, "d", "y")
		consoletest.SettleN(t, s, c.Tasks, 2)

		assert.Len(t, c.Datasets().Rows(), 2)
		assert.Equal(t, "Deleted dataset alpha", s.Status())
	})
}

func TestExport_FailureShowsErrorAndHidesOverlay(t *testing.T) {
	c, s, backend := newTestConsole(t)

	backend.EXPECT().ExportDataset(gomock.Any(), "ds-1", "csv", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, dst string, progress api.ProgressFunc) (*models.ExportTicket, error) {
			assert.Equal(t, "alpha.csv", filepath.Base(dst))
			progress(100, -1)

			return nil, &api.TransportError{Service: "dataset", Op: "download", Err: errors.New("unexpected EOF")}
		})

	consoletest.Press(s, "f", "e", "enter")
	require.True(t, c.Overlay.Visible())

	for i := 0; i < 3 && c.Overlay.Visible(); i++ {
		consoletest.Settle(t, s, c.Tasks)
	}

	assert.False(t, c.Overlay.Visible())

	m, ok := s.ActiveModal()
	require.True(t, ok)
	assert.Equal(t, shell.KindError, m.Kind)
	assert.Equal(t, "Export dataset alpha failed", m.Title)
}

func TestSaveTable_WritesCSV(t *testing.T) {
	c, s, _ := newTestConsole(t)

	dst := filepath.Join(t.TempDir(), "out.csv")

	consoletest.Press(s, "w")

	m, ok := s.ActiveModal()
	require.True(t, ok)
	require.Equal(t, shell.KindPrompt, m.Kind)

	consoletest.Press(s, "ctrl+u")
	consoletest.Type(s, dst)
	consoletest.Press(s, "enter")
	consoletest.Settle(t, s, c.Tasks)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name,Status,Documents,Size,Created")
	assert.Contains(t, string(data), "alpha,completed,42 docs")
	assert.Contains(t, s.Status(), "Saved 3 rows")
}

func TestCreate_MissingNameWarns(t *testing.T) {
	c, s, _ := newTestConsole(t)

	consoletest.Press(s, "n")
	require.Equal(t, viewNew, c.CurrentView())

	consoletest.Press(s, "tab")
	consoletest.Type(s, "data/raw")
	consoletest.Press(s, "ctrl+s")

	m, ok := s.ActiveModal()
	require.True(t, ok)
	assert.Equal(t, shell.KindWarn, m.Kind)
	assert.Equal(t, "Name required", m.Text)
	assert.Zero(t, c.Tasks.Pending())
}

func TestDetail_LoadsSelectedDataset(t *testing.T) {
	c, s, backend := newTestConsole(t)

	backend.EXPECT().GetDataset(gomock.Any(), "ds-1").Return(&models.DatasetDetail{
		DatasetSummary: sampleSets[0],
		SourcePath:     "data/raw/alpha",
	}, nil)

	consoletest.Press(s, "enter")
	assert.Equal(t, viewDetail, c.CurrentView())

	consoletest.Settle(t, s, c.Tasks)
	assert.Contains(t, c.detail.Content(), "data/raw/alpha")
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Beta_corpus", safeName("Beta corpus", "ds-2"))
	assert.Equal(t, "ds-9", safeName("../", "ds-9"))
}
