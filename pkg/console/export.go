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

package console

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

// ExportFormats are offered in this order by the format toggle.
var ExportFormats = []string{"jsonl", "csv", "parquet"}

// ExportFunc is the typed client call that performs a two-phase export.
type ExportFunc func(ctx context.Context, id, format, dst string, progress api.ProgressFunc) (*models.ExportTicket, error)

// ExportDoneMsg reports the end of an export, successful or not.
type ExportDoneMsg struct {
	Label  string
	Path   string
	Ticket *models.ExportTicket
	Err    error
}

// NextFormat returns the format after current, wrapping around.
func NextFormat(current string) string {
	for i, f := range ExportFormats {
		if f == current {
			return ExportFormats[(i+1)%len(ExportFormats)]
		}
	}

	return ExportFormats[0]
}

// StartExport asks for a destination first; nothing is sent until the user
// confirms a path. The download then runs with the progress overlay shown.
func (b *Base) StartExport(label, id, format, defaultPath string, export ExportFunc) {
	b.Shell.Prompt(fmt.Sprintf("Export %s as %s to", label, format), defaultPath, func(dst string) tea.Cmd {
		dst = strings.TrimSpace(dst)
		if dst == "" {
			b.Shell.Warn("Invalid input", "destination is required")
			return nil
		}

		h, ok := b.Submit("export", func(ctx context.Context, report tasks.Report) (tea.Msg, error) {
			ticket, err := export(ctx, id, format, dst, api.ProgressFunc(report))

			return ExportDoneMsg{Label: label, Path: dst, Ticket: ticket, Err: err}, nil
		})
		if ok {
			b.Overlay.Show(fmt.Sprintf("Exporting %s", label), h.ID)
			b.Shell.SetStatus("Exporting " + label + "...")
		}

		return nil
	})
}

func (b *Base) finishExport(msg ExportDoneMsg) {
	if msg.Err != nil {
		b.ReportError("export "+msg.Label, msg.Err)
		return
	}

	b.Logger.Info().Str("label", msg.Label).Str("path", msg.Path).Msg("Export finished")
	b.Shell.SetStatus(fmt.Sprintf("Exported %s to %s", msg.Label, msg.Path))
}
