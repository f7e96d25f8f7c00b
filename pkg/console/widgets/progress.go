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

package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
)

// ProgressOverlay shows bytes transferred for one running task.
type ProgressOverlay struct {
	bar     progress.Model
	title   string
	owner   uuid.UUID
	visible bool
	done    int64
	total   int64
}

func NewProgressOverlay() *ProgressOverlay {
	return &ProgressOverlay{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
	}
}

// Show opens the overlay for the task identified by owner.
func (p *ProgressOverlay) Show(title string, owner uuid.UUID) {
	p.title = title
	p.owner = owner
	p.visible = true
	p.done = 0
	p.total = -1
}

// Set updates progress if owner matches the task being shown.
func (p *ProgressOverlay) Set(owner uuid.UUID, done, total int64) {
	if !p.visible || owner != p.owner {
		return
	}

	p.done, p.total = done, total
}

// Hide dismisses the overlay.
func (p *ProgressOverlay) Hide() {
	p.visible = false
	p.owner = uuid.Nil
}

func (p *ProgressOverlay) Visible() bool {
	return p.visible
}

// Owns reports whether the overlay belongs to the given task.
func (p *ProgressOverlay) Owns(owner uuid.UUID) bool {
	return p.visible && owner == p.owner
}

// Progress returns the last reported counters.
func (p *ProgressOverlay) Progress() (done, total int64) {
	return p.done, p.total
}

func (p *ProgressOverlay) View() string {
	if !p.visible {
		return ""
	}

	var line string

	if p.total > 0 {
		line = p.bar.ViewAs(float64(p.done)/float64(p.total)) + "\n" +
			fmt.Sprintf("%s of %s", models.HumanBytes(p.done), models.HumanBytes(p.total))
	} else {
		line = fmt.Sprintf("%s received (size unknown)", models.HumanBytes(p.done))
	}

	return shell.Theme.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		shell.Theme.Title.Render(p.title), "", line))
}
