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
	"github.com/charmbracelet/lipgloss"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
)

func (c *Console) SetSize(width, height int) {
	c.width, c.height = width, height

	c.jobs.SetSize(width, height-1)
	c.detail.SetSize(width, height-1)
	c.events.SetSize(width, height-1)
}

func (c *Console) View() string {
	var title, body string

	switch c.view {
	case viewDetail:
		title = "Job " + c.current
		if c.current == "" {
			title = "Job detail"
			body = shell.Theme.Help.Render("Open a job from the list with enter.")
		} else {
			body = c.detail.View()
		}
	case viewNew:
		title = "New job"
		body = c.form.View()
	case viewEvents:
		title = "Live events"
		if len(c.lines) == 0 {
			body = shell.Theme.Help.Render("No events yet. Press L to start or stop the feed.")
		} else {
			body = c.events.View()
		}
	default:
		title = "Jobs  " + shell.Theme.Help.Render("export format "+c.format)
		body = c.jobs.View()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, shell.Theme.Title.Render(title), body)

	return c.Overlaid(view, c.width, c.height)
}
