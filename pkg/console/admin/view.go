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

package admin

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
)

const browserWidth = 56

func (c *Console) SetSize(width, height int) {
	c.width, c.height = width, height

	body := height - 1

	c.services.SetSize(width, body)
	c.audit.list.SetSize(width, body)
	c.cfg.entries.SetSize(min(browserWidth, width/2), body)
	c.cfg.editor.SetWidth(max(width-browserWidth-2, 20))
	c.cfg.editor.SetHeight(max(body-2, 3))
}

func (c *Console) View() string {
	var title, body string

	switch c.view {
	case viewConfig:
		title = "Configuration  " + shell.Theme.Help.Render(c.cfg.dir)
		body = c.configBody()
	case viewAudit:
		title = "Audit log  " + shell.Theme.Help.Render(c.audit.path)
		body = c.audit.list.View()
	case viewHost:
		title = "Host"
		body = c.host.View()
	default:
		title = "Services"
		body = c.services.View()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, shell.Theme.Title.Render(title), body)

	return c.Overlaid(view, c.width, c.height)
}

func (c *Console) configBody() string {
	v := c.cfg

	if v.path == "" {
		return v.entries.View()
	}

	hint := "i edit • ctrl+s save • esc leave editor • L reload"

	editor := lipgloss.JoinVertical(lipgloss.Left,
		shell.Theme.NavActive.Render(v.path),
		v.editor.View(),
		shell.Theme.Help.Render(hint),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, v.entries.View(), "  ", editor)
}
