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
	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/poller"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
)

func (c *Console) Update(msg tea.Msg) tea.Cmd {
	msg, baseCmd := c.Base.Update(msg)

	return tea.Batch(baseCmd, c.update(msg))
}

func (c *Console) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nil:
	case poller.TickMsg:
		if c.view == viewHost {
			c.sampleHost()
		}
	case poller.ResultMsg:
		c.rebuildServices()
	case lifecycleMsg:
		return c.afterLifecycle(msg)
	case hostMsg:
		c.host.apply(msg.sample, msg.err)
	case configLoadedMsg:
		return c.applyConfig(msg)
	case configSavedMsg:
		c.Shell.SetStatus("Saved " + msg.path + " (previous version in " + msg.backup + ")")
	case configChangedMsg:
		return c.configChanged(msg)
	case diskMsg:
		c.applyDisk(msg)
	case browseMsg:
		c.applyBrowse(msg)
	case auditMsg:
		c.applyAudit(msg)
	case shell.NavigateMsg:
		return c.navigate(msg.ID)
	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return nil
}

func (c *Console) afterLifecycle(msg lifecycleMsg) tea.Cmd {
	c.Shell.SetStatus(msg.verb + " " + msg.name)

	if msg.verb == "Stopped" {
		c.Poller.MarkStopped(msg.name)
		c.services.ClearSelection()
		c.rebuildServices()

		return nil
	}

	if err := c.Poller.Poll(msg.name); err != nil {
		c.Logger.Debug().Str("service", msg.name).Err(err).Msg("Poll after lifecycle action not scheduled")
	}

	return nil
}

func (c *Console) navigate(id string) tea.Cmd {
	c.view = id

	switch id {
	case viewConfig:
		c.browse()
	case viewAudit:
		c.loadAudit()
	case viewHost:
		c.sampleHost()
	}

	return nil
}

func (c *Console) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch c.view {
	case viewConfig:
		return c.configKey(msg)
	case viewAudit:
		return c.audit.list.Update(msg)
	case viewHost:
		return nil
	}

	return c.services.Update(msg)
}
