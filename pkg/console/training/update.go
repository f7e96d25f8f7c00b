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
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
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
		return nil
	case poller.TickMsg:
		return c.refresh(false)
	case shell.NavigateMsg:
		return c.navigate(msg.ID)
	case jobsMsg:
		c.applyJobs(msg)
	case detailMsg:
		c.showDetail(msg)
	case actionMsg:
		c.jobs.ClearSelection()
		c.Shell.SetStatus(fmt.Sprintf("%s job %s", msg.verb, msg.id))

		return c.refresh(false)
	case createdMsg:
		c.form.Reset()
		c.Shell.SetStatus("Created job " + msg.ack.ID)

		return tea.Batch(c.Shell.Navigate(viewJobs), c.refresh(false))
	case eventMsg:
		return c.appendEvent(msg)
	case streamEndedMsg:
		c.endStream(msg)
	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return nil
}

func (c *Console) navigate(id string) tea.Cmd {
	c.view = id

	if id == viewNew {
		return c.form.Focus()
	}

	c.form.Blur()

	if id == viewDetail {
		if it, ok := c.jobs.Selected(); ok && it.ID != c.current {
			c.openDetail(it.ID)
		}
	}

	return nil
}

func (c *Console) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch c.view {
	case viewNew:
		if !c.form.Active() {
			if msg.String() == "enter" {
				return c.form.Focus()
			}

			return nil
		}

		submitted, cmd := c.form.Update(msg)
		if submitted {
			return tea.Batch(cmd, c.submitForm())
		}

		return cmd
	case viewDetail:
		if msg.String() == "esc" {
			return c.Shell.Navigate(viewJobs)
		}

		return c.detail.Update(msg)
	case viewEvents:
		return c.events.Update(msg)
	}

	if msg.String() == "enter" && !c.jobs.Filtering() {
		if it, ok := c.jobs.Selected(); ok {
			c.openDetail(it.ID)
			return c.Shell.Navigate(viewDetail)
		}
	}

	return c.jobs.Update(msg)
}

func (c *Console) applyJobs(msg jobsMsg) {
	if msg.err != nil {
		if !c.jobs.SetError(msg.seq, msg.err) {
			return
		}

		if msg.manual {
			c.ReportError("refresh jobs", msg.err)
			return
		}

		c.Shell.SetStatus("Refresh failed: " + msg.err.Error())

		return
	}

	items := make([]widgets.Item, 0, len(msg.jobs))
	for _, j := range msg.jobs {
		items = append(items, widgets.Item{ID: j.ID, Name: jobName(j), Status: j.Status, Cells: j.Row(), Value: j})
	}

	if c.jobs.SetItems(msg.seq, items) && msg.manual {
		c.Shell.SetStatus(fmt.Sprintf("Loaded %d jobs", len(items)))
	}
}

// jobName is the text the filter matches: the job type, or the id for untyped jobs.
func jobName(j models.JobSummary) string {
	if j.JobType != "" {
		return j.JobType
	}

	return j.ID
}

func (c *Console) showDetail(msg detailMsg) {
	if msg.job == nil || msg.job.ID != c.current {
		return
	}

	if err := c.detail.SetJSON(msg.job.Extra); err != nil {
		c.detail.SetContent(err.Error())
		return
	}

	lines := widgets.MetricLines(msg.metrics, max(c.width-24, 10))
	if len(lines) == 0 {
		return
	}

	content := c.detail.Content() + "\n\nMetrics\n"
	for _, l := range lines {
		content += l + "\n"
	}

	c.detail.SetContent(content)
}

func eventLine(ev models.StreamEvent) string {
	line := ev.Timestamp.Format("15:04:05") + " " + ev.Type

	for _, part := range []string{ev.Resource, ev.ID, ev.Status, ev.Error} {
		if part != "" {
			line += " " + part
		}
	}

	return line
}
