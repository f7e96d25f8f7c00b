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
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

// Streaming reports whether the live event feed is running.
func (c *Console) Streaming() bool {
	return c.streamCancel != nil
}

func (c *Console) toggleStream() tea.Cmd {
	if c.Streaming() {
		c.stopStream()
		c.Shell.SetStatus("Live events stopped")

		return nil
	}

	c.streamGen++
	gen := c.streamGen

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan models.StreamEvent, eventBuffer)

	_, ok := c.Submit("live events", func(taskCtx context.Context, _ tasks.Report) (tea.Msg, error) {
		defer close(events)

		stop := context.AfterFunc(taskCtx, cancel)
		defer stop()

		err := c.backend.JobEvents(ctx, func(ev models.StreamEvent) {
			select {
			case events <- ev:
			default:
				c.Logger.Debug().Str("type", ev.Type).Msg("Event dropped")
			}
		})

		return streamEndedMsg{gen: gen, err: err}, nil
	})
	if !ok {
		cancel()
		return nil
	}

	c.streamCancel = cancel
	c.Shell.SetStatus("Live events started")

	return tea.Batch(waitEvent(gen, events), c.Shell.Navigate(viewEvents))
}

func waitEvent(gen int, events <-chan models.StreamEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}

		return eventMsg{gen: gen, event: ev, next: events}
	}
}

func (c *Console) stopStream() {
	if c.streamCancel != nil {
		c.streamCancel()
		c.streamCancel = nil
	}
}

func (c *Console) appendEvent(msg eventMsg) tea.Cmd {
	if msg.gen != c.streamGen {
		return nil
	}

	c.lines = append(c.lines, eventLine(msg.event))
	if len(c.lines) > maxEventLines {
		c.lines = c.lines[len(c.lines)-maxEventLines:]
	}

	c.events.SetContent(strings.Join(c.lines, "\n"))

	return waitEvent(msg.gen, msg.next)
}

func (c *Console) endStream(msg streamEndedMsg) {
	if msg.gen != c.streamGen {
		return
	}

	c.streamCancel = nil

	if msg.err != nil {
		c.ReportError("live events", msg.err)
		return
	}

	c.Shell.SetStatus("Live events ended")
}
