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
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/files"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

const auditLimit = 1000

var auditLevels = []string{"debug", "info", "warn", "error", models.AuditInvalid}

type auditView struct {
	path string
	list *widgets.ResourceList
}

func newAuditView(path string) *auditView {
	return &auditView{
		path: path,
		list: widgets.NewResourceList([]widgets.Column{
			{Title: "Time", Width: 20},
			{Title: "Level", Width: 8},
			{Title: "Actor", Width: 12},
			{Title: "Action", Width: 16},
			{Title: "Message", Width: 50},
		}, widgets.WithStatuses(auditLevels...)),
	}
}

type auditMsg struct {
	seq     uint64
	entries []models.AuditEntry
	err     error
}

func (c *Console) loadAudit() {
	a := c.audit
	seq, path := a.list.NextSeq(), a.path

	c.Submit("read audit log", func(context.Context, tasks.Report) (tea.Msg, error) {
		entries, err := files.ReadAuditLog(path, auditLimit)
		return auditMsg{seq: seq, entries: entries, err: err}, nil
	})
}

func (c *Console) applyAudit(msg auditMsg) {
	a := c.audit

	switch {
	case errors.Is(msg.err, os.ErrNotExist):
		if a.list.SetItems(msg.seq, nil) {
			c.Shell.SetStatus("No audit log at " + a.path)
		}

		return
	case msg.err != nil:
		if a.list.SetError(msg.seq, msg.err) {
			c.ReportError("read audit log", msg.err)
		}

		return
	}

	items := make([]widgets.Item, 0, len(msg.entries))

	for i, e := range msg.entries {
		items = append(items, widgets.Item{
			ID:     strconv.Itoa(i + 1),
			Name:   strings.Join([]string{e.Actor, e.Action, e.Message}, " "),
			Status: e.Level,
			Cells:  []string{e.Timestamp, e.Level, e.Actor, e.Action, e.Message},
			Value:  e,
		})
	}

	a.list.SetItems(msg.seq, items)
}
