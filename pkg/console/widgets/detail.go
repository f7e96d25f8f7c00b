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
	"encoding/json"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailView is a scrollable text pane, used for resource JSON.
type DetailView struct {
	vp      viewport.Model
	content string
}

func NewDetailView() *DetailView {
	return &DetailView{vp: viewport.New(80, 20)}
}

// SetContent replaces the text and scrolls to the top.
func (d *DetailView) SetContent(text string) {
	d.content = text
	d.vp.SetContent(text)
	d.vp.GotoTop()
}

// SetJSON pretty-prints v.
func (d *DetailView) SetJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	d.SetContent(string(data))

	return nil
}

func (d *DetailView) Content() string {
	return d.content
}

func (d *DetailView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)

	return cmd
}

func (d *DetailView) SetSize(width, height int) {
	d.vp.Width = width
	d.vp.Height = height
}

func (d *DetailView) View() string {
	return d.vp.View()
}
