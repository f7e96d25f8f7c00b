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

package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Side selects the toolbar half an action is placed in.
type Side int

const (
	Left Side = iota
	Right
)

// Action is a toolbar button. Run is invoked on the UI loop.
type Action struct {
	ID    string
	Label string
	Key   key.Binding
	Run   func() tea.Cmd
}

// NewAction builds an action bound to keys; the first key is shown as its hint.
func NewAction(id, label string, keys []string, run func() tea.Cmd) Action {
	return Action{
		ID:    id,
		Label: label,
		Key:   key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], label)),
		Run:   run,
	}
}

// Toolbar holds the actions shown below the menu bar.
type Toolbar struct {
	left  []Action
	right []Action
}

// Add places actions on one side, keeping insertion order.
func (t *Toolbar) Add(side Side, actions ...Action) {
	if side == Right {
		t.right = append(t.right, actions...)
		return
	}

	t.left = append(t.left, actions...)
}

// Actions returns every action, left side first.
func (t *Toolbar) Actions() []Action {
	out := make([]Action, 0, len(t.left)+len(t.right))
	out = append(out, t.left...)

	return append(out, t.right...)
}

// Action looks up an action by id.
func (t *Toolbar) Action(id string) (Action, bool) {
	for _, a := range t.Actions() {
		if a.ID == id {
			return a, true
		}
	}

	return Action{}, false
}

func bindings(actions []Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Key)
	}

	return out
}
