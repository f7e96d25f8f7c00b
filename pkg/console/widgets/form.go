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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
)

// Field describes one form input.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Required    bool
}

// Form is a vertical list of single-line inputs. Tab moves between fields,
// enter on the last field or ctrl+s submits, esc leaves the form.
type Form struct {
	title  string
	fields []Field
	inputs []textinput.Model
	focus  int
	active bool
}

func NewForm(title string, fields ...Field) *Form {
	f := &Form{title: title, fields: fields}

	for _, field := range fields {
		in := textinput.New()
		in.Placeholder = field.Placeholder
		in.CharLimit = 512
		in.Width = 60
		in.Prompt = ""
		f.inputs = append(f.inputs, in)
	}

	return f
}

// Focus activates the form on its first field.
func (f *Form) Focus() tea.Cmd {
	f.active = true
	f.focus = 0

	return f.focusCurrent()
}

// Blur deactivates the form.
func (f *Form) Blur() {
	f.active = false

	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *Form) Active() bool {
	return f.active
}

// Reset clears every field.
func (f *Form) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}

	f.focus = 0
}

// SetValue fills a field by key.
func (f *Form) SetValue(key, value string) {
	for i, field := range f.fields {
		if field.Key == key {
			f.inputs[i].SetValue(value)
		}
	}
}

// Value returns the trimmed value of a field.
func (f *Form) Value(key string) string {
	for i, field := range f.fields {
		if field.Key == key {
			return strings.TrimSpace(f.inputs[i].Value())
		}
	}

	return ""
}

// Values returns all trimmed values keyed by field key.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Key] = f.Value(field.Key)
	}

	return out
}

// Missing lists the labels of required fields that are empty.
func (f *Form) Missing() []string {
	var out []string

	for _, field := range f.fields {
		if field.Required && f.Value(field.Key) == "" {
			out = append(out, field.Label)
		}
	}

	return out
}

func (f *Form) focusCurrent() tea.Cmd {
	var cmd tea.Cmd

	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
			continue
		}

		f.inputs[i].Blur()
	}

	return cmd
}

// Update edits the focused field. submitted is true when the user asked to
// submit the form.
func (f *Form) Update(msg tea.Msg) (submitted bool, cmd tea.Cmd) {
	if !f.active {
		return false, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			f.focus = (f.focus + 1) % len(f.inputs)
			return false, f.focusCurrent()
		case "shift+tab", "up":
			f.focus = (f.focus + len(f.inputs) - 1) % len(f.inputs)
			return false, f.focusCurrent()
		case "ctrl+s":
			return true, nil
		case "enter":
			if f.focus == len(f.inputs)-1 {
				return true, nil
			}

			f.focus++

			return false, f.focusCurrent()
		case "esc":
			f.Blur()
			return false, nil
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	return false, cmd
}

func (f *Form) View() string {
	lines := []string{shell.Theme.Title.Render(f.title), ""}

	for i, field := range f.fields {
		label := field.Label
		if field.Required {
			label += " *"
		}

		style := shell.Theme.NavItem
		if f.active && i == f.focus {
			style = shell.Theme.NavActive
		}

		lines = append(lines, style.Render(label), "  "+f.inputs[i].View(), "")
	}

	hint := "enter on a field to start editing"
	if f.active {
		hint = "tab next • enter/ctrl+s submit • esc leave"
	}

	lines = append(lines, shell.Theme.Help.Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
