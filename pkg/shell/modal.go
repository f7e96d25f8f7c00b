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
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ModalKind tells the modal variants apart.
type ModalKind int

const (
	KindInfo ModalKind = iota
	KindWarn
	KindError
	KindConfirm
	KindPrompt
)

func (k ModalKind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindWarn:
		return "warning"
	case KindError:
		return "error"
	case KindConfirm:
		return "confirm"
	case KindPrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// ModalView describes the modal currently on screen.
type ModalView struct {
	Kind  ModalKind
	Title string
	Text  string
}

type modal struct {
	ModalView
	onYes    func() tea.Cmd
	onNo     func() tea.Cmd
	onSubmit func(string) tea.Cmd
	input    textinput.Model
	yes      bool
}

// Info queues an informational notice.
func (s *Shell) Info(title, text string) {
	s.push(&modal{ModalView: ModalView{Kind: KindInfo, Title: title, Text: text}})
}

// Warn queues a warning, used for validation problems.
func (s *Shell) Warn(title, text string) {
	s.push(&modal{ModalView: ModalView{Kind: KindWarn, Title: title, Text: text}})
}

// Error queues an error dialog.
func (s *Shell) Error(title, text string) {
	s.push(&modal{ModalView: ModalView{Kind: KindError, Title: title, Text: text}})
}

// Confirm asks a yes/no question. Exactly one of onYes or onNo runs once the
// user answers; either may be nil. "No" is preselected.
func (s *Shell) Confirm(prompt string, onYes, onNo func() tea.Cmd) {
	s.push(&modal{
		ModalView: ModalView{Kind: KindConfirm, Title: "Confirm", Text: prompt},
		onYes:     onYes,
		onNo:      onNo,
	})
}

// Prompt asks for one line of text. onSubmit runs on enter; esc cancels.
func (s *Shell) Prompt(title, initial string, onSubmit func(string) tea.Cmd) {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 1024
	in.Width = 60
	in.SetValue(initial)
	in.CursorEnd()
	in.Focus()

	s.push(&modal{
		ModalView: ModalView{Kind: KindPrompt, Title: title},
		onSubmit:  onSubmit,
		input:     in,
	})
}

// ActiveModal returns the modal that currently captures input.
func (s *Shell) ActiveModal() (ModalView, bool) {
	if len(s.modals) == 0 {
		return ModalView{}, false
	}

	return s.modals[0].ModalView, true
}

// ModalCount is the number of queued modals including the visible one.
func (s *Shell) ModalCount() int {
	return len(s.modals)
}

func (s *Shell) push(m *modal) {
	s.modals = append(s.modals, m)
}

func (s *Shell) pop() *modal {
	m := s.modals[0]
	s.modals = s.modals[1:]

	return m
}

func (s *Shell) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	m := s.modals[0]

	switch m.Kind {
	case KindConfirm:
		switch msg.String() {
		case "y", "Y":
			return run(s.pop().onYes)
		case "n", "N", "esc":
			return run(s.pop().onNo)
		case "left", "right", "tab", "h", "l":
			m.yes = !m.yes
		case "enter":
			if s.pop().yes {
				return run(m.onYes)
			}

			return run(m.onNo)
		}
	case KindPrompt:
		switch msg.Type {
		case tea.KeyEnter:
			s.pop()

			if m.onSubmit != nil {
				return m.onSubmit(m.input.Value())
			}
		case tea.KeyEsc:
			s.pop()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)

			return cmd
		}
	default:
		switch msg.String() {
		case "enter", "esc", " ":
			s.pop()
		}
	}

	return nil
}

func run(fn func() tea.Cmd) tea.Cmd {
	if fn == nil {
		return nil
	}

	return fn()
}
