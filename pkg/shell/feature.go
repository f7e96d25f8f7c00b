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

import tea "github.com/charmbracelet/bubbletea"

// Feature is implemented by every console. New calls the three methods once,
// in this order: toolbar, sidebar, content.
type Feature interface {
	PopulateToolbar(tb *Toolbar)
	PopulateSidebar(sb *Sidebar)
	PopulateContent(s *Shell) (Content, error)
}

// Content is the main region. It runs on the UI loop and mutates itself in
// Update.
type Content interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// Closer is an optional Feature hook called after the user confirms quitting.
type Closer interface {
	Close() error
}

// InputCapturer is implemented by content that sometimes needs raw keys, for
// example while a text field has focus. While CapturingInput returns true the
// shell forwards every key except ctrl+c to the content.
type InputCapturer interface {
	CapturingInput() bool
}

// NavigateMsg is sent to the content when a sidebar entry is activated.
type NavigateMsg struct {
	ID string
}
