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
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one entry of a drop-down menu.
type MenuItem struct {
	Label string
	Key   key.Binding
	Run   func() tea.Cmd
}

// Menu is a titled drop-down opened with f10.
type Menu struct {
	Title string
	Items []MenuItem
}

type menuState struct {
	open bool
	menu int
	item int
}

// Menu returns the File, View and Help menus. File carries the toolbar
// actions, View the sidebar entries.
func (s *Shell) Menu() []Menu {
	file := Menu{Title: "File"}
	for _, a := range s.toolbar.Actions() {
		file.Items = append(file.Items, MenuItem{Label: a.Label, Key: a.Key, Run: a.Run})
	}

	file.Items = append(file.Items, MenuItem{Label: "Quit", Key: s.keys.Quit, Run: s.requestClose})

	view := Menu{Title: "View"}
	for i, item := range s.sidebar.Items() {
		idx := i
		digit := fmt.Sprint(i + 1)
		view.Items = append(view.Items, MenuItem{
			Label: item.Title,
			Key:   key.NewBinding(key.WithKeys(digit), key.WithHelp(digit, item.Title)),
			Run:   func() tea.Cmd { return s.activate(idx) },
		})
	}

	view.Items = append(view.Items, MenuItem{Label: "Switch pane", Key: s.keys.Focus, Run: func() tea.Cmd {
		s.toggleFocus()
		return nil
	}})

	help := Menu{Title: "Help", Items: []MenuItem{
		{Label: "Keys", Key: s.keys.Help, Run: s.showHelp},
		{Label: "About", Key: key.NewBinding(key.WithHelp("", "About")), Run: s.showAbout},
	}}

	return []Menu{file, view, help}
}

func (s *Shell) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	menus := s.Menu()

	switch msg.String() {
	case "esc", "f10":
		s.menu.open = false
	case "left", "h":
		s.menu.menu = (s.menu.menu + len(menus) - 1) % len(menus)
		s.menu.item = 0
	case "right", "l":
		s.menu.menu = (s.menu.menu + 1) % len(menus)
		s.menu.item = 0
	case "up", "k":
		n := len(menus[s.menu.menu].Items)
		s.menu.item = (s.menu.item + n - 1) % n
	case "down", "j":
		n := len(menus[s.menu.menu].Items)
		s.menu.item = (s.menu.item + 1) % n
	case "enter":
		item := menus[s.menu.menu].Items[s.menu.item]
		s.menu.open = false

		if item.Run != nil {
			return item.Run()
		}
	}

	return nil
}
