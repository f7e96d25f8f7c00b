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

import "github.com/charmbracelet/lipgloss"

const (
	draculaBackground = "#282A36"
	draculaCurrent    = "#44475A"
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

// Styles used by the shell. Consoles reuse them through Theme.
type Styles struct {
	Title     lipgloss.Style
	MenuBar   lipgloss.Style
	MenuOpen  lipgloss.Style
	Toolbar   lipgloss.Style
	Sidebar   lipgloss.Style
	Content   lipgloss.Style
	Focused   lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavCursor lipgloss.Style
	Status    lipgloss.Style
	Online    lipgloss.Style
	Offline   lipgloss.Style
	Modal     lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Selected  lipgloss.Style
}

// Theme is the Dracula palette shared by all consoles.
var Theme = newStyles()

func newStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		MenuBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)).
			Background(lipgloss.Color(draculaCurrent)),
		MenuOpen: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaBackground)).
			Background(lipgloss.Color(draculaPurple)),
		Toolbar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaComment)).
			Padding(0, 1),
		Content: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaComment)),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaPurple)),
		NavItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)),
		NavActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)).
			Bold(true),
		NavCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)).
			Background(lipgloss.Color(draculaCurrent)).
			Padding(0, 1),
		Online: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)).
			Background(lipgloss.Color(draculaCurrent)).
			Padding(0, 1),
		Offline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Background(lipgloss.Color(draculaCurrent)).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(draculaCyan)).
			Foreground(lipgloss.Color(draculaForeground)).
			Padding(1, 2),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaBackground)).
			Background(lipgloss.Color(draculaPink)).
			Bold(true),
	}
}
