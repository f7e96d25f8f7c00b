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

// Package shell is the window scaffold shared by the Clara consoles: a menu
// bar, a toolbar, sidebar navigation, the main content region and a status
// bar, plus modal dialogs that capture input until answered.
package shell

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	defaultWidth  = 120
	defaultHeight = 36
	sidebarWidth  = 24
	chromeHeight  = 3
	borderSize    = 2
)

type focus int

const (
	focusContent focus = iota
	focusSidebar
)

type keyMap struct {
	Quit  key.Binding
	Force key.Binding
	Focus key.Binding
	Menu  key.Binding
	Help  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Menu:  key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "menu")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
	}
}

// Shell is the bubbletea model wrapping one Feature.
type Shell struct {
	title   string
	version string
	feature Feature
	content Content
	toolbar *Toolbar
	sidebar *Sidebar
	keys    keyMap
	help    help.Model
	logger  zerolog.Logger

	modals []*modal
	menu   menuState
	focus  focus

	status    string
	connText  string
	connected bool
	closing   bool
	width     int
	height    int
}

// Option configures a Shell.
type Option func(*Shell)

func WithLogger(l logger.Logger) Option {
	return func(s *Shell) {
		s.logger = l.WithComponent("shell")
	}
}

func WithVersion(v string) Option {
	return func(s *Shell) {
		s.version = v
	}
}

// New builds the shell around f. The feature populates toolbar, sidebar and
// content exactly once, in that order. A nil feature or a nil content is an
// error.
func New(title string, f Feature, opts ...Option) (*Shell, error) {
	if isNil(f) {
		return nil, ErrNilFeature
	}

	s := &Shell{
		title:    title,
		feature:  f,
		toolbar:  &Toolbar{},
		sidebar:  &Sidebar{},
		keys:     defaultKeys(),
		help:     help.New(),
		logger:   zerolog.Nop(),
		status:   "Ready",
		connText: "Connecting...",
		width:    defaultWidth,
		height:   defaultHeight,
	}

	for _, opt := range opts {
		opt(s)
	}

	f.PopulateToolbar(s.toolbar)
	f.PopulateSidebar(s.sidebar)

	content, err := f.PopulateContent(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errPopulateContent, err)
	}

	if isNil(content) {
		return nil, ErrNoContent
	}

	s.content = content
	s.resize()

	return s, nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// Title returns the window title.
func (s *Shell) Title() string {
	return s.title
}

// SetStatus replaces the status bar message.
func (s *Shell) SetStatus(text string) {
	s.status = text
}

// Status returns the status bar message.
func (s *Shell) Status() string {
	return s.status
}

// SetConnection updates the connection indicator.
func (s *Shell) SetConnection(text string, connected bool) {
	s.connText = text
	s.connected = connected
}

// Connection returns the indicator text and state.
func (s *Shell) Connection() (string, bool) {
	return s.connText, s.connected
}

// Toolbar exposes the populated toolbar.
func (s *Shell) Toolbar() *Toolbar {
	return s.toolbar
}

// Sidebar exposes the populated sidebar.
func (s *Shell) Sidebar() *Sidebar {
	return s.sidebar
}

// Navigate switches the content to the sidebar entry with the given id.
func (s *Shell) Navigate(id string) tea.Cmd {
	idx := s.sidebar.indexOf(id)
	if idx < 0 {
		return nil
	}

	return s.activate(idx)
}

func (s *Shell) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(s.title), s.content.Init())
}

func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.resize()

		return s, nil
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, s.content.Update(msg)
}

func (s *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(s.modals) > 0 {
		return s.handleModalKey(msg)
	}

	if s.menu.open {
		return s.handleMenuKey(msg)
	}

	if key.Matches(msg, s.keys.Force) {
		return s.requestClose()
	}

	if c, ok := s.content.(InputCapturer); ok && c.CapturingInput() {
		return s.content.Update(msg)
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		return s.requestClose()
	case key.Matches(msg, s.keys.Menu):
		s.menu = menuState{open: true}
		return nil
	case key.Matches(msg, s.keys.Focus):
		s.toggleFocus()
		return nil
	case key.Matches(msg, s.keys.Help):
		return s.showHelp()
	}

	for _, a := range s.toolbar.Actions() {
		if key.Matches(msg, a.Key) && a.Run != nil {
			return a.Run()
		}
	}

	if idx, ok := s.sidebar.digitIndex(msg.String()); ok {
		return s.activate(idx)
	}

	if s.focus == focusSidebar {
		return s.handleSidebarKey(msg)
	}

	return s.content.Update(msg)
}

func (s *Shell) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		s.sidebar.move(-1)
	case "down", "j":
		s.sidebar.move(1)
	case "enter", " ":
		cmd := s.activate(s.sidebar.cursor)
		s.focus = focusContent

		return cmd
	}

	return nil
}

func (s *Shell) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(s.sidebar.items) {
		return nil
	}

	s.sidebar.active = idx
	s.sidebar.cursor = idx

	return s.content.Update(NavigateMsg{ID: s.sidebar.items[idx].ID})
}

func (s *Shell) toggleFocus() {
	if s.focus == focusContent && len(s.sidebar.items) > 0 {
		s.focus = focusSidebar
		s.sidebar.cursor = s.sidebar.active

		return
	}

	s.focus = focusContent
}

// requestClose asks before quitting. Declining changes nothing.
func (s *Shell) requestClose() tea.Cmd {
	if s.closing {
		return nil
	}

	s.closing = true

	s.Confirm(fmt.Sprintf("Quit %s?", s.title), s.quit, func() tea.Cmd {
		s.closing = false
		return nil
	})

	return nil
}

func (s *Shell) quit() tea.Cmd {
	if c, ok := s.feature.(Closer); ok {
		if err := c.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Error during shutdown")
		}
	}

	return tea.Quit
}

func (s *Shell) showHelp() tea.Cmd {
	lines := make([]string, 0, len(s.toolbar.Actions())+5)

	for _, b := range append(bindings(s.toolbar.Actions()), s.keys.Focus, s.keys.Menu, s.keys.Help, s.keys.Quit) {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-8s %s", h.Key, h.Desc))
	}

	if n := len(s.sidebar.items); n > 0 {
		lines = append(lines, fmt.Sprintf("%-8s %s", fmt.Sprintf("1-%d", min(n, 9)), "switch view"))
	}

	s.Info("Keys", strings.Join(lines, "\n"))

	return nil
}

func (s *Shell) showAbout() tea.Cmd {
	text := s.title
	if s.version != "" {
		text += "\nversion " + s.version
	}

	s.Info("About", text)

	return nil
}

func (s *Shell) resize() {
	w := s.width - sidebarWidth - 2*borderSize
	h := s.height - chromeHeight - borderSize

	s.content.SetSize(max(w, 10), max(h, 3))
}

func (s *Shell) View() string {
	bodyHeight := max(s.height-chromeHeight, 3)

	var body string

	switch {
	case len(s.modals) > 0:
		body = lipgloss.Place(s.width, bodyHeight, lipgloss.Center, lipgloss.Center, s.renderModal(s.modals[0]))
	case s.menu.open:
		body = lipgloss.Place(s.width, bodyHeight, lipgloss.Left, lipgloss.Top, s.renderMenu())
	default:
		body = s.renderBody(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.renderMenuBar(),
		s.renderToolbar(),
		body,
		s.renderStatusBar(),
	)
}

func (s *Shell) renderMenuBar() string {
	parts := []string{Theme.Title.Render(" " + s.title + " ")}

	for i, m := range s.Menu() {
		label := " " + m.Title + " "
		if s.menu.open && i == s.menu.menu {
			label = Theme.MenuOpen.Render(label)
		}

		parts = append(parts, label)
	}

	return Theme.MenuBar.Width(s.width).Render(strings.Join(parts, " "))
}

func (s *Shell) renderToolbar() string {
	left := s.help.ShortHelpView(bindings(s.toolbar.left))
	right := s.help.ShortHelpView(bindings(s.toolbar.right))

	gap := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return Theme.Toolbar.Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Shell) renderBody(height int) string {
	var nav strings.Builder

	if s.sidebar.title != "" {
		nav.WriteString(Theme.Title.Render(s.sidebar.title) + "\n\n")
	}

	for i, item := range s.sidebar.items {
		line := fmt.Sprintf("%d %s", i+1, item.Title)

		switch {
		case s.focus == focusSidebar && i == s.sidebar.cursor:
			line = Theme.NavCursor.Render("> " + line)
		case i == s.sidebar.active:
			line = Theme.NavActive.Render("  " + line)
		default:
			line = Theme.NavItem.Render("  " + line)
		}

		nav.WriteString(line + "\n")
	}

	sideStyle := Theme.Sidebar
	contentStyle := Theme.Content

	if s.focus == focusSidebar {
		sideStyle = sideStyle.BorderForeground(lipgloss.Color(draculaPurple))
	} else {
		contentStyle = Theme.Focused
	}

	inner := height - borderSize
	side := sideStyle.Width(sidebarWidth - borderSize).Height(inner).Render(nav.String())
	main := contentStyle.Width(s.width - sidebarWidth - borderSize).Height(inner).Render(s.content.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, side, main)
}

func (s *Shell) renderStatusBar() string {
	conn := Theme.Offline.Render("● " + s.connText)
	if s.connected {
		conn = Theme.Online.Render("● " + s.connText)
	}

	status := Theme.Status.Width(max(s.width-lipgloss.Width(conn), 0)).Render(s.status)

	return lipgloss.JoinHorizontal(lipgloss.Top, status, conn)
}

func (s *Shell) renderMenu() string {
	m := s.Menu()[s.menu.menu]

	var b strings.Builder

	for i, item := range m.Items {
		line := fmt.Sprintf(" %-20s %8s ", item.Label, item.Key.Help().Key)
		if i == s.menu.item {
			line = Theme.Selected.Render(line)
		}

		b.WriteString(line + "\n")
	}

	return Theme.Modal.Padding(0, 1).Render(strings.TrimSuffix(b.String(), "\n"))
}

func (s *Shell) renderModal(m *modal) string {
	title := Theme.Title.Render(m.Title)

	switch m.Kind {
	case KindWarn:
		title = Theme.Warning.Render("⚠ " + m.Title)
	case KindError:
		title = Theme.Error.Render("✗ " + m.Title)
	}

	var footer string

	switch m.Kind {
	case KindConfirm:
		yes, no := " Yes ", " No "
		if m.yes {
			yes = Theme.Selected.Render(yes)
		} else {
			no = Theme.Selected.Render(no)
		}

		footer = yes + "  " + no + Theme.Help.Render("   y/n")
	case KindPrompt:
		footer = m.input.View() + "\n" + Theme.Help.Render("enter confirm • esc cancel")
	default:
		footer = Theme.Help.Render("enter close")
	}

	parts := []string{title, ""}
	if m.Text != "" {
		parts = append(parts, m.Text, "")
	}

	parts = append(parts, footer)

	width := min(max(s.width*2/3, 30), s.width-4)

	return Theme.Modal.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
