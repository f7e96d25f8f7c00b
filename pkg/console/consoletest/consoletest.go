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

// Package consoletest drives consoles through their shell in tests.
package consoletest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

const settleTimeout = 3 * time.Second

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+u":    tea.KeyCtrlU,
	"ctrl+c":    tea.KeyCtrlC,
}

// Key builds the message the terminal sends for k.
func Key(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// Press sends keys to the shell one after another.
func Press(s *shell.Shell, keys ...string) {
	for _, k := range keys {
		s.Update(Key(k))
	}
}

// Type sends text one rune at a time.
func Type(s *shell.Shell, text string) {
	for _, r := range text {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Settle waits for the next dispatcher message and feeds it to the shell.
func Settle(t *testing.T, s *shell.Shell, d *tasks.Dispatcher) tea.Msg {
	t.Helper()

	out := make(chan tea.Msg, 1)

	go func() {
		out <- d.Listen()()
	}()

	select {
	case msg := <-out:
		s.Update(msg)
		return msg
	case <-time.After(settleTimeout):
		t.Fatal("no task finished in time")
		return nil
	}
}

// SettleN calls Settle n times.
func SettleN(t *testing.T, s *shell.Shell, d *tasks.Dispatcher, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		Settle(t, s, d)
	}
}

// Execute runs cmd and every command nested in batches, returning the
// resulting messages. Commands must not block indefinitely.
func Execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}

		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Execute(c)...)
	}

	return out
}
