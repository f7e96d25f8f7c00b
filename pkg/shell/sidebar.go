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

import "strconv"

// NavItem is one sidebar entry.
type NavItem struct {
	ID    string
	Title string
}

// Sidebar is the navigation list on the left. Entries 1-9 are also reachable
// with the digit keys.
type Sidebar struct {
	title  string
	items  []NavItem
	cursor int
	active int
}

func (s *Sidebar) SetTitle(title string) {
	s.title = title
}

func (s *Sidebar) Add(id, title string) {
	s.items = append(s.items, NavItem{ID: id, Title: title})
}

func (s *Sidebar) Items() []NavItem {
	return s.items
}

// Active returns the id of the current view, or "" for an empty sidebar.
func (s *Sidebar) Active() string {
	if s.active < 0 || s.active >= len(s.items) {
		return ""
	}

	return s.items[s.active].ID
}

func (s *Sidebar) move(delta int) {
	if len(s.items) == 0 {
		return
	}

	s.cursor = (s.cursor + delta + len(s.items)) % len(s.items)
}

func (s *Sidebar) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}

	return -1
}

// digitIndex maps "1".."9" onto an item index.
func (s *Sidebar) digitIndex(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 1 || n > 9 || n > len(s.items) {
		return 0, false
	}

	return n - 1, true
}
