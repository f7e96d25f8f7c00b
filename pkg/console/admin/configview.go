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

package admin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/files"
	"github.com/makr-code/VCC-Clara-sub001/pkg/tasks"
)

const parentEntry = ".."

type configLoadedMsg struct {
	path    string
	content string
	reload  bool
}

type configSavedMsg struct {
	path   string
	backup string
}

type configChangedMsg struct {
	gen  int
	path string
	next <-chan string
}

type browseMsg struct {
	seq     uint64
	dir     string
	entries []files.Entry
	err     error
}

type diskMsg struct {
	gen     int
	path    string
	content string
	err     error
}

type configView struct {
	root    string
	dir     string
	file    files.ConfigFile
	entries *widgets.ResourceList
	editor  textarea.Model
	path    string

	watchGen    int
	watchCancel context.CancelFunc
}

func newConfigView(root string, cf files.ConfigFile) *configView {
	ed := textarea.New()
	ed.ShowLineNumbers = true
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.Placeholder = "Open a file from the list"

	return &configView{
		root: root,
		dir:  root,
		file: cf,
		entries: widgets.NewResourceList([]widgets.Column{
			{Title: "Name", Width: 28},
			{Title: "Size", Width: 9},
			{Title: "Modified", Width: 16},
		}),
		editor: ed,
	}
}

func (v *configView) editing() bool {
	return v.editor.Focused()
}

func (v *configView) stopWatch() {
	if v.watchCancel != nil {
		v.watchCancel()
		v.watchCancel = nil
	}
}

func (c *Console) browse() {
	v := c.cfg
	seq, dir := v.entries.NextSeq(), v.dir

	c.Submit("browse "+filepath.Base(dir), func(context.Context, tasks.Report) (tea.Msg, error) {
		entries, err := files.Browse(dir, files.ConfigExtensions...)
		return browseMsg{seq: seq, dir: dir, entries: entries, err: err}, nil
	})
}

func (c *Console) applyBrowse(msg browseMsg) {
	v := c.cfg

	if msg.err != nil {
		if v.entries.SetError(msg.seq, msg.err) {
			c.ReportError("browse "+msg.dir, msg.err)
		}

		return
	}

	items := make([]widgets.Item, 0, len(msg.entries)+1)

	if filepath.Clean(msg.dir) != filepath.Clean(v.root) {
		items = append(items, widgets.Item{
			ID:    filepath.Dir(msg.dir),
			Name:  parentEntry,
			Cells: []string{parentEntry + "/", "", ""},
			Value: files.Entry{Name: parentEntry, Path: filepath.Dir(msg.dir), IsDir: true},
		})
	}

	for _, e := range msg.entries {
		name, size := e.Name, fmt.Sprint(e.Size)
		if e.IsDir {
			name, size = e.Name+"/", "-"
		}

		items = append(items, widgets.Item{
			ID:    e.Path,
			Name:  e.Name,
			Cells: []string{name, size, e.ModTime.Format("2006-01-02 15:04")},
			Value: e,
		})
	}

	v.entries.SetItems(msg.seq, items)
}

func (c *Console) configKey(msg tea.KeyMsg) tea.Cmd {
	v := c.cfg

	if v.editing() {
		switch msg.String() {
		case "ctrl+s":
			c.saveConfig()
			return nil
		case "esc":
			v.editor.Blur()
			return nil
		}

		var cmd tea.Cmd
		v.editor, cmd = v.editor.Update(msg)

		return cmd
	}

	switch msg.String() {
	case "enter":
		if v.entries.Filtering() {
			break
		}

		it, ok := v.entries.Selected()
		if !ok {
			return nil
		}

		entry, _ := it.Value.(files.Entry)
		if entry.IsDir {
			v.dir = entry.Path
			c.browse()

			return nil
		}

		c.openConfig(entry.Path, false)

		return nil
	case "i":
		if v.path != "" {
			return v.editor.Focus()
		}
	}

	return v.entries.Update(msg)
}

func (c *Console) openConfig(path string, reload bool) {
	c.Submit("open "+filepath.Base(path), func(context.Context, tasks.Report) (tea.Msg, error) {
		content, err := c.cfg.file.Load(path)
		if err != nil {
			return nil, err
		}

		return configLoadedMsg{path: path, content: content, reload: reload}, nil
	})
}

func (c *Console) reloadConfig() tea.Cmd {
	if c.cfg.path == "" {
		c.Shell.Info("No file open", "Open a configuration file first.")
		return nil
	}

	c.openConfig(c.cfg.path, true)

	return nil
}

func (c *Console) applyConfig(msg configLoadedMsg) tea.Cmd {
	v := c.cfg

	v.editor.SetValue(msg.content)
	v.editor.CursorStart()

	if msg.reload {
		c.Shell.SetStatus("Reloaded " + msg.path)
		return nil
	}

	c.Shell.SetStatus("Opened " + msg.path)

	if v.path == msg.path && v.watchCancel != nil {
		return v.editor.Focus()
	}

	v.path = msg.path

	return tea.Batch(v.editor.Focus(), c.watchConfig(msg.path))
}

func (c *Console) saveConfig() {
	v := c.cfg
	path, content := v.path, v.editor.Value()

	if path == "" {
		return
	}

	if err := files.Validate(path, content); err != nil {
		c.ReportError("save "+filepath.Base(path), err)
		return
	}

	c.Submit("save "+filepath.Base(path), func(context.Context, tasks.Report) (tea.Msg, error) {
		if err := v.file.Save(path, content); err != nil {
			return nil, err
		}

		return configSavedMsg{path: path, backup: v.file.BackupPath(path)}, nil
	})
}

func (c *Console) watchConfig(path string) tea.Cmd {
	v := c.cfg
	v.stopWatch()

	ctx, cancel := context.WithCancel(context.Background())

	changes, err := files.Watch(ctx, path)
	if err != nil {
		cancel()
		c.Logger.Warn().Str("path", path).Err(err).Msg("Cannot watch config file")

		return nil
	}

	v.watchGen++
	v.watchCancel = cancel

	return waitChange(v.watchGen, changes)
}

func waitChange(gen int, changes <-chan string) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return nil
		}

		return configChangedMsg{gen: gen, path: path, next: changes}
	}
}

// configChanged reads the file again in the background after a change event.
func (c *Console) configChanged(msg configChangedMsg) tea.Cmd {
	v := c.cfg
	if msg.gen != v.watchGen {
		return nil
	}

	gen, path := msg.gen, v.path

	c.Submit("check "+filepath.Base(path), func(context.Context, tasks.Report) (tea.Msg, error) {
		content, err := v.file.Load(path)
		return diskMsg{gen: gen, path: path, content: content, err: err}, nil
	})

	return waitChange(msg.gen, msg.next)
}

// applyDisk tells the user about edits made outside the console. Content
// that matches the editor is our own save.
func (c *Console) applyDisk(msg diskMsg) {
	v := c.cfg
	if msg.gen != v.watchGen || msg.path != v.path {
		return
	}

	switch {
	case errors.Is(msg.err, os.ErrNotExist):
		c.Shell.Warn("File removed", msg.path+" no longer exists on disk.")
	case msg.err != nil:
		c.Logger.Debug().Str("path", msg.path).Err(msg.err).Msg("Cannot read changed config")
	case msg.content != files.Normalize(v.editor.Value()) && msg.content != v.editor.Value():
		c.Shell.Info("File changed on disk", msg.path+" was modified outside the console. Press L to reload it.")
	}
}
