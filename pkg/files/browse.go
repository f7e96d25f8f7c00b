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

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ConfigExtensions are the file types the configuration editor opens.
var ConfigExtensions = []string{".yaml", ".yml", ".json"}

// Entry is one item of a directory listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Browse lists dir with directories first, then files, each sorted by name.
// Hidden entries are skipped; when exts is non-empty only files with one of
// those extensions are listed.
func Browse(dir string, exts ...string) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errNotDirectory, dir)
	}

	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))

	for _, de := range des {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if !de.IsDir() && !matchExt(name, exts) {
			continue
		}

		fi, err := de.Info()
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			Name:    name,
			Path:    filepath.Join(dir, name),
			IsDir:   de.IsDir(),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}

		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

func matchExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == strings.ToLower(want) {
			return true
		}
	}

	return false
}
