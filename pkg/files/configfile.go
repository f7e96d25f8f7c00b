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

// Package files holds the consoles' local file interfaces: configuration
// editing with backups, the audit log reader, table exports, a directory
// browser and a change watcher.
package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBackupSuffix = ".bak"
	defaultPerm         = 0o644
)

// ConfigFile loads and saves YAML/JSON configuration files as opaque text.
// Save validates the content, keeps the previous version next to the file and
// replaces the file atomically. The zero value is ready to use.
type ConfigFile struct {
	BackupSuffix string
}

// Load returns the file content verbatim.
func (ConfigFile) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// BackupPath is where Save keeps the previous content of path.
func (c ConfigFile) BackupPath(path string) string {
	suffix := c.BackupSuffix
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}

	return path + suffix
}

// Save writes content to path. The content is normalised to end with exactly
// one newline, so a save followed by a load round-trips byte for byte.
func (c ConfigFile) Save(path, content string) error {
	content = Normalize(content)

	if err := Validate(path, content); err != nil {
		return err
	}

	perm := fs.FileMode(defaultPerm)

	previous, err := os.ReadFile(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("%w: %w", errBackup, err)
	default:
		if info, statErr := os.Stat(path); statErr == nil {
			perm = info.Mode().Perm()
		}

		if err := WriteAtomic(c.BackupPath(path), previous, perm); err != nil {
			return fmt.Errorf("%w: %w", errBackup, err)
		}
	}

	return WriteAtomic(path, []byte(content), perm)
}

// Normalize trims trailing newlines and appends exactly one.
func Normalize(content string) string {
	return strings.TrimRight(content, "\n") + "\n"
}

// Validate parses content according to the extension of path. Files with
// other extensions are accepted as is.
func Validate(path, content string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v interface{}
		if err := yaml.Unmarshal([]byte(content), &v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidYAML, err)
		}
	case ".json":
		var v interface{}
		if err := json.Unmarshal([]byte(content), &v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
	}

	return nil
}

// WriteAtomic writes data to a temporary file in the target directory and
// renames it over path.
func WriteAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	name := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(name)

		return fmt.Errorf("%w: %s: %w", errWrite, path, cause)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}

	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("%w: %s: %w", errWrite, path, err)
	}

	if err := os.Chmod(name, perm); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("%w: %s: %w", errWrite, path, err)
	}

	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("%w: %s: %w", errWrite, path, err)
	}

	return nil
}
