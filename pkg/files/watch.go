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
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports changes to path (written, created, removed or renamed) until
// ctx is cancelled. The parent directory is watched so that atomic replaces
// are seen too. The returned channel is closed when watching ends.
func Watch(ctx context.Context, path string) (<-chan string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	changes := make(chan string, 1)

	go func() {
		defer close(changes)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != abs || event.Op == fsnotify.Chmod {
					continue
				}

				select {
				case changes <- abs:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return changes, nil
}
