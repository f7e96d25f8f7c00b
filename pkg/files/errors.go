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

import "errors"

var (
	ErrInvalidYAML  = errors.New("invalid YAML")
	ErrInvalidJSON  = errors.New("invalid JSON")
	errBackup       = errors.New("failed to write backup")
	errWrite        = errors.New("failed to write file")
	errNotDirectory = errors.New("not a directory")
	errRowWidth     = errors.New("row width does not match header")
)
