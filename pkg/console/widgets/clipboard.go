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

package widgets

import "github.com/atotto/clipboard"

// copyFn is swapped in tests; headless CI has no clipboard.
var copyFn = clipboard.WriteAll

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	return copyFn(text)
}
