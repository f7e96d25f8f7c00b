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
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
)

// WriteCSV writes a header and rows as RFC 4180 CSV.
func WriteCSV(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", errRowWidth, i, len(row), len(header))
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return err
	}

	return WriteAtomic(path, buf.Bytes(), defaultPerm)
}

// WriteJSONL writes one JSON document per line.
func WriteJSONL[T any](path string, records []T) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return WriteAtomic(path, buf.Bytes(), defaultPerm)
}
