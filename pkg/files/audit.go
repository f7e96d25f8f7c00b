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
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

const maxAuditLine = 1 << 20

// ReadAuditLog reads a newline-delimited JSON log, oldest first. Lines that
// do not parse are kept with level "invalid" and the raw text as message.
// A positive limit keeps only the newest limit entries.
func ReadAuditLog(path string, limit int) ([]models.AuditEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []models.AuditEntry

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxAuditLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entries = append(entries, parseAuditLine(line))

		if limit > 0 && len(entries) > 2*limit {
			entries = append(entries[:0:0], entries[len(entries)-limit:]...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	return entries, nil
}

func parseAuditLine(line string) models.AuditEntry {
	var entry models.AuditEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return models.AuditEntry{Level: models.AuditInvalid, Message: line, Raw: line}
	}

	if entry.Level == "" {
		entry.Level = "info"
	}

	entry.Raw = line

	return entry
}
