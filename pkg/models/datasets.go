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

package models

import (
	"fmt"
	"strconv"
)

const (
	DatasetPending    = "pending"
	DatasetProcessing = "processing"
	DatasetCompleted  = "completed"
	DatasetFailed     = "failed"
)

// DatasetStatuses lists the values the dataset console can filter on.
var DatasetStatuses = []string{DatasetPending, DatasetProcessing, DatasetCompleted, DatasetFailed}

// DatasetSummary is one row of the dataset list.
type DatasetSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	DocumentCount int    `json:"document_count"`
	SizeBytes     int64  `json:"size_bytes"`
	CreatedAt     string `json:"created_at"`
}

// Row flattens the summary for table display: name, status, documents, size, created.
func (d DatasetSummary) Row() []string {
	return []string{d.Name, d.Status, strconv.Itoa(d.DocumentCount) + " docs", HumanBytes(d.SizeBytes), d.CreatedAt}
}

// DatasetDetail is the full dataset resource as returned by GET /datasets/{id}.
type DatasetDetail struct {
	DatasetSummary
	SourcePath  string   `json:"source_path,omitempty"`
	Description string   `json:"description,omitempty"`
	Formats     []string `json:"formats,omitempty"`
}

// HumanBytes renders a byte count with binary units.
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
