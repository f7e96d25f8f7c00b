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
	"encoding/json"
	"time"
)

// CreateAck acknowledges a successful create request.
type CreateAck struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

// ActionResult is the body of delete/cancel style operations.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ExportTicket describes a server-side export ready for download.
type ExportTicket struct {
	ExportID    string `json:"export_id"`
	DownloadURL string `json:"download_url"`
	Format      string `json:"format"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

// StreamEvent is one message pushed over a backend websocket.
type StreamEvent struct {
	Type      string          `json:"type"`
	Resource  string          `json:"resource,omitempty"`
	ID        string          `json:"id,omitempty"`
	Status    string          `json:"status,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// AuditEntry is one line of the newline-delimited JSON audit log.
type AuditEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Actor     string `json:"actor,omitempty"`
	Action    string `json:"action,omitempty"`
	Message   string `json:"message"`
	Raw       string `json:"-"`
}

// AuditInvalid marks audit log lines that were not valid JSON.
const AuditInvalid = "invalid"
