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

// Package models holds the UI-local mirrors of remote backend state.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Status is the health state of a backend service as seen by a console.
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusHealthy  Status = "healthy"
	StatusDegraded Status = "degraded"
	StatusDown     Status = "down"
	StatusStopped  Status = "stopped"
)

// Connected reports whether the status counts as reachable.
func (s Status) Connected() bool {
	return s == StatusHealthy || s == StatusDegraded
}

// HealthPayload is the body returned by a backend's health endpoint.
type HealthPayload struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version,omitempty"`
	UptimeSeconds float64                `json:"uptime_seconds,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
	Raw           json.RawMessage        `json:"-"`
}

// StatusValue maps the payload's free-form status onto the console enum.
// An empty or unrecognised status from a 2xx response counts as healthy.
func (h *HealthPayload) StatusValue() Status {
	switch strings.ToLower(strings.TrimSpace(h.Status)) {
	case "degraded", "warning", "partial":
		return StatusDegraded
	case "down", "error", "unhealthy", "failed":
		return StatusDown
	case "stopped":
		return StatusStopped
	default:
		return StatusHealthy
	}
}

// ServiceStatus is the record kept per monitored service.
type ServiceStatus struct {
	Service   string
	Status    Status
	CheckedAt time.Time
	Payload   *HealthPayload
	Error     string
}

// NewServiceStatus returns a record in the initial unknown state.
func NewServiceStatus(service string) *ServiceStatus {
	return &ServiceStatus{Service: service, Status: StatusUnknown}
}

// Apply records the outcome of one health check.
func (s *ServiceStatus) Apply(payload *HealthPayload, err error, at time.Time) {
	s.CheckedAt = at

	if err != nil {
		s.Status = StatusDown
		s.Error = err.Error()

		return
	}

	s.Error = ""
	s.Payload = payload

	if payload == nil {
		s.Status = StatusHealthy

		return
	}

	s.Status = payload.StatusValue()
}

// MarkStopped is used after a confirmed stop of a locally managed service.
func (s *ServiceStatus) MarkStopped(at time.Time) {
	s.Status = StatusStopped
	s.CheckedAt = at
	s.Error = ""
}
