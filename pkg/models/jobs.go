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
	"fmt"
)

const (
	JobPending   = "pending"
	JobQueued    = "queued"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
	JobCancelled = "cancelled"
)

// JobStatuses lists the values the training console can filter on.
var JobStatuses = []string{JobPending, JobQueued, JobRunning, JobCompleted, JobFailed, JobCancelled}

// JobSummary is one row of the training job list.
type JobSummary struct {
	ID        string  `json:"id"`
	JobType   string  `json:"job_type"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	CreatedAt string  `json:"created_at"`
}

// UnmarshalJSON also accepts the job_id and type spellings used by older backends.
func (j *JobSummary) UnmarshalJSON(data []byte) error {
	type plain JobSummary

	var aux struct {
		plain
		JobID string `json:"job_id"`
		Type  string `json:"type"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*j = JobSummary(aux.plain)
	if j.ID == "" {
		j.ID = aux.JobID
	}

	if j.JobType == "" {
		j.JobType = aux.Type
	}

	return nil
}

// ProgressLabel renders progress as a percentage. Values above 1 are taken
// to already be percentages.
func (j JobSummary) ProgressLabel() string {
	p := j.Progress
	if p <= 1 {
		p *= 100
	}

	return fmt.Sprintf("%.0f%%", p)
}

// Row flattens the summary for table display: id, type, status, progress, created.
func (j JobSummary) Row() []string {
	return []string{j.ID, j.JobType, j.Status, j.ProgressLabel(), j.CreatedAt}
}

// JobDetail is the full job resource as returned by GET /jobs/{id}.
type JobDetail struct {
	JobSummary
	ConfigPath string                 `json:"config_path,omitempty"`
	DatasetID  string                 `json:"dataset_id,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Extra      map[string]interface{} `json:"-"`
}

// UnmarshalJSON keeps the whole document in Extra for the detail pane.
func (j *JobDetail) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &j.JobSummary); err != nil {
		return err
	}

	var rest struct {
		ConfigPath string `json:"config_path"`
		DatasetID  string `json:"dataset_id"`
		Message    string `json:"message"`
	}

	if err := json.Unmarshal(data, &rest); err != nil {
		return err
	}

	j.ConfigPath, j.DatasetID, j.Message = rest.ConfigPath, rest.DatasetID, rest.Message

	return json.Unmarshal(data, &j.Extra)
}

// MetricPoint is a single training metric sample.
type MetricPoint struct {
	Step  int     `json:"step"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SeriesByName groups metric points per metric, preserving step order.
func SeriesByName(points []MetricPoint) (map[string][]float64, []string) {
	series := make(map[string][]float64)
	names := make([]string, 0)

	for _, p := range points {
		if _, ok := series[p.Name]; !ok {
			names = append(names, p.Name)
		}

		series[p.Name] = append(series[p.Name], p.Value)
	}

	return series, names
}
