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

package api

import (
	"context"
	"net/url"

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

const (
	resourceJobs   = "jobs"
	jobEventsPath  = "jobs"
	FieldJobType   = "job_type"
	FieldConfig    = "config_path"
	FieldDatasetID = "dataset_id"
)

// JobParams is the create-job form.
type JobParams struct {
	JobType    string
	ConfigPath string
	DatasetID  string
	Priority   int
}

// TrainingClient is the typed view of the training backend.
type TrainingClient struct {
	*Client
}

func NewTrainingClient(c *Client) *TrainingClient {
	return &TrainingClient{Client: c}
}

// ListJobs lists jobs, optionally filtered server-side by status.
func (t *TrainingClient) ListJobs(ctx context.Context, status string) ([]models.JobSummary, error) {
	var filter url.Values
	if status != "" {
		filter = url.Values{"status": {status}}
	}

	items, err := t.List(ctx, resourceJobs, filter)
	if err != nil {
		return nil, err
	}

	jobs, err := decodeItems[models.JobSummary](items)
	if err != nil {
		return nil, t.transport("list jobs", 0, err)
	}

	return jobs, nil
}

func (t *TrainingClient) GetJob(ctx context.Context, id string) (*models.JobDetail, error) {
	job := &models.JobDetail{}
	if err := t.Get(ctx, resourceJobs, id, job); err != nil {
		return nil, err
	}

	return job, nil
}

// CreateJob submits a new job; job type and config path are required.
func (t *TrainingClient) CreateJob(ctx context.Context, p JobParams) (*models.CreateAck, error) {
	params := map[string]interface{}{
		FieldJobType: p.JobType,
		FieldConfig:  p.ConfigPath,
	}

	if p.DatasetID != "" {
		params[FieldDatasetID] = p.DatasetID
	}

	if p.Priority != 0 {
		params["priority"] = p.Priority
	}

	return t.Create(ctx, resourceJobs, params, FieldJobType, FieldConfig)
}

func (t *TrainingClient) CancelJob(ctx context.Context, id string) (*models.ActionResult, error) {
	return t.Cancel(ctx, resourceJobs, id)
}

func (t *TrainingClient) DeleteJob(ctx context.Context, id string) (*models.ActionResult, error) {
	return t.Delete(ctx, resourceJobs, id)
}

func (t *TrainingClient) JobMetrics(ctx context.Context, id string) ([]models.MetricPoint, error) {
	return t.Metrics(ctx, resourceJobs, id)
}

func (t *TrainingClient) ExportJob(ctx context.Context, id, format, dst string, progress ProgressFunc) (*models.ExportTicket, error) {
	return t.Export(ctx, resourceJobs, id, format, dst, progress)
}

// JobEvents follows the live job event stream.
func (t *TrainingClient) JobEvents(ctx context.Context, handle func(models.StreamEvent)) error {
	return t.Stream(ctx, jobEventsPath, handle)
}
