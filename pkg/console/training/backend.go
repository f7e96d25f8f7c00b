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

package training

//go:generate mockgen -destination=mock_training.go -package=training github.com/makr-code/VCC-Clara-sub001/pkg/console/training Backend

import (
	"context"

	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

// Backend is the subset of the training service the console talks to.
// *api.TrainingClient satisfies it.
type Backend interface {
	Name() string
	HealthCheck(ctx context.Context) (*models.HealthPayload, error)
	ListJobs(ctx context.Context, status string) ([]models.JobSummary, error)
	GetJob(ctx context.Context, id string) (*models.JobDetail, error)
	CreateJob(ctx context.Context, p api.JobParams) (*models.CreateAck, error)
	CancelJob(ctx context.Context, id string) (*models.ActionResult, error)
	DeleteJob(ctx context.Context, id string) (*models.ActionResult, error)
	JobMetrics(ctx context.Context, id string) ([]models.MetricPoint, error)
	ExportJob(ctx context.Context, id, format, dst string, progress api.ProgressFunc) (*models.ExportTicket, error)
	JobEvents(ctx context.Context, handle func(models.StreamEvent)) error
}

var _ Backend = (*api.TrainingClient)(nil)
