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

package dataset

//go:generate mockgen -destination=mock_dataset.go -package=dataset github.com/makr-code/VCC-Clara-sub001/pkg/console/dataset Backend

import (
	"context"

	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

// Backend is the dataset service as seen by the console.
type Backend interface {
	Name() string
	HealthCheck(ctx context.Context) (*models.HealthPayload, error)
	ListDatasets(ctx context.Context) ([]models.DatasetSummary, error)
	GetDataset(ctx context.Context, id string) (*models.DatasetDetail, error)
	CreateDataset(ctx context.Context, p api.DatasetParams) (*models.CreateAck, error)
	DeleteDataset(ctx context.Context, id string) (*models.ActionResult, error)
	ExportDataset(ctx context.Context, id, format, dst string, progress api.ProgressFunc) (*models.ExportTicket, error)
}

var _ Backend = (*api.DatasetClient)(nil)
