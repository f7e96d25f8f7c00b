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

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

const (
	resourceDatasets = "datasets"
	FieldName        = "name"
	FieldSourcePath  = "source_path"
	FieldDescription = "description"
)

// DatasetParams is the create-dataset form.
type DatasetParams struct {
	Name        string
	SourcePath  string
	Description string
}

// DatasetClient is the typed view of the dataset backend.
type DatasetClient struct {
	*Client
}

func NewDatasetClient(c *Client) *DatasetClient {
	return &DatasetClient{Client: c}
}

func (d *DatasetClient) ListDatasets(ctx context.Context) ([]models.DatasetSummary, error) {
	items, err := d.List(ctx, resourceDatasets, nil)
	if err != nil {
		return nil, err
	}

	sets, err := decodeItems[models.DatasetSummary](items)
	if err != nil {
		return nil, d.transport("list datasets", 0, err)
	}

	return sets, nil
}

func (d *DatasetClient) GetDataset(ctx context.Context, id string) (*models.DatasetDetail, error) {
	set := &models.DatasetDetail{}
	if err := d.Get(ctx, resourceDatasets, id, set); err != nil {
		return nil, err
	}

	return set, nil
}

// CreateDataset registers a dataset; name and source path are required.
func (d *DatasetClient) CreateDataset(ctx context.Context, p DatasetParams) (*models.CreateAck, error) {
	params := map[string]interface{}{
		FieldName:       p.Name,
		FieldSourcePath: p.SourcePath,
	}

	if p.Description != "" {
		params[FieldDescription] = p.Description
	}

	return d.Create(ctx, resourceDatasets, params, FieldName, FieldSourcePath)
}

func (d *DatasetClient) DeleteDataset(ctx context.Context, id string) (*models.ActionResult, error) {
	return d.Delete(ctx, resourceDatasets, id)
}

func (d *DatasetClient) ExportDataset(ctx context.Context, id, format, dst string, progress ProgressFunc) (*models.ExportTicket, error) {
	return d.Export(ctx, resourceDatasets, id, format, dst, progress)
}
