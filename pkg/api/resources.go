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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

const healthPath = "health"

// HealthCheck probes GET /health (or the configured health path) with the short health timeout. Any failure,
// including a non-2xx answer, is a connectivity error.
func (c *Client) HealthCheck(ctx context.Context) (*models.HealthPayload, error) {
	const op = "health check"

	data, err := c.send(ctx, op, http.MethodGet, c.endpoint(nil, c.healthPath...), nil, c.healthTimeout)
	if err != nil {
		var ae *APIError
		if errors.As(err, &ae) {
			return nil, c.transport(op, ae.StatusCode, fmt.Errorf("%w: %s", errHTTPStatus, ae.Message))
		}

		return nil, err
	}

	payload := &models.HealthPayload{Raw: json.RawMessage(data)}

	// plain-text health bodies are still a healthy answer
	_ = json.Unmarshal(data, payload)

	return payload, nil
}

// List fetches GET /<resource>. filter is sent as the query string.
func (c *Client) List(ctx context.Context, resource string, filter url.Values) ([]json.RawMessage, error) {
	op := "list " + resource

	data, err := c.send(ctx, op, http.MethodGet, c.endpoint(filter, resource), nil, c.timeout)
	if err != nil {
		return nil, err
	}

	items, err := listItems(data, resource)
	if err != nil {
		return nil, c.transport(op, 0, fmt.Errorf("decode response: %w", err))
	}

	return items, nil
}

// Get fetches GET /<resource>/<id> into dst.
func (c *Client) Get(ctx context.Context, resource, id string, dst interface{}) error {
	if strings.TrimSpace(id) == "" {
		return errEmptyID
	}

	op := "get " + resource

	data, err := c.send(ctx, op, http.MethodGet, c.endpoint(nil, resource, id), nil, c.timeout)
	if err != nil {
		return err
	}

	return c.decode(op, data, dst)
}

// Create validates that every required key of params is present and non-empty,
// then POSTs params to /<resource>.
func (c *Client) Create(ctx context.Context, resource string, params map[string]interface{}, required ...string) (*models.CreateAck, error) {
	for _, field := range required {
		if isBlank(params[field]) {
			return nil, &ValidationError{Field: field}
		}
	}

	op := "create " + resource

	data, err := c.send(ctx, op, http.MethodPost, c.endpoint(nil, resource), params, c.timeout)
	if err != nil {
		return nil, err
	}

	var body map[string]interface{}
	if err := c.decodeNumbers(op, data, &body); err != nil {
		return nil, err
	}

	ack := &models.CreateAck{}
	if msg, ok := body["message"].(string); ok {
		ack.Message = msg
	}

	for _, key := range []string{"id", strings.TrimSuffix(resource, "s") + "_id"} {
		if id := idString(body[key]); id != "" {
			ack.ID = id
			break
		}
	}

	if ack.ID == "" {
		return nil, &APIError{Service: c.name, Op: op, Message: errNoIDInResponse.Error()}
	}

	return ack, nil
}

// idString accepts string and numeric ids.
func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case json.Number:
		return id.String()
	}

	return ""
}

// Delete issues DELETE /<resource>/<id>.
func (c *Client) Delete(ctx context.Context, resource, id string) (*models.ActionResult, error) {
	return c.action(ctx, "delete "+resource, http.MethodDelete, id, resource, id)
}

// Cancel issues POST /<resource>/<id>/cancel.
func (c *Client) Cancel(ctx context.Context, resource, id string) (*models.ActionResult, error) {
	return c.action(ctx, "cancel "+resource, http.MethodPost, id, resource, id, "cancel")
}

func (c *Client) action(ctx context.Context, op, method, id string, segments ...string) (*models.ActionResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errEmptyID
	}

	data, err := c.send(ctx, op, method, c.endpoint(nil, segments...), nil, c.timeout)
	if err != nil {
		return nil, err
	}

	result := &models.ActionResult{Success: true}
	if err := c.decode(op, data, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Metrics fetches GET /<resource>/<id>/metrics.
func (c *Client) Metrics(ctx context.Context, resource, id string) ([]models.MetricPoint, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errEmptyID
	}

	op := "metrics " + resource

	data, err := c.send(ctx, op, http.MethodGet, c.endpoint(nil, resource, id, "metrics"), nil, c.timeout)
	if err != nil {
		return nil, err
	}

	items, err := listItems(data, "metrics")
	if err != nil {
		return nil, c.transport(op, 0, fmt.Errorf("decode response: %w", err))
	}

	points, err := decodeItems[models.MetricPoint](items)
	if err != nil {
		return nil, c.transport(op, 0, fmt.Errorf("decode response: %w", err))
	}

	return points, nil
}

func isBlank(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	case []string:
		return len(value) == 0
	default:
		return false
	}
}
