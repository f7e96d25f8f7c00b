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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New("training", srv.URL, opts...)
	require.NoError(t, err)

	return c
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New("x", "")
	require.ErrorIs(t, err, errEmptyBaseURL)

	_, err = New("x", "localhost:8080")
	require.ErrorIs(t, err, errInvalidBaseURL)
}

func TestHealthCheck(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "degraded", "version": "1.4.0"})
	}))

	payload, err := c.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", payload.Version)
	assert.Equal(t, models.StatusDegraded, payload.StatusValue())
	assert.NotEmpty(t, payload.Raw)
}

func TestHealthCheck_NonSuccessIsTransport(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "warming up"})
	}))

	_, err := c.HealthCheck(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsLogical(err))
}

func TestHealthCheck_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}), WithHealthTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := c.HealthCheck(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHealthCheck_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New("dataset", url)
	require.NoError(t, err)

	_, err = c.HealthCheck(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Contains(t, err.Error(), "dataset health check")
}

func TestList_ShapesAndEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare array", body: `[{"id":"a"},{"id":"b"}]`, want: 2},
		{name: "items envelope", body: `{"items":[{"id":"a"}],"total":1}`, want: 1},
		{name: "resource envelope", body: `{"jobs":[{"id":"a"},{"id":"b"},{"id":"c"}]}`, want: 3},
		{name: "empty array", body: `[]`, want: 0},
		{name: "null", body: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))

			items, err := c.List(context.Background(), "jobs", nil)
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestListJobs_StatusFilterAndOrder(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs", r.URL.Path)
		assert.Equal(t, "running", r.URL.Query().Get("status"))
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": "j-2", "job_type": "lora", "status": "running", "progress": 0.5},
			{"job_id": "j-1", "type": "full", "status": "running", "progress": 10},
		})
	}))

	jobs, err := NewTrainingClient(c).ListJobs(context.Background(), "running")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "j-2", jobs[0].ID)
	assert.Equal(t, "j-1", jobs[1].ID)
	assert.Equal(t, "full", jobs[1].JobType)
}

func TestGet_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := NewTrainingClient(c).GetJob(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsLogical(err))
	assert.True(t, IsNotFound(err))
}

func TestGet_Detail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/datasets/ds%201", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id": "ds 1", "name": "alpha", "status": "completed", "document_count": 42, "source_path": "/data/alpha",
		})
	}))

	ds, err := NewDatasetClient(c).GetDataset(context.Background(), "ds 1")
	require.NoError(t, err)
	assert.Equal(t, "alpha", ds.Name)
	assert.Equal(t, 42, ds.DocumentCount)
	assert.Equal(t, "/data/alpha", ds.SourcePath)
}

func TestCreate_ValidationBeforeRequest(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		writeJSON(w, http.StatusCreated, map[string]string{"id": "x"})
	}))

	_, err := NewDatasetClient(c).CreateDataset(context.Background(), DatasetParams{Name: "  ", SourcePath: "/data"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "name is required", err.Error())
	assert.Zero(t, calls)
}

func TestCreate_Ack(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "lora", body["job_type"])
		assert.Equal(t, "cfg/lora.yaml", body["config_path"])
		assert.NotContains(t, body, "dataset_id")

		writeJSON(w, http.StatusCreated, map[string]string{"job_id": "j-77", "message": "queued"})
	}))

	ack, err := NewTrainingClient(c).CreateJob(context.Background(), JobParams{JobType: "lora", ConfigPath: "cfg/lora.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "j-77", ack.ID)
	assert.Equal(t, "queued", ack.Message)
}

func TestCreate_NumericID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 9007199254740993}`)
	}))

	ack, err := NewDatasetClient(c).CreateDataset(context.Background(), DatasetParams{Name: "alpha", SourcePath: "/data"})
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", ack.ID)
}

func TestCreate_MissingIDIsRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]interface{}{"id": nil, "message": "ok"})
	}))

	_, err := NewDatasetClient(c).CreateDataset(context.Background(), DatasetParams{Name: "alpha", SourcePath: "/data"})
	require.Error(t, err)
	assert.True(t, IsLogical(err))
}

func TestCreate_LogicalRejection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"detail": []map[string]string{{"msg": "config_path does not exist"}},
		})
	}))

	_, err := NewTrainingClient(c).CreateJob(context.Background(), JobParams{JobType: "lora", ConfigPath: "nope.yaml"})
	require.Error(t, err)
	assert.True(t, IsLogical(err))
	assert.False(t, IsTransport(err))
	assert.Contains(t, err.Error(), "config_path does not exist")
}

func TestServerErrorWithoutBodyIsTransport(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))

	_, err := NewTrainingClient(c).CancelJob(context.Background(), "j-1")
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
}

func TestCancelAndDelete(t *testing.T) {
	var seen []string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "message": "job already finished"})
	}))

	tc := NewTrainingClient(c)

	res, err := tc.DeleteJob(context.Background(), "j-1")
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = tc.CancelJob(context.Background(), "j-1")
	require.Error(t, err)
	assert.True(t, IsLogical(err))
	assert.Contains(t, err.Error(), "job already finished")

	assert.Equal(t, []string{"DELETE /jobs/j-1", "POST /jobs/j-1/cancel"}, seen)
}

func TestMetrics(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/j-1/metrics", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"metrics": []map[string]interface{}{{"step": 1, "name": "loss", "value": 0.9}},
		})
	}))

	points, err := NewTrainingClient(c).JobMetrics(context.Background(), "j-1")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, 0.9, points[0].Value, 1e-9)
}

func TestEmptyIDRejected(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	_, err := NewTrainingClient(c).DeleteJob(context.Background(), "")
	assert.ErrorIs(t, err, errEmptyID)
}

func TestNewFromHealthURL(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))

	hc, err := NewFromHealthURL("dataset", c.BaseURL()+"/api/v1/health")
	require.NoError(t, err)

	_, err = hc.HealthCheck(context.Background())
	require.NoError(t, err)

	_, err = NewFromHealthURL("dataset", "not a url")
	require.ErrorIs(t, err, errInvalidBaseURL)
}
