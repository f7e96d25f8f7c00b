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
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportHandler(t *testing.T, artifact string, download http.HandlerFunc) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/datasets/ds-1/export", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jsonl", body["format"])

		writeJSON(w, http.StatusAccepted, map[string]interface{}{
			"export_id":    "e-1",
			"download_url": "/exports/e-1/download",
		})
	})

	if download == nil {
		download = func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Length", strconv.Itoa(len(artifact)))
			_, _ = io.WriteString(w, artifact)
		}
	}

	mux.HandleFunc("/exports/e-1/download", download)

	return mux
}

func TestExport_DownloadsWithProgress(t *testing.T) {
	artifact := strings.Repeat("{\"text\":\"doc\"}\n", 500)
	c := newTestClient(t, exportHandler(t, artifact, nil))
	dst := filepath.Join(t.TempDir(), "alpha.jsonl")

	var lastDone, lastTotal int64

	calls := 0

	ticket, err := NewDatasetClient(c).ExportDataset(context.Background(), "ds-1", "jsonl", dst, func(done, total int64) {
		calls++
		assert.GreaterOrEqual(t, done, lastDone)
		lastDone, lastTotal = done, total
	})
	require.NoError(t, err)

	assert.Equal(t, "e-1", ticket.ExportID)
	assert.Equal(t, "jsonl", ticket.Format)
	assert.Equal(t, int64(len(artifact)), lastDone)
	assert.Equal(t, int64(len(artifact)), lastTotal)
	assert.GreaterOrEqual(t, calls, 2)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, artifact, string(got))
}

func TestExport_UnknownSize(t *testing.T) {
	c := newTestClient(t, exportHandler(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.(http.Flusher).Flush()
		_, _ = io.WriteString(w, "id,name\n1,alpha\n")
	}))
	dst := filepath.Join(t.TempDir(), "alpha.csv")

	var total int64 = 1

	_, err := NewDatasetClient(c).ExportDataset(context.Background(), "ds-1", "jsonl", dst, func(_, tot int64) {
		total = tot
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), total)
}

func TestExport_MidDownloadFailureRemovesPartialFile(t *testing.T) {
	c := newTestClient(t, exportHandler(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "100000")
		_, _ = io.WriteString(w, strings.Repeat("x", 1000))
	}))
	dst := filepath.Join(t.TempDir(), "partial.jsonl")

	_, err := NewDatasetClient(c).ExportDataset(context.Background(), "ds-1", "jsonl", dst, nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr), "partial output must be removed")

	_, statErr = os.Stat(dst + partSuffix)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_FailureKeepsExistingFile(t *testing.T) {
	c := newTestClient(t, exportHandler(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "100000")
		_, _ = io.WriteString(w, strings.Repeat("x", 1000))
	}))
	dst := filepath.Join(t.TempDir(), "alpha.jsonl")
	require.NoError(t, os.WriteFile(dst, []byte("previous export\n"), 0o644))

	_, err := NewDatasetClient(c).ExportDataset(context.Background(), "ds-1", "jsonl", dst, nil)
	require.Error(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "previous export\n", string(got))

	_, statErr := os.Stat(dst + partSuffix)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_SuccessReplacesExistingFile(t *testing.T) {
	c := newTestClient(t, exportHandler(t, "new\n", nil))
	dst := filepath.Join(t.TempDir(), "alpha.jsonl")
	require.NoError(t, os.WriteFile(dst, []byte("previous export\n"), 0o644))

	_, err := NewDatasetClient(c).ExportDataset(context.Background(), "ds-1", "jsonl", dst, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))

	_, statErr := os.Stat(dst + partSuffix)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_MissingDestination(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	_, err := NewDatasetClient(c).ExportDataset(context.Background(), "ds-1", "jsonl", " ", nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRequestExport_Rejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "dataset still processing"})
	}))

	_, err := c.RequestExport(context.Background(), "datasets", "ds-1", "csv")
	require.Error(t, err)
	assert.True(t, IsLogical(err))
	assert.Contains(t, err.Error(), "dataset still processing")
}
