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

package files

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowse(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"zeta.yaml", "Alpha.json", "notes.txt", "beta.yml", ".hidden.yaml", "beta.yml.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("a: 1\n"), 0o644))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "profiles"), 0o755))

	entries, err := Browse(dir, ConfigExtensions...)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	assert.Equal(t, []string{"profiles", "Alpha.json", "beta.yml", "zeta.yaml"}, names)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, filepath.Join(dir, "zeta.yaml"), entries[3].Path)

	_, err = Browse(filepath.Join(dir, "zeta.yaml"))
	require.ErrorIs(t, err, errNotDirectory)
}

func TestReadAuditLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	lines := []string{
		`{"timestamp":"2025-01-01T10:00:00Z","level":"info","actor":"ops","action":"start","message":"training started"}`,
		`not json at all`,
		``,
		`{"timestamp":"2025-01-01T10:05:00Z","actor":"ops","action":"stop","message":"training stopped"}`,
		`{"timestamp":"2025-01-01T10:06:00Z","level":"error","message":"dataset import failed"}`,
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	entries, err := ReadAuditLog(path, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "training started", entries[0].Message)
	assert.Equal(t, models.AuditInvalid, entries[1].Level)
	assert.Equal(t, "not json at all", entries[1].Raw)
	assert.Equal(t, "info", entries[2].Level)
	assert.Equal(t, "dataset import failed", entries[3].Message)

	newest, err := ReadAuditLog(path, 2)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, "training stopped", newest[0].Message)
	assert.Equal(t, "dataset import failed", newest[1].Message)

	_, err = ReadAuditLog(filepath.Join(t.TempDir(), "missing.jsonl"), 0)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.csv")

	header := []string{"name", "status", "documents"}
	rows := [][]string{
		{"alpha", "completed", "42 docs"},
		{"beta, with comma", "pending", "0 docs"},
	}

	require.NoError(t, WriteCSV(path, header, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, append([][]string{header}, rows...), got)

	err = WriteCSV(path, header, [][]string{{"short"}})
	require.ErrorIs(t, err, errRowWidth)
}

func TestWriteJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.jsonl")

	records := []map[string]string{{"id": "j-1"}, {"id": "j-2 <html>"}}
	require.NoError(t, WriteJSONL(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	var second map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "j-2 <html>", second["id"])
	assert.Contains(t, lines[1], "<html>")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b: 2\n"), 0o644))
	require.NoError(t, ConfigFile{}.Save(path, "a: 2"))

	select {
	case changed := <-changes:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}
