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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.PollInterval.Std())
	assert.Equal(t, "training", cfg.Training.Name)
	assert.Len(t, cfg.Services, 2)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
training:
  base_url: http://trainer:9000
  timeout: 20s
dataset:
  base_url: https://data.example
  health_timeout: 2
poll_interval: 7s
services:
  - name: trainer
    port: 9000
    health_url: http://trainer:9000/health
    start_command: ["systemctl", "start", "trainer"]
  - name: indexer
    port: 9100
    health_url: http://indexer:9100/health
    health_timeout: 750ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://trainer:9000", cfg.Training.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Training.Timeout.Std())
	assert.Equal(t, 3*time.Second, cfg.Training.HealthTimeout.Std(), "unset values keep defaults")
	assert.Equal(t, 2*time.Second, cfg.Dataset.HealthTimeout.Std(), "bare integers are seconds")
	assert.Equal(t, 7*time.Second, cfg.PollInterval.Std())

	svc, err := cfg.Service("trainer")
	require.NoError(t, err)
	assert.Equal(t, 9000, svc.Port)
	assert.Equal(t, 10, svc.Attempts)
	assert.Equal(t, time.Second, svc.AttemptInterval.Std())
	assert.Equal(t, 3*time.Second, svc.HealthTimeout.Std())

	indexer, err := cfg.Service("indexer")
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, indexer.HealthTimeout.Std())

	_, err = cfg.Service("nope")
	assert.ErrorIs(t, err, errUnknownService)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLARA_TRAINING_URL", "http://override:1")
	t.Setenv("CLARA_POLL_INTERVAL", "9s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://override:1", cfg.Training.BaseURL)
	assert.Equal(t, 9*time.Second, cfg.PollInterval.Std())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "bad yaml",
			content: "training: [",
			wantErr: errParseConfig,
		},
		{
			name:    "relative url",
			content: "training:\n  base_url: localhost:80\n",
			wantErr: errInvalidBaseURL,
		},
		{
			name:    "bad port",
			content: "services:\n  - name: a\n    port: 70000\n    health_url: http://x/health\n",
			wantErr: errInvalidPort,
		},
		{
			name:    "duplicate service",
			content: "services:\n  - {name: a, port: 1, health_url: http://x}\n  - {name: a, port: 2, health_url: http://y}\n",
			wantErr: errDuplicateService,
		},
		{
			name:    "bad duration",
			content: "poll_interval: soon\n",
			wantErr: errInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
