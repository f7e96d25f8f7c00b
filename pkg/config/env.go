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
	"strconv"
)

const (
	envTrainingURL  = "CLARA_TRAINING_URL"
	envDatasetURL   = "CLARA_DATASET_URL"
	envPollInterval = "CLARA_POLL_INTERVAL"
	envMaxWorkers   = "CLARA_MAX_WORKERS"
	envConfigDir    = "CLARA_CONFIG_DIR"
	envAuditLog     = "CLARA_AUDIT_LOG"
)

// applyEnv overrides file values with CLARA_* environment variables.
// Invalid values are ignored and the file value is kept.
func applyEnv(cfg *Config) {
	if v := os.Getenv(envTrainingURL); v != "" {
		cfg.Training.BaseURL = v
	}

	if v := os.Getenv(envDatasetURL); v != "" {
		cfg.Dataset.BaseURL = v
	}

	if v := os.Getenv(envPollInterval); v != "" {
		var d Duration
		if err := d.parse(v); err == nil {
			cfg.PollInterval = d
		}
	}

	if v := os.Getenv(envMaxWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxWorkers = n
		}
	}

	if v := os.Getenv(envConfigDir); v != "" {
		cfg.ConfigDir = v
	}

	if v := os.Getenv(envAuditLog); v != "" {
		cfg.AuditLog = v
	}
}
