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

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	outputStdout = "stdout"
	outputStderr = "stderr"
	outputNone   = "none"

	defaultLogFile = "clara-console.log"
)

// Config controls where and how verbosely the consoles log.
//
// Output is "stdout", "stderr", "none" or a file path. The consoles own the
// terminal, so the default is a file under the user cache directory.
type Config struct {
	Level      string     `json:"level" yaml:"level"`
	Debug      bool       `json:"debug" yaml:"debug"`
	Output     string     `json:"output" yaml:"output"`
	TimeFormat string     `json:"time_format" yaml:"time_format"`
	OTel       OTelConfig `json:"otel" yaml:"otel"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:      getEnvOrDefault("LOG_LEVEL", "info"),
		Debug:      getEnvBoolOrDefault("DEBUG", false),
		Output:     getEnvOrDefault("LOG_OUTPUT", defaultLogPath()),
		TimeFormat: getEnvOrDefault("LOG_TIME_FORMAT", ""),
		OTel:       DefaultOTelConfig(),
	}
}

// DefaultOTelConfig reads the standard OTLP environment variables. Export
// stays off unless OTEL_LOGS_ENABLED, OTEL_TRACES_ENABLED or
// OTEL_METRICS_ENABLED is set.
func DefaultOTelConfig() OTelConfig {
	headers := make(map[string]string)

	for _, pair := range strings.Split(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"), ",") {
		if kv := strings.SplitN(pair, "=", 2); len(kv) == 2 {
			headers[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	batch := defaultBatchTimeout
	if d, err := time.ParseDuration(os.Getenv("OTEL_EXPORTER_OTLP_TIMEOUT")); err == nil && d > 0 {
		batch = d
	}

	return OTelConfig{
		Enabled:      getEnvBoolOrDefault("OTEL_LOGS_ENABLED", false),
		Traces:       getEnvBoolOrDefault("OTEL_TRACES_ENABLED", false),
		Metrics:      getEnvBoolOrDefault("OTEL_METRICS_ENABLED", false),
		Endpoint:     getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Headers:      headers,
		ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", defaultOTelServiceName),
		BatchTimeout: batch,
		Insecure:     getEnvBoolOrDefault("OTEL_EXPORTER_OTLP_INSECURE", false),
		CAFile:       getEnvOrDefault("OTEL_EXPORTER_OTLP_CERTIFICATE", ""),
	}
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return defaultLogFile
	}

	return filepath.Join(dir, "clara", defaultLogFile)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	value = strings.ToLower(value)

	return value == "true" || value == "1" || value == "yes" || value == "on"
}
