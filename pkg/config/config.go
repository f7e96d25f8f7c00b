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

// Package config loads the console configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "clara-console.yaml"

	defaultPollInterval    = 5 * time.Second
	defaultRequestTimeout  = 10 * time.Second
	defaultHealthTimeout   = 3 * time.Second
	defaultDownloadTimeout = 10 * time.Minute
	defaultMaxWorkers      = 4
	defaultAttempts        = 10
	defaultAttemptInterval = time.Second
	defaultStartTimeout    = 30 * time.Second
)

// Config is the shared configuration of the three consoles.
type Config struct {
	Training     Backend        `yaml:"training"`
	Dataset      Backend        `yaml:"dataset"`
	PollInterval Duration       `yaml:"poll_interval"`
	MaxWorkers   int            `yaml:"max_workers"`
	ConfigDir    string         `yaml:"config_dir"`
	AuditLog     string         `yaml:"audit_log"`
	ExportDir    string         `yaml:"export_dir"`
	Services     []Service      `yaml:"services"`
	Logging      *logger.Config `yaml:"logging"`
}

// Backend describes one remote HTTP service.
type Backend struct {
	Name            string   `yaml:"name"`
	BaseURL         string   `yaml:"base_url"`
	Timeout         Duration `yaml:"timeout"`
	HealthTimeout   Duration `yaml:"health_timeout"`
	DownloadTimeout Duration `yaml:"download_timeout"`
}

// Service is the control metadata for a locally managed backend process.
// It replaces a hard-coded service to port table and can be overridden per deployment.
type Service struct {
	Name            string   `yaml:"name"`
	Port            int      `yaml:"port"`
	HealthURL       string   `yaml:"health_url"`
	HealthTimeout   Duration `yaml:"health_timeout"`
	StartCommand    []string `yaml:"start_command"`
	WorkDir         string   `yaml:"work_dir"`
	StartTimeout    Duration `yaml:"start_timeout"`
	Attempts        int      `yaml:"attempts"`
	AttemptInterval Duration `yaml:"attempt_interval"`
}

// DefaultConfig mirrors a local development setup with both backends on localhost.
func DefaultConfig() Config {
	return Config{
		Training: Backend{
			Name:            "training",
			BaseURL:         "http://localhost:45680",
			Timeout:         Duration(defaultRequestTimeout),
			HealthTimeout:   Duration(defaultHealthTimeout),
			DownloadTimeout: Duration(defaultDownloadTimeout),
		},
		Dataset: Backend{
			Name:            "dataset",
			BaseURL:         "http://localhost:45681",
			Timeout:         Duration(defaultRequestTimeout),
			HealthTimeout:   Duration(defaultHealthTimeout),
			DownloadTimeout: Duration(defaultDownloadTimeout),
		},
		PollInterval: Duration(defaultPollInterval),
		MaxWorkers:   defaultMaxWorkers,
		ConfigDir:    "configs",
		AuditLog:     "logs/audit.jsonl",
		ExportDir:    "exports",
		Services: []Service{
			{
				Name:         "training",
				Port:         45680,
				HealthURL:    "http://localhost:45680/health",
				StartCommand: []string{"./scripts/start_training_backend.sh"},
			},
			{
				Name:         "dataset",
				Port:         45681,
				HealthURL:    "http://localhost:45681/health",
				StartCommand: []string{"./scripts/start_dataset_backend.sh"},
			},
		},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads configuration from a YAML file. A missing file falls back to defaults;
// environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)

		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("%w: %w", errReadConfig, err)
		default:
			if err := yaml.Unmarshal(content, &cfg); err != nil {
				return Config{}, fmt.Errorf("%w: %w", errParseConfig, err)
			}
		}
	}

	applyEnv(&cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.PollInterval <= 0 {
		c.PollInterval = defaults.PollInterval
	}

	if c.MaxWorkers <= 0 {
		c.MaxWorkers = defaults.MaxWorkers
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	c.Training.applyDefaults(defaults.Training)
	c.Dataset.applyDefaults(defaults.Dataset)

	for i := range c.Services {
		svc := &c.Services[i]
		if svc.Attempts <= 0 {
			svc.Attempts = defaultAttempts
		}

		if svc.AttemptInterval <= 0 {
			svc.AttemptInterval = Duration(defaultAttemptInterval)
		}

		if svc.StartTimeout <= 0 {
			svc.StartTimeout = Duration(defaultStartTimeout)
		}

		if svc.HealthTimeout <= 0 {
			svc.HealthTimeout = Duration(defaultHealthTimeout)
		}
	}
}

func (b *Backend) applyDefaults(defaults Backend) {
	if b.Name == "" {
		b.Name = defaults.Name
	}

	if b.Timeout <= 0 {
		b.Timeout = defaults.Timeout
	}

	if b.HealthTimeout <= 0 {
		b.HealthTimeout = defaults.HealthTimeout
	}

	if b.DownloadTimeout <= 0 {
		b.DownloadTimeout = defaults.DownloadTimeout
	}
}

// Validate checks backend URLs and the service registry.
func (c *Config) Validate() error {
	for _, b := range []Backend{c.Training, c.Dataset} {
		if err := b.validate(); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(c.Services))

	for i, svc := range c.Services {
		if svc.Name == "" {
			return fmt.Errorf("%w (entry %d)", errServiceName, i)
		}

		if _, ok := seen[svc.Name]; ok {
			return fmt.Errorf("%w: %s", errDuplicateService, svc.Name)
		}

		seen[svc.Name] = struct{}{}

		if svc.Port < 1 || svc.Port > 65535 {
			return fmt.Errorf("%w: %s has %d", errInvalidPort, svc.Name, svc.Port)
		}

		if svc.HealthURL == "" {
			return fmt.Errorf("%w: %s", errMissingHealthURL, svc.Name)
		}
	}

	return nil
}

func (b Backend) validate() error {
	if b.BaseURL == "" {
		return fmt.Errorf("%w: %s", errMissingBaseURL, b.Name)
	}

	u, err := url.Parse(b.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s=%q", errInvalidBaseURL, b.Name, b.BaseURL)
	}

	return nil
}

// Service looks up a service registry entry by name.
func (c *Config) Service(name string) (Service, error) {
	for _, svc := range c.Services {
		if svc.Name == name {
			return svc, nil
		}
	}

	return Service{}, fmt.Errorf("%w: %s", errUnknownService, name)
}
