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

package console

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/config"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/makr-code/VCC-Clara-sub001/pkg/version"
)

// SettingsFrom picks the console knobs out of the loaded configuration.
func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		PollInterval: cfg.PollInterval.Std(),
		Workers:      cfg.MaxWorkers,
		ExportDir:    cfg.ExportDir,
	}
}

// NewClient builds the API client for one configured backend.
func NewClient(b config.Backend, log logger.Logger) (*api.Client, error) {
	return api.New(b.Name, b.BaseURL,
		api.WithTimeout(b.Timeout.Std()),
		api.WithHealthTimeout(b.HealthTimeout.Std()),
		api.WithDownloadTimeout(b.DownloadTimeout.Std()),
		api.WithLogger(log),
	)
}

// Run wraps f in the shell and runs it full screen until the user quits.
func Run(title string, f shell.Feature, log logger.Logger) error {
	s, err := shell.New(title, f, shell.WithLogger(log), shell.WithVersion(version.GetFullVersion()))
	if err != nil {
		return fmt.Errorf("build %s: %w", title, err)
	}

	_, err = tea.NewProgram(s, tea.WithAltScreen()).Run()

	return err
}
