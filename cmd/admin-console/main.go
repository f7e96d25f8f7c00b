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

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/makr-code/VCC-Clara-sub001/pkg/api"
	"github.com/makr-code/VCC-Clara-sub001/pkg/config"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console"
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/admin"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/poller"
	"github.com/makr-code/VCC-Clara-sub001/pkg/procctl"
	"github.com/makr-code/VCC-Clara-sub001/pkg/version"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Banner("clara-admin-console"))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Close()

	checkers := make([]poller.Checker, 0, len(cfg.Services))

	for _, svc := range cfg.Services {
		client, err := api.NewFromHealthURL(svc.Name, svc.HealthURL,
			api.WithHealthTimeout(svc.HealthTimeout.Std()),
			api.WithLogger(lg),
		)
		if err != nil {
			log.Fatalf("Invalid health URL for %s: %v", svc.Name, err)
		}

		checkers = append(checkers, client)
	}

	paths := admin.Paths{ConfigDir: cfg.ConfigDir, AuditLog: cfg.AuditLog}

	c, err := admin.New(procctl.New(cfg.Services, lg), checkers, console.SettingsFrom(cfg), paths, lg)
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}

	if err := console.Run(admin.Title, c, lg); err != nil {
		lg.Error().Err(err).Msg("Console exited with error")
		log.Fatalf("Console failed: %v", err)
	}
}
