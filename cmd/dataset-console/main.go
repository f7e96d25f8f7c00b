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
	"github.com/makr-code/VCC-Clara-sub001/pkg/console/dataset"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/makr-code/VCC-Clara-sub001/pkg/version"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Banner("clara-dataset-console"))
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

	client, err := console.NewClient(cfg.Dataset, lg)
	if err != nil {
		log.Fatalf("Failed to create dataset client: %v", err)
	}

	c, err := dataset.New(api.NewDatasetClient(client), console.SettingsFrom(cfg), lg)
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}

	if err := console.Run(dataset.Title, c, lg); err != nil {
		lg.Error().Err(err).Msg("Console exited with error")
		log.Fatalf("Console failed: %v", err)
	}
}
