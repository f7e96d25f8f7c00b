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

import "errors"

var (
	errInvalidDuration  = errors.New("invalid duration")
	errReadConfig       = errors.New("failed to read config file")
	errParseConfig      = errors.New("failed to parse config file")
	errMissingBaseURL   = errors.New("backend base_url is required")
	errInvalidBaseURL   = errors.New("backend base_url must be an absolute http(s) URL")
	errServiceName      = errors.New("each service must define a name")
	errDuplicateService = errors.New("duplicate service name")
	errInvalidPort      = errors.New("service port must be between 1 and 65535")
	errMissingHealthURL = errors.New("service health_url is required")
	errUnknownService   = errors.New("unknown service")
)
