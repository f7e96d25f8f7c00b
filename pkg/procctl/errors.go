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

package procctl

import "errors"

var (
	ErrStartTimeout    = errors.New("service did not become healthy in time")
	ErrStopTimeout     = errors.New("service still answering after stop")
	ErrNoProcessOnPort = errors.New("no process is listening on the service port")
	ErrUnknownService  = errors.New("unknown service")
	errNoStartCommand  = errors.New("service has no start command")
	errLaunch          = errors.New("failed to launch service")
	errLocate          = errors.New("failed to locate service process")
	errTerminate       = errors.New("failed to terminate service process")
	errUnhealthy       = errors.New("health endpoint returned non-success status")
)
