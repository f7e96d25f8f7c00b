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

//go:generate mockgen -destination=mock_procctl.go -package=procctl github.com/makr-code/VCC-Clara-sub001/pkg/procctl PortLocator,Terminator,HealthProber,Launcher

import (
	"context"

	"github.com/makr-code/VCC-Clara-sub001/pkg/config"
)

// PortLocator finds the process listening on a local TCP port.
// A zero pid with a nil error means nothing listens there.
type PortLocator interface {
	PIDOnPort(ctx context.Context, port int) (int32, error)
}

// Terminator asks a process to exit.
type Terminator interface {
	Terminate(ctx context.Context, pid int32) error
}

// HealthProber reports whether a health URL currently answers with 2xx.
type HealthProber interface {
	Probe(ctx context.Context, url string) error
}

// Launcher starts a service's start command detached from the console.
type Launcher interface {
	Launch(ctx context.Context, svc config.Service) (int, error)
}
