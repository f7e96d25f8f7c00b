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

package admin

//go:generate mockgen -destination=mock_admin.go -package=admin github.com/makr-code/VCC-Clara-sub001/pkg/console/admin Lifecycle,HostSampler

import (
	"context"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/config"
	"github.com/makr-code/VCC-Clara-sub001/pkg/procctl"
)

// Lifecycle starts and stops the configured backend services.
// *procctl.Controller satisfies it.
type Lifecycle interface {
	Services() []config.Service
	Start(ctx context.Context, name string) error
	Stop(ctx context.Context, name string) error
	Restart(ctx context.Context, name string) error
}

var _ Lifecycle = (*procctl.Controller)(nil)

// HostSampler reads local resource usage.
type HostSampler interface {
	Sample(ctx context.Context) (HostSample, error)
}

// HostSample is one reading of the local machine.
type HostSample struct {
	Hostname   string
	Platform   string
	Uptime     time.Duration
	CPUPercent float64
	MemUsed    uint64
	MemTotal   uint64
	MemPercent float64
	At         time.Time
}
