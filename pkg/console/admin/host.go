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

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/console/widgets"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/makr-code/VCC-Clara-sub001/pkg/shell"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	hostHistory     = 60
	sparklineWidth  = 40
	platformUnknown = "unknown"
)

type systemSampler struct{}

// NewHostSampler returns a sampler backed by gopsutil.
func NewHostSampler() HostSampler {
	return systemSampler{}
}

func (systemSampler) Sample(ctx context.Context) (HostSample, error) {
	sample := HostSample{At: time.Now(), Platform: platformUnknown}

	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return sample, fmt.Errorf("cpu usage: %w", err)
	}

	if len(percents) > 0 {
		sample.CPUPercent = percents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return sample, fmt.Errorf("memory usage: %w", err)
	}

	sample.MemUsed, sample.MemTotal, sample.MemPercent = vm.Used, vm.Total, vm.UsedPercent

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return sample, fmt.Errorf("host info: %w", err)
	}

	sample.Hostname = info.Hostname
	sample.Uptime = time.Duration(info.Uptime) * time.Second

	if info.Platform != "" {
		sample.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	}

	return sample, nil
}

type hostView struct {
	last    HostSample
	loaded  bool
	cpu     []float64
	memory  []float64
	lastErr error
}

func (h *hostView) apply(s HostSample, err error) {
	if err != nil {
		h.lastErr = err
		return
	}

	h.last, h.loaded, h.lastErr = s, true, nil
	h.cpu = appendBounded(h.cpu, s.CPUPercent)
	h.memory = appendBounded(h.memory, s.MemPercent)
}

func appendBounded(values []float64, v float64) []float64 {
	values = append(values, v)
	if len(values) > hostHistory {
		values = values[len(values)-hostHistory:]
	}

	return values
}

func (h *hostView) View() string {
	if !h.loaded {
		if h.lastErr != nil {
			return shell.Theme.Error.Render("Host stats unavailable: " + h.lastErr.Error())
		}

		return shell.Theme.Help.Render("Sampling...")
	}

	s := h.last
	lines := []string{
		fmt.Sprintf("Host      %s (%s)", s.Hostname, s.Platform),
		fmt.Sprintf("Uptime    %s", s.Uptime.Truncate(time.Minute)),
		fmt.Sprintf("CPU       %5.1f%%  %s", s.CPUPercent, widgets.Sparkline(h.cpu, sparklineWidth)),
		fmt.Sprintf("Memory    %5.1f%%  %s", s.MemPercent, widgets.Sparkline(h.memory, sparklineWidth)),
		fmt.Sprintf("          %s of %s", models.HumanBytes(int64(s.MemUsed)), models.HumanBytes(int64(s.MemTotal))),
		"",
		shell.Theme.Help.Render("sampled " + s.At.Format("15:04:05")),
	}

	if h.lastErr != nil {
		lines = append(lines, shell.Theme.Warning.Render("last sample failed: "+h.lastErr.Error()))
	}

	return strings.Join(lines, "\n")
}
