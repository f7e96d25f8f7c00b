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

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/config"
	"github.com/rs/zerolog"
	gnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

const (
	listenState  = "LISTEN"
	probeTimeout = 2 * time.Second
)

type netstatLocator struct{}

func (netstatLocator) PIDOnPort(ctx context.Context, port int) (int32, error) {
	conns, err := gnet.ConnectionsWithContext(ctx, "tcp")
	if err != nil {
		return 0, err
	}

	for _, conn := range conns {
		if conn.Status == listenState && conn.Laddr.Port == uint32(port) && conn.Pid > 0 {
			return conn.Pid, nil
		}
	}

	return 0, nil
}

type processTerminator struct{}

func (processTerminator) Terminate(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return err
	}

	return p.TerminateWithContext(ctx)
}

type httpProber struct {
	client *http.Client
}

func newHTTPProber() *httpProber {
	return &httpProber{client: &http.Client{Timeout: probeTimeout}}
}

func (p *httpProber) Probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d", errUnhealthy, resp.StatusCode)
	}

	return nil
}

type execLauncher struct {
	logger zerolog.Logger
}

// Launch starts the command in its own process group without tying it to ctx,
// so the service outlives the console.
func (l *execLauncher) Launch(_ context.Context, svc config.Service) (int, error) {
	if len(svc.StartCommand) == 0 {
		return 0, errNoStartCommand
	}

	//nolint:gosec // the command comes from the operator's own configuration
	cmd := exec.Command(svc.StartCommand[0], svc.StartCommand[1:]...)
	cmd.Dir = svc.WorkDir
	setSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid

	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug().Str("service", svc.Name).Int("pid", pid).Err(err).Msg("Start command exited")
		}
	}()

	return pid, nil
}
