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

// Package procctl starts, stops and restarts locally managed backend services.
//
// A service is identified by the port it listens on: stopping means finding
// the process that owns the port, asking it to terminate and then polling the
// health endpoint until it stops answering.
package procctl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/config"
	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	defaultAttempts        = 10
	defaultAttemptInterval = time.Second
	defaultStartTimeout    = 30 * time.Second
)

// Controller runs lifecycle operations against a registry of services.
type Controller struct {
	services map[string]config.Service
	order    []string
	locator  PortLocator
	term     Terminator
	prober   HealthProber
	launcher Launcher
	logger   zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

func WithLocator(l PortLocator) Option {
	return func(c *Controller) { c.locator = l }
}

func WithTerminator(t Terminator) Option {
	return func(c *Controller) { c.term = t }
}

func WithProber(p HealthProber) Option {
	return func(c *Controller) { c.prober = p }
}

func WithLauncher(l Launcher) Option {
	return func(c *Controller) { c.launcher = l }
}

// New creates a controller. Without options it uses gopsutil for process
// lookup and termination, plain HTTP for probes and os/exec for starts.
func New(services []config.Service, log logger.Logger, opts ...Option) *Controller {
	l := log.WithComponent("procctl")

	c := &Controller{
		services: make(map[string]config.Service, len(services)),
		locator:  netstatLocator{},
		term:     processTerminator{},
		prober:   newHTTPProber(),
		launcher: &execLauncher{logger: l},
		logger:   l,
	}

	for _, svc := range services {
		c.services[svc.Name] = svc
		c.order = append(c.order, svc.Name)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Services returns the registry in configuration order.
func (c *Controller) Services() []config.Service {
	out := make([]config.Service, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.services[name])
	}

	return out
}

func (c *Controller) lookup(name string) (config.Service, error) {
	svc, ok := c.services[name]
	if !ok {
		return config.Service{}, fmt.Errorf("%w: %s", ErrUnknownService, name)
	}

	return svc, nil
}

// Start launches the service and waits until its health endpoint answers.
// A service that already answers is left alone.
func (c *Controller) Start(ctx context.Context, name string) error {
	svc, err := c.lookup(name)
	if err != nil {
		return err
	}

	timeout := svc.StartTimeout.Std()
	if timeout <= 0 {
		timeout = defaultStartTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if c.prober.Probe(ctx, svc.HealthURL) == nil {
		c.logger.Info().Str("service", name).Msg("Service already running")

		return nil
	}

	pid, err := c.launcher.Launch(ctx, svc)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errLaunch, name, err)
	}

	c.logger.Info().Str("service", name).Int("pid", pid).Msg("Launched service")

	if !c.waitFor(ctx, svc, true) {
		return fmt.Errorf("%w: %s", ErrStartTimeout, name)
	}

	c.logger.Info().Str("service", name).Msg("Service is healthy")

	return nil
}

// Stop terminates the process owning the service port and waits until the
// health endpoint stops answering.
func (c *Controller) Stop(ctx context.Context, name string) error {
	svc, err := c.lookup(name)
	if err != nil {
		return err
	}

	pid, err := c.locator.PIDOnPort(ctx, svc.Port)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errLocate, name, err)
	}

	if pid <= 0 {
		return fmt.Errorf("%w: %s on port %d", ErrNoProcessOnPort, name, svc.Port)
	}

	if err := c.term.Terminate(ctx, pid); err != nil {
		return fmt.Errorf("%w: %s (pid %d): %w", errTerminate, name, pid, err)
	}

	c.logger.Info().Str("service", name).Int32("pid", pid).Msg("Sent terminate to service")

	if !c.waitFor(ctx, svc, false) {
		return fmt.Errorf("%w: %s", ErrStopTimeout, name)
	}

	return nil
}

// Restart stops the service if it is running and starts it again.
func (c *Controller) Restart(ctx context.Context, name string) error {
	if err := c.Stop(ctx, name); err != nil && !errors.Is(err, ErrNoProcessOnPort) {
		return err
	}

	return c.Start(ctx, name)
}

// waitFor polls the health endpoint until it matches want or the attempt
// budget runs out.
func (c *Controller) waitFor(ctx context.Context, svc config.Service, want bool) bool {
	attempts := svc.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}

	interval := svc.AttemptInterval.Std()
	if interval <= 0 {
		interval = defaultAttemptInterval
	}

	for i := 0; i < attempts; i++ {
		up := c.prober.Probe(ctx, svc.HealthURL) == nil
		if up == want {
			return true
		}

		c.logger.Debug().Str("service", svc.Name).Int("attempt", i+1).Bool("up", up).Msg("Waiting for service")

		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(interval)

		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}

	return false
}
