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

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const logFilePerms = 0o600

// LoggerImpl implements Logger on top of a zerolog.Logger.
type LoggerImpl struct {
	logger zerolog.Logger
	closer io.Closer
	otel   *otelPipeline
}

// New builds a logger from config. If config is nil the defaults are used.
// Callers must Close the returned logger when Output names a file.
func New(config *Config) (*LoggerImpl, error) {
	if config == nil {
		config = DefaultConfig()
	}

	output, closer, err := openOutput(config.Output)
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			if closer != nil {
				_ = closer.Close()
			}

			return nil, fmt.Errorf("%w: %s", errInvalidLevel, config.Level)
		}
	}

	timeFormat := time.RFC3339
	if config.TimeFormat != "" {
		timeFormat = config.TimeFormat
	}

	zerolog.TimeFieldFormat = timeFormat

	var (
		pipeline *otelPipeline
		otelErr  error
	)

	if config.OTel.active() {
		pipeline, otelErr = setupOTel(context.Background(), config.OTel)
		if otelErr == nil && pipeline.logs != nil {
			output = zerolog.MultiLevelWriter(output, NewOTelWriter(pipeline.logs))
		}
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	if otelErr != nil {
		zlog.Warn().Err(otelErr).Msg("OpenTelemetry export disabled")
	}

	return &LoggerImpl{logger: zlog, closer: closer, otel: pipeline}, nil
}

// NewWithWriter builds a logger writing to w, mostly useful in tests.
func NewWithWriter(w io.Writer, level zerolog.Level) *LoggerImpl {
	return &LoggerImpl{logger: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", outputStdout:
		return os.Stdout, nil, nil
	case outputStderr:
		return os.Stderr, nil, nil
	case outputNone:
		return io.Discard, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errOpenLogFile, err)
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerms)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errOpenLogFile, err)
	}

	return f, f, nil
}

// Close flushes OpenTelemetry export and releases the log file, if any.
func (l *LoggerImpl) Close() error {
	var errs []error

	if l.otel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		errs = append(errs, l.otel.shutdown(ctx))

		cancel()
	}

	if l.closer != nil {
		errs = append(errs, l.closer.Close())
	}

	return errors.Join(errs...)
}

func (l *LoggerImpl) Trace() *zerolog.Event {
	return l.logger.Trace()
}

func (l *LoggerImpl) Debug() *zerolog.Event {
	return l.logger.Debug()
}

func (l *LoggerImpl) Info() *zerolog.Event {
	return l.logger.Info()
}

func (l *LoggerImpl) Warn() *zerolog.Event {
	return l.logger.Warn()
}

func (l *LoggerImpl) Error() *zerolog.Event {
	return l.logger.Error()
}

func (l *LoggerImpl) With() zerolog.Context {
	return l.logger.With()
}

func (l *LoggerImpl) WithComponent(component string) zerolog.Logger {
	return l.logger.With().Str("component", component).Logger()
}

func (l *LoggerImpl) WithFields(fields map[string]interface{}) zerolog.Logger {
	ctx := l.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}

	return ctx.Logger()
}

func (l *LoggerImpl) SetLevel(level zerolog.Level) {
	l.logger = l.logger.Level(level)
}

func (l *LoggerImpl) SetDebug(debug bool) {
	if debug {
		l.SetLevel(zerolog.DebugLevel)
	} else {
		l.SetLevel(zerolog.InfoLevel)
	}
}
