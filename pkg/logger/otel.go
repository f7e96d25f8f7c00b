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

package logger

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.31.0"
	"google.golang.org/grpc/credentials"
)

const (
	defaultOTelServiceName = "clara-console"
	defaultBatchTimeout    = 5 * time.Second
	defaultScope           = "clara-console"
	maxAttributeLength     = 4096
	shutdownTimeout        = 10 * time.Second
)

// OTelConfig controls export of log records, request spans and request
// metrics over OTLP/gRPC. Each signal is off unless enabled explicitly.
type OTelConfig struct {
	Enabled      bool              `json:"enabled" yaml:"enabled"`
	Traces       bool              `json:"traces" yaml:"traces"`
	Metrics      bool              `json:"metrics" yaml:"metrics"`
	Endpoint     string            `json:"endpoint" yaml:"endpoint"`
	Headers      map[string]string `json:"headers" yaml:"headers"`
	ServiceName  string            `json:"service_name" yaml:"service_name"`
	BatchTimeout time.Duration     `json:"batch_timeout" yaml:"batch_timeout"`
	Insecure     bool              `json:"insecure" yaml:"insecure"`
	CAFile       string            `json:"ca_file,omitempty" yaml:"ca_file,omitempty"`
}

func (c OTelConfig) active() bool {
	return c.Enabled || c.Traces || c.Metrics
}

func (c OTelConfig) serviceName() string {
	if c.ServiceName == "" {
		return defaultOTelServiceName
	}

	return c.ServiceName
}

// OTelWriter turns zerolog JSON lines into OTel log records. The component
// field selects the instrumentation scope.
type OTelWriter struct {
	provider otellog.LoggerProvider
	loggers  map[string]otellog.Logger
	mu       sync.Mutex
}

// NewOTelWriter bridges into provider.
func NewOTelWriter(provider otellog.LoggerProvider) *OTelWriter {
	return &OTelWriter{provider: provider, loggers: make(map[string]otellog.Logger)}
}

func (w *OTelWriter) Write(p []byte) (int, error) {
	entry := make(map[string]interface{})
	if err := json.Unmarshal(p, &entry); err != nil {
		return len(p), nil
	}

	var record otellog.Record

	if ts, ok := entry["time"].(string); ok {
		if at, err := time.Parse(time.RFC3339, ts); err == nil {
			record.SetTimestamp(at)
			delete(entry, "time")
		}
	}

	if level, ok := entry["level"].(string); ok {
		record.SetSeverity(severityOf(level))
		record.SetSeverityText(level)
		delete(entry, "level")
	}

	if msg, ok := entry["message"].(string); ok {
		record.SetBody(otellog.StringValue(msg))
		delete(entry, "message")
	}

	scope := defaultScope
	if component, ok := entry["component"].(string); ok && component != "" {
		scope = component
		delete(entry, "component")
	}

	for key, value := range entry {
		record.AddAttributes(otellog.String(key, attributeValue(value)))
	}

	w.scope(scope).Emit(context.Background(), record)

	return len(p), nil
}

func (w *OTelWriter) scope(name string) otellog.Logger {
	w.mu.Lock()
	defer w.mu.Unlock()

	l, ok := w.loggers[name]
	if !ok {
		l = w.provider.Logger(name)
		w.loggers[name] = l
	}

	return l
}

func attributeValue(value interface{}) string {
	var s string

	switch v := value.(type) {
	case nil:
		s = "null"
	case string:
		s = v
	case map[string]interface{}, []interface{}:
		data, _ := json.Marshal(v)
		s = string(data)
	default:
		s = fmt.Sprint(v)
	}

	if len(s) <= maxAttributeLength {
		return s
	}

	s = s[:maxAttributeLength-3]
	for !utf8.ValidString(s) && s != "" {
		s = s[:len(s)-1]
	}

	return s + "..."
}

func severityOf(level string) otellog.Severity {
	switch strings.ToLower(level) {
	case "trace":
		return otellog.SeverityTrace
	case "debug":
		return otellog.SeverityDebug
	case "info":
		return otellog.SeverityInfo
	case "warn", "warning":
		return otellog.SeverityWarn
	case "error":
		return otellog.SeverityError
	case "fatal", "panic":
		return otellog.SeverityFatal
	default:
		return otellog.SeverityInfo
	}
}

// otelPipeline owns the providers created for one logger.
type otelPipeline struct {
	logs    *sdklog.LoggerProvider
	traces  *sdktrace.TracerProvider
	metrics *sdkmetric.MeterProvider
}

// setupOTel builds the log provider and installs the global tracer and meter
// providers as configured. The caller shuts the pipeline down on Close.
func setupOTel(ctx context.Context, cfg OTelConfig) (*otelPipeline, error) {
	if cfg.Endpoint == "" {
		return nil, errOTelEndpointRequired
	}

	creds, err := transportCredentials(cfg)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.serviceName())))
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	batch := cfg.BatchTimeout
	if batch <= 0 {
		batch = defaultBatchTimeout
	}

	p := &otelPipeline{}

	if cfg.Enabled {
		opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.Endpoint), otlploggrpc.WithHeaders(cfg.Headers)}
		if cfg.Insecure {
			opts = append(opts, otlploggrpc.WithInsecure())
		} else if creds != nil {
			opts = append(opts, otlploggrpc.WithTLSCredentials(creds))
		}

		exporter, err := otlploggrpc.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("otlp log exporter: %w", err)
		}

		p.logs = sdklog.NewLoggerProvider(
			sdklog.WithResource(res),
			sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter, sdklog.WithExportTimeout(batch))),
		)
	}

	if cfg.Traces {
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint), otlptracegrpc.WithHeaders(cfg.Headers)}
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		} else if creds != nil {
			opts = append(opts, otlptracegrpc.WithTLSCredentials(creds))
		}

		exporter, err := otlptracegrpc.New(ctx, opts...)
		if err != nil {
			_ = p.shutdown(ctx)
			return nil, fmt.Errorf("otlp trace exporter: %w", err)
		}

		p.traces = sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(batch)),
		)

		otel.SetTracerProvider(p.traces)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}

	if cfg.Metrics {
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint), otlpmetricgrpc.WithHeaders(cfg.Headers)}
		if cfg.Insecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		} else if creds != nil {
			opts = append(opts, otlpmetricgrpc.WithTLSCredentials(creds))
		}

		exporter, err := otlpmetricgrpc.New(ctx, opts...)
		if err != nil {
			_ = p.shutdown(ctx)
			return nil, fmt.Errorf("otlp metric exporter: %w", err)
		}

		p.metrics = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		)

		otel.SetMeterProvider(p.metrics)
	}

	return p, nil
}

func transportCredentials(cfg OTelConfig) (credentials.TransportCredentials, error) {
	if cfg.Insecure || cfg.CAFile == "" {
		return nil, nil
	}

	pem, err := os.ReadFile(cfg.CAFile)
	if err != nil {
		return nil, fmt.Errorf("read otel CA: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errParseCACert
	}

	return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12, RootCAs: pool}), nil
}

func (p *otelPipeline) shutdown(ctx context.Context) error {
	var errs []error

	if p.logs != nil {
		errs = append(errs, p.logs.Shutdown(ctx))
	}

	if p.traces != nil {
		errs = append(errs, p.traces.Shutdown(ctx))
	}

	if p.metrics != nil {
		errs = append(errs, p.metrics.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
