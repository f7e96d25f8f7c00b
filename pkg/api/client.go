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

// Package api is the HTTP client for the training and dataset backends.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/makr-code/VCC-Clara-sub001/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout         = 10 * time.Second
	defaultHealthTimeout   = 3 * time.Second
	defaultDownloadTimeout = 10 * time.Minute
	maxErrorBody           = 64 << 10
	tracerName             = "github.com/makr-code/VCC-Clara-sub001/pkg/api"
)

// Client talks to one named backend service.
type Client struct {
	name            string
	baseURL         *url.URL
	httpClient      *http.Client
	timeout         time.Duration
	healthTimeout   time.Duration
	downloadTimeout time.Duration
	healthPath      []string
	logger          logger.Logger
	tracer          trace.Tracer
	tracerProvider  trace.TracerProvider
	meterProvider   metric.MeterProvider
	requestDuration metric.Float64Histogram
}

// Option customises a Client.
type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHealthTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.healthTimeout = d
		}
	}
}

func WithDownloadTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.downloadTimeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracerProvider overrides the global tracer provider for request spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global meter provider for request metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Client) {
		if mp != nil {
			c.meterProvider = mp
		}
	}
}

// NewFromHealthURL creates a client for a service known only by its health
// endpoint, as in the local service registry.
func NewFromHealthURL(name, healthURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(healthURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", errInvalidBaseURL, healthURL)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		segments = []string{healthPath}
	}

	c, err := New(name, u.Scheme+"://"+u.Host, opts...)
	if err != nil {
		return nil, err
	}

	c.healthPath = segments

	return c, nil
}

// New creates a client for the service called name rooted at baseURL.
func New(name, baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errEmptyBaseURL
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", errInvalidBaseURL, baseURL)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	c := &Client{
		name:            name,
		baseURL:         u,
		httpClient:      &http.Client{Transport: transport},
		timeout:         defaultTimeout,
		healthTimeout:   defaultHealthTimeout,
		downloadTimeout: defaultDownloadTimeout,
		healthPath:      []string{healthPath},
		logger:          logger.NewTestLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tracerProvider == nil {
		c.tracerProvider = otel.GetTracerProvider()
	}

	c.tracer = c.tracerProvider.Tracer(tracerName)

	if c.meterProvider == nil {
		c.meterProvider = otel.GetMeterProvider()
	}

	hist, err := c.meterProvider.Meter(tracerName).Float64Histogram("clara.client.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of backend requests."),
	)
	if err != nil {
		c.logger.Debug().Err(err).Msg("request duration histogram unavailable")

		hist = noop.Float64Histogram{}
	}

	c.requestDuration = hist

	return c, nil
}

// Name is the service identifier the client was created with.
func (c *Client) Name() string {
	return c.name
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := *c.baseURL

	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}

	rawBase := strings.TrimSuffix(u.EscapedPath(), "/")
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.Join(segments, "/")
	u.RawPath = rawBase + "/" + strings.Join(escaped, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return u.String()
}

// resolve turns a possibly relative reference from a response into an absolute URL.
func (c *Client) resolve(ref string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}

	return c.baseURL.ResolveReference(r).String(), nil
}

// startSpan opens a client span for one request.
func (c *Client) startSpan(ctx context.Context, op, method, target string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("clara.service", c.name),
			attribute.String("http.request.method", method),
			attribute.String("url.full", target),
		),
	)
}

// observe records the duration and outcome of one request.
func (c *Client) observe(ctx context.Context, op string, start time.Time, err error) {
	outcome := "ok"

	switch {
	case IsTransport(err):
		outcome = "transport_error"
	case err != nil:
		outcome = "rejected"
	}

	c.requestDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("clara.service", c.name),
		attribute.String("clara.op", op),
		attribute.String("outcome", outcome),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}

// send performs one request with its own timeout and returns the raw body of a
// 2xx response. Every failure is classified as TransportError or APIError.
func (c *Client) send(ctx context.Context, op, method, target string, payload interface{}, timeout time.Duration) (data []byte, err error) {
	start := time.Now()

	spanCtx, span := c.startSpan(ctx, op, method, target)
	defer func() {
		c.observe(spanCtx, op, start, err)
		endSpan(span, err)
	}()

	ctx, cancel := context.WithTimeout(spanCtx, timeout)
	defer cancel()

	var body io.Reader = http.NoBody

	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", op, err)
		}

		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, c.transport(op, 0, err)
	}

	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("service", c.name).Str("op", op).Err(err).Msg("request failed")

		return nil, c.transport(op, 0, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("service", c.name).
		Str("op", op).
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if StatusCodeRangeOf(resp) != Status2xx {
		return nil, c.rejection(op, resp)
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transport(op, resp.StatusCode, err)
	}

	if msg, rejected := rejectedEnvelope(data); rejected {
		return nil, &APIError{Service: c.name, Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	return data, nil
}

func (c *Client) transport(op string, status int, err error) error {
	return &TransportError{Service: c.name, Op: op, StatusCode: status, Err: err}
}

func (c *Client) decode(op string, data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return c.transport(op, 0, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// decodeNumbers is decode with numbers kept as json.Number.
func (c *Client) decodeNumbers(op string, data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return c.transport(op, 0, fmt.Errorf("decode response: %w", err))
	}

	return nil
}
