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

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

const (
	streamEventComplete = "complete"
	streamEventPing     = "ping"
)

// Stream subscribes to the backend websocket at /ws/<path> and calls handle
// for every event until ctx is cancelled, the server sends "complete", or the
// connection drops. Cancellation is not an error.
func (c *Client) Stream(ctx context.Context, path string, handle func(models.StreamEvent)) error {
	const op = "stream"

	u := *c.baseURL
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}

	u.Path = c.baseURL.Path + "/ws/" + path

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: c.timeout,
	}

	conn, resp, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
			_ = resp.Body.Close()
		}

		return c.transport(op, status, err)
	}
	defer conn.Close()

	c.logger.Info().Str("service", c.name).Str("path", path).Msg("event stream connected")

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var event models.StreamEvent

		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				c.logger.Warn().Str("service", c.name).Int("code", closeErr.Code).Msg("event stream closed")
			}

			return c.transport(op, 0, err)
		}

		switch event.Type {
		case streamEventPing:
			continue
		case streamEventComplete:
			return nil
		}

		handle(event)
	}
}
