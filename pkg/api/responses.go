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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type StatusCodeRange int

const (
	StatusUnknown StatusCodeRange = iota
	Status1xx
	Status2xx
	Status3xx
	Status4xx
	Status5xx
)

func (sc StatusCodeRange) String() string {
	switch sc {
	case Status1xx:
		return "informational response"
	case Status2xx:
		return "success"
	case Status3xx:
		return "redirect"
	case Status4xx:
		return "client error"
	case Status5xx:
		return "server error"
	default:
		return fmt.Sprintf("unknown (%d)", sc)
	}
}

func StatusCodeRangeOf(resp *http.Response) StatusCodeRange {
	sc := resp.StatusCode

	switch {
	case sc < 100:
		return StatusUnknown
	case sc < 200:
		return Status1xx
	case sc < 300:
		return Status2xx
	case sc < 400:
		return Status3xx
	case sc < 500:
		return Status4xx
	case sc < 600:
		return Status5xx
	default:
		return StatusUnknown
	}
}

// rejection classifies a non-2xx response. A body carrying a message makes it
// a logical rejection; otherwise it is a transport failure. 404 is always a
// logical not-found since the backend understood which resource was meant.
func (c *Client) rejection(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if msg, ok := parseErrorMessage(body); ok {
		return &APIError{Service: c.name, Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode == http.StatusNotFound {
		return &APIError{Service: c.name, Op: op, StatusCode: resp.StatusCode, Message: "not found"}
	}

	return c.transport(op, resp.StatusCode, fmt.Errorf("%w: %s", errHTTPStatus, StatusCodeRangeOf(resp)))
}

// parseErrorMessage extracts a human readable message from an error body.
// It understands {"error": ...}, {"message": ...} and {"detail": ...}, where
// detail may also be a list of validation items.
func parseErrorMessage(body []byte) (string, bool) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}

	for _, key := range []string{"error", "message", "detail"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}

		if msg := messageText(raw); msg != "" {
			return msg, true
		}
	}

	return "", false
}

func messageText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var nested struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		if nested.Message != "" {
			return nested.Message
		}

		if nested.Msg != "" {
			return nested.Msg
		}
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				parts = append(parts, it.Msg)
			}
		}

		return strings.Join(parts, "; ")
	}

	return ""
}

// rejectedEnvelope detects 2xx bodies shaped like {"success": false, ...}.
func rejectedEnvelope(body []byte) (string, bool) {
	var env struct {
		Success *bool `json:"success"`
	}

	if err := json.Unmarshal(body, &env); err != nil || env.Success == nil || *env.Success {
		return "", false
	}

	if msg, ok := parseErrorMessage(body); ok {
		return msg, true
	}

	return "operation rejected", true
}

// listItems accepts either a bare array or an object wrapping the array under
// one of keys.
func listItems(body []byte, keys ...string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return []json.RawMessage{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		if items == nil {
			items = []json.RawMessage{}
		}

		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	candidates := append(append([]string{}, keys...), "items", "data", "results")

	for _, key := range candidates {
		raw, ok := envelope[key]
		if !ok {
			continue
		}

		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}

		if items == nil {
			items = []json.RawMessage{}
		}

		return items, nil
	}

	return []json.RawMessage{}, nil
}

func decodeItems[T any](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))

	for _, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}
