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
	"errors"
	"fmt"
	"net/http"
)

var (
	errEmptyBaseURL   = errors.New("base URL is required")
	errInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")
	errEmptyID        = errors.New("resource id is required")
	errNoIDInResponse = errors.New("create response did not include an id")
	errNoDownloadURL  = errors.New("export response did not include a download url")
	errHTTPStatus     = errors.New("unexpected HTTP status")
)

// TransportError means the request never produced an answer the console can
// interpret: the backend was unreachable, timed out, or returned a non-2xx
// status without a readable body.
type TransportError struct {
	Service    string
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: HTTP %d: %v", e.Service, e.Op, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError means the backend understood the request and rejected it.
type APIError struct {
	Service    string
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s rejected: %s", e.Service, e.Op, e.Message)
}

// NotFound reports whether the rejection was an unknown resource id.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ValidationError is returned before any request is sent.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsTransport reports whether err is a connectivity failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsLogical reports whether err is a well-formed rejection from the backend.
func IsLogical(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// IsNotFound reports whether err is a logical not-found rejection.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.NotFound()
}

// IsValidation reports whether err was raised by client-side validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
