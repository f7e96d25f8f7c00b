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
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/jobs", r.URL.Path)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.WriteJSON(models.StreamEvent{Type: "ping"})
		_ = conn.WriteJSON(models.StreamEvent{Type: "job_status", ID: "j-1", Status: "running"})
		_ = conn.WriteJSON(models.StreamEvent{Type: "job_status", ID: "j-1", Status: "completed"})
		_ = conn.WriteJSON(models.StreamEvent{Type: "complete"})
	}))

	var got []models.StreamEvent

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := NewTrainingClient(c).JobEvents(ctx, func(ev models.StreamEvent) {
		got = append(got, ev)
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "running", got[0].Status)
	assert.Equal(t, "completed", got[1].Status)
}

func TestJobEvents_CancelIsNotAnError(t *testing.T) {
	upgrader := websocket.Upgrader{}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	err := NewTrainingClient(c).JobEvents(ctx, func(models.StreamEvent) {})
	assert.NoError(t, err)
}

func TestJobEvents_DialFailure(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	err := NewTrainingClient(c).JobEvents(context.Background(), func(models.StreamEvent) {})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}
