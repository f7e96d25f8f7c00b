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

package training

import (
	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

type jobsMsg struct {
	seq    uint64
	manual bool
	jobs   []models.JobSummary
	err    error
}

type detailMsg struct {
	job     *models.JobDetail
	metrics []models.MetricPoint
}

type actionMsg struct {
	verb string
	id   string
}

type createdMsg struct {
	ack *models.CreateAck
}

type eventMsg struct {
	gen   int
	event models.StreamEvent
	next  <-chan models.StreamEvent
}

type streamEndedMsg struct {
	gen int
	err error
}
