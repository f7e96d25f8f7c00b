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

package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the last width values as a one-line bar chart.
func Sparkline(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := math.Inf(1), math.Inf(-1)

	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder

	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}

		b.WriteRune(sparkBlocks[idx])
	}

	return b.String()
}

// MetricLines renders one sparkline per metric name with its latest value.
func MetricLines(points []models.MetricPoint, width int) []string {
	series, names := models.SeriesByName(points)

	lines := make([]string, 0, len(names))

	for _, name := range names {
		values := series[name]
		last := values[len(values)-1]
		lines = append(lines, fmt.Sprintf("%-14s %s %.4g", name, Sparkline(values, width), last))
	}

	return lines
}
