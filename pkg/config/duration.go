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

package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration accepts Go duration strings ("5s") or integer seconds in YAML and JSON.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", errInvalidDuration, err)
	}

	return d.parse(raw)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value) * time.Second)
		return nil
	case string:
		return d.parse(value)
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Duration) parse(raw string) error {
	if raw == "" {
		*d = 0
		return nil
	}

	if secs, err := parseSeconds(raw); err == nil {
		*d = Duration(secs)
		return nil
	}

	dur, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidDuration, raw)
	}

	*d = Duration(dur)

	return nil
}

func parseSeconds(raw string) (time.Duration, error) {
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return time.Duration(secs) * time.Second, nil
}
