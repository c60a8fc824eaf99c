/*
Copyright 2026 The OSIRIS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/aghigo/osiris-web-backend/pkg/apis/validation"
)

// Validate accepts a known state or none at all; the SensorNet module
// omits the state of entities it has not classified yet.
func (s State) Validate(field string) error {
	if len(s) == 0 {
		return nil
	}
	for _, known := range States {
		if s == known {
			return nil
		}
	}
	return validation.MakeValidationErr(validation.ErrorUnsupportedType, field, s, "not a valid state")
}

func (v Value) Validate(field string) error {
	result := &multierror.Error{}

	result = multierror.Append(result, validation.RequireString(field+".Name", v.Name))
	switch v.Type {
	case ValueTypeNumber, ValueTypeText, ValueTypeLogic: // no op
	default:
		result = multierror.Append(result, validation.MakeValidationErr(validation.ErrorUnsupportedType, field+".Type", v.Type, "not a valid value type"))
	}

	return result.ErrorOrNil()
}

func nonNegative(field string, n int64) error {
	if n < 0 {
		return validation.MakeValidationErr(validation.ErrorInvalidValue, field, n, "must not be negative")
	}
	return nil
}

// Validate checks a sensor read back from the SensorNet module. Ids are not
// required here: scope checks decide what an omitted id means.
func (s *Sensor) Validate() error {
	result := &multierror.Error{}

	result = multierror.Append(result,
		s.State.Validate("Sensor.State"),
		nonNegative("Sensor.CaptureTimestampInMillis", s.CaptureTimestampInMillis),
		nonNegative("Sensor.CapturePrecisionInNano", int64(s.CapturePrecisionInNano)))

	for i, v := range s.Values {
		result = multierror.Append(result, v.Validate(fmt.Sprintf("Sensor.Values[%d]", i)))
	}

	return result.ErrorOrNil()
}

func (n *Network) Validate() error {
	result := &multierror.Error{}

	result = multierror.Append(result,
		n.State.Validate("Network.State"),
		nonNegative("Network.TotalCollectors", int64(n.TotalCollectors)),
		nonNegative("Network.TotalSensors", int64(n.TotalSensors)))

	return result.ErrorOrNil()
}

func (c *Collector) Validate() error {
	result := &multierror.Error{}

	result = multierror.Append(result,
		c.State.Validate("Collector.State"),
		nonNegative("Collector.CaptureIntervalInMillis", c.CaptureIntervalInMillis),
		nonNegative("Collector.TotalSensors", int64(c.TotalSensors)))

	return result.ErrorOrNil()
}
