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

// Package v1 contains the SensorNet representations exchanged over OMCP.
package v1

type (
	// State is the lifecycle state the SensorNet module reports for an entity.
	State string

	// ValueType is the declared type of a captured value.
	ValueType string

	// Value is one measurement carried by a sensor.
	Value struct {
		Name   string    `json:"name"`
		Type   ValueType `json:"type"`
		Value  string    `json:"value"`
		Unit   string    `json:"unit,omitempty"`
		Symbol string    `json:"symbol,omitempty"`
	}

	// Sensor is a sensor reading as stored by the SensorNet module.
	Sensor struct {
		ID                           string            `json:"id"`
		NetworkID                    string            `json:"networkId"`
		CollectorID                  string            `json:"collectorId"`
		State                        State             `json:"state"`
		CaptureTimestampInMillis     int64             `json:"captureTimestampInMillis"`
		CapturePrecisionInNano       int               `json:"capturePrecisionInNano"`
		AcquisitionTimestampInMillis int64             `json:"acquisitionTimestampInMillis"`
		StorageTimestampInMillis     int64             `json:"storageTimestampInMillis"`
		LastModified                 int64             `json:"lastModified"`
		Values                       []Value           `json:"values"`
		Info                         map[string]string `json:"info,omitempty"`
	}

	// Network groups collectors.
	Network struct {
		ID              string            `json:"id"`
		Domain          string            `json:"domain"`
		Type            string            `json:"type"`
		State           State             `json:"state"`
		LastModified    int64             `json:"lastModified"`
		TotalCollectors int               `json:"totalCollectors"`
		TotalSensors    int               `json:"totalSensors"`
		Info            map[string]string `json:"info,omitempty"`
	}

	// Collector gathers sensors inside a network.
	Collector struct {
		ID                       string            `json:"id"`
		NetworkID                string            `json:"networkId"`
		State                    State             `json:"state"`
		CaptureIntervalInMillis  int64             `json:"captureIntervalInMillis"`
		CaptureTimestampInMillis int64             `json:"captureTimestampInMillis"`
		LastModified             int64             `json:"lastModified"`
		TotalSensors             int               `json:"totalSensors"`
		Info                     map[string]string `json:"info,omitempty"`
	}
)

const (
	StateNew         State = "NEW"
	StateUpdated     State = "UPDATED"
	StateReactivated State = "REACTIVATED"
	StateMalfunction State = "MALFUNCTION"
	StateInactive    State = "INACTIVE"

	ValueTypeNumber ValueType = "NUMBER"
	ValueTypeText   ValueType = "TEXT"
	ValueTypeLogic  ValueType = "LOGIC"
)

// States lists every known state, in lifecycle order.
var States = []State{StateNew, StateUpdated, StateReactivated, StateMalfunction, StateInactive}
