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

// Package v1 contains the VirtualSensorNet representations exchanged over OMCP.
package v1

type (
	// ValueType is the primitive type of a data type.
	ValueType string

	// Field binds one sensor value to a data type and an optional converter.
	Field struct {
		ID          int64  `json:"id,omitempty"`
		Name        string `json:"name"`
		DataTypeID  int64  `json:"dataTypeId"`
		ConverterID int64  `json:"converterId,omitempty"`
		Initialized bool   `json:"initialized"`
	}

	// Link attaches a SensorNet sensor to the virtual sensor network.
	Link struct {
		ID          string  `json:"id,omitempty"`
		SensorID    string  `json:"sensorId"`
		CollectorID string  `json:"collectorId"`
		NetworkID   string  `json:"networkId"`
		Fields      []Field `json:"fields"`
	}

	// DataType describes the unit and range of a virtual sensor field.
	DataType struct {
		ID          int64     `json:"id,omitempty"`
		DisplayName string    `json:"displayName"`
		Type        ValueType `json:"type"`
		Unit        string    `json:"unit"`
		Symbol      string    `json:"symbol"`
		MinValue    float64   `json:"minValue"`
		MaxValue    float64   `json:"maxValue"`
		UsedBy      int64     `json:"usedBy,omitempty"`
	}
)

const (
	ValueTypeNumber  ValueType = "NUMBER"
	ValueTypeInteger ValueType = "INTEGER"
	ValueTypeReal    ValueType = "REAL"
	ValueTypeLogic   ValueType = "LOGIC"
	ValueTypeText    ValueType = "TEXT"
)
