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

// Package v1 holds the shapes the gateway returns to HTTP callers.
package v1

type (
	// ValueResponse is a captured value as shown to callers.
	ValueResponse struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Value  string `json:"value"`
		Unit   string `json:"unit,omitempty"`
		Symbol string `json:"symbol,omitempty"`
	}

	SensorResponse struct {
		ID                           string            `json:"id"`
		NetworkID                    string            `json:"networkId"`
		CollectorID                  string            `json:"collectorId"`
		State                        string            `json:"state"`
		CaptureTimestampInMillis     int64             `json:"captureTimestampInMillis"`
		CapturePrecisionInNano       int               `json:"capturePrecisionInNano"`
		AcquisitionTimestampInMillis int64             `json:"acquisitionTimestampInMillis"`
		StorageTimestampInMillis     int64             `json:"storageTimestampInMillis"`
		LastModified                 int64             `json:"lastModified"`
		Values                       []ValueResponse   `json:"values"`
		Info                         map[string]string `json:"info,omitempty"`
	}

	NetworkResponse struct {
		ID              string            `json:"id"`
		Domain          string            `json:"domain"`
		Type            string            `json:"type"`
		State           string            `json:"state"`
		LastModified    int64             `json:"lastModified"`
		TotalCollectors int               `json:"totalCollectors"`
		TotalSensors    int               `json:"totalSensors"`
		Info            map[string]string `json:"info,omitempty"`
	}

	CollectorResponse struct {
		ID                       string            `json:"id"`
		NetworkID                string            `json:"networkId"`
		State                    string            `json:"state"`
		CaptureIntervalInMillis  int64             `json:"captureIntervalInMillis"`
		CaptureTimestampInMillis int64             `json:"captureTimestampInMillis"`
		LastModified             int64             `json:"lastModified"`
		TotalSensors             int               `json:"totalSensors"`
		Info                     map[string]string `json:"info,omitempty"`
	}
)
