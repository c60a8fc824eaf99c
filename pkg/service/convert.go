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

package service

import (
	sensornetv1 "github.com/aghigo/osiris-web-backend/pkg/apis/sensornet/v1"
	gatewayv1 "github.com/aghigo/osiris-web-backend/pkg/apis/gateway/v1"
)

func toSensorResponse(s sensornetv1.Sensor) gatewayv1.SensorResponse {
	values := make([]gatewayv1.ValueResponse, 0, len(s.Values))
	for _, v := range s.Values {
		values = append(values, gatewayv1.ValueResponse{
			Name:   v.Name,
			Type:   string(v.Type),
			Value:  v.Value,
			Unit:   v.Unit,
			Symbol: v.Symbol,
		})
	}
	return gatewayv1.SensorResponse{
		ID:                           s.ID,
		NetworkID:                    s.NetworkID,
		CollectorID:                  s.CollectorID,
		State:                        string(s.State),
		CaptureTimestampInMillis:     s.CaptureTimestampInMillis,
		CapturePrecisionInNano:       s.CapturePrecisionInNano,
		AcquisitionTimestampInMillis: s.AcquisitionTimestampInMillis,
		StorageTimestampInMillis:     s.StorageTimestampInMillis,
		LastModified:                 s.LastModified,
		Values:                       values,
		Info:                         s.Info,
	}
}

func toNetworkResponse(n sensornetv1.Network) gatewayv1.NetworkResponse {
	return gatewayv1.NetworkResponse{
		ID:              n.ID,
		Domain:          n.Domain,
		Type:            n.Type,
		State:           string(n.State),
		LastModified:    n.LastModified,
		TotalCollectors: n.TotalCollectors,
		TotalSensors:    n.TotalSensors,
		Info:            n.Info,
	}
}

func toCollectorResponse(c sensornetv1.Collector) gatewayv1.CollectorResponse {
	return gatewayv1.CollectorResponse{
		ID:                       c.ID,
		NetworkID:                c.NetworkID,
		State:                    string(c.State),
		CaptureIntervalInMillis:  c.CaptureIntervalInMillis,
		CaptureTimestampInMillis: c.CaptureTimestampInMillis,
		LastModified:             c.LastModified,
		TotalSensors:             c.TotalSensors,
		Info:                     c.Info,
	}
}
