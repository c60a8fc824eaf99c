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
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dchest/uniuri"
	"github.com/google/uuid"

	sensornetv1 "github.com/aghigo/osiris-web-backend/pkg/apis/sensornet/v1"
)

var mockValues = []struct {
	name   string
	unit   string
	symbol string
	min    float64
	max    float64
}{
	{name: "temperature", unit: "celsius", symbol: "°C", min: -20, max: 45},
	{name: "humidity", unit: "percent", symbol: "%", min: 0, max: 100},
	{name: "luminosity", unit: "candela", symbol: "cd", min: 0, max: 1000},
	{name: "pressure", unit: "hectopascal", symbol: "hPa", min: 950, max: 1050},
}

// RandomSensor builds a plausible sensor with fresh ids and readings.
func RandomSensor() sensornetv1.Sensor {
	now := time.Now()
	capture := now.Add(-time.Duration(rand.Intn(5000)) * time.Millisecond)
	acquisition := capture.Add(time.Duration(rand.Intn(200)) * time.Millisecond)
	storage := acquisition.Add(time.Duration(rand.Intn(200)) * time.Millisecond)

	values := make([]sensornetv1.Value, 0, len(mockValues)+1)
	for _, mv := range mockValues {
		if rand.Intn(4) == 0 {
			continue
		}
		values = append(values, sensornetv1.Value{
			Name:   mv.name,
			Type:   sensornetv1.ValueTypeNumber,
			Value:  fmt.Sprintf("%.2f", mv.min+rand.Float64()*(mv.max-mv.min)),
			Unit:   mv.unit,
			Symbol: mv.symbol,
		})
	}
	values = append(values, sensornetv1.Value{
		Name:  "battery_ok",
		Type:  sensornetv1.ValueTypeLogic,
		Value: fmt.Sprintf("%t", rand.Intn(10) > 0),
	})

	return sensornetv1.Sensor{
		ID:                           uuid.NewString(),
		NetworkID:                    "network-" + strings.ToLower(uniuri.NewLen(8)),
		CollectorID:                  "collector-" + strings.ToLower(uniuri.NewLen(8)),
		State:                        sensornetv1.States[rand.Intn(len(sensornetv1.States))],
		CaptureTimestampInMillis:     capture.UnixMilli(),
		CapturePrecisionInNano:       rand.Intn(1000),
		AcquisitionTimestampInMillis: acquisition.UnixMilli(),
		StorageTimestampInMillis:     storage.UnixMilli(),
		LastModified:                 storage.UnixMilli(),
		Values:                       values,
		Info:                         map[string]string{"mock": "true"},
	}
}
