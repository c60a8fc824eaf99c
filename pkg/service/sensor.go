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
	"go.uber.org/zap"

	gatewayv1 "github.com/aghigo/osiris-web-backend/pkg/apis/gateway/v1"
	sensornetv1 "github.com/aghigo/osiris-web-backend/pkg/apis/sensornet/v1"
	"github.com/aghigo/osiris-web-backend/pkg/repository"
)

type SensorService struct {
	logger   *zap.Logger
	sensors  *repository.SensorRepository
	networks *repository.NetworkRepository
}

func NewSensorService(logger *zap.Logger, sensors *repository.SensorRepository, networks *repository.NetworkRepository) *SensorService {
	return &SensorService{
		logger:   logger.Named("sensor_service"),
		sensors:  sensors,
		networks: networks,
	}
}

// GetAll lists the sensors of every network, network by network.
func (s *SensorService) GetAll() ([]gatewayv1.SensorResponse, error) {
	networks, err := s.networks.GetAll()
	if err != nil {
		return nil, err
	}
	result := make([]gatewayv1.SensorResponse, 0)
	for _, n := range networks {
		sensors, err := s.sensors.GetAllByNetworkID(n.ID)
		if err != nil {
			return nil, err
		}
		filtered, err := s.filter(sensors, n.ID, "")
		if err != nil {
			return nil, err
		}
		result = append(result, filtered...)
	}
	return result, nil
}

func (s *SensorService) GetAllByNetworkID(networkID string) ([]gatewayv1.SensorResponse, error) {
	sensors, err := s.sensors.GetAllByNetworkID(networkID)
	if err != nil {
		return nil, err
	}
	return s.filter(sensors, networkID, "")
}

func (s *SensorService) GetAllByCollectorIDAndNetworkID(networkID, collectorID string) ([]gatewayv1.SensorResponse, error) {
	sensors, err := s.sensors.GetAllByCollectorIDAndNetworkID(networkID, collectorID)
	if err != nil {
		return nil, err
	}
	return s.filter(sensors, networkID, collectorID)
}

func (s *SensorService) GetByCollectorIDAndNetworkID(networkID, collectorID, sensorID string) (*gatewayv1.SensorResponse, error) {
	sensor, err := s.sensors.GetByCollectorIDAndNetworkID(networkID, collectorID, sensorID)
	if err != nil {
		return nil, err
	}
	if err := checkItem("Sensor", sensor); err != nil {
		return nil, err
	}
	if !inScope(sensor.NetworkID, networkID) || !inScope(sensor.CollectorID, collectorID) || !inScope(sensor.ID, sensorID) {
		s.logger.Warn("sensor outside of requested scope",
			zap.String("network", networkID),
			zap.String("collector", collectorID),
			zap.String("sensor", sensorID),
			zap.String("got_network", sensor.NetworkID),
			zap.String("got_collector", sensor.CollectorID))
		return nil, scopeMismatch("sensor", sensorID)
	}
	resp := toSensorResponse(*sensor)
	return &resp, nil
}

// GetRandom returns a generated sensor that is never stored.
func (s *SensorService) GetRandom() gatewayv1.SensorResponse {
	return toSensorResponse(RandomSensor())
}

// filter converts sensors, dropping the ones that claim another network or
// collector. An empty collectorID matches every collector. One malformed
// sensor fails the whole listing.
func (s *SensorService) filter(sensors []sensornetv1.Sensor, networkID, collectorID string) ([]gatewayv1.SensorResponse, error) {
	result := make([]gatewayv1.SensorResponse, 0, len(sensors))
	for i := range sensors {
		sensor := &sensors[i]
		if err := checkItem("Sensor", sensor); err != nil {
			return nil, err
		}
		if !inScope(sensor.NetworkID, networkID) || (len(collectorID) > 0 && !inScope(sensor.CollectorID, collectorID)) {
			s.logger.Warn("dropping sensor outside of requested scope",
				zap.String("sensor", sensor.ID),
				zap.String("network", networkID),
				zap.String("got_network", sensor.NetworkID))
			continue
		}
		result = append(result, toSensorResponse(*sensor))
	}
	return result, nil
}
