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
	"github.com/aghigo/osiris-web-backend/pkg/repository"
)

type NetworkService struct {
	logger   *zap.Logger
	networks *repository.NetworkRepository
}

func NewNetworkService(logger *zap.Logger, networks *repository.NetworkRepository) *NetworkService {
	return &NetworkService{
		logger:   logger.Named("network_service"),
		networks: networks,
	}
}

func (s *NetworkService) GetAll() ([]gatewayv1.NetworkResponse, error) {
	networks, err := s.networks.GetAll()
	if err != nil {
		return nil, err
	}
	result := make([]gatewayv1.NetworkResponse, 0, len(networks))
	for i := range networks {
		if err := checkItem("Network", &networks[i]); err != nil {
			return nil, err
		}
		result = append(result, toNetworkResponse(networks[i]))
	}
	return result, nil
}

func (s *NetworkService) GetByID(networkID string) (*gatewayv1.NetworkResponse, error) {
	network, err := s.networks.GetByID(networkID)
	if err != nil {
		return nil, err
	}
	if err := checkItem("Network", network); err != nil {
		return nil, err
	}
	if !inScope(network.ID, networkID) {
		return nil, scopeMismatch("network", networkID)
	}
	resp := toNetworkResponse(*network)
	return &resp, nil
}

type CollectorService struct {
	logger     *zap.Logger
	collectors *repository.CollectorRepository
}

func NewCollectorService(logger *zap.Logger, collectors *repository.CollectorRepository) *CollectorService {
	return &CollectorService{
		logger:     logger.Named("collector_service"),
		collectors: collectors,
	}
}

func (s *CollectorService) GetAllByNetworkID(networkID string) ([]gatewayv1.CollectorResponse, error) {
	collectors, err := s.collectors.GetAll(networkID)
	if err != nil {
		return nil, err
	}
	result := make([]gatewayv1.CollectorResponse, 0, len(collectors))
	for _, c := range collectors {
		if err := checkItem("Collector", &c); err != nil {
			return nil, err
		}
		if !inScope(c.NetworkID, networkID) {
			s.logger.Warn("dropping collector outside of requested network",
				zap.String("collector", c.ID),
				zap.String("network", networkID),
				zap.String("got_network", c.NetworkID))
			continue
		}
		result = append(result, toCollectorResponse(c))
	}
	return result, nil
}

func (s *CollectorService) GetByIDAndNetworkID(networkID, collectorID string) (*gatewayv1.CollectorResponse, error) {
	collector, err := s.collectors.GetByID(networkID, collectorID)
	if err != nil {
		return nil, err
	}
	if err := checkItem("Collector", collector); err != nil {
		return nil, err
	}
	if !inScope(collector.NetworkID, networkID) || !inScope(collector.ID, collectorID) {
		return nil, scopeMismatch("collector", collectorID)
	}
	resp := toCollectorResponse(*collector)
	return &resp, nil
}
