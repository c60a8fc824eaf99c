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

package repository

import (
	"go.uber.org/zap"

	sensornetv1 "github.com/aghigo/osiris-web-backend/pkg/apis/sensornet/v1"
	vsnv1 "github.com/aghigo/osiris-web-backend/pkg/apis/virtualsensornet/v1"
	"github.com/aghigo/osiris-web-backend/pkg/omcp"
)

type (
	LinkRepository      = Repository[vsnv1.Link]
	DataTypeRepository  = Repository[vsnv1.DataType]
	NetworkRepository   = Repository[sensornetv1.Network]
	CollectorRepository = Repository[sensornetv1.Collector]

	// SensorKind adds the network-wide sensor listing to the
	// network/collector/sensor templates.
	SensorKind struct {
		Kind
		ByNetwork string
	}

	// SensorRepository reaches sensors both through their collector and
	// directly through their network.
	SensorRepository struct {
		*Repository[sensornetv1.Sensor]
		byNetwork string
	}
)

func NewLinkRepository(logger *zap.Logger, connector omcp.Connector, kind Kind) (*LinkRepository, error) {
	return New[vsnv1.Link](logger, connector, kind)
}

func NewDataTypeRepository(logger *zap.Logger, connector omcp.Connector, kind Kind) (*DataTypeRepository, error) {
	return New[vsnv1.DataType](logger, connector, kind)
}

func NewNetworkRepository(logger *zap.Logger, connector omcp.Connector, kind Kind) (*NetworkRepository, error) {
	return New[sensornetv1.Network](logger, connector, kind)
}

func NewCollectorRepository(logger *zap.Logger, connector omcp.Connector, kind Kind) (*CollectorRepository, error) {
	return New[sensornetv1.Collector](logger, connector, kind)
}

func NewSensorRepository(logger *zap.Logger, connector omcp.Connector, kind SensorKind) (*SensorRepository, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	repo, err := New[sensornetv1.Sensor](logger, connector, kind.Kind)
	if err != nil {
		return nil, err
	}
	return &SensorRepository{Repository: repo, byNetwork: kind.ByNetwork}, nil
}

// Validate checks the collector templates and the network listing, which
// takes the network id only.
func (k SensorKind) Validate() error {
	if err := k.Kind.Validate(); err != nil {
		return err
	}
	byNetwork := Kind{Name: k.Name + " by network", Parents: 1, Collection: k.ByNetwork, Item: k.ByNetwork + placeholder}
	return byNetwork.Validate()
}

// GetAllByNetworkID lists every sensor of a network, across its collectors.
func (r *SensorRepository) GetAllByNetworkID(networkID string) ([]sensornetv1.Sensor, error) {
	uri, err := expand(r.byNetwork, []string{networkID})
	if err != nil {
		return nil, err
	}
	return r.list(uri)
}

// GetAllByCollectorIDAndNetworkID lists the sensors of one collector.
func (r *SensorRepository) GetAllByCollectorIDAndNetworkID(networkID, collectorID string) ([]sensornetv1.Sensor, error) {
	return r.GetAll(networkID, collectorID)
}

// GetByCollectorIDAndNetworkID fetches one sensor of one collector.
func (r *SensorRepository) GetByCollectorIDAndNetworkID(networkID, collectorID, sensorID string) (*sensornetv1.Sensor, error) {
	return r.GetByID(networkID, collectorID, sensorID)
}

// Default locations of the OSIRIS backend modules.
var (
	DefaultLinkKind = Kind{
		Name:       "link",
		Collection: "omcp://virtualsensornet/link/",
		Item:       "omcp://virtualsensornet/link/%s/",
	}
	DefaultDataTypeKind = Kind{
		Name:       "datatype",
		Collection: "omcp://virtualsensornet/datatype/",
		Item:       "omcp://virtualsensornet/datatype/%s/",
	}
	DefaultNetworkKind = Kind{
		Name:       "network",
		Collection: "omcp://sensornet/",
		Item:       "omcp://sensornet/%s/",
	}
	DefaultCollectorKind = Kind{
		Name:       "collector",
		Parents:    1,
		Collection: "omcp://sensornet/%s/collector/",
		Item:       "omcp://sensornet/%s/collector/%s/",
	}
	DefaultSensorKind = SensorKind{
		Kind: Kind{
			Name:       "sensor",
			Parents:    2,
			Collection: "omcp://sensornet/%s/collector/%s/sensor/",
			Item:       "omcp://sensornet/%s/collector/%s/sensor/%s/",
		},
		ByNetwork: "omcp://sensornet/%s/sensor/",
	}
)
