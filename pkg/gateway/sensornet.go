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

package gateway

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (api *API) SensorApiList(w http.ResponseWriter, r *http.Request) {
	sensors, err := api.sensors.GetAll()
	respondList(api, w, r, sensors, err)
}

func (api *API) SensorApiMock(w http.ResponseWriter, r *http.Request) {
	api.respondWithSuccess(w, r, api.sensors.GetRandom())
}

func (api *API) NetworkApiList(w http.ResponseWriter, r *http.Request) {
	networks, err := api.networks.GetAll()
	respondList(api, w, r, networks, err)
}

func (api *API) NetworkApiGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	network, err := api.networks.GetByID(vars["networkId"])
	respondItem(api, w, r, network, err)
}

func (api *API) NetworkSensorApiList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sensors, err := api.sensors.GetAllByNetworkID(vars["networkId"])
	respondList(api, w, r, sensors, err)
}

func (api *API) CollectorApiList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collectors, err := api.collectors.GetAllByNetworkID(vars["networkId"])
	respondList(api, w, r, collectors, err)
}

func (api *API) CollectorApiGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collector, err := api.collectors.GetByIDAndNetworkID(vars["networkId"], vars["collectorId"])
	respondItem(api, w, r, collector, err)
}

func (api *API) CollectorSensorApiList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sensors, err := api.sensors.GetAllByCollectorIDAndNetworkID(vars["networkId"], vars["collectorId"])
	respondList(api, w, r, sensors, err)
}

func (api *API) CollectorSensorApiGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sensor, err := api.sensors.GetByCollectorIDAndNetworkID(vars["networkId"], vars["collectorId"], vars["sensorId"])
	respondItem(api, w, r, sensor, err)
}
