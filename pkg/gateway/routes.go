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
	"strings"

	"github.com/gorilla/mux"

	"github.com/aghigo/osiris-web-backend/pkg/utils/metrics"
	"github.com/aghigo/osiris-web-backend/pkg/utils/otel"
)

type (
	endpoint struct {
		method  string
		handler http.HandlerFunc
		summary string
		// status answered on success
		status int
	}

	// route is one resource path and the verbs it accepts. The table of
	// routes is the only source for registration, Allow headers and the
	// OpenAPI document.
	route struct {
		path      string
		endpoints []endpoint
	}
)

// allow lists the verbs of a route, OPTIONS included, in table order.
func (rt route) allow() []string {
	methods := make([]string, 0, len(rt.endpoints)+1)
	for _, e := range rt.endpoints {
		methods = append(methods, e.method)
	}
	return append(methods, http.MethodOptions)
}

func get(h http.HandlerFunc, summary string) endpoint {
	return endpoint{method: http.MethodGet, handler: h, summary: summary, status: http.StatusOK}
}

func (api *API) routes() []route {
	links := api.linkHandlers()
	dataTypes := api.dataTypeHandlers()

	return []route{
		{path: "/sensornet/sensors", endpoints: []endpoint{
			get(api.SensorApiList, "List the sensors of every network"),
		}},
		{path: "/sensornet/sensors/mock", endpoints: []endpoint{
			get(api.SensorApiMock, "Generate a random sensor that is not stored"),
		}},
		{path: "/sensornet/networks", endpoints: []endpoint{
			get(api.NetworkApiList, "List networks"),
		}},
		{path: "/sensornet/networks/{networkId}", endpoints: []endpoint{
			get(api.NetworkApiGet, "Get a network"),
		}},
		{path: "/sensornet/networks/{networkId}/sensors", endpoints: []endpoint{
			get(api.NetworkSensorApiList, "List the sensors of a network"),
		}},
		{path: "/sensornet/networks/{networkId}/collectors", endpoints: []endpoint{
			get(api.CollectorApiList, "List the collectors of a network"),
		}},
		{path: "/sensornet/networks/{networkId}/collectors/{collectorId}", endpoints: []endpoint{
			get(api.CollectorApiGet, "Get a collector of a network"),
		}},
		{path: "/sensornet/networks/{networkId}/collectors/{collectorId}/sensors", endpoints: []endpoint{
			get(api.CollectorSensorApiList, "List the sensors of a collector"),
		}},
		{path: "/sensornet/networks/{networkId}/collectors/{collectorId}/sensors/{sensorId}", endpoints: []endpoint{
			get(api.CollectorSensorApiGet, "Get a sensor of a collector"),
		}},
		{path: links.path, endpoints: []endpoint{
			get(links.List, "List links"),
			{method: http.MethodPost, handler: links.Create, summary: "Create a link", status: http.StatusCreated},
		}},
		{path: links.itemPath(), endpoints: []endpoint{
			get(links.Get, "Get a link"),
			{method: http.MethodPut, handler: links.Update, summary: "Replace a link", status: http.StatusOK},
			{method: http.MethodDelete, handler: links.Delete, summary: "Delete a link", status: http.StatusOK},
		}},
		{path: dataTypes.path, endpoints: []endpoint{
			get(dataTypes.List, "List data types"),
			{method: http.MethodPost, handler: dataTypes.Create, summary: "Create a data type", status: http.StatusCreated},
		}},
		{path: dataTypes.itemPath(), endpoints: []endpoint{
			get(dataTypes.Get, "Get a data type"),
			{method: http.MethodPut, handler: dataTypes.Update, summary: "Replace a data type", status: http.StatusOK},
			{method: http.MethodDelete, handler: dataTypes.Delete, summary: "Delete a data type", status: http.StatusOK},
		}},
	}
}

// optionsHandler answers OPTIONS from the route table alone.
func optionsHandler(allow []string) http.HandlerFunc {
	header := strings.Join(allow, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", header)
		w.WriteHeader(http.StatusOK)
	}
}

func (api *API) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.HTTPMetricMiddleware, otel.SpanNameFromRoute)

	r.HandleFunc("/healthz", api.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/", api.HomeHandler).Methods(http.MethodGet)

	routes := api.routes()
	for _, rt := range routes {
		for _, e := range rt.endpoints {
			r.HandleFunc(rt.path, e.handler).Methods(e.method)
		}
		r.HandleFunc(rt.path, optionsHandler(rt.allow())).Methods(http.MethodOptions)
	}

	r.Handle("/apidocs.json", openAPIHandler(routes)).Methods(http.MethodGet)

	return r
}

func (api *API) GetHandler() http.Handler {
	return otel.GetHandlerWithOTEL(api.router(), "osiris-gateway", otel.SkipPrefixes("/healthz"))
}
