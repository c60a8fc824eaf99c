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
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aghigo/osiris-web-backend/pkg/info"
)

var pathParam = regexp.MustCompile(`\{(\w+)\}`)

// openAPIDocument describes the routes as an OpenAPI 3 document.
func openAPIDocument(routes []route) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "OSIRIS gateway",
			Description: "REST access to the SensorNet and VirtualSensorNet modules",
			Version:     versionOrDefault(info.BuildInfo().Version),
		},
		Paths: openapi3.NewPaths(),
	}

	for _, rt := range routes {
		params := openapi3.Parameters{}
		for _, m := range pathParam.FindAllStringSubmatch(rt.path, -1) {
			params = append(params, &openapi3.ParameterRef{
				Value: openapi3.NewPathParameter(m[1]).WithSchema(openapi3.NewStringSchema()),
			})
		}

		item := &openapi3.PathItem{}
		for _, e := range rt.endpoints {
			item.SetOperation(e.method, &openapi3.Operation{
				Summary:     e.summary,
				OperationID: operationID(e.method, rt.path),
				Parameters:  params,
				Responses:   responsesFor(e),
			})
		}
		doc.Paths.Set(rt.path, item)
	}
	return doc
}

func responsesFor(e endpoint) *openapi3.Responses {
	success := "Successful response"
	if e.status == http.StatusCreated {
		success = "Created, the Location header names the new resource"
	}
	opts := []openapi3.NewResponsesOption{
		openapi3.WithStatus(e.status, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(success)}),
		openapi3.WithStatus(http.StatusInternalServerError, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Backend unreachable or failed")}),
	}
	if e.method != http.MethodPost {
		opts = append(opts, openapi3.WithStatus(http.StatusNotFound, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("No such resource, or an empty list")}))
	}
	if e.method == http.MethodPost || e.method == http.MethodPut {
		opts = append(opts, openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Invalid request body")}))
	}
	return openapi3.NewResponses(opts...)
}

// operationID turns "GET /sensornet/networks/{networkId}" into "get_sensornet_networks_networkId".
func operationID(method, path string) string {
	replacer := strings.NewReplacer("{", "", "}", "", "/", "_")
	return strings.ToLower(method) + replacer.Replace(path)
}

func versionOrDefault(v string) string {
	if len(v) == 0 {
		return "dev"
	}
	return v
}

func openAPIHandler(routes []route) http.Handler {
	doc := openAPIDocument(routes)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := json.Marshal(doc)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(resp)
	})
}
