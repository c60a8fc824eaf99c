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

/*
Package gateway exposes the SensorNet and VirtualSensorNet resources over
HTTP. Every GET handler follows the same rules: a classified backend error
becomes its HTTP status with an empty body, any other failure becomes a
500 carrying the error message, and an empty list or a missing item
becomes a 404.
*/
package gateway

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	vsnv1 "github.com/aghigo/osiris-web-backend/pkg/apis/virtualsensornet/v1"
	"github.com/aghigo/osiris-web-backend/pkg/config"
	ferror "github.com/aghigo/osiris-web-backend/pkg/error"
	"github.com/aghigo/osiris-web-backend/pkg/info"
	"github.com/aghigo/osiris-web-backend/pkg/omcp"
	"github.com/aghigo/osiris-web-backend/pkg/repository"
	"github.com/aghigo/osiris-web-backend/pkg/service"
	"github.com/aghigo/osiris-web-backend/pkg/utils/otel"
)

type API struct {
	logger     *zap.Logger
	modules    map[string]string
	sensors    *service.SensorService
	networks   *service.NetworkService
	collectors *service.CollectorService
	links      *service.ResourceService[vsnv1.Link]
	dataTypes  *service.ResourceService[vsnv1.DataType]
}

// MakeAPI wires repositories and services for every resource kind of cfg
// onto the OMCP connections handed out by connector.
func MakeAPI(logger *zap.Logger, connector omcp.Connector, cfg *config.Config) (*API, error) {
	sensorRepo, err := repository.NewSensorRepository(logger, connector, cfg.SensorKind())
	if err != nil {
		return nil, err
	}
	networkRepo, err := repository.NewNetworkRepository(logger, connector, cfg.NetworkKind())
	if err != nil {
		return nil, err
	}
	collectorRepo, err := repository.NewCollectorRepository(logger, connector, cfg.CollectorKind())
	if err != nil {
		return nil, err
	}
	linkRepo, err := repository.NewLinkRepository(logger, connector, cfg.LinkKind())
	if err != nil {
		return nil, err
	}
	dataTypeRepo, err := repository.NewDataTypeRepository(logger, connector, cfg.DataTypeKind())
	if err != nil {
		return nil, err
	}

	return &API{
		logger:     logger.Named("gateway"),
		modules:    cfg.OMCP.Modules,
		sensors:    service.NewSensorService(logger, sensorRepo, networkRepo),
		networks:   service.NewNetworkService(logger, networkRepo),
		collectors: service.NewCollectorService(logger, collectorRepo),
		links:      service.NewResourceService(logger, linkRepo),
		dataTypes:  service.NewResourceService(logger, dataTypeRepo),
	}, nil
}

func (api *API) respondWithSuccess(w http.ResponseWriter, r *http.Request, v interface{}) {
	resp, err := json.Marshal(v)
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(resp)
	if err != nil {
		otel.LoggerWithTraceID(r.Context(), api.logger).Error("error writing response", zap.Error(err))
	}
}

// respondWithError writes classified errors as a bare status. Anything else
// is an internal failure and its message is the body.
func (api *API) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	logger := otel.LoggerWithTraceID(r.Context(), api.logger).With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	code, msg := ferror.GetHTTPError(err)
	if _, classified := ferror.As(err); classified {
		logger.Info("backend reported an error", zap.Int("code", code), zap.String("reason", msg))
		w.WriteHeader(code)
		return
	}

	logger.Error("request failed", zap.Int("code", code), zap.Error(err))
	respondWithMessage(w, code, msg)
}

// respondBadRequest rejects a request body the gateway could not accept.
func (api *API) respondBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	otel.LoggerWithTraceID(r.Context(), api.logger).Debug("rejecting request body",
		zap.String("path", r.URL.Path), zap.Error(err))
	respondWithMessage(w, http.StatusBadRequest, err.Error())
}

func respondWithMessage(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

func respondNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// respondList applies the absence-by-emptiness rule to a listing.
func respondList[T any](api *API, w http.ResponseWriter, r *http.Request, items []T, err error) {
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	if len(items) == 0 {
		respondNotFound(w)
		return
	}
	api.respondWithSuccess(w, r, items)
}

// respondItem applies the absence-by-emptiness rule to a single item.
func respondItem[T any](api *API, w http.ResponseWriter, r *http.Request, item *T, err error) {
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	if item == nil {
		respondNotFound(w)
		return
	}
	api.respondWithSuccess(w, r, item)
}

func (api *API) HomeHandler(w http.ResponseWriter, r *http.Request) {
	api.respondWithSuccess(w, r, info.ApiInfo(api.modules))
}

func (api *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
