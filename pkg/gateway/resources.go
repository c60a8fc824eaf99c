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
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aghigo/osiris-web-backend/pkg/apis/validation"
	vsnv1 "github.com/aghigo/osiris-web-backend/pkg/apis/virtualsensornet/v1"
	"github.com/aghigo/osiris-web-backend/pkg/service"
)

type validatable[T any] interface {
	*T
	Validate() error
}

// resourceHandlers serves the list/get/create/update/delete surface of a
// kind that is handed to and from the backend unchanged.
type resourceHandlers[T any, PT validatable[T]] struct {
	api  *API
	name string
	// path is the collection path; items live under path + "/{idVar}"
	path  string
	idVar string
	svc   *service.ResourceService[T]
	// bindID reconciles the id in the body with the id in the path.
	bindID func(v *T, id string) error
}

func (h *resourceHandlers[T, PT]) itemPath() string {
	return h.path + "/{" + h.idVar + "}"
}

func (h *resourceHandlers[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetAll()
	respondList(h.api, w, r, items, err)
}

func (h *resourceHandlers[T, PT]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetByID(mux.Vars(r)[h.idVar])
	respondItem(h.api, w, r, item, err)
}

func (h *resourceHandlers[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	v, err := h.decode(r)
	if err != nil {
		h.api.respondBadRequest(w, r, err)
		return
	}
	id, err := h.svc.Create(v)
	if err != nil {
		h.api.respondWithError(w, r, err)
		return
	}
	w.Header().Set("Location", h.path+"/"+url.PathEscape(id))
	w.WriteHeader(http.StatusCreated)
}

func (h *resourceHandlers[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[h.idVar]
	v, err := h.decode(r)
	if err == nil {
		err = h.bindID(v, id)
	}
	if err != nil {
		h.api.respondBadRequest(w, r, err)
		return
	}
	if err := h.svc.Update(id, v); err != nil {
		h.api.respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *resourceHandlers[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(mux.Vars(r)[h.idVar]); err != nil {
		h.api.respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *resourceHandlers[T, PT]) decode(r *http.Request) (*T, error) {
	var v T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", h.name, err)
	}
	if err := validation.AggregateValidationErrors(h.name, PT(&v).Validate()); err != nil {
		return nil, err
	}
	return &v, nil
}

func (api *API) linkHandlers() *resourceHandlers[vsnv1.Link, *vsnv1.Link] {
	return &resourceHandlers[vsnv1.Link, *vsnv1.Link]{
		api:   api,
		name:  "Link",
		path:  "/virtualsensornet/links",
		idVar: "linkId",
		svc:   api.links,
		bindID: func(l *vsnv1.Link, id string) error {
			if len(l.ID) > 0 && l.ID != id {
				return fmt.Errorf("link id %q does not match path id %q", l.ID, id)
			}
			l.ID = id
			return nil
		},
	}
}

func (api *API) dataTypeHandlers() *resourceHandlers[vsnv1.DataType, *vsnv1.DataType] {
	return &resourceHandlers[vsnv1.DataType, *vsnv1.DataType]{
		api:   api,
		name:  "DataType",
		path:  "/virtualsensornet/datatypes",
		idVar: "dataTypeId",
		svc:   api.dataTypes,
		bindID: func(d *vsnv1.DataType, id string) error {
			pathID, err := strconv.ParseInt(id, 10, 64)
			if err != nil {
				// the backend decides what non-numeric ids mean
				return nil
			}
			if d.ID != 0 && d.ID != pathID {
				return fmt.Errorf("data type id %d does not match path id %q", d.ID, id)
			}
			d.ID = pathID
			return nil
		},
	}
}
