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
Package repository owns OMCP URI construction and response decoding for
every resource kind. Each call classifies the OMCP status code before the
body is looked at; transport failures are returned unchanged.
*/
package repository

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	ferror "github.com/aghigo/osiris-web-backend/pkg/error"
	"github.com/aghigo/osiris-web-backend/pkg/omcp"
)

const placeholder = "%s"

type (
	// Kind describes where the instances of a resource kind live.
	// Collection takes one placeholder per parent id, Item one more for
	// the id of the resource itself.
	Kind struct {
		Name       string
		Parents    int
		Collection string
		Item       string
	}

	// Repository issues OMCP calls for one resource kind and decodes
	// bodies into T.
	Repository[T any] struct {
		logger    *zap.Logger
		kind      Kind
		connector omcp.Connector
	}

	// LocationError is returned when a created resource comes back with a
	// location that does not name a resource.
	LocationError struct {
		Location string
		Err      error
	}
)

func (e *LocationError) Error() string {
	return fmt.Sprintf("malformed location %q: %v", e.Location, e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// Validate checks that the templates carry the expected number of placeholders.
func (k Kind) Validate() error {
	if n := strings.Count(k.Collection, placeholder); n != k.Parents {
		return fmt.Errorf("%v collection uri %q: expected %d placeholders, found %d", k.Name, k.Collection, k.Parents, n)
	}
	if n := strings.Count(k.Item, placeholder); n != k.Parents+1 {
		return fmt.Errorf("%v item uri %q: expected %d placeholders, found %d", k.Name, k.Item, k.Parents+1, n)
	}
	return nil
}

// New returns a repository for kind, or an error if its templates are malformed.
func New[T any](logger *zap.Logger, connector omcp.Connector, kind Kind) (*Repository[T], error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	return &Repository[T]{
		logger:    logger.Named(kind.Name + "_repository"),
		kind:      kind,
		connector: connector,
	}, nil
}

func (r *Repository[T]) Kind() Kind {
	return r.kind
}

// GetByID fetches one resource. ids are the parent ids followed by the resource id.
func (r *Repository[T]) GetByID(ids ...string) (*T, error) {
	uri, err := expand(r.kind.Item, ids)
	if err != nil {
		return nil, err
	}
	return r.get(uri)
}

// GetAll lists the resources under parentIDs, in backend order. An empty
// backend answer is an empty slice, not an error.
func (r *Repository[T]) GetAll(parentIDs ...string) ([]T, error) {
	uri, err := expand(r.kind.Collection, parentIDs)
	if err != nil {
		return nil, err
	}
	return r.list(uri)
}

// Save creates v and returns the location the backend assigned to it.
func (r *Repository[T]) Save(v *T, parentIDs ...string) (*url.URL, error) {
	uri, err := expand(r.kind.Collection, parentIDs)
	if err != nil {
		return nil, err
	}
	resp, err := r.connector.Connection().Post(uri, v)
	if err != nil {
		return nil, err
	}
	if err := r.classify(uri, resp); err != nil {
		return nil, err
	}
	return ParseLocation(resp.Location)
}

// Update replaces the resource named by ids with v.
func (r *Repository[T]) Update(v *T, ids ...string) error {
	uri, err := expand(r.kind.Item, ids)
	if err != nil {
		return err
	}
	resp, err := r.connector.Connection().Put(uri, v)
	if err != nil {
		return err
	}
	return r.classify(uri, resp)
}

// Delete removes the resource named by ids.
func (r *Repository[T]) Delete(ids ...string) error {
	uri, err := expand(r.kind.Item, ids)
	if err != nil {
		return err
	}
	resp, err := r.connector.Connection().Delete(uri)
	if err != nil {
		return err
	}
	return r.classify(uri, resp)
}

func (r *Repository[T]) get(uri string) (*T, error) {
	resp, err := r.connector.Connection().Get(uri)
	if err != nil {
		return nil, err
	}
	if err := r.classify(uri, resp); err != nil {
		return nil, err
	}
	var v *T
	if err := resp.GetContent(&v); err != nil {
		return nil, err
	}
	// a null item is absence, reported the same way as a backend NOT_FOUND
	if v == nil {
		r.logger.Debug("omcp request returned a null item", zap.String("uri", uri))
		return nil, ferror.MakeError(ferror.ErrorNotFound, "null "+r.kind.Name+" at "+uri)
	}
	return v, nil
}

func (r *Repository[T]) list(uri string) ([]T, error) {
	resp, err := r.connector.Connection().Get(uri)
	if err != nil {
		return nil, err
	}
	if err := r.classify(uri, resp); err != nil {
		return nil, err
	}
	var raw []*T
	if err := resp.GetContent(&raw); err != nil {
		return nil, err
	}
	items := make([]T, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			r.logger.Debug("dropping null list element", zap.String("uri", uri))
			continue
		}
		items = append(items, *v)
	}
	return items, nil
}

func (r *Repository[T]) classify(uri string, resp *omcp.Response) error {
	err := ferror.Classify(resp.StatusCode)
	if err != nil {
		r.logger.Debug("omcp request failed",
			zap.String("uri", uri),
			zap.Stringer("status", resp.StatusCode))
	}
	return err
}

// expand substitutes the escaped ids into template, in order.
func expand(template string, ids []string) (string, error) {
	if n := strings.Count(template, placeholder); n != len(ids) {
		return "", fmt.Errorf("uri template %q expects %d ids, got %d", template, n, len(ids))
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(template, args...), nil
}

// ParseLocation parses a created-resource location. The location must be
// absolute and end in a resource id.
func ParseLocation(location string) (*url.URL, error) {
	if len(location) == 0 {
		return nil, &LocationError{Location: location, Err: fmt.Errorf("empty location")}
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, &LocationError{Location: location, Err: err}
	}
	if !u.IsAbs() {
		return nil, &LocationError{Location: location, Err: fmt.Errorf("location is not absolute")}
	}
	if len(IDFromLocation(u)) == 0 {
		return nil, &LocationError{Location: location, Err: fmt.Errorf("no resource id in location")}
	}
	return u, nil
}

// IDFromLocation returns the last path segment of a location, which is the
// id of the created resource.
func IDFromLocation(u *url.URL) string {
	if u == nil {
		return ""
	}
	p := strings.TrimRight(u.Path, "/")
	idx := strings.LastIndex(p, "/")
	return p[idx+1:]
}
