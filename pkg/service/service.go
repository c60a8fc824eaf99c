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
Package service shapes repository results for the gateway. Listing
operations never return nil slices; a single item is either returned or
absent, and NotFound is the only way absence is reported.
*/
package service

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aghigo/osiris-web-backend/pkg/apis/validation"
	ferror "github.com/aghigo/osiris-web-backend/pkg/error"
	"github.com/aghigo/osiris-web-backend/pkg/repository"
)

// ResourceService proxies create/read/update/delete calls for a kind that
// the gateway hands out unchanged.
type ResourceService[T any] struct {
	logger *zap.Logger
	repo   *repository.Repository[T]
}

func NewResourceService[T any](logger *zap.Logger, repo *repository.Repository[T]) *ResourceService[T] {
	return &ResourceService[T]{
		logger: logger.Named(repo.Kind().Name + "_service"),
		repo:   repo,
	}
}

func (s *ResourceService[T]) GetAll() ([]T, error) {
	return s.repo.GetAll()
}

func (s *ResourceService[T]) GetByID(id string) (*T, error) {
	return s.repo.GetByID(id)
}

// Create stores v and returns the id the backend assigned to it.
func (s *ResourceService[T]) Create(v *T) (string, error) {
	loc, err := s.repo.Save(v)
	if err != nil {
		return "", err
	}
	id := repository.IDFromLocation(loc)
	s.logger.Debug("resource created", zap.String("id", id), zap.Stringer("location", loc))
	return id, nil
}

func (s *ResourceService[T]) Update(id string, v *T) error {
	return s.repo.Update(v, id)
}

func (s *ResourceService[T]) Delete(id string) error {
	return s.repo.Delete(id)
}

// inScope reports whether an id returned by the backend agrees with the
// id the caller asked for. Backends that leave the id out are trusted.
func inScope(got, want string) bool {
	return len(got) == 0 || got == want
}

func scopeMismatch(kind, id string) error {
	return ferror.MakeError(ferror.ErrorNotFound, "scope mismatch for "+kind+" "+id)
}

type validatable interface {
	Validate() error
}

// checkItem rejects a representation the backend should never have sent.
// The result is a runtime failure, not a classified error.
func checkItem(kind string, v validatable) error {
	if err := validation.AggregateValidationErrors(kind, v.Validate()); err != nil {
		return errors.Wrapf(err, "backend returned an invalid %s", kind)
	}
	return nil
}
