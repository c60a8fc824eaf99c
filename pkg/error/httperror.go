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

package error

import (
	"errors"
	"fmt"
	"net/http"
)

type (
	// Errors classified from an OMCP status code.
	Error struct {
		Code    errorCode `json:"code"`
		Message string    `json:"message"`
	}

	errorCode int
)

func (err Error) Error() string {
	if len(err.Message) == 0 {
		return err.Description()
	}
	return fmt.Sprintf("%v - %v", err.Description(), err.Message)
}

func MakeError(code int, msg string) Error {
	return Error{Code: errorCode(code), Message: msg}
}

func (err Error) HTTPStatus() int {
	var code int
	switch err.Code {
	case ErrorBadRequest:
		code = http.StatusBadRequest
	case ErrorForbidden:
		code = http.StatusForbidden
	case ErrorNotFound:
		code = http.StatusNotFound
	case ErrorMethodNotAllowed:
		code = http.StatusMethodNotAllowed
	case ErrorRequestTimeout:
		code = http.StatusRequestTimeout
	case ErrorNotImplemented:
		code = http.StatusNotImplemented
	default:
		code = http.StatusInternalServerError
	}
	return code
}

func (err Error) Description() string {
	idx := int(err.Code)
	if idx < 0 || idx > len(errorDescriptions)-1 {
		return ""
	}
	return errorDescriptions[idx]
}

// As returns the classified error carried by err, if any.
func As(err error) (Error, bool) {
	var fe Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return fe, false
}

// GetHTTPError returns the HTTP status and message for err. Anything that is
// not a classified error is an internal failure and keeps its own message.
func GetHTTPError(err error) (int, string) {
	if fe, ok := As(err); ok {
		return fe.HTTPStatus(), fe.Message
	}
	return http.StatusInternalServerError, err.Error()
}

func IsNotFound(err error) bool {
	fe, ok := As(err)
	if !ok {
		return false
	}
	return fe.Code == ErrorNotFound
}

const (
	ErrorInternal = iota

	ErrorBadRequest
	ErrorForbidden
	ErrorNotFound
	ErrorMethodNotAllowed
	ErrorRequestTimeout
	ErrorNotImplemented
)

// must match order and len of the above const
var errorDescriptions = []string{
	"Internal server error",
	"Bad request",
	"Forbidden",
	"Resource not found",
	"Method not allowed",
	"Request timeout",
	"Not implemented",
}
