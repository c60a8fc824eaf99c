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

// Package validation holds the error type shared by representation validators.
package validation

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	ErrorUnsupportedType = iota
	ErrorInvalidValue
	ErrorMissingField
)

type (
	ValidationErrorType int

	// ValidationError names the invalid field of a representation, the kind
	// of problem and the offending value.
	ValidationError struct {
		Type     ValidationErrorType
		Field    string
		BadValue string
		Detail   string
	}
)

func (e ValidationError) Error() string {
	errMsg := fmt.Sprintf("%v: ", e.Field)

	switch e.Type {
	case ErrorUnsupportedType:
		errMsg += fmt.Sprintf("Unsupported type: %v", e.BadValue)
	case ErrorInvalidValue:
		errMsg += fmt.Sprintf("Invalid value: %v", e.BadValue)
	case ErrorMissingField:
		errMsg += "Missing value"
	default:
		errMsg += fmt.Sprintf("Unknown error type: %v", e.BadValue)
	}

	if len(e.Detail) > 0 {
		errMsg += fmt.Sprintf(": %v", e.Detail)
	}

	return errMsg
}

func MakeValidationErr(errType ValidationErrorType, field string, val interface{}, detail ...string) ValidationError {
	return ValidationError{
		Type:     errType,
		Field:    field,
		BadValue: fmt.Sprintf("%v", val),
		Detail:   strings.Join(detail, ", "),
	}
}

// AggregateValidationErrors formats every error collected for objName as a bulleted list.
func AggregateValidationErrors(objName string, err error) error {
	result := &multierror.Error{}

	result = multierror.Append(result, err)

	result.ErrorFormat = func(errs []error) string {
		errMsg := fmt.Sprintf("Invalid %v object:\n", objName)
		for _, err := range errs {
			errMsg += fmt.Sprintf("* %v\n", err.Error())
		}
		return errMsg
	}

	return result.ErrorOrNil()
}

// RequireString reports a missing field when val is blank.
func RequireString(field string, val string) error {
	if len(strings.TrimSpace(val)) == 0 {
		return MakeValidationErr(ErrorMissingField, field, val)
	}
	return nil
}
