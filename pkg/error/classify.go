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
	"fmt"

	"github.com/aghigo/osiris-web-backend/pkg/omcp"
)

// Classify maps an OMCP status code onto the error taxonomy. A nil result
// means the response body may be read. Codes outside the known set are
// internal errors, never success.
func Classify(code omcp.StatusCode) error {
	switch code {
	case omcp.OK, omcp.Created:
		return nil
	case omcp.BadRequest:
		return MakeError(ErrorBadRequest, code.String())
	case omcp.Forbidden:
		return MakeError(ErrorForbidden, code.String())
	case omcp.MethodNotAllowed:
		return MakeError(ErrorMethodNotAllowed, code.String())
	case omcp.RequestTimeout:
		return MakeError(ErrorRequestTimeout, code.String())
	case omcp.NotImplemented:
		return MakeError(ErrorNotImplemented, code.String())
	case omcp.InternalServerError:
		return MakeError(ErrorInternal, code.String())
	case omcp.NotFound:
		return MakeError(ErrorNotFound, code.String())
	}
	return MakeError(ErrorInternal, fmt.Sprintf("unclassified status code %d", int(code)))
}
