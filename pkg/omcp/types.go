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
Package omcp holds the client side of the OSIRIS link protocol: a
request/response protocol carrying a status code, an optional JSON body
and an optional location reference for created resources.

URIs have the form omcp://<module>/<path>, where <module> names the
backend service (sensornet, virtualsensornet, ...).
*/
package omcp

import (
	"encoding/json"
	"fmt"
)

// StatusCode is the outcome code carried by every OMCP response.
// Values line up with their HTTP counterparts.
type StatusCode int

const (
	OK                  StatusCode = 200
	Created             StatusCode = 201
	BadRequest          StatusCode = 400
	Forbidden           StatusCode = 403
	NotFound            StatusCode = 404
	MethodNotAllowed    StatusCode = 405
	RequestTimeout      StatusCode = 408
	InternalServerError StatusCode = 500
	NotImplemented      StatusCode = 501
)

var statusNames = map[StatusCode]string{
	OK:                  "OK",
	Created:             "CREATED",
	BadRequest:          "BAD_REQUEST",
	Forbidden:           "FORBIDDEN",
	NotFound:            "NOT_FOUND",
	MethodNotAllowed:    "METHOD_NOT_ALLOWED",
	RequestTimeout:      "REQUEST_TIMEOUT",
	InternalServerError: "INTERNAL_SERVER_ERROR",
	NotImplemented:      "NOT_IMPLEMENTED",
}

func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(s))
}

type (
	// Response is a single OMCP reply. It only lives for the duration of one call.
	Response struct {
		StatusCode StatusCode
		Content    []byte
		Location   string
		uri        string
	}

	// Client issues OMCP requests. Implementations must be safe for
	// concurrent use; a failure to reach the backend is reported as a
	// *ClientError, never as a status code.
	Client interface {
		Get(uri string) (*Response, error)
		Post(uri string, body interface{}) (*Response, error)
		Put(uri string, body interface{}) (*Response, error)
		Delete(uri string) (*Response, error)
	}

	// Connector hands out the shared client used for a call.
	Connector interface {
		Connection() Client
	}

	// ConnectorFunc adapts a function to the Connector interface.
	ConnectorFunc func() Client
)

func (f ConnectorFunc) Connection() Client {
	return f()
}

// Static returns a Connector that always hands out c.
func Static(c Client) Connector {
	return ConnectorFunc(func() Client { return c })
}

// NewResponse builds a response for uri. Mostly useful to Client implementations.
func NewResponse(uri string, code StatusCode, content []byte, location string) *Response {
	return &Response{
		StatusCode: code,
		Content:    content,
		Location:   location,
		uri:        uri,
	}
}

// GetContent decodes the JSON body into v. Bytes that do not decode are
// reported as a *ClientError.
func (r *Response) GetContent(v interface{}) error {
	if len(r.Content) == 0 {
		return &ClientError{Op: "decode", URI: r.uri, Err: errEmptyContent}
	}
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ClientError{Op: "decode", URI: r.uri, Err: err}
	}
	return nil
}
