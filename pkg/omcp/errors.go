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

package omcp

import (
	"errors"
	"fmt"

	"github.com/aghigo/osiris-web-backend/pkg/error/network"
)

var errEmptyContent = errors.New("response has no content")

// ClientError is a runtime failure of the link: the request never produced
// a classified response (connection refused, timeout, malformed bytes).
type ClientError struct {
	Op  string
	URI string
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("omcp %s %s: %s", e.Op, e.URI, describe(e.Err))
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err carries a link-level runtime failure.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	netErr := network.Adapter(err)
	if netErr == nil {
		return err.Error()
	}
	switch {
	case netErr.IsTimeoutError():
		return "request timed out: " + err.Error()
	case netErr.IsConnRefusedError():
		return "connection refused: " + err.Error()
	case netErr.IsUnsupportedProtoScheme():
		return "unsupported protocol scheme: " + err.Error()
	case netErr.IsDialError():
		return "dial failed: " + err.Error()
	}
	return err.Error()
}
