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

package network

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
)

type (
	Error struct {
		err net.Error
	}
)

// Adapter returns an Error if the pass-in error is, or wraps, a network error;
// otherwise, nil will be returned.
func Adapter(err error) *Error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if !errors.As(err, &netErr) {
		return nil
	}

	return &Error{err: netErr}
}

func (e Error) Error() string {
	return e.err.Error()
}

// IsDialError returns true if its a network dial error
func (e Error) IsDialError() bool {
	var opErr *net.OpError
	if !errors.As(e.err, &opErr) {
		return false
	}
	return opErr.Op == "dial"
}

// IsConnRefusedError returns true if an error is a "connection refused" error
func (e Error) IsConnRefusedError() bool {
	if errors.Is(e.err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(e.err.Error(), "connection refused")
}

// IsTimeoutError returns true if its a network timeout error
func (e Error) IsTimeoutError() bool {
	if e.err.Timeout() {
		return true
	}
	return errors.Is(e.err, syscall.ETIMEDOUT)
}

// IsUnsupportedProtoScheme returns true if an error is a "unsupported protocol scheme" error
func (e Error) IsUnsupportedProtoScheme() bool {
	var urlErr *url.Error
	if !errors.As(e.err, &urlErr) {
		return false
	}
	return strings.Contains(urlErr.Error(), "unsupported protocol scheme")
}
