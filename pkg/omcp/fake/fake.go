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

// Package fake provides an in-memory OMCP client for tests.
package fake

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/aghigo/osiris-web-backend/pkg/omcp"
)

type (
	// Call is one request seen by the fake client.
	Call struct {
		Method string
		URI    string
		Body   []byte
	}

	// HandlerFunc answers a request. Returning an error simulates a link failure.
	HandlerFunc func(call Call) (*omcp.Response, error)

	// Client routes every request to per-(method, uri) handlers and records calls.
	Client struct {
		mu       sync.Mutex
		handlers map[string]HandlerFunc
		fallback HandlerFunc
		calls    []Call
	}
)

// ErrTimeout mimics a transport level timeout.
var ErrTimeout = errors.New("i/o timeout")

func NewClient() *Client {
	return &Client{handlers: make(map[string]HandlerFunc)}
}

func key(method, uri string) string {
	return method + " " + uri
}

// On registers h for method and uri.
func (c *Client) On(method, uri string, h HandlerFunc) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[key(method, uri)] = h
	return c
}

// Fallback sets the handler for requests with no specific handler.
func (c *Client) Fallback(h HandlerFunc) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback = h
	return c
}

// Reply registers a fixed response; content is JSON encoded unless it is nil.
func (c *Client) Reply(method, uri string, code omcp.StatusCode, content interface{}) *Client {
	return c.On(method, uri, Respond(code, content))
}

// Fail registers a link failure for method and uri.
func (c *Client) Fail(method, uri string, err error) *Client {
	return c.On(method, uri, func(call Call) (*omcp.Response, error) {
		return nil, &omcp.ClientError{Op: call.Method, URI: call.URI, Err: err}
	})
}

// Respond builds a handler that always answers with code and content.
func Respond(code omcp.StatusCode, content interface{}) HandlerFunc {
	return func(call Call) (*omcp.Response, error) {
		var body []byte
		switch v := content.(type) {
		case nil:
		case []byte:
			body = v
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			body = b
		}
		return omcp.NewResponse(call.URI, code, body, ""), nil
	}
}

// Calls returns a copy of the recorded calls.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

func (c *Client) Get(uri string) (*omcp.Response, error) {
	return c.dispatch(http.MethodGet, uri, nil)
}

func (c *Client) Post(uri string, body interface{}) (*omcp.Response, error) {
	return c.dispatch(http.MethodPost, uri, body)
}

func (c *Client) Put(uri string, body interface{}) (*omcp.Response, error) {
	return c.dispatch(http.MethodPut, uri, body)
}

func (c *Client) Delete(uri string) (*omcp.Response, error) {
	return c.dispatch(http.MethodDelete, uri, nil)
}

func (c *Client) dispatch(method, uri string, body interface{}) (*omcp.Response, error) {
	call := Call{Method: method, URI: uri}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &omcp.ClientError{Op: "encode", URI: uri, Err: err}
		}
		call.Body = b
	}

	c.mu.Lock()
	c.calls = append(c.calls, call)
	h, ok := c.handlers[key(method, uri)]
	if !ok {
		h = c.fallback
	}
	c.mu.Unlock()

	if h == nil {
		return nil, &omcp.ClientError{Op: method, URI: uri, Err: fmt.Errorf("no handler registered")}
	}
	return h(call)
}
