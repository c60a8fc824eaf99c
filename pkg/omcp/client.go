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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const Scheme = "omcp"

type (
	// ClientConfig describes how OMCP modules are reached over HTTP.
	ClientConfig struct {
		// Modules maps a module name (the host part of an OMCP URI) to
		// the base URL of the service implementing it.
		Modules map[string]string
		Timeout time.Duration
		// Retries is the number of extra attempts on connection errors
		// and 5xx answers. Zero disables retrying.
		Retries int
	}

	// httpClient binds the link protocol onto HTTP: verbs, JSON bodies,
	// status codes and the Location header carry over one to one.
	httpClient struct {
		logger     *zap.Logger
		modules    map[string]string
		httpClient *retryablehttp.Client
	}

	// SharedConnector lazily builds a single client and hands it to every caller.
	SharedConnector struct {
		logger *zap.Logger
		config ClientConfig
		once   sync.Once
		client Client
	}
)

// MakeClient initializes and returns an HTTP-bound OMCP client.
func MakeClient(logger *zap.Logger, config ClientConfig) Client {
	hc := retryablehttp.NewClient()
	hc.RetryMax = config.Retries
	hc.HTTPClient.Timeout = config.Timeout
	hc.HTTPClient.Transport = otelhttp.NewTransport(hc.HTTPClient.Transport)
	hc.Logger = leveledLogger{logger: logger.Named("retryablehttp")}
	// hand back the last response instead of a generic "giving up" error
	hc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	modules := make(map[string]string, len(config.Modules))
	for name, base := range config.Modules {
		modules[name] = strings.TrimSuffix(base, "/")
	}

	return &httpClient{
		logger:     logger.Named("omcp_client"),
		modules:    modules,
		httpClient: hc,
	}
}

// NewSharedConnector returns a connector whose client is built on first use.
func NewSharedConnector(logger *zap.Logger, config ClientConfig) *SharedConnector {
	return &SharedConnector{logger: logger, config: config}
}

func (c *SharedConnector) Connection() Client {
	c.once.Do(func() {
		c.client = MakeClient(c.logger, c.config)
	})
	return c.client
}

func (c *httpClient) Get(uri string) (*Response, error) {
	return c.do(http.MethodGet, uri, nil)
}

func (c *httpClient) Post(uri string, body interface{}) (*Response, error) {
	return c.do(http.MethodPost, uri, body)
}

func (c *httpClient) Put(uri string, body interface{}) (*Response, error) {
	return c.do(http.MethodPut, uri, body)
}

func (c *httpClient) Delete(uri string) (*Response, error) {
	return c.do(http.MethodDelete, uri, nil)
}

func (c *httpClient) do(method string, uri string, body interface{}) (*Response, error) {
	target, err := c.resolve(uri)
	if err != nil {
		return nil, &ClientError{Op: method, URI: uri, Err: err}
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, &ClientError{Op: "encode", URI: uri, Err: err}
		}
	}

	var reader io.Reader
	if len(payload) > 0 {
		reader = bytes.NewReader(payload)
	}
	req, err := retryablehttp.NewRequest(method, target, reader)
	if err != nil {
		return nil, &ClientError{Op: method, URI: uri, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if resp == nil {
		if err == nil {
			err = fmt.Errorf("no response")
		}
		observeRequest(method, "error", time.Since(start))
		c.logger.Debug("omcp request failed",
			zap.String("method", method), zap.String("uri", uri), zap.Error(err))
		return nil, &ClientError{Op: method, URI: uri, Err: err}
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		observeRequest(method, "error", time.Since(start))
		return nil, &ClientError{Op: "read", URI: uri, Err: err}
	}

	code := StatusCode(resp.StatusCode)
	observeRequest(method, code.String(), time.Since(start))
	c.logger.Debug("omcp response",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Stringer("status", code),
		zap.Int("bytes", len(content)))

	return NewResponse(uri, code, content, resp.Header.Get("Location")), nil
}

// resolve turns omcp://<module>/<path> into the URL of the module's HTTP endpoint.
func (c *httpClient) resolve(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if u.Scheme != Scheme {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	base, ok := c.modules[u.Host]
	if !ok {
		return "", fmt.Errorf("no endpoint configured for module %q", u.Host)
	}
	target := base + "/" + strings.TrimPrefix(u.EscapedPath(), "/")
	if len(u.RawQuery) > 0 {
		target += "?" + u.RawQuery
	}
	return target, nil
}

// leveledLogger lets retryablehttp log through zap.
type leveledLogger struct {
	logger *zap.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Warnw(msg, keysAndValues...)
}
