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

package otel

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// SkipPrefixes returns a filter that leaves requests under any of the
// prefixes untraced.
func SkipPrefixes(prefixes ...string) otelhttp.Filter {
	return func(r *http.Request) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				return false
			}
		}
		return true
	}
}

// GetHandlerWithOTEL wraps h in a server span named after the method only.
// Routers rename it to the matched route with SpanNameFromRoute.
func GetHandlerWithOTEL(h http.Handler, name string, filter ...otelhttp.Filter) http.Handler {
	opts := []otelhttp.Option{
		otelhttp.WithMessageEvents(otelhttp.ReadEvents, otelhttp.WriteEvents),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method
		}),
	}

	for _, f := range filter {
		opts = append(opts, otelhttp.WithFilter(f))
	}

	return otelhttp.NewHandler(h, name, opts...)
}

// SpanNameFromRoute is a mux middleware naming the current span
// "<method> <route template>", so span names never carry resource ids.
func SpanNameFromRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				trace.SpanFromContext(r.Context()).SetName(r.Method + " " + tmpl)
			}
		}
		next.ServeHTTP(w, r)
	})
}
