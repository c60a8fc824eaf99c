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

// Package profile serves net/http/pprof on its own port when
// PPROF_ENABLED=true. PPROF_PORT picks the port, 6060 by default.
package profile

import (
	"context"
	"net/http"
	"net/http/pprof"
	"os"

	"go.uber.org/zap"

	"github.com/aghigo/osiris-web-backend/pkg/utils/httpserver"
	"github.com/aghigo/osiris-web-backend/pkg/utils/manager"
)

const (
	EnvEnabled  = "PPROF_ENABLED"
	EnvPort     = "PPROF_PORT"
	defaultPort = "6060"
)

func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// ProfileIfEnabled adds the pprof server to mgr and reports whether it did.
func ProfileIfEnabled(ctx context.Context, logger *zap.Logger, mgr manager.Interface) bool {
	if os.Getenv(EnvEnabled) != "true" {
		return false
	}
	port := os.Getenv(EnvPort)
	if port == "" {
		port = defaultPort
	}

	mgr.Add(ctx, "pprof", func(ctx context.Context) {
		httpserver.StartServer(ctx, logger, "pprof", port, Handler())
	})
	return true
}
