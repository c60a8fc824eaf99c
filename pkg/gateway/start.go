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

package gateway

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aghigo/osiris-web-backend/pkg/config"
	"github.com/aghigo/osiris-web-backend/pkg/omcp"
	"github.com/aghigo/osiris-web-backend/pkg/utils/httpserver"
	"github.com/aghigo/osiris-web-backend/pkg/utils/manager"
	"github.com/aghigo/osiris-web-backend/pkg/utils/metrics"
)

// Start serves the gateway and its metrics under mgr until ctx is done.
func Start(ctx context.Context, logger *zap.Logger, mgr manager.Interface, cfg *config.Config) error {
	connector := omcp.NewSharedConnector(logger, cfg.ClientConfig())

	api, err := MakeAPI(logger, connector, cfg)
	if err != nil {
		return errors.Wrap(err, "error creating gateway api")
	}

	mgr.Add(ctx, "metrics", func(ctx context.Context) {
		metrics.ServeMetrics(ctx, logger, cfg.MetricsAddr)
	})
	mgr.Add(ctx, "gateway", func(ctx context.Context) {
		httpserver.StartServer(ctx, logger, "gateway", strconv.Itoa(cfg.Port), api.GetHandler())
	})
	return nil
}
