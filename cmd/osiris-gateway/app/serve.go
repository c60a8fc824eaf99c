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

package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aghigo/osiris-web-backend/pkg/config"
	"github.com/aghigo/osiris-web-backend/pkg/gateway"
	"github.com/aghigo/osiris-web-backend/pkg/info"
	"github.com/aghigo/osiris-web-backend/pkg/utils/loggerfactory"
	"github.com/aghigo/osiris-web-backend/pkg/utils/manager"
	"github.com/aghigo/osiris-web-backend/pkg/utils/otel"
	"github.com/aghigo/osiris-web-backend/pkg/utils/profile"
	"github.com/aghigo/osiris-web-backend/pkg/utils/signals"
)

const (
	flagConfig      = "config"
	flagPort        = "port"
	flagMetricsAddr = "metrics-addr"

	shutdownTimeout = 30 * time.Second
)

func ServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		Long: `Run the HTTP gateway.

Configuration is read from the --config YAML file, then from OSIRIS_*
environment variables, then from flags. Anything left unset keeps its
default: port 8888, metrics on :8080, and the sensornet and
virtualsensornet modules at http://<module>:8080.`,
		Args: cobra.NoArgs,
		RunE: serveCommandHandler,
	}
	flags := serveCmd.Flags()
	flags.StringP(flagConfig, "c", "", "path to a YAML configuration file")
	flags.IntP(flagPort, "p", 0, "port the gateway listens on")
	flags.String(flagMetricsAddr, "", "address the Prometheus metrics server listens on")
	return serveCmd
}

// loadConfig builds the configuration for serve; flags that were set
// explicitly win over the file and the environment.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	path, err := flags.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed(flagPort) {
		if cfg.Port, err = flags.GetInt(flagPort); err != nil {
			return nil, err
		}
	}
	if flags.Changed(flagMetricsAddr) {
		if cfg.MetricsAddr, err = flags.GetString(flagMetricsAddr); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serveCommandHandler(cmd *cobra.Command, args []string) error {
	logger := loggerfactory.GetLogger()
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	shutdown, err := otel.InitProvider(logger, "osiris-gateway")
	if err != nil {
		return errors.Wrap(err, "error initializing tracing")
	}
	defer shutdown()

	ctx := signals.SetupSignalHandler(logger)
	mgr := manager.New(logger)
	profile.ProfileIfEnabled(ctx, logger, mgr)

	logger.Info("starting osiris gateway",
		zap.Stringer("build", info.BuildInfo()),
		zap.Int("port", cfg.Port),
		zap.Any("modules", cfg.OMCP.Modules))

	if err := gateway.Start(ctx, logger, mgr, cfg); err != nil {
		logger.Error("error starting gateway", zap.Error(err))
		return err
	}

	<-ctx.Done()
	if err := mgr.WaitWithTimeout(shutdownTimeout); err != nil {
		logger.Error("servers did not stop in time", zap.Error(err))
		return err
	}
	return nil
}
