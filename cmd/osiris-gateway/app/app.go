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
	"github.com/spf13/cobra"
)

const usage = `osiris-gateway: REST gateway for the OSIRIS SensorNet and VirtualSensorNet modules

Every request is translated into an OMCP call to the configured backend
module; see "osiris-gateway serve --help" for configuration.
`

func App() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:          "osiris-gateway",
		Long:         usage,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(ServeCommand(), VersionCommand())
	return rootCmd
}
