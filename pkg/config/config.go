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

// Package config loads the gateway configuration: built-in defaults, an
// optional YAML file and OSIRIS_* environment variables, in increasing
// order of precedence.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/aghigo/osiris-web-backend/pkg/omcp"
	"github.com/aghigo/osiris-web-backend/pkg/repository"
)

const (
	SensorNetModule        = "sensornet"
	VirtualSensorNetModule = "virtualsensornet"

	EnvPort                = "OSIRIS_PORT"
	EnvMetricsAddr         = "OSIRIS_METRICS_ADDR"
	EnvSensorNetURL        = "OSIRIS_SENSORNET_URL"
	EnvVirtualSensorNetURL = "OSIRIS_VIRTUALSENSORNET_URL"
	EnvOMCPTimeout         = "OSIRIS_OMCP_TIMEOUT"
	EnvOMCPRetries         = "OSIRIS_OMCP_RETRIES"
)

type (
	Config struct {
		Port        int       `json:"port"`
		MetricsAddr string    `json:"metricsAddr"`
		OMCP        OMCP      `json:"omcp"`
		Resources   Resources `json:"resources"`
	}

	OMCP struct {
		// Modules maps an OMCP module name to the base URL serving it.
		Modules map[string]string `json:"modules"`
		// TimeoutSeconds bounds a single OMCP call.
		TimeoutSeconds int `json:"timeoutSeconds"`
		Retries        int `json:"retries"`
	}

	URITemplates struct {
		Collection string `json:"collection"`
		Item       string `json:"item"`
	}

	SensorURITemplates struct {
		URITemplates `json:",inline"`
		ByNetwork    string `json:"byNetwork"`
	}

	Resources struct {
		Link      URITemplates       `json:"link"`
		DataType  URITemplates       `json:"dataType"`
		Network   URITemplates       `json:"network"`
		Collector URITemplates       `json:"collector"`
		Sensor    SensorURITemplates `json:"sensor"`
	}
)

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Port:        8888,
		MetricsAddr: ":8080",
		OMCP: OMCP{
			Modules: map[string]string{
				SensorNetModule:        "http://sensornet:8080",
				VirtualSensorNetModule: "http://virtualsensornet:8080",
			},
			TimeoutSeconds: 5,
		},
		Resources: Resources{
			Link:      templatesOf(repository.DefaultLinkKind),
			DataType:  templatesOf(repository.DefaultDataTypeKind),
			Network:   templatesOf(repository.DefaultNetworkKind),
			Collector: templatesOf(repository.DefaultCollectorKind),
			Sensor: SensorURITemplates{
				URITemplates: templatesOf(repository.DefaultSensorKind.Kind),
				ByNetwork:    repository.DefaultSensorKind.ByNetwork,
			},
		},
	}
}

func templatesOf(k repository.Kind) URITemplates {
	return URITemplates{Collection: k.Collection, Item: k.Item}
}

// Load reads the YAML file at path, when path is not empty, fills what it
// leaves out from Default and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if len(path) > 0 {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", path)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errors.Wrapf(err, "error unmarshalling YAML config %s", path)
		}
	}

	if err := mergo.Merge(cfg, Default()); err != nil {
		return nil, errors.Wrap(err, "error applying config defaults")
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	result := &multierror.Error{}

	if v, ok := lookup(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid %s", EnvPort))
		} else {
			c.Port = port
		}
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		c.MetricsAddr = v
	}
	if v, ok := lookup(EnvSensorNetURL); ok {
		c.OMCP.Modules[SensorNetModule] = v
	}
	if v, ok := lookup(EnvVirtualSensorNetURL); ok {
		c.OMCP.Modules[VirtualSensorNetModule] = v
	}
	if v, ok := lookup(EnvOMCPTimeout); ok {
		timeout, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid %s", EnvOMCPTimeout))
		} else {
			c.OMCP.TimeoutSeconds = timeout
		}
	}
	if v, ok := lookup(EnvOMCPRetries); ok {
		retries, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid %s", EnvOMCPRetries))
		} else {
			c.OMCP.Retries = retries
		}
	}

	return result.ErrorOrNil()
}

// Validate reports every problem of the configuration at once.
func (c *Config) Validate() error {
	result := &multierror.Error{}

	if c.Port <= 0 || c.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.OMCP.TimeoutSeconds <= 0 {
		result = multierror.Append(result, fmt.Errorf("omcp.timeoutSeconds must be positive, got %d", c.OMCP.TimeoutSeconds))
	}
	if c.OMCP.Retries < 0 {
		result = multierror.Append(result, fmt.Errorf("omcp.retries must not be negative, got %d", c.OMCP.Retries))
	}
	for name, base := range c.OMCP.Modules {
		u, err := url.Parse(base)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
			result = multierror.Append(result, fmt.Errorf("omcp.modules.%s: %q is not an http(s) URL", name, base))
		}
	}

	kinds := []repository.Kind{c.LinkKind(), c.DataTypeKind(), c.NetworkKind(), c.CollectorKind()}
	for _, k := range kinds {
		result = multierror.Append(result, k.Validate())
	}
	result = multierror.Append(result, c.SensorKind().Validate())

	return result.ErrorOrNil()
}

func (c *Config) ClientConfig() omcp.ClientConfig {
	return omcp.ClientConfig{
		Modules: c.OMCP.Modules,
		Timeout: time.Duration(c.OMCP.TimeoutSeconds) * time.Second,
		Retries: c.OMCP.Retries,
	}
}

func (c *Config) LinkKind() repository.Kind {
	return c.Resources.Link.kind("link", 0)
}

func (c *Config) DataTypeKind() repository.Kind {
	return c.Resources.DataType.kind("datatype", 0)
}

func (c *Config) NetworkKind() repository.Kind {
	return c.Resources.Network.kind("network", 0)
}

func (c *Config) CollectorKind() repository.Kind {
	return c.Resources.Collector.kind("collector", 1)
}

func (c *Config) SensorKind() repository.SensorKind {
	return repository.SensorKind{
		Kind:      c.Resources.Sensor.kind("sensor", 2),
		ByNetwork: c.Resources.Sensor.ByNetwork,
	}
}

func (t URITemplates) kind(name string, parents int) repository.Kind {
	return repository.Kind{
		Name:       name,
		Parents:    parents,
		Collection: t.Collection,
		Item:       t.Item,
	}
}
