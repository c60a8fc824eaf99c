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

// Package info reports build metadata and the backend modules a gateway talks to.
package info

import (
	"encoding/json"
	"sort"
	"time"
)

// Set at link time with -ldflags "-X".
var (
	GitCommit string
	BuildDate string
	Version   string
)

type (
	BuildMeta struct {
		GitCommit string `json:"gitCommit,omitempty"`
		BuildDate string `json:"buildDate,omitempty"`
		Version   string `json:"version,omitempty"`
	}

	GatewayInfo struct {
		Name       string    `json:"name"`
		Build      BuildMeta `json:"build"`
		Modules    []string  `json:"modules"`
		ServerTime time.Time `json:"serverTime"`
	}
)

func BuildInfo() BuildMeta {
	return BuildMeta{
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		Version:   Version,
	}
}

func (info BuildMeta) String() string {
	v, _ := json.Marshal(info)
	return string(v)
}

// ApiInfo describes this gateway and the OMCP modules it is configured for.
func ApiInfo(modules map[string]string) GatewayInfo {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return GatewayInfo{
		Name:       "osiris-gateway",
		Build:      BuildInfo(),
		Modules:    names,
		ServerTime: time.Now().UTC(),
	}
}

func (info GatewayInfo) String() string {
	v, _ := json.Marshal(info)
	return string(v)
}
