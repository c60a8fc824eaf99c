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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestLabels = []string{"method", "status"}
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osiris_omcp_requests_total",
			Help: "Number of OMCP requests by method and response status.",
		},
		requestLabels,
	)
	requestsLatency = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "osiris_omcp_requests_seconds",
			Help:       "Time taken by the backend to answer OMCP requests.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method"},
	)
)

func observeRequest(method, status string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, status).Inc()
	requestsLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}
