// Copyright (c) 2025, Wellscan Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scan execution metrics
	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wellscan_scan_duration_seconds",
			Help:    "Time taken to evaluate a full catalog against one snapshot",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	scanTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellscan_scan_total",
			Help: "Total number of scan attempts",
		},
		[]string{"status"}, // success or error
	)

	checkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wellscan_check_duration_seconds",
			Help:    "Time taken by individual recommendation checks",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"kind"}, // property or query
	)

	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellscan_check_total",
			Help: "Total number of recommendation checks evaluated",
		},
		[]string{"status"}, // Passed, Failed, CouldNotValidate
	)

	scanScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wellscan_scan_score",
			Help: "Overall score of the last completed scan",
		},
	)
)
