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
	"time"

	"github.com/wellscan/wellscan/pkg/evaluator"
	"github.com/wellscan/wellscan/pkg/header"
	"github.com/wellscan/wellscan/pkg/scoring"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

const (
	// APIVersion is the API version for scan report resources.
	APIVersion = "wellscan.dev/v1alpha1"
)

// Report is the complete outcome of scanning one cluster snapshot against a
// recommendation catalog.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// ScanID uniquely identifies this scan run.
	ScanID string `json:"scanId" yaml:"scanId"`

	// Cluster identifies the cluster that was scanned.
	Cluster snapshot.Identity `json:"cluster" yaml:"cluster"`

	// StartedAt and CompletedAt bound the scan run.
	StartedAt   time.Time `json:"startedAt" yaml:"startedAt"`
	CompletedAt time.Time `json:"completedAt" yaml:"completedAt"`

	// Summary contains overall and per-pillar scores.
	Summary scoring.Summary `json:"summary" yaml:"summary"`

	// Results holds one entry per catalog recommendation, in catalog order.
	Results []evaluator.ScanResult `json:"results" yaml:"results"`
}

// NewReport creates a Report with initialized slices.
func NewReport() *Report {
	return &Report{
		Results: make([]evaluator.ScanResult, 0),
	}
}
