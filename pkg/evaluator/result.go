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

package evaluator

import (
	"github.com/wellscan/wellscan/pkg/pillar"
)

// Status represents the outcome of evaluating a single recommendation.
type Status string

const (
	// StatusPassed indicates the cluster satisfies the recommendation.
	StatusPassed Status = "Passed"

	// StatusFailed indicates the cluster does not satisfy the recommendation.
	StatusFailed Status = "Failed"

	// StatusCouldNotValidate indicates the recommendation could not be
	// evaluated: missing data, malformed definition, or query failure.
	StatusCouldNotValidate Status = "CouldNotValidate"
)

// ScanResult represents the outcome of evaluating one recommendation
// against one cluster snapshot.
type ScanResult struct {
	// RecommendationID identifies the catalog entry that produced this result.
	RecommendationID string `json:"recommendationId" yaml:"recommendationId"`

	// Category is the pillar of the recommendation, denormalized so a
	// result row is self-describing without a catalog lookup.
	Category pillar.Pillar `json:"category" yaml:"category"`

	// Name is the recommendation's short display name.
	Name string `json:"name" yaml:"name"`

	// Status is the evaluation outcome.
	Status Status `json:"status" yaml:"status"`

	// ActualValue is the observed value, when one was obtained.
	ActualValue string `json:"actualValue,omitempty" yaml:"actualValue,omitempty"`

	// ExpectedValue is the catalog's expected value expression, for
	// property checks.
	ExpectedValue string `json:"expectedValue,omitempty" yaml:"expectedValue,omitempty"`

	// Description, Remediation, and LearnMoreLink are carried from the
	// recommendation so reports render without the catalog at hand.
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Remediation   string `json:"remediation,omitempty" yaml:"remediation,omitempty"`
	LearnMoreLink string `json:"learnMoreLink,omitempty" yaml:"learnMoreLink,omitempty"`

	// Message provides additional context, especially for failed or
	// not-validated results.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}
