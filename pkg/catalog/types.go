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

package catalog

import (
	"github.com/wellscan/wellscan/pkg/header"
	"github.com/wellscan/wellscan/pkg/pillar"
)

const (
	// APIVersion is the API version for recommendation catalog resources.
	APIVersion = "wellscan.dev/v1alpha1"
)

// CheckKind identifies which evaluation strategy a recommendation uses.
type CheckKind string

const (
	// CheckKindProperty inspects the cluster snapshot's configuration tree.
	CheckKindProperty CheckKind = "property"

	// CheckKindQuery delegates to the analytical query backend.
	CheckKindQuery CheckKind = "query"
)

// ArrayMatch selects how a fan-out (per-element) property result is judged.
type ArrayMatch string

const (
	// MatchAny passes when at least one element matches the expected value.
	MatchAny ArrayMatch = "any"

	// MatchAll passes only when every element matches the expected value.
	MatchAll ArrayMatch = "all"
)

// PropertyCheck describes a local inspection of the snapshot's config tree.
type PropertyCheck struct {
	// Path is the dot-delimited property path into the snapshot config.
	Path string `json:"path" yaml:"path"`

	// ExpectedValue is compared case-sensitively against the normalized
	// actual value. Alternatives may be given as "a|b".
	ExpectedValue string `json:"expectedValue" yaml:"expectedValue"`

	// Match selects any/all semantics when the path fans out over a
	// sequence. Defaults to MatchAny when empty.
	Match ArrayMatch `json:"match,omitempty" yaml:"match,omitempty"`
}

// QueryCheck describes a check backed by an analytical query. The query
// reference is opaque to the engine and resolved by the query executor.
type QueryCheck struct {
	// Ref identifies the query to run.
	Ref string `json:"ref" yaml:"ref"`

	// Inverse flips the zero-rows polarity. A non-inverse query detects an
	// anti-pattern (no rows means the cluster is clean, so Passed); an
	// inverse query detects a required pattern (no rows means Failed).
	Inverse bool `json:"inverse,omitempty" yaml:"inverse,omitempty"`

	// ValueField names the row field used to populate the result's actual
	// value, when present in the first returned row.
	ValueField string `json:"valueField,omitempty" yaml:"valueField,omitempty"`
}

// Recommendation is one immutable check definition in the catalog.
type Recommendation struct {
	// ID uniquely identifies the recommendation across the catalog.
	ID string `json:"id" yaml:"id"`

	// Category is the pillar this recommendation belongs to.
	Category pillar.Pillar `json:"category" yaml:"category"`

	// Name is the short display name.
	Name string `json:"name" yaml:"name"`

	// Description explains what the recommendation checks and why.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Remediation describes how to fix a failing check.
	Remediation string `json:"remediation,omitempty" yaml:"remediation,omitempty"`

	// LearnMoreLink points at the upstream best-practice documentation.
	LearnMoreLink string `json:"learnMoreLink,omitempty" yaml:"learnMoreLink,omitempty"`

	// Property is set for property checks. Exactly one of Property or
	// Query must be populated.
	Property *PropertyCheck `json:"property,omitempty" yaml:"property,omitempty"`

	// Query is set for query checks.
	Query *QueryCheck `json:"query,omitempty" yaml:"query,omitempty"`
}

// Kind returns the evaluation strategy of the recommendation, or an empty
// CheckKind when the definition is malformed.
func (r *Recommendation) Kind() CheckKind {
	switch {
	case r.Property != nil && r.Query == nil:
		return CheckKindProperty
	case r.Query != nil && r.Property == nil:
		return CheckKindQuery
	default:
		return ""
	}
}

// Catalog is the loaded-once, read-only set of recommendations evaluated
// against every cluster snapshot. It is safe to share across concurrent
// scans; nothing mutates it after Load.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	// Recommendations in catalog (and therefore report) order.
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// Len returns the number of recommendations in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Recommendations)
}

// ByPillar returns the recommendations belonging to the given pillar,
// preserving catalog order.
func (c *Catalog) ByPillar(p pillar.Pillar) []Recommendation {
	out := make([]Recommendation, 0)
	for _, r := range c.Recommendations {
		if r.Category == p {
			out = append(out, r)
		}
	}
	return out
}
