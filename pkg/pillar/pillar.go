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

package pillar

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pillar represents one of the five fixed best-practice categories every
// recommendation belongs to.
type Pillar string

// String returns the string representation of the Pillar.
func (p Pillar) String() string {
	return string(p)
}

const (
	Reliability           Pillar = "Reliability"
	Security              Pillar = "Security"
	CostOptimization      Pillar = "Cost Optimization"
	OperationalExcellence Pillar = "Operational Excellence"
	PerformanceEfficiency Pillar = "Performance Efficiency"
)

// Pillars is the list of all pillars in display order.
var Pillars = []Pillar{
	Reliability,
	Security,
	CostOptimization,
	OperationalExcellence,
	PerformanceEfficiency,
}

// Parse parses a string into a Pillar.
// Returns the Pillar and true if parsing succeeds, or empty Pillar and false
// if the string is not one of the five fixed categories.
func Parse(s string) (Pillar, bool) {
	for _, p := range Pillars {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ParseLoose parses user-supplied pillar input: the display name, the URL
// slug, or any case variant ("cost-optimization", "Cost optimization").
// Returns the Pillar and true on success.
func ParseLoose(s string) (Pillar, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", " ")
	return Parse(cases.Title(language.English).String(norm))
}

// slugs maps each pillar to its URL-safe identifier.
var slugs = map[Pillar]string{
	Reliability:           "reliability",
	Security:              "security",
	CostOptimization:      "cost-optimization",
	OperationalExcellence: "operational-excellence",
	PerformanceEfficiency: "performance-efficiency",
}

// Slug returns the URL-safe identifier for the pillar (e.g., "cost-optimization").
func (p Pillar) Slug() string {
	return slugs[p]
}

// descriptions provides short display descriptions per pillar.
var descriptions = map[Pillar]string{
	Reliability:           "Ensure your clusters are resilient and highly available",
	Security:              "Protect your workloads, data, and access",
	CostOptimization:      "Optimize resource usage and reduce costs",
	OperationalExcellence: "Streamline operations, monitoring, and DevOps practices",
	PerformanceEfficiency: "Maximize performance and scalability",
}

// Description returns a short human-readable description of the pillar.
func (p Pillar) Description() string {
	return descriptions[p]
}
