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

package scoring

import (
	"math"

	"github.com/wellscan/wellscan/pkg/evaluator"
	"github.com/wellscan/wellscan/pkg/pillar"
)

// PillarScore aggregates the results of one pillar.
type PillarScore struct {
	// Pillar is the pillar being scored.
	Pillar pillar.Pillar `json:"pillar" yaml:"pillar"`

	// Passed is the count of satisfied recommendations.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of unsatisfied recommendations.
	Failed int `json:"failed" yaml:"failed"`

	// NotValidated is the count of recommendations without a verdict.
	NotValidated int `json:"notValidated" yaml:"notValidated"`

	// Total is the number of recommendations evaluated for the pillar.
	Total int `json:"total" yaml:"total"`

	// Score is passed/(passed+failed) as a rounded percentage. Results
	// without a verdict do not count against the score. Zero when no
	// recommendation in the pillar produced a verdict.
	Score int `json:"score" yaml:"score"`
}

// Summary aggregates a full scan: per-pillar scores plus the overall score
// computed over every result regardless of pillar.
type Summary struct {
	// Passed, Failed, NotValidated, and Total count across all pillars.
	Passed       int `json:"passed" yaml:"passed"`
	Failed       int `json:"failed" yaml:"failed"`
	NotValidated int `json:"notValidated" yaml:"notValidated"`
	Total        int `json:"total" yaml:"total"`

	// Score is the overall rounded percentage over all verdicts.
	Score int `json:"score" yaml:"score"`

	// Pillars holds one entry per pillar that had at least one result,
	// in canonical pillar order.
	Pillars []PillarScore `json:"pillars" yaml:"pillars"`
}

// Summarize computes per-pillar and overall scores from scan results. It is
// a pure aggregation: calling it again on the same results yields the same
// summary.
func Summarize(results []evaluator.ScanResult) Summary {
	byPillar := make(map[pillar.Pillar]*PillarScore)

	s := Summary{Pillars: make([]PillarScore, 0, len(pillar.Pillars))}
	for _, r := range results {
		ps, ok := byPillar[r.Category]
		if !ok {
			ps = &PillarScore{Pillar: r.Category}
			byPillar[r.Category] = ps
		}
		ps.Total++
		s.Total++

		switch r.Status {
		case evaluator.StatusPassed:
			ps.Passed++
			s.Passed++
		case evaluator.StatusFailed:
			ps.Failed++
			s.Failed++
		default:
			ps.NotValidated++
			s.NotValidated++
		}
	}

	for _, ps := range byPillar {
		ps.Score = score(ps.Passed, ps.Failed)
	}
	s.Score = score(s.Passed, s.Failed)

	// Canonical pillar order keeps reports stable across runs.
	for _, p := range pillar.Pillars {
		if ps, ok := byPillar[p]; ok {
			s.Pillars = append(s.Pillars, *ps)
			delete(byPillar, p)
		}
	}
	// Unknown pillars should not occur with a validated catalog, but a
	// result is never dropped from the summary.
	for _, r := range results {
		if ps, ok := byPillar[r.Category]; ok {
			s.Pillars = append(s.Pillars, *ps)
			delete(byPillar, r.Category)
		}
	}

	return s
}

// score returns passed/(passed+failed) as a percentage rounded to the
// nearest integer, or 0 when there are no verdicts.
func score(passed, failed int) int {
	total := passed + failed
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}
