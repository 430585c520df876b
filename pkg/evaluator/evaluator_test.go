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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/pillar"
	"github.com/wellscan/wellscan/pkg/property"
	"github.com/wellscan/wellscan/pkg/query"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

func testSnapshot(t *testing.T) *snapshot.ClusterSnapshot {
	t.Helper()

	cfg, err := property.FromJSON([]byte(`{
		"sku": {"tier": "Standard"},
		"properties": {
			"enableRBAC": true,
			"agentPoolProfiles": [
				{"name": "system", "enableAutoScaling": true, "count": 3},
				{"name": "user", "enableAutoScaling": false, "count": 0}
			]
		}
	}`))
	require.NoError(t, err)

	return snapshot.New(snapshot.Identity{
		SubscriptionID: "sub-1",
		ResourceGroup:  "rg-1",
		ClusterName:    "aks-prod",
	}, cfg, "test")
}

func propertyRec(path, expected string, match catalog.ArrayMatch) catalog.Recommendation {
	return catalog.Recommendation{
		ID:       "TEST-001",
		Category: pillar.Reliability,
		Name:     "test recommendation",
		Property: &catalog.PropertyCheck{
			Path:          path,
			ExpectedValue: expected,
			Match:         match,
		},
	}
}

func TestEvaluateProperty(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)

	tests := []struct {
		name       string
		rec        catalog.Recommendation
		wantStatus Status
		wantActual string
	}{
		{
			name:       "scalar match",
			rec:        propertyRec("sku.tier", "Standard", ""),
			wantStatus: StatusPassed,
			wantActual: "Standard",
		},
		{
			name:       "scalar mismatch",
			rec:        propertyRec("sku.tier", "Premium", ""),
			wantStatus: StatusFailed,
			wantActual: "Standard",
		},
		{
			name:       "alternation match",
			rec:        propertyRec("sku.tier", "Standard|Premium", ""),
			wantStatus: StatusPassed,
			wantActual: "Standard",
		},
		{
			name:       "case sensitive",
			rec:        propertyRec("sku.tier", "standard", ""),
			wantStatus: StatusFailed,
			wantActual: "Standard",
		},
		{
			name:       "bool normalized",
			rec:        propertyRec("properties.enableRBAC", "true", ""),
			wantStatus: StatusPassed,
			wantActual: "true",
		},
		{
			name:       "path not found",
			rec:        propertyRec("properties.apiServerAccessProfile.enablePrivateCluster", "true", ""),
			wantStatus: StatusCouldNotValidate,
		},
		{
			name:       "fan out any passes on one match",
			rec:        propertyRec("properties.agentPoolProfiles.enableAutoScaling", "true", catalog.MatchAny),
			wantStatus: StatusPassed,
			wantActual: "true, false",
		},
		{
			name:       "fan out all fails on one mismatch",
			rec:        propertyRec("properties.agentPoolProfiles.enableAutoScaling", "true", catalog.MatchAll),
			wantStatus: StatusFailed,
			wantActual: "true, false",
		},
		{
			name:       "fan out default is any",
			rec:        propertyRec("properties.agentPoolProfiles.count", "3", ""),
			wantStatus: StatusPassed,
			wantActual: "3, 0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Evaluate(t.Context(), tc.rec, snap, nil)
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Equal(t, tc.wantActual, res.ActualValue)
			assert.Equal(t, tc.rec.ID, res.RecommendationID)
			assert.Equal(t, tc.rec.Category, res.Category)
			if tc.wantStatus != StatusPassed {
				assert.NotEmpty(t, res.Message)
			}
		})
	}
}

func TestEvaluatePropertyEmptySequence(t *testing.T) {
	t.Parallel()

	cfg, err := property.FromJSON([]byte(`{"properties": {"agentPoolProfiles": []}}`))
	require.NoError(t, err)
	snap := snapshot.New(snapshot.Identity{ClusterName: "aks-empty"}, cfg, "test")

	res := Evaluate(t.Context(), propertyRec("properties.agentPoolProfiles.count", "3", ""), snap, nil)
	assert.Equal(t, StatusCouldNotValidate, res.Status)
	assert.Contains(t, res.Message, "matched no elements")
}

func TestEvaluatePropertyNoConfig(t *testing.T) {
	t.Parallel()

	res := Evaluate(t.Context(), propertyRec("sku.tier", "Standard", ""), nil, nil)
	assert.Equal(t, StatusCouldNotValidate, res.Status)
}

func queryRec(ref string, inverse bool, valueField string) catalog.Recommendation {
	return catalog.Recommendation{
		ID:       "TEST-002",
		Category: pillar.Security,
		Name:     "test query recommendation",
		Query: &catalog.QueryCheck{
			Ref:        ref,
			Inverse:    inverse,
			ValueField: valueField,
		},
	}
}

func TestEvaluateQuery(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	exec := query.NewStaticExecutor().
		SetRows("anti-pattern-hit", query.Row{"name": "aks-prod", "count_": 2}).
		SetRows("anti-pattern-clean").
		SetError("broken", assert.AnError)

	tests := []struct {
		name       string
		rec        catalog.Recommendation
		wantStatus Status
		wantActual string
	}{
		{
			name:       "rows found fails anti-pattern query",
			rec:        queryRec("anti-pattern-hit", false, "count_"),
			wantStatus: StatusFailed,
			wantActual: "2",
		},
		{
			name:       "zero rows passes anti-pattern query",
			rec:        queryRec("anti-pattern-clean", false, ""),
			wantStatus: StatusPassed,
		},
		{
			name:       "inverse query passes on rows",
			rec:        queryRec("anti-pattern-hit", true, "name"),
			wantStatus: StatusPassed,
			wantActual: "aks-prod",
		},
		{
			name:       "inverse query fails on zero rows",
			rec:        queryRec("anti-pattern-clean", true, ""),
			wantStatus: StatusFailed,
		},
		{
			name:       "executor error",
			rec:        queryRec("broken", false, ""),
			wantStatus: StatusCouldNotValidate,
		},
		{
			name:       "unregistered ref",
			rec:        queryRec("no-such-query", false, ""),
			wantStatus: StatusCouldNotValidate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Evaluate(t.Context(), tc.rec, snap, exec)
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Equal(t, tc.wantActual, res.ActualValue)
		})
	}
}

func TestEvaluateQueryNoExecutor(t *testing.T) {
	t.Parallel()

	res := Evaluate(t.Context(), queryRec("anything", false, ""), testSnapshot(t), nil)
	assert.Equal(t, StatusCouldNotValidate, res.Status)
	assert.Contains(t, res.Message, "no query executor")
}

func TestEvaluateMalformed(t *testing.T) {
	t.Parallel()

	rec := catalog.Recommendation{ID: "TEST-003", Category: pillar.CostOptimization, Name: "broken"}
	res := Evaluate(t.Context(), rec, testSnapshot(t), nil)
	assert.Equal(t, StatusCouldNotValidate, res.Status)
	assert.Contains(t, res.Message, "malformed")

	rec.Property = &catalog.PropertyCheck{Path: "sku.tier", ExpectedValue: "Standard"}
	rec.Query = &catalog.QueryCheck{Ref: "x"}
	res = Evaluate(t.Context(), rec, testSnapshot(t), nil)
	assert.Equal(t, StatusCouldNotValidate, res.Status)
}
