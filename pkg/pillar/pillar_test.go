package pillar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		want  Pillar
		valid bool
	}{
		{"Reliability", Reliability, true},
		{"Security", Security, true},
		{"Cost Optimization", CostOptimization, true},
		{"Operational Excellence", OperationalExcellence, true},
		{"Performance Efficiency", PerformanceEfficiency, true},
		{"reliability", "", false}, // case-sensitive
		{"Governance", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPillarMetadata(t *testing.T) {
	assert.Len(t, Pillars, 5)

	seen := make(map[string]bool)
	for _, p := range Pillars {
		assert.NotEmpty(t, p.Slug(), "pillar %s has no slug", p)
		assert.NotEmpty(t, p.Description(), "pillar %s has no description", p)
		assert.False(t, seen[p.Slug()], "duplicate slug %s", p.Slug())
		seen[p.Slug()] = true
	}
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		in    string
		want  Pillar
		valid bool
	}{
		{"Reliability", Reliability, true},
		{"reliability", Reliability, true},
		{"cost-optimization", CostOptimization, true},
		{"Cost Optimization", CostOptimization, true},
		{"operational excellence", OperationalExcellence, true},
		{"  PERFORMANCE-EFFICIENCY  ", PerformanceEfficiency, true},
		{"resilience", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLoose(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
