package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellscan/wellscan/pkg/pillar"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Greater(t, c.Len(), 10)

	// Every pillar should have at least one recommendation in the shipped catalog.
	for _, p := range pillar.Pillars {
		assert.NotEmpty(t, c.ByPillar(p), "pillar %s has no recommendations", p)
	}

	// Every query check must resolve to embedded query text.
	for _, r := range c.Recommendations {
		if r.Kind() != CheckKindQuery {
			continue
		}
		text, err := QueryText(r.Query.Ref)
		require.NoError(t, err, "missing query text for %s", r.ID)
		assert.NotEmpty(t, text)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid minimal",
			yaml: `
recommendations:
  - id: SEC-100
    category: Security
    name: rbac
    property:
      path: properties.enableRBAC
      expectedValue: "true"
`,
		},
		{
			name:    "empty catalog",
			yaml:    `recommendations: []`,
			wantErr: "no recommendations",
		},
		{
			name: "duplicate id",
			yaml: `
recommendations:
  - id: SEC-100
    category: Security
    name: a
    property: {path: a, expectedValue: x}
  - id: SEC-100
    category: Security
    name: b
    property: {path: b, expectedValue: y}
`,
			wantErr: "duplicate",
		},
		{
			name: "unknown pillar",
			yaml: `
recommendations:
  - id: GOV-001
    category: Governance
    name: a
    property: {path: a, expectedValue: x}
`,
			wantErr: "unknown pillar",
		},
		{
			name: "both payloads",
			yaml: `
recommendations:
  - id: SEC-100
    category: Security
    name: a
    property: {path: a, expectedValue: x}
    query: {ref: q}
`,
			wantErr: "exactly one",
		},
		{
			name: "no payload",
			yaml: `
recommendations:
  - id: SEC-100
    category: Security
    name: a
`,
			wantErr: "exactly one",
		},
		{
			name: "empty query ref",
			yaml: `
recommendations:
  - id: SEC-100
    category: Security
    name: a
    query: {ref: ""}
`,
			wantErr: "empty query ref",
		},
		{
			name: "bad match semantics",
			yaml: `
recommendations:
  - id: SEC-100
    category: Security
    name: a
    property: {path: a, expectedValue: x, match: some}
`,
			wantErr: "match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, c)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKind(t *testing.T) {
	p := &Recommendation{Property: &PropertyCheck{Path: "a", ExpectedValue: "x"}}
	assert.Equal(t, CheckKindProperty, p.Kind())

	q := &Recommendation{Query: &QueryCheck{Ref: "q"}}
	assert.Equal(t, CheckKindQuery, q.Kind())

	both := &Recommendation{Property: &PropertyCheck{}, Query: &QueryCheck{}}
	assert.Equal(t, CheckKind(""), both.Kind())

	neither := &Recommendation{}
	assert.Equal(t, CheckKind(""), neither.Kind())
}

func TestQueryRefs(t *testing.T) {
	refs, err := QueryRefs()
	require.NoError(t, err)
	assert.Contains(t, refs, "aks-open-api-server")

	_, err = QueryText("no-such-query")
	assert.Error(t, err)
}
