package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string", Str("Standard"), "Standard"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"int", Int(3), "3"},
		{"float integral", Float64(3), "3"},
		{"float fraction", Float64(0.5), "0.5"},
		{"float large", Float64(30), "30"},
		{"null", Null{}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestToValue(t *testing.T) {
	raw := map[string]any{
		"name": "prod",
		"sku":  map[string]any{"tier": "Standard"},
		"pools": []any{
			map[string]any{"count": float64(3), "autoscale": true},
			map[string]any{"count": float64(0), "autoscale": false},
		},
		"zones":   []any{},
		"deleted": nil,
	}

	v := ToValue(raw)
	obj, ok := v.(Object)
	require.True(t, ok, "expected Object root")

	assert.Equal(t, "prod", obj["name"].String())

	sku, ok := obj["sku"].(Object)
	require.True(t, ok)
	assert.Equal(t, "Standard", sku["tier"].String())

	pools, ok := obj["pools"].(Sequence)
	require.True(t, ok)
	require.Len(t, pools, 2)
	assert.Equal(t, "3", pools[0].(Object)["count"].String())

	zones, ok := obj["zones"].(Sequence)
	require.True(t, ok)
	assert.Empty(t, zones)

	_, ok = obj["deleted"].(Null)
	assert.True(t, ok, "expected Null for nil value")
}

func TestFromJSON(t *testing.T) {
	v, err := FromJSON([]byte(`{"a":{"b":[1,2,3]},"ok":true}`))
	require.NoError(t, err)

	got, err := Resolve(v, "a.b.1")
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())

	_, err = FromJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestAnyRoundTrip(t *testing.T) {
	v := Obj(map[string]Value{
		"s": Seq(Int(1), Str("x")),
	})

	m, ok := v.Any().(map[string]any)
	require.True(t, ok)
	s, ok := m["s"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{1, "x"}, s)
}
