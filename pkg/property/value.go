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

package property

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AllowedScalar is a constraint (compile-time) for what we allow as scalar leaves.
type AllowedScalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool |
		~string
}

// Value is a *runtime* interface over the three tree variants
// (Object, Sequence, Scalar) plus Null, so heterogeneous configuration
// trees can be represented without reflection at lookup time.
type Value interface {
	isValue()
	Any() any
	String() string
}

// Scalar wraps an allowed scalar type.
// This is how we keep compile-time constraints while still using a runtime interface.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isValue() {}

func (s Scalar[T]) Any() any { return s.V }

// String returns the canonical string form of the scalar: booleans as
// "true"/"false", floats in shortest decimal form ("3" not "3.000000"),
// everything else via default formatting.
func (s Scalar[T]) String() string {
	switch v := any(s.V).(type) {
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", s.V)
	}
}

// Object is the mapping variant of the tree: string keys to child values.
type Object map[string]Value

func (Object) isValue() {}

// Any returns the object as a plain map of Go values.
func (o Object) Any() any {
	m := make(map[string]any, len(o))
	for k, v := range o {
		m[k] = v.Any()
	}
	return m
}

func (o Object) String() string {
	return fmt.Sprintf("%v", o.Any())
}

// Sequence is the ordered collection variant of the tree.
type Sequence []Value

func (Sequence) isValue() {}

// Any returns the sequence as a plain slice of Go values.
func (s Sequence) Any() any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v.Any()
	}
	return out
}

func (s Sequence) String() string {
	return fmt.Sprintf("%v", s.Any())
}

// Null is the explicit JSON/YAML null variant. It is a present-but-empty leaf,
// distinct from an absent path.
type Null struct{}

func (Null) isValue() {}

func (Null) Any() any { return nil }

func (Null) String() string { return "null" }

// MarshalJSON makes the JSON value be the underlying scalar (not an object wrapper).
func (s Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML makes the YAML value be the underlying scalar (not an object wrapper).
func (s Scalar[T]) MarshalYAML() (any, error) {
	return s.V, nil
}

// MarshalJSON emits an explicit JSON null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalYAML emits an explicit YAML null.
func (Null) MarshalYAML() (any, error) {
	return nil, nil
}

// Convenience constructors for building trees in code and tests.
func Str(v string) Value      { return Scalar[string]{V: v} }
func Int(v int) Value         { return Scalar[int]{V: v} }
func Int64(v int64) Value     { return Scalar[int64]{V: v} }
func Float64(v float64) Value { return Scalar[float64]{V: v} }
func Bool(v bool) Value       { return Scalar[bool]{V: v} }

// Obj builds an Object from the given map.
func Obj(m map[string]Value) Value { return Object(m) }

// Seq builds a Sequence from the given values.
func Seq(vs ...Value) Value { return Sequence(vs) }

// ToValue converts an arbitrary decoded JSON/YAML value into a typed Value tree.
// Maps become Objects, slices become Sequences, nil becomes Null, and anything
// outside the allowed scalar set is converted to its string representation.
func ToValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case map[string]any:
		o := make(Object, len(val))
		for k, child := range val {
			o[k] = ToValue(child)
		}
		return o
	case []any:
		s := make(Sequence, len(val))
		for i, child := range val {
			s[i] = ToValue(child)
		}
		return s
	case int:
		return Scalar[int]{V: val}
	case int64:
		return Scalar[int64]{V: val}
	case uint64:
		return Scalar[uint64]{V: val}
	case float64:
		return Scalar[float64]{V: val}
	case bool:
		return Scalar[bool]{V: val}
	case string:
		return Scalar[string]{V: val}
	default:
		return Scalar[string]{V: fmt.Sprintf("%v", val)}
	}
}

// FromJSON decodes raw JSON bytes into a Value tree.
func FromJSON(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode value tree: %w", err)
	}
	return ToValue(raw), nil
}
