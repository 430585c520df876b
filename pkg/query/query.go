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

package query

import (
	"context"
	"fmt"

	"github.com/wellscan/wellscan/pkg/snapshot"
)

// Row is one result row returned by an analytical query.
type Row map[string]any

// Field returns the named row field as a string, or empty when absent.
func (r Row) Field(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// Executor runs analytical queries against the cloud estate and returns the
// rows matching the target cluster. Implementations own transport, rate
// limiting, and retry policy; the evaluation engine treats any returned error
// as a terminal execution failure for that check.
//
// Execute must be safe for concurrent use: the scan runner dispatches query
// checks in parallel.
type Executor interface {
	Execute(ctx context.Context, ref string, id snapshot.Identity) ([]Row, error)
}

// ExecuteFunc adapts a function to the Executor interface.
type ExecuteFunc func(ctx context.Context, ref string, id snapshot.Identity) ([]Row, error)

// Execute implements Executor.
func (f ExecuteFunc) Execute(ctx context.Context, ref string, id snapshot.Identity) ([]Row, error) {
	return f(ctx, ref, id)
}
