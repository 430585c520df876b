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
	"sync"

	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

// StaticExecutor serves query results from an in-memory table. It backs
// offline scans (where no analytics backend is reachable) and the engine's
// test suites.
type StaticExecutor struct {
	mu      sync.RWMutex
	rows    map[string][]Row
	errs    map[string]error
	unknown error
}

// NewStaticExecutor creates an empty StaticExecutor. Unregistered refs fail
// with a NOT_FOUND execution error, which the evaluator reports as
// could-not-validate rather than failing the check outright.
func NewStaticExecutor() *StaticExecutor {
	return &StaticExecutor{
		rows: make(map[string][]Row),
		errs: make(map[string]error),
		unknown: errors.New(errors.ErrCodeNotFound,
			"query ref not registered with static executor"),
	}
}

// SetRows registers the rows returned for a query ref.
func (s *StaticExecutor) SetRows(ref string, rows ...Row) *StaticExecutor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[ref] = rows
	delete(s.errs, ref)
	return s
}

// SetError registers an execution failure for a query ref.
func (s *StaticExecutor) SetError(ref string, err error) *StaticExecutor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[ref] = err
	delete(s.rows, ref)
	return s
}

// Execute implements Executor.
func (s *StaticExecutor) Execute(ctx context.Context, ref string, _ snapshot.Identity) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCancelled, "query cancelled", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err, ok := s.errs[ref]; ok {
		return nil, err
	}
	if rows, ok := s.rows[ref]; ok {
		return rows, nil
	}
	return nil, s.unknown
}
