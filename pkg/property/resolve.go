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
	"strconv"
	"strings"

	"github.com/wellscan/wellscan/pkg/errors"
)

// bracketReplacer rewrites legacy bracket indexing ("pools[0].count") into
// dotted segments ("pools.0.count") before traversal.
var bracketReplacer = strings.NewReplacer("[", ".", "]", "")

// Resolve walks the value tree along the dot-delimited path and returns the
// value found there. Each path segment is either an object member name or a
// numeric sequence index.
//
// When an intermediate node is a Sequence and the next segment is not numeric,
// resolution fans out: the remaining path suffix is resolved against every
// element and the per-element results are returned as a Sequence. Elements
// that do not have the suffix are skipped; a fan-out that matches no element
// of a non-empty sequence is NOT_FOUND, while fanning out over an empty
// sequence returns an empty Sequence (present, but nothing to judge).
//
// Resolve is a pure function of (tree, path): it never mutates the tree and
// returns a NOT_FOUND structured error rather than panicking or coercing when
// the path does not fit the tree shape.
func Resolve(tree Value, path string) (Value, error) {
	if tree == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "value tree cannot be nil")
	}

	path = strings.TrimSpace(bracketReplacer.Replace(path))
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "property path cannot be empty")
	}

	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"property path contains an empty segment",
				map[string]any{"path": path})
		}
	}

	return resolveSegments(tree, segments, path)
}

// resolveSegments consumes segments one at a time against the current node.
func resolveSegments(node Value, segments []string, fullPath string) (Value, error) {
	if len(segments) == 0 {
		return node, nil
	}

	seg := segments[0]
	rest := segments[1:]

	switch n := node.(type) {
	case Object:
		child, ok := n[seg]
		if !ok {
			return nil, notFound(fullPath, seg, "member not present")
		}
		return resolveSegments(child, rest, fullPath)

	case Sequence:
		if idx, err := strconv.Atoi(seg); err == nil {
			if idx < 0 || idx >= len(n) {
				return nil, notFound(fullPath, seg, "sequence index out of range")
			}
			return resolveSegments(n[idx], rest, fullPath)
		}
		return fanOut(n, segments, fullPath)

	default:
		// Scalar or Null: nothing further to traverse into.
		return nil, notFound(fullPath, seg, "scalar reached before path end")
	}
}

// fanOut resolves the remaining segments against every element of the sequence.
func fanOut(seq Sequence, segments []string, fullPath string) (Value, error) {
	if len(seq) == 0 {
		return Sequence{}, nil
	}

	results := make(Sequence, 0, len(seq))
	for _, elem := range seq {
		r, err := resolveSegments(elem, segments, fullPath)
		if err != nil {
			continue
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		return nil, notFound(fullPath, segments[0], "no sequence element has the property")
	}
	return results, nil
}

func notFound(path, segment, reason string) error {
	return errors.NewWithContext(errors.ErrCodeNotFound,
		"property not found",
		map[string]any{"path": path, "segment": segment, "reason": reason})
}
