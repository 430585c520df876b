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

package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/pillar"
)

//go:embed definitions
var definitions embed.FS

const (
	defaultCatalogPath = "definitions/recommendations.yaml"
	queryDir           = "definitions/queries"
)

// Default returns the embedded recommendation catalog validated against the
// catalog invariants. The returned catalog is freshly parsed per call, so
// callers can treat it as their own immutable copy.
func Default() (*Catalog, error) {
	data, err := definitions.ReadFile(defaultCatalogPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "embedded catalog missing", err)
	}
	return Parse(data)
}

// Parse decodes a YAML (or JSON, which is a YAML subset) catalog document and
// validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode catalog", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("catalog loaded", "recommendations", len(c.Recommendations))
	return &c, nil
}

// Validate enforces the catalog invariants the engine depends on:
// non-empty unique ids, a known pillar per recommendation, and exactly one
// populated check payload. The loader guarantees these before any definition
// reaches the evaluator.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "catalog cannot be nil")
	}
	if len(c.Recommendations) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "catalog has no recommendations")
	}

	seen := make(map[string]bool, len(c.Recommendations))
	for i := range c.Recommendations {
		r := &c.Recommendations[i]

		if strings.TrimSpace(r.ID) == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"recommendation has empty id", map[string]any{"index": i})
		}
		if seen[r.ID] {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"duplicate recommendation id", map[string]any{"id": r.ID})
		}
		seen[r.ID] = true

		if _, ok := pillar.Parse(r.Category.String()); !ok {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unknown pillar category",
				map[string]any{"id": r.ID, "category": r.Category})
		}

		if err := validateCheck(r); err != nil {
			return err
		}
	}

	return nil
}

func validateCheck(r *Recommendation) error {
	switch r.Kind() {
	case CheckKindProperty:
		if strings.TrimSpace(r.Property.Path) == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"property check has empty path", map[string]any{"id": r.ID})
		}
		if r.Property.ExpectedValue == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"property check has empty expected value", map[string]any{"id": r.ID})
		}
		switch r.Property.Match {
		case "", MatchAny, MatchAll:
		default:
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unknown array match semantics",
				map[string]any{"id": r.ID, "match": r.Property.Match})
		}
	case CheckKindQuery:
		if strings.TrimSpace(r.Query.Ref) == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"query check has empty query ref", map[string]any{"id": r.ID})
		}
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"recommendation must carry exactly one of property or query payload",
			map[string]any{"id": r.ID})
	}
	return nil
}

// QueryText returns the embedded query text for the given query ref.
// Refs map to files under definitions/queries (e.g., ref "aks-public-api"
// resolves to definitions/queries/aks-public-api.kql).
func QueryText(ref string) (string, error) {
	name := fmt.Sprintf("%s/%s.kql", queryDir, ref)
	data, err := definitions.ReadFile(name)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeNotFound,
			"query text not found", err, map[string]any{"ref": ref})
	}
	return string(data), nil
}

// QueryRefs lists the query refs available in the embedded definitions.
func QueryRefs() ([]string, error) {
	entries, err := fs.ReadDir(definitions, queryDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "embedded queries missing", err)
	}

	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".kql") {
			continue
		}
		refs = append(refs, strings.TrimSuffix(e.Name(), ".kql"))
	}
	return refs, nil
}
