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
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/property"
	"github.com/wellscan/wellscan/pkg/query"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

// Evaluate evaluates a single recommendation against the snapshot. Property
// checks resolve a path in the snapshot's configuration tree; query checks
// delegate to the executor. Evaluation never returns an error: anything that
// prevents a verdict becomes StatusCouldNotValidate with a message, so one
// broken definition or backend hiccup cannot sink a scan.
func Evaluate(ctx context.Context, rec catalog.Recommendation, snap *snapshot.ClusterSnapshot, exec query.Executor) ScanResult {
	res := ScanResult{
		RecommendationID: rec.ID,
		Category:         rec.Category,
		Name:             rec.Name,
		Description:      rec.Description,
		Remediation:      rec.Remediation,
		LearnMoreLink:    rec.LearnMoreLink,
	}

	switch rec.Kind() {
	case catalog.CheckKindProperty:
		evaluateProperty(rec, snap, &res)
	case catalog.CheckKindQuery:
		evaluateQuery(ctx, rec, snap, exec, &res)
	default:
		res.Status = StatusCouldNotValidate
		res.Message = "malformed recommendation: exactly one of property or query must be set"
		slog.Warn("skipping malformed recommendation", "id", rec.ID)
	}

	return res
}

// evaluateProperty resolves the check's path in the snapshot config and
// compares the value against the expected expression.
func evaluateProperty(rec catalog.Recommendation, snap *snapshot.ClusterSnapshot, res *ScanResult) {
	check := rec.Property
	res.ExpectedValue = check.ExpectedValue

	if snap == nil || snap.Config == nil {
		res.Status = StatusCouldNotValidate
		res.Message = "snapshot has no configuration"
		return
	}

	val, err := property.Resolve(snap.Config, check.Path)
	if err != nil {
		res.Status = StatusCouldNotValidate
		if errors.IsNotFound(err) {
			res.Message = fmt.Sprintf("property %q not found in snapshot", check.Path)
		} else {
			res.Message = fmt.Sprintf("property %q could not be resolved: %v", check.Path, err)
		}
		slog.Debug("property not resolvable",
			"id", rec.ID,
			"path", check.Path,
			"error", err)
		return
	}

	if seq, ok := val.(property.Sequence); ok {
		evaluateSequence(rec, seq, res)
		return
	}

	actual := val.String()
	res.ActualValue = actual
	if matchExpected(actual, check.ExpectedValue) {
		res.Status = StatusPassed
		slog.Debug("recommendation passed",
			"id", rec.ID,
			"expected", check.ExpectedValue,
			"actual", actual)
		return
	}
	res.Status = StatusFailed
	res.Message = fmt.Sprintf("expected %s, got %s", check.ExpectedValue, actual)
	slog.Debug("recommendation failed",
		"id", rec.ID,
		"expected", check.ExpectedValue,
		"actual", actual)
}

// evaluateSequence judges a fan-out result with the check's any/all
// semantics. An empty sequence carries no evidence either way.
func evaluateSequence(rec catalog.Recommendation, seq property.Sequence, res *ScanResult) {
	check := rec.Property
	if len(seq) == 0 {
		res.Status = StatusCouldNotValidate
		res.Message = fmt.Sprintf("property %q matched no elements", check.Path)
		return
	}

	match := check.Match
	if match == "" {
		match = catalog.MatchAny
	}

	actuals := make([]string, 0, len(seq))
	matched := 0
	for _, el := range seq {
		a := el.String()
		actuals = append(actuals, a)
		if matchExpected(a, check.ExpectedValue) {
			matched++
		}
	}
	res.ActualValue = strings.Join(actuals, ", ")

	passed := matched == len(seq)
	if match == catalog.MatchAny {
		passed = matched > 0
	}
	if passed {
		res.Status = StatusPassed
		return
	}
	res.Status = StatusFailed
	res.Message = fmt.Sprintf("expected %s (%s), got [%s]", check.ExpectedValue, match, res.ActualValue)
}

// evaluateQuery runs the referenced query and interprets the row count. A
// non-inverse query detects an anti-pattern, so zero rows means the cluster
// is clean; an inverse query detects a required pattern, so zero rows means
// the cluster lacks it.
func evaluateQuery(ctx context.Context, rec catalog.Recommendation, snap *snapshot.ClusterSnapshot, exec query.Executor, res *ScanResult) {
	check := rec.Query

	if exec == nil {
		res.Status = StatusCouldNotValidate
		res.Message = "no query executor configured"
		return
	}

	var id snapshot.Identity
	if snap != nil {
		id = snap.Identity
	}

	rows, err := exec.Execute(ctx, check.Ref, id)
	if err != nil {
		res.Status = StatusCouldNotValidate
		res.Message = fmt.Sprintf("query %q failed: %v", check.Ref, err)
		slog.Warn("query execution failed",
			"id", rec.ID,
			"ref", check.Ref,
			"error", err)
		return
	}

	found := len(rows) > 0
	if found && check.ValueField != "" {
		res.ActualValue = rows[0].Field(check.ValueField)
	}

	if found != check.Inverse {
		res.Status = StatusFailed
		if check.Inverse {
			res.Message = fmt.Sprintf("query %q returned no rows", check.Ref)
		} else {
			res.Message = fmt.Sprintf("query %q matched %d resource(s)", check.Ref, len(rows))
		}
		slog.Debug("recommendation failed",
			"id", rec.ID,
			"ref", check.Ref,
			"rows", len(rows))
		return
	}
	res.Status = StatusPassed
	slog.Debug("recommendation passed",
		"id", rec.ID,
		"ref", check.Ref,
		"rows", len(rows))
}

// matchExpected compares the normalized actual value against the expected
// expression. Alternatives are separated by "|"; comparison is exact and
// case-sensitive.
func matchExpected(actual, expected string) bool {
	for _, alt := range strings.Split(expected, "|") {
		if actual == alt {
			return true
		}
	}
	return false
}
