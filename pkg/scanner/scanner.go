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

package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/defaults"
	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/evaluator"
	"github.com/wellscan/wellscan/pkg/header"
	"github.com/wellscan/wellscan/pkg/query"
	"github.com/wellscan/wellscan/pkg/scoring"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

// Runner evaluates a recommendation catalog against cluster snapshots. A
// Runner is immutable after New and safe for concurrent scans.
type Runner struct {
	concurrency int
	version     string
	executor    query.Executor
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithConcurrency returns an Option that bounds how many checks run in
// parallel. Values below 1 fall back to the default.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithVersion returns an Option that sets the engine version recorded in
// report metadata.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.version = version
	}
}

// WithExecutor returns an Option that sets the analytical query executor.
// Without one, query checks resolve to CouldNotValidate.
func WithExecutor(exec query.Executor) Option {
	return func(r *Runner) {
		r.executor = exec
	}
}

// New creates a new Runner with the provided options.
func New(opts ...Option) *Runner {
	r := &Runner{
		concurrency: defaults.ScanConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scan evaluates every catalog recommendation against the snapshot and
// returns the scored report. Results appear in catalog order regardless of
// completion order. Individual check failures (including panics in a query
// executor) degrade to CouldNotValidate; only context cancellation fails the
// scan as a whole.
func (r *Runner) Scan(ctx context.Context, cat *catalog.Catalog, snap *snapshot.ClusterSnapshot) (*Report, error) {
	if cat == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "catalog cannot be nil")
	}
	if snap == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "snapshot cannot be nil")
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		scanDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Debug("starting scan",
		"cluster", snap.Identity.ClusterName,
		"recommendations", cat.Len(),
		"concurrency", r.concurrency)

	results := make([]evaluator.ScanResult, cat.Len())

	// One slot per recommendation keeps report order deterministic without
	// a mutex; each goroutine writes only its own index.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, rec := range cat.Recommendations {
		g.Go(func() error {
			checkStart := time.Now()
			defer func() {
				checkDuration.WithLabelValues(string(rec.Kind())).Observe(time.Since(checkStart).Seconds())
			}()
			defer func() {
				if p := recover(); p != nil {
					slog.Error("check panicked",
						"id", rec.ID,
						"panic", p)
					results[i] = evaluator.ScanResult{
						RecommendationID: rec.ID,
						Category:         rec.Category,
						Name:             rec.Name,
						Description:      rec.Description,
						Remediation:      rec.Remediation,
						LearnMoreLink:    rec.LearnMoreLink,
						Status:           evaluator.StatusCouldNotValidate,
						Message:          fmt.Sprintf("check panicked: %v", p),
					}
				}
			}()
			results[i] = evaluator.Evaluate(gctx, rec, snap, r.executor)
			return nil
		})
	}

	// Workers never return errors, so Wait only drains the pool. A canceled
	// scan has no trustworthy summary and fails as a whole.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		scanTotal.WithLabelValues("error").Inc()
		return nil, errors.Wrap(errors.ErrCodeCancelled, "scan cancelled", err)
	}

	for _, res := range results {
		checkTotal.WithLabelValues(string(res.Status)).Inc()
	}

	report := NewReport()
	report.Init(header.KindScanReport, APIVersion, r.version)
	report.ScanID = uuid.NewString()
	report.Cluster = snap.Identity
	report.StartedAt = start.UTC()
	report.CompletedAt = time.Now().UTC()
	report.Results = results
	report.Summary = scoring.Summarize(results)

	scanTotal.WithLabelValues("success").Inc()
	scanScore.Set(float64(report.Summary.Score))

	slog.Debug("scan complete",
		"scan_id", report.ScanID,
		"score", report.Summary.Score,
		"passed", report.Summary.Passed,
		"failed", report.Summary.Failed,
		"not_validated", report.Summary.NotValidated,
		"duration", time.Since(start))

	return report, nil
}
