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

package resourcegraph

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/defaults"
	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/query"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

const (
	// DefaultEndpoint is the Azure Resource Graph query endpoint.
	DefaultEndpoint = "https://management.azure.com/providers/Microsoft.ResourceGraph/resources?api-version=2022-10-01"

	// DefaultRateLimit bounds outbound query requests per second. Resource
	// Graph throttles aggressively per tenant, so stay conservative.
	DefaultRateLimit = rate.Limit(5)

	// DefaultRateBurst is the token bucket burst for outbound requests.
	DefaultRateBurst = 10
)

// TokenProvider supplies a bearer token for the Azure management plane.
// Implementations typically wrap an Azure credential chain; tests return a
// fixed string.
type TokenProvider func(ctx context.Context) (string, error)

// QuerySource resolves a query ref to its query text. The embedded
// recommendation catalog satisfies this via catalog.QueryText.
type QuerySource func(ref string) (string, error)

// Executor runs catalog query checks against Azure Resource Graph. It
// implements query.Executor with client-side rate limiting and bounded
// retries on throttled or failed requests.
type Executor struct {
	endpoint string
	client   *http.Client
	token    TokenProvider
	source   QuerySource
	limiter  *rate.Limiter

	retryMax     int
	retryBackoff time.Duration
}

// Option is a functional option for configuring Executor instances.
type Option func(*Executor)

// WithEndpoint overrides the Resource Graph endpoint, e.g. for sovereign
// clouds or test servers.
func WithEndpoint(endpoint string) Option {
	return func(e *Executor) {
		e.endpoint = endpoint
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Executor) {
		if client != nil {
			e.client = client
		}
	}
}

// WithQuerySource replaces the query text source. Defaults to the embedded
// catalog queries.
func WithQuerySource(source QuerySource) Option {
	return func(e *Executor) {
		if source != nil {
			e.source = source
		}
	}
}

// WithRateLimit overrides the client-side request rate limit.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(e *Executor) {
		e.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithRetry overrides the retry budget for throttled or server-failed
// requests.
func WithRetry(max int, backoff time.Duration) Option {
	return func(e *Executor) {
		if max >= 0 {
			e.retryMax = max
		}
		if backoff > 0 {
			e.retryBackoff = backoff
		}
	}
}

// New creates a Resource Graph executor using the given token provider.
func New(token TokenProvider, opts ...Option) *Executor {
	e := &Executor{
		endpoint:     DefaultEndpoint,
		client:       &http.Client{Timeout: defaults.QueryTimeout},
		token:        token,
		source:       catalog.QueryText,
		limiter:      rate.NewLimiter(DefaultRateLimit, DefaultRateBurst),
		retryMax:     defaults.QueryRetryMax,
		retryBackoff: defaults.QueryRetryBackoff,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// request is the Resource Graph query request body.
type request struct {
	Subscriptions []string `json:"subscriptions"`
	Query         string   `json:"query"`
}

// response is the subset of the Resource Graph response the executor needs.
type response struct {
	TotalRecords int         `json:"totalRecords"`
	Data         []query.Row `json:"data"`
}

// Execute runs the referenced query scoped to the cluster's subscription and
// returns the rows that belong to the target cluster. Rows carrying a name
// field that names a different cluster are dropped; rows without a name
// field are kept.
func (e *Executor) Execute(ctx context.Context, ref string, id snapshot.Identity) ([]query.Row, error) {
	text, err := e.source(ref)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, fmt.Sprintf("unknown query ref %q", ref), err)
	}
	if e.token == nil {
		return nil, errors.New(errors.ErrCodeQueryFailed, "no token provider configured")
	}

	queryCtx, cancel := context.WithTimeout(ctx, defaults.QueryTimeout)
	defer cancel()

	body, err := json.Marshal(request{
		Subscriptions: []string{id.SubscriptionID},
		Query:         text,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to encode query request", err)
	}

	var resp response
	var lastErr error
	for attempt := 0; attempt <= e.retryMax; attempt++ {
		if attempt > 0 {
			slog.Debug("retrying query",
				"ref", ref,
				"attempt", attempt,
				"backoff", e.retryBackoff)
			select {
			case <-time.After(e.retryBackoff * time.Duration(attempt)):
			case <-queryCtx.Done():
				return nil, wrapContextErr(queryCtx.Err(), ref)
			}
		}

		if err := e.limiter.Wait(queryCtx); err != nil {
			return nil, wrapContextErr(err, ref)
		}

		resp, lastErr = e.post(queryCtx, body)
		if lastErr == nil {
			return filterRows(resp.Data, id.ClusterName), nil
		}
		if !retryable(lastErr) {
			break
		}
	}

	if ctxErr := queryCtx.Err(); ctxErr != nil {
		return nil, wrapContextErr(ctxErr, ref)
	}
	return nil, errors.Wrap(errors.ErrCodeQueryFailed, fmt.Sprintf("query %q failed", ref), lastErr)
}

// statusError marks HTTP failures so the retry loop can tell throttling and
// server errors from terminal client errors.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("resource graph returned status %d: %s", e.code, e.body)
}

func retryable(err error) bool {
	var se *statusError
	if stderrors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	// Network-level failures are worth one more try.
	return true
}

func (e *Executor) post(ctx context.Context, body []byte) (response, error) {
	var out response

	token, err := e.token(ctx)
	if err != nil {
		return out, fmt.Errorf("failed to acquire token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return out, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := e.client.Do(req)
	if err != nil {
		return out, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return out, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return out, &statusError{code: resp.StatusCode, body: truncate(string(data), 256)}
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// filterRows keeps the rows belonging to the target cluster. Queries return
// subscription-wide matches; the engine only judges the scanned cluster.
func filterRows(rows []query.Row, clusterName string) []query.Row {
	if clusterName == "" {
		return rows
	}
	out := make([]query.Row, 0, len(rows))
	for _, row := range rows {
		name := row.Field("name")
		if name == "" || strings.EqualFold(name, clusterName) {
			out = append(out, row)
		}
	}
	return out
}

func wrapContextErr(err error, ref string) error {
	code := errors.ErrCodeTimeout
	if stderrors.Is(err, context.Canceled) {
		code = errors.ErrCodeCancelled
	}
	return errors.Wrap(code, fmt.Sprintf("query %q aborted", ref), err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
