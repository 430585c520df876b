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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/query"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

func staticToken(token string) TokenProvider {
	return func(_ context.Context) (string, error) {
		return token, nil
	}
}

func staticSource(text string) QuerySource {
	return func(_ string) (string, error) {
		return text, nil
	}
}

func testIdentity() snapshot.Identity {
	return snapshot.Identity{
		SubscriptionID: "sub-1",
		ResourceGroup:  "rg-1",
		ClusterName:    "aks-prod",
	}
}

func TestExecute(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(response{
			TotalRecords: 2,
			Data: []query.Row{
				{"name": "aks-prod", "count_": 2},
				{"name": "aks-other", "count_": 1},
			},
		})
	}))
	defer srv.Close()

	e := New(staticToken("tok-123"),
		WithEndpoint(srv.URL),
		WithQuerySource(staticSource("Resources | where type == 'x'")))

	rows, err := e.Execute(t.Context(), "some-check", testIdentity())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, []string{"sub-1"}, gotBody.Subscriptions)
	assert.Contains(t, gotBody.Query, "Resources")

	// The aks-other row belongs to a different cluster and is dropped.
	require.Len(t, rows, 1)
	assert.Equal(t, "aks-prod", rows[0].Field("name"))
}

func TestExecuteKeepsUnnamedRows(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(response{
			TotalRecords: 1,
			Data:         []query.Row{{"resourceId": "/subs/x"}},
		})
	}))
	defer srv.Close()

	e := New(staticToken("t"), WithEndpoint(srv.URL), WithQuerySource(staticSource("q")))
	rows, err := e.Execute(t.Context(), "check", testIdentity())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExecuteRetriesThrottling(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(response{})
	}))
	defer srv.Close()

	e := New(staticToken("t"),
		WithEndpoint(srv.URL),
		WithQuerySource(staticSource("q")),
		WithRetry(2, time.Millisecond))

	rows, err := e.Execute(t.Context(), "check", testIdentity())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExecuteExhaustsRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := New(staticToken("t"),
		WithEndpoint(srv.URL),
		WithQuerySource(staticSource("q")),
		WithRetry(2, time.Millisecond))

	_, err := e.Execute(t.Context(), "check", testIdentity())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeQueryFailed, errors.CodeOf(err))
	assert.Equal(t, int32(3), calls.Load())
}

func TestExecuteDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	e := New(staticToken("t"),
		WithEndpoint(srv.URL),
		WithQuerySource(staticSource("q")),
		WithRetry(3, time.Millisecond))

	_, err := e.Execute(t.Context(), "check", testIdentity())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecuteUnknownRef(t *testing.T) {
	t.Parallel()

	e := New(staticToken("t"))
	_, err := e.Execute(t.Context(), "no-such-query-ref", testIdentity())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

func TestExecuteEmbeddedCatalogSource(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotQuery = req.Query
		_ = json.NewEncoder(w).Encode(response{})
	}))
	defer srv.Close()

	e := New(staticToken("t"), WithEndpoint(srv.URL))
	_, err := e.Execute(t.Context(), "aks-open-api-server", testIdentity())
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "containerservice")
}

func TestExecuteNoTokenProvider(t *testing.T) {
	t.Parallel()

	e := New(nil, WithQuerySource(staticSource("q")))
	_, err := e.Execute(t.Context(), "check", testIdentity())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeQueryFailed, errors.CodeOf(err))
}

func TestExecuteCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	e := New(staticToken("t"), WithEndpoint(srv.URL), WithQuerySource(staticSource("q")))
	_, err := e.Execute(ctx, "check", testIdentity())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCancelled, errors.CodeOf(err))
}
