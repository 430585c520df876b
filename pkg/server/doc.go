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

// Package server implements the wellscan HTTP API: catalog browsing and
// on-demand cluster scans over a stateless REST surface.
//
// # Architecture
//
// The server composes a small set of production concerns around plain
// net/http handlers:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Prometheus metrics on every route
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
// Basic server startup:
//
//	cat, err := catalog.Default()
//	if err != nil {
//	    panic(err)
//	}
//
//	s := server.New(
//	    server.WithName("wellscand"),
//	    server.WithVersion("v0.1.0"),
//	    server.WithCatalog(cat),
//	)
//	if err := s.Run(context.Background()); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
// GET /v1/recommendations - List catalog recommendations
//
//	Query parameters:
//	  - pillar: filter by pillar display name or slug (e.g., cost-optimization)
//
// GET /v1/pillars - List the five scoring pillars
//
// POST /v1/scans - Evaluate a posted cluster snapshot and return the report
//
//	Body: cluster snapshot in JSON (default) or YAML (Content-Type
//	containing "yaml"). The response is the full scan report including
//	the overall and per-pillar scores.
//
// GET /health - Health check (for liveness probe)
//
// GET /ready - Readiness check (returns 503 until the server is ready)
//
// GET /metrics - Prometheus metrics
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format). If not
// provided, the server generates one. The request ID is echoed in the
// X-Request-Id response header and included in error responses for tracing.
//
// Rate limit status is exposed via the X-RateLimit-Limit,
// X-RateLimit-Remaining, and X-RateLimit-Reset response headers; rejected
// requests carry Retry-After.
package server
