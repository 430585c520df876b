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

// Package api provides the HTTP API layer for the wellscan evaluation service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the embedded recommendation catalog and the analytical
// query executor. It exposes catalog browsing and on-demand scans via REST API.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/wellscan/wellscan/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading the embedded recommendation catalog
//   - Wiring the Resource Graph query executor when credentials are available
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/recommendations - List catalog recommendations (optional ?pillar=)
//   - GET /v1/pillars         - List the five scoring pillars
//   - POST /v1/scans          - Evaluate a cluster snapshot (JSON/YAML body)
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - AZURE_ACCESS_TOKEN: ARM token for query checks (optional)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/wellscan/wellscan/pkg/api.version=1.0.0'"
package api
