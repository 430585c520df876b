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

package defaults

import "time"

// Scan timeouts and limits.
const (
	// ScanTimeout is the default wall-clock budget for a complete scan.
	ScanTimeout = 5 * time.Minute

	// ScanConcurrency is the default number of checks evaluated in parallel.
	// Query checks block on the remote analytics backend, so this bound is
	// effectively the cap on concurrent backend calls.
	ScanConcurrency = 8
)

// Query executor timeouts for the analytical query backend.
const (
	// QueryTimeout is the per-query timeout for resource graph calls.
	QueryTimeout = 30 * time.Second

	// QueryRetryMax is the maximum number of attempts for a single query.
	QueryRetryMax = 3

	// QueryRetryBackoff is the base delay between query retry attempts.
	QueryRetryBackoff = 2 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// ScanHandlerTimeout is the timeout for scan requests served over HTTP.
	// Longer than ScanTimeout budget for a single check since a scan covers
	// the whole catalog.
	ScanHandlerTimeout = 2 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Must cover ScanHandlerTimeout since scans stream their full report.
	ServerWriteTimeout = 150 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for receiving response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)
