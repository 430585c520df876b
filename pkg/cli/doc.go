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

// Package cli implements the wellscan command-line interface.
//
// # Overview
//
// The wellscan CLI evaluates AKS cluster configuration snapshots against a
// catalog of best-practice recommendations and produces scored reports. It is
// designed for cluster administrators and SREs, both interactively and in
// CI/CD pipelines.
//
// # Commands
//
// scan - Evaluate a snapshot:
//
//	wellscan scan --snapshot cluster.yaml [--catalog FILE] [--min-score N]
//
// Runs every recommendation in the catalog against the snapshot and writes
// the scored report. Query checks require an ARM access token in the
// AZURE_ACCESS_TOKEN environment variable; without one they are reported as
// CouldNotValidate.
//
// catalog - Validate and list the catalog:
//
//	wellscan catalog [--catalog FILE] [--pillar security]
//
// score - Recompute a stored report's summary:
//
//	wellscan score --report report.json [--summary-only]
//
// # Global Flags
//
//	--output, -o   Output file path or cm:// URI (default: stdout)
//	--format, -f   Output format: json, yaml, table (default: json)
//	--log-level    Logging level: debug, info, warn, error
//
// # Input Sources
//
// Snapshot, catalog, and report inputs accept local file paths, HTTP/HTTPS
// URLs, or Kubernetes ConfigMap URIs (cm://namespace/name). ConfigMap access
// uses the kubeconfig discovered from KUBECONFIG, ~/.kube/config, or the
// in-cluster service account.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, score below
//	   --min-score)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/catalog - Recommendation catalog loading and validation
//   - pkg/scanner - Concurrent snapshot evaluation
//   - pkg/scoring - Score aggregation
//   - pkg/serializer - Input/output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/wellscan/wellscan/pkg/cli.version=1.0.0'"
package cli
