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

package api

import (
	"context"
	"log/slog"
	"os"

	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/logging"
	"github.com/wellscan/wellscan/pkg/query"
	"github.com/wellscan/wellscan/pkg/query/resourcegraph"
	"github.com/wellscan/wellscan/pkg/scanner"
	"github.com/wellscan/wellscan/pkg/server"
)

const (
	name           = "wellscand"
	versionDefault = "dev"

	// tokenEnvVar optionally carries an ARM access token. When set, scans
	// run analytical query checks against Azure Resource Graph; when
	// empty, those checks resolve to CouldNotValidate.
	tokenEnvVar = "AZURE_ACCESS_TOKEN"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/wellscan/wellscan/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the embedded catalog, wires the query
// executor, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cat, err := catalog.Default()
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		return err
	}
	slog.Info("catalog loaded", "recommendations", cat.Len())

	runner := scanner.New(
		scanner.WithVersion(version),
		scanner.WithExecutor(newExecutor()),
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithCatalog(cat),
		server.WithRunner(runner),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newExecutor builds the Resource Graph executor when an access token is
// available, nil otherwise.
func newExecutor() query.Executor {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		slog.Warn("no access token configured, query checks will not be validated",
			"env", tokenEnvVar)
		return nil
	}

	return resourcegraph.New(func(context.Context) (string, error) {
		return token, nil
	})
}
