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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/defaults"
	"github.com/wellscan/wellscan/pkg/query"
	"github.com/wellscan/wellscan/pkg/query/resourcegraph"
	"github.com/wellscan/wellscan/pkg/scanner"
	"github.com/wellscan/wellscan/pkg/serializer"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

const tokenEnvVar = "AZURE_ACCESS_TOKEN"

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:                  "scan",
		EnableShellCompletion: true,
		Usage:                 "Evaluate a cluster snapshot against the recommendation catalog",
		Description: `Evaluate a cluster configuration snapshot against every recommendation in
the catalog and produce a scored report.

Property checks inspect the snapshot's configuration tree locally. Query
checks run analytical queries against Azure Resource Graph when an access
token is available (` + tokenEnvVar + ` environment variable); without one
they are reported as CouldNotValidate.

# Examples

Scan a snapshot with the embedded catalog:
  wellscan scan --snapshot cluster.json

Scan with a custom catalog and write the report to a file:
  wellscan scan -s cluster.yaml -c catalog.yaml -o report.json

Store the report in a ConfigMap:
  wellscan scan -s cluster.yaml -o cm://wellscan/report

Fail the command when the overall score is below a threshold (CI/CD):
  wellscan scan -s cluster.yaml --min-score 80`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "snapshot",
				Aliases:  []string{"s"},
				Required: true,
				Usage: `Path/URI to the cluster snapshot.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
			},
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Path/URI to a recommendation catalog (default: embedded catalog)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of checks evaluated in parallel",
				Value: defaults.ScanConcurrency,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Overall scan timeout",
				Value: defaults.ScanTimeout,
			},
			&cli.IntFlag{
				Name:  "min-score",
				Usage: "Exit with non-zero status when the overall score is below this value",
				Value: -1,
			},
			&cli.StringFlag{
				Name:  "graph-endpoint",
				Usage: "Override the Azure Resource Graph endpoint",
			},
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			kubeconfig := cmd.String("kubeconfig")

			cat, err := loadCatalog(cmd.String("catalog"), kubeconfig)
			if err != nil {
				return err
			}

			snapshotPath := cmd.String("snapshot")
			slog.Info("loading snapshot", "uri", snapshotPath)

			snap, err := serializer.FromFileWithKubeconfig[snapshot.ClusterSnapshot](snapshotPath, kubeconfig)
			if err != nil {
				return fmt.Errorf("failed to load snapshot from %q: %w", snapshotPath, err)
			}

			r := scanner.New(
				scanner.WithVersion(version),
				scanner.WithConcurrency(cmd.Int("concurrency")),
				scanner.WithExecutor(newExecutor(cmd.String("graph-endpoint"))),
			)

			scanCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			slog.Info("scanning",
				"cluster", snap.Identity.ClusterName,
				"recommendations", cat.Len())

			report, err := r.Scan(scanCtx, cat, snap)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to serialize report: %w", err)
			}

			slog.Info("scan completed",
				"scanID", report.ScanID,
				"score", report.Summary.Score,
				"passed", report.Summary.Passed,
				"failed", report.Summary.Failed,
				"notValidated", report.Summary.NotValidated)

			if min := cmd.Int("min-score"); min >= 0 && report.Summary.Score < min {
				return fmt.Errorf("score %d is below required minimum %d",
					report.Summary.Score, min)
			}

			return nil
		},
	}
}

// loadCatalog loads a catalog from the given path/URI, falling back to the
// embedded catalog when the path is empty. Loaded catalogs are validated.
func loadCatalog(path, kubeconfig string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}

	slog.Info("loading catalog", "uri", path)
	cat, err := serializer.FromFileWithKubeconfig[catalog.Catalog](path, kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %q: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %q: %w", path, err)
	}
	return cat, nil
}

// newExecutor builds the query executor for scan runs: Resource Graph when an
// access token is configured, otherwise an empty static executor so query
// checks resolve to CouldNotValidate.
func newExecutor(endpoint string) query.Executor {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		slog.Debug("no access token configured, query checks will not be validated",
			"env", tokenEnvVar)
		return query.NewStaticExecutor()
	}

	opts := []resourcegraph.Option{}
	if endpoint != "" {
		opts = append(opts, resourcegraph.WithEndpoint(endpoint))
	}

	return resourcegraph.New(func(context.Context) (string, error) {
		return token, nil
	}, opts...)
}

func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}
