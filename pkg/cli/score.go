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

	"github.com/urfave/cli/v3"

	"github.com/wellscan/wellscan/pkg/scanner"
	"github.com/wellscan/wellscan/pkg/scoring"
	"github.com/wellscan/wellscan/pkg/serializer"
)

func scoreCmd() *cli.Command {
	return &cli.Command{
		Name:                  "score",
		EnableShellCompletion: true,
		Usage:                 "Recompute the score summary from a stored scan report",
		Description: `Recompute the overall and per-pillar scores from the individual check
results in a stored scan report. Scoring is a pure function of the results,
so recomputing a report's summary always yields the same numbers unless the
results themselves were edited.

# Examples

Recompute the summary of a stored report:
  wellscan score --report report.json

Print only the recomputed summary as YAML:
  wellscan score -r report.json --summary-only -f yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "report",
				Aliases:  []string{"r"},
				Required: true,
				Usage: `Path/URI to a scan report.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
			},
			&cli.BoolFlag{
				Name:  "summary-only",
				Usage: "Output only the recomputed summary instead of the full report",
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

			reportPath := cmd.String("report")
			slog.Info("loading report", "uri", reportPath)

			report, err := serializer.FromFileWithKubeconfig[scanner.Report](reportPath, cmd.String("kubeconfig"))
			if err != nil {
				return fmt.Errorf("failed to load report from %q: %w", reportPath, err)
			}

			report.Summary = scoring.Summarize(report.Results)

			var out any = report
			if cmd.Bool("summary-only") {
				out = report.Summary
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, out); err != nil {
				return fmt.Errorf("failed to serialize report: %w", err)
			}

			slog.Info("summary recomputed",
				"scanID", report.ScanID,
				"score", report.Summary.Score,
				"checks", report.Summary.Total)

			return nil
		},
	}
}
