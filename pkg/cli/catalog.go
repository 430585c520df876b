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

	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/pillar"
	"github.com/wellscan/wellscan/pkg/serializer"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Validate and list the recommendation catalog",
		Description: `Load a recommendation catalog, validate it against the catalog invariants
(unique ids, known pillars, exactly one check payload per recommendation),
and print its contents.

# Examples

List the embedded catalog:
  wellscan catalog

Validate a custom catalog file:
  wellscan catalog --catalog my-catalog.yaml

List only the security recommendations as a table:
  wellscan catalog --pillar security --format table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Path/URI to a recommendation catalog (default: embedded catalog)",
			},
			&cli.StringFlag{
				Name:    "pillar",
				Aliases: []string{"p"},
				Usage:   "Filter recommendations by pillar (display name or slug)",
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

			cat, err := loadCatalog(cmd.String("catalog"), cmd.String("kubeconfig"))
			if err != nil {
				return err
			}

			out := cat.Recommendations
			if raw := cmd.String("pillar"); raw != "" {
				p, ok := pillar.ParseLoose(raw)
				if !ok {
					return fmt.Errorf("unknown pillar: %q", raw)
				}
				out = cat.ByPillar(p)
			}

			listing := struct {
				Count           int                      `json:"count" yaml:"count"`
				Recommendations []catalog.Recommendation `json:"recommendations" yaml:"recommendations"`
			}{
				Count:           len(out),
				Recommendations: out,
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, listing); err != nil {
				return fmt.Errorf("failed to serialize catalog: %w", err)
			}

			slog.Info("catalog valid", "recommendations", listing.Count)
			return nil
		},
	}
}
