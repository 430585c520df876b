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

package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wellscan/wellscan/pkg/defaults"
	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/serializer"
	"github.com/wellscan/wellscan/pkg/snapshot"
)

// handleScan processes POST /v1/scans requests. The body is a cluster
// snapshot in JSON (default) or YAML, selected by Content-Type. The response
// is the full scan report.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	if s.catalog == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.ErrCodeUnavailable,
			"Recommendation catalog not loaded", true, nil)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidRequest,
			"Request body too large", false, map[string]any{
				"maxBytes": s.config.MaxBodyBytes,
			})
		return
	}

	snap, err := decodeSnapshot(body, r.Header.Get("Content-Type"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid cluster snapshot", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ScanHandlerTimeout)
	defer cancel()

	report, err := s.runner.Scan(ctx, s.catalog, snap)
	if err != nil {
		code := errors.CodeOf(err)
		slog.Error("scan failed",
			"cluster", snap.Identity.ClusterName,
			"code", code,
			"error", err,
		)
		switch code {
		case errors.ErrCodeInvalidRequest:
			s.writeError(w, r, http.StatusBadRequest, code,
				"Invalid cluster snapshot", false, map[string]any{
					"error": err.Error(),
				})
		case errors.ErrCodeCancelled, errors.ErrCodeTimeout:
			s.writeError(w, r, http.StatusGatewayTimeout, code,
				"Scan did not complete in time", true, nil)
		default:
			s.writeError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
				"Scan failed", true, nil)
		}
		return
	}

	slog.Info("scan completed",
		"scanID", report.ScanID,
		"cluster", report.Cluster.ClusterName,
		"score", report.Summary.Score,
		"checks", report.Summary.Total,
	)

	serializer.RespondJSON(w, http.StatusOK, report)
}

// decodeSnapshot parses a request body into a snapshot based on Content-Type.
// JSON is the default; YAML is selected by any Content-Type mentioning yaml.
func decodeSnapshot(body []byte, contentType string) (*snapshot.ClusterSnapshot, error) {
	if len(body) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "empty request body")
	}

	var snap snapshot.ClusterSnapshot
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		if err := yaml.Unmarshal(body, &snap); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode yaml snapshot", err)
		}
	} else {
		if err := json.Unmarshal(body, &snap); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode json snapshot", err)
		}
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	return &snap, nil
}
