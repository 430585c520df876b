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
	"net/http"
	"time"

	"github.com/wellscan/wellscan/pkg/catalog"
	"github.com/wellscan/wellscan/pkg/errors"
	"github.com/wellscan/wellscan/pkg/pillar"
	"github.com/wellscan/wellscan/pkg/serializer"
)

// RecommendationsResponse is the payload returned by GET /v1/recommendations.
type RecommendationsResponse struct {
	Count           int                      `json:"count"`
	Pillar          string                   `json:"pillar,omitempty"`
	Recommendations []catalog.Recommendation `json:"recommendations"`
}

// handleRecommendations processes GET /v1/recommendations requests, optionally
// filtered by the pillar query parameter (display name or slug, any case).
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
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

	resp := RecommendationsResponse{
		Recommendations: s.catalog.Recommendations,
	}

	if raw := r.URL.Query().Get("pillar"); raw != "" {
		p, ok := pillar.ParseLoose(raw)
		if !ok {
			s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Invalid pillar", false, map[string]any{
					"pillar": raw,
				})
			return
		}
		resp.Pillar = p.String()
		resp.Recommendations = s.catalog.ByPillar(p)
	}

	resp.Count = len(resp.Recommendations)

	// Catalog content only changes with a new binary.
	w.Header().Set("Cache-Control", "public, max-age=300")
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// PillarInfo describes one scoring pillar for API consumers.
type PillarInfo struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Checks      int    `json:"checks"`
}

// PillarsResponse is the payload returned by GET /v1/pillars.
type PillarsResponse struct {
	Count     int          `json:"count"`
	Pillars   []PillarInfo `json:"pillars"`
	Timestamp time.Time    `json:"timestamp"`
}

// handlePillars processes GET /v1/pillars requests.
func (s *Server) handlePillars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	pillars := make([]PillarInfo, 0, len(pillar.Pillars))
	for _, p := range pillar.Pillars {
		info := PillarInfo{
			Name:        p.String(),
			Slug:        p.Slug(),
			Description: p.Description(),
		}
		if s.catalog != nil {
			info.Checks = len(s.catalog.ByPillar(p))
		}
		pillars = append(pillars, info)
	}

	resp := PillarsResponse{
		Count:     len(pillars),
		Pillars:   pillars,
		Timestamp: time.Now().UTC(),
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	serializer.RespondJSON(w, http.StatusOK, resp)
}
