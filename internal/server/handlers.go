package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cryptobuddy/advisor/internal/modules/catalog"
	"github.com/cryptobuddy/advisor/internal/modules/recommend"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "cryptobuddy-advisor",
	})
}

// handleSystemStatus handles system status requests
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "running",
		"assets": s.catalog.Current().Len(),
		"ai":     s.insight.Configured(),
		"memory": map[string]interface{}{
			"alloc_mb": m.Alloc / 1024 / 1024,
			"sys_mb":   m.Sys / 1024 / 1024,
			"num_gc":   m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	})
}

// handleListAssets returns the current catalog snapshot
func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	c := s.catalog.Current()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"assets":       c.Assets(),
		"refreshed_at": c.RefreshedAt().Format(time.RFC3339),
	})
}

// handleGetAsset returns one asset by id
func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	asset, err := s.catalog.Current().Lookup(id)
	if err != nil {
		if errors.Is(err, catalog.ErrAssetNotFound) {
			s.writeError(w, http.StatusNotFound, "asset not found: "+id)
			return
		}
		s.log.Error().Err(err).Str("asset", id).Msg("Asset lookup failed")
		s.writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	s.writeJSON(w, http.StatusOK, asset)
}

// handleRefresh rebuilds the catalog snapshot
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	fresh := s.catalog.Refresh()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshed_at": fresh.RefreshedAt().Format(time.RFC3339),
		"assets":       fresh.Len(),
	})
}

// handleTrending returns rising and volatile assets, largest cap first
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"assets": s.classify.Trending(s.catalog.Current()),
	})
}

// handleSustainability returns all assets ranked by sustainability
func (s *Server) handleSustainability(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ranking": s.classify.SustainabilityRanking(s.catalog.Current()),
	})
}

// handleSummary returns catalog-wide statistics
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.classify.Summarize(s.catalog.Current()))
}

// handleRecommendations filters the catalog by risk profile.
// Unknown profile values behave as moderate.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	profile := recommend.ParseRiskProfile(r.URL.Query().Get("profile"))
	assets := s.recommend.Recommend(s.catalog.Current(), profile)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile": string(profile),
		"assets":  assets,
	})
}

type insightRequest struct {
	Question string `json:"question"`
	AssetID  string `json:"asset_id,omitempty"`
}

// handleInsight forwards a free-text question to the AI collaborator.
// Failures come back as the answer string, always with status 200.
func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		s.writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	if req.AssetID != "" {
		asset, err := s.catalog.Current().Lookup(req.AssetID)
		if err != nil {
			s.writeError(w, http.StatusNotFound, "asset not found: "+req.AssetID)
			return
		}
		question = question + " " + asset.Name
	}

	answer := s.insight.Ask(r.Context(), question)

	s.writeJSON(w, http.StatusOK, map[string]string{
		"answer": answer,
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
