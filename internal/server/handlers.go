package server

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/voltgrid/bess-engine/internal/scenario"
	"github.com/voltgrid/bess-engine/internal/score"
	"github.com/voltgrid/bess-engine/internal/sizing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

// decodeValid decodes the request body and runs struct validation. A false
// return means the error response has already been written.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var site score.SiteContext
	if !s.decodeValid(w, r, &site) {
		return
	}
	s.writeJSON(w, http.StatusOK, score.Score(site))
}

type sizingRequest struct {
	PeakDemandKW  float64 `json:"peak_demand_kw" validate:"gt=0"`
	DurationHours float64 `json:"duration_hours" validate:"gt=0"`
	Application   string  `json:"application"`
}

func (s *Server) handleSizing(w http.ResponseWriter, r *http.Request) {
	var req sizingRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, sizing.Size(req.PeakDemandKW, req.DurationHours, req.Application))
}

type scenariosResponse struct {
	Scenarios []scenario.Config `json:"scenarios"`
	Rankings  scenario.Rankings `json:"rankings"`
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	var in scenario.GenerateInput
	if !s.decodeValid(w, r, &in) {
		return
	}
	if in.PeakDemandKW <= 0 {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "peak_demand_kw must be positive"})
		return
	}

	scenarios := s.gen.Generate(r.Context(), in)
	s.writeJSON(w, http.StatusOK, scenariosResponse{
		Scenarios: scenarios,
		Rankings:  scenario.Rank(scenarios),
	})
}

type compareRequest struct {
	A scenario.Config `json:"a" validate:"required"`
	B scenario.Config `json:"b" validate:"required"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, scenario.Diff(req.A, req.B))
}
