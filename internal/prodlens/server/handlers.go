package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

// maxBodyBytes bounds the analyze request body.
const maxBodyBytes = 10 << 20

type analyzeRequest struct {
	AppConfig *appconfig.AppConfig `json:"appConfig"`
	AppName   string               `json:"appName"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "ProdLens AI API",
		"version": s.cfg.Version,
		"docs":    "/docs",
		"health":  "/api/health",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schema.Response{
		Success: true,
		Message: "ProdLens AI API is running",
		Data: map[string]any{
			"status":       "healthy",
			"ai_available": s.analyzer.AIAvailable(),
			"timestamp":    s.now().Format(time.RFC3339),
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, schema.Response{
			Error: fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}
	if req.AppConfig == nil {
		writeJSON(w, http.StatusUnprocessableEntity, schema.Response{
			Error: "invalid request body: appConfig is required",
		})
		return
	}

	s.analyze(w, r, *req.AppConfig, req.AppName, "Analysis completed successfully")
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, appconfig.Sample(s.now()), appconfig.SampleAppName, "Sample analysis generated")
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request, cfg appconfig.AppConfig, appName, message string) {
	result, err := s.analyzer.Assemble(r.Context(), cfg, appName)
	if err != nil {
		s.logger.Error("analysis failed",
			"request_id", requestID(r.Context()),
			"app", appName,
			"invalid_model_reply", errors.Is(err, schema.ErrInvalidEntry),
			"error", err,
		)
		writeJSON(w, http.StatusOK, schema.Response{Error: err.Error()})
		return
	}

	served := s.analysesServed.Add(1)
	s.logger.Info("analysis completed",
		"request_id", requestID(r.Context()),
		"app", result.AppName,
		"overall_score", result.OverallScore,
		"analyses_served", served,
	)
	writeJSON(w, http.StatusOK, schema.Response{
		Success: true,
		Message: message,
		Data:    result,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.statuses[id]; ok {
		writeJSON(w, http.StatusOK, schema.Response{
			Success: true,
			Data: map[string]any{
				"status":    "completed",
				"progress":  100,
				"timestamp": s.now().Format(time.RFC3339),
			},
		})
		return
	}
	writeJSON(w, http.StatusOK, schema.Response{Error: "Analysis not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
