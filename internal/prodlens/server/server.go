// Package server exposes the readiness analysis over HTTP. Every response is
// a JSON schema.Response envelope; analysis failures are reported in-band
// with a 200 status.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

// Config holds HTTP server configuration.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Version        string
}

// Analyzer produces reports. *report.Assembler implements it.
type Analyzer interface {
	Assemble(ctx context.Context, cfg appconfig.AppConfig, appName string) (*schema.AnalysisResult, error)
	AIAvailable() bool
}

// Server is the prodlens HTTP API server.
type Server struct {
	cfg      Config
	analyzer Analyzer
	logger   *slog.Logger
	mux      *http.ServeMux
	handler  http.Handler
	now      func() time.Time

	// statuses is looked up by GET /api/status/{id}. Analyses complete
	// within their request and are not retained, so it stays empty.
	statuses map[string]struct{}

	analysesServed atomic.Int64
}

// New creates a configured server.
func New(cfg Config, analyzer Analyzer, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		analyzer: analyzer,
		logger:   logger,
		mux:      http.NewServeMux(),
		now:      time.Now,
		statuses: map[string]struct{}{},
	}

	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /api/sample-analysis", s.handleSample)
	s.mux.HandleFunc("GET /api/status/{id}", s.handleStatus)

	s.handler = withRequestID(
		s.withLogging(
			withCORS(cfg.AllowedOrigins,
				s.withRecover(s.mux))))

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// AnalysesServed returns how many analyses the server has completed.
func (s *Server) AnalysesServed() int64 {
	return s.analysesServed.Load()
}

// Start begins serving. Blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listener starting",
			"addr", s.cfg.Addr,
			"ai_available", s.analyzer.AIAvailable(),
			"allowed_origins", s.cfg.AllowedOrigins,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down api listener", "analyses_served", s.AnalysesServed())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
