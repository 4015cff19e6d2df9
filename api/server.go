// Package api provides the HTTP REST API server for finsight.
//
// It exposes the summary engine: per-type and aggregate summaries over
// provider payloads, the synthesis hand-off, the data-type catalogue,
// health and Prometheus metrics.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/seenimoa/finsight/internal/analysis/sentiment"
	"github.com/seenimoa/finsight/internal/config"
	"github.com/seenimoa/finsight/internal/summary"
	"github.com/seenimoa/finsight/internal/synthesis"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// Server is the HTTP API server.
type Server struct {
	router     chi.Router
	cfg        *config.Config
	dispatcher *summary.Dispatcher
	collector  *summary.Collector
	registry   *prometheus.Registry
	metrics    *httpMetrics
	version    string
	started    time.Time
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, version string) *Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	d := summary.NewDispatcher(
		summary.WithMetrics(summary.NewMetrics(reg)),
		summary.WithNewsOptions(sentiment.NewsOptions{ExcerptLength: cfg.Analysis.ExcerptLength}),
	)

	srv := &Server{
		cfg:        cfg,
		dispatcher: d,
		collector:  summary.NewCollector(d, cfg.Analysis.Concurrency),
		registry:   reg,
		metrics:    newHTTPMetrics(reg),
		version:    version,
		started:    time.Now(),
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and blocks until ctx is cancelled
// or the process receives SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("API server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.metrics.middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/health", s.handleHealth)
		r.Get("/data-types", s.handleDataTypes)

		// Summaries
		r.Post("/summaries", s.handleSummaries)
		r.Post("/summaries/{dataType}", s.handleSummary)

		// Synthesis hand-off
		r.Post("/synthesis", s.handleSynthesis)

		// Configuration
		r.Get("/config", s.handleGetConfig)
	})

	return r
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SummariesResponse is the data of POST /api/v1/summaries.
type SummariesResponse struct {
	Ticker    string             `json:"ticker,omitempty"`
	Summaries *models.SummaryMap `json:"summaries"`
}

// SummaryResponse is the data of POST /api/v1/summaries/{dataType}.
type SummaryResponse struct {
	Type    models.DataCategory `json:"type"`
	Summary models.Summary      `json:"summary"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"status":  "ok",
			"version": s.version,
			"uptime":  time.Since(s.started).Round(time.Second).String(),
			"time":    utils.FormatISO(time.Now()),
		},
	})
}

func (s *Server) handleDataTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data:    models.AllDataTypes(),
	})
}

// handleSummaries summarizes every entry of a multi-type envelope.
func (s *Server) handleSummaries(w http.ResponseWriter, r *http.Request) {
	env, ok := s.readEnvelope(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data: SummariesResponse{
			Ticker:    env.Ticker(),
			Summaries: s.collector.Collect(env),
		},
	})
}

// handleSummary summarizes a single raw payload whose data type is in the path.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	dt, ok := models.ParseDataType(chi.URLParam(r, "dataType"))
	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown data type: %s", chi.URLParam(r, "dataType")))
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	sum := s.dispatcher.Summarize(dt.String(), body, utils.NormalizeTicker(r.URL.Query().Get("ticker")))
	if sum == nil {
		writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("no %s summary could be produced from the payload", dt))
		return
	}

	writeJSON(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data:    SummaryResponse{Type: dt.Category(), Summary: sum},
	})
}

// handleSynthesis collects the summaries of an envelope and returns the
// synthesizer request with its rendered prompt. The question comes from the
// envelope metadata unless the question query parameter overrides it.
func (s *Server) handleSynthesis(w http.ResponseWriter, r *http.Request) {
	env, ok := s.readEnvelope(w, r)
	if !ok {
		return
	}

	question := r.URL.Query().Get("question")
	if question == "" {
		question = env.Question()
	}

	req, err := synthesis.NewRequest(question, s.collector.Collect(env))
	if err != nil {
		writeError(w, r, synthesisStatus(err), err.Error())
		return
	}
	prepared, err := req.Prepare()
	if err != nil {
		writeError(w, r, synthesisStatus(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data:    prepared,
	})
}

func synthesisStatus(err error) int {
	switch {
	case errors.Is(err, synthesis.ErrMissingQuestion):
		return http.StatusBadRequest
	case errors.Is(err, synthesis.ErrNoSummaries):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ============================================================
// Helpers
// ============================================================

// readBody reads the request body up to the configured limit, writing the
// error response itself when it fails.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	limit := s.cfg.API.MaxBodyBytes
	if limit <= 0 {
		limit = 10 << 20
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		writeError(w, r, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}
	if len(body) == 0 {
		writeError(w, r, http.StatusBadRequest, "request body is required")
		return nil, false
	}
	return body, true
}

func (s *Server) readEnvelope(w http.ResponseWriter, r *http.Request) (*models.Envelope, bool) {
	body, ok := s.readBody(w, r)
	if !ok {
		return nil, false
	}
	env, err := models.ParseEnvelope(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return env, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if status >= http.StatusInternalServerError {
		log.Error().Str("path", r.URL.Path).Int("status", status).Msg(msg)
	}
	writeJSON(w, r, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
