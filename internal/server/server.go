// Package server provides the browser editor and JSON API of the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/types"
	rootschemas "github.com/jonathan/resume-builder/schemas"
)

// Exporter produces downloadable artifacts from a state snapshot.
type Exporter interface {
	Export(ctx context.Context, s types.FormState, mode export.Mode) (*export.Artifact, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	sessions     *SessionStore
	exporter     Exporter
	rateLimiter  *ratelimit.Limiter
	actionSchema *schemas.Schema
	stateSchema  *schemas.Schema
	verbose      bool
}

// Config holds server configuration
type Config struct {
	Port       int
	SessionTTL time.Duration
	Verbose    bool
	RateLimit  *ratelimit.Config // nil loads RATE_LIMIT_* from the environment
}

// New creates a new server instance
func New(cfg Config, exporter Exporter) *Server {
	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}

	sweep := cfg.SessionTTL / 4
	if sweep > 5*time.Minute {
		sweep = 5 * time.Minute
	}

	s := &Server{
		sessions:     NewSessionStore(cfg.SessionTTL, sweep),
		exporter:     exporter,
		rateLimiter:  ratelimit.NewLimiter(rlConfig),
		actionSchema: schemas.MustCompile(rootschemas.Action),
		stateSchema:  schemas.MustCompile(rootschemas.State),
		verbose:      cfg.Verbose,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleEditor)
	mux.HandleFunc("POST /editor", s.handleEditorSubmit)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /export/{mode}", s.handleExport)

	// JSON API
	mux.HandleFunc("POST /api/actions", s.handleAction)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/sections", s.handleSections)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", observability.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Exports wait for a browser slot
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler including middleware.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[SERVER] Editor listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("[SERVER] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	log.Println("[SERVER] Server stopped")
	return nil
}

// Close stops the background sweepers.
func (s *Server) Close() {
	s.rateLimiter.Stop()
	s.sessions.Stop()
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if s.verbose {
			log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		}
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
