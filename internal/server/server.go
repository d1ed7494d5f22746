// Package server provides the HTTP REST API for rendering and storing ATS resumes.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/db"
	"github.com/jonathan/ats-resume/internal/layout"
	"github.com/jonathan/ats-resume/internal/server/middleware"
	"github.com/jonathan/ats-resume/internal/server/ratelimit"
	"github.com/jonathan/ats-resume/internal/types"
)

// DefaultMaxBodyBytes caps request bodies carrying records.
const DefaultMaxBodyBytes = 4 << 20

// Store is the persistence the /resumes routes need. *db.DB implements it.
type Store interface {
	Ping(ctx context.Context) error
	CreateResume(ctx context.Context, label string, records []types.Record) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, limit int) ([]db.Resume, error)
	GetRecords(ctx context.Context, id uuid.UUID) ([]types.Record, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
	SaveRender(ctx context.Context, resumeID uuid.UUID, pdf []byte, stats layout.Stats) (uuid.UUID, error)
	GetLatestRender(ctx context.Context, resumeID uuid.UUID) (*db.Render, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	store        Store
	closeStore   func()
	rateLimiter  *ratelimit.Limiter
	jwtService   *JWTService
	layout       layout.Config
	maxBodyBytes int64
	logger       *log.Logger
}

// Config holds server configuration
type Config struct {
	Port int
	// DatabaseURL is optional; without it only /health and /render are served.
	DatabaseURL string
	Layout      layout.Config
	// MaxBodyBytes caps request bodies; zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	Logger       *log.Logger
	// RateLimit defaults to ratelimit.LoadConfig().
	RateLimit *ratelimit.Config
}

// New creates a new server instance, connecting to the database when one is configured.
func New(cfg Config) (*Server, error) {
	if cfg.DatabaseURL == "" {
		return NewWithStore(cfg, nil)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	s, err := NewWithStore(cfg, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	s.closeStore = database.Close
	return s, nil
}

// NewWithStore creates a server backed by store, which may be nil.
// API tokens are required on /resumes when JWT_SECRET is set.
func NewWithStore(cfg Config, store Store) (*Server, error) {
	if cfg.Layout == (layout.Config{}) {
		cfg.Layout = layout.DefaultConfig()
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = ratelimit.LoadConfig()
	}

	s := &Server{
		store:        store,
		closeStore:   func() {},
		layout:       cfg.Layout,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       cfg.Logger,
		rateLimiter:  ratelimit.NewLimiter(cfg.RateLimit),
	}

	if os.Getenv("JWT_SECRET") != "" {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			s.rateLimiter.Stop()
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /render", s.handleRender)

	if store != nil {
		mux.Handle("POST /resumes", s.protect(s.handleCreateResume))
		mux.Handle("GET /resumes", s.protect(s.handleListResumes))
		mux.Handle("GET /resumes/{id}", s.protect(s.handleGetResume))
		mux.Handle("DELETE /resumes/{id}", s.protect(s.handleDeleteResume))
		mux.Handle("GET /resumes/{id}/pdf", s.protect(s.handleResumePDF))
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the server's root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr, "database", s.store != nil, "auth", s.jwtService != nil)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.shutdown()
		return fmt.Errorf("server error: %w", err)
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.shutdown()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) shutdown() {
	s.rateLimiter.Stop()
	s.closeStore()
}

// protect requires an API token when token auth is enabled.
func (s *Server) protect(h http.HandlerFunc) http.Handler {
	if s.jwtService == nil {
		return h
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Resume-Pages, X-Resume-Warnings")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
			"remote", r.RemoteAddr,
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "disabled"}
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.logger.Warn("database ping failed", "err", err)
			status["status"] = "degraded"
			status["database"] = "unavailable"
		} else {
			status["database"] = "ok"
		}
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", "err", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleError maps err to a status; internal errors are logged and not echoed.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID uses the IP from RemoteAddr. Proxy headers are not trusted.
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
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded", "client", s.extractClientID(r), "path", r.URL.Path, "limit", info.Limit)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
