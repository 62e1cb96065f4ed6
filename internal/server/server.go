package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/config"
	"github.com/jonathan/portfolio-builder/internal/engine"
	"github.com/jonathan/portfolio-builder/internal/logging"
	"github.com/jonathan/portfolio-builder/internal/server/middleware"
	"github.com/jonathan/portfolio-builder/internal/server/ratelimit"
	"github.com/jonathan/portfolio-builder/internal/session"
	"github.com/jonathan/portfolio-builder/internal/storage"
)

// Deps are the collaborators the server is built from. Engine, Sessions, JWT
// and Passwords are required; the rest have in-memory defaults.
type Deps struct {
	Engine    *engine.Engine
	Sessions  *session.Manager
	Users     UserStore
	Exports   ExportStore
	Storage   storage.Store
	JWT       *JWTService
	Passwords *config.PasswordConfig
	Limiter   *ratelimit.Limiter
	Logger    *zap.Logger

	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
	// PresignTTL bounds presigned export download links.
	PresignTTL    time.Duration
	SecureCookies bool
}

// Server represents the HTTP server
type Server struct {
	engine      *engine.Engine
	sessions    *session.Manager
	exports     ExportStore
	storage     storage.Store
	jwtService  *JWTService
	rateLimiter *ratelimit.Limiter
	logger      *zap.Logger
	authHandler *AuthHandler

	allowedOrigins []string
	presignTTL     time.Duration
	upgrader       websocket.Upgrader
	handler        http.Handler
}

// New builds the server and its routes
func New(d Deps) (*Server, error) {
	switch {
	case d.Engine == nil:
		return nil, errors.New("server: engine is required")
	case d.Sessions == nil:
		return nil, errors.New("server: session manager is required")
	case d.JWT == nil:
		return nil, errors.New("server: JWT service is required")
	case d.Passwords == nil:
		return nil, errors.New("server: password config is required")
	}

	mem := NewMemoryStore()
	if d.Users == nil {
		d.Users = mem
	}
	if d.Exports == nil {
		d.Exports = mem
	}
	if d.Storage == nil {
		d.Storage = storage.NewMemory()
	}
	if d.Limiter == nil {
		d.Limiter = ratelimit.NewLimiter(nil)
	}
	if d.PresignTTL <= 0 {
		d.PresignTTL = 15 * time.Minute
	}
	if len(d.AllowedOrigins) == 0 {
		d.AllowedOrigins = []string{"*"}
	}

	authHandler := NewAuthHandler(NewUserService(d.Users, d.Passwords), d.JWT)
	authHandler.secureCookie = d.SecureCookies

	s := &Server{
		engine:         d.Engine,
		sessions:       d.Sessions,
		exports:        d.Exports,
		storage:        d.Storage,
		jwtService:     d.JWT,
		rateLimiter:    d.Limiter,
		logger:         logging.OrNop(d.Logger),
		authHandler:    authHandler,
		allowedOrigins: d.AllowedOrigins,
		presignTTL:     d.PresignTTL,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}

	requireAuth := middleware.AuthMiddleware(d.JWT.AsTokenValidator())
	authed := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /schemas/portfolio", s.handlePortfolioSchema)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)
	mux.Handle("GET /auth/me", authed(authHandler.Me))
	mux.Handle("PUT /auth/password", authed(authHandler.UpdatePassword))

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.Handle("GET /sessions", authed(s.handleListSessions))
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("PUT /sessions/{id}", s.handleImportSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	mux.HandleFunc("PUT /sessions/{id}/template", s.handleSelectTemplate)
	mux.HandleFunc("PATCH /sessions/{id}/user", s.handleUpdateUser)
	mux.HandleFunc("PUT /sessions/{id}/projects", s.handleReplaceProjects)
	mux.HandleFunc("POST /sessions/{id}/projects", s.handleAddProject)
	mux.HandleFunc("PATCH /sessions/{id}/projects/{itemID}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /sessions/{id}/projects/{itemID}", s.handleRemoveProject)
	mux.HandleFunc("PUT /sessions/{id}/experience", s.handleReplaceExperience)
	mux.HandleFunc("POST /sessions/{id}/experience", s.handleAddExperience)
	mux.HandleFunc("PATCH /sessions/{id}/experience/{itemID}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /sessions/{id}/experience/{itemID}", s.handleRemoveExperience)
	mux.HandleFunc("PUT /sessions/{id}/education", s.handleReplaceEducation)
	mux.HandleFunc("POST /sessions/{id}/education", s.handleAddEducation)
	mux.HandleFunc("DELETE /sessions/{id}/education/{itemID}", s.handleRemoveEducation)
	mux.HandleFunc("PUT /sessions/{id}/skills", s.handleReplaceSkills)
	mux.HandleFunc("POST /sessions/{id}/skills", s.handleAddSkill)
	mux.HandleFunc("DELETE /sessions/{id}/skills/{itemID}", s.handleRemoveSkill)
	mux.HandleFunc("PATCH /sessions/{id}/design", s.handleUpdateDesign)
	mux.HandleFunc("POST /sessions/{id}/reset", s.handleReset)

	mux.HandleFunc("GET /sessions/{id}/preview", s.handlePreview)
	mux.HandleFunc("GET /sessions/{id}/preview/tree", s.handlePreviewTree)
	mux.HandleFunc("GET /sessions/{id}/live", s.handleLive)

	mux.Handle("GET /sessions/{id}/export", authed(s.handleExportZip))
	mux.Handle("POST /sessions/{id}/exports", authed(s.handleCreateExport))
	mux.Handle("GET /sessions/{id}/exports", authed(s.handleListExports))
	mux.Handle("GET /exports/{exportID}", authed(s.handleDownloadExport))

	mux.HandleFunc("POST /sessions/{id}/bio", s.handleGenerateBio)
	mux.HandleFunc("GET /sessions/{id}/bio", s.handleBioStatus)

	optionalAuth := middleware.OptionalAuth(d.JWT.AsTokenValidator())
	s.handler = s.withRateLimit(s.withLogging(s.withCORS(optionalAuth(mux))))
	return s, nil
}

// Handler returns the root handler with the middleware chain applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := httpServer.Shutdown(shutdownCtx)

	s.rateLimiter.Stop()
	s.sessions.Wait()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers for allowed origins
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case slices.Contains(s.allowedOrigins, "*"):
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(s.allowedOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "X-Template-Requested, X-Template-Used, X-Template-Fallback")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkOrigin admits websocket upgrades from same-origin pages and allowed origins
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || slices.Contains(s.allowedOrigins, "*") {
		return true
	}
	return slices.Contains(s.allowedOrigins, origin)
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logs. It forwards
// Flush and Hijack so SSE and websocket handlers keep working.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijacking not supported")
	}
	if r.status == 0 {
		r.status = http.StatusSwitchingProtocols
	}
	return h.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// withLogging logs one line per request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"templates": s.engine.ListTemplates(),
		"default":   s.engine.Registry().DefaultID(),
	})
}

// fail maps err to a status and writes it. Server errors are logged and their
// detail is not sent to the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		errorResponse(w, status, http.StatusText(status))
		return
	}
	errorResponse(w, status, err.Error())
}

// jsonResponse writes a JSON response
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse writes an error JSON response
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID uses the IP address from RemoteAddr.
// X-Forwarded-For is not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
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
		retry := int(info.RetryAfter.Seconds() + 0.999)
		response["retry_after"] = retry
		w.Header().Set("Retry-After", strconv.Itoa(retry))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit))
	jsonResponse(w, http.StatusTooManyRequests, response)
}
