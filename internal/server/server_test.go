package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/portfolio-builder/internal/config"
	"github.com/jonathan/portfolio-builder/internal/engine"
	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/llm"
	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/server/ratelimit"
	"github.com/jonathan/portfolio-builder/internal/session"
	"github.com/jonathan/portfolio-builder/internal/state"
	"github.com/jonathan/portfolio-builder/internal/storage"
	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

type testEnv struct {
	server   *Server
	handler  http.Handler
	sessions *session.Manager
	store    *MemoryStore
	objects  *storage.Memory
	jwt      *JWTService
	users    *UserService
}

type fakeBio struct {
	text string
	err  error
}

func (f *fakeBio) Generate(_ context.Context, _ llm.BioRequest) (string, error) {
	return f.text, f.err
}

func newTestEnv(t *testing.T, configure ...func(*Deps, *session.Options)) *testEnv {
	t.Helper()

	eng, err := engine.New(templates.MustBuiltinRegistry())
	require.NoError(t, err)

	passwords := &config.PasswordConfig{BcryptCost: bcrypt.MinCost}
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	store := NewMemoryStore()
	objects := storage.NewMemory()

	deps := Deps{
		Engine:    eng,
		Users:     store,
		Exports:   store,
		Storage:   objects,
		JWT:       jwtService,
		Passwords: passwords,
		Limiter:   ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
	sessionOpts := session.Options{}
	for _, fn := range configure {
		fn(&deps, &sessionOpts)
	}
	deps.Sessions = session.NewManager(sessionOpts)

	srv, err := New(deps)
	require.NoError(t, err)
	t.Cleanup(func() {
		deps.Sessions.Wait()
		deps.Limiter.Stop()
	})

	return &testEnv{
		server:   srv,
		handler:  srv.Handler(),
		sessions: deps.Sessions,
		store:    store,
		objects:  objects,
		jwt:      jwtService,
		users:    NewUserService(store, passwords),
	}
}

// do sends a request through the full middleware chain. body may be nil, a
// string or any JSON-encodable value.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.1:1234"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// signIn registers a user and returns a token for them
func (e *testEnv) signIn(t *testing.T, email string) string {
	t.Helper()
	user, err := e.users.Register(context.Background(), &types.CreateUserRequest{
		Name: "Test User", Email: email, Password: "password123",
	})
	require.NoError(t, err)
	token, err := e.jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return token
}

// createSession creates a seeded session and returns its id
func (e *testEnv) createSession(t *testing.T, token string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/sessions", nil, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeSession(t, rec).ID
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) sessionResponse {
	t.Helper()
	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(Deps{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestListTemplates(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/templates", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Templates []types.TemplateInfo `json:"templates"`
		Default   string               `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, templates.DefaultID, body.Default)
	assert.Len(t, body.Templates, len(templates.Builtin()))
}

func TestCORS_Preflight(t *testing.T) {
	env := newTestEnv(t, func(d *Deps, _ *session.Options) {
		d.AllowedOrigins = []string{"https://app.example.com"}
	})

	rec := env.do(t, http.MethodOptions, "/sessions", nil, "", "Origin", "https://app.example.com")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")

	rec = env.do(t, http.MethodOptions, "/sessions", nil, "", "Origin", "https://evil.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_Exceeded(t *testing.T) {
	env := newTestEnv(t, func(d *Deps, _ *session.Options) {
		d.Limiter = ratelimit.NewLimiter(&ratelimit.Config{
			Enabled: true,
			EndpointConfigs: []ratelimit.EndpointConfig{
				{Path: "/sessions", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
			},
		})
	})

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/sessions", nil, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := env.do(t, http.MethodPost, "/sessions", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decodeError(t, rec))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"bad credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"forbidden", &ErrForbidden{}, http.StatusForbidden},
		{"request validation", &ErrValidation{Field: "body", Message: "bad"}, http.StatusBadRequest},
		{"unknown item", &state.NotFoundError{Kind: "project", ID: "x"}, http.StatusNotFound},
		{"duplicate item", &state.DuplicateIDError{Kind: "skill", ID: "x"}, http.StatusConflict},
		{"invalid state", &state.ValidationError{Action: "add_skill", Cause: errors.New("bad level")}, http.StatusBadRequest},
		{"schema", &schemas.ValidationError{}, http.StatusBadRequest},
		{"unknown session", session.ErrNotFound, http.StatusNotFound},
		{"wrapped unknown session", fmt.Errorf("load: %w", session.ErrNotFound), http.StatusNotFound},
		{"bio busy", session.ErrBioInProgress, http.StatusConflict},
		{"bio input", llm.ErrEmptyInput, http.StatusBadRequest},
		{"bio provider", &llm.GenerationError{Message: "down"}, http.StatusServiceUnavailable},
		{"unknown template", &templates.UnknownTemplateError{ID: "x"}, http.StatusNotFound},
		{"packaging", &export.PackagingError{Stage: export.StageCompress, Message: "zip"}, http.StatusInternalServerError},
		{"missing object", storage.ErrNotFound, http.StatusNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestFail_HidesInternalErrors(t *testing.T) {
	env := newTestEnv(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	env.server.fail(rec, req, errors.New("connection refused to 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec))
}
