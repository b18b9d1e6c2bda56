package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cmsadmin/internal/defaultusers"
	"github.com/osse101/cmsadmin/internal/menu"
	"github.com/osse101/cmsadmin/internal/session"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	manager := session.NewManager()
	users := defaultusers.New()
	return NewServer(
		Options{Port: 0, APIKey: testAPIKey},
		Dependencies{
			Users:          users,
			Sessions:       session.NewHandler(manager, users, session.DefaultMaxInactive),
			SessionManager: manager,
		},
	)
}

func doRequest(t *testing.T, srv *Server, method, path string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authed {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("healthz is public", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/healthz", false)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("swagger document is public", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/swagger/doc.json", false)
		require.Equal(t, http.StatusOK, rec.Code)

		var doc struct {
			BasePath string                     `json:"basePath"`
			Paths    map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "/api/v1", doc.BasePath)
		assert.Contains(t, doc.Paths, "/sitemap/entry")
		assert.Contains(t, doc.Paths, "/datatypes/{extension}")
	})

	t.Run("api requires key", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/v1/menu/rules", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("menu rules", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/v1/menu/rules", true)
		require.Equal(t, http.StatusOK, rec.Code)

		var names []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
		assert.Equal(t, menu.RuleNames(), names)
	})

	t.Run("default users", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/v1/users/defaults", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_admin":"Admin"`)
	})

	t.Run("session list without trailing slash", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/v1/session", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("security headers on every response", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/v1/unknown", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/v1/menu/visibility", true)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, RedactedValue)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	handler := loggingMiddleware(okHandler())

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagates the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
	})

	t.Run("skips health checks", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Empty(t, rec.Header().Get(HeaderRequestID))
	})
}
