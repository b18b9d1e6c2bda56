package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/defaultusers"
	"github.com/osse101/cmsadmin/internal/session"
)

func newSessionHandlers() (*SessionHandlers, *session.Manager) {
	m := session.NewManager()
	h := session.NewHandler(m, defaultusers.New(), time.Hour, language.English)
	return NewSessionHandlers(h, m), m
}

func TestSessionHandlers_Register(t *testing.T) {
	h, m := newSessionHandlers()

	req := httptest.NewRequest("POST", "/api/v1/session/register", strings.NewReader(`{"user_name":"jane","project":"Offline","site_root":"/sites/default"}`))
	req.RemoteAddr = "192.0.2.10:5555"
	w := httptest.NewRecorder()
	h.HandleRegister().ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RegisterSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, MsgSessionRegistered, resp.Message)
	assert.Equal(t, "192.0.2.10", resp.Context.RemoteAddr)
	assert.Equal(t, "/api/v1/session/register", resp.Context.URI)
	require.NotNil(t, resp.Session)
	assert.Equal(t, "jane", resp.Session.UserName)
	assert.Equal(t, 1, m.Count())
}

func TestSessionHandlers_RegisterGuest(t *testing.T) {
	h, m := newSessionHandlers()

	w := httptest.NewRecorder()
	h.HandleRegister().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/session/register", strings.NewReader(`{"user_name":"Guest"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgSessionNotRegistered)
	assert.NotContains(t, w.Body.String(), `"session"`)
	assert.Equal(t, 0, m.Count())
}

func TestSessionHandlers_RegisterValidation(t *testing.T) {
	h, _ := newSessionHandlers()

	w := httptest.NewRecorder()
	h.HandleRegister().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/session/register", strings.NewReader(`{"user_name":"jane","site_root":"sites"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionHandlers_List(t *testing.T) {
	h, _ := newSessionHandlers()
	for _, user := range []string{"jane", "john", "jane"} {
		w := httptest.NewRecorder()
		h.HandleRegister().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/session/register", strings.NewReader(`{"user_name":"`+user+`"}`)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var all []session.Info
	w := httptest.NewRecorder()
	h.HandleList().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/session", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	var jane []session.Info
	w = httptest.NewRecorder()
	h.HandleList().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/session?user=jane", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jane))
	assert.Len(t, jane, 2)

	w = httptest.NewRecorder()
	h.HandleList().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/session?user=nobody", nil))
	assert.Equal(t, "[]\n", w.Body.String())
}
