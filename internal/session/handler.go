package session

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/defaultusers"
	"github.com/osse101/cmsadmin/internal/logger"
)

// RequestContext is the per request state of an authenticated user.
type RequestContext struct {
	UserName   string       `json:"user_name"`
	Project    string       `json:"project"`
	SiteRoot   string       `json:"site_root"`
	URI        string       `json:"uri"`
	RemoteAddr string       `json:"remote_addr"`
	Locale     language.Tag `json:"locale"`
}

// Handler registers sessions for authorized requests.
type Handler struct {
	manager     *Manager
	users       *defaultusers.Registry
	matcher     language.Matcher
	supported   []language.Tag
	maxInactive time.Duration
}

// NewHandler creates a handler. The first supported locale is the fallback for
// requests without a usable Accept-Language header.
func NewHandler(manager *Manager, users *defaultusers.Registry, maxInactive time.Duration, supported ...language.Tag) *Handler {
	if maxInactive <= 0 {
		maxInactive = DefaultMaxInactive
	}
	if len(supported) == 0 {
		supported = []language.Tag{language.English}
	}
	return &Handler{
		manager:     manager,
		users:       users,
		matcher:     language.NewMatcher(supported),
		supported:   supported,
		maxInactive: maxInactive,
	}
}

// RegisterSession updates rc from r and, unless the user is the guest or the
// export user, registers a new session for it. The returned info is nil when no
// session was registered.
func (h *Handler) RegisterSession(r *http.Request, rc RequestContext) (RequestContext, *Info) {
	rc = h.updateContext(r, rc)

	if rc.UserName == "" || h.users.IsUserGuest(rc.UserName) || h.users.IsUserExport(rc.UserName) {
		logger.FromContext(r.Context()).Debug(LogMsgSessionSkipped, "user", rc.UserName)
		return rc, nil
	}

	now := h.manager.now()
	info := &Info{
		ID:           uuid.New(),
		UserName:     rc.UserName,
		Project:      rc.Project,
		SiteRoot:     rc.SiteRoot,
		Locale:       rc.Locale,
		RemoteAddr:   rc.RemoteAddr,
		MaxInactive:  h.maxInactive,
		Created:      now,
		LastActivity: now,
	}
	h.manager.Add(info)

	logger.FromContext(r.Context()).Info(LogMsgSessionRegistered,
		slog.String("session_id", info.ID.String()),
		slog.String("user", info.UserName))
	return rc, info
}

func (h *Handler) updateContext(r *http.Request, rc RequestContext) RequestContext {
	rc.URI = r.URL.RequestURI()
	rc.RemoteAddr = remoteHost(r.RemoteAddr)
	rc.Locale = h.locale(r, rc.Locale)
	return rc
}

// locale picks the best supported match for Accept-Language, keeping current when the header is absent.
func (h *Handler) locale(r *http.Request, current language.Tag) language.Tag {
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		if current != language.Und {
			return current
		}
		return h.supported[0]
	}
	_, idx := language.MatchStrings(h.matcher, accept)
	return h.supported[idx]
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
