package handler

import (
	"net/http"

	"github.com/osse101/cmsadmin/internal/session"
)

// RegisterSessionRequest is the body of POST /session/register
type RegisterSessionRequest struct {
	UserName string `json:"user_name" validate:"required,max=255,excludesall=\x00\n\r\t"`
	Project  string `json:"project" validate:"max=255"`
	SiteRoot string `json:"site_root" validate:"sitepath,max=1024"`
}

// RegisterSessionResponse returns the updated request context and the session, if one was registered
type RegisterSessionResponse struct {
	Message string                 `json:"message"`
	Context session.RequestContext `json:"context"`
	Session *session.Info          `json:"session,omitempty"`
}

// SessionHandlers serves session registration and listing
type SessionHandlers struct {
	handler *session.Handler
	manager *session.Manager
}

// NewSessionHandlers creates the session handlers
func NewSessionHandlers(handler *session.Handler, manager *session.Manager) *SessionHandlers {
	return &SessionHandlers{handler: handler, manager: manager}
}

// HandleRegister registers a session for the posted user unless it is a guest or the export user
// @Summary Register session
// @Tags session
// @Accept json
// @Produce json
// @Param request body RegisterSessionRequest true "Session details"
// @Param Accept-Language header string false "Preferred locales"
// @Success 201 {object} RegisterSessionResponse
// @Success 200 {object} RegisterSessionResponse "Guest or export user, nothing registered"
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /session/register [post]
func (h *SessionHandlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register session"); err != nil {
			return
		}

		rc, info := h.handler.RegisterSession(r, session.RequestContext{
			UserName: req.UserName,
			Project:  req.Project,
			SiteRoot: req.SiteRoot,
		})

		if info == nil {
			respondJSON(w, http.StatusOK, RegisterSessionResponse{Message: MsgSessionNotRegistered, Context: rc})
			return
		}
		respondJSON(w, http.StatusCreated, RegisterSessionResponse{Message: MsgSessionRegistered, Context: rc, Session: info})
	}
}

// HandleList lists sessions, optionally filtered by ?user=
// @Summary List sessions
// @Tags session
// @Produce json
// @Param user query string false "Only sessions of this user"
// @Success 200 {array} session.Info
// @Security ApiKeyAuth
// @Router /session [get]
func (h *SessionHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var infos []session.Info
		if user := GetOptionalQueryParam(r, "user", ""); user != "" {
			infos = h.manager.ForUser(user)
		} else {
			infos = h.manager.All()
		}
		if infos == nil {
			infos = []session.Info{}
		}
		respondJSON(w, http.StatusOK, infos)
	}
}
