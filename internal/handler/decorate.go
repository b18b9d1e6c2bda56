package handler

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/decorator"
)

// DecorateRequest is the body of POST /decorate
type DecorateRequest struct {
	Content string `json:"content" validate:"required"`
	Locale  string `json:"locale" validate:"locale"`
}

// DecorateResponse carries the decorated HTML
type DecorateResponse struct {
	Content string `json:"content"`
}

// DecoratorProvider hands out decorators per locale
type DecoratorProvider interface {
	Decorator(locale language.Tag) (*decorator.Decorator, error)
	Purge()
}

// HandleDecorate decorates the posted HTML with the configured decoration maps
// @Summary Decorate HTML
// @Description Wraps known words in text nodes using the decoration maps for the locale
// @Tags decorate
// @Accept json
// @Produce json
// @Param request body DecorateRequest true "HTML content and locale"
// @Success 200 {object} DecorateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /decorate [post]
func HandleDecorate(provider DecoratorProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DecorateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Decorate"); err != nil {
			return
		}

		locale, err := parseLocale(req.Locale)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLocale)
			return
		}

		d, err := provider.Decorator(locale)
		if err != nil {
			respondServiceError(w, r, ErrMsgDecorateFailed, err)
			return
		}

		out, err := d.Decorate(req.Content)
		if err != nil {
			respondServiceError(w, r, ErrMsgDecorateFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DecorateResponse{Content: out})
	}
}

// HandleReloadDecorations drops cached decoration configurations
// @Summary Reload decorations
// @Tags decorate
// @Produce json
// @Success 200 {object} SuccessResponse
// @Security ApiKeyAuth
// @Router /decorate/reload [post]
func HandleReloadDecorations(provider DecoratorProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider.Purge()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDecoratorCachePurged})
	}
}
