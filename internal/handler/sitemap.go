package handler

import (
	"net/http"

	"github.com/osse101/cmsadmin/internal/domain"
	"github.com/osse101/cmsadmin/internal/logger"
	"github.com/osse101/cmsadmin/internal/sitemap"
)

// SaveSitemapEntryRequest is the body of POST /sitemap/entry
type SaveSitemapEntryRequest struct {
	SitePath   string            `json:"site_path" validate:"required,sitepath,max=1024"`
	Name       string            `json:"name" validate:"max=255,excludesall=/\x00"`
	Title      string            `json:"title" validate:"max=1024"`
	Position   int               `json:"position" validate:"min=0"`
	Properties map[string]string `json:"properties"`
}

// SitemapHandlers serves the sitemap RPC
type SitemapHandlers struct {
	service sitemap.Service
}

// NewSitemapHandlers creates the sitemap handlers
func NewSitemapHandlers(service sitemap.Service) *SitemapHandlers {
	return &SitemapHandlers{service: service}
}

// HandleGetEntry returns the entry at ?root= (default "/")
// @Summary Get sitemap entry
// @Tags sitemap
// @Produce json
// @Param root query string false "Site relative path" default(/)
// @Success 200 {object} domain.SitemapEntry
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /sitemap/entry [get]
func (h *SitemapHandlers) HandleGetEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		root := GetOptionalQueryParam(r, "root", "/")

		entry, err := h.service.GetSitemapEntry(r.Context(), root)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSitemapEntryFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleGetChildren returns the ordered children of ?root= (default "/")
// @Summary Get sitemap children
// @Tags sitemap
// @Produce json
// @Param root query string false "Site relative path" default(/)
// @Success 200 {array} domain.SitemapEntry
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /sitemap/children [get]
func (h *SitemapHandlers) HandleGetChildren() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		root := GetOptionalQueryParam(r, "root", "/")

		children, err := h.service.GetSitemapChildren(r.Context(), root)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSitemapChildrenFailed, err)
			return
		}
		if children == nil {
			children = []domain.SitemapEntry{}
		}
		respondJSON(w, http.StatusOK, children)
	}
}

// HandleSaveEntry creates or updates an entry
// @Summary Save sitemap entry
// @Tags sitemap
// @Accept json
// @Produce json
// @Param request body SaveSitemapEntryRequest true "Entry"
// @Success 200 {object} DataResponse{data=domain.SitemapEntry}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /sitemap/entry [post]
func (h *SitemapHandlers) HandleSaveEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveSitemapEntryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save sitemap entry"); err != nil {
			return
		}

		saved, err := h.service.SaveEntry(r.Context(), domain.SitemapEntry{
			SitePath:   req.SitePath,
			Name:       req.Name,
			Title:      req.Title,
			Position:   req.Position,
			Properties: req.Properties,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSaveSitemapEntryFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgSitemapEntrySaved, "path", saved.SitePath)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgSitemapEntrySaved, Data: saved})
	}
}
