package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/cmsadmin/internal/datatypes"
	"github.com/osse101/cmsadmin/internal/domain"
	"github.com/osse101/cmsadmin/internal/logger"
)

// AddExtensionRequest is the body of POST /datatypes
type AddExtensionRequest struct {
	ResourceType string `json:"resource_type" validate:"required,max=64"`
	Extension    string `json:"extension" validate:"required,max=32"`
}

// ResolveResponse reports the resource type for a file name
type ResolveResponse struct {
	File         string `json:"file"`
	ResourceType string `json:"resource_type"`
}

// DatatypeHandlers serves the extension mapping administration
type DatatypeHandlers struct {
	service datatypes.Service
}

// NewDatatypeHandlers creates the datatype handlers
func NewDatatypeHandlers(service datatypes.Service) *DatatypeHandlers {
	return &DatatypeHandlers{service: service}
}

// HandleList returns the extensions grouped by resource type
// @Summary List extension mappings
// @Description Extensions grouped by resource type, in configured type order
// @Tags datatypes
// @Produce json
// @Success 200 {array} domain.ResourceTypeExtensions
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /datatypes [get]
func (h *DatatypeHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := h.service.List(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListDatatypesFailed, err)
			return
		}
		if groups == nil {
			groups = []domain.ResourceTypeExtensions{}
		}
		respondJSON(w, http.StatusOK, groups)
	}
}

// HandleAdd maps a new extension to a resource type
// @Summary Add extension mapping
// @Tags datatypes
// @Accept json
// @Produce json
// @Param request body AddExtensionRequest true "Resource type and extension"
// @Success 201 {object} DataResponse{data=domain.ExtensionMapping}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /datatypes [post]
func (h *DatatypeHandlers) HandleAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddExtensionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add extension"); err != nil {
			return
		}

		mapping, err := h.service.Add(r.Context(), req.ResourceType, req.Extension)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddExtensionFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgExtensionAdded, Data: mapping})
	}
}

// HandleRemove deletes the mapping of the {extension} path parameter
// @Summary Remove extension mapping
// @Tags datatypes
// @Param extension path string true "File extension"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /datatypes/{extension} [delete]
func (h *DatatypeHandlers) HandleRemove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ext := chi.URLParam(r, "extension")

		removed, err := h.service.Remove(r.Context(), ext)
		if err != nil {
			respondServiceError(w, r, ErrMsgRemoveExtensionFailed, err)
			return
		}
		if !removed {
			respondError(w, http.StatusNotFound, ErrMsgExtensionNotMapped)
			return
		}

		logger.FromContext(r.Context()).Info("Extension removed", "extension", ext)
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleResolve returns the resource type for ?file=
// @Summary Resolve resource type
// @Description Unmapped files resolve to plain
// @Tags datatypes
// @Produce json
// @Param file query string true "File name"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /datatypes/resolve [get]
func (h *DatatypeHandlers) HandleResolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := GetQueryParam(r, w, "file")
		if !ok {
			return
		}

		resourceType, err := h.service.ResourceTypeFor(r.Context(), file)
		if err != nil {
			respondServiceError(w, r, ErrMsgResolveExtensionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, ResolveResponse{File: file, ResourceType: resourceType})
	}
}

// HandleResourceTypes lists the configured resource types
// @Summary List resource types
// @Tags datatypes
// @Produce json
// @Success 200 {array} string
// @Security ApiKeyAuth
// @Router /datatypes/types [get]
func (h *DatatypeHandlers) HandleResourceTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.service.ResourceTypes())
	}
}
