package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/cmsadmin/internal/domain"
	"github.com/osse101/cmsadmin/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and sends the mapped status, message and code
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondJSON(w, status, ErrorResponse{Error: message, Code: string(domain.CodeOf(err))})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgNotFoundError         = "Resource not found."
	ErrMsgBadNameError          = "The name contains invalid characters or is empty"
	ErrMsgDuplicateExtensionErr = "That extension is already mapped to a resource type"
	ErrMsgUnknownResourceTypeEr = "Unknown resource type"
	ErrMsgMalformedXMLError     = "The XML document could not be parsed"
	ErrMsgUnknownPoolError      = "Unknown connection pool"
	ErrMsgUnknownRuleError      = "Unknown menu rule"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgNamesEmptyError       = "User and group names must not be empty"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// that do not leak internal details.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch domain.CodeOf(err) {
	case domain.CodeNotFound:
		return http.StatusNotFound, ErrMsgNotFoundError
	case domain.CodeBadName:
		return http.StatusBadRequest, ErrMsgBadNameError
	case domain.CodeDuplicateExtension:
		return http.StatusConflict, ErrMsgDuplicateExtensionErr
	case domain.CodeUnknownResourceType:
		return http.StatusBadRequest, ErrMsgUnknownResourceTypeEr
	case domain.CodeMalformedXML:
		return http.StatusBadRequest, ErrMsgMalformedXMLError
	case domain.CodeUnknownPool:
		return http.StatusNotFound, ErrMsgUnknownPoolError
	case domain.CodeUnknownRule:
		return http.StatusBadRequest, ErrMsgUnknownRuleError
	case domain.CodeInvalidInput:
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case domain.CodeUserGroupNamesEmpty:
		return http.StatusInternalServerError, ErrMsgNamesEmptyError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
