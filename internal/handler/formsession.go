package handler

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/formsession"
)

// FormValuesRequest is the body of POST /formsession/values
type FormValuesRequest struct {
	Content string `json:"content" validate:"required"`
	Locale  string `json:"locale" validate:"required,locale"`
}

// FormValuesResponse maps indexed element paths to values
type FormValuesResponse struct {
	Locale string            `json:"locale"`
	Values map[string]string `json:"values"`
}

// HandleFormValues extracts the editable values of the posted XML content
// @Summary Extract content values
// @Description Flattens the locale block of an XML content document into indexed paths
// @Tags formsession
// @Accept json
// @Produce json
// @Param request body FormValuesRequest true "XML content and locale"
// @Success 200 {object} FormValuesResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /formsession/values [post]
func HandleFormValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FormValuesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Form values"); err != nil {
			return
		}

		locale, err := language.Parse(req.Locale)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLocale)
			return
		}

		values, err := formsession.Values([]byte(req.Content), locale)
		if err != nil {
			respondServiceError(w, r, ErrMsgExtractValuesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, FormValuesResponse{Locale: locale.String(), Values: values})
	}
}
