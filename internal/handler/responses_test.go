package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/cmsadmin/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgNotFoundError},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.WrapError(domain.CodeNotFound, "x", errors.New("no rows"))), http.StatusNotFound, ErrMsgNotFoundError},
		{"bad name", fmt.Errorf("%w: a b", domain.ErrBadName), http.StatusBadRequest, ErrMsgBadNameError},
		{"duplicate", domain.ErrDuplicateExtension, http.StatusConflict, ErrMsgDuplicateExtensionErr},
		{"unknown type", domain.ErrUnknownResourceType, http.StatusBadRequest, ErrMsgUnknownResourceTypeEr},
		{"malformed", domain.ErrMalformedXML, http.StatusBadRequest, ErrMsgMalformedXMLError},
		{"unknown pool", domain.ErrUnknownPool, http.StatusNotFound, ErrMsgUnknownPoolError},
		{"unknown rule", domain.ErrUnknownRule, http.StatusBadRequest, ErrMsgUnknownRuleError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"database", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"plain error hides detail", errors.New("pq: password authentication failed"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
