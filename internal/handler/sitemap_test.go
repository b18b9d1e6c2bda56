package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cmsadmin/internal/domain"
)

func TestHandleGetEntry(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockSitemapService)
		svc.On("GetSitemapEntry", mock.Anything, "/news/").Return(&domain.SitemapEntry{
			ID: "e1", Name: "news", Title: "News", SitePath: "/news/", ParentPath: "/", HasChildren: true,
		}, nil)

		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleGetEntry().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sitemap/entry?root=/news/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.SitemapEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "News", got.Title)
		assert.True(t, got.HasChildren)
		svc.AssertExpectations(t)
	})

	t.Run("Defaults To Root", func(t *testing.T) {
		svc := new(MockSitemapService)
		svc.On("GetSitemapEntry", mock.Anything, "/").Return(&domain.SitemapEntry{SitePath: "/"}, nil)

		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleGetEntry().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sitemap/entry", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := new(MockSitemapService)
		notFound := fmt.Errorf("failed: %w", domain.WrapError(domain.CodeNotFound, "no entry", errors.New("no rows")))
		svc.On("GetSitemapEntry", mock.Anything, "/missing/").Return(nil, notFound)

		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleGetEntry().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sitemap/entry?root=/missing/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"`+ErrMsgNotFoundError+`","code":"NOT_FOUND"}`, w.Body.String())
	})
}

func TestHandleGetChildren(t *testing.T) {
	t.Run("Empty List Is Array", func(t *testing.T) {
		svc := new(MockSitemapService)
		svc.On("GetSitemapChildren", mock.Anything, "/leaf/").Return(nil, nil)

		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleGetChildren().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sitemap/children?root=/leaf/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("Ordered Children", func(t *testing.T) {
		svc := new(MockSitemapService)
		svc.On("GetSitemapChildren", mock.Anything, "/").Return([]domain.SitemapEntry{
			{Name: "about", Position: 1}, {Name: "news", Position: 2},
		}, nil)

		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleGetChildren().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sitemap/children?root=/", nil))

		var got []domain.SitemapEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "about", got[0].Name)
	})

	t.Run("Database Error", func(t *testing.T) {
		svc := new(MockSitemapService)
		svc.On("GetSitemapChildren", mock.Anything, "/").Return(nil, domain.WrapError(domain.CodeDatabaseError, "query failed", errors.New("conn reset")))

		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleGetChildren().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/sitemap/children?root=/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "conn reset")
		assert.Contains(t, w.Body.String(), `"code":"DATABASE_ERROR"`)
	})
}

func TestHandleSaveEntry(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockSitemapService)
		svc.On("SaveEntry", mock.Anything, domain.SitemapEntry{SitePath: "/news/", Title: "News", Position: 2}).
			Return(&domain.SitemapEntry{ID: "e1", SitePath: "/news/", Name: "news", ParentPath: "/", Title: "News", Position: 2}, nil)

		body := `{"site_path":"/news/","title":"News","position":2}`
		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleSaveEntry().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/sitemap/entry", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"e1"`)
		svc.AssertExpectations(t)
	})

	t.Run("Validation Error", func(t *testing.T) {
		svc := new(MockSitemapService)

		body := `{"site_path":"news","position":-1}`
		w := httptest.NewRecorder()
		NewSitemapHandlers(svc).HandleSaveEntry().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/sitemap/entry", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "sitepath")
		assert.Contains(t, resp.Fields, "position")
		svc.AssertNotCalled(t, "SaveEntry", mock.Anything, mock.Anything)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewSitemapHandlers(new(MockSitemapService)).HandleSaveEntry().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/sitemap/entry", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}
