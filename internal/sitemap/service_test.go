package sitemap

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cmsadmin/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetEntryByPath(ctx context.Context, sitePath string) (*domain.SitemapEntry, error) {
	args := m.Called(ctx, sitePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SitemapEntry), args.Error(1)
}

func (m *MockRepository) GetChildren(ctx context.Context, parentPath string) ([]domain.SitemapEntry, error) {
	args := m.Called(ctx, parentPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SitemapEntry), args.Error(1)
}

func (m *MockRepository) UpsertEntry(ctx context.Context, entry *domain.SitemapEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func notFound(path string) error {
	return domain.WrapError(domain.CodeNotFound, "failed to get sitemap entry", fmt.Errorf("no rows for %s", path))
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"  ", "/"},
		{"news", "/news/"},
		{"/news", "/news/"},
		{"/news/", "/news/"},
		{"news/2026", "/news/2026/"},
		{"/news//2026/", "/news/2026/"},
		{"/../etc", "/etc/"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestParentPath(t *testing.T) {
	assert.Equal(t, "", ParentPath("/"))
	assert.Equal(t, "/", ParentPath("/news/"))
	assert.Equal(t, "/news/", ParentPath("/news/2026/"))
}

func TestGetSitemapEntry_CachesResult(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	entry := &domain.SitemapEntry{ID: "1", Name: "news", SitePath: "/news/"}
	repo.On("GetEntryByPath", ctx, "/news/").Return(entry, nil).Once()

	got, err := svc.GetSitemapEntry(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	got, err = svc.GetSitemapEntry(ctx, "/news/")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	repo.AssertExpectations(t)
}

func TestGetSitemapEntry_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	repo.On("GetEntryByPath", ctx, "/missing/").Return(nil, notFound("/missing/")).Twice()

	_, err := svc.GetSitemapEntry(ctx, "/missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// failures are not cached
	_, err = svc.GetSitemapEntry(ctx, "/missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestGetSitemapChildren(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	root := &domain.SitemapEntry{ID: "root", SitePath: "/", HasChildren: true}
	children := []domain.SitemapEntry{
		{ID: "a", SitePath: "/about/", ParentPath: "/", Position: 0},
		{ID: "n", SitePath: "/news/", ParentPath: "/", Position: 1},
	}
	repo.On("GetEntryByPath", ctx, "/").Return(root, nil).Once()
	repo.On("GetChildren", ctx, "/").Return(children, nil).Once()

	got, err := svc.GetSitemapChildren(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, children, got)

	got, err = svc.GetSitemapChildren(ctx, "/")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	repo.AssertExpectations(t)
}

func TestGetSitemapChildren_UnknownRoot(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	repo.On("GetEntryByPath", ctx, "/gone/").Return(nil, notFound("/gone/"))

	_, err := svc.GetSitemapChildren(ctx, "/gone/")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "GetChildren", mock.Anything, mock.Anything)
}

func TestSaveEntry_InvalidatesCache(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	root := &domain.SitemapEntry{ID: "root", SitePath: "/"}
	repo.On("GetEntryByPath", ctx, "/").Return(root, nil)
	repo.On("GetChildren", ctx, "/").Return([]domain.SitemapEntry{}, nil).Once()

	got, err := svc.GetSitemapChildren(ctx, "/")
	require.NoError(t, err)
	assert.Empty(t, got)

	repo.On("UpsertEntry", ctx, mock.MatchedBy(func(e *domain.SitemapEntry) bool {
		return e.SitePath == "/contact/" && e.ParentPath == "/" && e.Name == "contact"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.SitemapEntry).ID = "new-id"
	}).Return(nil).Once()

	saved, err := svc.SaveEntry(ctx, domain.SitemapEntry{Title: "Contact", SitePath: "contact"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", saved.ID)

	repo.On("GetChildren", ctx, "/").Return([]domain.SitemapEntry{*saved}, nil).Once()
	got, err = svc.GetSitemapChildren(ctx, "/")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/contact/", got[0].SitePath)

	repo.AssertExpectations(t)
}

func TestSaveEntry_MissingParent(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	repo.On("GetEntryByPath", ctx, "/news/").Return(nil, notFound("/news/"))

	_, err := svc.SaveEntry(ctx, domain.SitemapEntry{SitePath: "/news/2026/"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "UpsertEntry", mock.Anything, mock.Anything)
}

func TestGetSitemapEntry_CallerChangesDoNotReachCache(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	entry := &domain.SitemapEntry{ID: "1", SitePath: "/news/", Title: "News", Properties: map[string]string{"nav": "on"}}
	repo.On("GetEntryByPath", ctx, "/news/").Return(entry, nil).Once()

	first, err := svc.GetSitemapEntry(ctx, "/news/")
	require.NoError(t, err)
	first.Title = "changed"
	first.Properties["nav"] = "off"

	second, err := svc.GetSitemapEntry(ctx, "/news/")
	require.NoError(t, err)
	assert.Equal(t, "News", second.Title)
	assert.Equal(t, "on", second.Properties["nav"])

	second.Title = "changed again"
	third, err := svc.GetSitemapEntry(ctx, "/news/")
	require.NoError(t, err)
	assert.Equal(t, "News", third.Title)
	repo.AssertExpectations(t)
}

func TestGetSitemapChildren_CallerChangesDoNotReachCache(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, 10, time.Minute)
	ctx := context.Background()

	repo.On("GetEntryByPath", ctx, "/").Return(&domain.SitemapEntry{ID: "root", SitePath: "/"}, nil).Once()
	repo.On("GetChildren", ctx, "/").Return([]domain.SitemapEntry{
		{ID: "a", SitePath: "/about/", ParentPath: "/", Properties: map[string]string{"k": "v"}},
	}, nil).Once()

	first, err := svc.GetSitemapChildren(ctx, "/")
	require.NoError(t, err)
	require.Len(t, first, 1)
	first[0].Title = "changed"
	first[0].Properties["k"] = "changed"

	second, err := svc.GetSitemapChildren(ctx, "/")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Empty(t, second[0].Title)
	assert.Equal(t, "v", second[0].Properties["k"])
	repo.AssertExpectations(t)
}
