// Package sitemap serves the site navigation tree.
package sitemap

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/cmsadmin/internal/domain"
	"github.com/osse101/cmsadmin/internal/logger"
	"github.com/osse101/cmsadmin/internal/metrics"
	"github.com/osse101/cmsadmin/internal/repository"
)

// Service defines the sitemap RPC operations
type Service interface {
	// GetSitemapEntry returns the entry for the given site relative root
	GetSitemapEntry(ctx context.Context, root string) (*domain.SitemapEntry, error)

	// GetSitemapChildren returns the children of the given site relative root
	GetSitemapChildren(ctx context.Context, root string) ([]domain.SitemapEntry, error)

	// SaveEntry stores an entry and drops cached data for it and its parent
	SaveEntry(ctx context.Context, entry domain.SitemapEntry) (*domain.SitemapEntry, error)
}

type service struct {
	repo     repository.Sitemap
	entries  *expirable.LRU[string, *domain.SitemapEntry]
	children *expirable.LRU[string, []domain.SitemapEntry]
}

// NewService creates a sitemap service caching up to cacheSize results per kind for ttl
func NewService(repo repository.Sitemap, cacheSize int, ttl time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &service{
		repo:     repo,
		entries:  expirable.NewLRU[string, *domain.SitemapEntry](cacheSize, nil, ttl),
		children: expirable.NewLRU[string, []domain.SitemapEntry](cacheSize, nil, ttl),
	}
}

// NormalizePath turns a site relative root into the stored form: leading and trailing slash.
func NormalizePath(root string) string {
	root = strings.TrimSpace(root)
	if root == "" || root == "/" {
		return "/"
	}
	cleaned := path.Clean("/" + root)
	if cleaned == "/" {
		return cleaned
	}
	return cleaned + "/"
}

// ParentPath returns the normalized parent of a normalized path; "" for the root.
func ParentPath(sitePath string) string {
	if sitePath == "/" {
		return ""
	}
	parent := path.Dir(strings.TrimSuffix(sitePath, "/"))
	return NormalizePath(parent)
}

func (s *service) GetSitemapEntry(ctx context.Context, root string) (*domain.SitemapEntry, error) {
	sitePath := NormalizePath(root)

	if entry, ok := s.entries.Get(sitePath); ok {
		metrics.SitemapCacheHits.WithLabelValues(metrics.KindEntry).Inc()
		return entry.Clone(), nil
	}
	metrics.SitemapCacheMisses.WithLabelValues(metrics.KindEntry).Inc()

	entry, err := s.repo.GetEntryByPath(ctx, sitePath)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgEntryLookupFailed, "path", sitePath, "error", err)
		return nil, fmt.Errorf("%s %s: %w", ErrMsgGetEntryFailed, sitePath, err)
	}

	// callers get their own copy, the cached one stays untouched
	s.entries.Add(sitePath, entry.Clone())
	return entry, nil
}

func (s *service) GetSitemapChildren(ctx context.Context, root string) ([]domain.SitemapEntry, error) {
	sitePath := NormalizePath(root)

	if children, ok := s.children.Get(sitePath); ok {
		metrics.SitemapCacheHits.WithLabelValues(metrics.KindChildren).Inc()
		return domain.CloneSitemapEntries(children), nil
	}
	metrics.SitemapCacheMisses.WithLabelValues(metrics.KindChildren).Inc()

	// the parent must exist, an unknown root is an error rather than an empty list
	if _, err := s.GetSitemapEntry(ctx, sitePath); err != nil {
		return nil, err
	}

	children, err := s.repo.GetChildren(ctx, sitePath)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgGetChildrenFailed, sitePath, err)
	}

	s.children.Add(sitePath, domain.CloneSitemapEntries(children))
	return children, nil
}

func (s *service) SaveEntry(ctx context.Context, entry domain.SitemapEntry) (*domain.SitemapEntry, error) {
	entry.SitePath = NormalizePath(entry.SitePath)
	entry.ParentPath = ParentPath(entry.SitePath)
	if entry.Name == "" && entry.SitePath != "/" {
		entry.Name = path.Base(strings.TrimSuffix(entry.SitePath, "/"))
	}

	if entry.ParentPath != "" {
		if _, err := s.repo.GetEntryByPath(ctx, entry.ParentPath); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgParentMissing, entry.ParentPath, err)
		}
	}

	if err := s.repo.UpsertEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgSaveEntryFailed, entry.SitePath, err)
	}

	s.entries.Remove(entry.SitePath)
	s.children.Remove(entry.SitePath)
	if entry.ParentPath != "" {
		// parent's has-children flag and child list change
		s.entries.Remove(entry.ParentPath)
		s.children.Remove(entry.ParentPath)
	}

	logger.FromContext(ctx).Info(LogMsgEntrySaved, "path", entry.SitePath, "id", entry.ID)
	return &entry, nil
}
