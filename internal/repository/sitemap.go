package repository

import (
	"context"

	"github.com/osse101/cmsadmin/internal/domain"
)

// Sitemap defines data access for sitemap entries
type Sitemap interface {
	GetEntryByPath(ctx context.Context, sitePath string) (*domain.SitemapEntry, error)
	GetChildren(ctx context.Context, parentPath string) ([]domain.SitemapEntry, error)
	UpsertEntry(ctx context.Context, entry *domain.SitemapEntry) error
}
