package repository

import (
	"context"

	"github.com/osse101/cmsadmin/internal/domain"
)

// Extensions defines data access for file extension mappings
type Extensions interface {
	GetMapping(ctx context.Context, extension string) (*domain.ExtensionMapping, error)
	ListMappings(ctx context.Context) ([]domain.ExtensionMapping, error)
	// InsertMapping fails with domain.ErrDuplicateExtension when the extension is already mapped
	InsertMapping(ctx context.Context, mapping domain.ExtensionMapping) error
	DeleteMapping(ctx context.Context, extension string) (bool, error)
}
