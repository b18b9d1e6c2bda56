package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/cmsadmin/internal/domain"
)

// ExtensionRepository implements repository.Extensions
type ExtensionRepository struct {
	db *pgxpool.Pool
}

// NewExtensionRepository creates a new extension mapping repository
func NewExtensionRepository(db *pgxpool.Pool) *ExtensionRepository {
	return &ExtensionRepository{db: db}
}

// GetMapping retrieves the mapping for extension
func (r *ExtensionRepository) GetMapping(ctx context.Context, extension string) (*domain.ExtensionMapping, error) {
	query := `SELECT extension, resource_type FROM extension_mappings WHERE extension = $1`

	var m domain.ExtensionMapping
	if err := r.db.QueryRow(ctx, query, extension).Scan(&m.Extension, &m.ResourceType); err != nil {
		return nil, dbError(ErrMsgFailedToGetMapping, err)
	}
	return &m, nil
}

// ListMappings returns all mappings ordered by resource type and extension
func (r *ExtensionRepository) ListMappings(ctx context.Context) ([]domain.ExtensionMapping, error) {
	query := `SELECT extension, resource_type FROM extension_mappings ORDER BY resource_type, extension`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListMappings, err)
	}
	defer rows.Close()

	var mappings []domain.ExtensionMapping
	for rows.Next() {
		var m domain.ExtensionMapping
		if err := rows.Scan(&m.Extension, &m.ResourceType); err != nil {
			return nil, dbError(ErrMsgFailedToListMappings, err)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToListMappings, err)
	}
	return mappings, nil
}

// InsertMapping stores a new mapping
func (r *ExtensionRepository) InsertMapping(ctx context.Context, mapping domain.ExtensionMapping) error {
	query := `INSERT INTO extension_mappings (extension, resource_type) VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, query, mapping.Extension, mapping.ResourceType); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateExtension, mapping.Extension)
		}
		return dbError(ErrMsgFailedToInsertMapping, err)
	}
	return nil
}

// DeleteMapping removes the mapping for extension and reports whether one existed
func (r *ExtensionRepository) DeleteMapping(ctx context.Context, extension string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM extension_mappings WHERE extension = $1`, extension)
	if err != nil {
		return false, dbError(ErrMsgFailedToDeleteMapping, err)
	}
	return tag.RowsAffected() > 0, nil
}
