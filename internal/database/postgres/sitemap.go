package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/cmsadmin/internal/domain"
)

// SitemapRepository implements repository.Sitemap
type SitemapRepository struct {
	db *pgxpool.Pool
}

// NewSitemapRepository creates a new sitemap repository
func NewSitemapRepository(db *pgxpool.Pool) *SitemapRepository {
	return &SitemapRepository{db: db}
}

const sitemapColumns = `
	entry_id::text, name, title, site_path, COALESCE(parent_path, ''), position, properties,
	EXISTS (SELECT 1 FROM sitemap_entries c WHERE c.parent_path = e.site_path)
`

func scanSitemapEntry(row pgx.Row) (*domain.SitemapEntry, error) {
	var entry domain.SitemapEntry
	err := row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.Title,
		&entry.SitePath,
		&entry.ParentPath,
		&entry.Position,
		&entry.Properties,
		&entry.HasChildren,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEntryByPath retrieves the entry at sitePath
func (r *SitemapRepository) GetEntryByPath(ctx context.Context, sitePath string) (*domain.SitemapEntry, error) {
	query := `SELECT ` + sitemapColumns + ` FROM sitemap_entries e WHERE e.site_path = $1`

	entry, err := scanSitemapEntry(r.db.QueryRow(ctx, query, sitePath))
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetSitemapEntry, err)
	}
	return entry, nil
}

// GetChildren retrieves the direct children of parentPath ordered by position
func (r *SitemapRepository) GetChildren(ctx context.Context, parentPath string) ([]domain.SitemapEntry, error) {
	query := `SELECT ` + sitemapColumns + `
		FROM sitemap_entries e
		WHERE e.parent_path = $1
		ORDER BY e.position, e.name`

	rows, err := r.db.Query(ctx, query, parentPath)
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetSitemapChildren, err)
	}
	defer rows.Close()

	children := make([]domain.SitemapEntry, 0)
	for rows.Next() {
		entry, err := scanSitemapEntry(rows)
		if err != nil {
			return nil, dbError(ErrMsgFailedToScanSitemapEntry, err)
		}
		children = append(children, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToGetSitemapChildren, err)
	}
	return children, nil
}

// UpsertEntry inserts the entry or updates the one at the same site path.
// entry.ID is set to the stored id.
func (r *SitemapRepository) UpsertEntry(ctx context.Context, entry *domain.SitemapEntry) error {
	query := `
		INSERT INTO sitemap_entries (site_path, parent_path, name, title, position, properties)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)
		ON CONFLICT (site_path) DO UPDATE
		SET parent_path = EXCLUDED.parent_path,
		    name = EXCLUDED.name,
		    title = EXCLUDED.title,
		    position = EXCLUDED.position,
		    properties = EXCLUDED.properties,
		    updated_at = NOW()
		RETURNING entry_id::text
	`
	props := entry.Properties
	if props == nil {
		props = map[string]string{}
	}

	err := r.db.QueryRow(ctx, query,
		entry.SitePath,
		entry.ParentPath,
		entry.Name,
		entry.Title,
		entry.Position,
		props,
	).Scan(&entry.ID)
	if err != nil {
		return dbError(ErrMsgFailedToUpsertSitemapEntry, err)
	}
	return nil
}
