package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/cmsadmin/internal/database/postgres"
	"github.com/osse101/cmsadmin/internal/repository"
)

// Repositories holds the repository implementations used by the application.
type Repositories struct {
	Sitemap    repository.Sitemap
	Extensions repository.Extensions
}

// InitializeRepositories creates all repository implementations on the default pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Sitemap:    postgres.NewSitemapRepository(dbPool),
		Extensions: postgres.NewExtensionRepository(dbPool),
	}
}
