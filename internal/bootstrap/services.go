package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/cmsadmin/internal/config"
	"github.com/osse101/cmsadmin/internal/datatypes"
	"github.com/osse101/cmsadmin/internal/decorator"
	"github.com/osse101/cmsadmin/internal/defaultusers"
	"github.com/osse101/cmsadmin/internal/session"
	"github.com/osse101/cmsadmin/internal/sitemap"
)

// Services holds the domain services the HTTP layer is wired to.
type Services struct {
	Users          *defaultusers.Registry
	Sitemap        sitemap.Service
	Datatypes      datatypes.Service
	Decorators     *decorator.Provider
	SessionManager *session.Manager
	Sessions       *session.Handler
}

// InitializeServices builds the services from configuration and repositories.
func InitializeServices(cfg *config.Config, repos *Repositories) (*Services, error) {
	users, err := defaultusers.NewRegistry(cfg.UserAdmin, cfg.UserGuest, cfg.UserExport, cfg.UserDeletedResource, cfg.GroupGuests)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDefaultUsers, err)
	}

	decorators, err := decorator.NewProvider(os.DirFS(cfg.ConfigDir), cfg.DecoratorConfig, decorator.DefaultProviderSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDecorator, err)
	}

	manager := session.NewManager()

	svc := &Services{
		Users:          users,
		Sitemap:        sitemap.NewService(repos.Sitemap, cfg.SitemapCacheSize, cfg.SitemapCacheTTL),
		Datatypes:      datatypes.NewService(repos.Extensions, cfg.ResourceTypes),
		Decorators:     decorators,
		SessionManager: manager,
		Sessions:       session.NewHandler(manager, users, cfg.SessionMaxInactive, cfg.Locales...),
	}

	slog.Info(LogMsgServicesInitialized,
		"resource_types", len(cfg.ResourceTypes),
		"locales", len(cfg.Locales),
		"auto_lock", cfg.AutoLockResources)

	return svc, nil
}
