package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"cmsadmin"`
	Version     string `env:"APP_VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogDir      string `env:"LOG_DIR"`

	APIKey          string   `env:"API_KEY"`
	TrustedProxies  []string `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxRequestBytes int64    `env:"MAX_REQUEST_BYTES" envDefault:"1048576"`

	DBUser            string            `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string            `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string            `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string            `env:"DB_PORT" envDefault:"5432"`
	DBName            string            `env:"DB_NAME" envDefault:"cmsadmin"`
	DBMaxConns        int               `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdle     time.Duration     `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration     `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	DBExtraPools      map[string]string `env:"DB_EXTRA_POOLS" envSeparator:"," envKeyValSeparator:"="`

	UserAdmin           string `env:"CMS_USER_ADMIN" envDefault:"Admin"`
	UserGuest           string `env:"CMS_USER_GUEST" envDefault:"Guest"`
	UserExport          string `env:"CMS_USER_EXPORT" envDefault:"Export"`
	UserDeletedResource string `env:"CMS_USER_DELETED_RESOURCE"`
	GroupGuests         string `env:"CMS_GROUP_GUESTS" envDefault:"Guests"`

	AutoLockResources bool           `env:"CMS_AUTO_LOCK" envDefault:"true"`
	ResourceTypes     []string       `env:"RESOURCE_TYPES" envSeparator:"," envDefault:"plain,image,binary,xmlpage,xmlcontent,jsp,pointer"`
	Locales           []language.Tag `env:"CMS_LOCALES" envSeparator:"," envDefault:"en,de"`

	ConfigDir       string `env:"CONFIG_DIR" envDefault:"configs"`
	DecoratorConfig string `env:"DECORATOR_CONFIG" envDefault:"decorations/config.xml"`

	SitemapCacheSize     int           `env:"SITEMAP_CACHE_SIZE" envDefault:"512"`
	SitemapCacheTTL      time.Duration `env:"SITEMAP_CACHE_TTL" envDefault:"5m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	SessionMaxInactive   time.Duration `env:"SESSION_MAX_INACTIVE" envDefault:"30m"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
