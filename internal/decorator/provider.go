package decorator

import (
	"io/fs"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
)

// DefaultProviderSize bounds the number of cached per locale configurations
const DefaultProviderSize = 16

// Provider loads the configuration document once per locale and keeps the results.
type Provider struct {
	fsys  fs.FS
	name  string
	cache *lru.Cache[language.Tag, *Configuration]
}

// NewProvider creates a provider for the configuration document name in fsys
func NewProvider(fsys fs.FS, name string, size int) (*Provider, error) {
	if size <= 0 {
		size = DefaultProviderSize
	}
	cache, err := lru.New[language.Tag, *Configuration](size)
	if err != nil {
		return nil, err
	}
	return &Provider{fsys: fsys, name: name, cache: cache}, nil
}

// Decorator returns a decorator for locale, loading the configuration on first use.
func (p *Provider) Decorator(locale language.Tag) (*Decorator, error) {
	if cfg, ok := p.cache.Get(locale); ok {
		return NewDecorator(cfg), nil
	}
	cfg, err := LoadConfiguration(p.fsys, p.name, locale)
	if err != nil {
		return nil, err
	}
	p.cache.Add(locale, cfg)
	return NewDecorator(cfg), nil
}

// Purge drops all cached configurations so the next request reloads them.
func (p *Provider) Purge() {
	p.cache.Purge()
}
