package decorator

import (
	"sort"

	"golang.org/x/text/language"
)

// Bundle holds decorations by key. Later puts overwrite earlier ones.
type Bundle struct {
	locale      language.Tag
	decorations map[string]*Decoration
}

// NewBundle creates an empty bundle for locale; language.Und means locale independent.
func NewBundle(locale language.Tag) *Bundle {
	return &Bundle{locale: locale, decorations: make(map[string]*Decoration)}
}

func (b *Bundle) Locale() language.Tag { return b.locale }

func (b *Bundle) Put(d *Decoration) {
	b.decorations[d.Key] = d
}

// PutAll copies every decoration of other into b.
func (b *Bundle) PutAll(other *Bundle) {
	if other == nil {
		return
	}
	for k, d := range other.decorations {
		b.decorations[k] = d
	}
}

func (b *Bundle) Get(key string) (*Decoration, bool) {
	d, ok := b.decorations[key]
	return d, ok
}

func (b *Bundle) Len() int { return len(b.decorations) }

// Keys returns all keys in sorted order.
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.decorations))
	for k := range b.decorations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
