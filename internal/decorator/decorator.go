package decorator

import (
	"bytes"
	"errors"
	"html"
	"io"
	"strings"
	"unicode"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/osse101/cmsadmin/internal/metrics"
)

// skipped elements never have their text decorated
var skipped = map[atom.Atom]bool{
	atom.A:       true,
	atom.Abbr:    true,
	atom.Acronym: true,
	atom.Script:  true,
	atom.Style:   true,
}

// Decorator applies a configuration's decorations to HTML.
type Decorator struct {
	config *Configuration
}

// NewDecorator creates a decorator for config.
func NewDecorator(config *Configuration) *Decorator {
	return &Decorator{config: config}
}

// Decorate returns content with every known word in text nodes decorated.
// Markup is passed through unchanged. Each call tracks its own first occurrences.
func (d *Decorator) Decorate(content string) (string, error) {
	bundle := d.config.Decorations()
	if bundle == nil || bundle.Len() == 0 {
		return content, nil
	}

	var out bytes.Buffer
	seen := make(map[string]bool)
	depth := 0

	z := xhtml.NewTokenizer(strings.NewReader(content))
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return out.String(), nil
			}
			return "", z.Err()
		case xhtml.StartTagToken:
			name, _ := z.TagName()
			if skipped[atom.Lookup(name)] {
				depth++
			}
			out.Write(z.Raw())
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			if skipped[atom.Lookup(name)] && depth > 0 {
				depth--
			}
			out.Write(z.Raw())
		case xhtml.TextToken:
			if depth > 0 {
				out.Write(z.Raw())
				continue
			}
			out.WriteString(d.decorateText(string(z.Text()), bundle, seen))
		default:
			out.Write(z.Raw())
		}
	}
}

func (d *Decorator) decorateText(text string, bundle *Bundle, seen map[string]bool) string {
	var sb strings.Builder
	for len(text) > 0 {
		i := strings.IndexFunc(text, unicode.IsSpace)
		if i < 0 {
			i = len(text)
		}
		if i == 0 {
			j := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
			if j < 0 {
				j = len(text)
			}
			sb.WriteString(text[:j])
			text = text[j:]
			continue
		}
		sb.WriteString(d.decorateWord(text[:i], bundle, seen))
		text = text[i:]
	}
	return sb.String()
}

// decorateWord looks the word up as is, then without surrounding punctuation.
func (d *Decorator) decorateWord(word string, bundle *Bundle, seen map[string]bool) string {
	if dec, ok := bundle.Get(word); ok {
		return d.apply(dec, html.EscapeString(word), seen)
	}

	core := strings.TrimFunc(word, unicode.IsPunct)
	if core == "" {
		return html.EscapeString(word)
	}
	dec, ok := bundle.Get(core)
	if !ok {
		return html.EscapeString(word)
	}
	start := strings.Index(word, core)
	return html.EscapeString(word[:start]) +
		d.apply(dec, html.EscapeString(core), seen) +
		html.EscapeString(word[start+len(core):])
}

func (d *Decorator) apply(dec *Decoration, text string, seen map[string]bool) string {
	first := !seen[dec.Key]
	seen[dec.Key] = true
	metrics.DecorationsApplied.WithLabelValues(dec.Definition.Name).Inc()
	return dec.Apply(text, first)
}
