// Package decorator marks up words in HTML text using configured decoration maps.
package decorator

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/domain"
)

// ConfigurationLocale is the content locale the configuration document is read in.
var ConfigurationLocale = language.English

type configDocument struct {
	Locales []configLocale `xml:",any"`
}

type configLocale struct {
	Language    string             `xml:"language,attr"`
	UseLocale   string             `xml:"uselocale"`
	Decorations []configDecoration `xml:"decoration"`
}

type configDecoration struct {
	Definition
	MarkFirst string `xml:"markfirst"`
}

// Configuration is the merged set of decorations for one request locale.
type Configuration struct {
	fsys        fs.FS
	locale      language.Tag
	decorations *Bundle
}

// NewConfiguration creates an empty, locale independent configuration.
func NewConfiguration() *Configuration {
	return &Configuration{locale: language.Und, decorations: NewBundle(language.Und)}
}

// LoadConfiguration reads the configuration document at name from fsys and merges the
// bundles of all its definitions. Unless the document sets uselocale to true the
// bundles are built locale independent.
func LoadConfiguration(fsys fs.FS, name string, locale language.Tag) (*Configuration, error) {
	data, err := fs.ReadFile(fsys, strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadConfigFailed, name, err)
	}

	defs, useLocale, err := ParseConfiguration(data)
	if err != nil {
		return nil, err
	}
	if !useLocale {
		locale = language.Und
	}

	c := &Configuration{fsys: fsys, locale: locale, decorations: NewBundle(locale)}
	for _, def := range defs {
		b, err := def.Bundle(fsys, locale)
		if err != nil {
			return nil, err
		}
		c.decorations.PutAll(b)
	}

	slog.Debug(LogMsgConfigurationLoaded, "file", name, "definitions", len(defs), "decorations", c.decorations.Len())
	return c, nil
}

// ParseConfiguration decodes a configuration document and returns its decoration
// definitions in document order together with the uselocale flag.
func ParseConfiguration(data []byte) ([]Definition, bool, error) {
	var doc configDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, false, domain.WrapError(domain.CodeMalformedXML, ErrMsgParseConfigFailed, err)
	}

	var loc *configLocale
	for i := range doc.Locales {
		tag, err := language.Parse(doc.Locales[i].Language)
		if err == nil && tag == ConfigurationLocale {
			loc = &doc.Locales[i]
			break
		}
	}
	if loc == nil {
		return nil, false, domain.NewError(domain.CodeMalformedXML, ErrMsgNoConfigLocale+" "+ConfigurationLocale.String())
	}

	defs := make([]Definition, 0, len(loc.Decorations))
	for _, d := range loc.Decorations {
		def := d.Definition
		def.MarkFirst = strings.TrimSpace(d.MarkFirst) == "true"
		defs = append(defs, def)
	}
	return defs, strings.TrimSpace(loc.UseLocale) == "true", nil
}

// AddDecorations merges the bundle of def, read in the configuration locale.
func (c *Configuration) AddDecorations(fsys fs.FS, def Definition) error {
	if fsys == nil {
		fsys = c.fsys
	}
	if fsys == nil {
		return domain.NewError(domain.CodeInvalidInput, ErrMsgNoMapSource)
	}
	b, err := def.Bundle(fsys, ConfigurationLocale)
	if err != nil {
		return err
	}
	c.decorations.PutAll(b)
	return nil
}

func (c *Configuration) Decorations() *Bundle {
	return c.decorations
}

func (c *Configuration) SetDecorations(b *Bundle) {
	c.decorations = b
}

// Locale is the request locale, or language.Und when decorations are locale independent.
func (c *Configuration) Locale() language.Tag {
	return c.locale
}
