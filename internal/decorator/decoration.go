package decorator

import (
	"html"
	"strings"

	"golang.org/x/text/language"
)

// Decoration is a single key from a decoration map with its definition.
type Decoration struct {
	Definition  Definition
	Key         string
	Description string
	Locale      language.Tag
}

// Apply wraps text with the definition's pre and post texts.
// When first is set and the definition marks first occurrences, the *first variants are used.
func (d *Decoration) Apply(text string, first bool) string {
	pre, post := d.Definition.PreText, d.Definition.PostText
	if first && d.Definition.MarkFirst {
		pre, post = d.Definition.PreTextFirst, d.Definition.PostTextFirst
	}
	return d.expand(pre) + text + d.expand(post)
}

func (d *Decoration) expand(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	lang := ""
	if d.Locale != language.Und {
		base, _ := d.Locale.Base()
		lang = base.String()
	}
	r := strings.NewReplacer(
		MacroDecorationKey, html.EscapeString(d.Key),
		MacroDecoration, html.EscapeString(d.Description),
		MacroLanguage, lang,
	)
	return r.Replace(s)
}
