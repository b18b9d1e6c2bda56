// Package formsession reads the editable values of an XML content document.
package formsession

import (
	"encoding/xml"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/domain"
)

// LanguageAttr names the attribute that marks the locale of a content block
const LanguageAttr = "language"

// Error messages
const ErrMsgParseContentFailed = "failed to parse xml content"

type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// htmlContent returns the text of a rich text value, stored as a links and a content child.
func (n *node) htmlContent() (string, bool) {
	var content *node
	for i := range n.Nodes {
		switch n.Nodes[i].XMLName.Local {
		case "content":
			content = &n.Nodes[i]
		case "links":
		default:
			return "", false
		}
	}
	if content == nil {
		return "", false
	}
	return strings.TrimSpace(content.Text), true
}

// linkTarget returns the target of a file reference value, stored as a single
// link child holding target and optional uuid children.
func (n *node) linkTarget() (string, bool) {
	if len(n.Nodes) != 1 || n.Nodes[0].XMLName.Local != "link" {
		return "", false
	}
	for _, child := range n.Nodes[0].Nodes {
		if child.XMLName.Local == "target" {
			return strings.TrimSpace(child.Text), true
		}
	}
	return "", false
}

// Values returns the leaf values of the locale block of content as a map from
// indexed path, e.g. Title[1] or Paragraph[2]/Text[1], to trimmed text.
// A document without a block for locale yields an empty map.
func Values(content []byte, locale language.Tag) (map[string]string, error) {
	var root node
	if err := xml.Unmarshal(content, &root); err != nil {
		return nil, domain.WrapError(domain.CodeMalformedXML, ErrMsgParseContentFailed, err)
	}

	values := make(map[string]string)
	block := localeBlock(root.Nodes, locale)
	if block == nil {
		return values, nil
	}
	collect("", block.Nodes, values)
	return values, nil
}

// localeBlock prefers an exact tag match and falls back to the same base language.
func localeBlock(blocks []node, locale language.Tag) *node {
	var fallback *node
	want, _ := locale.Base()
	for i := range blocks {
		tag, err := language.Parse(blocks[i].attr(LanguageAttr))
		if err != nil {
			continue
		}
		if tag == locale {
			return &blocks[i]
		}
		if base, _ := tag.Base(); fallback == nil && base == want {
			fallback = &blocks[i]
		}
	}
	return fallback
}

func collect(prefix string, nodes []node, values map[string]string) {
	counts := make(map[string]int)
	for i := range nodes {
		n := &nodes[i]
		name := n.XMLName.Local
		counts[name]++
		path := prefix + name + "[" + strconv.Itoa(counts[name]) + "]"

		if len(n.Nodes) == 0 {
			values[path] = strings.TrimSpace(n.Text)
			continue
		}
		if text, ok := n.htmlContent(); ok {
			values[path] = text
			continue
		}
		if target, ok := n.linkTarget(); ok {
			values[path] = target
			continue
		}
		collect(path+"/", n.Nodes, values)
	}
}
