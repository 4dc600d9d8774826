/*
Package douceuradapter builds a cssom.Sheet from CSS text, using the
douceur CSS parser.

Douceur drops comments, so sheets created by this package never contain
comment nodes. Douceur recognizes rule blocks (@media, @keyframes, ...)
only when spelled in lowercase, and not at all for vendor forms like
"@-webkit-keyframes". Such at-keywords are normalized before parsing and
get their original name back afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/cipix2000/postcss-to-rtl/cssom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'rtl.douceur'.
func tracer() tracing.Trace {
	return tracing.Select("rtl.douceur")
}

// at-rules which are terminated by a semicolon instead of a block
var blockless = map[string]bool{
	"charset":   true,
	"import":    true,
	"namespace": true,
	"layer":     true,
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*cssom.Sheet, error) {
	text, names := normalizeAtKeywords(text)
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	conv := &converter{sheet: cssom.NewSheet(), atNames: names}
	for _, r := range c.Rules {
		conv.sheet.Append(conv.sheet.Root(), conv.rule(r))
	}
	tracer().Debugf("wrapped douceur stylesheet with %d top-level rules", len(c.Rules))
	return conv.sheet, nil
}

// at-rules which douceur parses as a block of rules, by canonical name
var ruleBlocks = map[string]bool{
	"document":            true,
	"font-feature-values": true,
	"keyframes":           true,
	"media":               true,
	"supports":            true,
}

var keyframesKeyword = regexp.MustCompile(`(?i)^@(-[a-z]+-)?keyframes$`)

// canonicalAtKeyword returns the spelling douceur expects for an at-keyword
// which opens a block of rules, or "" for other at-keywords.
func canonicalAtKeyword(kw []byte) string {
	if keyframesKeyword.Match(kw) {
		return "@keyframes"
	}
	lower := strings.ToLower(string(kw[1:]))
	if ruleBlocks[lower] {
		return "@" + lower
	}
	return ""
}

// normalizeAtKeywords rewrites at-keywords of rule blocks to the exact
// spelling douceur recognizes: lowercase, and "@keyframes" for vendor forms
// like "@-webkit-keyframes". It returns the rewritten text and the original
// names (without '@') of all rewritten at-keywords, in source order. If text
// cannot be tokenized, it is returned as is.
func normalizeAtKeywords(text string) (string, []string) {
	l := tdcss.NewLexer(parse.NewInputString(text))
	var sb strings.Builder
	var names []string
	for {
		tt, data := l.Next()
		if tt == tdcss.ErrorToken {
			if l.Err() != io.EOF {
				return text, nil
			}
			break
		}
		if tt == tdcss.AtKeywordToken {
			if kw := canonicalAtKeyword(data); kw != "" {
				names = append(names, string(data[1:]))
				sb.WriteString(kw)
				continue
			}
		}
		sb.Write(data)
	}
	return sb.String(), names
}

type converter struct {
	sheet   *cssom.Sheet
	atNames []string // original names of rule-block at-rules, pending
}

func (conv *converter) rule(r *css.Rule) cssom.NodeID {
	sheet := conv.sheet
	decls := make([]cssom.NodeID, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		decls = append(decls, sheet.NewDecl(d.Property, d.Value, d.Important))
	}
	if r.Kind == css.AtRule {
		name := strings.TrimPrefix(r.Name, "@")
		if ruleBlocks[name] && len(conv.atNames) > 0 {
			name, conv.atNames = conv.atNames[0], conv.atNames[1:]
		}
		id := sheet.NewAtRule(name, strings.TrimSpace(r.Prelude))
		sheet.Append(id, decls...)
		for _, nested := range r.Rules {
			sheet.Append(id, conv.rule(nested))
		}
		if len(decls) == 0 && len(r.Rules) == 0 && blockless[strings.ToLower(name)] {
			sheet.Item(id).NoBlock = true
		}
		return id
	}
	prelude := strings.TrimSpace(r.Prelude)
	selectors := cssom.SplitSelectors(prelude)
	if len(selectors) == 0 {
		selectors = r.Selectors
	}
	id := sheet.NewRule(selectors, decls...)
	if prelude != "" {
		sheet.Item(id).Selector = prelude
	}
	return id
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order.
func ExtractStyleElements(htmldoc *html.Node) ([]*cssom.Sheet, error) {
	var sheets []*cssom.Sheet
	for _, text := range StyleTexts(htmldoc) {
		sheet, err := Parse(text)
		if err != nil {
			return sheets, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// StyleTexts returns the raw text of every <style> element below <head> and
// <body>, in document order.
func StyleTexts(htmldoc *html.Node) []string {
	var texts []string
	for _, st := range StyleElements(htmldoc) {
		texts = append(texts, st.FirstChild.Data)
	}
	return texts
}

// StyleElements returns every non-empty <style> element which is a direct
// child of <head> or <body>, in document order. The text of a style element
// is held by its first child.
func StyleElements(htmldoc *html.Node) []*html.Node {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	return append(extractStyles(head), extractStyles(body)...)
}

func extractStyles(h *html.Node) []*html.Node {
	if h == nil {
		return nil
	}
	var styles []*html.Node
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			styles = append(styles, ch)
		}
	}
	return styles
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
