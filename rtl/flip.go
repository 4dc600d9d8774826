package rtl

import (
	"strings"

	"github.com/cipix2000/postcss-to-rtl/cssom"
)

// Suffixes of keyframes names, flipped into each other.
const (
	LTRSuffix = "-ltr"
	RTLSuffix = "-rtl"
)

// Flipper mirrors stylesheet nodes. The zero value is ready to use.
type Flipper struct{}

// NewFlipper creates a Flipper.
func NewFlipper() *Flipper {
	return &Flipper{}
}

// Mirror returns a detached, mirrored deep copy of node. The original
// subtree is left untouched.
func (f *Flipper) Mirror(sheet *cssom.Sheet, node cssom.NodeID) (cssom.NodeID, error) {
	c := sheet.Clone(node)
	f.flipTree(sheet, c)
	return c, nil
}

func (f *Flipper) flipTree(sheet *cssom.Sheet, id cssom.NodeID) {
	it := sheet.Item(id)
	switch it.Kind {
	case cssom.DeclNode:
		prop, value := f.FlipDecl(it.Prop, it.Value)
		if prop != it.Prop || value != it.Value {
			tracer().Debugf("flip %s: %s → %s: %s", it.Prop, it.Value, prop, value)
		}
		it.Prop, it.Value = prop, value
	case cssom.AtRuleNode:
		if strings.Contains(strings.ToLower(it.Name), "keyframes") {
			it.Params = FlipKeyframesName(it.Params)
		}
	}
	for _, ch := range sheet.Children(id) {
		f.flipTree(sheet, ch)
	}
}

// FlipDecl returns the mirrored property and value of a declaration.
func (f *Flipper) FlipDecl(prop, value string) (string, string) {
	if strings.HasPrefix(prop, "--") { // custom properties are opaque
		return prop, value
	}
	return FlipName(prop), flipValue(strings.ToLower(prop), value)
}

// FlipName swaps "left" and "right" parts of a hyphenated name, e.g.
// "border-top-left-radius" → "border-top-right-radius".
func FlipName(name string) string {
	if !strings.Contains(strings.ToLower(name), "left") && !strings.Contains(strings.ToLower(name), "right") {
		return name
	}
	parts := strings.Split(name, "-")
	for i, p := range parts {
		switch strings.ToLower(p) {
		case "left":
			parts[i] = "right"
		case "right":
			parts[i] = "left"
		}
	}
	return strings.Join(parts, "-")
}

// FlipKeyframesName turns an "-ltr" suffix into "-rtl" and vice versa.
func FlipKeyframesName(name string) string {
	trimmed := strings.TrimSpace(name)
	switch {
	case strings.HasSuffix(trimmed, LTRSuffix):
		return strings.TrimSuffix(trimmed, LTRSuffix) + RTLSuffix
	case strings.HasSuffix(trimmed, RTLSuffix):
		return strings.TrimSuffix(trimmed, RTLSuffix) + LTRSuffix
	}
	return name
}
