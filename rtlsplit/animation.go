package rtlsplit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cipix2000/postcss-to-rtl/cssom"
	"github.com/cipix2000/postcss-to-rtl/rtl"
)

var (
	keyframesPattern = regexp.MustCompile(`(?i)keyframes`)
	animationPattern = regexp.MustCompile(`(?i)animation$|animation-name`)
)

// HarvestAnimationNames returns the distinct names of all keyframes at-rules
// of sheet, in order of first appearance. Vendor forms such as
// @-webkit-keyframes are included.
func HarvestAnimationNames(sheet *cssom.Sheet) []string {
	var names []string
	seen := make(map[string]bool)
	sheet.WalkAtRules(keyframesPattern, func(id cssom.NodeID) error {
		name := strings.TrimSpace(sheet.Item(id).Params)
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	})
	tracer().Debugf("harvested %d animation names: %v", len(names), names)
	return names
}

// MirrorKeyframes inserts a mirrored copy of every keyframes at-rule
// immediately before the original. The copy is named "<name>-rtl".
// It returns the number of mirrored at-rules.
func MirrorKeyframes(sheet *cssom.Sheet, mirror Mirror) (int, error) {
	n := 0
	err := sheet.WalkAtRules(keyframesPattern, func(id cssom.NodeID) error {
		c := sheet.Clone(id)
		it := sheet.Item(c)
		it.Params = strings.TrimSpace(it.Params) + rtl.LTRSuffix
		name, params := it.Name, it.Params
		m, err := mirror.Mirror(sheet, c)
		if err != nil {
			return fmt.Errorf("mirroring @%s %s: %w", name, params, err)
		}
		tracer().Debugf("inserting @%s %s", sheet.Item(m).Name, sheet.Item(m).Params)
		n++
		return sheet.InsertBefore(id, m)
	})
	return n, err
}

// Markers is a side table of animation declarations which refer to a
// keyframes name by its genuine first occurrence. For such declarations,
// the mirrored value has to refer to the mirrored keyframes.
type Markers struct {
	pending map[cssom.NodeID][]string
}

// MarkAnimations records every declaration of animation or animation-name
// in which one of names occurs as a complete name.
func MarkAnimations(sheet *cssom.Sheet, names []string) *Markers {
	m := &Markers{pending: make(map[cssom.NodeID][]string)}
	if len(names) == 0 {
		return m
	}
	sheet.WalkDecls(animationPattern, func(id cssom.NodeID) error {
		value := sheet.Item(id).Value
		for _, name := range names {
			if _, ok := findName(value, name); ok {
				m.pending[id] = append(m.pending[id], name)
			}
		}
		if marked, ok := m.pending[id]; ok {
			tracer().Debugf("marking %s: %s for %v", sheet.Item(id).Prop, value, marked)
		}
		return nil
	})
	return m
}

// Len returns the number of marked declarations.
func (m *Markers) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pending)
}

// Names returns the animation names marked for declaration decl.
func (m *Markers) Names(decl cssom.NodeID) []string {
	if m == nil {
		return nil
	}
	return m.pending[decl]
}

// Apply rewrites the mirrored value of a marked declaration, appending the
// RTL suffix to the first genuine occurrence of each marked name.
// Values of unmarked declarations are returned unchanged.
func (m *Markers) Apply(decl cssom.NodeID, value string) string {
	for _, name := range m.Names(decl) {
		if end, ok := findName(value, name); ok {
			value = value[:end] + rtl.RTLSuffix + value[end:]
		}
	}
	return value
}

// Cleanup drops the markers of all animation declarations of sheet. After
// cleanup no marker is left, including markers of declarations no longer
// part of the sheet. It returns the number of markers dropped.
func (m *Markers) Cleanup(sheet *cssom.Sheet) int {
	if m == nil {
		return 0
	}
	n := len(m.pending)
	sheet.WalkDecls(animationPattern, func(id cssom.NodeID) error {
		delete(m.pending, id)
		return nil
	})
	if len(m.pending) > 0 {
		tracer().Debugf("dropping %d markers of detached declarations", len(m.pending))
		m.pending = make(map[cssom.NodeID][]string)
	}
	return n
}

// findName searches the first occurrence of name in value. It returns the
// offset after the occurrence and true if the occurrence is a complete name,
// i.e. followed by nothing, whitespace, ',', ';' or '!'.
func findName(value, name string) (int, bool) {
	i := strings.Index(value, name)
	if i < 0 || name == "" {
		return 0, false
	}
	end := i + len(name)
	if end == len(value) {
		return end, true
	}
	switch value[end] {
	case ',', ';', '!', ' ', '\t', '\n', '\r', '\f':
		return end, true
	}
	return end, false
}
