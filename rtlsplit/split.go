package rtlsplit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cipix2000/postcss-to-rtl/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// ErrMisaligned is returned if a mirrored rule does not correspond
// node by node to its original.
var ErrMisaligned = errors.New("mirrored rule not aligned with original")

// Selector prefixes of the direction-scoped rules.
const (
	LTRScope = "html[dir='ltr'] "
	RTLScope = "html[dir='rtl'] "
)

// Mirror creates mirrored copies of stylesheet nodes.
//
// Mirror returns a detached deep copy of node with all declarations
// mirrored. The copy must have the same structure as the original: the
// i-th child of a mirrored rule corresponds to the i-th child of the
// original. The original subtree must not be modified.
type Mirror interface {
	Mirror(sheet *cssom.Sheet, node cssom.NodeID) (cssom.NodeID, error)
}

// Splitter moves direction-sensitive declarations of style rules into
// direction-scoped rules.
type Splitter struct {
	filters
	mirror  Mirror
	markers *Markers // may be nil
}

// Split splits every eligible style rule of sheet. Rules created while
// splitting are not visited.
func (sp *Splitter) Split(sheet *cssom.Sheet) error {
	return sheet.WalkRules(func(id cssom.NodeID) error {
		return sp.SplitRule(sheet, id)
	})
}

// SplitRule splits a single style rule. The rule has to be attached.
// If no declaration remains in the rule after splitting, the rule is removed.
func (sp *Splitter) SplitRule(sheet *cssom.Sheet, rule cssom.NodeID) error {
	if reason := sp.skip(sheet, rule); reason != "" {
		tracer().Debugf("skipping rule %q: %s", sheet.Item(rule).Selector, reason)
		return nil
	}
	selector := sheet.Item(rule).Selector
	selectors := sheet.Selectors(rule)
	mirrored, err := sp.mirror.Mirror(sheet, rule)
	if err != nil {
		return fmt.Errorf("mirroring rule %q: %w", selector, err)
	}
	orig, mirr := sheet.Children(rule), sheet.Children(mirrored)
	if len(orig) != len(mirr) {
		return fmt.Errorf("rule %q has %d children, mirrored rule %d: %w",
			selector, len(orig), len(mirr), ErrMisaligned)
	}
	var ltr, rtl []cssom.NodeID
	for i := len(orig) - 1; i >= 0; i-- {
		d, m := sheet.Item(orig[i]), sheet.Item(mirr[i])
		if d.Kind != m.Kind {
			return fmt.Errorf("rule %q: %s mirrored as %s: %w", selector, d.Kind, m.Kind, ErrMisaligned)
		}
		if d.Kind != cssom.DeclNode || !sp.convert.MatchString(d.Prop) {
			continue
		}
		m.Value = sp.markers.Apply(orig[i], m.Value)
		if m.Prop != d.Prop || m.Value != d.Value || sp.always.MatchString(d.Prop) {
			ltr = append(ltr, orig[i])
			rtl = append(rtl, mirr[i])
			sheet.Remove(orig[i])
			sheet.Remove(mirr[i])
		}
	}
	if len(ltr) > 0 {
		tracer().Debugf("splitting %d declarations off rule %q", len(ltr), selector)
		reverse(ltr)
		reverse(rtl)
		rtlRule := sheet.NewRule(scoped(selectors, RTLScope), rtl...)
		ltrRule := sheet.NewRule(scoped(selectors, LTRScope), ltr...)
		if err := sheet.InsertAfter(rule, rtlRule); err != nil {
			return err
		}
		if err := sheet.InsertAfter(rule, ltrRule); err != nil {
			return err
		}
		if tracer().GetTraceLevel() >= tracing.LevelDebug {
			tracer().Debugf("inserted after %q:\n%s%s", selector, sheet.NodeString(ltrRule), sheet.NodeString(rtlRule))
		}
	}
	sheet.RemoveIfEmpty(rule)
	return nil
}

// skip returns a reason for leaving a rule alone, or "".
func (sp *Splitter) skip(sheet *cssom.Sheet, rule cssom.NodeID) string {
	for _, sel := range sheet.Selectors(rule) {
		if strings.HasPrefix(sel, "html") {
			return "selector " + sel + " is scoped"
		}
	}
	if sp.ignore != nil && sp.ignore.MatchString(sheet.Item(rule).Selector) {
		return "ignored"
	}
	if at, ok := sheet.EnclosingAtRule(rule); ok {
		if name := sheet.Item(at).Name; !strings.Contains(strings.ToLower(name), "media") {
			return "inside @" + name
		}
	}
	return ""
}

// scoped prefixes every selector with scope, unless it already starts
// with "html".
func scoped(selectors []string, scope string) []string {
	out := make([]string, len(selectors))
	for i, sel := range selectors {
		if strings.HasPrefix(sel, "html") {
			out[i] = sel
		} else {
			out[i] = scope + sel
		}
	}
	return out
}

func reverse(ids []cssom.NodeID) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
