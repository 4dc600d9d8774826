package cssom

import (
	"regexp"

	"github.com/cipix2000/postcss-to-rtl/tree"
)

// Walk calls fn for every node below (and excluding) the root, in tree order.
// Returning an error from fn aborts the walk.
func (s *Sheet) Walk(fn func(id NodeID) error) error {
	return s.t.TopDown(s.root, func(_ *tree.Tree[Item], n, _ NodeID, _ int) error {
		if n == s.root {
			return nil
		}
		return fn(n)
	})
}

func (s *Sheet) walkKind(k Kind, fn func(id NodeID, it *Item) error) error {
	return s.Walk(func(id NodeID) error {
		it := s.Item(id)
		if it.Kind != k {
			return nil
		}
		return fn(id, it)
	})
}

// WalkAtRules calls fn for every at-rule whose name matches pattern.
// A nil pattern matches every at-rule.
func (s *Sheet) WalkAtRules(pattern *regexp.Regexp, fn func(id NodeID) error) error {
	return s.walkKind(AtRuleNode, func(id NodeID, it *Item) error {
		if pattern != nil && !pattern.MatchString(it.Name) {
			return nil
		}
		return fn(id)
	})
}

// WalkRules calls fn for every style rule.
func (s *Sheet) WalkRules(fn func(id NodeID) error) error {
	return s.walkKind(RuleNode, func(id NodeID, _ *Item) error {
		return fn(id)
	})
}

// WalkDecls calls fn for every declaration whose property matches pattern.
// A nil pattern matches every declaration.
func (s *Sheet) WalkDecls(pattern *regexp.Regexp, fn func(id NodeID) error) error {
	return s.walkKind(DeclNode, func(id NodeID, it *Item) error {
		if pattern != nil && !pattern.MatchString(it.Prop) {
			return nil
		}
		return fn(id)
	})
}
