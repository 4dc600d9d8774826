package cssom

import (
	"errors"
	"strings"

	"github.com/cipix2000/postcss-to-rtl/tree"
)

// NodeID is a handle for a node of a Sheet.
type NodeID = tree.NodeID

// None is the handle of no node.
const None = tree.None

// ErrDetached is returned if a positional operation needs a parent, but the
// reference node does not have one.
var ErrDetached = errors.New("node is not attached to a parent")

// Kind is the type of a stylesheet node.
type Kind uint8

// Kinds of nodes
const (
	RootNode Kind = iota
	AtRuleNode
	RuleNode
	DeclNode
)

func (k Kind) String() string {
	switch k {
	case RootNode:
		return "root"
	case AtRuleNode:
		return "atrule"
	case RuleNode:
		return "rule"
	case DeclNode:
		return "decl"
	}
	return "?"
}

// Item is the payload of a stylesheet node. Which fields are in use depends
// on Kind.
type Item struct {
	Kind      Kind
	Name      string   // at-rule name without '@', e.g. "media"
	Params    string   // at-rule prelude, e.g. "screen and (min-width: 10em)"
	NoBlock   bool     // at-rule is terminated by ';' instead of a block
	Selector  string   // full selector text of a rule
	Selectors []string // individual selectors of a rule, in order
	Prop      string   // declaration property
	Value     string   // declaration value, without "!important"
	Important bool     // declaration is marked as important
}

func (it Item) String() string {
	switch it.Kind {
	case AtRuleNode:
		return strings.TrimSpace("@" + it.Name + " " + it.Params)
	case RuleNode:
		return it.Selector
	case DeclNode:
		if it.Important {
			return it.Prop + ": " + it.Value + " !important"
		}
		return it.Prop + ": " + it.Value
	}
	return it.Kind.String()
}

func copyItem(it Item) Item {
	if it.Selectors != nil {
		sel := make([]string, len(it.Selectors))
		copy(sel, it.Selectors)
		it.Selectors = sel
	}
	return it
}

// Sheet is a CSS stylesheet. Create it with NewSheet().
//
// A Sheet is not safe for concurrent use.
type Sheet struct {
	t    *tree.Tree[Item]
	root NodeID
}

// NewSheet creates an empty stylesheet.
func NewSheet() *Sheet {
	t := tree.New[Item]()
	root := t.NewNode(Item{Kind: RootNode})
	return &Sheet{t: t, root: root}
}

// Root returns the root node of the stylesheet.
func (s *Sheet) Root() NodeID {
	return s.root
}

// Empty checks if this stylesheet contains any nodes.
func (s *Sheet) Empty() bool {
	return s.t.ChildCount(s.root) == 0
}

// Item returns the payload of node id for reading and writing.
// The pointer is invalidated by the next node creation.
func (s *Sheet) Item(id NodeID) *Item {
	return s.t.Payload(id)
}

// Kind returns the kind of node id.
func (s *Sheet) Kind(id NodeID) Kind {
	return s.t.Payload(id).Kind
}

// Parent returns the parent of a node or None.
func (s *Sheet) Parent(id NodeID) NodeID {
	return s.t.Parent(id)
}

// Children returns a copy of the child handles of a node.
func (s *Sheet) Children(id NodeID) []NodeID {
	return s.t.Children(id)
}

// ChildCount returns the number of children of a node.
func (s *Sheet) ChildCount(id NodeID) int {
	return s.t.ChildCount(id)
}

// EnclosingAtRule returns the closest at-rule containing id.
func (s *Sheet) EnclosingAtRule(id NodeID) (NodeID, bool) {
	return s.t.AncestorWith(id, func(t *tree.Tree[Item], n NodeID) bool {
		return t.Payload(n).Kind == AtRuleNode
	})
}

// Attached is true if id is part of the stylesheet, i.e. connected to its root.
func (s *Sheet) Attached(id NodeID) bool {
	return s.t.Root(id) == s.root
}

// --- Constructors ----------------------------------------------------------

// NewAtRule creates a detached at-rule. name is given without '@'.
func (s *Sheet) NewAtRule(name, params string) NodeID {
	return s.t.NewNode(Item{
		Kind:   AtRuleNode,
		Name:   strings.TrimPrefix(name, "@"),
		Params: params,
	})
}

// NewRule creates a detached style rule from a list of selectors and
// appends the given declarations, moving them if they are attached elsewhere.
func (s *Sheet) NewRule(selectors []string, decls ...NodeID) NodeID {
	sel := make([]string, len(selectors))
	copy(sel, selectors)
	r := s.t.NewNode(Item{
		Kind:      RuleNode,
		Selector:  strings.Join(sel, ", "),
		Selectors: sel,
	})
	s.Append(r, decls...)
	return r
}

// NewDecl creates a detached declaration.
func (s *Sheet) NewDecl(prop, value string, important bool) NodeID {
	return s.t.NewNode(Item{
		Kind:      DeclNode,
		Prop:      prop,
		Value:     value,
		Important: important,
	})
}

// --- Rules -----------------------------------------------------------------

// Selectors returns the selectors of a style rule.
func (s *Sheet) Selectors(rule NodeID) []string {
	it := s.Item(rule)
	sel := make([]string, len(it.Selectors))
	copy(sel, it.Selectors)
	return sel
}

// Decls returns the declarations of a node, in order.
func (s *Sheet) Decls(id NodeID) []NodeID {
	var decls []NodeID
	for _, ch := range s.t.Children(id) {
		if s.Kind(ch) == DeclNode {
			decls = append(decls, ch)
		}
	}
	return decls
}

// SplitSelectors splits a selector list at top-level commas. Commas inside
// parentheses, brackets or strings do not split.
func SplitSelectors(text string) []string {
	var sels []string
	depth := 0
	var quote rune
	start := 0
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			if sel := strings.TrimSpace(text[start:i]); sel != "" {
				sels = append(sels, sel)
			}
			start = i + 1
		}
	}
	if sel := strings.TrimSpace(text[start:]); sel != "" {
		sels = append(sels, sel)
	}
	return sels
}
