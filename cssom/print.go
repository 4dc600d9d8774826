package cssom

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

const indentUnit = "  "

// printer accumulates bytes written and remembers the first error.
type printer struct {
	w     io.Writer
	total int64
	err   error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	n, err := fmt.Fprintf(p.w, format, args...)
	p.total += int64(n)
	p.err = err
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	p := &printer{w: w}
	for _, ch := range s.t.Children(s.root) {
		s.writeNode(p, ch, "")
	}
	return p.total, p.err
}

// String returns the CSS text of the stylesheet.
func (s *Sheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// NodeString returns the CSS text of a single node and its subtree.
func (s *Sheet) NodeString(id NodeID) string {
	var sb strings.Builder
	s.writeNode(&printer{w: &sb}, id, "")
	return sb.String()
}

func (s *Sheet) writeNode(p *printer, id NodeID, indent string) {
	it := s.Item(id)
	switch it.Kind {
	case DeclNode:
		if it.Important {
			p.printf("%s%s: %s !important;\n", indent, it.Prop, it.Value)
		} else {
			p.printf("%s%s: %s;\n", indent, it.Prop, it.Value)
		}
	case RuleNode:
		p.printf("%s%s {\n", indent, it.Selector)
		s.writeChildren(p, id, indent)
		p.printf("%s}\n", indent)
	case AtRuleNode:
		head := "@" + it.Name
		if it.Params != "" {
			head += " " + it.Params
		}
		if it.NoBlock && s.t.ChildCount(id) == 0 {
			p.printf("%s%s;\n", indent, head)
			return
		}
		p.printf("%s%s {\n", indent, head)
		s.writeChildren(p, id, indent)
		p.printf("%s}\n", indent)
	case RootNode:
		for _, ch := range s.t.Children(id) {
			s.writeNode(p, ch, indent)
		}
	}
}

func (s *Sheet) writeChildren(p *printer, id NodeID, indent string) {
	for _, ch := range s.t.Children(id) {
		s.writeNode(p, ch, indent+indentUnit)
	}
}

// Dump returns a tree-shaped rendering of the stylesheet's structure,
// useful for debugging.
func (s *Sheet) Dump() string {
	t := treeprint.New()
	t.SetValue("stylesheet")
	for _, ch := range s.t.Children(s.root) {
		s.dumpNode(t, ch)
	}
	return t.String()
}

func (s *Sheet) dumpNode(branch treeprint.Tree, id NodeID) {
	it := s.Item(id)
	label := fmt.Sprintf("%s %s", it.Kind, it)
	if s.t.ChildCount(id) == 0 {
		branch.AddNode(label)
		return
	}
	b := branch.AddBranch(label)
	for _, ch := range s.t.Children(id) {
		s.dumpNode(b, ch)
	}
}
