package cssom

import "fmt"

// Append attaches nodes as the last children of parent, in order.
// Nodes attached elsewhere are moved.
func (s *Sheet) Append(parent NodeID, nodes ...NodeID) {
	for _, n := range nodes {
		s.t.AddChild(parent, n)
	}
}

// InsertBefore attaches node as the sibling immediately preceding ref.
func (s *Sheet) InsertBefore(ref, node NodeID) error {
	p := s.t.Parent(ref)
	if p == None {
		return fmt.Errorf("cannot insert before %s: %w", s.Item(ref), ErrDetached)
	}
	s.t.Isolate(node)
	s.t.InsertChildAt(p, s.t.IndexOfChild(p, ref), node)
	return nil
}

// InsertAfter attaches node as the sibling immediately following ref.
func (s *Sheet) InsertAfter(ref, node NodeID) error {
	p := s.t.Parent(ref)
	if p == None {
		return fmt.Errorf("cannot insert after %s: %w", s.Item(ref), ErrDetached)
	}
	s.t.Isolate(node)
	s.t.InsertChildAt(p, s.t.IndexOfChild(p, ref)+1, node)
	return nil
}

// Remove detaches a node from its parent. The node keeps its children and
// may be re-attached later.
func (s *Sheet) Remove(id NodeID) {
	s.t.Isolate(id)
}

// Replace puts node at the position of old. old is detached.
func (s *Sheet) Replace(old, node NodeID) error {
	p := s.t.Parent(old)
	if p == None {
		return fmt.Errorf("cannot replace %s: %w", s.Item(old), ErrDetached)
	}
	s.t.Isolate(node)
	s.t.SetChildAt(p, s.t.IndexOfChild(p, old), node)
	return nil
}

// RemoveIfEmpty detaches id if it has no children. It returns true if the
// node has been removed.
func (s *Sheet) RemoveIfEmpty(id NodeID) bool {
	if s.t.ChildCount(id) > 0 || s.t.Parent(id) == None {
		return false
	}
	tracer().Debugf("removing empty %s %q", s.Kind(id), s.Item(id))
	s.t.Isolate(id)
	return true
}

// Clone deep-copies the subtree at id. The copy is detached.
func (s *Sheet) Clone(id NodeID) NodeID {
	return s.t.Clone(id, copyItem)
}
