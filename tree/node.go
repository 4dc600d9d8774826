package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage an arena of mutable nodes. Each node carries a payload of type parameter T
and is addressed by a NodeID handle. Parent links are handles as well, so removing
a node from its parent never leaves a dangling reference: the node simply becomes
detached and stays addressable until the arena is dropped.
*/

// NodeID is a handle for a node within a Tree.
type NodeID int

// None is the handle of no node. It is the parent of roots and detached nodes.
const None NodeID = -1

// Tree is an arena of nodes. The zero value is not usable, use New().
type Tree[T any] struct {
	nodes []node[T]
}

type node[T any] struct {
	parent   NodeID   // parent node of this node
	children []NodeID // children, in sequence
	payload  T        // nodes may carry a payload of arbitrary type
}

// New creates an empty arena.
func New[T any]() *Tree[T] {
	return &Tree[T]{nodes: make([]node[T], 0, 64)}
}

// NewNode creates a new, detached tree node with a given payload.
func (t *Tree[T]) NewNode(payload T) NodeID {
	t.nodes = append(t.nodes, node[T]{parent: None, payload: payload})
	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of nodes ever allocated in the arena, including
// detached ones.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Valid is true if id addresses a node of this arena.
func (t *Tree[T]) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree[T]) at(id NodeID) *node[T] {
	assertThat(t.Valid(id), "invalid node id %d", id)
	return &t.nodes[id]
}

// Payload returns a pointer to the payload of a node. The pointer is
// invalidated by the next call to NewNode or Clone.
func (t *Tree[T]) Payload(id NodeID) *T {
	return &t.at(id).payload
}

// String is a debugging helper.
func (t *Tree[T]) String(id NodeID) string {
	n := t.at(id)
	return fmt.Sprintf("(Node #%d #ch=%d %v)", id, len(n.children), n.payload)
}

// AddChild appends a child node to the children of parent.
// If the child is currently attached elsewhere, it is isolated first.
// It returns the parent node to allow for chaining.
func (t *Tree[T]) AddChild(parent NodeID, ch NodeID) NodeID {
	return t.InsertChildAt(parent, t.ChildCount(parent), ch)
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. Positions beyond the end append.
// If the child is currently attached elsewhere, it is isolated first.
// It returns the parent node to allow for chaining.
func (t *Tree[T]) InsertChildAt(parent NodeID, i int, ch NodeID) NodeID {
	assertThat(parent != ch, "cannot make node %d a child of itself", ch)
	t.Isolate(ch)
	p := t.at(parent)
	if i < 0 {
		i = 0
	}
	if i >= len(p.children) {
		p.children = append(p.children, ch)
	} else {
		p.children = append(p.children, None)   // make room for one child
		copy(p.children[i+1:], p.children[i:]) // shift i+1..n
		p.children[i] = ch
	}
	t.at(ch).parent = parent
	return parent
}

// SetChildAt replaces the child at position i with ch. The former child is
// isolated. If ch is a child of parent already, it is isolated first and i
// refers to the remaining children. If i is out of range, ch is appended.
// It returns the parent node to allow for chaining.
func (t *Tree[T]) SetChildAt(parent NodeID, i int, ch NodeID) NodeID {
	assertThat(parent != ch, "cannot make node %d a child of itself", ch)
	if i >= 0 && i < t.ChildCount(parent) && t.at(parent).children[i] == ch {
		return parent
	}
	t.Isolate(ch)
	if i < 0 || i >= t.ChildCount(parent) {
		return t.AddChild(parent, ch)
	}
	old := t.at(parent).children[i]
	t.at(old).parent = None
	t.at(parent).children[i] = ch
	t.at(ch).parent = parent
	return parent
}

// Parent returns the parent node or None (for roots and detached nodes).
func (t *Tree[T]) Parent(id NodeID) NodeID {
	return t.at(id).parent
}

// Isolate removes a node from its parent. The node and its subtree stay
// valid and may be re-attached later.
// Isolate returns the isolated node.
func (t *Tree[T]) Isolate(id NodeID) NodeID {
	n := t.at(id)
	if n.parent == None {
		return id
	}
	p := t.at(n.parent)
	for i, ch := range p.children {
		if ch == id {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = None
	return id
}

// ChildCount returns the number of children-nodes for a node.
func (t *Tree[T]) ChildCount(id NodeID) int {
	return len(t.at(id).children)
}

// Child returns the n-th child of a node.
func (t *Tree[T]) Child(id NodeID, n int) (NodeID, bool) {
	chs := t.at(id).children
	if n < 0 || n >= len(chs) {
		return None, false
	}
	return chs[n], true
}

// Children returns a copy of the children of a node. Clients may
// mutate the tree while iterating over the returned slice.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	chs := t.at(id).children
	cp := make([]NodeID, len(chs))
	copy(cp, chs)
	return cp
}

// IndexOfChild returns the index of a child within the list of children
// of parent, or -1.
func (t *Tree[T]) IndexOfChild(parent NodeID, ch NodeID) int {
	for i, c := range t.at(parent).children {
		if c == ch {
			return i
		}
	}
	return -1
}

// Root follows parent links up to the top-most ancestor of id.
func (t *Tree[T]) Root(id NodeID) NodeID {
	for {
		p := t.at(id).parent
		if p == None {
			return id
		}
		id = p
	}
}

// Clone deep-copies the subtree starting at id. The copy is detached.
// copyPayload may be nil, in which case payloads are copied by assignment.
func (t *Tree[T]) Clone(id NodeID, copyPayload func(T) T) NodeID {
	payload := t.at(id).payload
	if copyPayload != nil {
		payload = copyPayload(payload)
	}
	c := t.NewNode(payload)
	for _, ch := range t.Children(id) {
		t.AddChild(c, t.Clone(ch, copyPayload))
	}
	return c
}
