package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a traversal is called with a nil predicate
// or action.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// SkipChildren may be returned by an Action to prevent descending into
// the children of the current node. It does not abort the traversal.
var SkipChildren = errors.New("skip children of node")

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for various traversal functions to
// collect a selection of nodes.
type Predicate[T any] func(t *Tree[T], test NodeID) bool

// Action is a function type to operate on tree nodes during traversal.
// It receives the node, its parent and its position among the parent's
// children.
type Action[T any] func(t *Tree[T], n NodeID, parent NodeID, position int) error

// TopDown traverses a tree starting at (and including) start.
// The traversal guarantees that parents are always processed before
// their children, and siblings in sequence (depth first, pre-order).
//
// The sequence of nodes is fixed before the first action is called.
// Nodes which have been detached from start's tree by an earlier action
// are not visited, nodes inserted by an action are not visited either.
//
// If the action returns SkipChildren for a node, descending the branch below
// this node is skipped. Any other error aborts the traversal and is returned.
func (t *Tree[T]) TopDown(start NodeID, action Action[T]) error {
	if action == nil {
		return ErrInvalidFilter
	}
	root := t.Root(start)
	order := t.preorder(start, nil)
	tracer().Debugf("top-down traversal of %d nodes, starting at #%d", len(order), start)
	skipped := make(map[NodeID]bool)
	for _, n := range order {
		p := t.Parent(n)
		if p != None && skipped[p] {
			skipped[n] = true
			continue
		}
		if n != start && t.Root(n) != root {
			continue // detached in the meantime
		}
		position := 0
		if p != None {
			position = t.IndexOfChild(p, n)
		}
		if err := action(t, n, p, position); err != nil {
			if err == SkipChildren {
				skipped[n] = true
				continue
			}
			return err
		}
	}
	return nil
}

func (t *Tree[T]) preorder(n NodeID, acc []NodeID) []NodeID {
	acc = append(acc, n)
	for _, ch := range t.at(n).children {
		acc = t.preorder(ch, acc)
	}
	return acc
}

// AncestorWith finds the closest ancestor matching the given predicate.
// The search does not include the start node.
func (t *Tree[T]) AncestorWith(start NodeID, predicate Predicate[T]) (NodeID, bool) {
	if predicate == nil {
		return None, false
	}
	for n := t.Parent(start); n != None; n = t.Parent(n) {
		if predicate(t, n) {
			return n, true
		}
	}
	return None, false
}
