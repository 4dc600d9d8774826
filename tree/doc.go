/*
Package tree implements an all-purpose arena tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node carries a payload and an ordered
list of children, and knows its parent. Nodes live in an arena and are
addressed by NodeID handles instead of pointers. Removing a node from its
parent (Isolate) therefore never invalidates the node itself; it just
becomes a detached root which may be re-attached elsewhere.

Trees are not safe for concurrent mutation. Clients operating on more than
one tree concurrently must use independent arenas.

Traversal

   TopDown(start, action)           // pre-order traversal, parents first
   AncestorWith(start, pred)        // find closest ancestor with a given predicate

Mutation

   AddChild / InsertChildAt / SetChildAt   // attach, moving nodes if needed
   Isolate                                 // detach from parent
   Clone                                   // deep copy of a subtree

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rtl.tree'.
func tracer() tracing.Trace {
	return tracing.Select("rtl.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tree: "+msg, msgargs...)
		panic(msg)
	}
}
