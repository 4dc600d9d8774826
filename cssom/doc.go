/*
Package cssom provides a mutable object model for CSS stylesheets.

Status

The model covers what stylesheet rewriting needs: at-rules (with or
without a block), style rules and declarations, in source order.
It does not interpret values and does not validate CSS.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
A Sheet is a tree of nodes living in an arena (see package tree). Nodes are
addressed by NodeID handles:

   root
    ├── @media screen
    │    └── .a, .b
    │         ├── margin-left: 10px
    │         └── color: red
    └── @keyframes slide
         └── from
              └── left: 0

Every node knows its parent. Mutating operations (InsertBefore, InsertAfter,
Append, Remove, Replace) relink handles; a removed node stays valid but
detached, so clients may hold on to handles across mutations.

Parsing CSS text into a Sheet is the job of adapter packages (e.g., see
package douceuradapter). Serialization back to CSS text is done by
Sheet.WriteTo.

Walkers

   WalkAtRules(pattern, fn)   // at-rules with a name matching pattern
   WalkRules(fn)              // all style rules
   WalkDecls(pattern, fn)     // declarations with a property matching pattern

Walkers visit nodes in tree order. The set of visited nodes is fixed when
the walk starts; nodes removed by fn before they are reached are skipped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rtl.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("rtl.cssom")
}
