/*
Package rtl mirrors CSS from left-to-right to right-to-left.

A Flipper rewrites direction-dependent properties and values to their
opposite-direction equivalents:

   margin-left: 10px            → margin-right: 10px
   float: left                  → float: right
   padding: 1px 2px 3px 4px     → padding: 1px 4px 3px 2px
   border-radius: 1px 2px       → border-radius: 2px 1px
   box-shadow: 2px 0 red        → box-shadow: -2px 0 red
   transform: translateX(5px)   → transform: translateX(-5px)
   background-position: 20% 0   → background-position: 80% 0
   cursor: e-resize             → cursor: w-resize
   @keyframes slide-ltr         → @keyframes slide-rtl

Flipping never adds or removes declarations, so a mirrored rule is
index-aligned with its original. Values which need no change are returned
verbatim.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rtl

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rtl.flip'.
func tracer() tracing.Trace {
	return tracing.Select("rtl.flip")
}
