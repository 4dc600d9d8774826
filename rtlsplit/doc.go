/*
Package rtlsplit rewrites an LTR-authored stylesheet so that it serves both
text directions.

Overview

Every style rule is mirrored (see package rtl) and compared to its
original, declaration by declaration. Declarations which change under
mirroring, or whose property must always be split, move out of the rule
into a pair of direction-scoped rules inserted right after it:

   .box { margin-left: 10px; color: red; }

becomes

   .box { color: red; }
   html[dir='ltr'] .box { margin-left: 10px; }
   html[dir='rtl'] .box { margin-right: 10px; }

Rules which end up empty are removed. Rules with a selector starting with
"html", rules matched by the ignore pattern and rules inside at-rules other
than @media are left alone.

Animations

Before splitting, every @keyframes block gets a mirrored twin named
"<name>-rtl", inserted before it. Declarations of animation and
animation-name referencing a known keyframes name are remembered in a side
table (Markers), so that the RTL copy of the declaration refers to the
mirrored animation:

   .a { animation: slide 2s; }

becomes

   html[dir='ltr'] .a { animation: slide 2s; }
   html[dir='rtl'] .a { animation: slide-rtl 2s; }

provided animation is one of the convertible properties (it is by default).

Phases run in order: HarvestAnimationNames, MirrorKeyframes, MarkAnimations,
Splitter.Split, Markers.Cleanup. Transformer.Transform runs all of them.

A Transformer holds compiled configuration only and may be shared between
goroutines, as long as each call operates on its own stylesheet. If a call
fails, the stylesheet is left in an unspecified state.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rtlsplit

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rtl.split'.
func tracer() tracing.Trace {
	return tracing.Select("rtl.split")
}
