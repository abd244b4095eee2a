/*
Package branch tracks the position of a node during a depth-first walk.

A Branch is the path from the root of a tree down to the node currently
visited. Every level of the path remembers the tag of the node at that level,
its ordinal among all siblings and, per tag, how many siblings of that tag
have been seen so far. This is all the information the selectors of package
selector need to decide whether a node is selected, without ever looking at
the tree again.

Walkers drive a Branch through four events:

   Child(tag)          // descend: open a new level with a first child
   Sibling(tag)        // move right: next sibling at the innermost level
   Last()              // ascend: close the innermost level
   NewChild(tag, ...)  // like Child, but with sibling totals known up front

Totals are optional. Positional predicates which count from the end of a
sibling list (last, only, last[...]) can only hold if the walker announced
the totals with NewChild.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package branch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'propsel.branch'.
func tracer() tracing.Trace {
	return tracing.Select("propsel.branch")
}
