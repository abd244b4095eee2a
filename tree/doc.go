/*
Package tree implements a generic tree type and a positional depth-first walk.

Nodes carry a payload of a type parameter T and keep an ordered list of
children. Trees are built once (usually by a parser) and then walked any
number of times; walking never modifies a tree, so concurrent walks of the
same tree are fine.

Walks

Walk visits the nodes of a tree top down and left to right. While walking it
reports every move to a Tracker:

   NewChild(tag, total, ofType)   // entering the first child of a node
   NextSibling(tag)               // moving on to the next sibling
   Finish()                       // leaving the last child of a node

Before a level of siblings is entered, its children are counted, in total and
per tag. The counting tables are recycled between levels of the same depth,
so a walk allocates one table per depth of the tree and not one per node.
A *branch.Branch is a Tracker; this is how selectors learn about the
position of the visited node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'propsel.tree'.
func tracer() tracing.Trace {
	return tracing.Select("propsel.tree")
}
