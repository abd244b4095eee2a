/*
Package selector parses and matches property selectors.

A property selector names the elements of a component's children which
should receive an injected property. Selectors are written in one of two
flavours, which may be mixed freely:

   div > input:first; div > MyButton:[2..=4]        // rusty
   div > input:first-child; div > MyButton:nth-child(3n+2)   // CSS

A selector text is a list of alternatives separated by ';'. Every
alternative is a chain of segments separated by '>'. A segment is a tag name
(html tag, component name or '*') with an optional positional suffix.
Suffixes starting with ':' count among all siblings, suffixes starting with
'@' count among the siblings of the same tag only.

Rusty suffixes

   :even :odd :first :last :only
   :[2]  :[0,3,8]  :[2..5]  :[2..=5]  :[2..]  :[..5]  :[3n+2]
   :last[0,2]  :last[3n]  :not[div,MyButton]

CSS suffixes

   :first-child :last-child :only-child
   :first-of-type :last-of-type :only-of-type
   :nth-child(…) :nth-last-child(…) :nth-of-type(…) :nth-last-of-type(…)
   :not(div, MyButton)

Positions are 0-based throughout, i.e. ':[0]' selects the first sibling.
Parsing yields Selectors, a map from the chain of segment names
(the identifier, e.g. "div input") to the alternatives sharing it. A walker
tracking its position with a branch.Branch asks Selectors.Matches whether
the node it visits is selected.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'propsel.selector'.
func tracer() tracing.Trace {
	return tracing.Select("propsel.selector")
}
