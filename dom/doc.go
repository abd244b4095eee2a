/*
Package dom provides markup documents as trees of elements.

Documents are parsed with the tokenizer of golang.org/x/net/html, but unlike
an HTML5 parser we keep the case of tag names: components are written
with a leading upper case letter (<MyButton/>), and selectors tell them from
html tags by exactly that. Text, comments and doctypes are dropped, as
selectors only ever look at elements. No implicit elements (html, head,
body, tbody) are inserted.

The tree of a document is a tree.Node[*Element] with a synthetic root tagged
"#document". The root is not part of any selector path: a selector "div >
input" selects inputs in top-level divs.

Select walks a document and collects the elements a selector matches.
Inject does the same for all injected properties of a component registered
in a registry.Registry.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'propsel.dom'.
func tracer() tracing.Trace {
	return tracing.Select("propsel.dom")
}
