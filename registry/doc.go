/*
Package registry keeps the injected properties of components.

A component may declare properties which it does not use itself but forwards
to some of its children: an attribute like "disabled" or an event handler like
"onclick". Every such property carries a selector naming the children that
receive it. The registry maps component names to their injected properties and
the compiled selectors, and answers for a given position in the component's
children whether a property is to be injected there.

Properties are usually registered from a component's props struct, tagged
like this:

   type LoginFormProps struct {
       Disabled bool   `selector:"form > input; form > MyButton" props:"optional"`
       OnSubmit func() `selector:"form > MyButton:last" inject_as:"onclick"`
       Title    string
   }

Fields without a selector tag are not injected. Fields of function type are
handlers, all others are attributes. Package registry/scan extracts the same
information from Go source files.

Registration is meant to happen once, at startup; lookups may run
concurrently afterwards.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'propsel.registry'.
func tracer() tracing.Trace {
	return tracing.Select("propsel.registry")
}
