/*
Package style defines style objects, the unit of work for the extend plugin.

A style object is a mapping from property names to values, as authored in a
CSS-in-JS style sheet:

    b:
      extend: a
      width: 1px
      '&:hover':
        color: red

Values are either scalars (type Property for strings, type Number for numbers)
or nested style objects, which are used for pseudo-class blocks and nested
selectors. Property order is significant for the hosts serializing styles, so
Object keeps insertion order. Overwriting a property keeps its position.

The reserved property "extend" is not stored with the other properties, but in
a slot of its own, holding a value of the sum type Extend. Extend has four
variants:

    Name(string)        reference to another rule of the style sheet
    List(…Extend)       sequence of extends, later ones override earlier ones
    Inline(*Object)     a style object
    Lazy(func(Data))    computed from external data when a rule is evaluated

Clients use pattern matching to distinguish variants:

    var name string
    var obj *style.Object
    switch m := ext.Match(); m {
    case m.Name(&name):
        …
    case m.Inline(&obj):
        …
    }

Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'extend.style'.
func tracer() tracing.Trace {
	return tracing.Select("extend.style")
}
