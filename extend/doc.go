/*
Package extend implements the "extend" plugin for style sheets.

A style may inherit properties from other styles by setting the reserved
property "extend":

    a:
      float: left
    b:
      extend: a
      width: 1px

resolves rule b to

    b:
      float: left
      width: 1px

Extend values may be style objects, lists of them, names of other rules of
the same style sheet, or functions of external data (see package style).
A rule's own properties always override inherited ones. Nested blocks,
e.g. '&:hover', are merged property by property, with the same precedence.

Resolve is a pure function from an authored style to a resolved style.
Type Plugin wraps it for hosts processing style sheets in two phases: it
resolves styles when rules are created, and re-resolves them in place
whenever a rule is re-evaluated against changed external data. Re-resolution
always starts from the rule's authored style, never from a previous result.

Problems with extends never stop processing: a rule extending itself (or a
cyclic chain of named extends) is reported to a warning sink and contributes
nothing; references to unknown rules are ignored silently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package extend

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'extend.resolver'.
func tracer() tracing.Trace {
	return tracing.Select("extend.resolver")
}
