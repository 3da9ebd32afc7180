/*
Package cssom provides the style sheet object model the extend plugin works
within.

The plugin is meant to run inside a host which owns style sheets and rules:
it creates rules from authored style objects, runs a pipeline of plugins over
every rule's style, and re-evaluates rules when external data changes.
This package de-couples the plugin from such hosts by introducing the
interfaces StyleSheet, Rule and Plugin. Hosts will have to provide concrete
implementations of StyleSheet and Rule.

Type Sheet is a small in-memory host, sufficient for tests and command line
tools. It processes rules in the order they have been added and re-evaluates
all of them on Update.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'extend.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("extend.cssom")
}
