package cssom

import "github.com/npillmayer/extend/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// The extend plugin uses it for one purpose only: to find rules referenced
// by name.
//
// See interface Rule.
type StyleSheet interface {
	GetRule(name string) Rule // rule for name, or nil
}

// Rule is the type stylesheets consist of.
//
// Rules are compared by identity, therefore implementations must be
// comparable (usually pointer types).
//
// See interface StyleSheet.
type Rule interface {
	Key() string                  // name of the rule
	Style() *style.Object         // effective style
	SetStyle(*style.Object)       // replace the effective style
	OriginalStyle() *style.Object // style as authored, before any plugin ran
	Sheet() StyleSheet            // owning style sheet; may be nil
}

// Plugin is a step in a host's rule-processing pipeline.
type Plugin interface {
	// OnProcessStyle is called once, when a rule's style is first established.
	// It returns the style to use for the rule.
	OnProcessStyle(st *style.Object, rule Rule, sheet StyleSheet) *style.Object
	// OnUpdate is called whenever a rule is re-evaluated against external
	// data. Plugins modify rule.Style() in place.
	OnUpdate(data style.Data, rule Rule)
}

// Forgetter is an optional interface for plugins which keep state per rule.
// A Sheet calls Forget for a rule replaced by a rule of the same name.
type Forgetter interface {
	Forget(rule Rule)
}
