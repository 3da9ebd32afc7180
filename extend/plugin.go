package extend

import (
	"github.com/npillmayer/extend/cssom"
	"github.com/npillmayer/extend/style"
)

// Plugin integrates extend resolution into a host's rule-processing pipeline.
// It implements cssom.Plugin.
//
// For every rule carrying an extend, Plugin remembers the rule's authored
// style (the base style) in a side table. Updates re-resolve from the base
// style, thus properties contributed by earlier resolutions do not persist.
//
// A Plugin is not safe for concurrent use; hosts process a style sheet in a
// single pass.
type Plugin struct {
	opts  []Option
	bases map[cssom.Rule]*baseStyle
}

// baseStyle is the snapshot of a rule's authored style. It is never modified
// after capture.
type baseStyle struct {
	props *style.Object // authored properties, without extend
	ext   style.Extend  // authored extend
}

// New creates an extend plugin.
func New(opts ...Option) *Plugin {
	return &Plugin{
		opts:  opts,
		bases: make(map[cssom.Rule]*baseStyle),
	}
}

// OnProcessStyle resolves st, if it carries an extend. Otherwise st is
// returned unchanged.
//
// Interface cssom.Plugin
func (p *Plugin) OnProcessStyle(st *style.Object, rule cssom.Rule, sheet cssom.StyleSheet) *style.Object {
	if !st.HasExtend() {
		return st
	}
	if rule != nil {
		p.capture(rule, st)
	}
	return NewResolver(rule, sheet, p.opts...).Resolve(st)
}

// OnUpdate re-resolves the style of rule against data, modifying rule.Style()
// in place. Rules without an authored extend are left untouched.
//
// Interface cssom.Plugin
func (p *Plugin) OnUpdate(data style.Data, rule cssom.Rule) {
	if rule == nil {
		return
	}
	base := p.base(rule)
	if base == nil {
		return
	}
	extending := base.props.ShallowCopy()
	extending.SetExtend(base.ext)
	if rule.Style() == nil {
		rule.SetStyle(style.New())
	}
	opts := append(p.opts[:len(p.opts):len(p.opts)], WithData(data))
	resolved := NewResolver(rule, rule.Sheet(), opts...).Resolve(extending)
	apply(rule, resolved)
}

// Forget drops the base style remembered for rule. cssom.Sheet calls it when
// a rule is replaced; other hosts should call it when removing a rule.
//
// Interface cssom.Forgetter
func (p *Plugin) Forget(rule cssom.Rule) {
	delete(p.bases, rule)
}

// base returns the base style for rule, capturing it from the rule's
// authored style on first use. Returns nil if the rule has no extend.
func (p *Plugin) base(rule cssom.Rule) *baseStyle {
	if b, ok := p.bases[rule]; ok {
		return b
	}
	authored := rule.OriginalStyle()
	if !authored.HasExtend() {
		return nil
	}
	return p.capture(rule, authored)
}

// capture stores the base style for rule, exactly once.
func (p *Plugin) capture(rule cssom.Rule, st *style.Object) *baseStyle {
	if b, ok := p.bases[rule]; ok {
		return b
	}
	b := &baseStyle{
		props: st.Clone().SetExtend(nil),
		ext:   st.Extend(),
	}
	p.bases[rule] = b
	tracer().P("rule", rule.Key()).Debugf("captured base style %s", b.props)
	return b
}

// apply replaces the content of the rule's style by a resolved style, in
// place. Properties not present in the resolved style are dropped.
func apply(rule cssom.Rule, resolved *style.Object) {
	target := rule.Style()
	for _, key := range target.Keys() {
		target.Delete(key)
	}
	target.SetExtend(nil)
	resolved.Range(func(key string, v style.Value) bool {
		target.Set(key, v)
		return true
	})
}

var _ cssom.Plugin = &Plugin{}
var _ cssom.Forgetter = &Plugin{}
