package extend

import (
	"fmt"

	"github.com/npillmayer/extend/cssom"
	"github.com/npillmayer/extend/style"
)

// Resolver computes resolved styles for a rule. A Resolver is cheap to
// create and must not be used concurrently.
type Resolver struct {
	rule   cssom.Rule       // rule owning the style to resolve, may be nil
	sheet  cssom.StyleSheet // registry for named extends, may be nil
	conf   config
	active []cssom.Rule // named targets currently being expanded
}

// NewResolver creates a resolver for styles of rule, looking up named extends
// in sheet. Both rule and sheet may be nil.
func NewResolver(rule cssom.Rule, sheet cssom.StyleSheet, opts ...Option) *Resolver {
	return &Resolver{
		rule:  rule,
		sheet: sheet,
		conf:  newConfig(opts),
	}
}

// Resolve computes the resolved style for st, owned by rule. Named extends
// are looked up in sheet. Neither st, rule nor sheet are modified, and the
// resolved style does not share nested objects with any input.
//
// If st carries no extend, the result is a copy of st.
func Resolve(st *style.Object, rule cssom.Rule, sheet cssom.StyleSheet, opts ...Option) *style.Object {
	return NewResolver(rule, sheet, opts...).Resolve(st)
}

// Resolve computes the resolved style for st.
func (r *Resolver) Resolve(st *style.Object) *style.Object {
	r.active = r.active[:0]
	return r.extend(st, style.New())
}

// extend merges st into acc: first everything inherited via extend, then st's
// own properties.
func (r *Resolver) extend(st *style.Object, acc *style.Object) *style.Object {
	if st == nil {
		return acc
	}
	r.mergeExtend(st.Extend(), acc)
	r.mergeOwn(st, acc)
	return acc
}

func (r *Resolver) mergeExtend(ext style.Extend, acc *style.Object) {
	if style.IsAbsent(ext) {
		return
	}
	var name string
	var list []style.Extend
	var obj *style.Object
	var lazy style.LazyFunc
	switch m := ext.Match(); m {
	case m.Name(&name):
		r.mergeNamed(name, acc)
	case m.List(&list):
		for _, e := range list {
			r.mergeExtend(e, acc)
		}
	case m.Inline(&obj):
		r.extend(obj, acc)
	case m.Lazy(&lazy):
		r.mergeExtend(lazy(r.conf.data), acc)
	default:
		tracer().Debugf("ignoring malformed extend value %v", ext)
	}
}

func (r *Resolver) mergeNamed(name string, acc *style.Object) {
	if r.sheet == nil {
		return
	}
	target := r.sheet.GetRule(name)
	if target == nil {
		tracer().P("extend", name).Debugf("no rule named %q, ignoring", name)
		return
	}
	if r.rule != nil && target == r.rule {
		r.conf.warn(fmt.Sprintf("a rule tries to extend itself: %s", ruleString(r.rule)))
		return
	}
	if r.conf.guard && r.isActive(target) {
		r.conf.warn(fmt.Sprintf("cyclic extend chain at rule %q, while resolving %s",
			name, ruleString(r.rule)))
		return
	}
	r.active = append(r.active, target)
	r.extend(target.OriginalStyle(), acc)
	r.active = r.active[:len(r.active)-1]
}

// mergeOwn copies the properties of st into acc. Nested objects are merged
// into nested objects already present in acc, all other values overwrite.
func (r *Resolver) mergeOwn(st *style.Object, acc *style.Object) {
	st.Range(func(key string, v style.Value) bool {
		var sub, prev *style.Object
		switch m := v.Match(); m {
		case m.Object(&sub):
			if p, ok := acc.Get(key); ok && style.IsObject(p) {
				prev = p.(*style.Object)
				r.extend(sub, prev)
			} else {
				acc.Set(key, r.extend(sub, style.New()))
			}
		default:
			acc.Set(key, v)
		}
		return true
	})
}

func (r *Resolver) isActive(target cssom.Rule) bool {
	for _, a := range r.active {
		if a == target {
			return true
		}
	}
	return false
}

func ruleString(rule cssom.Rule) string {
	if rule == nil {
		return "<anonymous rule>"
	}
	if s, ok := rule.(fmt.Stringer); ok {
		return s.String()
	}
	return rule.Key() + " " + rule.Style().String()
}
