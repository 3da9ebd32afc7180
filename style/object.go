package style

import (
	"fmt"
	"strings"
)

// ExtendKey is the name of the reserved property holding extend values.
const ExtendKey = "extend"

// Object is a style object: an ordered mapping from property names to values,
// plus an optional extend value. nil is a legal (empty) style object for all
// read operations.
type Object struct {
	keys  []string         // property names in insertion order
	props map[string]Value // property values
	ext   Extend           // reserved property "extend"
}

// New creates a style object, pre-filled with properties kv.
func New(kv ...KeyValue) *Object {
	o := &Object{}
	for _, p := range kv {
		o.Set(p.Key, p.Value)
	}
	return o
}

// Props creates a style object from an alternating list of keys and values.
// Keys must be strings. Values may be strings, integers, floats, Property,
// Number or *Object. A value for key "extend" must be of type Extend, or a
// string (which is taken as a rule name), or an *Object.
//
//     style.Props("float", "left", "width", "1px", "extend", style.Name("a"))
//
// Malformed entries are skipped (and traced).
func Props(kv ...interface{}) *Object {
	o := &Object{}
	if len(kv)%2 != 0 {
		tracer().Errorf("style.Props called with odd number of arguments")
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			tracer().Errorf("style.Props: key #%d is not a string: %v", i/2, kv[i])
			continue
		}
		if key == ExtendKey {
			o.SetExtend(extendFrom(kv[i+1]))
			continue
		}
		if v := valueFrom(kv[i+1]); v != nil {
			o.Set(key, v)
		} else {
			tracer().P("key", key).Errorf("style.Props: unsupported value type %T", kv[i+1])
		}
	}
	return o
}

func valueFrom(x interface{}) Value {
	switch v := x.(type) {
	case Value:
		return v
	case string:
		return Property(v)
	case int:
		return Number(v)
	case int64:
		return Number(v)
	case float32:
		return Number(v)
	case float64:
		return Number(v)
	}
	return nil
}

func extendFrom(x interface{}) Extend {
	switch e := x.(type) {
	case Extend:
		return e
	case string:
		return Name(e)
	case *Object:
		return Inline(e)
	}
	return nil
}

// Len returns the number of properties, not counting "extend".
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the property names in order. "extend" is never included.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Has is a predicate wether a property is set.
func (o *Object) Has(key string) bool {
	if o == nil || o.props == nil {
		return false
	}
	_, ok := o.props[key]
	return ok
}

// Get a property's value.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.props == nil {
		return nil, false
	}
	v, ok := o.props[key]
	return v, ok
}

// Set a property's value. Overwrites an existing value, if present, keeping
// the property's position. Setting "extend" is not allowed; use SetExtend.
// Setting a nil value does nothing.
func (o *Object) Set(key string, v Value) *Object {
	if key == ExtendKey {
		tracer().Errorf("style: use SetExtend to set property 'extend'")
		return o
	}
	if v == nil {
		return o
	}
	if o.props == nil {
		o.props = make(map[string]Value)
	}
	if _, exists := o.props[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.props[key] = v
	return o
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (o *Object) Add(key string, v Value) *Object {
	if o.Has(key) {
		return o
	}
	return o.Set(key, v)
}

// Delete removes a property. Returns true if the property has been present.
func (o *Object) Delete(key string) bool {
	if !o.Has(key) {
		return false
	}
	delete(o.props, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Range calls f for every property in order, until f returns false.
// f must not modify o.
func (o *Object) Range(f func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !f(k, o.props[k]) {
			return
		}
	}
}

// Extend returns the extend value, or nil if absent.
func (o *Object) Extend() Extend {
	if o == nil {
		return nil
	}
	return o.ext
}

// SetExtend sets the extend value. nil removes it.
func (o *Object) SetExtend(e Extend) *Object {
	o.ext = e
	return o
}

// HasExtend is a predicate wether o carries a non-absent extend value.
func (o *Object) HasExtend() bool {
	return o != nil && !IsAbsent(o.ext)
}

// Clone creates a deep copy of o. Nested objects are copied, extend values are
// shared (they are never modified by this module).
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := o.ShallowCopy()
	for k, v := range c.props {
		if sub, ok := v.(*Object); ok {
			c.props[k] = sub.Clone()
		}
	}
	c.ext = o.ext
	return c
}

// ShallowCopy copies the properties of o, without "extend". Nested objects
// are shared with o.
func (o *Object) ShallowCopy() *Object {
	c := &Object{}
	if o == nil || len(o.keys) == 0 {
		return c
	}
	c.keys = make([]string, len(o.keys))
	copy(c.keys, o.keys)
	c.props = make(map[string]Value, len(o.props))
	for k, v := range o.props {
		c.props[k] = v
	}
	return c
}

// Equal compares the properties of two style objects, recursing into nested
// objects. Property order and extend values are not considered.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	eq := true
	o.Range(func(k string, v Value) bool {
		w, ok := other.Get(k)
		if !ok {
			eq = false
			return false
		}
		eq = valuesEqual(v, w)
		return eq
	})
	return eq
}

func valuesEqual(v, w Value) bool {
	var a, b *Object
	ma, mb := v.Match(), w.Match()
	if ma.Object(&a) == ma {
		if mb.Object(&b) != mb {
			return false
		}
		return a.Equal(b)
	}
	return v == w
}

// String renders o on a single line, mainly for debugging and messages.
//
//     {float: left; &:hover: {color: red}}
func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	if o.HasExtend() {
		fmt.Fprintf(&b, "extend: %s", o.ext)
		sep = "; "
	}
	o.Range(func(k string, v Value) bool {
		fmt.Fprintf(&b, "%s%s: %s", sep, k, v)
		sep = "; "
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// Match returns a matcher for o.
func (o *Object) Match() *ValueMatcher {
	return &ValueMatcher{v: o}
}

func (o *Object) isValue() {}
