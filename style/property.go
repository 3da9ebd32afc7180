package style

import (
	"strconv"
)

// Property is a raw value for a style property. For example, with
//
//     color: black
//
// a property value of "black" is set. Property values are opaque to this
// module: they are neither parsed nor normalized.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Match returns a matcher for p.
func (p Property) Match() *ValueMatcher {
	return &ValueMatcher{v: p}
}

func (p Property) isValue() {}

// Number is a numeric property value, e.g. for
//
//     zIndex: 2
type Number float64

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// IsInt is a predicate wether n has no fractional part.
func (n Number) IsInt() bool {
	return n == Number(int64(n))
}

// Match returns a matcher for n.
func (n Number) Match() *ValueMatcher {
	return &ValueMatcher{v: n}
}

func (n Number) isValue() {}

// Value is the type of property values. It is one of
//
//     Property
//     Number
//     *Object
//
type Value interface {
	String() string
	Match() *ValueMatcher
	isValue()
}

var _ Value = Property("")
var _ Value = Number(0)
var _ Value = &Object{}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

// --- Matching --------------------------------------------------------------

// ValueMatcher is used for pattern matching on values:
//
//     var p style.Property
//     var sub *style.Object
//     switch m := v.Match(); m {
//     case m.Property(&p):
//         …
//     case m.Object(&sub):
//         …
//     }
//
type ValueMatcher struct {
	v Value
}

// Property matches scalar string values.
func (m *ValueMatcher) Property(p *Property) *ValueMatcher {
	if x, ok := m.v.(Property); ok {
		if p != nil {
			*p = x
		}
		return m
	}
	return nil
}

// Number matches numeric values.
func (m *ValueMatcher) Number(n *Number) *ValueMatcher {
	if x, ok := m.v.(Number); ok {
		if n != nil {
			*n = x
		}
		return m
	}
	return nil
}

// Scalar matches either a Property or a Number.
func (m *ValueMatcher) Scalar() *ValueMatcher {
	switch m.v.(type) {
	case Property, Number:
		return m
	}
	return nil
}

// Object matches nested style objects.
func (m *ValueMatcher) Object(o **Object) *ValueMatcher {
	if x, ok := m.v.(*Object); ok && x != nil {
		if o != nil {
			*o = x
		}
		return m
	}
	return nil
}

// IsObject is a predicate wether v is a (non-nil) nested style object.
func IsObject(v Value) bool {
	if v == nil {
		return false
	}
	m := v.Match()
	return m.Object(nil) == m
}
