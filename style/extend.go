package style

import (
	"fmt"
	"strings"
)

// Extend is the type of values of the reserved property "extend".
// It is a sum type with variants
//
//     Name    a reference to another rule, by name
//     List    an ordered sequence of extends
//     Inline  a style object
//     Lazy    a function of external data, producing an extend
//
// A nil Extend is absent. Use IsAbsent to test for absent extends.
type Extend interface {
	String() string
	Match() *ExtendMatcher
	isExtend()
}

// Data is external data a style sheet is evaluated against. It is handed to
// lazy extends.
type Data map[string]interface{}

// LazyFunc produces an extend from external data. It may return nil.
type LazyFunc func(Data) Extend

type nameRef string

type extendList []Extend

type inline struct {
	o *Object
}

type lazy struct {
	f LazyFunc
}

// Name creates a reference to another rule of the style sheet.
func Name(rulename string) Extend {
	return nameRef(rulename)
}

// List creates an ordered sequence of extends. Later entries override
// earlier ones.
func List(exts ...Extend) Extend {
	l := make(extendList, len(exts))
	copy(l, exts)
	return l
}

// Objects is a shortcut for a List of Inline extends.
func Objects(objs ...*Object) Extend {
	l := make(extendList, len(objs))
	for i, o := range objs {
		l[i] = Inline(o)
	}
	return l
}

// Inline creates an extend from a style object. The style object may carry
// an extend of its own.
func Inline(o *Object) Extend {
	return inline{o: o}
}

// Lazy creates an extend which will be computed from external data, whenever
// a rule is (re-)evaluated.
func Lazy(f LazyFunc) Extend {
	return lazy{f: f}
}

// IsAbsent is a predicate wether an extend value contributes nothing by
// itself: nil, an empty rule name, an inline nil object or a lazy nil function.
func IsAbsent(e Extend) bool {
	switch x := e.(type) {
	case nil:
		return true
	case nameRef:
		return x == ""
	case inline:
		return x.o == nil
	case lazy:
		return x.f == nil
	}
	return false
}

func (n nameRef) String() string { return string(n) }
func (n nameRef) isExtend() {}

// Match returns a matcher for n.
func (n nameRef) Match() *ExtendMatcher { return &ExtendMatcher{e: n} }

func (l extendList) String() string {
	s := make([]string, len(l))
	for i, e := range l {
		if e == nil {
			s[i] = "<nil>"
			continue
		}
		s[i] = e.String()
	}
	return "[" + strings.Join(s, ", ") + "]"
}
func (l extendList) isExtend() {}

// Match returns a matcher for l.
func (l extendList) Match() *ExtendMatcher { return &ExtendMatcher{e: l} }

func (i inline) String() string { return i.o.String() }
func (i inline) isExtend() {}

// Match returns a matcher for i.
func (i inline) Match() *ExtendMatcher { return &ExtendMatcher{e: i} }

func (z lazy) String() string { return fmt.Sprintf("<lazy %p>", z.f) }
func (z lazy) isExtend() {}

// Match returns a matcher for z.
func (z lazy) Match() *ExtendMatcher { return &ExtendMatcher{e: z} }

// --- Matching --------------------------------------------------------------

// ExtendMatcher is used for pattern matching on extend values:
//
//     var name string
//     var list []style.Extend
//     switch m := ext.Match(); m {
//     case m.Name(&name):
//         …
//     case m.List(&list):
//         …
//     }
//
type ExtendMatcher struct {
	e Extend
}

// Name matches rule references.
func (m *ExtendMatcher) Name(n *string) *ExtendMatcher {
	if x, ok := m.e.(nameRef); ok {
		if n != nil {
			*n = string(x)
		}
		return m
	}
	return nil
}

// List matches sequences of extends.
func (m *ExtendMatcher) List(l *[]Extend) *ExtendMatcher {
	if x, ok := m.e.(extendList); ok {
		if l != nil {
			*l = []Extend(x)
		}
		return m
	}
	return nil
}

// Inline matches extends given as style objects.
func (m *ExtendMatcher) Inline(o **Object) *ExtendMatcher {
	if x, ok := m.e.(inline); ok {
		if o != nil {
			*o = x.o
		}
		return m
	}
	return nil
}

// Lazy matches extends computed from external data.
func (m *ExtendMatcher) Lazy(f *LazyFunc) *ExtendMatcher {
	if x, ok := m.e.(lazy); ok {
		if f != nil {
			*f = x.f
		}
		return m
	}
	return nil
}
