/*
Package yamladapter reads and writes style sheets in YAML format.

A style sheet is a YAML mapping from rule names to style objects:

    a:
      float: left
    b:
      extend: a
      width: 1px
      '&:hover':
        color: red

The order of rules and properties is preserved. Values tagged as integers or
floats become style.Number, other scalars become style.Property. Values of
"extend" may be a rule name (a string), a mapping (inline style object), a sequence of
either, or a mapping with the single key "$data":

    extend: {$data: theme}

which is a lazy extend, taking the name of the rule to extend from external
data key "theme". YAML anchors and aliases may be used to share style
objects, as long as an alias does not refer to a node containing it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package yamladapter

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/extend/style"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'extend.yaml'.
func tracer() tracing.Trace {
	return tracing.Select("extend.yaml")
}

// DataKey is the mapping key marking a lazy extend.
const DataKey = "$data"

// Rule is a named style object, as found in a style sheet.
type Rule struct {
	Name  string
	Style *style.Object
}

// maxAliases limits the number of alias expansions per style sheet.
const maxAliases = 10000

// Decode reads a style sheet from r.
//
// Problems with single rules or properties do not stop decoding. Malformed
// parts are skipped, and all problems are reported as a combined error
// (see go.uber.org/multierr), together with the rules decoded. Aliases
// referring to a node they are contained in are reported as recursive and
// skipped.
func Decode(r io.Reader) ([]Rule, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding style sheet: %w", err)
	}
	d := &decoder{path: make(map[*yaml.Node]bool)}
	root, err := d.deref(&doc, "")
	if err != nil {
		return nil, err
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		if root, err = d.deref(root.Content[0], ""); err != nil {
			return nil, err
		}
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: style sheet must be a mapping of rule names to styles", root.Line)
	}
	var rules []Rule
	var errs error
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		st, err := d.decodeObject(root.Content[i+1], name)
		errs = multierr.Append(errs, err)
		if st != nil {
			rules = append(rules, Rule{Name: name, Style: st})
		}
	}
	tracer().Debugf("decoded %d rules", len(rules))
	return rules, errs
}

// decoder holds the state of decoding a single style sheet.
type decoder struct {
	path    map[*yaml.Node]bool // collection nodes currently being decoded
	aliases int                 // alias expansions so far
}

// deref follows aliases. It fails if the expansion limit is exceeded.
func (d *decoder) deref(n *yaml.Node, path string) (*yaml.Node, error) {
	for n != nil && n.Kind == yaml.AliasNode {
		d.aliases++
		if d.aliases > maxAliases {
			return nil, fmt.Errorf("line %d: %s: too many alias expansions", n.Line, path)
		}
		n = n.Alias
	}
	return n, nil
}

// enter marks a collection node as being decoded. It returns false if the node
// is already on the decode path, i.e. reached again through an alias.
func (d *decoder) enter(n *yaml.Node) bool {
	if d.path[n] {
		return false
	}
	d.path[n] = true
	return true
}

func (d *decoder) leave(n *yaml.Node) {
	delete(d.path, n)
}

func recursive(n *yaml.Node, path string) error {
	return fmt.Errorf("line %d: %s: recursive alias", n.Line, path)
}

func (d *decoder) decodeObject(n *yaml.Node, path string) (*style.Object, error) {
	n, err := d.deref(n, path)
	if err != nil {
		return nil, err
	}
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s: expected a mapping", line(n), path)
	}
	if !d.enter(n) {
		return nil, recursive(n, path)
	}
	defer d.leave(n)
	st := style.New()
	var errs error
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		at := path + "." + key
		v, err := d.deref(n.Content[i+1], at)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if key == style.ExtendKey {
			ext, err := d.decodeExtend(v, at)
			errs = multierr.Append(errs, err)
			st.SetExtend(ext)
			continue
		}
		switch v.Kind {
		case yaml.ScalarNode:
			if v.ShortTag() == "!!null" {
				continue
			}
			st.Set(key, decodeScalar(v))
		case yaml.MappingNode:
			sub, err := d.decodeObject(v, at)
			errs = multierr.Append(errs, err)
			if sub != nil {
				st.Set(key, sub)
			}
		default:
			errs = multierr.Append(errs, fmt.Errorf("line %d: %s: unsupported value", v.Line, at))
		}
	}
	return st, errs
}

func decodeScalar(n *yaml.Node) style.Value {
	switch n.ShortTag() {
	case "!!int", "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return style.Number(f)
		}
	}
	return style.Property(n.Value)
}

// decodeExtend decodes extend values. Malformed values decode as nil (absent).
// Only strings are taken as rule names; null and "" are absent.
func (d *decoder) decodeExtend(n *yaml.Node, path string) (style.Extend, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!str":
			if n.Value == "" {
				return nil, nil
			}
			return style.Name(n.Value), nil
		}
		return nil, fmt.Errorf("line %d: %s: extend %q is not a rule name", n.Line, path, n.Value)
	case yaml.SequenceNode:
		if !d.enter(n) {
			return nil, recursive(n, path)
		}
		defer d.leave(n)
		var exts []style.Extend
		var errs error
		for i, el := range n.Content {
			at := fmt.Sprintf("%s[%d]", path, i)
			en, err := d.deref(el, at)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			ext, err := d.decodeExtend(en, at)
			errs = multierr.Append(errs, err)
			if ext != nil {
				exts = append(exts, ext)
			}
		}
		return style.List(exts...), errs
	case yaml.MappingNode:
		if len(n.Content) == 2 && n.Content[0].Value == DataKey {
			v, err := d.deref(n.Content[1], path)
			if err != nil {
				return nil, err
			}
			if v.Kind != yaml.ScalarNode || v.Value == "" {
				return nil, fmt.Errorf("line %d: %s: %s needs a data key", v.Line, path, DataKey)
			}
			return style.Lazy(FromData(v.Value)), nil
		}
		obj, err := d.decodeObject(n, path)
		if obj == nil {
			return nil, err
		}
		return style.Inline(obj), err
	}
	return nil, fmt.Errorf("line %d: %s: malformed extend", n.Line, path)
}

// FromData creates a lazy extend function which looks up key in external
// data. A string is taken as a rule name, a style object is extended inline.
// Other values (or no value) contribute nothing.
func FromData(key string) style.LazyFunc {
	return func(data style.Data) style.Extend {
		switch v := data[key].(type) {
		case string:
			return style.Name(v)
		case *style.Object:
			return style.Inline(v)
		}
		return nil
	}
}

func line(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	return n.Line
}

// --- Encoding --------------------------------------------------------------

// Encode writes rules to w as a YAML style sheet, with 2-space indentation.
func Encode(w io.Writer, rules []Rule) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range rules {
		root.Content = append(root.Content, scalar(r.Name), encodeObject(r.Style))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encoding style sheet: %w", err)
	}
	return enc.Close()
}

func encodeObject(st *style.Object) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if ext := st.Extend(); !style.IsAbsent(ext) {
		if en := encodeExtend(ext); en != nil {
			n.Content = append(n.Content, scalar(style.ExtendKey), en)
		}
	}
	st.Range(func(key string, v style.Value) bool {
		n.Content = append(n.Content, scalar(key), encodeValue(v))
		return true
	})
	return n
}

func encodeValue(v style.Value) *yaml.Node {
	var num style.Number
	var sub *style.Object
	switch m := v.Match(); m {
	case m.Number(&num):
		tag := "!!float"
		if num.IsInt() {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: num.String()}
	case m.Object(&sub):
		return encodeObject(sub)
	}
	return scalar(v.String())
}

// encodeExtend encodes extend values. Lazy extends cannot be written and are
// dropped.
func encodeExtend(ext style.Extend) *yaml.Node {
	var name string
	var list []style.Extend
	var obj *style.Object
	switch m := ext.Match(); m {
	case m.Name(&name):
		return scalar(name)
	case m.List(&list):
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, e := range list {
			if style.IsAbsent(e) {
				continue
			}
			if en := encodeExtend(e); en != nil {
				seq.Content = append(seq.Content, en)
			}
		}
		return seq
	case m.Inline(&obj):
		return encodeObject(obj)
	}
	tracer().Debugf("cannot encode extend %v, dropping it", ext)
	return nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
