package yamladapter_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/extend/style"
	"github.com/npillmayer/extend/style/yamladapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const sheet = `
a: &a
  float: left
b:
  extend: *a
  width: 1px
c:
  extend: [a, {color: red}]
  zIndex: 2
  opacity: 0.5
d:
  extend: {$data: theme}
  '&:hover':
    color: blue
`

func TestDecodeSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extend.yaml")
	defer teardown()
	//
	rules, err := yamladapter.Decode(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, rules, 4)
	names := []string{rules[0].Name, rules[1].Name, rules[2].Name, rules[3].Name}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
	//
	var obj *style.Object
	b := rules[1].Style
	switch m := b.Extend().Match(); m {
	case m.Inline(&obj):
		assert.True(t, obj.Equal(style.Props("float", "left")), "have %s", obj)
	default:
		t.Errorf("expected alias to decode as inline extend, is %v", b.Extend())
	}
	//
	c := rules[2].Style
	var list []style.Extend
	switch m := c.Extend().Match(); m {
	case m.List(&list):
		assert.Len(t, list, 2)
	default:
		t.Errorf("expected list extend, is %v", c.Extend())
	}
	z, _ := c.Get("zIndex")
	assert.Equal(t, style.Number(2), z)
	o, _ := c.Get("opacity")
	assert.Equal(t, style.Number(0.5), o)
	//
	d := rules[3].Style
	var f style.LazyFunc
	switch m := d.Extend().Match(); m {
	case m.Lazy(&f):
		var name string
		ext := f(style.Data{"theme": "dark"})
		mm := ext.Match()
		require.Equal(t, mm, mm.Name(&name))
		assert.Equal(t, "dark", name)
		assert.Nil(t, f(nil))
	default:
		t.Errorf("expected lazy extend, is %v", d.Extend())
	}
	hover, ok := d.Get("&:hover")
	require.True(t, ok)
	assert.True(t, style.IsObject(hover))
}

func TestDecodeCollectsErrors(t *testing.T) {
	const bad = `
a:
  float: left
  margins: [1, 2]
b: not-a-mapping
c:
  extend: {$data: [x]}
  width: 1px
`
	rules, err := yamladapter.Decode(strings.NewReader(bad))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Name)
	assert.Equal(t, 1, rules[0].Style.Len())
	assert.False(t, rules[1].Style.HasExtend(), "malformed extend must decode as absent")
	assert.True(t, rules[1].Style.Has("width"))
}

func TestDecodeEmpty(t *testing.T) {
	rules, err := yamladapter.Decode(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, rules)
	_, err = yamladapter.Decode(strings.NewReader("- a\n- b\n"))
	assert.Error(t, err)
}

func TestEncodeKeepsOrder(t *testing.T) {
	rules := []yamladapter.Rule{
		{Name: "b", Style: style.Props("width", "1px", "float", "left")},
		{Name: "a", Style: style.Props(
			"extend", style.List(style.Name("b"), style.Name("c")),
			"zIndex", 2,
			"&:hover", style.Props("color", "red"),
		)},
	}
	var out bytes.Buffer
	require.NoError(t, yamladapter.Encode(&out, rules))
	expected := `b:
  width: 1px
  float: left
a:
  extend: [b, c]
  zIndex: 2
  '&:hover':
    color: red
`
	assert.Equal(t, expected, out.String())
}

func TestRoundTrip(t *testing.T) {
	rules, err := yamladapter.Decode(strings.NewReader(sheet))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, yamladapter.Encode(&out, rules))
	again, err := yamladapter.Decode(&out)
	require.NoError(t, err)
	require.Len(t, again, len(rules))
	for i := range rules {
		assert.Equal(t, rules[i].Name, again[i].Name)
		assert.True(t, rules[i].Style.Equal(again[i].Style), "rule %s differs", rules[i].Name)
		assert.Equal(t, rules[i].Style.Keys(), again[i].Style.Keys())
	}
}

func TestDecodeRecursiveAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extend.yaml")
	defer teardown()
	//
	inputs := map[string]string{
		"property":       "a: &x\n  color: red\n  sub: *x\nb:\n  width: 1px\n",
		"inline extend":  "a:\n  extend: &x {extend: *x, color: red}\n  width: 1px\nb:\n  width: 1px\n",
		"extend list":    "a:\n  extend: &x [c, *x]\n  width: 1px\nb:\n  width: 1px\n",
		"nested mapping": "a: &x\n  '&:hover':\n    inner: *x\nb:\n  width: 1px\n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			done := make(chan struct{})
			var rules []yamladapter.Rule
			var err error
			go func() {
				defer close(done)
				rules, err = yamladapter.Decode(strings.NewReader(input))
			}()
			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("decoding a recursive alias does not terminate")
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "recursive alias")
			require.Len(t, rules, 2, "other rules must still be decoded")
			assert.True(t, rules[0].Style.Has("color") || rules[0].Style.Has("width") ||
				rules[0].Style.Has("&:hover"))
			assert.True(t, rules[1].Style.Has("width"))
		})
	}
}

func TestDecodeRecursiveAliasKeepsRest(t *testing.T) {
	rules, err := yamladapter.Decode(strings.NewReader("a: &x\n  color: red\n  sub: *x\n"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"color"}, rules[0].Style.Keys())
}

func TestDecodeAliasExpansionIsLimited(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("l0: &l0 {x: 1}\n")
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&sb, "l%d: &l%d {", i, i)
		for j := 0; j < 10; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "k%d: *l%d", j, i-1)
		}
		sb.WriteString("}\n")
	}
	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = yamladapter.Decode(strings.NewReader(sb.String()))
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("alias expansion is not limited")
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many alias expansions")
}

func TestDecodeExtendNeedsRuleName(t *testing.T) {
	const input = `
a:
  extend: false
  width: 1px
b:
  extend: 0
c:
  extend: [x, 1.5, true]
d:
  extend: "0"
e:
  extend: ~
`
	rules, err := yamladapter.Decode(strings.NewReader(input))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
	require.Len(t, rules, 5)
	assert.False(t, rules[0].Style.HasExtend(), "boolean extend must decode as absent")
	assert.True(t, rules[0].Style.Has("width"))
	assert.False(t, rules[1].Style.HasExtend(), "numeric extend must decode as absent")
	var list []style.Extend
	switch m := rules[2].Style.Extend().Match(); m {
	case m.List(&list):
		require.Len(t, list, 1)
		assert.Equal(t, "x", list[0].String())
	default:
		t.Errorf("expected list extend, is %v", rules[2].Style.Extend())
	}
	var name string
	mm := rules[3].Style.Extend().Match()
	require.Equal(t, mm, mm.Name(&name), "quoted scalar is a rule name")
	assert.Equal(t, "0", name)
	assert.False(t, rules[4].Style.HasExtend())
}
