package cssom_test

import (
	"testing"

	"github.com/npillmayer/extend/cssom"
	"github.com/npillmayer/extend/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a plugin recording calls and tagging styles with a property.
type recorder struct {
	name    string
	calls   []string
	updates []style.Data
}

func (rec *recorder) OnProcessStyle(st *style.Object, rule cssom.Rule, sheet cssom.StyleSheet) *style.Object {
	rec.calls = append(rec.calls, rule.Key())
	c := st.Clone()
	c.Set("seen-by", style.Property(rec.name))
	return c
}

func (rec *recorder) OnUpdate(data style.Data, rule cssom.Rule) {
	rec.updates = append(rec.updates, data)
	rule.Style().Set("updated", style.Property(rec.name))
}

func TestSheetAddRuleProcessesImmediately(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extend.cssom")
	defer teardown()
	//
	first, second := &recorder{name: "first"}, &recorder{name: "second"}
	sheet := cssom.NewSheet(first).Use(second)
	r := sheet.AddRule("a", style.Props("float", "left"))
	assert.Equal(t, []string{"a"}, first.calls)
	assert.Equal(t, []string{"a"}, second.calls)
	v, ok := r.Style().Get("seen-by")
	require.True(t, ok)
	assert.Equal(t, style.Property("second"), v, "plugins must run in order of use")
	assert.False(t, r.OriginalStyle().Has("seen-by"), "original style must stay as authored")
}

func TestSheetAddDefersProcessing(t *testing.T) {
	rec := &recorder{name: "rec"}
	sheet := cssom.NewSheet(rec)
	sheet.Add("a", style.Props("float", "left"))
	sheet.Add("b", style.Props("width", "1px"))
	assert.Empty(t, rec.calls)
	sheet.Process()
	assert.Equal(t, []string{"a", "b"}, rec.calls)
	sheet.Process()
	assert.Equal(t, []string{"a", "b"}, rec.calls, "rules must be processed once")
}

func TestSheetGetRule(t *testing.T) {
	sheet := cssom.NewSheet()
	assert.True(t, sheet.Empty())
	a := sheet.AddRule("a", style.Props("float", "left"))
	assert.Equal(t, a, sheet.GetRule("a"))
	assert.Nil(t, sheet.GetRule("missing"))
	assert.Equal(t, cssom.StyleSheet(sheet), a.Sheet())
}

func TestSheetReplacesRuleInPlace(t *testing.T) {
	sheet := cssom.NewSheet()
	sheet.AddRule("a", style.Props("float", "left"))
	sheet.AddRule("b", style.Props("width", "1px"))
	sheet.AddRule("a", style.Props("float", "right"))
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Key())
	v, _ := rules[0].Style().Get("float")
	assert.Equal(t, style.Property("right"), v)
}

func TestSheetUpdateCallsPlugins(t *testing.T) {
	rec := &recorder{name: "rec"}
	sheet := cssom.NewSheet(rec)
	sheet.Add("a", style.Props("float", "left"))
	sheet.Add("b", style.Props("width", "1px"))
	data := style.Data{"theme": "dark"}
	sheet.Update(data)
	assert.Equal(t, []string{"a", "b"}, rec.calls, "update must process pending rules first")
	require.Len(t, rec.updates, 2)
	assert.Equal(t, "dark", rec.updates[0]["theme"])
	for _, r := range sheet.Rules() {
		assert.True(t, r.Style().Has("updated"), "rule %s not updated in place", r.Key())
	}
}

func TestSheetNilStyle(t *testing.T) {
	sheet := cssom.NewSheet()
	r := sheet.AddRule("empty", nil)
	require.NotNil(t, r.Style())
	assert.Equal(t, 0, r.Style().Len())
}

// forgetful is a recorder which also records forgotten rules.
type forgetful struct {
	recorder
	forgotten []cssom.Rule
}

func (f *forgetful) Forget(rule cssom.Rule) {
	f.forgotten = append(f.forgotten, rule)
}

func TestSheetReplaceForgetsOldRule(t *testing.T) {
	f := &forgetful{recorder: recorder{name: "f"}}
	sheet := cssom.NewSheet(&recorder{name: "plain"}, f)
	old := sheet.AddRule("a", style.Props("float", "left"))
	sheet.AddRule("b", style.Props("width", "1px"))
	assert.Empty(t, f.forgotten)
	sheet.AddRule("a", style.Props("float", "right"))
	require.Len(t, f.forgotten, 1)
	assert.Equal(t, old, f.forgotten[0])
	assert.NotEqual(t, old, sheet.GetRule("a"))
}
