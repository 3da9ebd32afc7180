package extend

import (
	"testing"

	"github.com/npillmayer/extend/cssom"
	"github.com/npillmayer/extend/style"
	"github.com/stretchr/testify/assert"
)

func TestReplacedRuleDropsBaseStyle(t *testing.T) {
	p := New()
	sheet := cssom.NewSheet(p)
	sheet.AddRule("a", style.Props("float", "left"))
	old := sheet.AddRule("b", style.Props("extend", "a", "width", "1px"))
	assert.Len(t, p.bases, 1)
	b := sheet.AddRule("b", style.Props("extend", "a", "width", "2px"))
	assert.Len(t, p.bases, 1, "base style of replaced rule must be dropped")
	_, ok := p.bases[old]
	assert.False(t, ok)
	sheet.Update(style.Data{})
	w, _ := b.Style().Get("width")
	assert.Equal(t, style.Property("2px"), w)
}
