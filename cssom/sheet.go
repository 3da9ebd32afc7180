package cssom

import (
	"github.com/npillmayer/extend/style"
)

// Sheet is an in-memory style sheet. It holds named rules in the order they
// have been added and runs a pipeline of plugins over them.
//
// A Sheet is not safe for concurrent use.
type Sheet struct {
	rules   []*rule
	index   map[string]*rule
	plugins []Plugin
}

// NewSheet creates an empty style sheet, using plugins for processing rules.
func NewSheet(plugins ...Plugin) *Sheet {
	return &Sheet{
		index:   make(map[string]*rule),
		plugins: plugins,
	}
}

// Use appends plugins to the processing pipeline. Plugins are applied in the
// order they are appended. Rules which have already been processed are not
// touched.
func (sheet *Sheet) Use(plugins ...Plugin) *Sheet {
	sheet.plugins = append(sheet.plugins, plugins...)
	return sheet
}

// Add registers a rule without processing it. This allows rules to reference
// rules which are added later. Call Process to run the plugins.
//
// If a rule with the same name already exists, it is replaced, keeping its
// position. Plugins implementing Forgetter are told to forget the old rule.
func (sheet *Sheet) Add(name string, st *style.Object) Rule {
	r := &rule{
		key:      name,
		original: st.Clone(),
		style:    st.Clone(),
		sheet:    sheet,
	}
	if r.original == nil {
		r.original = style.New()
		r.style = style.New()
	}
	if prev, ok := sheet.index[name]; ok {
		for i, x := range sheet.rules {
			if x == prev {
				sheet.rules[i] = r
				break
			}
		}
		sheet.forget(prev)
	} else {
		sheet.rules = append(sheet.rules, r)
	}
	sheet.index[name] = r
	tracer().P("rule", name).Debugf("added rule %s", st)
	return r
}

// forget tells plugins keeping per-rule state to drop it for r.
func (sheet *Sheet) forget(r *rule) {
	for _, p := range sheet.plugins {
		if f, ok := p.(Forgetter); ok {
			f.Forget(r)
		}
	}
}

// AddRule registers a rule and processes it immediately. References to rules
// not yet added will not be resolved.
func (sheet *Sheet) AddRule(name string, st *style.Object) Rule {
	r := sheet.Add(name, st).(*rule)
	sheet.process(r)
	return r
}

// Process runs the plugin pipeline over every rule not yet processed.
func (sheet *Sheet) Process() *Sheet {
	for _, r := range sheet.rules {
		if !r.processed {
			sheet.process(r)
		}
	}
	return sheet
}

func (sheet *Sheet) process(r *rule) {
	st := r.style
	for _, p := range sheet.plugins {
		st = p.OnProcessStyle(st, r, sheet)
	}
	if st == nil {
		st = style.New()
	}
	r.style = st
	r.processed = true
	tracer().P("rule", r.key).Debugf("processed style = %s", st)
}

// Update re-evaluates every rule against data, calling the OnUpdate hook
// of every plugin. Rules not yet processed will be processed first.
func (sheet *Sheet) Update(data style.Data) *Sheet {
	sheet.Process()
	for _, r := range sheet.rules {
		for _, p := range sheet.plugins {
			p.OnUpdate(data, r)
		}
		tracer().P("rule", r.key).Debugf("updated style = %s", r.style)
	}
	return sheet
}

// GetRule returns the rule for a name, or nil.
//
// Interface StyleSheet
func (sheet *Sheet) GetRule(name string) Rule {
	if r, ok := sheet.index[name]; ok {
		return r
	}
	return nil // do not return a nil *rule
}

// Rules returns all rules in order.
func (sheet *Sheet) Rules() []Rule {
	rules := make([]Rule, len(sheet.rules))
	for i, r := range sheet.rules {
		rules[i] = r
	}
	return rules
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Sheet) Empty() bool {
	return len(sheet.rules) == 0
}

var _ StyleSheet = &Sheet{}

// --- Rules -----------------------------------------------------------------

type rule struct {
	key       string
	style     *style.Object
	original  *style.Object
	sheet     *Sheet
	processed bool
}

func (r *rule) Key() string { return r.key }
func (r *rule) Style() *style.Object { return r.style }
func (r *rule) OriginalStyle() *style.Object { return r.original }
func (r *rule) SetStyle(st *style.Object) { r.style = st }
func (r *rule) String() string { return r.key + " " + r.style.String() }

// Sheet returns the owning style sheet.
func (r *rule) Sheet() StyleSheet {
	if r.sheet == nil {
		return nil
	}
	return r.sheet
}

var _ Rule = &rule{}
