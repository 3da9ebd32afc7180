/*
Package styledbg implements helpers to debug style objects and style sheets.

Styles are printed as trees, with nested style blocks and extends as branches:

    button
    ├── extend
    │   └── [base]
    ├── width: 10px
    └── &:hover
        └── color: red

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledbg

import (
	"testing"

	"github.com/npillmayer/extend/cssom"
	"github.com/npillmayer/extend/style"
	"github.com/xlab/treeprint"
)

// Tree renders a style object as a tree, with name as the root.
func Tree(name string, st *style.Object) string {
	t := treeprint.NewWithRoot(name)
	printObject(t, st)
	return t.String()
}

// Sheet renders all rules of a style sheet, in order of insertion.
// Rules show their current style, not the authored one.
func Sheet(sheet *cssom.Sheet) string {
	t := treeprint.NewWithRoot("sheet")
	for _, r := range sheet.Rules() {
		printObject(t.AddBranch(r.Key()), r.Style())
	}
	return t.String()
}

// Log is a helper for tests. It logs the tree of a style object to t.
func Log(t *testing.T, name string, st *style.Object) {
	t.Helper()
	t.Logf("\n%s", Tree(name, st))
}

func printObject(t treeprint.Tree, st *style.Object) {
	if st.HasExtend() {
		printExtend(t.AddBranch(style.ExtendKey), st.Extend())
	}
	st.Range(func(key string, v style.Value) bool {
		var sub *style.Object
		switch m := v.Match(); m {
		case m.Object(&sub):
			printObject(t.AddBranch(key), sub)
		default:
			t.AddNode(key + ": " + v.String())
		}
		return true
	})
}

func printExtend(t treeprint.Tree, ext style.Extend) {
	var name string
	var list []style.Extend
	var obj *style.Object
	switch m := ext.Match(); m {
	case m.Name(&name):
		t.AddNode("[" + name + "]")
	case m.List(&list):
		for _, e := range list {
			if style.IsAbsent(e) {
				continue
			}
			printExtend(t, e)
		}
	case m.Inline(&obj):
		printObject(t.AddBranch("{…}"), obj)
	case m.Lazy(nil):
		t.AddNode("<lazy>")
	}
}
