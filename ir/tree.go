package ir

import (
	"fmt"
	"io"
	"strings"
)

// Tree is the surface syntax-tree type produced by a parse: a kind tag, the
// text values captured under it (in source-text order), and the child
// trees spawned below it. Downstream consumers (lang/json, lang/arith)
// convert a Tree into a typed domain value.
type Tree struct {
	Kind     string
	Values   []string
	Children []Tree
}

// PrintTree writes a box-drawing visualization of t to w.
func PrintTree(w io.Writer, t Tree) {
	printTree(w, t, "", "")
}

func printTree(w io.Writer, t Tree, ruledLine string, childPrefix string) {
	if len(t.Values) > 0 {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, t.Kind, strings.Join(t.Values, ""))
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, t.Kind)
	}

	num := len(t.Children)
	for i, child := range t.Children {
		var line string
		if i < num-1 {
			line = childPrefix + "├─ "
		} else {
			line = childPrefix + "└─ "
		}

		var prefix string
		if i < num-1 {
			prefix = childPrefix + "│  "
		} else {
			prefix = childPrefix + "   "
		}

		printTree(w, child, line, prefix)
	}
}
