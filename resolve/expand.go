package resolve

import "github.com/Magicolo/quint/ir"

// expand is pass (c): the first time a Refer to table index i is
// encountered while optimizing a given root or table entry, its target is
// inlined in place (and the inlined body is itself walked, so a chain of
// distinct productions all get one level of inlining). A second
// encounter of the same index is left as a Refer, so a recursive
// production does not inline itself forever. expanded is shared across the
// whole optimize call for this root/entry, not reset per branch.
func expand(n ir.Node, table []ir.Node, expanded map[int]bool) ir.Node {
	switch n.Kind {
	case ir.KindRefer:
		idx := n.ID.Index
		if expanded[idx] {
			return n
		}
		expanded[idx] = true
		return expand(table[idx], table, expanded)
	default:
		return ir.Map(n, func(c ir.Node) ir.Node { return expand(c, table, expanded) })
	}
}
