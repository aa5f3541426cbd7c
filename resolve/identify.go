package resolve

import "github.com/Magicolo/quint/ir"

// identify is pass (b): intern every Define's target identifier to a table
// index, disjoin repeated definitions of the same path, propagate each
// Path definition under its shorter dotted prefixes (so "a.b" also
// contributes as an alternative under "a" and ""; the empty path names
// the whole grammar), and rewrite every Refer to index into the table. A
// Define node itself carries no runtime behavior once interned, so it is
// replaced by True.
func identify(n ir.Node, ctx *resolveContext) ir.Node {
	switch n.Kind {
	case ir.KindDefine:
		body := identify(*n.Body, ctx)
		idx := ctx.intern(n.ID)
		ctx.disjoin(idx, body)
		if n.ID.Kind == ir.IDPath {
			prefixes := n.ID.Prefixes()
			for _, prefix := range prefixes[1:] {
				pidx := ctx.intern(ir.Path(prefix))
				ctx.disjoin(pidx, body)
			}
		}
		return ir.True()
	case ir.KindRefer:
		idx := ctx.intern(n.ID)
		return ir.Refer(ir.Index(idx))
	default:
		return ir.Map(n, func(c ir.Node) ir.Node { return identify(c, ctx) })
	}
}
