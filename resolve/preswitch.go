package resolve

import "github.com/Magicolo/quint/ir"

// preSwitch is pass (g): rewrite every Symbol match into a single-case
// Switch, so pass (h), process, can merge it with sibling Switch nodes
// introduced the same way. And(Symbol(c), rest) becomes Switch({c: rest});
// a standalone Symbol(c) becomes Switch({c: True}).
//
// This must inspect each And's left child before recursing into it (not a
// generic bottom-up ir.Descend): once a Symbol has already been rewritten
// to a single-case Switch, the And(Symbol, rest) pattern above can no
// longer be recognized.
func preSwitch(n ir.Node) ir.Node {
	switch n.Kind {
	case ir.KindAnd:
		if n.Left.Kind == ir.KindSymbol {
			rest := preSwitch(*n.Right)
			return ir.Switch([]ir.SwitchCase{{Char: n.Left.Char, Node: &rest}})
		}
		l, r := preSwitch(*n.Left), preSwitch(*n.Right)
		return ir.And(l, r)
	case ir.KindSymbol:
		body := ir.True()
		return ir.Switch([]ir.SwitchCase{{Char: n.Char, Node: &body}})
	default:
		return ir.Map(n, preSwitch)
	}
}
