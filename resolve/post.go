package resolve

import "github.com/Magicolo/quint/ir"

// post is pass (i): compact the canonical Symbol/Switch form back toward
// Text/Symbol for readability and a smaller compiled artifact. A
// single-case Switch is unfolded into its dispatch character followed by
// its body (a bare Symbol when the body is True); an And whose two operands
// are both Symbol/Text coalesces into one Text literal, so a chain folds
// from its tail while it ends in literals. Literals followed by a
// non-literal node stay separate Symbol/Text operands.
func post(n ir.Node) ir.Node {
	return ir.Descend(n, postStep)
}

func postStep(n ir.Node) ir.Node {
	switch n.Kind {
	case ir.KindSwitch:
		if len(n.Cases) != 1 {
			return n
		}
		c := n.Cases[0]
		switch c.Node.Kind {
		case ir.KindTrue:
			return ir.Symbol(c.Char)
		case ir.KindSymbol:
			return ir.Text(string(c.Char) + string(c.Node.Char))
		case ir.KindText:
			return ir.Text(string(c.Char) + c.Node.Text)
		default:
			return ir.And(ir.Symbol(c.Char), *c.Node)
		}
	case ir.KindAnd:
		l, r := *n.Left, *n.Right
		switch {
		case l.Kind == ir.KindSymbol && r.Kind == ir.KindSymbol:
			return ir.Text(string(l.Char) + string(r.Char))
		case l.Kind == ir.KindSymbol && r.Kind == ir.KindText:
			return ir.Text(string(l.Char) + r.Text)
		case l.Kind == ir.KindText && r.Kind == ir.KindSymbol:
			return ir.Text(l.Text + string(r.Char))
		case l.Kind == ir.KindText && r.Kind == ir.KindText:
			return ir.Text(l.Text + r.Text)
		default:
			return n
		}
	default:
		return n
	}
}
