package resolve

import "github.com/Magicolo/quint/ir"

// normalize is pass (a): flatten And/Or chains into canonical
// right-associated form, apply Boolean simplification (True/False
// elimination, x|x -> x), and reduce Text/Switch down to the Symbol/And/Or
// primitives that later passes reason about. Pass (i), post, reconstructs
// Text/Switch afterward where it is profitable.
func normalize(n ir.Node) ir.Node {
	return ir.Descend(n, normalizeStep)
}

func normalizeStep(n ir.Node) ir.Node {
	switch n.Kind {
	case ir.KindAnd:
		return mkAnd(*n.Left, *n.Right)
	case ir.KindOr:
		return mkOr(*n.Left, *n.Right)
	case ir.KindText:
		return textToSymbols(n.Text)
	case ir.KindSwitch:
		return switchToOr(n.Cases)
	default:
		return n
	}
}

// simplify re-applies the Boolean simplification half of normalize (True/
// False elimination and And/Or re-association) without touching Text or
// Switch. Used after identify/expand, which can leave a bare True behind
// (a collapsed Define) or inline a Refer target that itself reduces to
// True, well after normalize's one-time Text/Switch expansion has already
// run.
func simplify(n ir.Node) ir.Node {
	return ir.Descend(n, func(n ir.Node) ir.Node {
		switch n.Kind {
		case ir.KindAnd:
			return mkAnd(*n.Left, *n.Right)
		case ir.KindOr:
			return mkOr(*n.Left, *n.Right)
		default:
			return n
		}
	})
}

// mkAnd builds a simplified, right-associated And, unfolding a left-leaning
// l (produced e.g. by a caller building chains left to right) as it goes.
func mkAnd(l, r ir.Node) ir.Node {
	if l.Kind == ir.KindTrue {
		return r
	}
	if r.Kind == ir.KindTrue {
		return l
	}
	if l.Kind == ir.KindFalse || r.Kind == ir.KindFalse {
		return ir.False()
	}
	if l.Kind == ir.KindAnd {
		return mkAnd(*l.Left, mkAnd(*l.Right, r))
	}
	return ir.And(l, r)
}

// mkOr builds a simplified, right-associated Or. True is deferred to the
// right rather than eliminated (True|x -> x|True): a literal True
// alternative always succeeds during parsing, so keeping it last gives
// x a chance to be tried at all.
func mkOr(l, r ir.Node) ir.Node {
	if l.Kind == ir.KindFalse {
		return r
	}
	if r.Kind == ir.KindFalse {
		return l
	}
	if l.Kind == ir.KindOr {
		return mkOr(*l.Left, mkOr(*l.Right, r))
	}
	if l.Kind == ir.KindTrue && r.Kind != ir.KindTrue {
		return ir.Or(r, ir.True())
	}
	if equal(l, r) {
		return l
	}
	return ir.Or(l, r)
}

func textToSymbols(s string) ir.Node {
	runes := []rune(s)
	out := ir.Symbol(runes[len(runes)-1])
	for i := len(runes) - 2; i >= 0; i-- {
		out = ir.And(ir.Symbol(runes[i]), out)
	}
	return out
}

func switchToOr(cases []ir.SwitchCase) ir.Node {
	if len(cases) == 0 {
		return ir.True()
	}
	out := mkAnd(ir.Symbol(cases[len(cases)-1].Char), *cases[len(cases)-1].Node)
	for i := len(cases) - 2; i >= 0; i-- {
		branch := mkAnd(ir.Symbol(cases[i].Char), *cases[i].Node)
		out = mkOr(branch, out)
	}
	return out
}
