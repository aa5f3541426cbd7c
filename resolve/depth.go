package resolve

import "github.com/Magicolo/quint/ir"

// depthFold is pass (f): adjacent Depth markers in an And chain collapse
// into one (Depth(a) & Depth(b) -> Depth(a+b)), and a net-zero Depth
// disappears entirely, since it is a pure no-op once folded.
func depthFold(n ir.Node) ir.Node {
	return ir.Descend(n, depthStep)
}

func depthStep(n ir.Node) ir.Node {
	if n.Kind != ir.KindAnd {
		return n
	}
	l, r := *n.Left, *n.Right
	if l.Kind != ir.KindDepth {
		return n
	}
	if l.Delta == 0 {
		return r
	}
	if r.Kind == ir.KindDepth {
		sum := l.Delta + r.Delta
		if sum == 0 {
			return ir.True()
		}
		return ir.Depth(sum)
	}
	if r.Kind == ir.KindAnd && r.Left.Kind == ir.KindDepth {
		sum := l.Delta + r.Left.Delta
		if sum == 0 {
			return *r.Right
		}
		return ir.And(ir.Depth(sum), *r.Right)
	}
	return n
}
