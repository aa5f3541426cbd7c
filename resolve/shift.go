package resolve

import "github.com/Magicolo/quint/ir"

// shiftPropagate is pass (e): fold Shift markers into the Store node they
// ultimately wrap, and collapse Shift(0, x) (no accounting needed) down to
// x. A Shift directly wrapping a Store folds by adding its byte count into
// Store's own shift field: Shift(k, Store(i, side)) -> Store(k+i, side).
// Adjacent Shift nodes compose by summing their byte counts.
//
// combinator.Store always constructs its Push/Pop markers with shift 0 and
// never introduces a Shift node itself, so for every grammar built through
// the combinator package this pass has nothing to fold; it only matters
// for a hand-built ir.Node that embeds ir.Shift directly, the variant that
// ir.Shift's own doc describes as optimizer-internal.
func shiftPropagate(n ir.Node) ir.Node {
	return ir.Descend(n, shiftStep)
}

func shiftStep(n ir.Node) ir.Node {
	if n.Kind != ir.KindShift {
		return n
	}
	body := *n.Body
	switch body.Kind {
	case ir.KindStore:
		body.ShiftBy += n.ShiftBy
		return body
	case ir.KindShift:
		return ir.Shift(n.ShiftBy+body.ShiftBy, *body.Body)
	default:
		if n.ShiftBy == 0 {
			return body
		}
		return n
	}
}
