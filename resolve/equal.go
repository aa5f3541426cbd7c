package resolve

import "github.com/Magicolo/quint/ir"

// equal reports whether a and b are structurally identical grammar
// fragments. Used by normalize (to collapse x|x to x) and factor (to find
// a common left-hand factor across Or branches).
func equal(a, b ir.Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ir.KindTrue, ir.KindFalse:
		return true
	case ir.KindAnd, ir.KindOr:
		return equal(*a.Left, *b.Left) && equal(*a.Right, *b.Right)
	case ir.KindDefine:
		return a.ID == b.ID && equal(*a.Body, *b.Body)
	case ir.KindRefer:
		return a.ID == b.ID
	case ir.KindSymbol:
		return a.Char == b.Char
	case ir.KindText:
		return a.Text == b.Text
	case ir.KindSwitch:
		if len(a.Cases) != len(b.Cases) {
			return false
		}
		for i := range a.Cases {
			if a.Cases[i].Char != b.Cases[i].Char || !equal(*a.Cases[i].Node, *b.Cases[i].Node) {
				return false
			}
		}
		return true
	case ir.KindSpawn:
		return a.SpawnKind == b.SpawnKind
	case ir.KindDepth:
		return a.Delta == b.Delta
	case ir.KindStore:
		return a.ShiftBy == b.ShiftBy && a.Side == b.Side
	case ir.KindPrecede:
		return a.Precedence == b.Precedence && a.Bind == b.Bind && a.Side == b.Side
	case ir.KindShift:
		return a.ShiftBy == b.ShiftBy && equal(*a.Body, *b.Body)
	default:
		ir.Invalid("resolve.equal", a)
		return false
	}
}

// key returns a canonical string encoding of n, suitable for grouping
// structurally-equal nodes in a map (e.g. factor's common-prefix grouping)
// without an O(n^2) pairwise equal comparison.
func key(n ir.Node) string {
	var b []byte
	b = appendKey(b, n)
	return string(b)
}

func appendKey(b []byte, n ir.Node) []byte {
	b = append(b, byte(n.Kind), '(')
	switch n.Kind {
	case ir.KindTrue, ir.KindFalse:
	case ir.KindAnd, ir.KindOr:
		b = appendKey(b, *n.Left)
		b = append(b, ',')
		b = appendKey(b, *n.Right)
	case ir.KindDefine:
		b = append(b, n.ID.String()...)
		b = append(b, ',')
		b = appendKey(b, *n.Body)
	case ir.KindRefer:
		b = append(b, n.ID.String()...)
	case ir.KindSymbol:
		b = append(b, string(n.Char)...)
	case ir.KindText:
		b = append(b, n.Text...)
	case ir.KindSwitch:
		for _, c := range n.Cases {
			b = append(b, string(c.Char)...)
			b = append(b, ':')
			b = appendKey(b, *c.Node)
			b = append(b, ';')
		}
	case ir.KindSpawn:
		b = append(b, n.SpawnKind...)
	case ir.KindDepth:
		b = appendInt(b, n.Delta)
	case ir.KindStore:
		b = appendInt(b, n.ShiftBy)
		b = append(b, byte(n.Side))
	case ir.KindPrecede:
		b = appendInt(b, n.Precedence)
		b = append(b, byte(n.Bind), byte(n.Side))
	case ir.KindShift:
		b = appendInt(b, n.ShiftBy)
		b = appendKey(b, *n.Body)
	default:
		ir.Invalid("resolve.appendKey", n)
	}
	b = append(b, ')')
	return b
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	var digits [20]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, digits[i:]...)
}
