package combinator

import "github.com/Magicolo/quint/ir"

// Join matches n separated by sep, between lo and hi times inclusive (hi
// may be Unbounded). Join(sep, n, 1, Unbounded) is the common "one or more,
// comma-separated" shape.
func Join(sep, n ir.Node, lo, hi int) ir.Node {
	restHi := Unbounded
	if hi != Unbounded {
		if hi == 0 {
			// hi-1 would read as Unbounded; Repeat(lo, 0, n) is True for
			// lo == 0 and panics with *ir.ConfigError for lo > 0.
			return Repeat(lo, 0, n)
		}
		restHi = hi - 1
	}

	if lo <= 0 {
		return Option(ir.And(n, Repeat(0, restHi, ir.And(sep, n))))
	}
	return ir.And(n, Repeat(lo-1, restHi, ir.And(sep, n)))
}
