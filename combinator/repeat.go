package combinator

import (
	"fmt"

	"github.com/Magicolo/quint/ir"
)

// Unbounded is the high-bound sentinel for Repeat and Join: no upper limit.
const Unbounded = -1

// Repeat matches n between lo and hi times inclusive. hi may be Unbounded,
// in which case the tail is built as a fresh self-referencing production
// (the only place this package mints an ir.Unique identifier). Repeat
// panics with *ir.ConfigError for a negative lo or an hi below lo, the
// same way ir.Text panics for an empty literal.
func Repeat(lo, hi int, n ir.Node) ir.Node {
	if lo < 0 {
		panic(&ir.ConfigError{Cause: fmt.Errorf("repeat: lo %d is negative", lo)})
	}
	if hi != Unbounded && hi < lo {
		panic(&ir.ConfigError{Cause: fmt.Errorf("repeat: hi %d is below lo %d", hi, lo)})
	}

	fixed := make([]ir.Node, lo)
	for i := range fixed {
		fixed[i] = n
	}

	if hi == Unbounded {
		id := ir.NewUnique()
		tail := ir.Or(ir.And(n, ir.Refer(id)), ir.True())
		return All(append(fixed, ir.Define(id, tail), ir.Refer(id))...)
	}

	optional := ir.True()
	for i := 0; i < hi-lo; i++ {
		optional = Option(ir.And(n, optional))
	}
	return All(append(fixed, optional)...)
}
