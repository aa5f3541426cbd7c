package resolve

import (
	"testing"

	"github.com/Magicolo/quint/ir"
)

func TestIdentifyInternsDefineAndRewritesRefer(t *testing.T) {
	ctx := newResolveContext()
	n := ir.And(
		ir.Define(ir.Path("leaf"), ir.Symbol('a')),
		ir.Refer(ir.Path("leaf")),
	)
	got := identify(n, ctx)

	if got.Left.Kind != ir.KindTrue {
		t.Fatalf("Define did not collapse to True: %+v", got.Left)
	}
	if got.Right.Kind != ir.KindRefer || got.Right.ID.Kind != ir.IDIndex {
		t.Fatalf("Refer was not rewritten to an Index: %+v", got.Right)
	}
	idx := got.Right.ID.Index
	if ctx.table[idx].Kind != ir.KindSymbol || ctx.table[idx].Char != 'a' {
		t.Fatalf("table[%d] = %+v, want Symbol(a)", idx, ctx.table[idx])
	}
}

func TestIdentifyDisjoinsDuplicatePaths(t *testing.T) {
	ctx := newResolveContext()
	n := ir.And(
		ir.Define(ir.Path("x"), ir.Symbol('a')),
		ir.Define(ir.Path("x"), ir.Symbol('b')),
	)
	identify(n, ctx)

	idx := ctx.byPath["x"]
	got := ctx.table[idx]
	if got.Kind != ir.KindOr {
		t.Fatalf("table[x] = %+v, want Or of both definitions", got)
	}
}

func TestIdentifyPropagatesPathPrefixes(t *testing.T) {
	ctx := newResolveContext()
	n := ir.Define(ir.Path("a.b"), ir.Symbol('x'))
	identify(n, ctx)

	for _, path := range []string{"a.b", "a", ""} {
		idx, ok := ctx.byPath[path]
		if !ok {
			t.Fatalf("prefix %q was not interned", path)
		}
		if ctx.table[idx].Kind != ir.KindSymbol || ctx.table[idx].Char != 'x' {
			t.Fatalf("table[%q] = %+v, want Symbol(x)", path, ctx.table[idx])
		}
	}
}

func TestIdentifyUniqueIdentifiersDoNotCollideWithPaths(t *testing.T) {
	ctx := newResolveContext()
	id := ir.NewUnique()
	n := ir.And(
		ir.Define(id, ir.Symbol('a')),
		ir.Define(ir.Path(""), ir.Symbol('b')),
	)
	identify(n, ctx)

	uidx := ctx.byUnique[id.Unique]
	pidx := ctx.byPath[""]
	if uidx == pidx {
		t.Fatalf("unique id and path \"\" collided at the same table slot %d", uidx)
	}
}
