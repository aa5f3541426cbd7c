// Package resolve turns a user-built ir.Node into the canonical
// (root, table) pair that package parser and package generate compile:
// Defines are interned into a side table, Refers are rewritten to index
// into it, and the resulting grammar is optimized in place.
package resolve

import "github.com/Magicolo/quint/ir"

// resolveContext is the state identify (pass b) builds: the side table and
// the path-to-index and unique-to-index registries. The later passes only
// receive the finished table.
type resolveContext struct {
	table    []ir.Node
	byPath   map[string]int
	byUnique map[uint64]int
}

func newResolveContext() *resolveContext {
	return &resolveContext{
		// index 0 is reserved and is ir.False (never matches, never
		// generates). A Refer whose path is never Defined still gets a slot
		// of its own from intern, which also stays ir.False.
		table:    []ir.Node{ir.False()},
		byPath:   map[string]int{},
		byUnique: map[uint64]int{},
	}
}

func (c *resolveContext) intern(id ir.Identifier) int {
	switch id.Kind {
	case ir.IDPath:
		if idx, ok := c.byPath[id.Path]; ok {
			return idx
		}
		idx := c.alloc()
		c.byPath[id.Path] = idx
		return idx
	case ir.IDUnique:
		if idx, ok := c.byUnique[id.Unique]; ok {
			return idx
		}
		idx := c.alloc()
		c.byUnique[id.Unique] = idx
		return idx
	default:
		ir.Invalid("resolve.intern", ir.Refer(id))
		return 0
	}
}

func (c *resolveContext) alloc() int {
	idx := len(c.table)
	c.table = append(c.table, ir.False())
	return idx
}

// disjoin combines body into slot idx: the first Define wins outright, and
// every subsequent Define under the same path (or the same path's shorter
// prefixes) is added as an alternative.
func (c *resolveContext) disjoin(idx int, body ir.Node) {
	existing := c.table[idx]
	if existing.Kind == ir.KindFalse {
		c.table[idx] = body
		return
	}
	c.table[idx] = ir.Or(existing, body)
}

// Resolve normalizes root, interns every Define into a side table (Refer
// is rewritten to index into it, with path-prefix propagation so "a.b"
// also contributes under "a" and ""), and runs the remaining optimizer
// passes over both the resolved root and every table entry. Index 0 of the
// returned table is reserved and defaults to ir.False.
func Resolve(root ir.Node) (ir.Node, []ir.Node) {
	root = normalize(root)

	ctx := newResolveContext()
	root = identify(root, ctx)
	table := ctx.table

	root = optimize(root, table, map[int]bool{})
	for i := range table {
		if i == 0 {
			continue
		}
		table[i] = optimize(table[i], table, map[int]bool{i: true})
	}

	return root, table
}

// optimize runs passes (c)-(i) over n: expand inlines each Refer's target
// exactly once (guarding recursive productions against infinite inlining
// via the shared expanded set), then left-factor, shift-propagation,
// depth-fold, pre-switch, process, and post run once each, in that order.
func optimize(n ir.Node, table []ir.Node, expanded map[int]bool) ir.Node {
	n = expand(n, table, expanded)
	// identify leaves every collapsed Define as a bare True in place, and
	// expand can inline a Refer target that itself reduces to True; a
	// Boolean-simplification sweep (the same And/Or rules normalize
	// applies) clears both before the later passes reason about shape.
	n = simplify(n)
	n = leftFactor(n)
	n = shiftPropagate(n)
	n = depthFold(n)
	n = preSwitch(n)
	n = process(n)
	n = post(n)
	return n
}
