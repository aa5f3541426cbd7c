package resolve

import "github.com/Magicolo/quint/ir"

// leftFactor is pass (d): (a&b)|(a&c) -> a&(b|c), applied bottom-up
// through every Or node. Left-factoring a set of alternatives that share a
// literal prefix turns what would be several independent attempts (and,
// in the generator, several independent random choices landing on the
// same observable prefix) into one.
func leftFactor(n ir.Node) ir.Node {
	return ir.Descend(n, func(n ir.Node) ir.Node {
		if n.Kind != ir.KindOr {
			return n
		}
		return factorOr(n)
	})
}

type factorGroup struct {
	hasFirst bool
	first    ir.Node
	solo     ir.Node
	rests    []ir.Node
}

func factorOr(n ir.Node) ir.Node {
	operands := ir.Flatten(n)

	var groups []*factorGroup
	index := map[string]int{}

	for _, op := range operands {
		first, rest, ok := splitAndHead(op)
		if !ok {
			groups = append(groups, &factorGroup{solo: op})
			continue
		}
		k := key(first)
		if gi, found := index[k]; found && groups[gi].hasFirst {
			groups[gi].rests = append(groups[gi].rests, rest)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, &factorGroup{hasFirst: true, first: first, rests: []ir.Node{rest}})
	}

	rebuilt := make([]ir.Node, 0, len(groups))
	for _, g := range groups {
		if !g.hasFirst {
			rebuilt = append(rebuilt, g.solo)
			continue
		}
		if len(g.rests) == 1 {
			rebuilt = append(rebuilt, mkAnd(g.first, g.rests[0]))
			continue
		}
		tail := g.rests[len(g.rests)-1]
		for i := len(g.rests) - 2; i >= 0; i-- {
			tail = mkOr(g.rests[i], tail)
		}
		rebuilt = append(rebuilt, mkAnd(g.first, tail))
	}

	out := rebuilt[len(rebuilt)-1]
	for i := len(rebuilt) - 2; i >= 0; i-- {
		out = mkOr(rebuilt[i], out)
	}
	return out
}

// splitAndHead reports the leading operand and the remainder of an And
// node, or ok=false if op cannot be factored (not itself an And).
func splitAndHead(op ir.Node) (first, rest ir.Node, ok bool) {
	if op.Kind != ir.KindAnd {
		return ir.Node{}, ir.Node{}, false
	}
	return *op.Left, *op.Right, true
}
