package combinator

import "github.com/Magicolo/quint/ir"

// Spawn runs n one depth level below the current one, then materializes a
// syntax-tree node of the given kind from everything accumulated below
// that level: Depth(1) & n & Depth(-1) & Spawn(kind).
func Spawn(kind string, n ir.Node) ir.Node {
	return All(ir.Depth(1), n, ir.Depth(-1), ir.Spawn(kind))
}

// Syntax binds path to a Spawn of the same name: Define(path, Spawn(path,
// n)). This is the usual way to introduce a named, tree-producing
// production.
func Syntax(path string, n ir.Node) ir.Node {
	return Define(path, Spawn(path, n))
}

// Store captures the text n consumes as a value of the enclosing spawned
// node: Store(Push) & n & Store(Pop).
func Store(n ir.Node) ir.Node {
	return All(ir.StoreMark(0, ir.Push), n, ir.StoreMark(0, ir.Pop))
}

// Prefix runs n inside a precedence frame with no associativity, the
// usual shape for a prefix (unary) operator.
func Prefix(precedence int, n ir.Node) ir.Node {
	return All(
		ir.PrecedeMark(precedence, ir.BindNone, ir.Push),
		n,
		ir.PrecedeMark(precedence, ir.BindNone, ir.Pop),
	)
}

// Postfix runs n inside a precedence frame with the given associativity,
// the usual shape for an infix or postfix operator, where bind decides
// whether an equal-precedence operator to the left is accepted.
func Postfix(precedence int, bind ir.Bind, n ir.Node) ir.Node {
	return All(
		ir.PrecedeMark(precedence, bind, ir.Push),
		n,
		ir.PrecedeMark(precedence, bind, ir.Pop),
	)
}

// Precede builds a classic Pratt loop: pre once, then post zero or more
// times, each iteration gated by the precedence frame post itself opens.
func Precede(pre, post ir.Node) ir.Node {
	return All(pre, Repeat(0, Unbounded, post))
}
