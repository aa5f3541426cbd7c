// Package combinator is the ergonomic grammar-construction API layered over
// package ir. Every function here builds a plain ir.Node; nothing in this
// package runs resolve, parser, or generate: callers compose a tree with
// these helpers and then hand the result to resolve.Resolve.
package combinator

import "github.com/Magicolo/quint/ir"

// All sequences nodes left to right. An empty call is ir.True, the neutral
// element of And.
func All(nodes ...ir.Node) ir.Node {
	if len(nodes) == 0 {
		return ir.True()
	}
	out := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		out = ir.And(nodes[i], out)
	}
	return out
}

// Any tries nodes in order while parsing, and in uniform random order while
// generating. An empty call is ir.False, the neutral element of Or.
func Any(nodes ...ir.Node) ir.Node {
	if len(nodes) == 0 {
		return ir.False()
	}
	out := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		out = ir.Or(nodes[i], out)
	}
	return out
}

// Option makes n optional: n, or nothing.
func Option(n ir.Node) ir.Node {
	return Any(n, ir.True())
}

// Symbol matches a single Unicode scalar value.
func Symbol(c rune) ir.Node { return ir.Symbol(c) }

// Text matches a literal, non-empty string.
func Text(s string) ir.Node { return ir.Text(s) }

// Word is sugar for Text: a literal string matched as a single unit.
func Word(s string) ir.Node { return ir.Text(s) }

// Define binds path to n in the surrounding grammar's side table.
func Define(path string, n ir.Node) ir.Node { return ir.Define(ir.Path(path), n) }

// Refer indirects through a previously (or later) Defined path, enabling
// recursive and shared productions.
func Refer(path string) ir.Node { return ir.Refer(ir.Path(path)) }
