// Package ir defines the grammar intermediate representation: a closed sum
// of node variants, identifiers, and the structural operations used to
// rewrite a user-built grammar into canonical form.
package ir

import "fmt"

// Kind discriminates the variants of Node. The set is closed: every pass in
// package resolve and every compiler in package parser/generate must
// exhaustively handle all of them, and treat an unrecognized Kind reaching a
// runtime as an invariant violation (see Invalid).
type Kind int

const (
	KindTrue Kind = iota
	KindFalse
	KindAnd
	KindOr
	KindDefine
	KindRefer
	KindSymbol
	KindText
	KindSwitch
	KindSpawn
	KindDepth
	KindStore
	KindPrecede
	KindShift
)

func (k Kind) String() string {
	switch k {
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindDefine:
		return "Define"
	case KindRefer:
		return "Refer"
	case KindSymbol:
		return "Symbol"
	case KindText:
		return "Text"
	case KindSwitch:
		return "Switch"
	case KindSpawn:
		return "Spawn"
	case KindDepth:
		return "Depth"
	case KindStore:
		return "Store"
	case KindPrecede:
		return "Precede"
	case KindShift:
		return "Shift"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Side marks whether a Store or Precede node opens or closes its frame.
type Side int

const (
	Push Side = iota
	Pop
)

func (s Side) String() string {
	if s == Push {
		return "Push"
	}
	return "Pop"
}

// Bind is the associativity of a Precede frame.
type Bind int

const (
	BindNone Bind = iota
	BindLeft
	BindRight
)

func (b Bind) String() string {
	switch b {
	case BindLeft:
		return "Left"
	case BindRight:
		return "Right"
	default:
		return "None"
	}
}

// SwitchCase is one dispatch arm of a Switch node: consume Char, then run
// Node.
type SwitchCase struct {
	Char rune
	Node *Node
}

// Node is a grammar-IR fragment. Only the fields relevant to Kind are
// meaningful. Define and Shift are the only variants with a child (Body);
// And/Or have two (Left, Right); Switch has one per case; every other
// variant (True, False, Refer, Symbol, Text, Spawn, Depth, Store, Precede)
// is a leaf, sequenced with its neighbors via And rather than wrapping
// them. A single struct (rather than one Go type per variant) keeps
// Map/Descend/Flatten total functions over one concrete type.
type Node struct {
	Kind Kind

	// And, Or
	Left  *Node
	Right *Node

	// Define, Refer
	ID Identifier

	// Define, Shift
	Body *Node

	// Symbol
	Char rune

	// Text
	Text string

	// Switch
	Cases []SwitchCase

	// Spawn
	SpawnKind string

	// Depth
	Delta int

	// Store, Shift: trailing/leading byte count
	ShiftBy int

	// Store, Precede
	Side Side

	// Precede
	Precedence int
	Bind       Bind
}

// True is the neutral element of And: always matches, emits nothing.
func True() Node { return Node{Kind: KindTrue} }

// False is the neutral element of Or: never matches.
func False() Node { return Node{Kind: KindFalse} }

// And sequences l then r.
func And(l, r Node) Node { return Node{Kind: KindAnd, Left: &l, Right: &r} }

// Or chooses between l and r: first match wins during parsing, uniform
// random order during generation.
func Or(l, r Node) Node { return Node{Kind: KindOr, Left: &l, Right: &r} }

// Define binds id to n in the surrounding side table. A side effect during
// resolve: the node is consumed and replaced by True.
func Define(id Identifier, n Node) Node { return Node{Kind: KindDefine, ID: id, Body: &n} }

// Refer indirects through id, enabling recursion and sharing.
func Refer(id Identifier) Node { return Node{Kind: KindRefer, ID: id} }

// Symbol matches a single Unicode scalar value.
func Symbol(c rune) Node { return Node{Kind: KindSymbol, Char: c} }

// Text matches a literal, non-empty string.
func Text(s string) Node {
	if s == "" {
		panic(&ConfigError{Cause: fmt.Errorf("text literal must not be empty")})
	}
	return Node{Kind: KindText, Text: s}
}

// Switch dispatches on the next input character, consuming it before
// running the matching arm. An empty Switch is True.
func Switch(cases []SwitchCase) Node {
	if len(cases) == 0 {
		return True()
	}
	return Node{Kind: KindSwitch, Cases: cases}
}

// Spawn materializes a syntax-tree node of kind from values/children
// accumulated strictly below the depth in force when Spawn runs. A
// standalone marker, sequenced via And; it has no body of its own.
func Spawn(kind string) Node { return Node{Kind: KindSpawn, SpawnKind: kind} }

// Depth shifts the current tree-building depth by delta. A standalone
// marker, sequenced via And.
func Depth(delta int) Node { return Node{Kind: KindDepth, Delta: delta} }

// StoreMark marks the Push/Pop boundary of a captured text slice. shift
// accounts for trailing literal bytes the optimizer folded past the
// logical end of the capture. A standalone marker, sequenced via And.
func StoreMark(shift int, side Side) Node { return Node{Kind: KindStore, ShiftBy: shift, Side: side} }

// PrecedeMark enters/leaves a precedence frame. A standalone marker,
// sequenced via And.
func PrecedeMark(precedence int, bind Bind, side Side) Node {
	return Node{Kind: KindPrecede, Precedence: precedence, Bind: bind, Side: side}
}

// Shift is optimizer-internal: n has k statically-known prefix bytes to be
// consumed before it runs. The only marker-like variant with a child.
func Shift(k int, n Node) Node { return Node{Kind: KindShift, ShiftBy: k, Body: &n} }
