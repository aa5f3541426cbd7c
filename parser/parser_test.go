package parser

import (
	"testing"

	"github.com/Magicolo/quint/combinator"
	"github.com/Magicolo/quint/ir"
	"github.com/Magicolo/quint/resolve"
)

var emptyTable = []ir.Node{ir.False()}

func mustCompile(t *testing.T, root ir.Node, table []ir.Node) *Artifact {
	t.Helper()
	a, err := Compile(root, table)
	if err != nil {
		t.Fatalf("Compile(...) error = %v", err)
	}
	return a
}

func TestParseLiteralText(t *testing.T) {
	a := mustCompile(t, ir.Text("ab"), emptyTable)

	if trees := a.Parse("ab"); trees == nil {
		t.Fatal("Parse(\"ab\") = nil, want a match")
	}
	if trees := a.Parse("ac"); trees != nil {
		t.Fatalf("Parse(\"ac\") = %v, want no match", trees)
	}
}

func TestParseSwitchDispatchesOnFirstChar(t *testing.T) {
	a := mustCompile(t, ir.Switch([]ir.SwitchCase{
		{Char: 'a', Node: truePtr()},
		{Char: 'b', Node: truePtr()},
	}), emptyTable)

	if a.Parse("a") == nil {
		t.Fatal("Parse(\"a\") = nil, want a match")
	}
	if a.Parse("b") == nil {
		t.Fatal("Parse(\"b\") = nil, want a match")
	}
	if a.Parse("c") != nil {
		t.Fatal("Parse(\"c\") matched, want no match")
	}
}

func truePtr() *ir.Node {
	n := ir.True()
	return &n
}

// TestParseOrRestoresStateOnPartialFailure builds
// Or(Symbol('a')&Symbol('b'), Text("ac")) directly (bypassing resolve,
// whose left-factor pass would rewrite a shared-prefix Or and never
// exercise this path) so the left branch consumes one rune before failing:
// Or must roll the index back to its pre-attempt value before trying the
// right branch, not leave it wherever the failed branch left it.
func TestParseOrRestoresStateOnPartialFailure(t *testing.T) {
	root := ir.Or(ir.And(ir.Symbol('a'), ir.Symbol('b')), ir.Text("ac"))
	a := mustCompile(t, root, emptyTable)

	trees := a.Parse("ac")
	if trees == nil {
		t.Fatal("Parse(\"ac\") = nil, want Or to fall back to the second alternative")
	}
}

func TestParseSymbolAdvancesByRuneWidth(t *testing.T) {
	// U+00E9 (é) is 2 UTF-8 bytes; a following ASCII literal must see an
	// index advanced by 2, not 1.
	root := ir.And(ir.Symbol('é'), ir.Text("x"))
	a := mustCompile(t, root, emptyTable)

	if a.Parse("éx") == nil {
		t.Fatal("Parse(\"éx\") = nil, want a match")
	}
}

func TestParseReferIndirectsThroughTable(t *testing.T) {
	table := []ir.Node{ir.False(), ir.Text("z")}
	root := ir.Refer(ir.Index(1))
	a := mustCompile(t, root, table)

	if a.Parse("z") == nil {
		t.Fatal("Parse(\"z\") = nil, want the Refer to reach table[1]")
	}
	if a.Parse("y") != nil {
		t.Fatal("Parse(\"y\") matched, want no match")
	}
}

func TestParseRecursiveReferTerminates(t *testing.T) {
	// table[1] = ('a' & table[1]) | 'a', reachable only through Refer, so this
	// exercises the artifact's own recursion rather than expand's guard.
	table := make([]ir.Node, 2)
	table[0] = ir.False()
	table[1] = ir.Or(ir.And(ir.Symbol('a'), ir.Refer(ir.Index(1))), ir.Symbol('a'))
	a := mustCompile(t, ir.Refer(ir.Index(1)), table)

	if a.Parse("aaa") == nil {
		t.Fatal("Parse(\"aaa\") = nil, want the recursive production to match")
	}
	if a.Parse("") != nil {
		t.Fatal("Parse(\"\") matched, want no match (at least one 'a' required)")
	}
}

func TestParsePrecedeLeftRejectsEqualPrecedence(t *testing.T) {
	// A Left-bound frame at precedence 1 nested inside one already at
	// precedence 1 must fail to enter.
	root := ir.And(
		ir.PrecedeMark(1, ir.BindNone, ir.Push),
		ir.And(
			ir.PrecedeMark(1, ir.BindLeft, ir.Push),
			ir.And(ir.Text("x"), ir.PrecedeMark(1, ir.BindLeft, ir.Pop)),
		),
	)
	a := mustCompile(t, root, emptyTable)

	if a.Parse("x") != nil {
		t.Fatal("Parse(\"x\") matched, want the Left-bound inner frame to reject equal precedence")
	}
}

func TestParsePrecedeRightAcceptsEqualPrecedence(t *testing.T) {
	root := ir.And(
		ir.PrecedeMark(1, ir.BindNone, ir.Push),
		ir.And(
			ir.PrecedeMark(1, ir.BindRight, ir.Push),
			ir.And(ir.Text("x"), ir.PrecedeMark(1, ir.BindRight, ir.Pop)),
		),
	)
	a := mustCompile(t, root, emptyTable)

	if a.Parse("x") == nil {
		t.Fatal("Parse(\"x\") = nil, want a Right-bound inner frame to accept equal precedence")
	}
}

func TestParseStoreCapturesSliceBetweenMarks(t *testing.T) {
	root := ir.And(
		ir.Depth(1),
		ir.And(
			ir.StoreMark(0, ir.Push),
			ir.And(
				ir.And(ir.Symbol('x'), ir.Symbol('y')),
				ir.And(
					ir.StoreMark(0, ir.Pop),
					ir.And(ir.Depth(-1), ir.Spawn("leaf")),
				),
			),
		),
	)
	a := mustCompile(t, root, emptyTable)

	trees := a.Parse("xy")
	if len(trees) != 1 {
		t.Fatalf("Parse(\"xy\") = %v, want exactly one spawned tree", trees)
	}
	if trees[0].Kind != "leaf" || len(trees[0].Values) != 1 || trees[0].Values[0] != "xy" {
		t.Fatalf("Parse(\"xy\") tree = %+v, want leaf{Values:[\"xy\"]}", trees[0])
	}
}

func TestParseStoreShiftRollsBackTrailingLiteral(t *testing.T) {
	// Simulates what resolve/shift.go folds a Shift into: the Store(Pop)
	// carries shift=1 to account for a trailing literal byte that sits
	// after the logical end of the captured slice.
	root := ir.And(
		ir.Depth(1),
		ir.And(
			ir.StoreMark(0, ir.Push),
			ir.And(
				ir.Symbol('x'),
				ir.And(
					ir.Symbol(';'),
					ir.And(
						ir.StoreMark(1, ir.Pop),
						ir.And(ir.Depth(-1), ir.Spawn("leaf")),
					),
				),
			),
		),
	)
	a := mustCompile(t, root, emptyTable)

	trees := a.Parse("x;")
	if len(trees) != 1 || trees[0].Values[0] != "x" {
		t.Fatalf("Parse(\"x;\") tree = %+v, want captured value \"x\" (trailing ';' excluded)", trees)
	}
}

func TestParseNestedSpawnProducesChildTree(t *testing.T) {
	inner := combinator.Syntax("inner", combinator.Store(combinator.Symbol('i')))
	outer := combinator.Syntax("outer", combinator.All(combinator.Refer("inner"), combinator.Symbol('o')))
	root := combinator.All(inner, outer, combinator.Refer("outer"))

	resolvedRoot, table := resolve.Resolve(root)
	a := mustCompile(t, resolvedRoot, table)

	trees := a.Parse("io")
	if len(trees) != 1 {
		t.Fatalf("Parse(\"io\") = %v, want exactly one top-level tree", trees)
	}
	top := trees[0]
	if top.Kind != "outer" || len(top.Children) != 1 {
		t.Fatalf("Parse(\"io\") top = %+v, want outer{Children:[inner]}", top)
	}
	if top.Children[0].Kind != "inner" || top.Children[0].Values[0] != "i" {
		t.Fatalf("Parse(\"io\") inner child = %+v, want inner{Values:[\"i\"]}", top.Children[0])
	}
}

func TestParseDigitSpawnsLeafWithStoredValue(t *testing.T) {
	root := combinator.All(
		combinator.Syntax("digit", combinator.Store(combinator.Range('0', '9'))),
		combinator.Refer("digit"),
	)
	resolvedRoot, table := resolve.Resolve(root)
	a := mustCompile(t, resolvedRoot, table)

	trees := a.Parse("5")
	if len(trees) != 1 {
		t.Fatalf("Parse(\"5\") = %v, want exactly one spawned tree", trees)
	}
	if trees[0].Kind != "digit" || len(trees[0].Values) != 1 || trees[0].Values[0] != "5" {
		t.Fatalf("Parse(\"5\") tree = %+v, want digit{Values:[\"5\"]}", trees[0])
	}
	if a.Parse("x") != nil {
		t.Fatal("Parse(\"x\") matched, want no match outside [0-9]")
	}
}

func TestParseLiteralSequence(t *testing.T) {
	root, table := resolve.Resolve(combinator.All(
		combinator.Text("Boba"), combinator.Symbol(' '), combinator.Text("Fett"),
	))
	a := mustCompile(t, root, table)

	if a.Parse("Boba Fett") == nil {
		t.Fatal("Parse(\"Boba Fett\") = nil, want a match")
	}
	if a.Parse("BobaFett") != nil {
		t.Fatal("Parse(\"BobaFett\") matched, want no match (space required)")
	}
}

func TestParseAlternation(t *testing.T) {
	root, table := resolve.Resolve(combinator.Any(combinator.Text("Boba"), combinator.Text("Fett")))
	a := mustCompile(t, root, table)

	tests := []struct {
		text string
		want bool
	}{
		{"Boba", true},
		{"Fett", true},
		{"Jango", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := a.Parse(tt.text) != nil; got != tt.want {
				t.Fatalf("Parse(%q) matched = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseRepeatLowBound(t *testing.T) {
	root, table := resolve.Resolve(combinator.Repeat(2, combinator.Unbounded, combinator.Text("X")))
	a := mustCompile(t, root, table)

	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"X", false},
		{"XX", true},
		{"XXX", true},
	}
	for _, tt := range tests {
		t.Run("n="+tt.text, func(t *testing.T) {
			if got := a.Parse(tt.text) != nil; got != tt.want {
				t.Fatalf("Parse(%q) matched = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseRepeatHighBound(t *testing.T) {
	root, table := resolve.Resolve(combinator.Repeat(0, 3, combinator.Text("X")))
	a := mustCompile(t, root, table)

	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"X", true},
		{"XXX", true},
		{"XXXX", false},
	}
	for _, tt := range tests {
		t.Run("n="+tt.text, func(t *testing.T) {
			if got := a.Parse(tt.text) != nil; got != tt.want {
				t.Fatalf("Parse(%q) matched = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseOptionNeitherRequiresNorForbids(t *testing.T) {
	root, table := resolve.Resolve(combinator.All(
		combinator.Text("a"), combinator.Option(combinator.Text(" ")), combinator.Text("b"),
	))
	a := mustCompile(t, root, table)

	if a.Parse("a b") == nil {
		t.Fatal("Parse(\"a b\") = nil, want a match with the optional space")
	}
	if a.Parse("ab") == nil {
		t.Fatal("Parse(\"ab\") = nil, want a match without the optional space")
	}
}

func TestParseEmptyInput(t *testing.T) {
	always := mustCompile(t, ir.True(), emptyTable)
	if always.Parse("") == nil {
		t.Fatal("Parse(\"\") against True = nil, want a match")
	}

	never := mustCompile(t, ir.False(), emptyTable)
	if never.Parse("") != nil {
		t.Fatal("Parse(\"\") against False matched, want no match")
	}
}

// TestResolvePreservesAcceptance compiles the same define-free grammar
// twice, once raw and once through resolve, and checks both artifacts
// accept and reject identical inputs.
func TestResolvePreservesAcceptance(t *testing.T) {
	tests := []struct {
		caption string
		node    ir.Node
		inputs  map[string]bool
	}{
		{
			caption: "factored alternation",
			node: combinator.All(
				combinator.Any(combinator.Text("ab"), combinator.Text("a")),
				combinator.Text("c"),
			),
			inputs: map[string]bool{"abc": true, "ac": true, "c": false, "abd": false},
		},
		{
			caption: "bounded repeat",
			node:    combinator.Repeat(0, 2, combinator.Symbol('x')),
			inputs:  map[string]bool{"": true, "x": true, "xx": true, "xxx": false},
		},
		{
			caption: "optional prefix",
			node: combinator.All(
				combinator.Option(combinator.Symbol(' ')),
				combinator.Text("hi"),
			),
			inputs: map[string]bool{"hi": true, " hi": true, "  hi": false, "h": false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			raw := mustCompile(t, tt.node, emptyTable)
			root, table := resolve.Resolve(tt.node)
			resolved := mustCompile(t, root, table)

			for input, want := range tt.inputs {
				if got := raw.Parse(input) != nil; got != want {
					t.Fatalf("raw Parse(%q) matched = %v, want %v", input, got, want)
				}
				if got := resolved.Parse(input) != nil; got != want {
					t.Fatalf("resolved Parse(%q) matched = %v, want %v", input, got, want)
				}
			}
		})
	}
}

func TestCompileRejectsDuplicateSwitchDispatchChar(t *testing.T) {
	_, err := Compile(ir.Switch([]ir.SwitchCase{
		{Char: 'a', Node: truePtr()},
		{Char: 'a', Node: truePtr()},
	}), emptyTable)
	if err == nil {
		t.Fatal("Compile(...) error = nil, want a duplicate-dispatch-char error")
	}
}

func TestCompileRejectsOutOfRangeReferIndex(t *testing.T) {
	_, err := Compile(ir.Refer(ir.Index(5)), emptyTable)
	if err == nil {
		t.Fatal("Compile(...) error = nil, want an out-of-range Refer index error")
	}
}
