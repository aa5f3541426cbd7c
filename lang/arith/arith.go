// Package arith is a second demonstration grammar: a small arithmetic
// expression language exercising Precede-based precedence/associativity.
package arith

import (
	"strconv"
	"sync"

	"github.com/Magicolo/quint/combinator"
	"github.com/Magicolo/quint/generate"
	"github.com/Magicolo/quint/ir"
	"github.com/Magicolo/quint/parser"
	"github.com/Magicolo/quint/resolve"
)

// Op discriminates the variants of Syntax.
type Op int

const (
	OpNumber Op = iota
	OpNegate
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Syntax is the converted expression tree: a leaf Number, a unary Negate,
// and the four binary operators.
type Syntax struct {
	Op     Op
	Number float64
	Left   *Syntax
	Right  *Syntax
}

var (
	compileOnce sync.Once
	artifact    *parser.Artifact
	genArtifact *generate.Artifact
	compileErr  error
)

func compiled() (*parser.Artifact, *generate.Artifact, error) {
	compileOnce.Do(func() {
		root, table := resolve.Resolve(Grammar())
		artifact, compileErr = parser.Compile(root, table)
		if compileErr != nil {
			return
		}
		genArtifact, compileErr = generate.Compile(root, table)
	})
	return artifact, genArtifact, compileErr
}

func digit() ir.Node { return combinator.Range('0', '9') }

// number matches unsigned digits with an optional fractional part. Sign is
// handled by the separate "negate" production, not here: operand's Any
// always tries negate before number, so a leading '-' is never reached by
// this rule.
func number() ir.Node {
	return combinator.All(
		combinator.Repeat(1, combinator.Unbounded, digit()),
		combinator.Option(combinator.All(combinator.Symbol('.'), combinator.Repeat(1, combinator.Unbounded, digit()))),
	)
}

// foldSpawn is the asymmetric counterpart to combinator.Spawn needed for
// binary folds: a normal Spawn(kind, n) brackets n with
// Depth(1)/Depth(-1), so only the subtree n itself would ever be picked
// up as a child. A binary operator instead needs to capture an
// already-parsed sibling standing at the CURRENT depth (the left operand
// of an add, say) together with the operand n parses next, as the two
// children of one new node. The single unpaired Depth(-1) before Spawn
// lowers the ambient floor by one, so the collection sweeps in both
// siblings and the folded node becomes the loop's new left operand. The
// depth counter drifts negative over a chain of folds; only relative
// comparisons against marks pushed while it was in force are ever used.
func foldSpawn(kind string, n ir.Node) ir.Node {
	return combinator.All(n, ir.Depth(-1), ir.Spawn(kind))
}

// binary builds one infix operator production: a Left-bound precedence
// frame around the operator symbol and the recursive right operand, folded
// into a two-child node by foldSpawn. The recursion is bracketed with
// Depth(+1)/Depth(-1) so trees built by the inner expression sit strictly
// above the ambient floor: without the bracket, an inner
// higher-precedence fold ("2*3" inside "1+2*3") would sweep the outer
// left operand into its own children.
func binary(kind string, precedence int, sym rune) ir.Node {
	return foldSpawn(kind, combinator.Postfix(precedence, ir.BindLeft, combinator.All(
		combinator.Symbol(sym),
		ir.Depth(1),
		combinator.Refer("expression"),
		ir.Depth(-1),
	)))
}

// Grammar builds the arithmetic expression grammar. All four binary
// operators bind left, so equal-precedence chains associate
// left-to-right: "1+2+3" parses as Binary(Add, Binary(Add, 1, 2), 3).
// negate binds tighter than every binary operator and associates with
// nothing to its right, so "-1--2" parses as Binary(Subtract,
// Unary(Negate, 1), Unary(Negate, 2)).
func Grammar() ir.Node {
	add := binary("add", 10, '+')
	subtract := binary("subtract", 10, '-')
	multiply := binary("multiply", 20, '*')
	divide := binary("divide", 20, '/')

	return combinator.All(
		combinator.Syntax("negate", combinator.Prefix(100, combinator.All(combinator.Symbol('-'), combinator.Refer("operand")))),
		combinator.Syntax("number", combinator.Store(number())),
		combinator.Define("operand", combinator.Any(combinator.Refer("negate"), combinator.Refer("number"))),
		combinator.Define("expression", combinator.Precede(
			combinator.Refer("operand"),
			combinator.Any(add, subtract, multiply, divide),
		)),
		combinator.Refer("expression"),
	)
}

// Convert walks a parsed ir.Tree into a Syntax value.
func Convert(tree ir.Tree) Syntax {
	switch tree.Kind {
	case "number":
		n, err := strconv.ParseFloat(tree.Values[0], 64)
		if err != nil {
			panic("arith.Convert: invalid number literal " + tree.Values[0])
		}
		return Syntax{Op: OpNumber, Number: n}
	case "negate":
		operand := Convert(tree.Children[0])
		return Syntax{Op: OpNegate, Left: &operand}
	case "add", "subtract", "multiply", "divide":
		left := Convert(tree.Children[0])
		right := Convert(tree.Children[1])
		op := map[string]Op{"add": OpAdd, "subtract": OpSubtract, "multiply": OpMultiply, "divide": OpDivide}[tree.Kind]
		return Syntax{Op: op, Left: &left, Right: &right}
	default:
		panic("arith.Convert: invalid kind " + tree.Kind)
	}
}

// Parse parses text against the arithmetic grammar and converts the
// result. ok is false on a parse failure.
func Parse(text string) (Syntax, bool) {
	a, _, err := compiled()
	if err != nil {
		panic(err)
	}
	trees := a.Parse(text)
	if len(trees) == 0 {
		return Syntax{}, false
	}
	return Convert(trees[len(trees)-1]), true
}

// Generate emits a random arithmetic expression as text via source.
func Generate(source generate.Source) (string, bool) {
	_, g, err := compiled()
	if err != nil {
		panic(err)
	}
	return g.Generate(source)
}
