// Package json is a demonstration grammar: a JSON-like value language built
// entirely from package combinator, plus a Tree-to-Syntax converter. It is
// a thin consumer of the core (ir/resolve/parser/generate), not part of
// it.
package json

import (
	"errors"
	"strconv"
	"sync"

	"github.com/Magicolo/quint/combinator"
	"github.com/Magicolo/quint/generate"
	"github.com/Magicolo/quint/ir"
	"github.com/Magicolo/quint/parser"
	"github.com/Magicolo/quint/resolve"
)

// Kind discriminates the variants of Syntax, the converted domain type.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindBoolean
	KindString
	KindArray
	KindObject
)

// Pair is one key/value entry of a KindObject Syntax.
type Pair struct {
	Key   Syntax
	Value Syntax
}

// Syntax is the converted JSON value domain type. A single struct carries
// every variant's payload, following this module's house style (ir.Node,
// ir.Identifier) of one discriminated struct over an interface hierarchy.
type Syntax struct {
	Kind    Kind
	Number  float64
	Boolean bool
	String  string
	Items   []Syntax
	Pairs   []Pair
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

// space matches zero or more ASCII whitespace characters.
func space() ir.Node {
	return combinator.Repeat(0, combinator.Unbounded,
		combinator.Any(combinator.Symbol(' '), combinator.Symbol('\n'), combinator.Symbol('\r'), combinator.Symbol('\t')))
}

// wrap matches sym surrounded by optional whitespace on both sides, the
// usual shape for JSON punctuation.
func wrap(sym string) ir.Node {
	return combinator.All(space(), combinator.Text(sym), space())
}

func digit() ir.Node { return combinator.Range('0', '9') }

// letter is the allowed content of a JSON string in this demonstration
// grammar: an escape sequence, or a restricted ASCII class. A full JSON
// string accepts any Unicode scalar but '"' and '\' unescaped; Range only
// compiles practically over modest spans (see combinator.Range), so this
// demo grammar narrows to letters, digits, space, '-', and '_'.
func letter() ir.Node {
	return combinator.Any(
		escape(),
		combinator.Range('a', 'z'),
		combinator.Range('A', 'Z'),
		digit(),
		combinator.Symbol(' '),
		combinator.Symbol('-'),
		combinator.Symbol('_'),
	)
}

func hex() ir.Node {
	return combinator.Any(digit(), combinator.Range('a', 'f'), combinator.Range('A', 'F'))
}

func escape() ir.Node {
	unicodeEscape := combinator.All(combinator.Symbol('u'), combinator.Repeat(4, 4, hex()))
	return combinator.All(combinator.Symbol('\\'), combinator.Any(
		combinator.Symbol('\\'), combinator.Symbol('/'), combinator.Symbol('"'),
		combinator.Symbol('b'), combinator.Symbol('f'), combinator.Symbol('n'),
		combinator.Symbol('r'), combinator.Symbol('t'), unicodeEscape,
	))
}

func integer() ir.Node {
	return combinator.All(
		combinator.Option(combinator.Symbol('-')),
		combinator.Any(
			combinator.Symbol('0'),
			combinator.All(combinator.Range('1', '9'), combinator.Repeat(0, combinator.Unbounded, digit())),
		),
	)
}

func fraction() ir.Node {
	return combinator.All(combinator.Symbol('.'), combinator.Repeat(1, combinator.Unbounded, digit()))
}

func exponent() ir.Node {
	return combinator.All(
		combinator.Any(combinator.Symbol('e'), combinator.Symbol('E')),
		combinator.Option(combinator.Any(combinator.Symbol('+'), combinator.Symbol('-'))),
		combinator.Repeat(1, combinator.Unbounded, digit()),
	)
}

func number() ir.Node {
	return combinator.All(integer(), combinator.Option(fraction()), combinator.Option(exponent()))
}

// Grammar builds the JSON value grammar. "value" is the grammar's root
// production; callers reach it
// through combinator.Refer("value") or, for a standalone artifact, by
// passing Grammar() itself as the root (it ends with Refer("value"), so a
// parse of it starts at value).
func Grammar() ir.Node {
	pair := combinator.All(combinator.Refer("string"), wrap(":"), combinator.Refer("value"))
	return combinator.All(
		combinator.Define("value", combinator.Any(
			combinator.Refer("null"), combinator.Refer("true"), combinator.Refer("false"),
			combinator.Refer("string"), combinator.Refer("array"), combinator.Refer("object"),
			combinator.Refer("number"),
		)),
		combinator.Syntax("null", combinator.All(space(), combinator.Text("null"), space())),
		combinator.Syntax("true", combinator.All(space(), combinator.Text("true"), space())),
		combinator.Syntax("false", combinator.All(space(), combinator.Text("false"), space())),
		combinator.Syntax("string", combinator.All(
			space(), combinator.Text(`"`), combinator.Store(combinator.Repeat(0, combinator.Unbounded, letter())), combinator.Text(`"`), space(),
		)),
		combinator.Syntax("array", combinator.All(
			wrap("["), combinator.Join(wrap(","), combinator.Refer("value"), 0, combinator.Unbounded), wrap("]"),
		)),
		combinator.Syntax("object", combinator.All(
			wrap("{"), combinator.Join(wrap(","), pair, 0, combinator.Unbounded), wrap("}"),
		)),
		combinator.Syntax("number", combinator.All(space(), combinator.Store(number()), space())),
		combinator.Refer("value"),
	)
}

// Convert walks a parsed ir.Tree into a Syntax value. It panics on a Kind
// outside the grammar above, which is only reachable if a caller hands it
// a Tree produced by a different grammar.
func Convert(tree ir.Tree) Syntax {
	switch tree.Kind {
	case "null":
		return Syntax{Kind: KindNull}
	case "true":
		return Syntax{Kind: KindBoolean, Boolean: true}
	case "false":
		return Syntax{Kind: KindBoolean, Boolean: false}
	case "string":
		value := ""
		if len(tree.Values) > 0 {
			value = tree.Values[0]
		}
		return Syntax{Kind: KindString, String: value}
	case "number":
		// A range error still yields the nearest representable value
		// (±Inf or 0); grammatically valid literals like "1e999" keep it
		// rather than failing the whole conversion.
		n, err := strconv.ParseFloat(tree.Values[0], 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic("json.Convert: invalid number literal " + tree.Values[0])
		}
		return Syntax{Kind: KindNumber, Number: n}
	case "array":
		items := make([]Syntax, len(tree.Children))
		for i, child := range tree.Children {
			items[i] = Convert(child)
		}
		return Syntax{Kind: KindArray, Items: items}
	case "object":
		pairs := make([]Pair, 0, len(tree.Children)/2)
		for i := 0; i+1 < len(tree.Children); i += 2 {
			pairs = append(pairs, Pair{Key: Convert(tree.Children[i]), Value: Convert(tree.Children[i+1])})
		}
		return Syntax{Kind: KindObject, Pairs: pairs}
	default:
		panic("json.Convert: invalid kind " + tree.Kind)
	}
}

// Parse parses text against the JSON grammar and converts the result. ok
// is false on a parse failure: no partial consumption, no panic.
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

// Generate emits a random JSON value as text via source, the randomized
// counterpart to Parse.
func Generate(source generate.Source) (string, bool) {
	_, g, err := compiled()
	if err != nil {
		panic(err)
	}
	return g.Generate(source)
}
