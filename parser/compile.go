package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Magicolo/quint/ir"
)

// Artifact is a compiled grammar, ready to parse text. Slots are
// index-addressed: a Refer closure looks up its target through the
// artifact pointer at call time rather than closing over a not-yet-built
// function value, which is what lets forward and recursive references
// compile at all.
type Artifact struct {
	slots []func(*State) bool
	root  func(*State) bool
}

type compiler struct {
	artifact *Artifact
	table    []ir.Node
}

// Compile turns a resolved (root, table) pair into an Artifact. It panics
// on an ir.Kind no compiled pass should ever produce (Define, an
// unrecognized Kind) via ir.Invalid, and returns an error for the two
// construction-time problems that can still be reached after resolve: a
// reachable Switch with duplicate dispatch characters, and a Refer whose
// index falls outside the table.
func Compile(root ir.Node, table []ir.Node) (*Artifact, error) {
	a := &Artifact{slots: make([]func(*State) bool, len(table))}
	c := &compiler{artifact: a, table: table}

	for i, n := range table {
		if i == 0 {
			a.slots[0] = func(*State) bool { return false }
			continue
		}
		fn, err := c.compile(n)
		if err != nil {
			return nil, fmt.Errorf("compile table[%d]: %w", i, err)
		}
		a.slots[i] = fn
	}

	fn, err := c.compile(root)
	if err != nil {
		return nil, fmt.Errorf("compile root: %w", err)
	}
	a.root = fn
	return a, nil
}

func (c *compiler) compile(n ir.Node) (func(*State) bool, error) {
	switch n.Kind {
	case ir.KindTrue:
		return func(*State) bool { return true }, nil
	case ir.KindFalse:
		return func(*State) bool { return false }, nil
	case ir.KindAnd:
		l, err := c.compile(*n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compile(*n.Right)
		if err != nil {
			return nil, err
		}
		return func(s *State) bool { return l(s) && r(s) }, nil
	case ir.KindOr:
		l, err := c.compile(*n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compile(*n.Right)
		if err != nil {
			return nil, err
		}
		// Each alternative runs on a clone and commits back only on
		// success. Running on s and restoring afterward is not enough: a
		// failing branch that spawns truncates-then-overwrites the tree
		// stack in place, corrupting the backing array an enclosing
		// alternative still holds.
		return func(s *State) bool {
			local := s.clone()
			if l(local) {
				*s = *local
				return true
			}
			local = s.clone()
			if r(local) {
				*s = *local
				return true
			}
			return false
		}, nil
	case ir.KindRefer:
		idx := n.ID.Index
		if idx < 0 || idx >= len(c.table) {
			return nil, fmt.Errorf("refer index %d out of range [0,%d)", idx, len(c.table))
		}
		a := c.artifact
		return func(s *State) bool { return a.slots[idx](s) }, nil
	case ir.KindSymbol:
		want := n.Char
		return func(s *State) bool {
			r, size := utf8.DecodeRuneInString(s.Text[s.Index:])
			if size == 0 || r != want {
				return false
			}
			s.Index += size
			return true
		}, nil
	case ir.KindText:
		lit := n.Text
		return func(s *State) bool {
			if !strings.HasPrefix(s.Text[s.Index:], lit) {
				return false
			}
			s.Index += len(lit)
			return true
		}, nil
	case ir.KindSwitch:
		return c.compileSwitch(n.Cases)
	case ir.KindSpawn:
		kind := n.SpawnKind
		return func(s *State) bool {
			s.spawn(kind)
			return true
		}, nil
	case ir.KindDepth:
		delta := n.Delta
		return func(s *State) bool {
			s.Depth += delta
			return true
		}, nil
	case ir.KindStore:
		shift, side := n.ShiftBy, n.Side
		if side == ir.Push {
			return func(s *State) bool {
				s.Indices = append(s.Indices, s.Index-shift)
				return true
			}, nil
		}
		return func(s *State) bool {
			n := len(s.Indices)
			if n == 0 {
				panic(fmt.Errorf("parser: store pop without matching push"))
			}
			i := s.Indices[n-1]
			s.Indices = s.Indices[:n-1]
			s.Values = append(s.Values, valueMark{value: s.Text[i : s.Index-shift], depth: s.Depth})
			return true
		}, nil
	case ir.KindPrecede:
		precedence, bind, side := n.Precedence, n.Bind, n.Side
		if side == ir.Push {
			return func(s *State) bool {
				if bind == ir.BindLeft && precedence <= s.Precedence {
					return false
				}
				if bind == ir.BindRight && precedence < s.Precedence {
					return false
				}
				s.Precedences = append(s.Precedences, s.Precedence)
				s.Precedence = precedence
				return true
			}, nil
		}
		return func(s *State) bool {
			n := len(s.Precedences)
			if n == 0 {
				panic(fmt.Errorf("parser: precede pop without matching push"))
			}
			s.Precedence = s.Precedences[n-1]
			s.Precedences = s.Precedences[:n-1]
			return true
		}, nil
	case ir.KindShift:
		// Shift is optimizer bookkeeping only: by the time it reaches a
		// compiled artifact the bytes it accounts for were already
		// consumed by a preceding literal match, so it runs its body
		// with no independent runtime effect of its own.
		return c.compile(*n.Body)
	default:
		ir.Invalid("parser.compile", n)
		return nil, nil
	}
}

func (c *compiler) compileSwitch(cases []ir.SwitchCase) (func(*State) bool, error) {
	dispatch := make(map[rune]func(*State) bool, len(cases))
	for _, cs := range cases {
		if _, ok := dispatch[cs.Char]; ok {
			return nil, fmt.Errorf("duplicate switch dispatch character %q", cs.Char)
		}
		fn, err := c.compile(*cs.Node)
		if err != nil {
			return nil, err
		}
		dispatch[cs.Char] = fn
	}
	return func(s *State) bool {
		r, size := utf8.DecodeRuneInString(s.Text[s.Index:])
		if size == 0 {
			return false
		}
		arm, ok := dispatch[r]
		if !ok {
			return false
		}
		s.Index += size
		return arm(s)
	}, nil
}

// Parse runs the compiled artifact over text from the start and, once the
// root has matched all of text, returns every tree left on the tree stack,
// in the order they were spawned, whatever depth they were tagged with. A
// nil result means the grammar did not match text at all; a non-nil empty
// slice means it matched without spawning anything (e.g. a bare literal
// with no Spawn in scope).
func (a *Artifact) Parse(text string) []ir.Tree {
	s := newState(text)
	if !a.root(s) || s.Index != len(text) {
		return nil
	}
	trees := make([]ir.Tree, len(s.Trees))
	for i, m := range s.Trees {
		trees[i] = m.tree
	}
	return trees
}
