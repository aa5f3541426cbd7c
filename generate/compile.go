package generate

import (
	"fmt"
	"unicode/utf8"

	"github.com/Magicolo/quint/ir"
)

// Artifact is a compiled grammar, ready to generate text. Same
// index-addressed slot-table shape as parser.Artifact, for the same
// forward/recursive-reference reason.
type Artifact struct {
	slots []func(*State) bool
	root  func(*State) bool
}

type compiler struct {
	artifact *Artifact
	table    []ir.Node
}

// Compile turns a resolved (root, table) pair into an Artifact. Same error
// surface as parser.Compile: a reachable Switch with duplicate dispatch
// characters and an out-of-range Refer index are reported; any other
// unrecognized ir.Kind is an invariant violation (ir.Invalid panics).
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
		nodes := ir.Flatten(n)
		fns := make([]func(*State) bool, len(nodes))
		for i, node := range nodes {
			fn, err := c.compile(node)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		return func(s *State) bool {
			for _, fn := range fns {
				if !fn(s) {
					return false
				}
			}
			return true
		}, nil
	case ir.KindOr:
		nodes := ir.Flatten(n)
		fns := make([]func(*State) bool, len(nodes))
		for i, node := range nodes {
			fn, err := c.compile(node)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		return orAttempt(fns), nil
	case ir.KindRefer:
		idx := n.ID.Index
		if idx < 0 || idx >= len(c.table) {
			return nil, fmt.Errorf("refer index %d out of range [0,%d)", idx, len(c.table))
		}
		a := c.artifact
		return func(s *State) bool { return a.slots[idx](s) }, nil
	case ir.KindSymbol:
		lit := string(n.Char)
		return func(s *State) bool {
			s.Text += lit
			return true
		}, nil
	case ir.KindText:
		lit := n.Text
		return func(s *State) bool {
			s.Text += lit
			return true
		}, nil
	case ir.KindSwitch:
		return c.compileSwitch(n.Cases)
	case ir.KindSpawn, ir.KindDepth, ir.KindStore:
		// No-ops for generation: these affect only parse-tree
		// construction, never the emitted text.
		return func(*State) bool { return true }, nil
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
				panic(fmt.Errorf("generate: precede pop without matching push"))
			}
			s.Precedence = s.Precedences[n-1]
			s.Precedences = s.Precedences[:n-1]
			return true
		}, nil
	case ir.KindShift:
		return c.compile(*n.Body)
	default:
		ir.Invalid("generate.compile", n)
		return nil, nil
	}
}

// orAttempt tries fns in a uniform-random permutation, running each
// attempt on a clone and committing the clone back only on success.
// Mirrors parser's Or clone/commit so a Precede gate failing partway
// through one alternative never leaks its partial effects into the next.
func orAttempt(fns []func(*State) bool) func(*State) bool {
	return func(s *State) bool {
		for _, i := range s.shuffled(len(fns)) {
			local := s.clone()
			if fns[i](local) {
				*s = *local
				return true
			}
		}
		return false
	}
}

func (c *compiler) compileSwitch(cases []ir.SwitchCase) (func(*State) bool, error) {
	fns := make([]func(*State) bool, len(cases))
	seen := make(map[rune]bool, len(cases))
	for i, cs := range cases {
		if seen[cs.Char] {
			return nil, fmt.Errorf("duplicate switch dispatch character %q", cs.Char)
		}
		seen[cs.Char] = true
		arm, err := c.compile(*cs.Node)
		if err != nil {
			return nil, err
		}
		char := cs.Char
		fns[i] = func(s *State) bool {
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], char)
			s.Text += string(buf[:n])
			return arm(s)
		}
	}
	return orAttempt(fns), nil
}

// Generate runs the compiled artifact with source driving every random
// choice, returning the emitted text. false means the random walk could
// not reach a terminating branch on this attempt; callers retry.
func (a *Artifact) Generate(source Source) (string, bool) {
	s := newState(source)
	if !a.root(s) {
		return "", false
	}
	return s.Text, true
}
