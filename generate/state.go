// Package generate compiles a resolved ir.Node/table pair into a runnable
// artifact that emits random text conforming to the grammar, the
// randomized counterpart to package parser.
package generate

// Source is the RNG collaborator a caller supplies to Generate.
// math/rand's *rand.Rand already satisfies it, so callers need no
// adapter; the core stays ignorant of any concrete RNG implementation.
type Source interface {
	Intn(n int) int
}

// State is the mutable record threaded through a compiled artifact's
// closures during a single Generate call. Unlike parser.State it carries
// no tree/value/index stacks: Spawn, Depth, and Store are no-ops for
// generation. It is cloned before each Or/Switch alternative is tried, the
// same way parser.State is cloned before each Or alternative, so a branch
// that fails partway through (via a Precede gate or a False node) never
// leaves its partial text in the buffer.
type State struct {
	Text   string
	Source Source

	Precedences []int
	Precedence  int
}

func newState(source Source) *State {
	return &State{Source: source}
}

// clone returns an independent copy of s. Text is a Go string (immutable),
// so copying the struct is enough; only Precedences needs its own backing
// array.
func (s *State) clone() *State {
	out := &State{
		Text:       s.Text,
		Source:     s.Source,
		Precedence: s.Precedence,
	}
	out.Precedences = append([]int(nil), s.Precedences...)
	return out
}

// shuffled returns a permutation of [0,n) drawn uniformly without
// replacement via a Fisher-Yates shuffle driven by s.Source.
func (s *State) shuffled(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Source.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
