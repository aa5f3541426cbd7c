// Package parser compiles a resolved ir.Node/table pair into a runnable
// recursive-descent artifact, and runs it over input text to produce a
// slice of ir.Tree results.
package parser

import "github.com/Magicolo/quint/ir"

// treeMark tags an accumulated Tree with the depth it was pushed at, so
// Spawn can collect exactly the ones pushed strictly below the depth in
// force when it runs.
type treeMark struct {
	tree  ir.Tree
	depth int
}

// valueMark tags an accumulated captured value the same way.
type valueMark struct {
	value string
	depth int
}

// State is the mutable record threaded through a compiled artifact's
// closures during a single Parse call. It is cloned wholesale before each
// Or alternative is tried, so a failed branch never leaks its partial
// effects into the next one.
type State struct {
	Index  int
	Text   string
	Trees  []treeMark
	Values []valueMark

	// Indices is the mark stack for Store: each Push records the byte
	// offset the capture started at.
	Indices []int

	// Precedences is the mark stack for Precede: each Push records the
	// precedence in force before the frame, so Pop can restore it.
	Precedences []int
	Precedence  int

	Depth int
}

func newState(text string) *State {
	return &State{Text: text}
}

// clone returns an independent copy of s: every slice is copied so that
// mutating the copy (or the original) never aliases the other's backing
// array.
func (s *State) clone() *State {
	out := &State{
		Index:      s.Index,
		Text:       s.Text,
		Precedence: s.Precedence,
		Depth:      s.Depth,
	}
	out.Trees = append([]treeMark(nil), s.Trees...)
	out.Values = append([]valueMark(nil), s.Values...)
	out.Indices = append([]int(nil), s.Indices...)
	out.Precedences = append([]int(nil), s.Precedences...)
	return out
}

// spawn collects every value/tree accumulated strictly below the current
// depth (they sit at the tail of each slice, since Depth/Spawn nest like a
// stack) and pushes a new Tree tagged with the depth in force now.
func (s *State) spawn(kind string) {
	ti := len(s.Trees)
	for ti > 0 && s.Trees[ti-1].depth > s.Depth {
		ti--
	}
	children := make([]ir.Tree, len(s.Trees)-ti)
	for i, m := range s.Trees[ti:] {
		children[i] = m.tree
	}
	s.Trees = s.Trees[:ti]

	vi := len(s.Values)
	for vi > 0 && s.Values[vi-1].depth > s.Depth {
		vi--
	}
	values := make([]string, len(s.Values)-vi)
	for i, m := range s.Values[vi:] {
		values[i] = m.value
	}
	s.Values = s.Values[:vi]

	s.Trees = append(s.Trees, treeMark{
		tree:  ir.Tree{Kind: kind, Values: values, Children: children},
		depth: s.Depth,
	})
}
