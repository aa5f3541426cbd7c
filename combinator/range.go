package combinator

import (
	"fmt"
	"unicode/utf8"

	"github.com/Magicolo/quint/ir"
)

// Range matches a single Unicode scalar value in [lo, hi] inclusive,
// consuming it. Built as a Switch with one case per codepoint, so it is
// only practical for modest ranges (digits, letter classes): there is no
// pack dependency offering codepoint-range validation, so the bound checks
// below stay on unicode/utf8 rather than a third-party parser
// or regex engine.
func Range(lo, hi rune) ir.Node {
	if lo > hi {
		panic(&ir.ConfigError{Cause: fmt.Errorf("range: lo %q > hi %q", lo, hi)})
	}
	if !utf8.ValidRune(lo) || !utf8.ValidRune(hi) {
		panic(&ir.ConfigError{Cause: fmt.Errorf("range: invalid rune bound [%q, %q]", lo, hi)})
	}

	var cases []ir.SwitchCase
	for c := lo; c <= hi; c++ {
		if !utf8.ValidRune(c) {
			continue
		}
		body := ir.True()
		cases = append(cases, ir.SwitchCase{Char: c, Node: &body})
	}
	return ir.Switch(cases)
}
