package main

import (
	"fmt"
	"os"

	"github.com/Magicolo/quint/generate"
	"github.com/Magicolo/quint/ir"
	"github.com/Magicolo/quint/lang/arith"
	"github.com/Magicolo/quint/lang/json"
	"github.com/Magicolo/quint/parser"
	"github.com/Magicolo/quint/resolve"
)

var grammars = map[string]func() ir.Node{
	"json":  json.Grammar,
	"arith": arith.Grammar,
}

// compileGrammar resolves and compiles the named bundled grammar. When
// debugIR is set, it prints the raw (pre-resolve) and canonical
// (post-resolve) node counts to stderr, both tagged with the same
// NewDebugTag suffix so a run can be cross-referenced against others in the
// same log.
func compileGrammar(name string, debugIR bool) (*parser.Artifact, *generate.Artifact, error) {
	build, ok := grammars[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown grammar %q: want one of json, arith", name)
	}
	raw := build()
	var tag string
	if debugIR {
		tag = ir.NewDebugTag()
		fmt.Fprintf(os.Stderr, "ir[%s] %s: %d raw nodes\n", name, tag, ir.Count(raw))
	}
	root, table := resolve.Resolve(raw)
	if debugIR {
		tableCount := 0
		for _, n := range table {
			tableCount += ir.Count(n)
		}
		fmt.Fprintf(os.Stderr, "ir[%s] %s: %d canonical nodes (root) + %d across %d table slots\n",
			name, tag, ir.Count(root), tableCount, len(table))
	}
	p, err := parser.Compile(root, table)
	if err != nil {
		return nil, nil, fmt.Errorf("compile %s parser: %w", name, err)
	}
	g, err := generate.Compile(root, table)
	if err != nil {
		return nil, nil, fmt.Errorf("compile %s generator: %w", name, err)
	}
	return p, g, nil
}
