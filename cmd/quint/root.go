package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quint",
	Short: "Parse and generate text against a small set of bundled grammars",
	Long: `quint provides two features over a grammar built from the
combinator/ir package:
- Parses a text stream against a bundled grammar and prints the result.
- Generates random text conforming to a bundled grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
