// Command moparser is a small driver around the moparser library: it
// reads a source file, parses a single expression out of it, and prints
// either the canonical AST form or the first fatal syntax error.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hoshoyo/moparser"
)

var dumpTokens bool

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "moparser [file]",
		Short:        "Parse a C expression from a source file and print its AST",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the lexed token stream instead of parsing")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	path := "./test/test.h"
	if len(args) == 1 {
		path = args[0]
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if dumpTokens {
		dumpTokenStream(cmd, src)
		return nil
	}

	res := moparser.ParseExpression(src, moparser.WithFileName(path))
	if res.Status != moparser.StatusOK {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Error)
		return fmt.Errorf("parse failed")
	}

	out, err := moparser.Print(res.Node)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func dumpTokenStream(cmd *cobra.Command, src []byte) {
	stream := moparser.Lex(src)
	w := cmd.OutOrStdout()
	for i := 0; i < stream.Len(); i++ {
		t := stream.At(i)
		fmt.Fprintf(w, "%d:%d\t%s\t%q\n", t.Line, t.Col, t.Type.String(), string(t.Data))
	}
}
