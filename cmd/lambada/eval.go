package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lambada-lang/lambada/interp"
	"github.com/lambada-lang/lambada/syntax"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "eval <file path>",
		Short:   "Evaluate a program and print the value of main",
		Example: `  lambada eval add.lam`,
		Args:    cobra.ExactArgs(1),
		RunE:    runEval,
	}
	rootCmd.AddCommand(cmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	bindings, err := readBindings(args[0])
	if err != nil {
		return err
	}
	out, err := interp.EvalProgram(bindings)
	if err != nil {
		var recErr *interp.RecursionError
		if errors.As(err, &recErr) {
			return fmt.Errorf("ERROR: Recursion detected in function `%v`.", recErr.Name)
		}
		return err
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}

func readBindings(path string) ([]*syntax.Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the source file %s: %w", path, err)
	}
	defer f.Close()
	return syntax.ParseFile(f, path)
}
