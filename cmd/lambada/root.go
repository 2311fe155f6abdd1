package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lambada",
	Short: "Evaluate untyped lambda calculus programs",
	Long: `lambada is an interpreter for a minimal untyped lambda calculus with
top-level named bindings. A source file is a sequence of lines of the form
'name = term'; the binding named 'main' is the entry point. When 'main'
carries an 'int', 'num', or 'bool' annotation, its normal form is decoded
as a Church numeral or a Church boolean.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
