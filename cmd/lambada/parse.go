package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var parseFlags = struct {
	bindings *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <file path>",
		Short:   "Parse a program and print its bindings without evaluating",
		Example: `  lambada parse add.lam -b main`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.bindings = cmd.Flags().StringP("bindings", "b", "", "comma-separated binding names to print (default all)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	bindings, err := readBindings(args[0])
	if err != nil {
		return err
	}

	wanted := map[string]bool{}
	if *parseFlags.bindings != "" {
		for _, name := range strings.Split(*parseFlags.bindings, ",") {
			wanted[strings.TrimSpace(name)] = true
		}
	}

	for _, b := range bindings {
		if len(wanted) > 0 && !wanted[b.Name] {
			continue
		}
		fmt.Fprintf(os.Stdout, "%v = %v\n", b.Name, b.Term)
	}
	return nil
}
