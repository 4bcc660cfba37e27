package main

import (
	"github.com/spf13/cobra"

	"github.com/nao1215/csvrepl/repl"
)

// newRootCmd returns the csvrepl command. Each argument is a file loaded as
// table "t", or as "t1".."tN" when more than one is given.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csvrepl [FILE]...",
		Short: "Query CSV files with SQL from an interactive prompt",
		Long: `csvrepl loads each FILE into an in-memory SQLite table and reads SQL
from an interactive prompt. One file is loaded as table t; several files
are loaded as t1, t2, ... in argument order. Column names come from the
header row, lower-cased, with parenthesized text removed and spaces
replaced by underscores.

Press Tab to complete keywords and column names, Ctrl-C to discard the
current line and Ctrl-D to quit.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := repl.DefaultConfig()
			cfg.Output = cmd.OutOrStdout()
			return repl.Run(cmd.Context(), args, cfg)
		},
	}
}
