package main

import (
	"fmt"

	"github.com/codingchica/patterns/internal/repl"
	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start interactive REPL shell",
		Long: `Start an interactive shell for building animals and swapping their
flying strategies at runtime.

Type 'help' in the REPL for available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repl.New(&repl.Config{
				Logger: a.logger,
				Out:    cmd.OutOrStdout(),
			})
			if err != nil {
				return fmt.Errorf("failed to create REPL: %w", err)
			}
			return r.Run(cmd.Context())
		},
	}
}
