package main

import (
	"fmt"
	"io"

	"github.com/codingchica/patterns/internal/factory"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newTaxonomyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy KIND",
		Short: "Show the scientific classification the factory uses for a kind",
		Long: `Show the fixed scientific classification for an animal kind.

Kinds: human (person), flying_squirrel (squirrel).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := factory.ParseKind(args[0])
			if err != nil {
				return err
			}
			c, ok := factory.Instance().Classification(kind)
			if !ok {
				return fmt.Errorf("no classification for %s", kind)
			}

			return a.render(cmd.OutOrStdout(), c, func(w io.Writer) {
				cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
				fmt.Fprintf(w, "%s\n", cyan(kind.CommonName()))
				printClassification(w, c, "  ")
			})
		},
	}
}
