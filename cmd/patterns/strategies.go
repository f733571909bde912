package main

import (
	"fmt"
	"io"

	"github.com/codingchica/patterns/internal/strategy"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type strategyDocument struct {
	Name    strategy.Name `json:"name" yaml:"name"`
	Message string        `json:"message" yaml:"message"`
}

func newStrategiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available flying strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := strategy.All()
			docs := make([]strategyDocument, 0, len(all))
			for _, s := range all {
				docs = append(docs, strategyDocument{Name: s.Name(), Message: s.FlyingMessage()})
			}

			return a.render(cmd.OutOrStdout(), docs, func(w io.Writer) {
				green := color.New(color.FgGreen).SprintFunc()
				for _, d := range docs {
					fmt.Fprintf(w, "%s\t%s\n", green(string(d.Name)), d.Message)
				}
			})
		},
	}
}
