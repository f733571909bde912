package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/codingchica/patterns/internal/factory"
	"github.com/codingchica/patterns/internal/strategy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type createSpec struct {
	use  string
	kind factory.Kind
}

func newCreateCmd(a *app, spec createSpec) *cobra.Command {
	var (
		adult        bool
		strategyName string
	)

	cmd := &cobra.Command{
		Use:   spec.use + " NAME DESCRIPTION",
		Short: fmt.Sprintf("Create a %s and show how it flies", strings.ToLower(spec.kind.CommonName())),
		Long: fmt.Sprintf(`Create a %s from the animal factory.

Adults get the kind's default flying strategy; otherwise no strategy is set
and the animal is unable to fly. Use --strategy to swap in another strategy
after creation, or --strategy none to clear it.`, strings.ToLower(spec.kind.CommonName())),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override strategy.FlyingStrategy
			overrideSet := cmd.Flags().Changed("strategy")
			if overrideSet && !strings.EqualFold(strategyName, "none") {
				s, err := strategy.Parse(strategyName)
				if err != nil {
					return err
				}
				override = s
			}

			animal, err := factory.Instance().Create(spec.kind, args[0], args[1], adult)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", strings.ToLower(spec.kind.CommonName()), err)
			}
			if overrideSet {
				animal.SetFlyingStrategy(override)
			}

			a.logger.Debug("created animal",
				zap.String("kind", string(spec.kind)),
				zap.String("name", animal.Name()),
				zap.Bool("adult", adult),
				zap.Uint64("hash", animal.Hash()))

			return a.render(cmd.OutOrStdout(), animal, func(w io.Writer) {
				printAnimal(w, spec.kind.CommonName(), animal)
			})
		},
	}

	cmd.Flags().BoolVar(&adult, "adult", false, "create an adult (adults can fly)")
	cmd.Flags().StringVar(&strategyName, "strategy", "",
		"override the flying strategy: airplane, flap_wings, gliding, unable_to_fly or none")
	return cmd
}
