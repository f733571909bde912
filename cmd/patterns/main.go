package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/codingchica/patterns/internal/config"
	"github.com/codingchica/patterns/internal/factory"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every command: resolved config, logger and
// the raw values of the persistent flags
type app struct {
	cfg    config.CLIConfig
	logger *zap.Logger

	configPath string
	format     string
	noColor    bool
	verbose    bool
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Strategy and factory pattern demo with flying animals",
		Long: `patterns builds animals from a factory and asks them to fly.

Each animal carries an interchangeable flying strategy (airplane, flap_wings,
gliding or unable_to_fly). Adult humans fly by airplane, adult flying squirrels
glide, and anyone without a strategy is unable to fly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVarP(&a.format, "format", "o", "", "output format: text, json or yaml")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newCreateCmd(a, createSpec{use: "human", kind: factory.KindHuman}),
		newCreateCmd(a, createSpec{use: "squirrel", kind: factory.KindFlyingSquirrel}),
		newStrategiesCmd(a),
		newTaxonomyCmd(a),
		newStatusCmd(a),
		newReplCmd(a),
	)
	return rootCmd
}

// setup resolves config (file, then env, then flags) and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.OutputFormat = config.OutputFormat(a.format)
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.NoColor {
		color.NoColor = true
	}

	if a.logger == nil {
		level, _ := cfg.Level()
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if a.logger, err = zapConfig.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	a.logger.Debug("configuration loaded", zap.Stringer("config", cfg))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		stop()
		os.Exit(1)
	}
}
