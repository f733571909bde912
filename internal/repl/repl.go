package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/codingchica/patterns/internal/factory"
	"github.com/codingchica/patterns/internal/types"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// REPL represents the interactive shell
type REPL struct {
	factory   *factory.AnimalFactory
	rl        *readline.Instance
	out       io.Writer
	logger    *zap.Logger
	sessionID string
	commands  map[string]CommandHandler

	// current is the animal the fly/strategy/show commands act on
	current *types.Animal
}

// CommandHandler handles a specific command
type CommandHandler func(args []string) error

// Config holds REPL configuration
type Config struct {
	// Factory builds animals; defaults to factory.Instance()
	Factory *factory.AnimalFactory
	// Logger receives debug logs of each command; defaults to a no-op logger
	Logger *zap.Logger
	// Out receives command output; defaults to os.Stdout
	Out io.Writer
}

// New creates a new REPL instance
func New(cfg *Config) (*REPL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	r := &REPL{
		factory:   cfg.Factory,
		out:       cfg.Out,
		logger:    cfg.Logger,
		sessionID: uuid.NewString(),
		commands:  make(map[string]CommandHandler),
	}
	if r.factory == nil {
		r.factory = factory.Instance()
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.logger = r.logger.With(zap.String("session_id", r.sessionID))

	// Register built-in commands
	r.registerCommands()

	return r, nil
}

// SessionID identifies this REPL session in logs
func (r *REPL) SessionID() string {
	return r.sessionID
}

// Current returns the animal the shell is working with, or nil
func (r *REPL) Current() *types.Animal {
	return r.current
}

// Run starts the REPL loop. It returns nil on exit, EOF or context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	cyan := color.New(color.FgCyan).SprintFunc()
	prompt := cyan("patterns> ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "", // In-memory only
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete:      r.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	r.rl = rl
	r.logger.Debug("repl session started")
	defer r.logger.Debug("repl session ended")

	r.printWelcome()

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				// Ctrl+C - just show prompt again
				continue
			} else if errors.Is(err, io.EOF) {
				// Ctrl+D - exit
				fmt.Fprintln(r.out, "\nGoodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := r.processInput(line); err != nil {
			if errors.Is(err, io.EOF) {
				// Exit command - graceful shutdown
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(r.out, "%s %v\n", red("Error:"), err)
		}
	}
}

// processInput processes a single line of input
func (r *REPL) processInput(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	handler, ok := r.commands[command]
	if !ok {
		r.logger.Debug("unknown command", zap.String("command", command))
		return fmt.Errorf("unknown command %q (type 'help' for available commands)", command)
	}

	r.logger.Debug("dispatching command", zap.String("command", command), zap.Int("args", len(args)))
	return handler(args)
}

// registerCommands registers all built-in commands
func (r *REPL) registerCommands() {
	r.commands["help"] = r.cmdHelp
	r.commands["?"] = r.cmdHelp
	r.commands["exit"] = r.cmdExit
	r.commands["quit"] = r.cmdExit
	r.commands["human"] = r.createCommand(factory.KindHuman)
	r.commands["squirrel"] = r.createCommand(factory.KindFlyingSquirrel)
	r.commands["fly"] = r.cmdFly
	r.commands["strategy"] = r.cmdStrategy
	r.commands["show"] = r.cmdShow
	r.commands["strategies"] = r.cmdStrategies
	r.commands["status"] = r.cmdStatus
}

func (r *REPL) completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem("human"),
		readline.PcItem("squirrel"),
		readline.PcItem("fly"),
		readline.PcItem("strategy",
			readline.PcItem("airplane"),
			readline.PcItem("flap_wings"),
			readline.PcItem("gliding"),
			readline.PcItem("unable_to_fly"),
			readline.PcItem("none"),
		),
		readline.PcItem("show"),
		readline.PcItem("strategies"),
		readline.PcItem("status"),
	)
}

// printWelcome prints the welcome message
func (r *REPL) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(r.out, "\n%s\n", cyan("Flying animals shell"))
	fmt.Fprintln(r.out, "Type 'help' for available commands, 'exit' to quit")
	fmt.Fprintln(r.out)
}

// cmdHelp shows help information
func (r *REPL) cmdHelp(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(r.out, "\n%s\n\n", cyan("Available Commands:"))

	commands := []struct {
		name string
		desc string
	}{
		{"human NAME adult|child DESCRIPTION", "Create a person"},
		{"squirrel NAME adult|juvenile DESCRIPTION", "Create a flying squirrel"},
		{"fly", "Show how the current animal flies"},
		{"strategy NAME|none", "Change the current animal's flying strategy"},
		{"show", "Show the current animal"},
		{"strategies", "List flying strategies"},
		{"status CODE", "Classify an HTTP status code"},
		{"help, ?", "Show this help message"},
		{"exit, quit", "Exit the REPL"},
	}
	for _, c := range commands {
		fmt.Fprintf(r.out, "  %s  %s\n", green(c.name), c.desc)
	}
	fmt.Fprintln(r.out)
	return nil
}

// cmdExit exits the REPL
func (r *REPL) cmdExit(args []string) error {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(r.out, "\n%s Goodbye!\n", green("✓"))
	if r.rl != nil {
		r.rl.Close()
	}
	return io.EOF // Signal to exit the loop
}
