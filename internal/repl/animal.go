package repl

import (
	"fmt"
	"strings"

	"github.com/codingchica/patterns/internal/factory"
	"github.com/codingchica/patterns/internal/strategy"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// createCommand returns a handler for "<kind> NAME AGE DESCRIPTION..."
func (r *REPL) createCommand(kind factory.Kind) CommandHandler {
	return func(args []string) error {
		if len(args) < 3 {
			return fmt.Errorf("usage: %s NAME adult|child DESCRIPTION", commandFor(kind))
		}

		isAdult, err := parseAge(args[1])
		if err != nil {
			return err
		}

		animal, err := r.factory.Create(kind, args[0], strings.Join(args[2:], " "), isAdult)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", kind.CommonName(), err)
		}
		r.current = animal
		r.logger.Debug("created animal",
			zap.String("kind", string(kind)),
			zap.String("name", animal.Name()),
			zap.Bool("adult", isAdult))

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(r.out, "%s Created %s %q\n", green("✓"), kind.CommonName(), animal.Name())
		return nil
	}
}

func commandFor(kind factory.Kind) string {
	if kind == factory.KindFlyingSquirrel {
		return "squirrel"
	}
	return string(kind)
}

func parseAge(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "adult", "grown":
		return true, nil
	case "child", "juvenile", "young":
		return false, nil
	}
	return false, fmt.Errorf("age must be 'adult' or 'child' (got %q)", s)
}

// cmdFly prints the current animal's flying message
func (r *REPL) cmdFly(args []string) error {
	if r.current == nil {
		return fmt.Errorf("no animal yet; create one with 'human' or 'squirrel'")
	}
	fmt.Fprintf(r.out, "%s: %s\n", r.current.Name(), r.current.FlyingMessage())
	return nil
}

// cmdStrategy swaps the current animal's flying strategy
func (r *REPL) cmdStrategy(args []string) error {
	if r.current == nil {
		return fmt.Errorf("no animal yet; create one with 'human' or 'squirrel'")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: strategy NAME|none")
	}

	name := strings.Join(args, " ")
	if strings.EqualFold(name, "none") {
		r.current.SetFlyingStrategy(nil)
		fmt.Fprintf(r.out, "Cleared flying strategy for %s\n", r.current.Name())
		return nil
	}

	s, err := strategy.Parse(name)
	if err != nil {
		return err
	}
	r.current.SetFlyingStrategy(s)
	r.logger.Debug("changed flying strategy", zap.String("strategy", string(s.Name())))
	fmt.Fprintf(r.out, "%s now uses %s\n", r.current.Name(), s.Name())
	return nil
}

// cmdShow describes the current animal
func (r *REPL) cmdShow(args []string) error {
	if r.current == nil {
		return fmt.Errorf("no animal yet; create one with 'human' or 'squirrel'")
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	a := r.current
	c := a.Classification()

	flying := gray("none")
	if s, ok := a.FlyingStrategy(); ok {
		flying = string(s.Name())
	}

	fmt.Fprintf(r.out, "\n%s\n", cyan(a.Name()))
	fmt.Fprintf(r.out, "  Description: %s\n", a.Description())
	fmt.Fprintf(r.out, "  Strategy:    %s\n", flying)
	fmt.Fprintf(r.out, "  Flying:      %s\n", a.FlyingMessage())
	fmt.Fprintf(r.out, "  Species:     %s (%s, %s)\n", c.Species(), c.Family(), c.Order())
	fmt.Fprintln(r.out)
	return nil
}

// cmdStrategies lists every flying strategy
func (r *REPL) cmdStrategies(args []string) error {
	green := color.New(color.FgGreen).SprintFunc()
	for _, s := range strategy.All() {
		fmt.Fprintf(r.out, "  %-14s %s\n", green(string(s.Name())), s.FlyingMessage())
	}
	return nil
}
