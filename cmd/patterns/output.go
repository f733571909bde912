package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/codingchica/patterns/internal/config"
	"github.com/codingchica/patterns/internal/types"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// render writes v as JSON or YAML, or calls text for the text format
func (a *app) render(w io.Writer, v interface{}, text func(w io.Writer)) error {
	switch a.cfg.OutputFormat {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

func printAnimal(w io.Writer, commonName string, a *types.Animal) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	flying := gray("none")
	message := gray(a.FlyingMessage())
	if s, ok := a.FlyingStrategy(); ok {
		flying = string(s.Name())
		message = green(a.FlyingMessage())
	}

	fmt.Fprintf(w, "\n%s (%s)\n", cyan(a.Name()), commonName)
	fmt.Fprintf(w, "  Description: %s\n", a.Description())
	fmt.Fprintf(w, "  Strategy:    %s\n", flying)
	fmt.Fprintf(w, "  Flying:      %s\n", message)
	fmt.Fprintln(w, "  Classification:")
	printClassification(w, a.Classification(), "    ")
	fmt.Fprintln(w)
}

// printClassification lists the ranks that are present, in taxonomic order
func printClassification(w io.Writer, c types.ScientificClassification, indent string) {
	ranks := []struct {
		label string
		value string
	}{
		{"Kingdom", c.Kingdom()},
		{"Phylum", c.Phylum()},
		{"Class", c.Class()},
		{"Order", c.Order()},
		{"Suborder", c.SubOrder()},
		{"Infraorder", c.InfraOrder()},
		{"Family", c.Family()},
		{"Subfamily", c.SubFamily()},
		{"Tribe", c.Tribe()},
		{"Genus", c.Genus()},
		{"Species", c.Species()},
	}
	for _, r := range ranks {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(w, "%s%-11s %s\n", indent, r.label+":", r.value)
	}
}
