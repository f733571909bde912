package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/codingchica/patterns/internal/httpstatus"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type statusDocument struct {
	Code  int              `json:"code" yaml:"code"`
	Known bool             `json:"known" yaml:"known"`
	Text  string           `json:"text,omitempty" yaml:"text,omitempty"`
	Class httpstatus.Class `json:"class,omitempty" yaml:"class,omitempty"`
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status CODE...",
		Short: "Classify HTTP status codes",
		Long: `Look up HTTP status codes and report which class each falls in.

Known codes: 100, 200, 301, 404, 500. Other codes are reported as unknown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([]statusDocument, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid status code %q: %w", arg, err)
				}
				doc := statusDocument{Code: n}
				if code, ok := httpstatus.FromCode(n); ok {
					doc.Known = true
					doc.Text = code.String()
					doc.Class = code.Class()
				}
				docs = append(docs, doc)
			}

			return a.render(cmd.OutOrStdout(), docs, func(w io.Writer) {
				gray := color.New(color.FgHiBlack).SprintFunc()
				for _, d := range docs {
					if !d.Known {
						fmt.Fprintf(w, "%d\t%s\n", d.Code, gray("unknown"))
						continue
					}
					fmt.Fprintf(w, "%d\t%s\t%s\n", d.Code, d.Text, statusColor(d.Class)(string(d.Class)))
				}
			})
		},
	}
}

func statusColor(class httpstatus.Class) func(a ...interface{}) string {
	switch class {
	case httpstatus.ClassSuccessful:
		return color.New(color.FgGreen).SprintFunc()
	case httpstatus.ClassRedirection, httpstatus.ClassInformational:
		return color.New(color.FgCyan).SprintFunc()
	case httpstatus.ClassClientError:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}
