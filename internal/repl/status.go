package repl

import (
	"fmt"
	"strconv"

	"github.com/codingchica/patterns/internal/httpstatus"
)

// cmdStatus classifies one or more HTTP status codes
func (r *REPL) cmdStatus(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: status CODE...")
	}

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid status code %q: %w", arg, err)
		}
		code, ok := httpstatus.FromCode(n)
		if !ok {
			fmt.Fprintf(r.out, "  %d  unknown\n", n)
			continue
		}
		fmt.Fprintf(r.out, "  %d  %s (%s)\n", code.Int(), code, code.Class())
	}
	return nil
}
