package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strkit/strkit/strbuf"
)

func init() {
	rootCmd.AddCommand(newFmtCmd())
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <template> [arg]...",
		Short: "Render a quick-format template",
		Long: `The fmt command renders a quick-format template. Directives take one
argument each: %s and %S consume strings, %i/%I signed numbers, %u/%U
unsigned numbers, %c a single byte. %% emits a literal percent.

Example:
  strbufctl fmt "[%s/%i/%u]" hi -3 42
  strbufctl fmt "%s=%I" limit 9000000000 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	vals, err := convertFmtArgs(args[0], args[1:])
	if err != nil {
		return err
	}

	b := strbuf.New(1)
	if err := b.Quickf(args[0], vals...); err != nil {
		return fmt.Errorf("failed to format: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"result": b.String(),
			"length": b.Len(),
		})
	}
	fmt.Printf("%s\n", b.String())
	return nil
}

// convertFmtArgs types each CLI string according to the directive that
// will consume it.
func convertFmtArgs(template string, args []string) ([]interface{}, error) {
	vals := make([]interface{}, 0, len(args))
	next := 0
	take := func() (string, error) {
		if next >= len(args) {
			return "", fmt.Errorf("template needs more than %d argument(s)", len(args))
		}
		s := args[next]
		next++
		return s, nil
	}

	for i := 0; i < len(template); i++ {
		if template[i] != '%' || i+1 >= len(template) {
			continue
		}
		i++
		verb := template[i]
		if verb == '%' {
			continue
		}
		switch verb {
		case 's', 'S', 'i', 'I', 'u', 'U', 'c':
		default:
			// Unknown directives render literally and consume nothing.
			continue
		}
		arg, err := take()
		if err != nil {
			return nil, err
		}
		switch verb {
		case 's':
			vals = append(vals, arg)
		case 'S':
			vals = append(vals, strbuf.FromString(arg))
		case 'i':
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%%i argument %q: %w", arg, err)
			}
			vals = append(vals, n)
		case 'I':
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%%I argument %q: %w", arg, err)
			}
			vals = append(vals, n)
		case 'u':
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%%u argument %q: %w", arg, err)
			}
			vals = append(vals, uint(n))
		case 'U':
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%%U argument %q: %w", arg, err)
			}
			vals = append(vals, n)
		case 'c':
			if len(arg) != 1 {
				return nil, fmt.Errorf("%%c argument %q: want exactly one byte", arg)
			}
			vals = append(vals, arg[0])
		}
	}
	return vals, nil
}
