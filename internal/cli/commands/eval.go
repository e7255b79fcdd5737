package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
)

// EvalOptions holds options for the eval command.
type EvalOptions struct {
	In    string
	Lines bool
	Echo  bool
}

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	opts := &EvalOptions{}
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions",
		Long: `Evaluate arithmetic expressions and print their results.

Each argument is a separate expression. With --in, or with no arguments,
expressions are read from a file or stdin: the whole input is one expression,
or each non-blank line is one with --lines. With no arguments and a terminal
on stdin, eval starts the interactive prompt instead.

An argument that starts with a negative number, like -5+3, is an expression,
and so is every argument after it; give flags before it.`,
		Example: `  calc eval "2+3*4" "(2+3)*4"
  calc eval --fmt %.1f -5/3
  calc eval --fmt %.2f "sqrt(2)"
  printf '1+1\n2^10\n' | calc eval -n`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.In, "in", "", "input file, - for stdin (default stdin if no args given)")
	cmd.Flags().String("fmt", "", "result formatting verb (default %g)")
	cmd.Flags().BoolVarP(&opts.Lines, "lines", "n", false, "parse separate input lines as separate expressions")
	cmd.Flags().BoolVar(&opts.Echo, "echo", false, "print the postfix form of each expression")
	return cmd
}

func runEval(cmd *cobra.Command, args []string, opts *EvalOptions) error {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	if opts.In == "" && len(args) == 0 && isTerminal(cmd.InOrStdin()) {
		return runREPL(cmd, cfg)
	}

	var exprs []string
	if opts.In != "" || len(args) == 0 {
		in, err := readInput(cmd.InOrStdin(), opts.In)
		if err != nil {
			return err
		}
		if opts.Lines {
			exprs = append(exprs, splitLines(in)...)
		} else {
			exprs = append(exprs, in)
		}
	}
	exprs = append(exprs, args...)

	failed := 0
	for _, src := range exprs {
		p, err := calculator.Compile(strings.NewReader(src))
		var v float64
		if err == nil {
			v, err = p.Eval()
		}
		if err != nil {
			failed++
			logger.Debug("evaluation failed", "expression", src, "error", err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", strings.TrimSpace(src), err)
			continue
		}
		if opts.Echo {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%v : ", p)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), cfg.Format+"\n", v)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// readInput reads all of a named file, or stdin if name is empty or "-".
func readInput(stdin io.Reader, name string) (string, error) {
	r := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}

// splitLines returns the non-blank lines of s.
func splitLines(s string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// isTerminal reports whether r is a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
