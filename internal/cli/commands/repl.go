package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long: `Start an interactive prompt that evaluates one expression per line.

Type .help for the list of operators and functions, .quit or .exit to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, config.GetConfig(cmd.Context()))
		},
	}
	cmd.Flags().String("prompt", "", "prompt string (default \"calc> \")")
	cmd.Flags().String("history-file", "", "file to keep input history in")
	return cmd
}

func runREPL(cmd *cobra.Command, cfg *config.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.REPL.Prompt,
		HistoryFile:     cfg.REPL.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	return replLoop(rl, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
}

// lineReader is the part of *readline.Instance the loop uses.
type lineReader interface {
	Readline() (string, error)
}

func replLoop(rl lineReader, stdout, stderr io.Writer, cfg *config.Config) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ".") {
			if quit := handleREPLCommand(stdout, stderr, line); quit {
				return nil
			}
			continue
		}

		v, err := calculator.EvalString(line)
		if err != nil {
			printREPLError(stderr, cfg.REPL.Prompt, err)
			continue
		}
		_, _ = fmt.Fprintf(stdout, cfg.Format+"\n", v)
	}
}

// handleREPLCommand runs a dot-command and reports whether the REPL should
// exit.
func handleREPLCommand(stdout, stderr io.Writer, line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])
	switch command {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(stdout)
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

// printREPLError prints err, with a caret under the offending column when
// the error has one.
func printREPLError(w io.Writer, prompt string, err error) {
	var ierr calculator.InputError
	if errors.As(err, &ierr) && ierr.Pos() > 0 {
		_, _ = fmt.Fprintf(w, "%s^\n", strings.Repeat(" ", len([]rune(prompt))+ierr.Pos()-1))
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}

func printREPLHelp(w io.Writer) {
	var b strings.Builder
	b.WriteString("\nCommands:\n")
	b.WriteString("  .help          Show this help message\n")
	b.WriteString("  .quit / .exit  Exit the REPL\n")
	b.WriteString("\nOperators:\n")
	for _, op := range calculator.Operators() {
		fmt.Fprintf(&b, "  %c  %-15s precedence %d, %v-associative\n", op.Symbol(), op.Name(), op.Prec(), op.Assoc())
	}
	b.WriteString("\nFunctions:\n")
	for _, fn := range calculator.Functions() {
		fmt.Fprintf(&b, "  %s  %d argument(s)\n", fn.Name(), fn.Arity())
	}
	_, _ = fmt.Fprintln(w, b.String())
}

func newREPLCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	for _, fn := range calculator.Functions() {
		items = append(items, readline.PcItem(fn.Name()+"("))
	}
	return readline.NewPrefixCompleter(items...)
}
