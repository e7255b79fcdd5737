package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
)

// NewExplainCommand creates the explain command.
func NewExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <expression>",
		Short: "Show how an expression is tokenized and parsed",
		Long: `Print the tokens of an expression, its postfix (reverse Polish) form,
and its result. Arguments are joined with spaces into one expression.`,
		Example: `  calc explain "2^3^2"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, strings.Join(args, " "))
		},
	}
}

func runExplain(cmd *cobra.Command, src string) error {
	cfg := config.GetConfig(cmd.Context())
	w := cmd.OutOrStdout()

	toks, err := calculator.TokenizeString(src)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Column", "Kind", "Token", "Detail"})
	for i, tok := range toks {
		t.AppendRow(table.Row{i + 1, tok.Pos(), tok.Kind(), tok.String(), tokenDetail(tok)})
	}
	t.Render()

	p, err := calculator.Parse(toks)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "postfix: %v\n", p)

	v, err := p.Eval()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "result:  "+cfg.Format+"\n", v)
	return nil
}

func tokenDetail(tok calculator.Token) string {
	switch tok.Kind() {
	case calculator.NumberToken:
		return "value " + strconv.FormatFloat(tok.Value(), 'f', -1, 64)
	case calculator.OperatorToken:
		op := tok.Operator()
		return fmt.Sprintf("%s, precedence %d, %v-associative", op.Name(), op.Prec(), op.Assoc())
	case calculator.FunctionToken:
		return fmt.Sprintf("arity %d", tok.Function().Arity())
	case calculator.ParenToken:
		if tok.IsLeft() {
			return "open"
		}
		return "close"
	default:
		return ""
	}
}
