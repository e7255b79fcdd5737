package calculator

import (
	"errors"
	"strings"
	"testing"
)

// lexed is a token summary that is easy to write in test tables.
type lexed struct {
	kind TokenKind
	text string
	pos  int
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexed
	}{
		// numbers
		{"0", []lexed{{NumberToken, "0", 1}}},
		{"9876543210", []lexed{{NumberToken, "9.87654321e+09", 1}}},
		{"1000000", []lexed{{NumberToken, "1e+06", 1}}},
		{"1 0", []lexed{{NumberToken, "1", 1}, {NumberToken, "0", 3}}},
		{"1.5", []lexed{{NumberToken, "1.5", 1}}},
		{".5", []lexed{{NumberToken, "0.5", 1}}},
		{"5.", []lexed{{NumberToken, "5", 1}}},
		{"1.2.3", []lexed{{NumberToken, "1.2", 1}, {NumberToken, "0.3", 4}}},
		// signs
		{"-1", []lexed{{NumberToken, "-1", 1}}},
		{"-1.5", []lexed{{NumberToken, "-1.5", 1}}},
		{"2-1", []lexed{{NumberToken, "2", 1}, {OperatorToken, "-", 2}, {NumberToken, "1", 3}}},
		{"2 - 1", []lexed{{NumberToken, "2", 1}, {OperatorToken, "-", 3}, {NumberToken, "1", 5}}},
		{"3*-2", []lexed{{NumberToken, "3", 1}, {OperatorToken, "*", 2}, {NumberToken, "-2", 3}}},
		{"2--3", []lexed{{NumberToken, "2", 1}, {OperatorToken, "-", 2}, {NumberToken, "-3", 3}}},
		{"(-2)", []lexed{{ParenToken, "(", 1}, {NumberToken, "-2", 2}, {ParenToken, ")", 4}}},
		{"(2)-1", []lexed{{ParenToken, "(", 1}, {NumberToken, "2", 2}, {ParenToken, ")", 3}, {OperatorToken, "-", 4}, {NumberToken, "1", 5}}},
		// operators
		{"1+2*3/4^5", []lexed{
			{NumberToken, "1", 1}, {OperatorToken, "+", 2}, {NumberToken, "2", 3},
			{OperatorToken, "*", 4}, {NumberToken, "3", 5}, {OperatorToken, "/", 6},
			{NumberToken, "4", 7}, {OperatorToken, "^", 8}, {NumberToken, "5", 9},
		}},
		{"++", []lexed{{OperatorToken, "+", 1}, {OperatorToken, "+", 2}}},
		// functions
		{"sqrt(4)", []lexed{{FunctionToken, "sqrt", 1}, {ParenToken, "(", 5}, {NumberToken, "4", 6}, {ParenToken, ")", 7}}},
		{"SQRT 4", []lexed{{FunctionToken, "sqrt", 1}, {NumberToken, "4", 6}}},
		{"Sqrt4", []lexed{{FunctionToken, "sqrt", 1}, {NumberToken, "4", 5}}},
		// brackets and spaces
		{"()", []lexed{{ParenToken, "(", 1}, {ParenToken, ")", 2}}},
		{" \t(\n) ", []lexed{{ParenToken, "(", 3}, {ParenToken, ")", 5}}},
	}

	for _, c := range cases {
		toks, err := TokenizeString(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.tokens) {
			t.Errorf("scanning %q: want %d tokens, got %d: %v", c.src, len(c.tokens), len(toks), toks)
			continue
		}
		for i, want := range c.tokens {
			got := lexed{toks[i].Kind(), toks[i].String(), toks[i].Pos()}
			if got != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got)
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind error
		pos  int
		text string
	}{
		{"", ErrEmptyExpression, 1, ""},
		{" \t \r\n ", ErrEmptyExpression, 7, ""},
		{"$", ErrUnknownCharacter, 1, "$"},
		{"2#3", ErrUnknownCharacter, 2, "#"},
		{"1,2", ErrUnknownCharacter, 2, ","},
		{"[1]", ErrUnknownCharacter, 1, "["},
		{"foo(2)", ErrUnknownFunction, 1, "foo"},
		{"2 + Pi", ErrUnknownFunction, 5, "pi"},
		{"π", ErrUnknownFunction, 1, "π"},
		{".", ErrInvalidNumber, 1, "."},
		{"1+.", ErrInvalidNumber, 3, "."},
		{"-", ErrInvalidNumber, 1, "-"},
		{"- 5", ErrInvalidNumber, 1, "-"},
		{"-(2)", ErrInvalidNumber, 1, "-"},
		{"-sqrt(4)", ErrInvalidNumber, 1, "-"},
		{"2*-.", ErrInvalidNumber, 3, "-."},
	}
	for _, c := range cases {
		toks, err := TokenizeString(c.src)
		if err == nil {
			t.Errorf("scanning %q: expected error, got tokens %v", c.src, toks)
			continue
		}
		if !errors.Is(err, c.kind) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.kind, err)
		}
		var ie InputError
		if !errors.As(err, &ie) {
			t.Errorf("scanning %q: %#v is not an InputError", c.src, err)
		} else if ie.Pos() != c.pos {
			t.Errorf("scanning %q: want error at %d, got %d", c.src, c.pos, ie.Pos())
		}
		var le *LexError
		if errors.As(err, &le) && le.Text != c.text {
			t.Errorf("scanning %q: want error text %q, got %q", c.src, c.text, le.Text)
		}
	}
}

func TestLexValue(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"9876543210", 9876543210},
		{"-0.25", -0.25},
		{"(", 0},
		{"sqrt", 0},
	}
	for _, c := range cases {
		toks, err := TokenizeString(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if v := toks[0].Value(); v != c.want {
			t.Errorf("scanning %q: want value %v, got %v", c.src, c.want, v)
		}
	}
}

func TestLexOverflow(t *testing.T) {
	toks, err := TokenizeString("1" + strings.Repeat("0", 400))
	if err != nil {
		t.Fatal(err)
	}
	if s := toks[0].String(); s != "+Inf" {
		t.Errorf("want +Inf, got %s", s)
	}
}
