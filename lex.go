package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type lexer struct {
	src   io.RuneScanner
	buf   strings.Builder
	lower cases.Caser
	rune  int
	// prev is the last token scanned, or the zero Token before the first.
	prev Token
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:   src,
		lower: cases.Lower(language.Und),
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// emit records tok as the previous token and returns it.
func (l *lexer) emit(tok Token) Token {
	l.prev = tok
	return tok
}

// signAllowed reports whether a '-' at the current position is the sign of a
// number literal rather than subtraction: at the start of the input, after an
// operator, or after an open parenthesis.
func (l *lexer) signAllowed() bool {
	switch l.prev.kind {
	case InvalidToken, OperatorToken:
		return true
	case ParenToken:
		return l.prev.left
	default:
		return false
	}
}

// next scans the next token from the input. At the end of the input, the
// result is a zero Token with io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		pos := l.rune
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			v, err := l.scanNum(pos)
			if err != nil {
				return Token{}, err
			}
			return l.emit(numtok(v, pos)), nil
		case unicode.IsLetter(r):
			l.unreadRune()
			fn, err := l.scanIdent(pos)
			if err != nil {
				return Token{}, err
			}
			return l.emit(functok(fn, pos)), nil
		case r == '(':
			return l.emit(parentok(true, pos)), nil
		case r == ')':
			return l.emit(parentok(false, pos)), nil
		}
		op := binop(r)
		if op == nil {
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Token{}, l.error("", pos)
		}
		if r == '-' && l.signAllowed() {
			// The sign belongs to the literal that must follow immediately.
			l.buf.WriteRune(r)
			v, err := l.scanNum(pos)
			if err != nil {
				return Token{}, err
			}
			return l.emit(numtok(v, pos)), nil
		}
		return l.emit(optok(op, pos)), nil
	}
}

// scanNum scans a run of digits containing at most one decimal point onto the
// buffer and parses it. The buffer may already hold a sign.
func (l *lexer) scanNum(pos int) (float64, error) {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if '0' <= r && r <= '9' {
			dig = true
		} else if r != '.' || dot {
			// Anything else ends the literal. A second point starts the next one.
			l.unreadRune()
			break
		} else {
			dot = true
		}
		l.buf.WriteRune(r)
	}
	if !dig {
		return 0, l.error("number", pos)
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Overflowing literals become infinities; anything else is malformed.
		return 0, l.error("number", pos)
	}
	return v, nil
}

// scanIdent scans a run of letters and looks up the function it names.
func (l *lexer) scanIdent(pos int) (*Function, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				break
			}
			return nil, err
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	name := l.lower.String(l.buf.String())
	fn, ok := LookupFunction(name)
	if !ok {
		l.buf.Reset()
		l.buf.WriteString(name)
		return nil, l.error("function", pos)
	}
	return fn, nil
}

func (l *lexer) error(kind string, pos int) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  pos,
	}
}

// Tokenize scans an expression into tokens. The result is never empty when
// the error is nil.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: l.rune + 1}
	}
	return toks, nil
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

// LexError indicates text that does not form a valid token. It implements
// InputError and unwraps to ErrUnknownCharacter, ErrInvalidNumber, or
// ErrUnknownFunction according to Kind.
type LexError struct {
	// Text is the token the lexer was scanning when the error was detected.
	// For unknown functions, it is the lowercased name.
	Text string
	// Kind is the type of token the lexer was scanning: "number", "function",
	// or the empty string if no token kind could be decided.
	Kind string
	// Col is the position of the first rune of the token.
	Col int
}

func (err *LexError) Error() string {
	switch err.Kind {
	case "":
		return errpos(err.Col, "unknown character "+strconv.Quote(err.Text))
	case "function":
		return errpos(err.Col, "unknown function "+strconv.Quote(err.Text))
	default:
		return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
	}
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	switch err.Kind {
	case "":
		return ErrUnknownCharacter
	case "function":
		return ErrUnknownFunction
	default:
		return ErrInvalidNumber
	}
}
