// Package lexer implements the hand-written streaming tokenizer for the
// SMT-LIB v2 lexical grammar: quoted and simple symbols, keywords,
// numerals, decimals, binary and hexadecimal literals, strings with
// escapes, comments, parentheses, and the reserved-word table.
//
// The tokenizer is grounded on the same character-classification style as
// the teacher's S-expression parser (predicate functions plus a single
// "read the maximal run" loop per literal kind), extended with source
// position tracking and the fuller SMT-LIB alphabet.
package lexer

import (
	"bytes"
	"io"
	"math/big"
	"strings"

	"github.com/alttpo/smtlib/token"
)

// Lexer tokenizes an io.RuneScanner. It buffers at most one character of
// pushback, matching the reader contract the SMT-LIB grammar needs.
type Lexer struct {
	r io.RuneScanner

	line, col         int
	prevLine, prevCol int
	havePrev          bool
}

// New wraps r in a Lexer. r need only support one level of UnreadRune, the
// same contract bufio.Reader and strings.Reader already provide.
func New(r io.RuneScanner) *Lexer {
	return &Lexer{r: r}
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

func (l *Lexer) readRune() (rune, error) {
	r, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	l.prevLine, l.prevCol = l.line, l.col
	l.havePrev = true
	if r == '\n' || r == '\r' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return r, nil
}

func (l *Lexer) unreadRune() {
	// The lexer never unreads without having just read, and the grammar
	// never needs more than one level of pushback.
	_ = l.r.UnreadRune()
	if l.havePrev {
		l.line, l.col = l.prevLine, l.prevCol
		l.havePrev = false
	}
}

// NextToken returns the next token, or a Kind == token.EOF sentinel token
// when the reader is exhausted at a token boundary (not an error).
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		startPos := l.pos()
		r, err := l.readRune()
		if err == io.EOF {
			return token.Token{Kind: token.EOF, Pos: startPos}, nil
		}
		if err != nil {
			return token.Token{}, err
		}

		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r == ';':
			l.skipComment()
			continue
		case r == '(':
			return token.Token{Kind: token.OParen, Pos: startPos}, nil
		case r == ')':
			return token.Token{Kind: token.CParen, Pos: startPos}, nil
		case r == ':':
			return l.lexKeyword(startPos)
		case r == '"':
			return l.lexString(startPos)
		case r == '#':
			return l.lexRadixLiteral(startPos)
		case token.IsDigit(r):
			l.unreadRune()
			return l.lexNumberLiteral(startPos)
		case r == '|':
			return l.lexQuotedSymbol(startPos)
		case token.IsSimpleSymbolChar(r):
			l.unreadRune()
			return l.lexSimpleSymbol(startPos)
		default:
			return token.Token{}, unexpectedChar(startPos, r, "not a valid start of any token")
		}
	}
}

func (l *Lexer) skipComment() {
	for {
		r, err := l.readRune()
		if err != nil || r == '\n' {
			return
		}
	}
}

func (l *Lexer) lexKeyword(startPos token.Position) (token.Token, error) {
	body, stop, atEOF, err := l.readSymbolBody()
	if err != nil {
		return token.Token{}, err
	}
	if body == "" {
		if atEOF {
			return token.Token{}, unexpectedEOF(l.pos(), "keyword name")
		}
		return token.Token{}, unexpectedChar(l.pos(), stop, "keyword name must contain at least one simple-symbol character")
	}
	return token.Token{Kind: token.Keyword, Pos: startPos, Text: body}, nil
}

// readSymbolBody reads the maximal run of simple-symbol characters,
// honoring '\' as an escape that keeps the following character verbatim
// and is itself dropped. Used for both keywords (whose body may start with
// a digit) and unquoted symbols.
//
// atEOF reports whether the run ended because the reader was exhausted,
// as opposed to stopping at a character that isn't a simple-symbol
// character (returned as stop, and left unread). Callers with an empty
// body need this to pick the right ErrorKind.
func (l *Lexer) readSymbolBody() (body string, stop rune, atEOF bool, err error) {
	var sb strings.Builder
	for {
		r, rerr := l.readRune()
		if rerr == io.EOF {
			return sb.String(), 0, true, nil
		}
		if rerr != nil {
			return "", 0, false, rerr
		}
		if r == '\\' {
			next, rerr := l.readRune()
			if rerr == io.EOF {
				return "", 0, false, unexpectedEOF(l.pos(), "character after '\\' escape")
			}
			if rerr != nil {
				return "", 0, false, rerr
			}
			sb.WriteRune(next)
			continue
		}
		if !token.IsSimpleSymbolChar(r) {
			l.unreadRune()
			return sb.String(), r, false, nil
		}
		sb.WriteRune(r)
	}
}

func (l *Lexer) lexSimpleSymbol(startPos token.Position) (token.Token, error) {
	body, _, _, err := l.readSymbolBody()
	if err != nil {
		return token.Token{}, err
	}
	if kind, ok := token.LookupReserved(body); ok {
		return token.Token{Kind: kind, Pos: startPos, Text: body}, nil
	}
	return token.Token{Kind: token.SymbolLit, Pos: startPos, Text: body}, nil
}

func (l *Lexer) lexQuotedSymbol(startPos token.Position) (token.Token, error) {
	var sb strings.Builder
	for {
		r, err := l.readRune()
		if err == io.EOF {
			return token.Token{}, unexpectedEOF(l.pos(), "closing '|' of quoted symbol")
		}
		if err != nil {
			return token.Token{}, err
		}
		if r == '\\' {
			next, err := l.readRune()
			if err == io.EOF {
				return token.Token{}, unexpectedEOF(l.pos(), "character after '\\' escape")
			}
			if err != nil {
				return token.Token{}, err
			}
			sb.WriteRune(next)
			continue
		}
		if r == '|' {
			return token.Token{Kind: token.SymbolLit, Pos: startPos, Text: sb.String()}, nil
		}
		sb.WriteRune(r)
	}
}

func (l *Lexer) lexString(startPos token.Position) (token.Token, error) {
	var sb strings.Builder
	for {
		r, err := l.readRune()
		if err == io.EOF {
			return token.Token{}, unexpectedEOF(l.pos(), "closing '\"' of string literal")
		}
		if err != nil {
			return token.Token{}, err
		}
		if r == '\\' {
			next, err := l.readRune()
			if err == io.EOF {
				return token.Token{}, unexpectedEOF(l.pos(), "character after '\\' in string literal")
			}
			if err != nil {
				return token.Token{}, err
			}
			switch next {
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				// Not a recognized escape: keep the backslash literal and
				// reconsider next on its own.
				sb.WriteRune('\\')
				sb.WriteRune(next)
			}
			continue
		}
		if r == '"' {
			return token.Token{Kind: token.StringLit, Pos: startPos, Str: sb.String()}, nil
		}
		sb.WriteRune(r)
	}
}

func (l *Lexer) lexRadixLiteral(startPos token.Position) (token.Token, error) {
	r, err := l.readRune()
	if err == io.EOF {
		return token.Token{}, unexpectedEOF(l.pos(), "'b' or 'x' after '#'")
	}
	if err != nil {
		return token.Token{}, err
	}
	switch r {
	case 'b':
		return l.lexBinary(startPos)
	case 'x':
		return l.lexHexadecimal(startPos)
	default:
		return token.Token{}, unexpectedChar(l.pos(), r, "'#' must be followed by 'b' or 'x'")
	}
}

func (l *Lexer) lexBinary(startPos token.Position) (token.Token, error) {
	var bits []bool
	var stop rune
	atEOF := false
	for {
		r, err := l.readRune()
		if err == io.EOF {
			atEOF = true
			break
		}
		if err != nil {
			return token.Token{}, err
		}
		if r != '0' && r != '1' {
			l.unreadRune()
			stop = r
			break
		}
		bits = append(bits, r == '1')
	}
	if len(bits) == 0 {
		if atEOF {
			return token.Token{}, unexpectedEOF(l.pos(), "at least one binary digit after '#b'")
		}
		return token.Token{}, unexpectedChar(l.pos(), stop, "at least one binary digit after '#b'")
	}
	return token.Token{Kind: token.BinaryLit, Pos: startPos, Bits: bits}, nil
}

func (l *Lexer) lexHexadecimal(startPos token.Position) (token.Token, error) {
	var sb bytes.Buffer
	var stop rune
	atEOF := false
	for {
		r, err := l.readRune()
		if err == io.EOF {
			atEOF = true
			break
		}
		if err != nil {
			return token.Token{}, err
		}
		if !token.IsHexDigit(r) {
			l.unreadRune()
			stop = r
			break
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		if atEOF {
			return token.Token{}, unexpectedEOF(l.pos(), "at least one hex digit after '#x'")
		}
		return token.Token{}, unexpectedChar(l.pos(), stop, "at least one hex digit after '#x'")
	}
	return token.Token{Kind: token.HexadecimalLit, Pos: startPos, Hex: strings.ToUpper(sb.String())}, nil
}

func (l *Lexer) lexNumberLiteral(startPos token.Position) (token.Token, error) {
	var intPart bytes.Buffer
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return token.Token{}, err
		}
		if !token.IsDigit(r) {
			l.unreadRune()
			break
		}
		intPart.WriteRune(r)
	}

	numeral := new(big.Int)
	numeral.SetString(intPart.String(), 10)

	r, err := l.readRune()
	if err == io.EOF {
		return token.Token{Kind: token.NumeralLit, Pos: startPos, Numeral: numeral}, nil
	}
	if err != nil {
		return token.Token{}, err
	}
	if r != '.' {
		l.unreadRune()
		return token.Token{Kind: token.NumeralLit, Pos: startPos, Numeral: numeral}, nil
	}

	var frac bytes.Buffer
	var fracStop rune
	fracAtEOF := false
	for {
		r, err := l.readRune()
		if err == io.EOF {
			fracAtEOF = true
			break
		}
		if err != nil {
			return token.Token{}, err
		}
		if !token.IsDigit(r) {
			l.unreadRune()
			fracStop = r
			break
		}
		frac.WriteRune(r)
	}
	if frac.Len() == 0 {
		if fracAtEOF {
			return token.Token{}, unexpectedEOF(l.pos(), "at least one fractional digit after '.'")
		}
		return token.Token{}, unexpectedChar(l.pos(), fracStop, "at least one fractional digit after '.'")
	}
	return token.Token{Kind: token.DecimalLit, Pos: startPos, Numeral: numeral, Frac: frac.String()}, nil
}
