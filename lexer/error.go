package lexer

import (
	"fmt"

	"github.com/alttpo/smtlib/token"
)

// ErrorKind distinguishes the two lexical failure modes described by the
// grammar: running out of input mid-token, or seeing a character that no
// rule accepts at that point.
type ErrorKind int

const (
	UnexpectedEOF ErrorKind = iota
	UnexpectedChar
)

// Error is a lexical error. It carries the position of the offending
// input and, for UnexpectedChar, the character that triggered it.
type Error struct {
	Kind ErrorKind
	Pos  token.Position
	Ch   rune // valid only when Kind == UnexpectedChar
	Msg  string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEOF:
		return fmt.Sprintf("%s: unexpected end of input: %s", e.Pos, e.Msg)
	default:
		return fmt.Sprintf("%s: unexpected character %q: %s", e.Pos, e.Ch, e.Msg)
	}
}

func unexpectedEOF(pos token.Position, msg string) *Error {
	return &Error{Kind: UnexpectedEOF, Pos: pos, Msg: msg}
}

func unexpectedChar(pos token.Position, ch rune, msg string) *Error {
	return &Error{Kind: UnexpectedChar, Pos: pos, Ch: ch, Msg: msg}
}
