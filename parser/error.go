package parser

import (
	"fmt"

	"github.com/alttpo/smtlib/token"
)

// Error is a parse error: a token appeared where the grammar forbids it,
// or end-of-input appeared mid-production. It carries the offending token
// and a textual description of what was expected instead.
type Error struct {
	Tok      token.Token
	Expected string
}

func (e *Error) Error() string {
	if e.Tok.Kind == token.EOF {
		return fmt.Sprintf("%s: unexpected end of input, expected %s", e.Tok.Pos, e.Expected)
	}
	return fmt.Sprintf("%s: unexpected token %q, expected %s", e.Tok.Pos, e.Tok.String(), e.Expected)
}

func errorf(tok token.Token, expected string, args ...interface{}) *Error {
	return &Error{Tok: tok, Expected: fmt.Sprintf(expected, args...)}
}
