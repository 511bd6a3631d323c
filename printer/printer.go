package printer

import (
	"io"
	"strings"

	"github.com/alttpo/smtlib/ast"
)

// Printer renders ast values as SMT-LIB v2 text.
type Printer interface {
	Term(w io.Writer, t ast.Term) error
	Sort(w io.Writer, s ast.Sort) error
	Identifier(w io.Writer, id ast.Identifier) error
	Command(w io.Writer, c ast.Command) error
	Script(w io.Writer, s ast.Script) error
	Response(w io.Writer, r ast.Response) error
	SExpr(w io.Writer, e ast.SExpr) error
}

// AsRecursive and AsStackSafe are the two Printer implementations, exposed
// as ready-to-use values since both are stateless.
var (
	AsRecursive Printer = Recursive{}
	AsStackSafe Printer = StackSafe{}
)

// ToString calls print with p and a strings.Builder and returns what was
// written. It panics if print returns an error, which cannot happen when
// writing into a strings.Builder.
func ToString(p Printer, print func(Printer, io.Writer) error) string {
	var b strings.Builder
	if err := print(p, &b); err != nil {
		panic(err)
	}
	return b.String()
}

// TermString renders t with the recursive printer.
func TermString(t ast.Term) string {
	var b strings.Builder
	_ = AsRecursive.Term(&b, t)
	return b.String()
}

// SortString renders s with the recursive printer.
func SortString(s ast.Sort) string {
	var b strings.Builder
	_ = AsRecursive.Sort(&b, s)
	return b.String()
}

// CommandString renders c with the recursive printer, including its
// trailing newline.
func CommandString(c ast.Command) string {
	var b strings.Builder
	_ = AsRecursive.Command(&b, c)
	return b.String()
}

// ScriptString renders s with the recursive printer.
func ScriptString(s ast.Script) string {
	var b strings.Builder
	_ = AsRecursive.Script(&b, s)
	return b.String()
}

// ResponseString renders r with the recursive printer.
func ResponseString(r ast.Response) string {
	var b strings.Builder
	_ = AsRecursive.Response(&b, r)
	return b.String()
}

// SExprString renders e with the recursive printer.
func SExprString(e ast.SExpr) string {
	var b strings.Builder
	_ = AsRecursive.SExpr(&b, e)
	return b.String()
}
