// Package ast defines the SMT-LIB v2 abstract syntax tree: literals,
// identifiers, sorts, terms, attributes, S-expressions, commands, and
// solver responses.
//
// Every family here (Term, Command, SExpr, SMTOption, InfoFlag,
// InfoResponse, Response) is a closed sum type: a small interface with an
// unexported marker method, satisfied by exactly the struct types declared
// in this package. There is no way to extend a family from outside the
// package, and every switch over one is expected to be exhaustive.
//
// Grammar positions that SMT-LIB requires to be non-empty (function
// application arguments, let/forall/exists bindings, datatype
// constructors, get-value's term list, get-info's response list) are
// represented as a mandatory head plus an optional tail slice, so
// constructing a value with zero elements in one of those positions is not
// possible through the exported API:
//
//	FunctionApplication{ ArgHead Term, ArgRest []Term }
//	Let{ BindHead VarBinding, BindRest []VarBinding, Body Term }
//	DeclareDatatypes{ DeclHead DatatypeDecl, DeclRest []DatatypeDecl }
//
// Every AST value is immutable once constructed and owned by exactly one
// parent; there is no sharing and no cycles. Equality is structural
// (reflect.DeepEqual over the exported fields is sufficient and is what
// the test suite uses); Position information tracked by the lexer and
// parser never appears in these types, so it never participates in
// equality.
package ast
