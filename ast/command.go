package ast

// Command is the closed algebra of SMT-LIB top-level commands.
type Command interface {
	isCommand()
}

// SetLogic is "(set-logic name)".
type SetLogic struct {
	Logic SSymbol
}

func (SetLogic) isCommand() {}

// SetOption is "(set-option option)".
type SetOption struct {
	Option SMTOption
}

func (SetOption) isCommand() {}

// SetInfo is "(set-info attr)".
type SetInfo struct {
	Info Attribute
}

func (SetInfo) isCommand() {}

// DeclareSort is "(declare-sort name arity)".
type DeclareSort struct {
	Name  SSymbol
	Arity Numeral
}

func (DeclareSort) isCommand() {}

// DefineSort is "(define-sort name (param*) sort)".
type DefineSort struct {
	Name   SSymbol
	Params []SSymbol
	Sort   Sort
}

func (DefineSort) isCommand() {}

// DeclareFun is "(declare-fun name (sort*) result)".
type DeclareFun struct {
	Name   SSymbol
	Params []Sort
	Result Sort
}

func (DeclareFun) isCommand() {}

// DefineFun is "(define-fun name ((var sort)*) result body)".
type DefineFun struct {
	Name   SSymbol
	Params []SortedVar
	Result Sort
	Body   Term
}

func (DefineFun) isCommand() {}

// Push is "(push n)".
type Push struct {
	Levels Numeral
}

func (Push) isCommand() {}

// Pop is "(pop n)".
type Pop struct {
	Levels Numeral
}

func (Pop) isCommand() {}

// Assert is "(assert term)".
type Assert struct {
	Term Term
}

func (Assert) isCommand() {}

// CheckSat is "(check-sat)".
type CheckSat struct{}

func (CheckSat) isCommand() {}

// GetAssertions is "(get-assertions)".
type GetAssertions struct{}

func (GetAssertions) isCommand() {}

// GetProof is "(get-proof)".
type GetProof struct{}

func (GetProof) isCommand() {}

// GetUnsatCore is "(get-unsat-core)".
type GetUnsatCore struct{}

func (GetUnsatCore) isCommand() {}

// GetValue is "(get-value (term term*))"; the argument list is non-empty
// by construction.
type GetValue struct {
	TermHead Term
	TermRest []Term
}

func NewGetValue(term0 Term, terms ...Term) GetValue {
	return GetValue{TermHead: term0, TermRest: terms}
}

func (g GetValue) Terms() []Term {
	all := make([]Term, 0, 1+len(g.TermRest))
	all = append(all, g.TermHead)
	all = append(all, g.TermRest...)
	return all
}

func (GetValue) isCommand() {}

// GetAssignment is "(get-assignment)".
type GetAssignment struct{}

func (GetAssignment) isCommand() {}

// GetOption is "(get-option :name)".
type GetOption struct {
	Option SKeyword
}

func (GetOption) isCommand() {}

// GetInfo is "(get-info flag)".
type GetInfo struct {
	Flag InfoFlag
}

func (GetInfo) isCommand() {}

// Exit is "(exit)".
type Exit struct{}

func (Exit) isCommand() {}

// GetModel is "(get-model)".
type GetModel struct{}

func (GetModel) isCommand() {}

// Field is one (name sort) pair inside a datatype constructor.
type Field struct {
	Name SSymbol
	Sort Sort
}

// Constructor is one datatype constructor, "(name field*)"; a
// zero-field constructor prints as "(name)".
type Constructor struct {
	Name   SSymbol
	Fields []Field
}

// DatatypeDecl is one "(name ctor+)" entry in a declare-datatypes command.
// CtorRest may be empty; CtorHead makes the "at least one constructor"
// grammar requirement unforgeable.
type DatatypeDecl struct {
	Name     SSymbol
	CtorHead Constructor
	CtorRest []Constructor
}

func NewDatatypeDecl(name SSymbol, ctor0 Constructor, ctors ...Constructor) DatatypeDecl {
	return DatatypeDecl{Name: name, CtorHead: ctor0, CtorRest: ctors}
}

func (d DatatypeDecl) Constructors() []Constructor {
	all := make([]Constructor, 0, 1+len(d.CtorRest))
	all = append(all, d.CtorHead)
	all = append(all, d.CtorRest...)
	return all
}

// DeclareDatatypes is "(declare-datatypes () (decl+))". At least one
// datatype declaration is required by the grammar.
type DeclareDatatypes struct {
	DeclHead DatatypeDecl
	DeclRest []DatatypeDecl
}

func NewDeclareDatatypes(decl0 DatatypeDecl, decls ...DatatypeDecl) DeclareDatatypes {
	return DeclareDatatypes{DeclHead: decl0, DeclRest: decls}
}

func (d DeclareDatatypes) Decls() []DatatypeDecl {
	all := make([]DatatypeDecl, 0, 1+len(d.DeclRest))
	all = append(all, d.DeclHead)
	all = append(all, d.DeclRest...)
	return all
}

func (DeclareDatatypes) isCommand() {}

// NonStandardCommand carries a solver-extension command verbatim as an
// S-expression; it prints its payload with no wrapping of its own.
type NonStandardCommand struct {
	Payload SExpr
}

func (NonStandardCommand) isCommand() {}
