package ast

// Term is the closed algebra of SMT-LIB terms. Every case here is a
// distinct Go type; there is no other way to construct a value that
// satisfies Term than through one of them.
type Term interface {
	isTerm()
}

// VarBinding is one (symbol, term) pair inside a "let".
type VarBinding struct {
	Symbol SSymbol
	Term   Term
}

// SortedVar is one (symbol, sort) pair inside a "forall"/"exists".
type SortedVar struct {
	Symbol SSymbol
	Sort   Sort
}

// FunctionApplication is "(fun arg1 ... argn)" with n >= 1. A zero-argument
// application is not representable: NewFunctionApplication takes its first
// argument as a required parameter, and the printer never has to consider
// that case. A term with no arguments is instead a bare QualifiedIdentifier.
type FunctionApplication struct {
	Fun     QualifiedIdentifier
	ArgHead Term
	ArgRest []Term
}

// NewFunctionApplication builds a function application. arg0 plus args
// must together be non-empty; SMT-LIB's grammar forbids the alternative.
func NewFunctionApplication(fun QualifiedIdentifier, arg0 Term, args ...Term) FunctionApplication {
	return FunctionApplication{Fun: fun, ArgHead: arg0, ArgRest: args}
}

// Args returns the full ordered argument sequence.
func (f FunctionApplication) Args() []Term {
	all := make([]Term, 0, 1+len(f.ArgRest))
	all = append(all, f.ArgHead)
	all = append(all, f.ArgRest...)
	return all
}

func (FunctionApplication) isTerm() {}

// Let is "(let (binding0 binding...) body)" with at least one binding.
type Let struct {
	BindHead VarBinding
	BindRest []VarBinding
	Body     Term
}

func NewLet(bind0 VarBinding, body Term, binds ...VarBinding) Let {
	return Let{BindHead: bind0, BindRest: binds, Body: body}
}

func (l Let) Bindings() []VarBinding {
	all := make([]VarBinding, 0, 1+len(l.BindRest))
	all = append(all, l.BindHead)
	all = append(all, l.BindRest...)
	return all
}

func (Let) isTerm() {}

// ForAll is "(forall (var0 var...) body)" with at least one bound variable.
type ForAll struct {
	VarHead SortedVar
	VarRest []SortedVar
	Body    Term
}

func NewForAll(var0 SortedVar, body Term, vars ...SortedVar) ForAll {
	return ForAll{VarHead: var0, VarRest: vars, Body: body}
}

func (f ForAll) Vars() []SortedVar {
	all := make([]SortedVar, 0, 1+len(f.VarRest))
	all = append(all, f.VarHead)
	all = append(all, f.VarRest...)
	return all
}

func (ForAll) isTerm() {}

// Exists is "(exists (var0 var...) body)" with at least one bound variable.
type Exists struct {
	VarHead SortedVar
	VarRest []SortedVar
	Body    Term
}

func NewExists(var0 SortedVar, body Term, vars ...SortedVar) Exists {
	return Exists{VarHead: var0, VarRest: vars, Body: body}
}

func (e Exists) Vars() []SortedVar {
	all := make([]SortedVar, 0, 1+len(e.VarRest))
	all = append(all, e.VarHead)
	all = append(all, e.VarRest...)
	return all
}

func (Exists) isTerm() {}

// AnnotatedTerm is "(! term attr0 attr...)" with at least one attribute.
type AnnotatedTerm struct {
	Inner    Term
	AttrHead Attribute
	AttrRest []Attribute
}

func NewAnnotatedTerm(inner Term, attr0 Attribute, attrs ...Attribute) AnnotatedTerm {
	return AnnotatedTerm{Inner: inner, AttrHead: attr0, AttrRest: attrs}
}

func (a AnnotatedTerm) Attributes() []Attribute {
	all := make([]Attribute, 0, 1+len(a.AttrRest))
	all = append(all, a.AttrHead)
	all = append(all, a.AttrRest...)
	return all
}

func (AnnotatedTerm) isTerm() {}
