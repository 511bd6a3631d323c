package printer

import (
	"io"

	"github.com/alttpo/smtlib/ast"
)

// Recursive prints by walking the ast tree with ordinary Go recursion.
type Recursive struct{}

func (Recursive) Term(w io.Writer, t ast.Term) error {
	s := &sink{w: w}
	s.term(t)
	return s.err
}

func (Recursive) Sort(w io.Writer, srt ast.Sort) error {
	s := &sink{w: w}
	s.sort(srt)
	return s.err
}

func (Recursive) Identifier(w io.Writer, id ast.Identifier) error {
	s := &sink{w: w}
	s.identifier(id)
	return s.err
}

func (Recursive) Command(w io.Writer, c ast.Command) error {
	s := &sink{w: w}
	s.command(c)
	s.writeString("\n")
	return s.err
}

func (Recursive) Script(w io.Writer, scr ast.Script) error {
	s := &sink{w: w}
	for _, c := range scr.Commands {
		s.command(c)
		s.writeString("\n")
	}
	return s.err
}

func (Recursive) Response(w io.Writer, r ast.Response) error {
	s := &sink{w: w}
	s.response(r)
	return s.err
}

func (Recursive) SExpr(w io.Writer, e ast.SExpr) error {
	s := &sink{w: w}
	s.sexpr(e)
	return s.err
}

func (s *sink) term(t ast.Term) {
	switch v := t.(type) {
	case ast.Numeral:
		s.numeral(v)
	case ast.Decimal:
		s.decimal(v)
	case ast.Hexadecimal:
		s.hexadecimal(v)
	case ast.Binary:
		s.binary(v)
	case ast.StringLit:
		s.writeStringLit(v.Value)
	case ast.QualifiedIdentifier:
		s.qualifiedIdentifier(v)
	case ast.FunctionApplication:
		s.writeString("(")
		s.qualifiedIdentifier(v.Fun)
		for _, a := range v.Args() {
			s.writeString(" ")
			s.term(a)
		}
		s.writeString(")")
	case ast.Let:
		s.writeString("(let (")
		for i, b := range v.Bindings() {
			if i > 0 {
				s.writeString(" ")
			}
			s.writeString("(")
			s.writeSymbolName(b.Symbol.Name)
			s.writeString(" ")
			s.term(b.Term)
			s.writeString(")")
		}
		s.writeString(") ")
		s.term(v.Body)
		s.writeString(")")
	case ast.ForAll:
		s.writeString("(forall (")
		for i, sv := range v.Vars() {
			if i > 0 {
				s.writeString(" ")
			}
			s.sortedVar(sv)
		}
		s.writeString(") ")
		s.term(v.Body)
		s.writeString(")")
	case ast.Exists:
		s.writeString("(exists (")
		for i, sv := range v.Vars() {
			if i > 0 {
				s.writeString(" ")
			}
			s.sortedVar(sv)
		}
		s.writeString(") ")
		s.term(v.Body)
		s.writeString(")")
	case ast.AnnotatedTerm:
		s.writeString("(! ")
		s.term(v.Inner)
		for _, a := range v.Attributes() {
			s.writeString(" ")
			s.attribute(a)
		}
		s.writeString(")")
	default:
		s.err = errUnknownTerm
	}
}

func (s *sink) sortedVar(sv ast.SortedVar) {
	s.writeString("(")
	s.writeSymbolName(sv.Symbol.Name)
	s.writeString(" ")
	s.sort(sv.Sort)
	s.writeString(")")
}

func (s *sink) numeral(n ast.Numeral) {
	s.writeString(n.Value.String())
}

func (s *sink) decimal(d ast.Decimal) {
	s.writeString(d.IntPart.String())
	s.writeString(".")
	s.writeString(d.Frac)
}

func (s *sink) hexadecimal(h ast.Hexadecimal) {
	s.writeString("#x")
	s.writeString(h.Digits())
}

func (s *sink) binary(b ast.Binary) {
	s.writeString("#b")
	for _, bit := range b.Bits {
		if bit {
			s.writeString("1")
		} else {
			s.writeString("0")
		}
	}
}

func (s *sink) identifier(id ast.Identifier) {
	switch v := id.(type) {
	case ast.SimpleIdentifier:
		s.writeSymbolName(v.Symbol.Name)
	case ast.IndexedIdentifier:
		s.writeString("(_ ")
		s.writeSymbolName(v.Symbol.Name)
		for _, n := range v.Indices() {
			s.writeString(" ")
			s.numeral(n)
		}
		s.writeString(")")
	default:
		s.err = errUnknownIdentifier
	}
}

func (s *sink) qualifiedIdentifier(q ast.QualifiedIdentifier) {
	if q.Sort == nil {
		s.identifier(q.Id)
		return
	}
	s.writeString("(as ")
	s.identifier(q.Id)
	s.writeString(" ")
	s.sort(*q.Sort)
	s.writeString(")")
}

func (s *sink) sort(srt ast.Sort) {
	if len(srt.Subs) == 0 {
		s.identifier(srt.Id)
		return
	}
	s.writeString("(")
	s.identifier(srt.Id)
	for _, sub := range srt.Subs {
		s.writeString(" ")
		s.sort(sub)
	}
	s.writeString(")")
}

func (s *sink) attribute(a ast.Attribute) {
	s.writeString(":")
	s.writeString(a.Keyword.Name)
	if a.Value != nil {
		s.writeString(" ")
		s.sexpr(a.Value)
	}
}

func (s *sink) sexpr(e ast.SExpr) {
	switch v := e.(type) {
	case ast.Numeral:
		s.numeral(v)
	case ast.Decimal:
		s.decimal(v)
	case ast.Hexadecimal:
		s.hexadecimal(v)
	case ast.Binary:
		s.binary(v)
	case ast.StringLit:
		s.writeStringLit(v.Value)
	case ast.SSymbol:
		s.writeSymbolName(v.Name)
	case ast.SKeyword:
		s.writeString(":")
		s.writeString(v.Name)
	case ast.SList:
		s.writeString("(")
		for i, item := range v.Items {
			if i > 0 {
				s.writeString(" ")
			}
			s.sexpr(item)
		}
		s.writeString(")")
	case ast.STerm:
		s.term(v.Term)
	case ast.SCommand:
		s.command(v.Command)
	default:
		s.err = errUnknownSExpr
	}
}

func (s *sink) smtOption(o ast.SMTOption) {
	switch v := o.(type) {
	case ast.PrintSuccess:
		s.writeString(":print-success ")
		s.writeBool(v.Value)
	case ast.ExpandDefinitions:
		s.writeString(":expand-definitions ")
		s.writeBool(v.Value)
	case ast.InteractiveMode:
		s.writeString(":interactive-mode ")
		s.writeBool(v.Value)
	case ast.ProduceProofs:
		s.writeString(":produce-proofs ")
		s.writeBool(v.Value)
	case ast.ProduceUnsatCores:
		s.writeString(":produce-unsat-cores ")
		s.writeBool(v.Value)
	case ast.ProduceModels:
		s.writeString(":produce-models ")
		s.writeBool(v.Value)
	case ast.ProduceAssignments:
		s.writeString(":produce-assignments ")
		s.writeBool(v.Value)
	case ast.RegularOutputChannel:
		s.writeString(":regular-output-channel ")
		s.writeStringLit(v.Value)
	case ast.DiagnosticOutputChannel:
		s.writeString(":diagnostic-output-channel ")
		s.writeStringLit(v.Value)
	case ast.RandomSeed:
		s.writeString(":random-seed ")
		s.writeInt64(v.Value)
	case ast.Verbosity:
		s.writeString(":verbosity ")
		s.writeInt64(v.Value)
	case ast.AttributeOption:
		s.attribute(v.Attr)
	default:
		s.err = errUnknownOption
	}
}

func (s *sink) infoFlag(f ast.InfoFlag) {
	switch v := f.(type) {
	case ast.ErrorBehaviorFlag:
		s.writeString(":error-behavior")
	case ast.NameFlag:
		s.writeString(":name")
	case ast.AuthorsFlag:
		s.writeString(":authors")
	case ast.VersionFlag:
		s.writeString(":version")
	case ast.StatusFlag:
		s.writeString(":status")
	case ast.ReasonUnknownFlag:
		s.writeString(":reason-unknown")
	case ast.AllStatisticsFlag:
		s.writeString(":all-statistics")
	case ast.KeywordFlag:
		s.writeString(":")
		s.writeString(v.Name.Name)
	default:
		s.err = errUnknownInfoFlag
	}
}

func (s *sink) writeBool(b bool) {
	if b {
		s.writeString("true")
	} else {
		s.writeString("false")
	}
}

func (s *sink) writeInt64(n int64) {
	s.writeString(ast.NumeralFromInt64(n).Value.String())
}

func (s *sink) command(c ast.Command) {
	switch v := c.(type) {
	case ast.SetLogic:
		s.writeString("(set-logic ")
		s.writeSymbolName(v.Logic.Name)
		s.writeString(")")
	case ast.SetOption:
		s.writeString("(set-option ")
		s.smtOption(v.Option)
		s.writeString(")")
	case ast.SetInfo:
		s.writeString("(set-info ")
		s.attribute(v.Info)
		s.writeString(")")
	case ast.DeclareSort:
		s.writeString("(declare-sort ")
		s.writeSymbolName(v.Name.Name)
		s.writeString(" ")
		s.numeral(v.Arity)
		s.writeString(")")
	case ast.DefineSort:
		s.writeString("(define-sort ")
		s.writeSymbolName(v.Name.Name)
		s.writeString(" (")
		for i, p := range v.Params {
			if i > 0 {
				s.writeString(" ")
			}
			s.writeSymbolName(p.Name)
		}
		s.writeString(") ")
		s.sort(v.Sort)
		s.writeString(")")
	case ast.DeclareFun:
		s.writeString("(declare-fun ")
		s.writeSymbolName(v.Name.Name)
		s.writeString(" (")
		for i, p := range v.Params {
			if i > 0 {
				s.writeString(" ")
			}
			s.sort(p)
		}
		s.writeString(") ")
		s.sort(v.Result)
		s.writeString(")")
	case ast.DefineFun:
		s.writeString("(define-fun ")
		s.writeSymbolName(v.Name.Name)
		s.writeString(" (")
		for i, p := range v.Params {
			if i > 0 {
				s.writeString(" ")
			}
			s.sortedVar(p)
		}
		s.writeString(") ")
		s.sort(v.Result)
		s.writeString(" ")
		s.term(v.Body)
		s.writeString(")")
	case ast.Push:
		s.writeString("(push ")
		s.numeral(v.Levels)
		s.writeString(")")
	case ast.Pop:
		s.writeString("(pop ")
		s.numeral(v.Levels)
		s.writeString(")")
	case ast.Assert:
		s.writeString("(assert ")
		s.term(v.Term)
		s.writeString(")")
	case ast.CheckSat:
		s.writeString("(check-sat)")
	case ast.GetAssertions:
		s.writeString("(get-assertions)")
	case ast.GetProof:
		s.writeString("(get-proof)")
	case ast.GetUnsatCore:
		s.writeString("(get-unsat-core)")
	case ast.GetValue:
		s.writeString("(get-value (")
		for i, t := range v.Terms() {
			if i > 0 {
				s.writeString(" ")
			}
			s.term(t)
		}
		s.writeString("))")
	case ast.GetAssignment:
		s.writeString("(get-assignment)")
	case ast.GetOption:
		s.writeString("(get-option :")
		s.writeString(v.Option.Name)
		s.writeString(")")
	case ast.GetInfo:
		s.writeString("(get-info ")
		s.infoFlag(v.Flag)
		s.writeString(")")
	case ast.Exit:
		s.writeString("(exit)")
	case ast.GetModel:
		s.writeString("(get-model)")
	case ast.DeclareDatatypes:
		s.writeString("(declare-datatypes () (")
		for i, d := range v.Decls() {
			if i > 0 {
				s.writeString(" ")
			}
			s.datatypeDecl(d)
		}
		s.writeString("))")
	case ast.NonStandardCommand:
		s.sexpr(v.Payload)
	default:
		s.err = errUnknownCommand
	}
}

func (s *sink) datatypeDecl(d ast.DatatypeDecl) {
	s.writeString("(")
	s.writeSymbolName(d.Name.Name)
	for _, c := range d.Constructors() {
		s.writeString(" ")
		s.constructor(c)
	}
	s.writeString(")")
}

func (s *sink) constructor(c ast.Constructor) {
	s.writeString("(")
	s.writeSymbolName(c.Name.Name)
	for _, f := range c.Fields {
		s.writeString(" (")
		s.writeSymbolName(f.Name.Name)
		s.writeString(" ")
		s.sort(f.Sort)
		s.writeString(")")
	}
	s.writeString(")")
}

func (s *sink) response(r ast.Response) {
	switch v := r.(type) {
	case ast.Success:
		s.writeString("success")
	case ast.Unsupported:
		s.writeString("unsupported")
	case ast.Error:
		s.writeString("(error ")
		s.writeStringLit(v.Message)
		s.writeString(")")
	case ast.CheckSatResponse:
		s.writeString(v.Status.String())
	case ast.GetAssertionsResponse:
		s.writeString("(")
		for i, t := range v.Terms {
			if i > 0 {
				s.writeString(" ")
			}
			s.term(t)
		}
		s.writeString(")")
	case ast.GetAssignmentResponse:
		s.writeString("(")
		for i, p := range v.Pairs {
			if i > 0 {
				s.writeString(" ")
			}
			s.writeString("(")
			s.writeSymbolName(p.Symbol.Name)
			s.writeString(" ")
			s.writeBool(p.Value)
			s.writeString(")")
		}
		s.writeString(")")
	case ast.GetValueResponse:
		s.writeString("(")
		for i, p := range v.Pairs {
			if i > 0 {
				s.writeString(" ")
			}
			s.writeString("(")
			s.term(p.Term)
			s.writeString(" ")
			s.term(p.Value)
			s.writeString(")")
		}
		s.writeString(")")
	case ast.GetProofResponse:
		s.sexpr(v.Proof)
	case ast.GetUnsatCoreResponse:
		s.writeString("(")
		for i, n := range v.Names {
			if i > 0 {
				s.writeString(" ")
			}
			s.writeSymbolName(n.Name)
		}
		s.writeString(")")
	case ast.GetOptionResponse:
		s.sexpr(v.Value)
	case ast.GetInfoResponse:
		s.writeString("(")
		for i, e := range v.Responses() {
			if i > 0 {
				s.writeString(" ")
			}
			s.infoResponse(e)
		}
		s.writeString(")")
	case ast.GetModelResponse:
		s.writeString("(model")
		for _, it := range v.Items {
			s.writeString("\n")
			s.sexpr(it)
		}
		s.writeString(")")
	default:
		s.err = errUnknownResponse
	}
}

func (s *sink) infoResponse(r ast.InfoResponse) {
	switch v := r.(type) {
	case ast.ErrorBehaviorResponse:
		s.writeString(":error-behavior ")
		if v.ContinuedExecution {
			s.writeString("continued-execution")
		} else {
			s.writeString("immediate-exit")
		}
	case ast.NameResponse:
		s.writeString(":name ")
		s.writeStringLit(v.Value)
	case ast.AuthorsResponse:
		s.writeString(":authors ")
		s.writeStringLit(v.Value)
	case ast.VersionResponse:
		s.writeString(":version ")
		s.writeStringLit(v.Value)
	case ast.StatusResponse:
		s.writeString(":status ")
		s.writeStringLit(v.Value)
	case ast.ReasonUnknownResponse:
		s.writeString(":reason-unknown ")
		s.sexpr(v.Value)
	case ast.AllStatisticsResponse:
		s.writeString(":all-statistics (")
		for i, a := range v.Stats {
			if i > 0 {
				s.writeString(" ")
			}
			s.attribute(a)
		}
		s.writeString(")")
	case ast.AttributeInfoResponse:
		s.attribute(v.Attr)
	default:
		s.err = errUnknownInfoResponse
	}
}
