package printer

import (
	"io"

	"github.com/alttpo/smtlib/ast"
)

// StackSafe prints via an explicit work stack instead of native recursion.
// Each unit of work is either "emit a literal string" or "visit an AST
// node"; visiting a node performs no recursion itself — it only returns the
// child units that must run next, in left-to-right order, and those units
// are expanded later by the run loop, not by the current call. That
// deferral is what keeps the Go call stack flat no matter how deeply the
// input term is nested, e.g. a long right-associated chain of "let" terms.
type StackSafe struct{}

// task is one unit of work: it performs any immediate writes and returns
// the child units that must run next, in left-to-right order. A child that
// can nest without bound (a term, sort, S-expression, command, ...) is
// wrapped in the matching visit* helper instead of being expanded by a
// direct call, so its expansion happens on a later pop from the work stack.
type task func(s *sink) []task

func lit(str string) task {
	return func(s *sink) []task {
		s.writeString(str)
		return nil
	}
}

func run(s *sink, root task) {
	stack := []task{root}
	for len(stack) > 0 {
		if s.err != nil {
			return
		}
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		children := cur(s)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

func (StackSafe) Term(w io.Writer, t ast.Term) error {
	s := &sink{w: w}
	run(s, visitTerm(t))
	return s.err
}

func (StackSafe) Sort(w io.Writer, srt ast.Sort) error {
	s := &sink{w: w}
	run(s, visitSort(srt))
	return s.err
}

func (StackSafe) Identifier(w io.Writer, id ast.Identifier) error {
	s := &sink{w: w}
	run(s, visitIdentifier(id))
	return s.err
}

func (StackSafe) Command(w io.Writer, c ast.Command) error {
	s := &sink{w: w}
	run(s, func(s *sink) []task { return []task{visitCommand(c), lit("\n")} })
	return s.err
}

func (StackSafe) Script(w io.Writer, scr ast.Script) error {
	s := &sink{w: w}
	run(s, func(s *sink) []task {
		var ts []task
		for _, c := range scr.Commands {
			ts = append(ts, visitCommand(c), lit("\n"))
		}
		return ts
	})
	return s.err
}

func (StackSafe) Response(w io.Writer, r ast.Response) error {
	s := &sink{w: w}
	run(s, visitResponse(r))
	return s.err
}

func (StackSafe) SExpr(w io.Writer, e ast.SExpr) error {
	s := &sink{w: w}
	run(s, visitSExpr(e))
	return s.err
}

// visit* wraps a node so its expansion is deferred to a later pop from the
// work stack, instead of happening inline in the caller that built it.

func visitTerm(t ast.Term) task              { return func(s *sink) []task { return termTasks(t) } }
func visitSort(srt ast.Sort) task            { return func(s *sink) []task { return sortTasks(srt) } }
func visitIdentifier(id ast.Identifier) task { return func(s *sink) []task { return identifierTasks(id) } }
func visitQualifiedIdentifier(q ast.QualifiedIdentifier) task {
	return func(s *sink) []task { return qualifiedIdentifierTasks(q) }
}
func visitSExpr(e ast.SExpr) task           { return func(s *sink) []task { return sexprTasks(e) } }
func visitAttribute(a ast.Attribute) task   { return func(s *sink) []task { return attributeTasks(a) } }
func visitSortedVar(sv ast.SortedVar) task  { return func(s *sink) []task { return sortedVarTasks(sv) } }
func visitCommand(c ast.Command) task       { return func(s *sink) []task { return commandTasks(c) } }
func visitSMTOption(o ast.SMTOption) task   { return func(s *sink) []task { return smtOptionTasks(o) } }
func visitInfoFlag(f ast.InfoFlag) task     { return func(s *sink) []task { return infoFlagTasks(f) } }
func visitResponse(r ast.Response) task     { return func(s *sink) []task { return responseTasks(r) } }
func visitInfoResponse(r ast.InfoResponse) task {
	return func(s *sink) []task { return infoResponseTasks(r) }
}
func visitDatatypeDecl(d ast.DatatypeDecl) task {
	return func(s *sink) []task { return datatypeDeclTasks(d) }
}
func visitConstructor(c ast.Constructor) task {
	return func(s *sink) []task { return constructorTasks(c) }
}

func symbolTask(name string) task {
	return func(s *sink) []task {
		s.writeSymbolName(name)
		return nil
	}
}

func stringLitTask(str string) task {
	return func(s *sink) []task {
		s.writeStringLit(str)
		return nil
	}
}

func boolTask(b bool) task {
	return func(s *sink) []task {
		s.writeBool(b)
		return nil
	}
}

func int64Task(n int64) task {
	return func(s *sink) []task {
		s.writeInt64(n)
		return nil
	}
}

func numeralTask(n ast.Numeral) task { return lit(n.Value.String()) }

func decimalTask(d ast.Decimal) task { return lit(d.IntPart.String() + "." + d.Frac) }

func hexadecimalTask(h ast.Hexadecimal) task { return lit("#x" + h.Digits()) }

func binaryTask(b ast.Binary) task {
	str := make([]byte, len(b.Bits))
	for i, bit := range b.Bits {
		if bit {
			str[i] = '1'
		} else {
			str[i] = '0'
		}
	}
	return lit("#b" + string(str))
}

// The xTasks functions below expand exactly one node's immediate shape.
// Every child that is itself a Term/Sort/Command/etc. must be wrapped with
// the matching visit* helper rather than expanded here, or the deferral
// that makes this printer stack-safe is lost. The option, info-flag and
// attribute shapes are the exception: their xTasks are spliced in inline,
// which adds one fixed level of Go calls, since any nested value inside
// them is still wrapped with visitSExpr.

func termTasks(t ast.Term) []task {
	switch v := t.(type) {
	case ast.Numeral:
		return []task{numeralTask(v)}
	case ast.Decimal:
		return []task{decimalTask(v)}
	case ast.Hexadecimal:
		return []task{hexadecimalTask(v)}
	case ast.Binary:
		return []task{binaryTask(v)}
	case ast.StringLit:
		return []task{stringLitTask(v.Value)}
	case ast.QualifiedIdentifier:
		return []task{visitQualifiedIdentifier(v)}
	case ast.FunctionApplication:
		ts := []task{lit("("), visitQualifiedIdentifier(v.Fun)}
		for _, a := range v.Args() {
			ts = append(ts, lit(" "), visitTerm(a))
		}
		ts = append(ts, lit(")"))
		return ts
	case ast.Let:
		ts := []task{lit("(let (")}
		for i, b := range v.Bindings() {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, lit("("), symbolTask(b.Symbol.Name), lit(" "), visitTerm(b.Term), lit(")"))
		}
		ts = append(ts, lit(") "), visitTerm(v.Body), lit(")"))
		return ts
	case ast.ForAll:
		ts := []task{lit("(forall (")}
		for i, sv := range v.Vars() {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitSortedVar(sv))
		}
		ts = append(ts, lit(") "), visitTerm(v.Body), lit(")"))
		return ts
	case ast.Exists:
		ts := []task{lit("(exists (")}
		for i, sv := range v.Vars() {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitSortedVar(sv))
		}
		ts = append(ts, lit(") "), visitTerm(v.Body), lit(")"))
		return ts
	case ast.AnnotatedTerm:
		ts := []task{lit("(! "), visitTerm(v.Inner)}
		for _, a := range v.Attributes() {
			ts = append(ts, lit(" "), visitAttribute(a))
		}
		ts = append(ts, lit(")"))
		return ts
	default:
		return []task{func(s *sink) []task { s.err = errUnknownTerm; return nil }}
	}
}

func sortedVarTasks(sv ast.SortedVar) []task {
	return []task{lit("("), symbolTask(sv.Symbol.Name), lit(" "), visitSort(sv.Sort), lit(")")}
}

func identifierTasks(id ast.Identifier) []task {
	switch v := id.(type) {
	case ast.SimpleIdentifier:
		return []task{symbolTask(v.Symbol.Name)}
	case ast.IndexedIdentifier:
		ts := []task{lit("(_ "), symbolTask(v.Symbol.Name)}
		for _, n := range v.Indices() {
			ts = append(ts, lit(" "), numeralTask(n))
		}
		ts = append(ts, lit(")"))
		return ts
	default:
		return []task{func(s *sink) []task { s.err = errUnknownIdentifier; return nil }}
	}
}

func qualifiedIdentifierTasks(q ast.QualifiedIdentifier) []task {
	if q.Sort == nil {
		return []task{visitIdentifier(q.Id)}
	}
	return []task{lit("(as "), visitIdentifier(q.Id), lit(" "), visitSort(*q.Sort), lit(")")}
}

func sortTasks(srt ast.Sort) []task {
	if len(srt.Subs) == 0 {
		return []task{visitIdentifier(srt.Id)}
	}
	ts := []task{lit("("), visitIdentifier(srt.Id)}
	for _, sub := range srt.Subs {
		ts = append(ts, lit(" "), visitSort(sub))
	}
	ts = append(ts, lit(")"))
	return ts
}

func attributeTasks(a ast.Attribute) []task {
	ts := []task{lit(":" + a.Keyword.Name)}
	if a.Value != nil {
		ts = append(ts, lit(" "), visitSExpr(a.Value))
	}
	return ts
}

func sexprTasks(e ast.SExpr) []task {
	switch v := e.(type) {
	case ast.Numeral:
		return []task{numeralTask(v)}
	case ast.Decimal:
		return []task{decimalTask(v)}
	case ast.Hexadecimal:
		return []task{hexadecimalTask(v)}
	case ast.Binary:
		return []task{binaryTask(v)}
	case ast.StringLit:
		return []task{stringLitTask(v.Value)}
	case ast.SSymbol:
		return []task{symbolTask(v.Name)}
	case ast.SKeyword:
		return []task{lit(":" + v.Name)}
	case ast.SList:
		ts := []task{lit("(")}
		for i, item := range v.Items {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitSExpr(item))
		}
		ts = append(ts, lit(")"))
		return ts
	case ast.STerm:
		return []task{visitTerm(v.Term)}
	case ast.SCommand:
		return []task{visitCommand(v.Command)}
	default:
		return []task{func(s *sink) []task { s.err = errUnknownSExpr; return nil }}
	}
}

func smtOptionTasks(o ast.SMTOption) []task {
	switch v := o.(type) {
	case ast.PrintSuccess:
		return []task{lit(":print-success "), boolTask(v.Value)}
	case ast.ExpandDefinitions:
		return []task{lit(":expand-definitions "), boolTask(v.Value)}
	case ast.InteractiveMode:
		return []task{lit(":interactive-mode "), boolTask(v.Value)}
	case ast.ProduceProofs:
		return []task{lit(":produce-proofs "), boolTask(v.Value)}
	case ast.ProduceUnsatCores:
		return []task{lit(":produce-unsat-cores "), boolTask(v.Value)}
	case ast.ProduceModels:
		return []task{lit(":produce-models "), boolTask(v.Value)}
	case ast.ProduceAssignments:
		return []task{lit(":produce-assignments "), boolTask(v.Value)}
	case ast.RegularOutputChannel:
		return []task{lit(":regular-output-channel "), stringLitTask(v.Value)}
	case ast.DiagnosticOutputChannel:
		return []task{lit(":diagnostic-output-channel "), stringLitTask(v.Value)}
	case ast.RandomSeed:
		return []task{lit(":random-seed "), int64Task(v.Value)}
	case ast.Verbosity:
		return []task{lit(":verbosity "), int64Task(v.Value)}
	case ast.AttributeOption:
		return attributeTasks(v.Attr)
	default:
		return []task{func(s *sink) []task { s.err = errUnknownOption; return nil }}
	}
}

func infoFlagTasks(f ast.InfoFlag) []task {
	switch v := f.(type) {
	case ast.ErrorBehaviorFlag:
		return []task{lit(":error-behavior")}
	case ast.NameFlag:
		return []task{lit(":name")}
	case ast.AuthorsFlag:
		return []task{lit(":authors")}
	case ast.VersionFlag:
		return []task{lit(":version")}
	case ast.StatusFlag:
		return []task{lit(":status")}
	case ast.ReasonUnknownFlag:
		return []task{lit(":reason-unknown")}
	case ast.AllStatisticsFlag:
		return []task{lit(":all-statistics")}
	case ast.KeywordFlag:
		return []task{lit(":" + v.Name.Name)}
	default:
		return []task{func(s *sink) []task { s.err = errUnknownInfoFlag; return nil }}
	}
}

func commandTasks(c ast.Command) []task {
	switch v := c.(type) {
	case ast.SetLogic:
		return []task{lit("(set-logic "), symbolTask(v.Logic.Name), lit(")")}
	case ast.SetOption:
		ts := []task{lit("(set-option ")}
		ts = append(ts, smtOptionTasks(v.Option)...)
		return append(ts, lit(")"))
	case ast.SetInfo:
		ts := []task{lit("(set-info ")}
		ts = append(ts, attributeTasks(v.Info)...)
		return append(ts, lit(")"))
	case ast.DeclareSort:
		return []task{lit("(declare-sort "), symbolTask(v.Name.Name), lit(" "), numeralTask(v.Arity), lit(")")}
	case ast.DefineSort:
		ts := []task{lit("(define-sort "), symbolTask(v.Name.Name), lit(" (")}
		for i, p := range v.Params {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, symbolTask(p.Name))
		}
		ts = append(ts, lit(") "), visitSort(v.Sort), lit(")"))
		return ts
	case ast.DeclareFun:
		ts := []task{lit("(declare-fun "), symbolTask(v.Name.Name), lit(" (")}
		for i, p := range v.Params {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitSort(p))
		}
		ts = append(ts, lit(") "), visitSort(v.Result), lit(")"))
		return ts
	case ast.DefineFun:
		ts := []task{lit("(define-fun "), symbolTask(v.Name.Name), lit(" (")}
		for i, p := range v.Params {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitSortedVar(p))
		}
		ts = append(ts, lit(") "), visitSort(v.Result), lit(" "), visitTerm(v.Body), lit(")"))
		return ts
	case ast.Push:
		return []task{lit("(push "), numeralTask(v.Levels), lit(")")}
	case ast.Pop:
		return []task{lit("(pop "), numeralTask(v.Levels), lit(")")}
	case ast.Assert:
		return []task{lit("(assert "), visitTerm(v.Term), lit(")")}
	case ast.CheckSat:
		return []task{lit("(check-sat)")}
	case ast.GetAssertions:
		return []task{lit("(get-assertions)")}
	case ast.GetProof:
		return []task{lit("(get-proof)")}
	case ast.GetUnsatCore:
		return []task{lit("(get-unsat-core)")}
	case ast.GetValue:
		ts := []task{lit("(get-value (")}
		for i, t := range v.Terms() {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitTerm(t))
		}
		return append(ts, lit("))"))
	case ast.GetAssignment:
		return []task{lit("(get-assignment)")}
	case ast.GetOption:
		return []task{lit("(get-option :" + v.Option.Name + ")")}
	case ast.GetInfo:
		ts := []task{lit("(get-info ")}
		ts = append(ts, infoFlagTasks(v.Flag)...)
		return append(ts, lit(")"))
	case ast.Exit:
		return []task{lit("(exit)")}
	case ast.GetModel:
		return []task{lit("(get-model)")}
	case ast.DeclareDatatypes:
		ts := []task{lit("(declare-datatypes () (")}
		for i, d := range v.Decls() {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitDatatypeDecl(d))
		}
		return append(ts, lit("))"))
	case ast.NonStandardCommand:
		return []task{visitSExpr(v.Payload)}
	default:
		return []task{func(s *sink) []task { s.err = errUnknownCommand; return nil }}
	}
}

func datatypeDeclTasks(d ast.DatatypeDecl) []task {
	ts := []task{lit("("), symbolTask(d.Name.Name)}
	for _, c := range d.Constructors() {
		ts = append(ts, lit(" "), visitConstructor(c))
	}
	return append(ts, lit(")"))
}

func constructorTasks(c ast.Constructor) []task {
	ts := []task{lit("("), symbolTask(c.Name.Name)}
	for _, f := range c.Fields {
		ts = append(ts, lit(" ("), symbolTask(f.Name.Name), lit(" "), visitSort(f.Sort), lit(")"))
	}
	return append(ts, lit(")"))
}

func responseTasks(r ast.Response) []task {
	switch v := r.(type) {
	case ast.Success:
		return []task{lit("success")}
	case ast.Unsupported:
		return []task{lit("unsupported")}
	case ast.Error:
		return []task{lit("(error "), stringLitTask(v.Message), lit(")")}
	case ast.CheckSatResponse:
		return []task{lit(v.Status.String())}
	case ast.GetAssertionsResponse:
		ts := []task{lit("(")}
		for i, t := range v.Terms {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitTerm(t))
		}
		return append(ts, lit(")"))
	case ast.GetAssignmentResponse:
		ts := []task{lit("(")}
		for i, p := range v.Pairs {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, lit("("), symbolTask(p.Symbol.Name), lit(" "), boolTask(p.Value), lit(")"))
		}
		return append(ts, lit(")"))
	case ast.GetValueResponse:
		ts := []task{lit("(")}
		for i, p := range v.Pairs {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, lit("("), visitTerm(p.Term), lit(" "), visitTerm(p.Value), lit(")"))
		}
		return append(ts, lit(")"))
	case ast.GetProofResponse:
		return []task{visitSExpr(v.Proof)}
	case ast.GetUnsatCoreResponse:
		ts := []task{lit("(")}
		for i, n := range v.Names {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, symbolTask(n.Name))
		}
		return append(ts, lit(")"))
	case ast.GetOptionResponse:
		return []task{visitSExpr(v.Value)}
	case ast.GetInfoResponse:
		ts := []task{lit("(")}
		for i, e := range v.Responses() {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitInfoResponse(e))
		}
		return append(ts, lit(")"))
	case ast.GetModelResponse:
		ts := []task{lit("(model")}
		for _, it := range v.Items {
			ts = append(ts, lit("\n"), visitSExpr(it))
		}
		return append(ts, lit(")"))
	default:
		return []task{func(s *sink) []task { s.err = errUnknownResponse; return nil }}
	}
}

func infoResponseTasks(r ast.InfoResponse) []task {
	switch v := r.(type) {
	case ast.ErrorBehaviorResponse:
		if v.ContinuedExecution {
			return []task{lit(":error-behavior continued-execution")}
		}
		return []task{lit(":error-behavior immediate-exit")}
	case ast.NameResponse:
		return []task{lit(":name "), stringLitTask(v.Value)}
	case ast.AuthorsResponse:
		return []task{lit(":authors "), stringLitTask(v.Value)}
	case ast.VersionResponse:
		return []task{lit(":version "), stringLitTask(v.Value)}
	case ast.StatusResponse:
		return []task{lit(":status "), stringLitTask(v.Value)}
	case ast.ReasonUnknownResponse:
		return []task{lit(":reason-unknown "), visitSExpr(v.Value)}
	case ast.AllStatisticsResponse:
		ts := []task{lit(":all-statistics (")}
		for i, a := range v.Stats {
			if i > 0 {
				ts = append(ts, lit(" "))
			}
			ts = append(ts, visitAttribute(a))
		}
		return append(ts, lit(")"))
	case ast.AttributeInfoResponse:
		return attributeTasks(v.Attr)
	default:
		return []task{func(s *sink) []task { s.err = errUnknownInfoResponse; return nil }}
	}
}
