package printer

import (
	"strings"
	"testing"

	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/lexer"
	"github.com/alttpo/smtlib/parser"
	"github.com/alttpo/smtlib/token"
)

func termFixtures() []ast.Term {
	x := ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")})
	return []ast.Term{
		ast.NumeralFromInt64(0),
		ast.NumeralFromInt64(42),
		ast.Decimal{IntPart: ast.NumeralFromInt64(3).Value, Frac: "14"},
		ast.NewHexadecimal("deadbeef"),
		ast.Binary{Bits: []bool{true, false, false, true}},
		ast.StringLit{Value: `hello "world"` + "\n" + `back\slash`},
		x,
		ast.NewFunctionApplication(
			ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("+")}),
			x, ast.NumeralFromInt64(1),
		),
		ast.NewLet(
			ast.VarBinding{Symbol: ast.NewSymbol("y"), Term: ast.NumeralFromInt64(1)},
			x,
		),
		ast.NewForAll(
			ast.SortedVar{Symbol: ast.NewSymbol("z"), Sort: ast.NewLeafSort(ast.SimpleIdentifier{Symbol: ast.NewSymbol("Int")})},
			x,
		),
		ast.NewAnnotatedTerm(x, ast.NewAttribute(ast.NewKeyword("named"), ast.NewSymbol("foo"))),
		ast.NewQualifiedIdentifier(
			ast.IndexedIdentifier{Symbol: ast.NewSymbol("extract"), Head: ast.NumeralFromInt64(31), Rest: []ast.Numeral{ast.NumeralFromInt64(0)}},
		),
	}
}

func TestRoundTripTerm(t *testing.T) {
	for i, term := range termFixtures() {
		printed := TermString(term)
		got, err := parser.ParseTermFromString(printed)
		if err != nil {
			t.Fatalf("fixture %d: parse(%q) error: %v", i, printed, err)
		}
		printedAgain := TermString(got)
		if printed != printedAgain {
			t.Errorf("fixture %d: print . parse . print not stable:\n  %q\n  %q", i, printed, printedAgain)
		}
	}
}

func TestPrinterAgreement(t *testing.T) {
	for i, term := range termFixtures() {
		var rec, stk strings.Builder
		if err := AsRecursive.Term(&rec, term); err != nil {
			t.Fatalf("fixture %d: Recursive error: %v", i, err)
		}
		if err := AsStackSafe.Term(&stk, term); err != nil {
			t.Fatalf("fixture %d: StackSafe error: %v", i, err)
		}
		if rec.String() != stk.String() {
			t.Errorf("fixture %d: printers disagree:\n  recursive:  %q\n  stack-safe: %q", i, rec.String(), stk.String())
		}
	}
}

func TestStackSafeDeepLetChain(t *testing.T) {
	const depth = 10000
	inner := ast.Term(ast.NumeralFromInt64(0))
	sym := ast.NewSymbol("v")
	for i := 0; i < depth; i++ {
		inner = ast.NewLet(ast.VarBinding{Symbol: sym, Term: ast.NumeralFromInt64(int64(i))}, inner)
	}

	var stk strings.Builder
	if err := AsStackSafe.Term(&stk, inner); err != nil {
		t.Fatalf("StackSafe error on depth-%d let chain: %v", depth, err)
	}
	if !strings.HasPrefix(stk.String(), "(let ((v 9999)") {
		t.Errorf("unexpected prefix: %q", stk.String()[:30])
	}
}

func TestCanonicalNumeralNoLeadingZero(t *testing.T) {
	n := ast.NewNumeral("00042")
	if got := TermString(n); got != "42" {
		t.Errorf("TermString(00042) = %q, want %q", got, "42")
	}
}

func TestCanonicalHexadecimalUppercase(t *testing.T) {
	h := ast.NewHexadecimal("deadBEEF")
	if got := TermString(h); got != "#xDEADBEEF" {
		t.Errorf("TermString(hex) = %q, want %q", got, "#xDEADBEEF")
	}
}

func TestCanonicalBinaryMSBFirst(t *testing.T) {
	b := ast.Binary{Bits: []bool{true, false, false, true}}
	if got := TermString(b); got != "#b1001" {
		t.Errorf("TermString(binary) = %q, want %q", got, "#b1001")
	}
}

func TestSymbolQuotingRoundTrip(t *testing.T) {
	names := []string{"plain", "has space", "has|pipe", `has\backslash`, "123startsdigit"}
	for _, name := range names {
		sym := ast.NewSymbol(name)
		printed := SExprString(sym)
		got, err := parser.ParseTermFromString(printed)
		if err != nil {
			t.Fatalf("parse(%q) error: %v", printed, err)
		}
		qid, ok := got.(ast.QualifiedIdentifier)
		if !ok {
			t.Fatalf("parse(%q) = %#v, want QualifiedIdentifier", printed, got)
		}
		simple, ok := qid.Id.(ast.SimpleIdentifier)
		if !ok || simple.Symbol.Name != name {
			t.Errorf("round-tripped symbol name = %#v, want %q", qid.Id, name)
		}
	}
}

func TestPrintedCommandLexesToCompletion(t *testing.T) {
	cmd := ast.SetInfo{Info: ast.NewAttribute(ast.NewKeyword("source"), ast.StringLit{Value: "generated"})}
	printed := CommandString(cmd)
	l := lexer.New(strings.NewReader(printed))
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("lexing printed command %q: %v", printed, err)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
}

func TestSeedScenarios(t *testing.T) {
	tests := []struct {
		name string
		cmd  ast.Command
	}{
		{"assert true", ast.Assert{Term: ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("true")})}},
		{
			"declare-fun",
			ast.DeclareFun{
				Name:   ast.NewSymbol("f"),
				Params: []ast.Sort{ast.NewLeafSort(ast.SimpleIdentifier{Symbol: ast.NewSymbol("Int")})},
				Result: ast.NewLeafSort(ast.SimpleIdentifier{Symbol: ast.NewSymbol("Bool")}),
			},
		},
		{"set-option print-success", ast.SetOption{Option: ast.PrintSuccess{Value: true}}},
		{
			"declare-datatypes two constructors",
			ast.DeclareDatatypes{
				DeclHead: ast.NewDatatypeDecl(
					ast.NewSymbol("List"),
					ast.Constructor{Name: ast.NewSymbol("nil")},
					ast.Constructor{
						Name: ast.NewSymbol("cons"),
						Fields: []ast.Field{
							{Name: ast.NewSymbol("head"), Sort: ast.NewLeafSort(ast.SimpleIdentifier{Symbol: ast.NewSymbol("Int")})},
							{Name: ast.NewSymbol("tail"), Sort: ast.NewLeafSort(ast.SimpleIdentifier{Symbol: ast.NewSymbol("List")})},
						},
					},
				),
			},
		},
		{
			"get-value",
			ast.NewGetValue(ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")})),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printed := CommandString(tt.cmd)
			got, err := parser.ParseCommandFromString(printed)
			if err != nil {
				t.Fatalf("parse(%q) error: %v", printed, err)
			}
			printedAgain := CommandString(got)
			if printed != printedAgain {
				t.Errorf("round trip not stable:\n  %q\n  %q", printed, printedAgain)
			}
		})
	}

	respSrc := "((a 42) (b 12))"
	resp, err := parser.ParseGetValueResponseFromString(respSrc)
	if err != nil {
		t.Fatalf("ParseGetValueResponseFromString error: %v", err)
	}
	if got := ResponseString(resp); got != respSrc {
		t.Errorf("ResponseString(parse(%q)) = %q, want %q", respSrc, got, respSrc)
	}
}

func TestGetModelResponsePrintsOneItemPerLine(t *testing.T) {
	resp := ast.GetModelResponse{
		Items: []ast.SExpr{
			ast.SCommand{Command: ast.DefineFun{
				Name:   ast.NewSymbol("x"),
				Result: ast.NewLeafSort(ast.SimpleIdentifier{Symbol: ast.NewSymbol("Int")}),
				Body:   ast.NumeralFromInt64(1),
			}},
			ast.STerm{Term: ast.NewFunctionApplication(
				ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("+")}),
				ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")}),
				ast.NumeralFromInt64(1),
			)},
		},
	}

	printed := ResponseString(resp)
	want := "(model\n(define-fun x () Int 1)\n(+ x 1))"
	if printed != want {
		t.Errorf("ResponseString(GetModelResponse) = %q, want %q", printed, want)
	}

	var stk strings.Builder
	if err := AsStackSafe.Response(&stk, resp); err != nil {
		t.Fatalf("StackSafe error: %v", err)
	}
	if stk.String() != printed {
		t.Errorf("StackSafe disagrees with Recursive:\n  %q\n  %q", stk.String(), printed)
	}

	got, err := parser.ParseGetModelResponseFromString(printed)
	if err != nil {
		t.Fatalf("ParseGetModelResponseFromString(%q) error: %v", printed, err)
	}
	gm, ok := got.(ast.GetModelResponse)
	if !ok {
		t.Fatalf("got %T, want ast.GetModelResponse", got)
	}
	if len(gm.Items) != 2 {
		t.Fatalf("Items length = %d, want 2", len(gm.Items))
	}
	if ResponseString(gm) != printed {
		t.Errorf("round trip not stable:\n  %q\n  %q", printed, ResponseString(gm))
	}
}

func TestScriptPrintsOneCommandPerLine(t *testing.T) {
	scr := ast.NewScript(ast.CheckSat{}, ast.Exit{})
	printed := ScriptString(scr)
	lines := strings.Split(strings.TrimRight(printed, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Script printed %d lines, want 2: %q", len(lines), printed)
	}
	if lines[0] != "(check-sat)" || lines[1] != "(exit)" {
		t.Errorf("Script lines = %v, want [(check-sat) (exit)]", lines)
	}
}
