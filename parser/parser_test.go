package parser

import (
	"reflect"
	"testing"

	"github.com/alttpo/smtlib/ast"
)

func TestParseTermFromString(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ast.Term
	}{
		{
			name: "numeral",
			src:  "42",
			want: ast.NumeralFromInt64(42),
		},
		{
			name: "decimal",
			src:  "3.14",
			want: ast.Decimal{IntPart: ast.NumeralFromInt64(3).Value, Frac: "14"},
		},
		{
			name: "bare identifier",
			src:  "x",
			want: ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")}),
		},
		{
			name: "as-qualified identifier",
			src:  "(as x Int)",
			want: ast.NewAsQualifiedIdentifier(
				ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")},
				ast.NewLeafSort(ast.SimpleIdentifier{Symbol: ast.NewSymbol("Int")}),
			),
		},
		{
			name: "function application",
			src:  "(+ 1 2)",
			want: ast.NewFunctionApplication(
				ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("+")}),
				ast.NumeralFromInt64(1), ast.NumeralFromInt64(2),
			),
		},
		{
			name: "let",
			src:  "(let ((x 1)) x)",
			want: ast.NewLet(
				ast.VarBinding{Symbol: ast.NewSymbol("x"), Term: ast.NumeralFromInt64(1)},
				ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")}),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTermFromString(tt.src)
			if err != nil {
				t.Fatalf("ParseTermFromString(%q) error: %v", tt.src, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTermFromString(%q) = %#v, want %#v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseCommandFromString(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"assert", "(assert true)"},
		{"declare-fun", "(declare-fun f (Int) Bool)"},
		{"set-option print-success", "(set-option :print-success true)"},
		{"push default level", "(push)"},
		{"pop default level", "(pop)"},
		{"push explicit level", "(push 2)"},
		{"check-sat", "(check-sat)"},
		{"exit", "(exit)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCommandFromString(tt.src); err != nil {
				t.Fatalf("ParseCommandFromString(%q) error: %v", tt.src, err)
			}
		})
	}
}

func TestParsePushPopImplicitLevel(t *testing.T) {
	cmd, err := ParseCommandFromString("(push)")
	if err != nil {
		t.Fatalf("ParseCommandFromString error: %v", err)
	}
	push, ok := cmd.(ast.Push)
	if !ok {
		t.Fatalf("got %T, want ast.Push", cmd)
	}
	if push.Levels.Value.Int64() != 1 {
		t.Errorf("Levels = %v, want 1", push.Levels.Value)
	}
}

func TestParseDeclareDatatypesTwoConstructors(t *testing.T) {
	src := "(declare-datatypes () ((List (nil) (cons (head Int) (tail List)))))"
	cmd, err := ParseCommandFromString(src)
	if err != nil {
		t.Fatalf("ParseCommandFromString(%q) error: %v", src, err)
	}
	dd, ok := cmd.(ast.DeclareDatatypes)
	if !ok {
		t.Fatalf("got %T, want ast.DeclareDatatypes", cmd)
	}
	decls := dd.Decls()
	if len(decls) != 1 || decls[0].Name.Name != "List" {
		t.Fatalf("Decls() = %v, unexpected", decls)
	}
	ctors := decls[0].Constructors()
	if len(ctors) != 2 || ctors[0].Name.Name != "nil" || ctors[1].Name.Name != "cons" {
		t.Errorf("Constructors() = %v, want [nil cons]", ctors)
	}
	if len(ctors[1].Fields) != 2 {
		t.Errorf("cons Fields = %v, want 2 fields", ctors[1].Fields)
	}
}

func TestParseGetValueResponse(t *testing.T) {
	src := "((a 42) (b 12))"
	resp, err := ParseGetValueResponseFromString(src)
	if err != nil {
		t.Fatalf("ParseGetValueResponseFromString(%q) error: %v", src, err)
	}
	gv, ok := resp.(ast.GetValueResponse)
	if !ok {
		t.Fatalf("got %T, want ast.GetValueResponse", resp)
	}
	if len(gv.Pairs) != 2 {
		t.Fatalf("Pairs length = %d, want 2", len(gv.Pairs))
	}
}

func TestParseGetValueResponseRejectsEmpty(t *testing.T) {
	if _, err := ParseGetValueResponseFromString("()"); err == nil {
		t.Error("expected an error for an empty get-value response")
	}
}

func TestParseRemainingResponseKindsFromString(t *testing.T) {
	tests := []struct {
		name string
		src  string
		fn   func(string) (ast.Response, error)
		want interface{}
	}{
		{"get-assertions", "((> x 0) (< y 1))", ParseGetAssertionsResponseFromString, ast.GetAssertionsResponse{}},
		{"get-proof", "(proof-sexpr)", ParseGetProofResponseFromString, ast.GetProofResponse{}},
		{"get-unsat-core", "(a1 a2)", ParseGetUnsatCoreResponseFromString, ast.GetUnsatCoreResponse{}},
		{"get-option", "true", ParseGetOptionResponseFromString, ast.GetOptionResponse{}},
		{"get-info", "(:name \"z3\")", ParseGetInfoResponseFromString, ast.GetInfoResponse{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.src)
			if err != nil {
				t.Fatalf("%s error: %v", tt.name, err)
			}
			wantType := reflect.TypeOf(tt.want)
			if reflect.TypeOf(got) != wantType {
				t.Errorf("%s = %T, want %v", tt.name, got, wantType)
			}
		})
	}
}

func TestParseCheckSatResponseVariants(t *testing.T) {
	for _, src := range []string{"sat", "unsat", "unknown"} {
		if _, err := ParseCheckSatResponseFromString(src); err != nil {
			t.Errorf("ParseCheckSatResponseFromString(%q) error: %v", src, err)
		}
	}
}

func TestParseGetModelResponseInterleavesCommandsAndTerms(t *testing.T) {
	src := "(model (define-fun x () Int 1) (+ x 1))"
	resp, err := ParseGetModelResponseFromString(src)
	if err != nil {
		t.Fatalf("ParseGetModelResponseFromString(%q) error: %v", src, err)
	}
	gm, ok := resp.(ast.GetModelResponse)
	if !ok {
		t.Fatalf("got %T, want ast.GetModelResponse", resp)
	}
	if len(gm.Items) != 2 {
		t.Fatalf("Items length = %d, want 2", len(gm.Items))
	}
	if _, ok := gm.Items[0].(ast.SCommand); !ok {
		t.Errorf("Items[0] = %#v, want ast.SCommand", gm.Items[0])
	}
	if _, ok := gm.Items[1].(ast.STerm); !ok {
		t.Errorf("Items[1] = %#v, want ast.STerm", gm.Items[1])
	}
}

func TestParseSortNestedIndexedIdentifierHead(t *testing.T) {
	src := "((_ FP 8 24) RoundingMode)"
	sort, err := ParseSortFromString(src)
	if err != nil {
		t.Fatalf("ParseSortFromString(%q) error: %v", src, err)
	}
	if len(sort.Subs) != 1 {
		t.Fatalf("Subs length = %d, want 1", len(sort.Subs))
	}
	if _, ok := sort.Id.(ast.IndexedIdentifier); !ok {
		t.Errorf("Id = %#v, want ast.IndexedIdentifier", sort.Id)
	}
}

func TestParseScriptFromStringMultipleCommands(t *testing.T) {
	src := "(set-logic QF_LIA)\n(declare-fun x () Int)\n(assert (> x 0))\n(check-sat)\n"
	scr, err := ParseScriptFromString(src)
	if err != nil {
		t.Fatalf("ParseScriptFromString error: %v", err)
	}
	if len(scr.Commands) != 4 {
		t.Fatalf("Commands length = %d, want 4", len(scr.Commands))
	}
}

func TestParseNonStandardCommand(t *testing.T) {
	cmd, err := ParseCommandFromString("(reset-assertions)")
	if err != nil {
		t.Fatalf("ParseCommandFromString error: %v", err)
	}
	if _, ok := cmd.(ast.NonStandardCommand); !ok {
		t.Errorf("got %T, want ast.NonStandardCommand", cmd)
	}
}
