package ast

import (
	"math/big"
	"reflect"
	"testing"
)

func TestNumeralCanonicalizesLeadingZeros(t *testing.T) {
	a := NewNumeral("007")
	b := NewNumeral("7")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("NewNumeral(007) = %v, want equal to NewNumeral(7) = %v", a, b)
	}
}

func TestHexadecimalCaseInsensitiveEquality(t *testing.T) {
	a := NewHexadecimal("deadbeef")
	b := NewHexadecimal("DEADBEEF")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("NewHexadecimal is case-sensitive: %v != %v", a, b)
	}
	if a.Digits() != "DEADBEEF" {
		t.Errorf("Digits() = %q, want canonical uppercase", a.Digits())
	}
}

func TestBinaryLengthSignificant(t *testing.T) {
	a := Binary{Bits: []bool{false}}
	b := Binary{Bits: []bool{false, false}}
	if reflect.DeepEqual(a, b) {
		t.Error("Binary values of different lengths compared equal")
	}
}

func TestFunctionApplicationArgsOrder(t *testing.T) {
	fun := NewQualifiedIdentifier(SimpleIdentifier{Symbol: NewSymbol("f")})
	app := NewFunctionApplication(fun, NumeralFromInt64(1), NumeralFromInt64(2), NumeralFromInt64(3))
	args := app.Args()
	if len(args) != 3 {
		t.Fatalf("Args() length = %d, want 3", len(args))
	}
	for i, want := range []int64{1, 2, 3} {
		n, ok := args[i].(Numeral)
		if !ok {
			t.Fatalf("Args()[%d] is not a Numeral", i)
		}
		if n.Value.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("Args()[%d] = %v, want %d", i, n.Value, want)
		}
	}
}

func TestLetBindingsOrder(t *testing.T) {
	b0 := VarBinding{Symbol: NewSymbol("x"), Term: NumeralFromInt64(1)}
	b1 := VarBinding{Symbol: NewSymbol("y"), Term: NumeralFromInt64(2)}
	let := NewLet(b0, NumeralFromInt64(0), b1)
	bindings := let.Bindings()
	if len(bindings) != 2 || bindings[0].Symbol.Name != "x" || bindings[1].Symbol.Name != "y" {
		t.Errorf("Bindings() = %v, want [x y] order preserved", bindings)
	}
}

func TestIndexedIdentifierIndicesOrder(t *testing.T) {
	id := IndexedIdentifier{
		Symbol: NewSymbol("extract"),
		Head:   NumeralFromInt64(31),
		Rest:   []Numeral{NumeralFromInt64(0)},
	}
	idx := id.Indices()
	if len(idx) != 2 || idx[0].Value.Int64() != 31 || idx[1].Value.Int64() != 0 {
		t.Errorf("Indices() = %v, want [31 0]", idx)
	}
}

func TestQualifiedIdentifierStructuralEquality(t *testing.T) {
	id := SimpleIdentifier{Symbol: NewSymbol("x")}
	sort := NewLeafSort(SimpleIdentifier{Symbol: NewSymbol("Int")})
	a := NewAsQualifiedIdentifier(id, sort)
	b := NewAsQualifiedIdentifier(id, sort)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two identically-constructed QualifiedIdentifier values not DeepEqual: %v vs %v", a, b)
	}
	if reflect.DeepEqual(a, NewQualifiedIdentifier(id)) {
		t.Error("sort-annotated and unannotated qualified identifiers compared equal")
	}
}

func TestGetInfoResponseAtLeastOne(t *testing.T) {
	r := NewGetInfoResponse(NameResponse{Value: "z3"}, VersionResponse{Value: "4.8"})
	responses := r.Responses()
	if len(responses) != 2 {
		t.Fatalf("Responses() length = %d, want 2", len(responses))
	}
	if _, ok := responses[0].(NameResponse); !ok {
		t.Errorf("Responses()[0] = %#v, want NameResponse", responses[0])
	}
}

func TestDeclareDatatypesDeclsOrder(t *testing.T) {
	nilCtor := Constructor{Name: NewSymbol("nil")}
	consCtor := Constructor{
		Name: NewSymbol("cons"),
		Fields: []Field{
			{Name: NewSymbol("head"), Sort: NewLeafSort(SimpleIdentifier{Symbol: NewSymbol("Int")})},
			{Name: NewSymbol("tail"), Sort: NewLeafSort(SimpleIdentifier{Symbol: NewSymbol("List")})},
		},
	}
	decl := NewDatatypeDecl(NewSymbol("List"), nilCtor, consCtor)
	ctors := decl.Constructors()
	if len(ctors) != 2 || ctors[0].Name.Name != "nil" || ctors[1].Name.Name != "cons" {
		t.Errorf("Constructors() = %v, want [nil cons]", ctors)
	}
}

func TestSTermSCommandWrapping(t *testing.T) {
	var e SExpr = STerm{Term: NumeralFromInt64(5)}
	st, ok := e.(STerm)
	if !ok {
		t.Fatal("STerm does not satisfy SExpr")
	}
	if n, ok := st.Term.(Numeral); !ok || n.Value.Int64() != 5 {
		t.Errorf("STerm.Term = %v, want Numeral(5)", st.Term)
	}

	var e2 SExpr = SCommand{Command: CheckSat{}}
	if _, ok := e2.(SCommand); !ok {
		t.Fatal("SCommand does not satisfy SExpr")
	}
}
