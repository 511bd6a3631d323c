package token

import "testing"

func TestLookupReserved(t *testing.T) {
	tests := []struct {
		body     string
		wantKind Kind
		wantOK   bool
	}{
		{"check-sat", KwCheckSat, true},
		{"let", KwLet, true},
		{"_", KwUnderscore, true},
		{"!", KwBang, true},
		{"not-a-keyword", 0, false},
	}
	for _, tt := range tests {
		k, ok := LookupReserved(tt.body)
		if ok != tt.wantOK {
			t.Errorf("LookupReserved(%q) ok = %v, want %v", tt.body, ok, tt.wantOK)
			continue
		}
		if ok && k != tt.wantKind {
			t.Errorf("LookupReserved(%q) = %v, want %v", tt.body, k, tt.wantKind)
		}
	}
}

func TestIsReserved(t *testing.T) {
	if !IsReserved(KwAssert) {
		t.Error("IsReserved(KwAssert) = false, want true")
	}
	if !IsReserved(KwExists) {
		t.Error("IsReserved(KwExists) = false, want true")
	}
	if IsReserved(SymbolLit) {
		t.Error("IsReserved(SymbolLit) = true, want false")
	}
	if IsReserved(EOF) {
		t.Error("IsReserved(EOF) = true, want false")
	}
}
