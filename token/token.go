package token

import "math/big"

// Token is one lexical unit together with the position of its first
// character. Position is metadata: it plays no part in any equality
// comparison performed above the lexer.
type Token struct {
	Kind Kind
	Pos  Position

	// Text carries the raw name for SymbolLit, Keyword, and every
	// reserved-word kind (without the leading ':' for keywords).
	Text string

	// Numeral carries the value for NumeralLit and the integer part of
	// DecimalLit.
	Numeral *big.Int

	// Frac carries the fractional digit sequence (no leading '.') for
	// DecimalLit, preserved exactly as read.
	Frac string

	// Str carries the decoded contents of StringLit.
	Str string

	// Bits carries the bit sequence for BinaryLit, most significant bit
	// (as read, left to right) first.
	Bits []bool

	// Hex carries the canonical (uppercase) digit sequence for
	// HexadecimalLit.
	Hex string
}

func (t Token) String() string {
	switch t.Kind {
	case SymbolLit, Keyword:
		return t.Text
	case NumeralLit:
		return t.Numeral.String()
	case DecimalLit:
		return t.Numeral.String() + "." + t.Frac
	case StringLit:
		return `"` + t.Str + `"`
	case BinaryLit:
		return "#b<binary>"
	case HexadecimalLit:
		return "#x" + t.Hex
	default:
		return t.Kind.String()
	}
}
