package printer

import "github.com/alttpo/smtlib/token"

// writeSymbolName writes name bare if it qualifies as a simple symbol, or
// quoted between '|' delimiters otherwise. Inside a quoted symbol, '|' and
// '\' are themselves escaped with a leading backslash so the quoted lexer
// can reconstruct the exact original name.
func (s *sink) writeSymbolName(name string) {
	if token.IsSimpleSymbol(name) {
		s.writeString(name)
		return
	}
	s.writeString("|")
	for _, r := range name {
		if r == '|' || r == '\\' {
			s.writeString(`\`)
		}
		s.writeString(string(r))
	}
	s.writeString("|")
}

// writeStringLit writes s as a double-quoted SMT-LIB string constant,
// escaping embedded '"' and '\' characters with a leading backslash as the
// lexer's inverse.
func (sk *sink) writeStringLit(s string) {
	sk.writeString(`"`)
	for _, r := range s {
		if r == '"' || r == '\\' {
			sk.writeString(`\`)
		}
		sk.writeString(string(r))
	}
	sk.writeString(`"`)
}
