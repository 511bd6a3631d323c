// Package printer renders ast values back into SMT-LIB v2 text.
//
// Two printers are provided, Recursive and StackSafe, both implementing
// Printer and guaranteed to produce byte-identical output for any given
// value. Recursive walks the ast tree directly with ordinary Go recursion
// and is easier to read; StackSafe walks an explicit work stack of "emit
// literal" and "visit node" units so its native call-stack depth stays
// bounded regardless of how deeply a term is nested (a right-associated
// chain of "let" bindings, for instance). Prefer StackSafe when printing
// values that may have come from an untrusted or generated source.
package printer
