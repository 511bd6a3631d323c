package printer

import "errors"

// These can only occur if a caller assembles an ast value by hand using a
// type outside the closed algebras (impossible through the exported
// constructors) or a zero Response/Term/etc. interface value.
var (
	errUnknownTerm         = errors.New("printer: unrecognized Term implementation")
	errUnknownIdentifier   = errors.New("printer: unrecognized Identifier implementation")
	errUnknownSExpr        = errors.New("printer: unrecognized SExpr implementation")
	errUnknownOption       = errors.New("printer: unrecognized SMTOption implementation")
	errUnknownInfoFlag     = errors.New("printer: unrecognized InfoFlag implementation")
	errUnknownCommand      = errors.New("printer: unrecognized Command implementation")
	errUnknownResponse     = errors.New("printer: unrecognized Response implementation")
	errUnknownInfoResponse = errors.New("printer: unrecognized InfoResponse implementation")
)
