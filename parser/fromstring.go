package parser

import "github.com/alttpo/smtlib/ast"

// ParseTermFromString parses s as a single term.
func ParseTermFromString(s string) (ast.Term, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseTerm()
}

// ParseSortFromString parses s as a single sort.
func ParseSortFromString(s string) (ast.Sort, error) {
	p, err := newFromString(s)
	if err != nil {
		return ast.Sort{}, err
	}
	return p.parseSort()
}

// ParseCommandFromString parses s as a single command.
func ParseCommandFromString(s string) (ast.Command, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseCommand()
}

// ParseScriptFromString parses s as an entire script.
func ParseScriptFromString(s string) (ast.Script, error) {
	p, err := newFromString(s)
	if err != nil {
		return ast.Script{}, err
	}
	return p.ParseScript()
}

// ParseGenResponseFromString parses s as a generic response.
func ParseGenResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGenResponse()
}

// ParseCheckSatResponseFromString parses s as a check-sat response.
func ParseCheckSatResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseCheckSatResponse()
}

// ParseGetValueResponseFromString parses s as a get-value response.
func ParseGetValueResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetValueResponse()
}

// ParseGetAssertionsResponseFromString parses s as a get-assertions response.
func ParseGetAssertionsResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetAssertionsResponse()
}

// ParseGetProofResponseFromString parses s as a get-proof response.
func ParseGetProofResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetProofResponse()
}

// ParseGetUnsatCoreResponseFromString parses s as a get-unsat-core response.
func ParseGetUnsatCoreResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetUnsatCoreResponse()
}

// ParseGetOptionResponseFromString parses s as a get-option response.
func ParseGetOptionResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetOptionResponse()
}

// ParseGetInfoResponseFromString parses s as a get-info response.
func ParseGetInfoResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetInfoResponse()
}

// ParseGetAssignmentResponseFromString parses s as a get-assignment response.
func ParseGetAssignmentResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetAssignmentResponse()
}

// ParseGetModelResponseFromString parses s as a get-model response.
func ParseGetModelResponseFromString(s string) (ast.Response, error) {
	p, err := newFromString(s)
	if err != nil {
		return nil, err
	}
	return p.ParseGetModelResponse()
}
