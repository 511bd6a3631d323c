package parser

import (
	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/token"
)

// ParseGenResponse parses the generic response shared by most commands:
// success, unsupported, or (error "msg").
func (p *Parser) ParseGenResponse() (ast.Response, error) {
	switch p.cur.Kind {
	case token.SymbolLit:
		tok := p.cur
		switch tok.Text {
		case "success":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.Success{}, nil
		case "unsupported":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.Unsupported{}, nil
		default:
			return nil, errorf(tok, "'success' or 'unsupported' or '(error ...)'")
		}
	case token.OParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		tok, err := p.expect(token.SymbolLit, "'error'")
		if err != nil {
			return nil, err
		}
		if tok.Text != "error" {
			return nil, errorf(tok, "'error'")
		}
		msgTok, err := p.expect(token.StringLit, "error message string")
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.Error{Message: msgTok.Str}, nil
	default:
		return nil, errorf(p.cur, "response")
	}
}

// ParseCheckSatResponse parses "sat" | "unsat" | "unknown".
func (p *Parser) ParseCheckSatResponse() (ast.Response, error) {
	tok, err := p.expect(token.SymbolLit, "'sat', 'unsat', or 'unknown'")
	if err != nil {
		return nil, err
	}
	switch tok.Text {
	case "sat":
		return ast.CheckSatResponse{Status: ast.Sat}, nil
	case "unsat":
		return ast.CheckSatResponse{Status: ast.Unsat}, nil
	case "unknown":
		return ast.CheckSatResponse{Status: ast.Unknown}, nil
	default:
		return nil, errorf(tok, "'sat', 'unsat', or 'unknown'")
	}
}

// ParseGetAssertionsResponse parses "(term*)".
func (p *Parser) ParseGetAssertionsResponse() (ast.Response, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var terms []ast.Term
	for p.cur.Kind != token.CParen {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetAssertionsResponse{Terms: terms}, nil
}

// ParseGetAssignmentResponse parses "((symbol bool)*)".
func (p *Parser) ParseGetAssignmentResponse() (ast.Response, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var pairs []ast.AssignmentPair
	for p.cur.Kind != token.CParen {
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.SymbolLit, "assigned symbol")
		if err != nil {
			return nil, err
		}
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.AssignmentPair{Symbol: ast.NewSymbol(nameTok.Text), Value: b})
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetAssignmentResponse{Pairs: pairs}, nil
}

// ParseGetValueResponse parses "((term term)+)".
func (p *Parser) ParseGetValueResponse() (ast.Response, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var pairs []ast.ValuePair
	for p.cur.Kind != token.CParen {
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		v, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.ValuePair{Term: t, Value: v})
	}
	if len(pairs) == 0 {
		return nil, errorf(p.cur, "at least one (term value) pair")
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetValueResponse{Pairs: pairs}, nil
}

// ParseGetProofResponse parses an opaque proof S-expression.
func (p *Parser) ParseGetProofResponse() (ast.Response, error) {
	s, err := p.parseSExpr()
	if err != nil {
		return nil, err
	}
	return ast.GetProofResponse{Proof: s}, nil
}

// ParseGetUnsatCoreResponse parses "(symbol*)".
func (p *Parser) ParseGetUnsatCoreResponse() (ast.Response, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var names []ast.SSymbol
	for p.cur.Kind != token.CParen {
		tok, err := p.expect(token.SymbolLit, "assertion name")
		if err != nil {
			return nil, err
		}
		names = append(names, ast.NewSymbol(tok.Text))
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetUnsatCoreResponse{Names: names}, nil
}

// ParseGetOptionResponse parses a raw option-value S-expression.
func (p *Parser) ParseGetOptionResponse() (ast.Response, error) {
	s, err := p.parseSExpr()
	if err != nil {
		return nil, err
	}
	return ast.GetOptionResponse{Value: s}, nil
}

// ParseGetInfoResponse parses "(infoEntry+)".
func (p *Parser) ParseGetInfoResponse() (ast.Response, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseInfoResponseEntry()
	if err != nil {
		return nil, err
	}
	var rest []ast.InfoResponse
	for p.cur.Kind != token.CParen {
		e, err := p.parseInfoResponseEntry()
		if err != nil {
			return nil, err
		}
		rest = append(rest, e)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetInfoResponse{Head: head, Rest: rest}, nil
}

func (p *Parser) parseInfoResponseEntry() (ast.InfoResponse, error) {
	attr, err := p.parseAttribute()
	if err != nil {
		return nil, err
	}
	switch attr.Keyword.Name {
	case "error-behavior":
		sym, _ := attr.Value.(ast.SSymbol)
		return ast.ErrorBehaviorResponse{ContinuedExecution: sym.Name == "continued-execution"}, nil
	case "name":
		return ast.NameResponse{Value: sexprStringValue(attr.Value)}, nil
	case "authors":
		return ast.AuthorsResponse{Value: sexprStringValue(attr.Value)}, nil
	case "version":
		return ast.VersionResponse{Value: sexprStringValue(attr.Value)}, nil
	case "status":
		return ast.StatusResponse{Value: sexprStringValue(attr.Value)}, nil
	case "reason-unknown":
		return ast.ReasonUnknownResponse{Value: attr.Value}, nil
	case "all-statistics":
		var stats []ast.Attribute
		if lst, ok := attr.Value.(ast.SList); ok {
			stats = sexprListToAttributes(lst)
		}
		return ast.AllStatisticsResponse{Stats: stats}, nil
	default:
		return ast.AttributeInfoResponse{Attr: attr}, nil
	}
}

func sexprStringValue(v ast.SExpr) string {
	switch x := v.(type) {
	case ast.StringLit:
		return x.Value
	case ast.SSymbol:
		return x.Name
	default:
		return ""
	}
}

// sexprListToAttributes best-effort decodes a flat S-expression list of
// alternating keyword/value entries into Attribute pairs, for the
// non-standard ":all-statistics" payload shape.
func sexprListToAttributes(lst ast.SList) []ast.Attribute {
	var attrs []ast.Attribute
	for i := 0; i < len(lst.Items); i++ {
		kw, ok := lst.Items[i].(ast.SKeyword)
		if !ok {
			continue
		}
		if i+1 < len(lst.Items) {
			if _, nextIsKw := lst.Items[i+1].(ast.SKeyword); !nextIsKw {
				attrs = append(attrs, ast.Attribute{Keyword: kw, Value: lst.Items[i+1]})
				i++
				continue
			}
		}
		attrs = append(attrs, ast.Attribute{Keyword: kw})
	}
	return attrs
}

// ParseGetModelResponse parses "(model item*)", where each item is either
// a term or a command (solvers commonly interleave define-fun commands
// into model output).
func (p *Parser) ParseGetModelResponse() (ast.Response, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	tok, err := p.expect(token.SymbolLit, "'model'")
	if err != nil {
		return nil, err
	}
	if tok.Text != "model" {
		return nil, errorf(tok, "'model'")
	}
	var items []ast.SExpr
	for p.cur.Kind != token.CParen {
		item, err := p.parseModelItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetModelResponse{Items: items}, nil
}

var modelCommandKinds = map[token.Kind]bool{
	token.KwDeclareFun:       true,
	token.KwDefineFun:        true,
	token.KwDeclareSort:      true,
	token.KwDefineSort:       true,
	token.KwDeclareDatatypes: true,
	token.KwAssert:           true,
}

func (p *Parser) parseModelItem() (ast.SExpr, error) {
	if p.cur.Kind != token.OParen {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return ast.STerm{Term: t}, nil
	}
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	if modelCommandKinds[p.cur.Kind] {
		cmd, err := p.parseCommandBody()
		if err != nil {
			return nil, err
		}
		return ast.SCommand{Command: cmd}, nil
	}
	t, err := p.parseParenTermBody()
	if err != nil {
		return nil, err
	}
	return ast.STerm{Term: t}, nil
}
