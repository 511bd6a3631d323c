package parser

import (
	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/token"
)

// ParseTerm parses a single term.
func (p *Parser) ParseTerm() (ast.Term, error) {
	return p.parseTerm()
}

func (p *Parser) parseTerm() (ast.Term, error) {
	switch p.cur.Kind {
	case token.NumeralLit, token.DecimalLit, token.StringLit, token.BinaryLit, token.HexadecimalLit:
		return p.parseConstantTerm()
	case token.SymbolLit:
		id, err := p.parseQualifiedIdentifier()
		if err != nil {
			return nil, err
		}
		return id, nil
	case token.OParen:
		return p.parseParenTerm()
	default:
		return nil, errorf(p.cur, "term")
	}
}

func (p *Parser) parseParenTerm() (ast.Term, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	return p.parseParenTermBody()
}

// parseParenTermBody assumes the term's opening '(' has already been
// consumed and p.cur is positioned at what follows it.
func (p *Parser) parseParenTermBody() (ast.Term, error) {
	switch p.cur.Kind {
	case token.KwUnderscore:
		id, err := p.parseIndexedIdentifierBody()
		if err != nil {
			return nil, err
		}
		return ast.QualifiedIdentifier{Id: id}, nil
	case token.KwAs:
		if err := p.advance(); err != nil {
			return nil, err
		}
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		sort, err := p.parseSort()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.QualifiedIdentifier{Id: id, Sort: &sort}, nil
	case token.KwLet:
		return p.parseLet()
	case token.KwForall:
		return p.parseForall()
	case token.KwExists:
		return p.parseExists()
	case token.KwBang:
		return p.parseAnnotated()
	default:
		return p.parseFunctionApplication()
	}
}

func (p *Parser) parseVarBinding() (ast.VarBinding, error) {
	if err := p.expectOParen(); err != nil {
		return ast.VarBinding{}, err
	}
	nameTok, err := p.expect(token.SymbolLit, "symbol in variable binding")
	if err != nil {
		return ast.VarBinding{}, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return ast.VarBinding{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.VarBinding{}, err
	}
	return ast.VarBinding{Symbol: ast.NewSymbol(nameTok.Text), Term: term}, nil
}

func (p *Parser) parseSortedVar() (ast.SortedVar, error) {
	if err := p.expectOParen(); err != nil {
		return ast.SortedVar{}, err
	}
	nameTok, err := p.expect(token.SymbolLit, "symbol in sorted variable")
	if err != nil {
		return ast.SortedVar{}, err
	}
	sort, err := p.parseSort()
	if err != nil {
		return ast.SortedVar{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.SortedVar{}, err
	}
	return ast.SortedVar{Symbol: ast.NewSymbol(nameTok.Text), Sort: sort}, nil
}

// parseLet assumes p.cur == KwLet and the opening '(' of the let term has
// already been consumed.
func (p *Parser) parseLet() (ast.Term, error) {
	if err := p.advance(); err != nil { // consume 'let'
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseVarBinding()
	if err != nil {
		return nil, err
	}
	var rest []ast.VarBinding
	for p.cur.Kind != token.CParen {
		b, err := p.parseVarBinding()
		if err != nil {
			return nil, err
		}
		rest = append(rest, b)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.Let{BindHead: head, BindRest: rest, Body: body}, nil
}

func (p *Parser) parseForall() (ast.Term, error) {
	if err := p.advance(); err != nil { // consume 'forall'
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseSortedVar()
	if err != nil {
		return nil, err
	}
	var rest []ast.SortedVar
	for p.cur.Kind != token.CParen {
		v, err := p.parseSortedVar()
		if err != nil {
			return nil, err
		}
		rest = append(rest, v)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.ForAll{VarHead: head, VarRest: rest, Body: body}, nil
}

func (p *Parser) parseExists() (ast.Term, error) {
	if err := p.advance(); err != nil { // consume 'exists'
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseSortedVar()
	if err != nil {
		return nil, err
	}
	var rest []ast.SortedVar
	for p.cur.Kind != token.CParen {
		v, err := p.parseSortedVar()
		if err != nil {
			return nil, err
		}
		rest = append(rest, v)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.Exists{VarHead: head, VarRest: rest, Body: body}, nil
}

func (p *Parser) parseAnnotated() (ast.Term, error) {
	if err := p.advance(); err != nil { // consume '!'
		return nil, err
	}
	inner, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	head, err := p.parseAttribute()
	if err != nil {
		return nil, err
	}
	var rest []ast.Attribute
	for p.cur.Kind == token.Keyword {
		a, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		rest = append(rest, a)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.AnnotatedTerm{Inner: inner, AttrHead: head, AttrRest: rest}, nil
}

// parseFunctionApplication assumes the opening '(' has already been
// consumed and p.cur sits at the start of the function head.
func (p *Parser) parseFunctionApplication() (ast.Term, error) {
	fun, err := p.parseQualifiedIdentifier()
	if err != nil {
		return nil, err
	}
	arg0, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	var rest []ast.Term
	for p.cur.Kind != token.CParen {
		a, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		rest = append(rest, a)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.FunctionApplication{Fun: fun, ArgHead: arg0, ArgRest: rest}, nil
}
