// Package parser implements a hand-written recursive-descent parser over
// the token stream produced by package lexer, with one token of lookahead.
// It exposes one entry point per grammar start symbol (term, sort,
// command, script) plus one entry point per solver response kind, because
// response grammars are disjoint: the same textual form decodes
// differently depending on which command it answers.
package parser

import (
	"io"
	"strings"

	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/lexer"
	"github.com/alttpo/smtlib/token"
)

// Parser holds one token of lookahead over a lexer.Lexer.
type Parser struct {
	lex *lexer.Lexer
	cur token.Token
}

// New builds a Parser over r and primes its first lookahead token.
func New(r io.RuneScanner) (*Parser, error) {
	p := &Parser{lex: lexer.New(r)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// newFromString is a convenience constructor shared by the Parse*FromString
// helpers in fromstring.go.
func newFromString(s string) (*Parser, error) {
	return New(strings.NewReader(s))
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) expect(k token.Kind, expected string) (token.Token, error) {
	if p.cur.Kind != k {
		return token.Token{}, errorf(p.cur, expected)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (p *Parser) expectOParen() error {
	_, err := p.expect(token.OParen, "'('")
	return err
}

func (p *Parser) expectCParen() error {
	_, err := p.expect(token.CParen, "')'")
	return err
}

// parseNumeral consumes a NumeralLit token and returns its value.
func (p *Parser) parseNumeral() (ast.Numeral, error) {
	tok, err := p.expect(token.NumeralLit, "numeral")
	if err != nil {
		return ast.Numeral{}, err
	}
	return ast.Numeral{Value: tok.Numeral}, nil
}

// parseIndexedIdentifierBody parses "_ symbol n1 ... nk )" assuming the
// opening '(' has already been consumed and p.cur is the '_' token.
func (p *Parser) parseIndexedIdentifierBody() (ast.Identifier, error) {
	if err := p.advance(); err != nil { // consume '_'
		return nil, err
	}
	nameTok, err := p.expect(token.SymbolLit, "symbol name in indexed identifier")
	if err != nil {
		return nil, err
	}
	head, err := p.parseNumeral()
	if err != nil {
		return nil, err
	}
	var rest []ast.Numeral
	for p.cur.Kind == token.NumeralLit {
		n, err := p.parseNumeral()
		if err != nil {
			return nil, err
		}
		rest = append(rest, n)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.IndexedIdentifier{Symbol: ast.NewSymbol(nameTok.Text), Head: head, Rest: rest}, nil
}

// parseIdentifier parses a bare symbol or a parenthesized "(_ ...)" form.
func (p *Parser) parseIdentifier() (ast.Identifier, error) {
	if p.cur.Kind == token.SymbolLit {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.SimpleIdentifier{Symbol: ast.NewSymbol(tok.Text)}, nil
	}
	if p.cur.Kind == token.OParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != token.KwUnderscore {
			return nil, errorf(p.cur, "'_' after '(' in identifier")
		}
		return p.parseIndexedIdentifierBody()
	}
	return nil, errorf(p.cur, "identifier")
}

// parseQualifiedIdentifier parses "identifier | (as identifier sort)".
func (p *Parser) parseQualifiedIdentifier() (ast.QualifiedIdentifier, error) {
	if p.cur.Kind == token.SymbolLit {
		tok := p.cur
		if err := p.advance(); err != nil {
			return ast.QualifiedIdentifier{}, err
		}
		return ast.QualifiedIdentifier{Id: ast.SimpleIdentifier{Symbol: ast.NewSymbol(tok.Text)}}, nil
	}
	if p.cur.Kind == token.OParen {
		if err := p.advance(); err != nil {
			return ast.QualifiedIdentifier{}, err
		}
		if p.cur.Kind == token.KwUnderscore {
			id, err := p.parseIndexedIdentifierBody()
			if err != nil {
				return ast.QualifiedIdentifier{}, err
			}
			return ast.QualifiedIdentifier{Id: id}, nil
		}
		if p.cur.Kind == token.KwAs {
			if err := p.advance(); err != nil {
				return ast.QualifiedIdentifier{}, err
			}
			id, err := p.parseIdentifier()
			if err != nil {
				return ast.QualifiedIdentifier{}, err
			}
			sort, err := p.parseSort()
			if err != nil {
				return ast.QualifiedIdentifier{}, err
			}
			if err := p.expectCParen(); err != nil {
				return ast.QualifiedIdentifier{}, err
			}
			return ast.QualifiedIdentifier{Id: id, Sort: &sort}, nil
		}
		return ast.QualifiedIdentifier{}, errorf(p.cur, "'_' or 'as' after '(' in qualified identifier")
	}
	return ast.QualifiedIdentifier{}, errorf(p.cur, "identifier")
}

// parseSort parses "identifier | ( identifier sort+ )".
func (p *Parser) parseSort() (ast.Sort, error) {
	if p.cur.Kind == token.SymbolLit {
		id, err := p.parseIdentifier()
		if err != nil {
			return ast.Sort{}, err
		}
		return ast.Sort{Id: id}, nil
	}
	if p.cur.Kind == token.OParen {
		if err := p.advance(); err != nil {
			return ast.Sort{}, err
		}
		if p.cur.Kind == token.KwUnderscore {
			id, err := p.parseIndexedIdentifierBody()
			if err != nil {
				return ast.Sort{}, err
			}
			return ast.Sort{Id: id}, nil
		}
		id, err := p.parseIdentifier()
		if err != nil {
			return ast.Sort{}, err
		}
		sub0, err := p.parseSort()
		if err != nil {
			return ast.Sort{}, err
		}
		subs := []ast.Sort{sub0}
		for p.cur.Kind != token.CParen {
			s, err := p.parseSort()
			if err != nil {
				return ast.Sort{}, err
			}
			subs = append(subs, s)
		}
		if err := p.expectCParen(); err != nil {
			return ast.Sort{}, err
		}
		return ast.Sort{Id: id, Subs: subs}, nil
	}
	return ast.Sort{}, errorf(p.cur, "sort")
}

func (p *Parser) parseConstantTerm() (ast.Term, error) {
	tok := p.cur
	switch tok.Kind {
	case token.NumeralLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Numeral{Value: tok.Numeral}, nil
	case token.DecimalLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Decimal{IntPart: tok.Numeral, Frac: tok.Frac}, nil
	case token.StringLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.StringLit{Value: tok.Str}, nil
	case token.BinaryLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Binary{Bits: tok.Bits}, nil
	case token.HexadecimalLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewHexadecimal(tok.Hex), nil
	}
	return nil, errorf(tok, "constant literal")
}

// parseSExpr parses the closed S-expression algebra: a constant literal, a
// symbol, a keyword, or a parenthesized list of S-expressions. Reserved
// words are accepted as ordinary symbols in this position, since a
// non-standard payload may legitimately contain one (e.g. embedding "let"
// as a plain field name inside a vendor extension).
func (p *Parser) parseSExpr() (ast.SExpr, error) {
	switch {
	case p.cur.Kind == token.NumeralLit || p.cur.Kind == token.DecimalLit ||
		p.cur.Kind == token.StringLit || p.cur.Kind == token.BinaryLit ||
		p.cur.Kind == token.HexadecimalLit:
		t, err := p.parseConstantTerm()
		if err != nil {
			return nil, err
		}
		return t.(ast.SExpr), nil
	case p.cur.Kind == token.SymbolLit || token.IsReserved(p.cur.Kind):
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewSymbol(tok.Text), nil
	case p.cur.Kind == token.Keyword:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewKeyword(tok.Text), nil
	case p.cur.Kind == token.OParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var items []ast.SExpr
		for p.cur.Kind != token.CParen {
			item, err := p.parseSExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.SList{Items: items}, nil
	default:
		return nil, errorf(p.cur, "s-expression")
	}
}

// parseAttribute parses "keyword" or "keyword value", where value is
// present unless the next token is itself a keyword or a closing paren.
func (p *Parser) parseAttribute() (ast.Attribute, error) {
	kwTok, err := p.expect(token.Keyword, "keyword")
	if err != nil {
		return ast.Attribute{}, err
	}
	kw := ast.NewKeyword(kwTok.Text)
	if p.cur.Kind == token.Keyword || p.cur.Kind == token.CParen || p.cur.Kind == token.EOF {
		return ast.Attribute{Keyword: kw}, nil
	}
	val, err := p.parseSExpr()
	if err != nil {
		return ast.Attribute{}, err
	}
	return ast.Attribute{Keyword: kw, Value: val}, nil
}
