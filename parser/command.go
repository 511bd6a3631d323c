package parser

import (
	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/token"
)

// ParseCommand parses a single command.
func (p *Parser) ParseCommand() (ast.Command, error) {
	return p.parseCommand()
}

// ParseScript parses an entire script: zero or more commands until the
// reader is exhausted.
func (p *Parser) ParseScript() (ast.Script, error) {
	var commands []ast.Command
	for p.cur.Kind != token.EOF {
		cmd, err := p.parseCommand()
		if err != nil {
			return ast.Script{}, err
		}
		commands = append(commands, cmd)
	}
	return ast.Script{Commands: commands}, nil
}

func (p *Parser) parseCommand() (ast.Command, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	return p.parseCommandBody()
}

// parseCommandBody assumes the command's opening '(' has already been
// consumed and p.cur is the command keyword (or, for a non-standard
// command, its first payload token).
func (p *Parser) parseCommandBody() (ast.Command, error) {
	kindTok := p.cur

	switch kindTok.Kind {
	case token.KwSetLogic:
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.SymbolLit, "logic name")
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.SetLogic{Logic: ast.NewSymbol(nameTok.Text)}, nil

	case token.KwSetOption:
		if err := p.advance(); err != nil {
			return nil, err
		}
		opt, err := p.parseSMTOption()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.SetOption{Option: opt}, nil

	case token.KwSetInfo:
		if err := p.advance(); err != nil {
			return nil, err
		}
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.SetInfo{Info: attr}, nil

	case token.KwDeclareSort:
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.SymbolLit, "sort name")
		if err != nil {
			return nil, err
		}
		arity, err := p.parseNumeral()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.DeclareSort{Name: ast.NewSymbol(nameTok.Text), Arity: arity}, nil

	case token.KwDefineSort:
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.SymbolLit, "sort name")
		if err != nil {
			return nil, err
		}
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		var params []ast.SSymbol
		for p.cur.Kind != token.CParen {
			pTok, err := p.expect(token.SymbolLit, "sort parameter")
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewSymbol(pTok.Text))
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		sort, err := p.parseSort()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.DefineSort{Name: ast.NewSymbol(nameTok.Text), Params: params, Sort: sort}, nil

	case token.KwDeclareFun:
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.SymbolLit, "function name")
		if err != nil {
			return nil, err
		}
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		var params []ast.Sort
		for p.cur.Kind != token.CParen {
			s, err := p.parseSort()
			if err != nil {
				return nil, err
			}
			params = append(params, s)
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		result, err := p.parseSort()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.DeclareFun{Name: ast.NewSymbol(nameTok.Text), Params: params, Result: result}, nil

	case token.KwDefineFun:
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.SymbolLit, "function name")
		if err != nil {
			return nil, err
		}
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		var params []ast.SortedVar
		for p.cur.Kind != token.CParen {
			v, err := p.parseSortedVar()
			if err != nil {
				return nil, err
			}
			params = append(params, v)
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		result, err := p.parseSort()
		if err != nil {
			return nil, err
		}
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.DefineFun{Name: ast.NewSymbol(nameTok.Text), Params: params, Result: result, Body: body}, nil

	case token.KwPush:
		if err := p.advance(); err != nil {
			return nil, err
		}
		levels := ast.NumeralFromInt64(1)
		if p.cur.Kind != token.CParen {
			var err error
			levels, err = p.parseNumeral()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.Push{Levels: levels}, nil

	case token.KwPop:
		if err := p.advance(); err != nil {
			return nil, err
		}
		levels := ast.NumeralFromInt64(1)
		if p.cur.Kind != token.CParen {
			var err error
			levels, err = p.parseNumeral()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.Pop{Levels: levels}, nil

	case token.KwAssert:
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.Assert{Term: t}, nil

	case token.KwCheckSat:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.CheckSat{}, nil

	case token.KwGetAssertions:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetAssertions{}, nil

	case token.KwGetProof:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetProof{}, nil

	case token.KwGetUnsatCore:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetUnsatCore{}, nil

	case token.KwGetValue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		head, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		var rest []ast.Term
		for p.cur.Kind != token.CParen {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			rest = append(rest, t)
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetValue{TermHead: head, TermRest: rest}, nil

	case token.KwGetAssignment:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetAssignment{}, nil

	case token.KwGetOption:
		if err := p.advance(); err != nil {
			return nil, err
		}
		kwTok, err := p.expect(token.Keyword, "option name")
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetOption{Option: ast.NewKeyword(kwTok.Text)}, nil

	case token.KwGetInfo:
		if err := p.advance(); err != nil {
			return nil, err
		}
		flag, err := p.parseInfoFlag()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetInfo{Flag: flag}, nil

	case token.KwExit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.Exit{}, nil

	case token.KwGetModel:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.GetModel{}, nil

	case token.KwDeclareDatatypes:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectOParen(); err != nil { // empty sort-parameter list
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		head, err := p.parseDatatypeDecl()
		if err != nil {
			return nil, err
		}
		var rest []ast.DatatypeDecl
		for p.cur.Kind != token.CParen {
			d, err := p.parseDatatypeDecl()
			if err != nil {
				return nil, err
			}
			rest = append(rest, d)
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.DeclareDatatypes{DeclHead: head, DeclRest: rest}, nil

	default:
		item0, err := p.parseSExpr()
		if err != nil {
			return nil, err
		}
		items := []ast.SExpr{item0}
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
		return ast.NonStandardCommand{Payload: ast.SList{Items: items}}, nil
	}
}

func (p *Parser) parseDatatypeDecl() (ast.DatatypeDecl, error) {
	if err := p.expectOParen(); err != nil {
		return ast.DatatypeDecl{}, err
	}
	nameTok, err := p.expect(token.SymbolLit, "datatype name")
	if err != nil {
		return ast.DatatypeDecl{}, err
	}
	head, err := p.parseConstructor()
	if err != nil {
		return ast.DatatypeDecl{}, err
	}
	var rest []ast.Constructor
	for p.cur.Kind != token.CParen {
		c, err := p.parseConstructor()
		if err != nil {
			return ast.DatatypeDecl{}, err
		}
		rest = append(rest, c)
	}
	if err := p.expectCParen(); err != nil {
		return ast.DatatypeDecl{}, err
	}
	return ast.DatatypeDecl{Name: ast.NewSymbol(nameTok.Text), CtorHead: head, CtorRest: rest}, nil
}

func (p *Parser) parseConstructor() (ast.Constructor, error) {
	if err := p.expectOParen(); err != nil {
		return ast.Constructor{}, err
	}
	nameTok, err := p.expect(token.SymbolLit, "constructor name")
	if err != nil {
		return ast.Constructor{}, err
	}
	var fields []ast.Field
	for p.cur.Kind != token.CParen {
		if err := p.expectOParen(); err != nil {
			return ast.Constructor{}, err
		}
		fieldTok, err := p.expect(token.SymbolLit, "field name")
		if err != nil {
			return ast.Constructor{}, err
		}
		sort, err := p.parseSort()
		if err != nil {
			return ast.Constructor{}, err
		}
		if err := p.expectCParen(); err != nil {
			return ast.Constructor{}, err
		}
		fields = append(fields, ast.Field{Name: ast.NewSymbol(fieldTok.Text), Sort: sort})
	}
	if err := p.expectCParen(); err != nil {
		return ast.Constructor{}, err
	}
	return ast.Constructor{Name: ast.NewSymbol(nameTok.Text), Fields: fields}, nil
}
