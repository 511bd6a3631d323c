package parser

import (
	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/token"
)

func (p *Parser) parseBool() (bool, error) {
	tok, err := p.expect(token.SymbolLit, "'true' or 'false'")
	if err != nil {
		return false, err
	}
	switch tok.Text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errorf(tok, "'true' or 'false'")
	}
}

func (p *Parser) parseSMTOption() (ast.SMTOption, error) {
	kwTok, err := p.expect(token.Keyword, "option keyword")
	if err != nil {
		return nil, err
	}
	switch kwTok.Text {
	case "print-success":
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.PrintSuccess{Value: b}, nil
	case "expand-definitions":
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ExpandDefinitions{Value: b}, nil
	case "interactive-mode":
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.InteractiveMode{Value: b}, nil
	case "produce-proofs":
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceProofs{Value: b}, nil
	case "produce-unsat-cores":
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceUnsatCores{Value: b}, nil
	case "produce-models":
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceModels{Value: b}, nil
	case "produce-assignments":
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceAssignments{Value: b}, nil
	case "regular-output-channel":
		s, err := p.expect(token.StringLit, "string")
		if err != nil {
			return nil, err
		}
		return ast.RegularOutputChannel{Value: s.Str}, nil
	case "diagnostic-output-channel":
		s, err := p.expect(token.StringLit, "string")
		if err != nil {
			return nil, err
		}
		return ast.DiagnosticOutputChannel{Value: s.Str}, nil
	case "random-seed":
		n, err := p.parseNumeral()
		if err != nil {
			return nil, err
		}
		return ast.RandomSeed{Value: n.Value.Int64()}, nil
	case "verbosity":
		n, err := p.parseNumeral()
		if err != nil {
			return nil, err
		}
		return ast.Verbosity{Value: n.Value.Int64()}, nil
	default:
		var val ast.SExpr
		if p.cur.Kind != token.Keyword && p.cur.Kind != token.CParen && p.cur.Kind != token.EOF {
			v, err := p.parseSExpr()
			if err != nil {
				return nil, err
			}
			val = v
		}
		return ast.AttributeOption{Attr: ast.Attribute{Keyword: ast.NewKeyword(kwTok.Text), Value: val}}, nil
	}
}

func (p *Parser) parseInfoFlag() (ast.InfoFlag, error) {
	kwTok, err := p.expect(token.Keyword, "info flag")
	if err != nil {
		return nil, err
	}
	switch kwTok.Text {
	case "error-behavior":
		return ast.ErrorBehaviorFlag{}, nil
	case "name":
		return ast.NameFlag{}, nil
	case "authors":
		return ast.AuthorsFlag{}, nil
	case "version":
		return ast.VersionFlag{}, nil
	case "status":
		return ast.StatusFlag{}, nil
	case "reason-unknown":
		return ast.ReasonUnknownFlag{}, nil
	case "all-statistics":
		return ast.AllStatisticsFlag{}, nil
	default:
		return ast.KeywordFlag{Name: ast.NewKeyword(kwTok.Text)}, nil
	}
}
