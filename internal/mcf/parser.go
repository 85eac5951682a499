package mcf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parityscope/formula"
)

// Sentinel errors for malformed .mcf input.
var (
	ErrUnexpectedChar  = errors.New("mcf: unexpected character")
	ErrUnexpectedToken = errors.New("mcf: unexpected token")
	ErrEmptyInput      = errors.New("mcf: empty input")
)

// Parse parses a .mcf document into a closed, well-formed
// formula.Formula. This is the only public entry point; the grammar is:
//
//	formula  := fix | orExpr
//	fix      := ("mu"|"nu") ident "." formula
//	orExpr   := andExpr ("||" andExpr)*
//	andExpr  := unary ("&&" unary)*
//	unary    := "true" | "false" | ident
//	          | "[" ident "]" unary | "<" ident ">" unary
//	          | "(" formula ")" | fix
func Parse(src string) (*formula.Formula, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind == tokEOF {
		return nil, ErrEmptyInput
	}

	root, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w: trailing input at offset %d", ErrUnexpectedToken, p.cur.pos)
	}

	return formula.Close(root)
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) expect(k tokenKind) (token, error) {
	if p.cur.kind != k {
		return token{}, fmt.Errorf("%w: at offset %d", ErrUnexpectedToken, p.cur.pos)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) parseFormula() (*formula.Node, error) {
	if p.cur.kind == tokMu || p.cur.kind == tokNu {
		return p.parseFix()
	}
	return p.parseOr()
}

func (p *parser) parseFix() (*formula.Node, error) {
	isMu := p.cur.kind == tokMu
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokDot); err != nil {
		return nil, err
	}
	body, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if isMu {
		return formula.MuFix(name.text, body), nil
	}
	return formula.NuFix(name.text, body), nil
}

func (p *parser) parseOr() (*formula.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = formula.Or(left, right)
	}
	return left, nil
}

func (p *parser) parseAnd() (*formula.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = formula.And(left, right)
	}
	return left, nil
}

func (p *parser) parseUnary() (*formula.Node, error) {
	switch p.cur.kind {
	case tokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return formula.True(), nil

	case tokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return formula.False(), nil

	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return formula.Var(name), nil

	case tokLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		action, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBracket); err != nil {
			return nil, err
		}
		body, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.Box(action.text, body), nil

	case tokLAngle:
		if err := p.advance(); err != nil {
			return nil, err
		}
		action, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRAngle); err != nil {
			return nil, err
		}
		body, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.Diamond(action.text, body), nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil

	case tokMu, tokNu:
		return p.parseFix()

	default:
		return nil, fmt.Errorf("%w: at offset %d", ErrUnexpectedToken, p.cur.pos)
	}
}
