package parser

import "mccomp/token"

// parseExpr captures one expression as a flat, source-order vector of
// tokens; it never builds a tree itself. Precedence and associativity are
// resolved later by package resolve from the vector this returns.
//
// The grammar's only genuine ambiguity is the two-token look-ahead needed to
// tell an assignment ("IDENT" "=" expr) apart from any other expression
// starting with an identifier (a bare call or reference); everything else
// below is an ordinary predictive descent driven by FIRST sets, cascading
// through the eight precedence levels of rval.
func (p *Parser) parseExpr() []token.Token {
	if p.match(token.Ident) && p.peek(0).Kind == token.Assign {
		var toks []token.Token
		toks = append(toks, p.next()) // IDENT
		toks = append(toks, p.next()) // "="
		toks = append(toks, p.parseExpr()...)
		return toks
	}
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() []token.Token {
	toks := p.parseLogicalAnd()
	for p.match(token.OrOr) {
		toks = append(toks, p.next())
		toks = append(toks, p.parseLogicalAnd()...)
	}
	return toks
}

func (p *Parser) parseLogicalAnd() []token.Token {
	toks := p.parseEquality()
	for p.match(token.AndAnd) {
		toks = append(toks, p.next())
		toks = append(toks, p.parseEquality()...)
	}
	return toks
}

func (p *Parser) parseEquality() []token.Token {
	toks := p.parseRelational()
	for p.matchAny(token.EqEq, token.NotEq) {
		toks = append(toks, p.next())
		toks = append(toks, p.parseRelational()...)
	}
	return toks
}

func (p *Parser) parseRelational() []token.Token {
	toks := p.parseAdditive()
	for p.matchAny(token.Lt, token.LtEq, token.Gt, token.GtEq) {
		toks = append(toks, p.next())
		toks = append(toks, p.parseAdditive()...)
	}
	return toks
}

func (p *Parser) parseAdditive() []token.Token {
	toks := p.parseMultiplicative()
	for p.matchAny(token.Plus, token.Minus) {
		toks = append(toks, p.next())
		toks = append(toks, p.parseMultiplicative()...)
	}
	return toks
}

func (p *Parser) parseMultiplicative() []token.Token {
	toks := p.parseUnary()
	for p.matchAny(token.Star, token.Slash, token.Percent) {
		toks = append(toks, p.next())
		toks = append(toks, p.parseUnary()...)
	}
	return toks
}

func (p *Parser) parseUnary() []token.Token {
	if p.matchAny(token.Not, token.Minus) {
		toks := []token.Token{p.next()}
		toks = append(toks, p.parseUnary()...)
		return toks
	}
	return p.parsePrimary()
}

// parsePrimary implements primary ::= "(" expr ")" | IDENT ("(" args ")")? |
// INT_LIT | FLOAT_LIT | BOOL_LIT.
func (p *Parser) parsePrimary() []token.Token {
	switch {
	case p.match(token.LParen):
		toks := []token.Token{p.next()}
		toks = append(toks, p.parseExpr()...)
		toks = append(toks, p.expect(token.RParen))
		return toks

	case p.match(token.Ident):
		toks := []token.Token{p.next()}
		if !p.match(token.LParen) {
			return toks
		}

		toks = append(toks, p.next()) // "("
		if !p.match(token.RParen) {
			toks = append(toks, p.parseExpr()...)
			for p.match(token.Comma) {
				toks = append(toks, p.next())
				toks = append(toks, p.parseExpr()...)
			}
		}
		toks = append(toks, p.expect(token.RParen))
		return toks

	case p.matchAny(token.IntLit, token.FloatLit, token.BoolLit):
		return []token.Token{p.next()}

	default:
		p.errf("expected an expression, found %s %q", p.cur.Kind, p.cur.Lexeme)
		return []token.Token{p.cur}
	}
}
