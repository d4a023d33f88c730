package parser

import (
	"mccomp/ast"
	"mccomp/token"
)

// parseTopLevel implements the "program" and "decl" productions:
//
//	program ::= extern_list decl_list | decl_list
//	extern   ::= "extern" type_spec IDENT "(" params ")" ";"
//	decl     ::= var_type IDENT decl' | "void" IDENT "(" params ")" block
//	decl'    ::= ";" | "(" params ")" block
//
// Rather than requiring all externs to precede all decls (as the grammar's
// extern_list/decl_list split literally reads), externs are accepted
// wherever a top-level declaration may start; extern always begins with the
// unambiguous "extern" keyword so this is a strict superset of the grammar
// with no added ambiguity.
func (p *Parser) parseTopLevel() ast.Decl {
	switch {
	case p.match(token.KeywordExtern):
		return p.parseExtern()
	case p.match(token.KeywordVoid):
		return p.parseVoidDecl()
	case p.cur.Kind.IsVarType():
		return p.parseTypedDecl()
	default:
		p.errf("expected a declaration, found %s %q", p.cur.Kind, p.cur.Lexeme)
		return nil
	}
}

func (p *Parser) parseExtern() ast.Decl {
	tok := p.next() // "extern"
	retType := p.parseTypeSpec()
	nameTok := p.expect(token.Ident)
	p.expect(token.LParen)
	params, voidParams := p.parseParams()
	p.expect(token.RParen)
	p.expect(token.Semi)

	return &ast.Prototype{
		Tok:        tok,
		Name:       nameTok.Lexeme,
		RetType:    retType,
		Params:     params,
		VoidParams: voidParams,
		Extern:     true,
	}
}

// parseVoidDecl handles decl ::= "void" IDENT "(" params ")" block. Since
// var_type never includes void, a void-returning definition is its own
// branch rather than falling out of parseTypedDecl.
func (p *Parser) parseVoidDecl() ast.Decl {
	tok := p.next() // "void"
	nameTok := p.expect(token.Ident)
	p.expect(token.LParen)
	params, voidParams := p.parseParams()
	p.expect(token.RParen)

	proto := &ast.Prototype{
		Tok:        tok,
		Name:       nameTok.Lexeme,
		RetType:    ast.Void,
		Params:     params,
		VoidParams: voidParams,
	}

	body := p.parseFuncBody(proto.RetType)
	return &ast.Function{Proto: proto, Body: body}
}

// parseTypedDecl handles decl ::= var_type IDENT decl', dispatching on decl'
// to either a global variable (";") or a function definition
// ("(" params ")" block).
func (p *Parser) parseTypedDecl() ast.Decl {
	typ := p.parseVarType()
	nameTok := p.expect(token.Ident)

	if p.match(token.Semi) {
		p.next()
		return &ast.GlobalVar{Tok: nameTok, Type: typ, Name: nameTok.Lexeme}
	}

	p.expect(token.LParen)
	params, voidParams := p.parseParams()
	p.expect(token.RParen)

	proto := &ast.Prototype{
		Tok:        nameTok,
		Name:       nameTok.Lexeme,
		RetType:    typ,
		Params:     params,
		VoidParams: voidParams,
	}

	body := p.parseFuncBody(proto.RetType)
	return &ast.Function{Proto: proto, Body: body}
}

func (p *Parser) parseFuncBody(retType ast.Type) []ast.Stmt {
	return p.parseBlock(retType)
}

// parseTypeSpec implements type_spec ::= "void" | var_type.
func (p *Parser) parseTypeSpec() ast.Type {
	if p.match(token.KeywordVoid) {
		p.next()
		return ast.Void
	}
	return p.parseVarType()
}

// parseVarType implements var_type ::= "int" | "float" | "bool".
func (p *Parser) parseVarType() ast.Type {
	switch p.cur.Kind {
	case token.KeywordInt:
		p.next()
		return ast.Int
	case token.KeywordFloat:
		p.next()
		return ast.Float
	case token.KeywordBool:
		p.next()
		return ast.Bool
	default:
		p.errf("expected a type, found %s %q", p.cur.Kind, p.cur.Lexeme)
		return ast.Int
	}
}

// parseParams implements params ::= param_list | "void" | ε.
func (p *Parser) parseParams() (params []ast.Param, voidParams bool) {
	if p.match(token.RParen) {
		return nil, false
	}

	if p.match(token.KeywordVoid) {
		p.next()
		return nil, true
	}

	for {
		typ := p.parseVarType()
		nameTok := p.expect(token.Ident)
		params = append(params, ast.Param{Type: typ, Name: nameTok.Lexeme})

		if !p.match(token.Comma) {
			break
		}
		p.next()
	}

	return params, false
}
