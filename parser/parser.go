// Package parser implements the mini-C predictive recursive-descent parser:
// a two-token look-ahead used only to distinguish an assignment expression
// "IDENT =" from any other expression, one latched diagnostic per syntactic
// unit, and the statement-queue-plus-reifier technique for turning a flat
// parse of a block's statements into properly nested If/While bodies
// (decl.go, stmt.go implement the grammar; expr.go captures expressions as
// flat token vectors for package resolve to build).
package parser

import (
	"mccomp/ast"
	"mccomp/diag"
	"mccomp/token"
)

// Parser holds all state needed by the recursive-descent productions.
// Per-declaration context that would otherwise live in module-scope
// accumulators (such as the enclosing function's return type) is passed
// down the productions as arguments instead; the only per-declaration field
// is panicked, reset between top-level declarations.
type Parser struct {
	file *token.File
	buf  *token.Buffer
	diag *diag.Handler

	cur token.Token

	// panicked latches at most one diagnostic per syntactic unit (a single
	// top-level declaration). Reset by Parse before each top-level declaration.
	panicked bool
}

// New returns a Parser reading from buf, reporting diagnostics against file
// through h.
func New(file *token.File, buf *token.Buffer, h *diag.Handler) *Parser {
	p := &Parser{file: file, buf: buf, diag: h}
	p.cur = p.buf.Advance()
	return p
}

// Parse consumes the whole token stream and returns the resulting program.
// Even after an error it returns whatever partial program was recognized;
// callers must check the diag.Handler for failure before trusting it.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}

	for !p.cur.IsEOF() {
		p.panicked = false
		d := p.parseTopLevel()
		if d != nil {
			prog.Decls = append(prog.Decls, d)
		}
		if p.panicked {
			p.syncToNextDecl()
		}
	}

	return prog
}

// next dequeues the next token into cur.
func (p *Parser) next() token.Token {
	prev := p.cur
	p.cur = p.buf.Advance()
	return prev
}

// peek returns the token n positions past cur (peek(0) is the token right
// after cur); only used for the two-token look-ahead in expr.go.
func (p *Parser) peek(n int) token.Token {
	return p.buf.Peek(n)
}

func (p *Parser) match(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) matchAny(ks ...token.Kind) bool {
	for _, k := range ks {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// expect consumes cur if it has kind k, else reports one diagnostic (latched)
// and returns the zero Token without consuming anything.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.match(k) {
		return p.next()
	}
	p.errf("expected %s, found %s %q", k, p.cur.Kind, p.cur.Lexeme)
	return token.Token{}
}

// errf reports a syntax error at cur. Only the first call per syntactic unit
// has any effect (both here, via panicked, and globally via diag's latch).
func (p *Parser) errf(format string, args ...any) {
	if p.panicked {
		return
	}
	p.panicked = true
	p.diag.Fail(p.cur, format, args...)
}

// syncToNextDecl discards tokens until it finds one that plausibly begins a
// new top-level declaration, so one malformed function does not prevent the
// rest of the file from being recognized.
func (p *Parser) syncToNextDecl() {
	for !p.cur.IsEOF() {
		if p.cur.Kind.IsVarType() || p.matchAny(token.KeywordVoid, token.KeywordExtern) {
			return
		}
		p.next()
	}
}
