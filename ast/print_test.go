package ast

import (
	"strings"
	"testing"

	"mccomp/token"
)

func TestPrintMinimalFunction(t *testing.T) {
	tok := token.Token{}
	prog := &Program{
		Decls: []Decl{
			&Function{
				Proto: &Prototype{Tok: tok, Name: "main", RetType: Int},
				Body: []Stmt{
					&Return{Tok: tok, Value: &IntLit{Tok: tok, Value: 0}, FuncType: Int},
				},
			},
		},
	}

	out := NewPrinter().Print(prog)
	if !strings.Contains(out, "int main()") {
		t.Errorf("expected printed output to contain the signature, got: %q", out)
	}
	if !strings.Contains(out, "return 0;") {
		t.Errorf("expected printed output to contain the return statement, got: %q", out)
	}
}

func TestPrintBinaryExpression(t *testing.T) {
	tok := token.Token{}
	bin := &Binary{Tok: tok, Op: token.Plus, X: &VarRef{Tok: tok, Name: "a"}, Y: &VarRef{Tok: tok, Name: "b"}}

	prog := &Program{
		Decls: []Decl{
			&Function{
				Proto: &Prototype{Tok: tok, Name: "f", RetType: Int},
				Body:  []Stmt{&ExprStmt{Tok: tok, X: bin}},
			},
		},
	}

	out := NewPrinter().Print(prog)
	if !strings.Contains(out, "(a + b);") {
		t.Errorf("expected printed output to contain the binary expression, got: %q", out)
	}
}
