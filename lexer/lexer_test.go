package lexer

import (
	"testing"

	"mccomp/token"
)

func scanAll(src string) []token.Token {
	l := New(token.NewFile("test.mc", src))
	var toks []token.Token
	for {
		t := l.Scan()
		toks = append(toks, t)
		if t.IsEOF() {
			return toks
		}
	}
}

func assertKinds(t *testing.T, src string, kinds ...token.Kind) {
	t.Helper()
	toks := scanAll(src)
	if len(toks) != len(kinds)+1 { // +1 for EOF
		t.Fatalf("%q: expected %d tokens, got %d: %v", src, len(kinds), len(toks)-1, toks)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("%q: token %d: expected %s, got %s", src, i, k, toks[i].Kind)
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	assertKinds(t, "int float bool void extern if else while return foo",
		token.KeywordInt, token.KeywordFloat, token.KeywordBool, token.KeywordVoid,
		token.KeywordExtern, token.KeywordIf, token.KeywordElse, token.KeywordWhile,
		token.KeywordReturn, token.Ident)
}

func TestBoolLiterals(t *testing.T) {
	assertKinds(t, "true false", token.BoolLit, token.BoolLit)
}

func TestNumericLiterals(t *testing.T) {
	assertKinds(t, "42 3.14 .5", token.IntLit, token.FloatLit, token.FloatLit)
}

func TestLookaheadOperators(t *testing.T) {
	assertKinds(t, "= == ! != < <= > >= && ||",
		token.Assign, token.EqEq, token.Not, token.NotEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.AndAnd, token.OrOr)
}

func TestStandaloneAmpOrBarIsIllegal(t *testing.T) {
	assertKinds(t, "& |", token.Illegal, token.Illegal)
}

func TestLineComment(t *testing.T) {
	assertKinds(t, "1 // comment here\n2", token.IntLit, token.IntLit)
}

func TestDivisionVsComment(t *testing.T) {
	assertKinds(t, "a / b", token.Ident, token.Slash, token.Ident)
}

func TestIllegalCharacter(t *testing.T) {
	toks := scanAll("int x = @;")
	found := false
	for _, tk := range toks {
		if tk.Kind == token.Illegal {
			found = true
			if tk.Lexeme != "@" {
				t.Errorf("expected lexeme @, got %q", tk.Lexeme)
			}
			if tk.Pos.Col != 9 {
				t.Errorf("expected col 9, got %d", tk.Pos.Col)
			}
		}
	}
	if !found {
		t.Fatal("expected an Illegal token")
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	toks := scanAll("int x;\nfloat y;")
	// "float" begins on line 2, column 1.
	for _, tk := range toks {
		if tk.Lexeme == "float" {
			if tk.Pos.Line != 2 || tk.Pos.Col != 1 {
				t.Errorf("expected float at 2:1, got %s", tk.Pos)
			}
			return
		}
	}
	t.Fatal("float token not found")
}

func TestEveryTokenHasPositiveLineAndCol(t *testing.T) {
	toks := scanAll("int main() {\n  return 0;\n}")
	for _, tk := range toks {
		if tk.Pos.Line <= 0 || tk.Pos.Col <= 0 {
			t.Errorf("token %v has non-positive position", tk)
		}
	}
}
