package token

import "testing"

func TestIsVarType(t *testing.T) {
	cases := map[Kind]bool{
		KeywordInt:    true,
		KeywordFloat:  true,
		KeywordBool:   true,
		KeywordVoid:   false,
		KeywordExtern: false,
		Ident:         false,
	}

	for k, want := range cases {
		if got := k.IsVarType(); got != want {
			t.Errorf("%s.IsVarType() = %v, want %v", k, got, want)
		}
	}
}

func TestTokenIsEOF(t *testing.T) {
	if !(Token{Kind: EOF}).IsEOF() {
		t.Error("expected an EOF-kind token to report IsEOF")
	}
	if (Token{Kind: Ident, Lexeme: "x"}).IsEOF() {
		t.Error("expected a non-EOF token to not report IsEOF")
	}
}

func TestKindStringFallsBackForUnknownKind(t *testing.T) {
	unknown := Kind(9999)
	if unknown.String() == "" {
		t.Error("expected a non-empty fallback string for an unregistered Kind")
	}
}
