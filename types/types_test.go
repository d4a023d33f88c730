package types

import (
	"testing"

	"mccomp/ast"
)

func TestCanWidenMonotonicity(t *testing.T) {
	cases := []struct {
		from, to ast.Type
		want     bool
	}{
		{ast.Bool, ast.Bool, true},
		{ast.Bool, ast.Int, true},
		{ast.Bool, ast.Float, true},
		{ast.Int, ast.Float, true},
		{ast.Int, ast.Bool, false},
		{ast.Float, ast.Int, false},
		{ast.Float, ast.Bool, false},
	}

	for _, c := range cases {
		if got := CanWiden(c.from, c.to); got != c.want {
			t.Errorf("CanWiden(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsNarrowingComplementsCanWiden(t *testing.T) {
	types := []ast.Type{ast.Bool, ast.Int, ast.Float}
	for _, a := range types {
		for _, b := range types {
			if CanWiden(a, b) == IsNarrowing(a, b) {
				t.Errorf("CanWiden(%s,%s) and IsNarrowing(%s,%s) agree, should be exclusive", a, b, a, b)
			}
		}
	}
}

func TestCommonPicksWiderType(t *testing.T) {
	if Common(ast.Bool, ast.Int) != ast.Int {
		t.Error("expected Common(bool, int) == int")
	}
	if Common(ast.Int, ast.Float) != ast.Float {
		t.Error("expected Common(int, float) == float")
	}
	if Common(ast.Float, ast.Bool) != ast.Float {
		t.Error("expected Common(float, bool) == float")
	}
}

func TestScopeShadowing(t *testing.T) {
	s := NewStack()
	s.Push()
	outer := &Slot{Type: ast.Int}
	if !s.Declare("x", outer) {
		t.Fatal("expected first declaration of x to succeed")
	}

	s.Push()
	inner := &Slot{Type: ast.Float}
	if !s.Declare("x", inner) {
		t.Fatal("expected shadowing declaration in inner scope to succeed")
	}

	got, ok := s.Lookup("x")
	if !ok || got != inner {
		t.Fatal("expected lookup to resolve to the innermost binding")
	}

	s.Pop()
	got, ok = s.Lookup("x")
	if !ok || got != outer {
		t.Fatal("expected lookup after popping inner scope to resolve to the outer binding")
	}
}

func TestSameScopeRedeclarationRejected(t *testing.T) {
	s := NewStack()
	s.Push()
	s.Declare("x", &Slot{Type: ast.Int})
	if s.Declare("x", &Slot{Type: ast.Float}) {
		t.Fatal("expected same-scope redeclaration to fail")
	}
}

func TestGlobalFallback(t *testing.T) {
	s := NewStack()
	s.DeclareGlobal("g", &Slot{Type: ast.Int})
	s.Push()
	got, ok := s.Lookup("g")
	if !ok || got.Type != ast.Int {
		t.Fatal("expected lookup to fall back to global map")
	}
}
