package parser

import (
	"testing"

	"mccomp/ast"
	"mccomp/diag"
	"mccomp/lexer"
	"mccomp/token"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *diag.Handler) {
	t.Helper()
	file := token.NewFile("test.c", src)
	buf := token.NewBuffer(lexer.New(file))
	h := diag.NewHandler(file)
	p := New(file, buf, h)
	return p.Parse(), h
}

func TestParseMinimalMain(t *testing.T) {
	prog, h := parseSrc(t, "int main() { return 0; }")
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}

	fn, ok := prog.Decls[0].(*ast.Function)
	if !ok {
		t.Fatalf("expected *ast.Function, got %T", prog.Decls[0])
	}
	if fn.Proto.Name != "main" || fn.Proto.RetType != ast.Int {
		t.Fatalf("unexpected prototype: %+v", fn.Proto)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body))
	}
	ret, ok := fn.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", fn.Body[0])
	}
	lit, ok := ret.Value.(*ast.IntLit)
	if !ok || lit.Value != 0 {
		t.Fatalf("expected return 0, got %#v", ret.Value)
	}
}

func TestParseFunctionWithParamsAndBinaryReturn(t *testing.T) {
	prog, h := parseSrc(t, "float f(int a, int b) { return a + b; }")
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}

	fn := prog.Decls[0].(*ast.Function)
	if fn.Proto.RetType != ast.Float {
		t.Fatalf("expected float return type, got %s", fn.Proto.RetType)
	}
	if len(fn.Proto.Params) != 2 || fn.Proto.Params[0].Name != "a" || fn.Proto.Params[1].Name != "b" {
		t.Fatalf("unexpected params: %+v", fn.Proto.Params)
	}

	ret := fn.Body[0].(*ast.Return)
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op != token.Plus {
		t.Fatalf("expected a + b binary, got %#v", ret.Value)
	}
}

func TestParseExternAndCall(t *testing.T) {
	src := `
extern int printInt(int i);
int main() {
	printInt(42);
	return 0;
}`
	prog, h := parseSrc(t, src)
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 decls, got %d", len(prog.Decls))
	}

	proto, ok := prog.Decls[0].(*ast.Prototype)
	if !ok || !proto.Extern || proto.Name != "printInt" {
		t.Fatalf("unexpected extern decl: %#v", prog.Decls[0])
	}

	main := prog.Decls[1].(*ast.Function)
	exprStmt, ok := main.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", main.Body[0])
	}
	call, ok := exprStmt.X.(*ast.Call)
	if !ok || call.Callee != "printInt" || len(call.Args) != 1 {
		t.Fatalf("unexpected call: %#v", exprStmt.X)
	}
}

func TestParseIfElseNesting(t *testing.T) {
	src := `
int main() {
	int x;
	x = 1;
	if (x < 10) {
		x = 2;
	} else {
		if (x > 0) {
			x = 3;
		}
	}
	return x;
}`
	prog, h := parseSrc(t, src)
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}

	fn := prog.Decls[0].(*ast.Function)
	if len(fn.Body) != 4 {
		t.Fatalf("expected 4 statements (vardecl, assign, if, return), got %d", len(fn.Body))
	}

	ifStmt, ok := fn.Body[2].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", fn.Body[2])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("unexpected then/else lengths: then=%d else=%d", len(ifStmt.Then), len(ifStmt.Else))
	}

	nested, ok := ifStmt.Else[0].(*ast.If)
	if !ok {
		t.Fatalf("expected nested *ast.If in else branch, got %T", ifStmt.Else[0])
	}
	if nested.Else != nil {
		t.Fatalf("expected nested if to have no else branch, got %#v", nested.Else)
	}
}

func TestParseWhileLoop(t *testing.T) {
	src := `
int main() {
	int i;
	i = 0;
	while (i < 10) {
		i = i + 1;
	}
	return i;
}`
	prog, h := parseSrc(t, src)
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}

	fn := prog.Decls[0].(*ast.Function)
	loop, ok := fn.Body[2].(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %T", fn.Body[2])
	}
	if len(loop.Body) != 1 {
		t.Fatalf("expected 1 statement in while body, got %d", len(loop.Body))
	}
}

func TestParseGlobalVariable(t *testing.T) {
	src := `
int counter;
void inc() {
	counter = counter + 1;
}`
	prog, h := parseSrc(t, src)
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 decls, got %d", len(prog.Decls))
	}

	g, ok := prog.Decls[0].(*ast.GlobalVar)
	if !ok || g.Name != "counter" || g.Type != ast.Int {
		t.Fatalf("unexpected global: %#v", prog.Decls[0])
	}

	fn := prog.Decls[1].(*ast.Function)
	if fn.Proto.RetType != ast.Void {
		t.Fatalf("expected void return type, got %s", fn.Proto.RetType)
	}
}

func TestParseVoidParamsMarker(t *testing.T) {
	prog, h := parseSrc(t, "int f(void) { return 0; }")
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}
	fn := prog.Decls[0].(*ast.Function)
	if !fn.Proto.VoidParams || len(fn.Proto.Params) != 0 {
		t.Fatalf("expected explicit void params, got %+v", fn.Proto)
	}
}

func TestParseLeftAssociativeSubtractionInReturn(t *testing.T) {
	prog, h := parseSrc(t, "int main() { return 10 - 3 - 2; }")
	if h.Failed() {
		t.Fatalf("unexpected error: %v", h.Err())
	}

	fn := prog.Decls[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)

	// (10 - 3) - 2, so the outer node's right operand must be the literal 2.
	outer, ok := ret.Value.(*ast.Binary)
	if !ok || outer.Op != token.Minus {
		t.Fatalf("expected outer minus, got %#v", ret.Value)
	}
	rightLit, ok := outer.Y.(*ast.IntLit)
	if !ok || rightLit.Value != 2 {
		t.Fatalf("expected outer right operand to be literal 2, got %#v", outer.Y)
	}
	inner, ok := outer.X.(*ast.Binary)
	if !ok || inner.Op != token.Minus {
		t.Fatalf("expected inner minus on the left, got %#v", outer.X)
	}
}

func TestParseErrorRecoverySkipsToNextDeclaration(t *testing.T) {
	src := "@@@\nint main() { return 0; }"
	prog, h := parseSrc(t, src)
	if !h.Failed() {
		t.Fatal("expected a syntax error")
	}
	// syncToNextDecl should discard the stray tokens and still find main().
	found := false
	for _, d := range prog.Decls {
		if fn, ok := d.(*ast.Function); ok && fn.Proto.Name == "main" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected error recovery to still parse the following main()")
	}
}
