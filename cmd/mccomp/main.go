// Command mccomp compiles a single mini-C source file to LLVM textual IR.
package main

import (
	"fmt"
	"os"

	"mccomp/diag"
	"mccomp/emit"
	"mccomp/lexer"
	"mccomp/parser"
	"mccomp/token"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: mccomp <source-file>")
		os.Exit(1)
	}

	sourcePath := os.Args[1]
	file := token.NewFile(sourcePath, nil)
	if file.Err != nil {
		fmt.Fprintf(os.Stderr, "mccomp: %v\n", file.Err)
		os.Exit(1)
	}

	h := diag.NewHandler(file)

	if !lexOnly(file, h) {
		h.Report()
		os.Exit(1)
	}

	buf := token.NewBuffer(lexer.New(file))
	prog := parser.New(file, buf, h).Parse()
	if h.Failed() {
		h.Report()
		os.Exit(1)
	}

	mod := emit.Emit(prog, h)
	if h.Failed() {
		h.Report()
		os.Exit(1)
	}

	outPath := "output.ll"
	if err := os.WriteFile(outPath, []byte(mod.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "mccomp: %v\n", err)
		os.Exit(1)
	}

	h.Report()
	fmt.Printf("mccomp: wrote %s\n", outPath)
}

// lexOnly runs a throwaway lex pass over file to catch invalid characters
// before parsing begins, reporting the first one found. The parser gets its
// own fresh Lexer/Buffer pair afterward, since a Lexer has no way to rewind
// once exhausted.
func lexOnly(file *token.File, h *diag.Handler) bool {
	lx := lexer.New(file)
	for {
		tok := lx.Scan()
		if tok.Kind == token.Illegal {
			h.Fail(tok, "invalid character %q", tok.Lexeme)
			return false
		}
		if tok.IsEOF() {
			return true
		}
	}
}
