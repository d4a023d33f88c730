// Package diag renders and accumulates compiler diagnostics, combining an
// accumulated error list with a caret-pointing source-line formatter into
// one component shared by the lexer, parser, resolver, and emitter.
//
// Only the first fatal diagnostic of a compilation is ever surfaced
// (lexical errors abort immediately; syntax errors latch one per syntactic
// unit; semantic errors stop emission) — Fail therefore only records its
// first call. Warnings never latch: every implicit-widening or
// out-of-range warning is kept and printed.
package diag

import (
	"fmt"
	"os"
	"strings"

	"mccomp/token"
)

type Handler struct {
	file     *token.File
	failed   bool
	err      error
	warnings []string
}

func NewHandler(file *token.File) *Handler {
	return &Handler{file: file}
}

// Fail records a fatal diagnostic at tok. Only the first call has any
// effect; later calls are ignored so that one bad construct does not
// cascade into a wall of derived errors.
func (h *Handler) Fail(tok token.Token, format string, args ...any) {
	if h.failed {
		return
	}
	h.failed = true
	h.err = h.render("error", tok, format, args...)
}

// Warn records a non-fatal diagnostic. Always recorded, never latched.
func (h *Handler) Warn(tok token.Token, format string, args ...any) {
	h.warnings = append(h.warnings, h.render("warning", tok, format, args...).Error())
}

// Failed reports whether Fail has been called.
func (h *Handler) Failed() bool { return h.failed }

// Err returns the first fatal diagnostic, or nil if none occurred.
func (h *Handler) Err() error { return h.err }

// Warnings returns all warnings recorded so far, in order.
func (h *Handler) Warnings() []string { return h.warnings }

// Report writes all warnings, then the fatal error (if any), to stderr.
func (h *Handler) Report() {
	for _, w := range h.warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	if h.err != nil {
		fmt.Fprintln(os.Stderr, h.err)
	}
}

func (h *Handler) render(level string, tok token.Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)

	name := "<input>"
	line := ""
	if h.file != nil {
		if h.file.Name != "" {
			name = h.file.Name
		}
		line = h.file.Line(tok.Pos.Line)
	}

	col := tok.Pos.Col
	length := len(tok.Lexeme)
	if length == 0 {
		length = 1
	}
	caret := strings.Repeat(" ", max(col-1, 0)) + strings.Repeat("^", length)

	return fmt.Errorf("%s:%d:%d: %s: %s\n%4d | %s\n     | %s",
		name, tok.Pos.Line, tok.Pos.Col, level, msg, tok.Pos.Line, line, caret)
}
