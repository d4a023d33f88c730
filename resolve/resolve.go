// Package resolve implements the expression resolver: it turns the flat
// token vector the parser captures for one expression into an expression
// AST, by repeatedly splitting the vector at the lowest-precedence
// operator found at parenthesis depth zero.
//
// This is a pure function of a token slice; it knows nothing about the
// parser's grammar recognition and is tested standalone.
package resolve

import (
	"strconv"

	"mccomp/ast"
	"mccomp/diag"
	"mccomp/token"
)

// precTiers lists binary operator kinds from loosest to tightest binding;
// resolution splits at the loosest tier present. Assignment is handled
// separately: it binds loosest of all and is right-associative, whereas
// every tier below is left-associative.
var precTiers = [][]token.Kind{
	{token.OrOr},
	{token.AndAnd},
	{token.EqEq, token.NotEq},
	{token.Lt, token.LtEq, token.Gt, token.GtEq},
	{token.Plus, token.Minus},
	{token.Star, token.Slash, token.Percent},
}

// Resolve builds one expression AST node from toks, the flat, in-source-order
// token sequence the parser collected for a single expression.
func Resolve(toks []token.Token, h *diag.Handler) ast.Expr {
	if len(toks) == 0 {
		panic("resolve: empty token vector")
	}

	if len(toks) == 1 {
		return atom(toks[0], h)
	}

	if isUnaryOp(toks[0].Kind) && !hasBinarySplit(toks[1:]) {
		operand := Resolve(toks[1:], h)
		return &ast.Unary{Tok: toks[0], Op: toks[0].Kind, X: operand}
	}

	if toks[0].Kind == token.LParen && matchingParen(toks, 0) == len(toks)-1 {
		return Resolve(toks[1:len(toks)-1], h)
	}

	if toks[0].Kind == token.Ident && len(toks) > 1 && toks[1].Kind == token.LParen {
		if close := matchingParen(toks, 1); close == len(toks)-1 {
			return &ast.Call{
				Tok:    toks[0],
				Callee: toks[0].Lexeme,
				Args:   resolveArgs(toks[2:close], h),
			}
		}
	}

	if idx := assignSplit(toks); idx >= 0 {
		left := Resolve(toks[:idx], h)
		right := Resolve(toks[idx+1:], h)
		return &ast.Binary{Tok: toks[idx], Op: token.Assign, X: left, Y: right}
	}

	if idx, ok := binarySplit(toks); ok {
		left := Resolve(toks[:idx], h)
		right := Resolve(toks[idx+1:], h)
		return &ast.Binary{Tok: toks[idx], Op: toks[idx].Kind, X: left, Y: right}
	}

	h.Fail(toks[0], "invalid expression")
	return &ast.IntLit{Tok: toks[0], Value: 0}
}

func isUnaryOp(k token.Kind) bool { return k == token.Not || k == token.Minus }

// atom resolves a single-token expression: a literal or a variable reference.
func atom(t token.Token, h *diag.Handler) ast.Expr {
	switch t.Kind {
	case token.IntLit:
		v, err := strconv.ParseInt(t.Lexeme, 10, 32)
		if err != nil {
			h.Warn(t, "integer literal %q out of range, clamped to 0", t.Lexeme)
			v = 0
		}
		return &ast.IntLit{Tok: t, Value: int32(v)}

	case token.FloatLit:
		v, err := strconv.ParseFloat(t.Lexeme, 32)
		if err != nil {
			h.Warn(t, "float literal %q out of range, clamped to 0", t.Lexeme)
			v = 0
		}
		return &ast.FloatLit{Tok: t, Value: float32(v)}

	case token.BoolLit:
		return &ast.BoolLit{Tok: t, Value: t.Lexeme == "true"}

	case token.Ident:
		return &ast.VarRef{Tok: t, Name: t.Lexeme}

	default:
		h.Fail(t, "invalid expression")
		return &ast.IntLit{Tok: t, Value: 0}
	}
}

// matchingParen returns the index in toks of the ')' matching the '(' at
// openIdx, or -1 if unbalanced.
func matchingParen(toks []token.Token, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(toks); i++ {
		switch toks[i].Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// depths returns, for each token, its parenthesis nesting depth (0 = top
// level of this vector).
func depths(toks []token.Token) []int {
	d := make([]int, len(toks))
	depth := 0
	for i, t := range toks {
		if t.Kind == token.RParen {
			depth--
		}
		d[i] = depth
		if t.Kind == token.LParen {
			depth++
		}
	}
	return d
}

// isOperandEnd reports whether a token could be the last token of an operand,
// i.e. whether a following '-' is a binary operator rather than unary minus.
func isOperandEnd(k token.Kind) bool {
	switch k {
	case token.Ident, token.IntLit, token.FloatLit, token.BoolLit, token.RParen:
		return true
	default:
		return false
	}
}

// assignSplit finds the earliest depth-0 '=' in toks, giving right-associative
// assignment. Returns -1 if none.
func assignSplit(toks []token.Token) int {
	d := depths(toks)
	for i, t := range toks {
		if i > 0 && d[i] == 0 && t.Kind == token.Assign {
			return i
		}
	}
	return -1
}

// binarySplit finds the split point for a non-assignment binary expression:
// the loosest precedence tier present at depth 0, using the rightmost
// occurrence within that tier so that same-precedence operators associate
// left (splitting at the earliest occurrence instead produces the wrong,
// right-associative tree for left-associative operators like '-' and '/';
// this implementation picks rightmost and documents the choice).
func binarySplit(toks []token.Token) (int, bool) {
	d := depths(toks)

	for _, tier := range precTiers {
		best := -1
		for i, t := range toks {
			if i == 0 || d[i] != 0 {
				continue
			}
			if !kindIn(t.Kind, tier) {
				continue
			}
			if t.Kind == token.Minus && !isOperandEnd(toks[i-1].Kind) {
				continue // unary minus in this position, not a binary candidate
			}
			best = i
		}
		if best >= 0 {
			return best, true
		}
	}

	return -1, false
}

// hasBinarySplit reports whether toks contains any valid split point at all
// (assignment or a binary tier), used to decide whether a leading '!'/'-' is
// unary (operand has no top-level binary operator) or the vector should fall
// through to the general binary case.
func hasBinarySplit(toks []token.Token) bool {
	if len(toks) == 0 {
		return false
	}
	if assignSplit(toks) >= 0 {
		return true
	}
	_, ok := binarySplit(toks)
	return ok
}

func kindIn(k token.Kind, set []token.Kind) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}
	return false
}

// resolveArgs splits a call's argument token list on top-level commas and
// resolves each argument independently.
func resolveArgs(toks []token.Token, h *diag.Handler) []ast.Expr {
	if len(toks) == 0 {
		return nil
	}

	groups := splitArgs(toks)
	args := make([]ast.Expr, len(groups))
	for i, g := range groups {
		args[i] = Resolve(g, h)
	}
	return args
}

func splitArgs(toks []token.Token) [][]token.Token {
	d := depths(toks)
	var groups [][]token.Token
	start := 0
	for i, t := range toks {
		if d[i] == 0 && t.Kind == token.Comma {
			groups = append(groups, toks[start:i])
			start = i + 1
		}
	}
	groups = append(groups, toks[start:])
	return groups
}
