// Package types implements the scoped symbol tables (a stack of local
// scopes plus a flat global map) and the bool<int<float widening lattice.
// Each stored slot carries both its mini-C Type and the host IR
// value.Value backing it, since a "stack slot" is exactly that host
// object — an alloca or a global.
package types

import (
	"mccomp/ast"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// Slot is a name's binding: its declared mini-C type and the IR storage
// location (alloca or global variable) backing it.
type Slot struct {
	Type  ast.Type
	Value value.Value
}

// Func records a declared or defined function's signature and its IR
// object, used both for call-site arity/type checking and for matching a
// definition against a prior prototype.
type Func struct {
	Name       string
	RetType    ast.Type
	Params     []ast.Type
	VoidParams bool
	Extern     bool
	Defined    bool
	IR         *ir.Func
}

// rank orders the three scalar types for widening: Bool < Int < Float. Void
// has no rank and never widens.
func rank(t ast.Type) int {
	switch t {
	case ast.Bool:
		return 0
	case ast.Int:
		return 1
	case ast.Float:
		return 2
	default:
		return -1
	}
}

// CanWiden reports whether a value of type from may be implicitly converted
// to type to without narrowing (rank(from) <= rank(to)).
func CanWiden(from, to ast.Type) bool {
	rf, rt := rank(from), rank(to)
	return rf >= 0 && rt >= 0 && rf <= rt
}

// IsNarrowing is the complement of CanWiden for two non-void numeric-or-bool
// types: converting from to a lower-ranked to is a narrowing error.
func IsNarrowing(from, to ast.Type) bool {
	rf, rt := rank(from), rank(to)
	return rf >= 0 && rt >= 0 && rf > rt
}

// Common returns the wider of a and b, used to promote both operands of a
// binary arithmetic or comparison expression to a shared type.
func Common(a, b ast.Type) ast.Type {
	if rank(a) >= rank(b) {
		return a
	}
	return b
}
