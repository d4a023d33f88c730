// Package emit implements the merged type checker and IR emitter: a
// Builder visitor that walks the AST once (after a first pass registers
// every top-level signature and global) and drives github.com/llir/llvm's
// construction API to produce a *ir.Module.
//
// Builder is a Visitor (mccomp/ast); each VisitX method leaves its result
// in the val/typ/isSlot accumulator fields, carrying a host IR value.Value
// and a mini-C type rather than a bare result index.
package emit

import (
	"fmt"

	"mccomp/ast"
	"mccomp/diag"
	"mccomp/token"
	"mccomp/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	littypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Builder holds all state needed while emitting one compilation unit.
type Builder struct {
	diag  *diag.Handler
	mod   *ir.Module
	scope *types.Stack

	curFunc  *ir.Func
	curBlock *ir.Block
	entry    *ir.Block
	blockCtr int

	// val/typ/isSlot are the result of the most recently visited expression
	// node. isSlot marks a VarRef result specifically: a variable reference
	// yields the slot object itself, and it is up to the consumer
	// (evalRValue, or emitAssign's left side) to decide whether to load it
	// or store through it.
	val    value.Value
	typ    ast.Type
	isSlot bool
}

var _ ast.Visitor = (*Builder)(nil)

// Emit type-checks and emits prog into a fresh host IR module. Emission
// proceeds in two passes exactly like a linker would resolve forward
// references: first every prototype, function signature, and global is
// registered (so a function may call another declared later in the file),
// then every function body is walked and lowered. Callers must check h for
// failure before trusting or printing the returned module.
func Emit(prog *ast.Program, h *diag.Handler) *ir.Module {
	b := &Builder{
		diag:  h,
		mod:   ir.NewModule(),
		scope: types.NewStack(),
	}

	for _, d := range prog.Decls {
		if h.Failed() {
			return b.mod
		}
		switch n := d.(type) {
		case *ast.Prototype:
			b.declareFunc(n)
		case *ast.Function:
			b.declareFunc(n.Proto)
		case *ast.GlobalVar:
			b.declareGlobal(n)
		}
	}

	for _, d := range prog.Decls {
		if h.Failed() {
			return b.mod
		}
		if fn, ok := d.(*ast.Function); ok {
			fn.Accept(b)
		}
	}

	return b.mod
}

func llvmType(t ast.Type) littypes.Type {
	switch t {
	case ast.Bool:
		return littypes.I1
	case ast.Int:
		return littypes.I32
	case ast.Float:
		return littypes.Float
	default:
		return littypes.Void
	}
}

func zeroConstant(t ast.Type) constant.Constant {
	switch t {
	case ast.Bool:
		return constant.NewBool(false)
	case ast.Float:
		return constant.NewFloat(littypes.Float, 0)
	default:
		return constant.NewInt(littypes.I32, 0)
	}
}

func isZeroLiteral(v value.Value) bool {
	switch c := v.(type) {
	case *constant.Int:
		return c.X.Sign() == 0
	case *constant.Float:
		f, _ := c.X.Float64()
		return f == 0
	}
	return false
}

// widen converts v of type from to type to, following the bool<int<float
// lattice (mccomp/types). A narrowing conversion is always a semantic error.
// warn additionally reports a widening as a warning, used only for Return:
// an implicit widening on return is legal but worth flagging.
func (b *Builder) widen(tok token.Token, v value.Value, from, to ast.Type, warn bool) value.Value {
	if from == to {
		return v
	}
	if types.IsNarrowing(from, to) {
		b.diag.Fail(tok, "cannot implicitly narrow %s to %s", from, to)
		return v
	}
	if warn {
		b.diag.Warn(tok, "implicit widening in return: %s widened to %s", from, to)
	}
	return b.convert(v, from, to)
}

func (b *Builder) convert(v value.Value, from, to ast.Type) value.Value {
	switch {
	case from == ast.Bool && to == ast.Int:
		return b.curBlock.NewZExt(v, littypes.I32)
	case from == ast.Bool && to == ast.Float:
		return b.curBlock.NewSIToFP(b.curBlock.NewZExt(v, littypes.I32), littypes.Float)
	case from == ast.Int && to == ast.Float:
		return b.curBlock.NewSIToFP(v, littypes.Float)
	default:
		return v
	}
}

// blockName returns a fresh, function-unique basic block name built from
// prefix, used for the extra blocks If/While/short-circuit && / || emission
// introduces.
func (b *Builder) blockName(prefix string) string {
	b.blockCtr++
	return fmt.Sprintf("%s.%d", prefix, b.blockCtr)
}

// verifyBlocks checks that every block Builder created for fn ends in
// exactly one terminator. github.com/llir/llvm is a pure construction/
// printer library with no analysis passes of its own (see DESIGN.md), so
// this is a direct structural check standing in for one; the construction
// logic in stmt.go/decl.go is meant to guarantee the property by itself,
// and this is the safety net.
func (b *Builder) verifyBlocks(tok token.Token, f *ir.Func) {
	for _, blk := range f.Blocks {
		if blk.Term == nil {
			b.diag.Fail(tok, "internal error: a basic block in %q has no terminator", f.Name())
			return
		}
	}
}
