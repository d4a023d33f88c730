package emit

import (
	"mccomp/ast"
	"mccomp/token"
	"mccomp/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	littypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// evalRValue visits e and returns its value, loading it first if e turned
// out to be a variable reference: a reference yields the slot itself, and
// it's left to the caller to decide whether to load or to store through it.
func (b *Builder) evalRValue(e ast.Expr) (value.Value, ast.Type) {
	b.isSlot = false
	e.Accept(b)
	v, t := b.val, b.typ
	if b.isSlot {
		v = b.curBlock.NewLoad(llvmType(t), v)
	}
	return v, t
}

func (b *Builder) VisitIntLit(n *ast.IntLit) {
	b.val, b.typ, b.isSlot = constant.NewInt(littypes.I32, int64(n.Value)), ast.Int, false
}

func (b *Builder) VisitFloatLit(n *ast.FloatLit) {
	b.val, b.typ, b.isSlot = constant.NewFloat(littypes.Float, float64(n.Value)), ast.Float, false
}

func (b *Builder) VisitBoolLit(n *ast.BoolLit) {
	b.val, b.typ, b.isSlot = constant.NewBool(n.Value), ast.Bool, false
}

func (b *Builder) VisitVarRef(n *ast.VarRef) {
	slot, ok := b.scope.Lookup(n.Name)
	if !ok {
		b.diag.Fail(n.Tok, "undefined variable %q", n.Name)
		b.val, b.typ, b.isSlot = constant.NewInt(littypes.I32, 0), ast.Int, false
		return
	}
	b.val, b.typ, b.isSlot = slot.Value, slot.Type, true
}

func (b *Builder) VisitUnary(n *ast.Unary) {
	v, t := b.evalRValue(n.X)

	switch n.Op {
	case token.Not:
		if t != ast.Bool {
			b.diag.Fail(n.Tok, "operand of ! must be bool, got %s", t)
		}
		b.val, b.typ = b.curBlock.NewXor(v, constant.NewBool(true)), ast.Bool

	case token.Minus:
		switch t {
		case ast.Bool:
			widened := b.widen(n.Tok, v, ast.Bool, ast.Int, false)
			b.val, b.typ = b.curBlock.NewSub(constant.NewInt(littypes.I32, 0), widened), ast.Int
		case ast.Float:
			b.val, b.typ = b.curBlock.NewFNeg(v), ast.Float
		default:
			b.val, b.typ = b.curBlock.NewSub(constant.NewInt(littypes.I32, 0), v), ast.Int
		}
	}
	b.isSlot = false
}

func (b *Builder) VisitBinary(n *ast.Binary) {
	switch n.Op {
	case token.Assign:
		b.emitAssign(n)
	case token.AndAnd, token.OrOr:
		b.emitLogical(n)
	default:
		lv, lt := b.evalRValue(n.X)
		rv, rt := b.evalRValue(n.Y)
		if isComparisonOp(n.Op) {
			b.val, b.typ = b.emitComparison(n.Tok, n.Op, lv, lt, rv, rt)
		} else {
			b.val, b.typ = b.emitArithmetic(n.Tok, n.Op, lv, lt, rv, rt)
		}
		b.isSlot = false
	}
}

// emitAssign implements the "=" contract: the left operand must be a slot
// or global, the right is loaded and widened to the left's type and
// stored, and the stored value is the expression's own result.
func (b *Builder) emitAssign(n *ast.Binary) {
	ref, ok := n.X.(*ast.VarRef)
	if !ok {
		b.diag.Fail(n.Tok, "left side of assignment must be a variable")
		b.val, b.typ, b.isSlot = constant.NewInt(littypes.I32, 0), ast.Int, false
		return
	}

	slot, ok := b.scope.Lookup(ref.Name)
	if !ok {
		b.diag.Fail(ref.Tok, "undefined variable %q", ref.Name)
		b.val, b.typ, b.isSlot = constant.NewInt(littypes.I32, 0), ast.Int, false
		return
	}

	rv, rt := b.evalRValue(n.Y)
	rv = b.widen(n.Tok, rv, rt, slot.Type, false)

	b.curBlock.NewStore(rv, slot.Value)
	b.val, b.typ, b.isSlot = rv, slot.Type, false
}

// emitLogical implements && / ||: the compile-time constant short circuit
// (a literal false/true left operand skips evaluating the right side
// entirely) plus genuine runtime short-circuit via branching whenever the
// left operand is not that constant literal.
func (b *Builder) emitLogical(n *ast.Binary) {
	opWord := "&&"
	if n.Op == token.OrOr {
		opWord = "||"
	}

	if lit, ok := n.X.(*ast.BoolLit); ok {
		if (n.Op == token.AndAnd && !lit.Value) || (n.Op == token.OrOr && lit.Value) {
			b.val, b.typ, b.isSlot = constant.NewBool(lit.Value), ast.Bool, false
			return
		}

		// Left is the non-short-circuiting constant (true for &&, false for
		// ||): both sides are still evaluated, but there is no decision to
		// branch on.
		lv, lt := b.evalRValue(n.X)
		if lt != ast.Bool {
			b.diag.Fail(n.Tok, "left operand of %s must be bool, got %s", opWord, lt)
		}
		rv, rt := b.evalRValue(n.Y)
		if rt != ast.Bool {
			b.diag.Fail(n.Tok, "right operand of %s must be bool, got %s", opWord, rt)
		}
		if n.Op == token.AndAnd {
			b.val = b.curBlock.NewAnd(lv, rv)
		} else {
			b.val = b.curBlock.NewOr(lv, rv)
		}
		b.typ, b.isSlot = ast.Bool, false
		return
	}

	lv, lt := b.evalRValue(n.X)
	if lt != ast.Bool {
		b.diag.Fail(n.Tok, "left operand of %s must be bool, got %s", opWord, lt)
	}
	lhsBlock := b.curBlock

	rhsBlock := b.curFunc.NewBlock(b.blockName(shortCircuitPrefix(n.Op) + ".rhs"))
	mergeBlock := b.curFunc.NewBlock(b.blockName(shortCircuitPrefix(n.Op) + ".end"))

	if n.Op == token.AndAnd {
		lhsBlock.NewCondBr(lv, rhsBlock, mergeBlock)
	} else {
		lhsBlock.NewCondBr(lv, mergeBlock, rhsBlock)
	}

	b.curBlock = rhsBlock
	rv, rt := b.evalRValue(n.Y)
	if rt != ast.Bool {
		b.diag.Fail(n.Tok, "right operand of %s must be bool, got %s", opWord, rt)
	}
	rhsEnd := b.curBlock
	rhsEnd.NewBr(mergeBlock)

	b.curBlock = mergeBlock
	shortCircuitValue := constant.NewBool(n.Op == token.OrOr)
	phi := mergeBlock.NewPhi(
		ir.NewIncoming(shortCircuitValue, lhsBlock),
		ir.NewIncoming(rv, rhsEnd),
	)
	b.val, b.typ, b.isSlot = phi, ast.Bool, false
}

func shortCircuitPrefix(op token.Kind) string {
	if op == token.AndAnd {
		return "and"
	}
	return "or"
}

// emitArithmetic implements + - * / % on any pair, widened to the common type
// (bool is treated as int for the purpose of selecting an instruction,
// since LLVM's i1 has no sensible division), rejecting division/remainder
// by a literal zero.
func (b *Builder) emitArithmetic(tok token.Token, op token.Kind, lv value.Value, lt ast.Type, rv value.Value, rt ast.Type) (value.Value, ast.Type) {
	common := types.Common(lt, rt)
	if common == ast.Bool {
		common = ast.Int
	}

	rvOrig := rv
	lv = b.widen(tok, lv, lt, common, false)
	rv = b.widen(tok, rv, rt, common, false)

	if (op == token.Slash || op == token.Percent) && isZeroLiteral(rvOrig) {
		b.diag.Fail(tok, "division by literal zero")
	}

	if common == ast.Float {
		switch op {
		case token.Plus:
			return b.curBlock.NewFAdd(lv, rv), ast.Float
		case token.Minus:
			return b.curBlock.NewFSub(lv, rv), ast.Float
		case token.Star:
			return b.curBlock.NewFMul(lv, rv), ast.Float
		case token.Slash:
			return b.curBlock.NewFDiv(lv, rv), ast.Float
		case token.Percent:
			return b.curBlock.NewFRem(lv, rv), ast.Float
		}
	}

	switch op {
	case token.Plus:
		return b.curBlock.NewAdd(lv, rv), ast.Int
	case token.Minus:
		return b.curBlock.NewSub(lv, rv), ast.Int
	case token.Star:
		return b.curBlock.NewMul(lv, rv), ast.Int
	case token.Slash:
		return b.curBlock.NewSDiv(lv, rv), ast.Int
	case token.Percent:
		return b.curBlock.NewSRem(lv, rv), ast.Int
	}

	b.diag.Fail(tok, "unsupported arithmetic operator %s", op)
	return lv, common
}

func isComparisonOp(op token.Kind) bool {
	switch op {
	case token.EqEq, token.NotEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return true
	}
	return false
}

// emitComparison implements comparisons, widening bool-vs-bool operands
// through int first for ordered comparisons while comparing equality
// directly.
func (b *Builder) emitComparison(tok token.Token, op token.Kind, lv value.Value, lt ast.Type, rv value.Value, rt ast.Type) (value.Value, ast.Type) {
	ordered := op != token.EqEq && op != token.NotEq
	if ordered && lt == ast.Bool && rt == ast.Bool {
		lv = b.widen(tok, lv, ast.Bool, ast.Int, false)
		rv = b.widen(tok, rv, ast.Bool, ast.Int, false)
		lt, rt = ast.Int, ast.Int
	}

	common := types.Common(lt, rt)
	lv = b.widen(tok, lv, lt, common, false)
	rv = b.widen(tok, rv, rt, common, false)

	if common == ast.Float {
		return b.curBlock.NewFCmp(fCmpPred(op), lv, rv), ast.Bool
	}
	return b.curBlock.NewICmp(iCmpPred(op), lv, rv), ast.Bool
}

func iCmpPred(op token.Kind) enum.IPred {
	switch op {
	case token.EqEq:
		return enum.IPredEQ
	case token.NotEq:
		return enum.IPredNE
	case token.Lt:
		return enum.IPredSLT
	case token.LtEq:
		return enum.IPredSLE
	case token.Gt:
		return enum.IPredSGT
	case token.GtEq:
		return enum.IPredSGE
	default:
		return enum.IPredEQ
	}
}

func fCmpPred(op token.Kind) enum.FPred {
	switch op {
	case token.EqEq:
		return enum.FPredOEQ
	case token.NotEq:
		return enum.FPredONE
	case token.Lt:
		return enum.FPredOLT
	case token.LtEq:
		return enum.FPredOLE
	case token.Gt:
		return enum.FPredOGT
	case token.GtEq:
		return enum.FPredOGE
	default:
		return enum.FPredOEQ
	}
}

// VisitCall resolves arity and per-argument widening.
func (b *Builder) VisitCall(n *ast.Call) {
	fn, ok := b.scope.Func(n.Callee)
	if !ok {
		b.diag.Fail(n.Tok, "call to undeclared function %q", n.Callee)
		b.val, b.typ, b.isSlot = constant.NewInt(littypes.I32, 0), ast.Int, false
		return
	}

	wantArgs := len(fn.Params)
	if fn.VoidParams {
		wantArgs = 0
	}
	if len(n.Args) != wantArgs {
		b.diag.Fail(n.Tok, "function %q expects %d argument(s), got %d", n.Callee, wantArgs, len(n.Args))
	}

	args := make([]value.Value, 0, len(n.Args))
	for i, a := range n.Args {
		av, at := b.evalRValue(a)
		if i < len(fn.Params) {
			av = b.widen(n.Tok, av, at, fn.Params[i], false)
		}
		args = append(args, av)
	}

	call := b.curBlock.NewCall(fn.IR, args...)
	b.val, b.typ, b.isSlot = call, fn.RetType, false
}
