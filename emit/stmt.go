package emit

import (
	"mccomp/ast"
	"mccomp/types"

	"github.com/llir/llvm/ir/value"
)

// emitStmts emits stmts into the current block, stopping as soon as the
// block already ends in a terminator (a return, or an if/while whose every
// live path returned) so no instruction is ever appended after one.
func (b *Builder) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		if b.curBlock.Term != nil {
			return
		}
		s.Accept(b)
	}
}

// VisitLocalVar allocates the slot in the function's entry block regardless
// of which nested scope the declaration lexically belongs to, then binds it
// in the current (innermost) scope.
func (b *Builder) VisitLocalVar(n *ast.LocalVar) {
	slot := b.entry.NewAlloca(llvmType(n.Type))
	if !b.scope.Declare(n.Name, &types.Slot{Type: n.Type, Value: slot}) {
		b.diag.Fail(n.Tok, "redeclaration of %q in the same scope", n.Name)
	}
}

func (b *Builder) VisitExprStmt(n *ast.ExprStmt) {
	n.X.Accept(b)
}

// evalCond evaluates cond and checks it is exactly bool, per the rule shared
// by If and While ("subject to the same bool rule").
func (b *Builder) evalCond(cond ast.Expr) value.Value {
	v, t := b.evalRValue(cond)
	if t != ast.Bool {
		b.diag.Fail(cond.Token(), "condition must be of type bool, got %s", t)
	}
	return v
}

// VisitIf materializes then/else/end blocks. When both branches end in a
// return, end has no live predecessor; it is marked unreachable rather than
// physically removed from the function, which keeps the IR always
// well-formed even if a later reviewer adds dead code after the if.
func (b *Builder) VisitIf(n *ast.If) {
	condVal := b.evalCond(n.Cond)

	thenBlock := b.curFunc.NewBlock(b.blockName("if_then"))
	endBlock := b.curFunc.NewBlock(b.blockName("if_end"))

	if n.Else != nil {
		elseBlock := b.curFunc.NewBlock(b.blockName("if_else"))
		b.curBlock.NewCondBr(condVal, thenBlock, elseBlock)

		b.curBlock = thenBlock
		b.scope.Push()
		b.emitStmts(n.Then)
		thenReturns := b.curBlock.Term != nil
		if !thenReturns {
			b.curBlock.NewBr(endBlock)
		}
		b.scope.Pop()

		b.curBlock = elseBlock
		b.scope.Push()
		b.emitStmts(n.Else)
		elseReturns := b.curBlock.Term != nil
		if !elseReturns {
			b.curBlock.NewBr(endBlock)
		}
		b.scope.Pop()

		if thenReturns && elseReturns {
			endBlock.NewUnreachable()
		}
	} else {
		b.curBlock.NewCondBr(condVal, thenBlock, endBlock)

		b.curBlock = thenBlock
		b.scope.Push()
		b.emitStmts(n.Then)
		if b.curBlock.Term == nil {
			b.curBlock.NewBr(endBlock)
		}
		b.scope.Pop()
	}

	b.curBlock = endBlock
}

// VisitWhile materializes cond/body/end blocks.
func (b *Builder) VisitWhile(n *ast.While) {
	condBlock := b.curFunc.NewBlock(b.blockName("while_cond"))
	bodyBlock := b.curFunc.NewBlock(b.blockName("while_body"))
	endBlock := b.curFunc.NewBlock(b.blockName("while_end"))

	b.curBlock.NewBr(condBlock)

	b.curBlock = condBlock
	condVal := b.evalCond(n.Cond)
	condBlock.NewCondBr(condVal, bodyBlock, endBlock)

	b.curBlock = bodyBlock
	b.scope.Push()
	b.emitStmts(n.Body)
	if b.curBlock.Term == nil {
		b.curBlock.NewBr(condBlock)
	}
	b.scope.Pop()

	b.curBlock = endBlock
}

// VisitReturn enforces the bare-vs-valued void rule and the widen/narrow
// rule for a value return.
func (b *Builder) VisitReturn(n *ast.Return) {
	if n.Value == nil {
		if n.FuncType != ast.Void {
			b.diag.Fail(n.Tok, "missing return value in non-void function")
			return
		}
		b.curBlock.NewRet(nil)
		return
	}

	if n.FuncType == ast.Void {
		b.diag.Fail(n.Tok, "unexpected return value in void function")
		return
	}

	rv, rt := b.evalRValue(n.Value)
	rv = b.widen(n.Tok, rv, rt, n.FuncType, true)
	b.curBlock.NewRet(rv)
}
