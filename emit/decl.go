package emit

import (
	"mccomp/ast"
	"mccomp/types"

	"github.com/llir/llvm/ir"
)

// declareFunc registers proto's signature, creating a new host function
// object the first time a name is seen and validating compatibility against
// any prior declaration otherwise: a second occurrence of the same name
// with a compatible signature is not a redefinition, but one with an
// incompatible signature is an error.
func (b *Builder) declareFunc(proto *ast.Prototype) {
	paramTypes := make([]ast.Type, len(proto.Params))
	for i, p := range proto.Params {
		paramTypes[i] = p.Type
	}

	if existing, ok := b.scope.Func(proto.Name); ok {
		if !sameSignature(existing, proto, paramTypes) {
			b.diag.Fail(proto.Tok, "conflicting declaration of function %q", proto.Name)
			return
		}
		if !proto.Extern {
			if existing.Defined {
				b.diag.Fail(proto.Tok, "redefinition of function %q", proto.Name)
				return
			}
			existing.Defined = true
		}
		return
	}

	irParams := make([]*ir.Param, len(proto.Params))
	for i, p := range proto.Params {
		irParams[i] = ir.NewParam(p.Name, llvmType(p.Type))
	}
	irFunc := b.mod.NewFunc(proto.Name, llvmType(proto.RetType), irParams...)

	b.scope.DeclareFunc(&types.Func{
		Name:       proto.Name,
		RetType:    proto.RetType,
		Params:     paramTypes,
		VoidParams: proto.VoidParams,
		Extern:     proto.Extern,
		Defined:    !proto.Extern,
		IR:         irFunc,
	})
}

func sameSignature(existing *types.Func, proto *ast.Prototype, paramTypes []ast.Type) bool {
	if existing.RetType != proto.RetType || existing.VoidParams != proto.VoidParams {
		return false
	}
	if len(existing.Params) != len(paramTypes) {
		return false
	}
	for i := range paramTypes {
		if existing.Params[i] != paramTypes[i] {
			return false
		}
	}
	return true
}

// declareGlobal registers a zero-initialized global; any second
// declaration of the same name, same type or not, is an error.
func (b *Builder) declareGlobal(g *ast.GlobalVar) {
	if _, ok := b.scope.Lookup(g.Name); ok {
		b.diag.Fail(g.Tok, "redeclaration of global %q", g.Name)
		return
	}

	global := b.mod.NewGlobalDef(g.Name, zeroConstant(g.Type))
	b.scope.DeclareGlobal(g.Name, &types.Slot{Type: g.Type, Value: global})
}

// VisitPrototype makes Builder usable directly against a standalone
// Prototype node (an extern declaration walked on its own); Emit itself
// calls declareFunc directly during its first pass instead; VisitFunction
// needs a second, distinct pass-two behavior for the same node.
func (b *Builder) VisitPrototype(n *ast.Prototype) {
	b.declareFunc(n)
}

// VisitGlobalVar mirrors VisitPrototype: exists for interface completeness
// and standalone use; Emit's first pass calls declareGlobal directly.
func (b *Builder) VisitGlobalVar(n *ast.GlobalVar) {
	b.declareGlobal(n)
}

// VisitFunction emits n's body: one entry block holding every local
// variable's alloca (every local lives in the entry block regardless of
// which nested scope declared it), one alloca+store per parameter, then
// the reified statement list.
func (b *Builder) VisitFunction(n *ast.Function) {
	fn, ok := b.scope.Func(n.Proto.Name)
	if !ok || fn.IR == nil {
		return // declareFunc already reported why this function has no IR object
	}
	if len(fn.IR.Blocks) > 0 {
		return // a signature conflict already latched a redefinition error
	}

	b.curFunc = fn.IR
	b.entry = fn.IR.NewBlock(b.blockName("entry"))
	b.curBlock = b.entry

	b.scope.Push()
	defer b.scope.Pop()

	for i, param := range n.Proto.Params {
		slot := b.entry.NewAlloca(llvmType(param.Type))
		b.entry.NewStore(fn.IR.Params[i], slot)
		b.scope.Declare(param.Name, &types.Slot{Type: param.Type, Value: slot})
	}

	b.emitStmts(n.Body)

	if b.curBlock.Term == nil {
		if n.Proto.RetType == ast.Void {
			b.curBlock.NewRet(nil)
		} else {
			b.diag.Fail(n.Proto.Tok, "missing return statement in function %q", n.Proto.Name)
		}
	}

	b.verifyBlocks(n.Proto.Tok, fn.IR)
}
