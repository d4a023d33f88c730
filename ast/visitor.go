package ast

// Visitor is implemented once per consumer (the debug printer, the emitter)
// with one Visit method per node kind, replacing virtual dispatch.
type Visitor interface {
	VisitIntLit(n *IntLit)
	VisitFloatLit(n *FloatLit)
	VisitBoolLit(n *BoolLit)
	VisitVarRef(n *VarRef)
	VisitUnary(n *Unary)
	VisitBinary(n *Binary)
	VisitCall(n *Call)

	VisitLocalVar(n *LocalVar)
	VisitExprStmt(n *ExprStmt)
	VisitIf(n *If)
	VisitWhile(n *While)
	VisitReturn(n *Return)

	VisitPrototype(n *Prototype)
	VisitFunction(n *Function)
	VisitGlobalVar(n *GlobalVar)
}

func (n *IntLit) Accept(v Visitor)    { v.VisitIntLit(n) }
func (n *FloatLit) Accept(v Visitor)  { v.VisitFloatLit(n) }
func (n *BoolLit) Accept(v Visitor)   { v.VisitBoolLit(n) }
func (n *VarRef) Accept(v Visitor)    { v.VisitVarRef(n) }
func (n *Unary) Accept(v Visitor)     { v.VisitUnary(n) }
func (n *Binary) Accept(v Visitor)    { v.VisitBinary(n) }
func (n *Call) Accept(v Visitor)      { v.VisitCall(n) }
func (n *LocalVar) Accept(v Visitor)  { v.VisitLocalVar(n) }
func (n *ExprStmt) Accept(v Visitor)  { v.VisitExprStmt(n) }
func (n *If) Accept(v Visitor)        { v.VisitIf(n) }
func (n *While) Accept(v Visitor)     { v.VisitWhile(n) }
func (n *Return) Accept(v Visitor)    { v.VisitReturn(n) }
func (n *Prototype) Accept(v Visitor) { v.VisitPrototype(n) }
func (n *Function) Accept(v Visitor)  { v.VisitFunction(n) }
func (n *GlobalVar) Accept(v Visitor) { v.VisitGlobalVar(n) }
