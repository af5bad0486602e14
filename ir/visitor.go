// Copyright 2026 The simit-ir Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

// Visitor is the double-dispatch protocol every expression, statement and
// function node's Accept method calls back into: one Visit method per
// concrete variant. Implementations that only care about a handful of
// variants typically embed BaseVisitor and override just those methods.
type Visitor interface {
	VisitLiteral(*Literal)
	VisitVarExpr(*VarExpr)
	VisitFieldRead(*FieldRead)
	VisitTensorRead(*TensorRead)
	VisitTupleRead(*TupleRead)
	VisitIndexRead(*IndexRead)
	VisitLength(*Length)
	VisitIndexedTensor(*IndexedTensor)
	VisitIndexExpr(*IndexExpr)
	VisitCall(*Call)
	VisitNeg(*Neg)
	VisitAdd(*Add)
	VisitSub(*Sub)
	VisitMul(*Mul)
	VisitDiv(*Div)
	VisitLoad(*Load)

	VisitAssignStmt(*AssignStmt)
	VisitMap(*Map)
	VisitFieldWrite(*FieldWrite)
	VisitTensorWrite(*TensorWrite)
	VisitStore(*Store)
	VisitForRange(*ForRange)
	VisitFor(*For)
	VisitIfThenElse(*IfThenElse)
	VisitBlock(*Block)
	VisitPass(*Pass)

	VisitFunction(*Function)
}

// BaseVisitor implements Visitor with default methods that recursively
// descend into every child node. Go has no virtual dispatch through struct
// embedding, so a concrete visitor that embeds BaseVisitor and overrides a
// handful of methods must set Self to itself; the default methods call back
// through Self rather than through the embedded BaseVisitor, so overridden
// methods still fire on nested nodes. A visitor that leaves Self nil only
// ever recurses through the defaults below.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) visit(e Expr) {
	if e != nil {
		e.Accept(b.self())
	}
}

func (b *BaseVisitor) visitStmt(s Stmt) {
	if s != nil {
		s.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitLiteral(n *Literal) {}

func (b *BaseVisitor) VisitVarExpr(n *VarExpr) {}

func (b *BaseVisitor) VisitFieldRead(n *FieldRead) {
	b.visit(n.Base)
}

func (b *BaseVisitor) VisitTensorRead(n *TensorRead) {
	b.visit(n.Tensor)
	for _, idx := range n.Indices {
		b.visit(idx)
	}
}

func (b *BaseVisitor) VisitTupleRead(n *TupleRead) {
	b.visit(n.Tuple)
	b.visit(n.Index)
}

func (b *BaseVisitor) VisitIndexRead(n *IndexRead) {
	b.visit(n.EdgeSet)
}

func (b *BaseVisitor) VisitLength(n *Length) {}

func (b *BaseVisitor) VisitIndexedTensor(n *IndexedTensor) {
	b.visit(n.Tensor)
}

func (b *BaseVisitor) VisitIndexExpr(n *IndexExpr) {
	b.visit(n.Value)
}

func (b *BaseVisitor) VisitCall(n *Call) {
	for _, actual := range n.Actuals {
		b.visit(actual)
	}
}

func (b *BaseVisitor) VisitNeg(n *Neg) {
	b.visit(n.A)
}

func (b *BaseVisitor) VisitAdd(n *Add) {
	b.visit(n.A)
	b.visit(n.B)
}

func (b *BaseVisitor) VisitSub(n *Sub) {
	b.visit(n.A)
	b.visit(n.B)
}

func (b *BaseVisitor) VisitMul(n *Mul) {
	b.visit(n.A)
	b.visit(n.B)
}

func (b *BaseVisitor) VisitDiv(n *Div) {
	b.visit(n.A)
	b.visit(n.B)
}

func (b *BaseVisitor) VisitLoad(n *Load) {
	b.visit(n.Buffer)
	b.visit(n.Index)
}

func (b *BaseVisitor) VisitAssignStmt(n *AssignStmt) {
	b.visit(n.Value)
}

func (b *BaseVisitor) VisitMap(n *Map) {
	b.visit(n.Target)
	b.visit(n.Neighbors)
}

func (b *BaseVisitor) VisitFieldWrite(n *FieldWrite) {
	b.visit(n.ElementOrSet)
	b.visit(n.Value)
}

func (b *BaseVisitor) VisitTensorWrite(n *TensorWrite) {
	b.visit(n.Tensor)
	for _, idx := range n.Indices {
		b.visit(idx)
	}
	b.visit(n.Value)
}

func (b *BaseVisitor) VisitStore(n *Store) {
	b.visit(n.Buffer)
	b.visit(n.Index)
	b.visit(n.Value)
}

func (b *BaseVisitor) VisitForRange(n *ForRange) {
	b.visit(n.Start)
	b.visit(n.End)
	b.visitStmt(n.Body)
}

func (b *BaseVisitor) VisitFor(n *For) {
	b.visit(n.Domain.Set)
	b.visitStmt(n.Body)
}

func (b *BaseVisitor) VisitIfThenElse(n *IfThenElse) {
	b.visit(n.Condition)
	b.visitStmt(n.ThenBody)
	b.visitStmt(n.ElseBody)
}

func (b *BaseVisitor) VisitBlock(n *Block) {
	b.visitStmt(n.First)
	b.visitStmt(n.Rest)
}

func (b *BaseVisitor) VisitPass(n *Pass) {}

func (b *BaseVisitor) VisitFunction(fn *Function) {
	b.visitStmt(fn.Body)
}
