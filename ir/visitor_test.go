package ir_test

import (
	"testing"

	"github.com/simit-lang/simit-ir/ir"
)

// countingVisitor counts every Add node it reaches by recursively descending
// through BaseVisitor's defaults for everything else.
type countingVisitor struct {
	ir.BaseVisitor
	adds int
}

func (v *countingVisitor) VisitAdd(n *ir.Add) {
	v.adds++
	v.BaseVisitor.VisitAdd(n)
}

func TestBaseVisitorRecursesThroughSelf(t *testing.T) {
	a := ir.NewVarExpr(ir.NewVar("a", ir.FloatType(64)))
	b := ir.NewVarExpr(ir.NewVar("b", ir.FloatType(64)))
	expr := ir.NewAdd(ir.ToExpr[*ir.Add](ir.NewAdd(a, b)), b)

	v := &countingVisitor{}
	v.Self = v
	expr.Accept(v)

	if v.adds != 2 {
		t.Errorf("expected to visit 2 Add nodes via Self-delegated recursion, got %d", v.adds)
	}
}

func TestBaseVisitorWithoutSelfStillRecurses(t *testing.T) {
	a := ir.NewVarExpr(ir.NewVar("a", ir.FloatType(64)))
	b := ir.NewVarExpr(ir.NewVar("b", ir.FloatType(64)))
	expr := ir.NewAdd(a, b)

	v := &ir.BaseVisitor{}
	expr.Accept(v) // must not panic even though Self is nil
}

func TestVisitFunctionDescendsIntoBody(t *testing.T) {
	x := ir.NewVar("x", ir.FloatType(64))
	body := ir.NewAssignStmt(x, ir.NewAdd(ir.NewVarExpr(x), ir.NewVarExpr(x)))
	fn := ir.NewFunction("double", []ir.Var{x}, []ir.Var{x}, body)

	v := &countingVisitor{}
	v.Self = v
	fn.Accept(v)

	if v.adds != 1 {
		t.Errorf("expected to find 1 Add node inside the function body, got %d", v.adds)
	}
}
