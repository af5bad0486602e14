package irhelper_test

import (
	"testing"

	"github.com/simit-lang/simit-ir/ir"
	"github.com/simit-lang/simit-ir/irhelper"
)

func TestVectorAndMatrix(t *testing.T) {
	vec := ir.ToTensor(irhelper.Vector(ir.FloatKind(64), 3))
	if got := vec.Order(); got != 1 {
		t.Errorf("Vector should have order 1, got %d", got)
	}
	if !vec.ColumnVector {
		t.Errorf("Vector should be a column vector")
	}
	mat := ir.ToTensor(irhelper.Matrix(ir.FloatKind(64), 3, 4))
	if got := mat.Order(); got != 2 {
		t.Errorf("Matrix should have order 2, got %d", got)
	}
}

func TestElementHelper(t *testing.T) {
	point := ir.ToElement(irhelper.Element("Point", "mass", irhelper.Float64()))
	typ, ok := point.Field("mass")
	if !ok {
		t.Fatalf("Element should define a mass field")
	}
	if !typ.Equal(irhelper.Float64()) {
		t.Errorf("mass field should be Float64")
	}
}

func TestVarsHelper(t *testing.T) {
	vars := irhelper.Vars(irhelper.Float64(), "a", "b", "c")
	if len(vars) != 3 {
		t.Fatalf("Vars should allocate 3 variables, got %d", len(vars))
	}
	for i, name := range []string{"a", "b", "c"} {
		if vars[i].Name() != name {
			t.Errorf("vars[%d].Name() = %q, want %q", i, vars[i].Name(), name)
		}
	}
}

func TestFuncHelperFoldsBodyIntoBlock(t *testing.T) {
	x := irhelper.Var("x", irhelper.Float64())
	y := irhelper.Var("y", irhelper.Float64())
	fn := irhelper.Func("identity", []ir.Var{x}, []ir.Var{y},
		ir.NewAssignStmt(y, ir.NewVarExpr(x)),
	)
	block := ir.ToStmt[*ir.Block](fn.Body)
	if !ir.IsaStmt[*ir.AssignStmt](block.First) {
		t.Errorf("a single-statement body should fold into a Block wrapping that statement")
	}
	if block.Rest != nil {
		t.Errorf("a single-statement body's Block should have a nil Rest")
	}
}

func TestFuncHelperWithNoBodyIsPass(t *testing.T) {
	fn := irhelper.Func("noop", nil, nil)
	if !ir.IsaStmt[*ir.Pass](fn.Body) {
		t.Errorf("Func with no body statements should default to Pass")
	}
}

func TestValidateCatchesMismatchedMapArity(t *testing.T) {
	// Built directly from the struct literal, bypassing NewMap's constructor
	// invariant, the way a pass assembling IR without the smart constructors
	// might produce a malformed tree for Validate to catch.
	inner := irhelper.Func("f", nil, []ir.Var{irhelper.Var("r", irhelper.Float64())})
	set := ir.NewVarExpr(irhelper.Var("points", ir.SetTypeMake(irhelper.Element("Point"))))
	m := &ir.Map{Function: inner, Target: set}
	outer := irhelper.Func("main", nil, nil, m)

	if err := irhelper.Validate(outer); err == nil {
		t.Errorf("Validate should report the Map's vars/results arity mismatch")
	}
}

func TestValidateAcceptsWellFormedFunction(t *testing.T) {
	x := irhelper.Var("x", irhelper.Float64())
	y := irhelper.Var("y", irhelper.Float64())
	fn := irhelper.Func("identity", []ir.Var{x}, []ir.Var{y}, ir.NewAssignStmt(y, ir.NewVarExpr(x)))
	if err := irhelper.Validate(fn); err != nil {
		t.Errorf("Validate on a well-formed function should return nil, got %v", err)
	}
}
