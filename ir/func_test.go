package ir_test

import (
	"testing"

	"github.com/simit-lang/simit-ir/ir"
)

func TestIntrinsicsRegistered(t *testing.T) {
	for _, name := range []string{"mod", "sin", "cos", "atan2", "sqrt", "log", "exp", "norm", "solve"} {
		fn, ok := ir.Intrinsic(name)
		if !ok {
			t.Errorf("intrinsic %q should be registered", name)
			continue
		}
		if fn.Kind != ir.IntrinsicFunc {
			t.Errorf("intrinsic %q should have Kind IntrinsicFunc", name)
		}
		if fn.Body != nil {
			t.Errorf("intrinsic %q should have no body", name)
		}
	}
}

func TestIntrinsicUnknownName(t *testing.T) {
	if _, ok := ir.Intrinsic("frobnicate"); ok {
		t.Errorf("unknown intrinsic name should not resolve")
	}
}

func TestIntrinsicsMapIsStable(t *testing.T) {
	a := ir.Intrinsics()
	b := ir.Intrinsics()
	if len(a) != len(b) {
		t.Errorf("Intrinsics() should return a consistent set across calls")
	}
}

func TestWithBodyPreservesPrototype(t *testing.T) {
	args := []ir.Var{ir.NewVar("x", ir.FloatType(64))}
	results := []ir.Var{ir.NewVar("y", ir.FloatType(64))}
	fn := ir.NewFunction("f", args, results, ir.NewPass())

	newBody := ir.NewAssignStmt(results[0], ir.LiteralFromFloat64s(ir.FloatType(64), []float64{1}))
	updated := fn.WithBody(newBody)

	if updated.Name != fn.Name {
		t.Errorf("WithBody should preserve the function's name")
	}
	if len(updated.Arguments) != len(fn.Arguments) {
		t.Errorf("WithBody should preserve the function's arguments")
	}
	if updated.Body != newBody {
		t.Errorf("WithBody should install the new body")
	}
	if fn.Body == newBody {
		t.Errorf("WithBody should not mutate the original function")
	}
}

func TestWithBodyOnIntrinsicInstallsBody(t *testing.T) {
	fn := ir.NewIntrinsic("sin", []ir.Var{ir.NewVar("x", ir.FloatType(64))}, []ir.Var{ir.NewVar("y", ir.FloatType(64))})
	updated := fn.WithBody(ir.NewPass())
	if updated.Body == nil {
		t.Errorf("WithBody should install the new body even on an intrinsic prototype")
	}
	if fn.Body != nil {
		t.Errorf("WithBody should not mutate the original function")
	}
}
