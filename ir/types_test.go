package ir_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/simit-lang/simit-ir/ir"
)

func TestScalarKind(t *testing.T) {
	tests := []struct {
		kind      ir.ScalarKind
		wantBytes int
		wantIsInt bool
	}{
		{ir.IntKind(64), 8, true},
		{ir.IntKind(32), 4, true},
		{ir.FloatKind(64), 8, false},
		{ir.FloatKind(32), 4, false},
	}
	for _, test := range tests {
		if got := test.kind.Bytes(); got != test.wantBytes {
			t.Errorf("%s: Bytes() = %d, want %d", test.kind, got, test.wantBytes)
		}
		if got := test.kind.IsInt(); got != test.wantIsInt {
			t.Errorf("%s: IsInt() = %v, want %v", test.kind, got, test.wantIsInt)
		}
	}
}

func TestTensorTypeOrderAndSize(t *testing.T) {
	scalar := ir.TensorTypeMake(ir.FloatKind(64))
	if got := ir.ToTensor(scalar).Order(); got != 0 {
		t.Errorf("scalar Order() = %d, want 0", got)
	}
	vector := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(3)))
	if got := ir.ToTensor(vector).Order(); got != 1 {
		t.Errorf("vector Order() = %d, want 1", got)
	}
	size, ok := ir.ToTensor(vector).Size()
	if !ok || size != 3 {
		t.Errorf("vector Size() = (%d, %v), want (3, true)", size, ok)
	}
	matrix := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(3)), ir.Dim(ir.Range(4)))
	size, ok = ir.ToTensor(matrix).Size()
	if !ok || size != 12 {
		t.Errorf("matrix Size() = (%d, %v), want (12, true)", size, ok)
	}
}

func TestTensorTypeSizeUnknown(t *testing.T) {
	setExpr := ir.NewVarExpr(ir.NewVar("points", ir.SetTypeMake(ir.ElementTypeMake("Point", nil))))
	dynamic := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.OfSet(setExpr)))
	if _, ok := ir.ToTensor(dynamic).Size(); ok {
		t.Errorf("dynamic tensor Size() reported known, want unknown")
	}
}

func TestTypeEqual(t *testing.T) {
	a := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(3)))
	b := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(3)))
	c := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(4)))
	if !a.Equal(b) {
		t.Errorf("a and b should be structurally equal")
	}
	if a.Equal(c) {
		t.Errorf("a and c should not be equal")
	}
}

func TestElementTypeFieldNamesSorted(t *testing.T) {
	elem := ir.ToElement(ir.ElementTypeMake("Point", map[string]ir.Type{
		"z": ir.FloatType(64),
		"x": ir.FloatType(64),
		"y": ir.FloatType(64),
	}))
	got := elem.FieldNames()
	want := []string{"x", "y", "z"}
	if !cmp.Equal(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}

func TestSetTypeMakeRequiresElement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("SetTypeMake with a non-element type should panic")
		}
	}()
	ir.SetTypeMake(ir.FloatType(64))
}

func TestTupleTypeMakeRequiresPositiveSize(t *testing.T) {
	elem := ir.ElementTypeMake("Edge", nil)
	defer func() {
		if recover() == nil {
			t.Errorf("TupleTypeMake with size 0 should panic")
		}
	}()
	ir.TupleTypeMake(elem, 0)
}

func TestIsScalar(t *testing.T) {
	if !ir.IsScalar(ir.FloatType(64)) {
		t.Errorf("FloatType(64) should be scalar")
	}
	vector := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(3)))
	if ir.IsScalar(vector) {
		t.Errorf("a vector should not be scalar")
	}
}

func TestToTensorOnWrongVariantPanics(t *testing.T) {
	elem := ir.ElementTypeMake("Point", nil)
	defer func() {
		if recover() == nil {
			t.Errorf("ToTensor on an element type should panic")
		}
	}()
	ir.ToTensor(elem)
}
