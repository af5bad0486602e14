package ir_test

import (
	"testing"

	"github.com/simit-lang/simit-ir/ir"
)

func TestNewLiteralZeroFills(t *testing.T) {
	typ := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(3)))
	lit := ir.NewLiteral(typ, nil)
	if got, want := lit.Size(), 24; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	for i, b := range lit.Data {
		if b != 0 {
			t.Errorf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestNewLiteralBufferSizeMismatchPanics(t *testing.T) {
	typ := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(3)))
	defer func() {
		if recover() == nil {
			t.Errorf("NewLiteral with a mismatched buffer size should panic")
		}
	}()
	ir.NewLiteral(typ, make([]byte, 4))
}

func TestLiteralFromFloat64sScalar(t *testing.T) {
	typ := ir.TensorTypeMake(ir.FloatKind(64))
	lit := ir.LiteralFromFloat64s(typ, []float64{3.5})
	other := ir.LiteralFromFloat64s(typ, []float64{3.5})
	if !lit.Equal(other) {
		t.Errorf("two literals built from the same scalar value should be equal")
	}
	different := ir.LiteralFromFloat64s(typ, []float64{4.5})
	if lit.Equal(different) {
		t.Errorf("literals built from different values should not be equal")
	}
}

func TestLiteralFromFloat64sVector(t *testing.T) {
	typ := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(2)))
	lit := ir.LiteralFromFloat64s(typ, []float64{1, 2})
	if got, want := lit.Size(), 16; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
}

func TestLiteralFromFloat64sWrongCountPanics(t *testing.T) {
	typ := ir.TensorTypeMake(ir.FloatKind(64), ir.Dim(ir.Range(2)))
	defer func() {
		if recover() == nil {
			t.Errorf("LiteralFromFloat64s with the wrong value count should panic")
		}
	}()
	ir.LiteralFromFloat64s(typ, []float64{1})
}

func TestLiteralCast(t *testing.T) {
	typ := ir.TensorTypeMake(ir.FloatKind(64))
	lit := ir.LiteralFromFloat64s(typ, []float64{1})
	newType := ir.TensorTypeMake(ir.IntKind(64))
	lit.Cast(newType)
	if !lit.Type().Equal(newType) {
		t.Errorf("Cast should rewrite the literal's type in place")
	}
}

func TestLiteralAcceptVisitsLiteral(t *testing.T) {
	typ := ir.TensorTypeMake(ir.FloatKind(64))
	lit := ir.LiteralFromFloat64s(typ, []float64{1})
	v := &literalCountingVisitor{}
	v.Self = v
	lit.Accept(v)
	if v.count != 1 {
		t.Errorf("VisitLiteral called %d times, want 1", v.count)
	}
}

type literalCountingVisitor struct {
	ir.BaseVisitor
	count int
}

func (v *literalCountingVisitor) VisitLiteral(n *ir.Literal) {
	v.count++
}
