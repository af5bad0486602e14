package ir_test

import (
	"strings"
	"testing"

	"github.com/simit-lang/simit-ir/ir"
)

func TestTensorIndexNamedPrefix(t *testing.T) {
	ti := ir.NewTensorIndex("K", ir.NewPathExpression("edges(V,V)"))
	if got, want := ti.CoordArray.Name(), "K_coords"; got != want {
		t.Errorf("CoordArray.Name() = %q, want %q", got, want)
	}
	if got, want := ti.SinkArray.Name(), "K_sinks"; got != want {
		t.Errorf("SinkArray.Name() = %q, want %q", got, want)
	}
}

func TestTensorIndexEmptyPrefix(t *testing.T) {
	ti := ir.NewTensorIndex("", ir.NewPathExpression("edges(V,V)"))
	if got, want := ti.CoordArray.Name(), "coords"; got != want {
		t.Errorf("CoordArray.Name() = %q, want %q", got, want)
	}
	if got, want := ti.SinkArray.Name(), "sinks"; got != want {
		t.Errorf("SinkArray.Name() = %q, want %q", got, want)
	}
}

func TestTensorIndexStringHasOneLinePerField(t *testing.T) {
	ti := ir.NewTensorIndex("K", ir.NewPathExpression("edges(V,V)"))
	lines := strings.Split(ti.String(), "\n")
	if len(lines) != 3 {
		t.Errorf("TensorIndex.String() should have 3 lines (path expression, coords, sinks), got %d: %q", len(lines), ti.String())
	}
}
