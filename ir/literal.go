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

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Literal is a constant tensor value: a fixed type plus a raw little-endian
// byte buffer holding Size()/Component.Bytes() scalars. Unlike every other
// expression, a Literal's type is mutable after construction via Cast; this
// is the one place the IR allows a node to change shape in place, needed by
// passes that specialize a literal's component type during lowering.
type Literal struct {
	exprBase
	Data []byte
}

func (n *Literal) Accept(v Visitor) { v.VisitLiteral(n) }
func (n *Literal) String() string   { return "literal" }

// Size returns the number of bytes backing the literal.
func (n *Literal) Size() int { return len(n.Data) }

// Cast rewrites the literal's type in place, without touching Data. Callers
// are responsible for ensuring the new type's byte size matches Data's
// length; this is a lowering-time operation, not a value-preserving
// conversion.
func (n *Literal) Cast(newType Type) {
	n.Typ = newType
}

// Equal reports whether two literals have equal types and byte-identical data.
func (n *Literal) Equal(o *Literal) bool {
	if o == nil {
		return false
	}
	return n.Type().Equal(o.Type()) && bytes.Equal(n.Data, o.Data)
}

func literalByteSize(typ Type) int {
	tt := ToTensor(typ)
	size, ok := tt.Size()
	invariant(ok, "literal requires a tensor type with statically known size, got %s", describeType(typ))
	return size * tt.Component.Bytes()
}

// NewLiteral builds a Literal of the given tensor type. If buffer is nil, the
// data is zero-filled; otherwise buffer is copied in and must have exactly
// the byte size the type requires.
func NewLiteral(typ Type, buffer []byte) *Literal {
	invariant(IsTensor(typ), "Literal requires a tensor type, got %s", describeType(typ))
	size := literalByteSize(typ)
	data := make([]byte, size)
	if buffer != nil {
		invariant(len(buffer) == size, "literal buffer has %d bytes, type requires %d", len(buffer), size)
		copy(data, buffer)
	}
	return &Literal{exprBase: exprBase{Typ: typ}, Data: data}
}

// LiteralFromFloat64s packs values into a Literal of typ, converting each
// value to the type's component width. len(values) must be 1 for a scalar
// type or exactly the tensor's element count otherwise.
func LiteralFromFloat64s(typ Type, values []float64) *Literal {
	invariant(IsTensor(typ), "LiteralFromFloat64s requires a tensor type, got %s", describeType(typ))
	tt := ToTensor(typ)
	size, ok := tt.Size()
	invariant(ok, "LiteralFromFloat64s requires a statically known tensor size, got %s", describeType(typ))
	want := size
	invariant(len(values) == want, "LiteralFromFloat64s got %d values, type requires %d", len(values), want)

	buf := make([]byte, want*tt.Component.Bytes())
	for i, value := range values {
		offset := i * tt.Component.Bytes()
		packScalar(buf[offset:offset+tt.Component.Bytes()], tt.Component, value)
	}
	return &Literal{exprBase: exprBase{Typ: typ}, Data: buf}
}

func packScalar(dst []byte, kind ScalarKind, value float64) {
	switch {
	case kind.IsFloat() && kind.Bits == 64:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(value))
	case kind.IsFloat() && kind.Bits == 32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(value)))
	case kind.IsInt() && kind.Bits == 64:
		binary.LittleEndian.PutUint64(dst, uint64(int64(value)))
	case kind.IsInt() && kind.Bits == 32:
		binary.LittleEndian.PutUint32(dst, uint32(int32(value)))
	default:
		unreachable("unsupported scalar kind for literal packing: %s", kind.String())
	}
}
