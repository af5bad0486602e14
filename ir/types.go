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
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Type is the handle every value's type is represented by: a sealed interface
// implemented by pointer-to-descriptor types, one per variant of a closed sum
// of four kinds (tensor, element, set, tuple). A Go interface value holding
// one of these pointers is a discriminated handle over a shared descriptor:
// copying a Type copies only the pointer (O(1)), and any number of Type
// values can observe the same descriptor. The nil Type is the distinguished
// "undefined" state.
type Type interface {
	// typeNode seals the interface: only the variants in this package may implement
	// Type.
	typeNode()

	// Kind returns the variant tag.
	Kind() TypeKind

	// Equal reports structural equality, defined recursively over the variants.
	Equal(Type) bool

	String() string
}

// Defined reports whether typ is not the undefined sentinel (nil).
func Defined(typ Type) bool {
	return typ != nil
}

// IsTensor, IsElement, IsSet and IsTuple are the variant tests for Type.
func IsTensor(typ Type) bool  { return Defined(typ) && typ.Kind() == TensorTypeKind }
func IsElement(typ Type) bool { return Defined(typ) && typ.Kind() == ElementTypeKind }
func IsSet(typ Type) bool     { return Defined(typ) && typ.Kind() == SetTypeKind }
func IsTuple(typ Type) bool   { return Defined(typ) && typ.Kind() == TupleTypeKind }

// ToTensor projects typ to *TensorType. Fatal if typ is not a TensorType.
func ToTensor(typ Type) *TensorType {
	t, ok := typ.(*TensorType)
	invariant(ok, "type %s is not a tensor type", describeType(typ))
	return t
}

// ToElement projects typ to *ElementType. Fatal if typ is not an ElementType.
func ToElement(typ Type) *ElementType {
	t, ok := typ.(*ElementType)
	invariant(ok, "type %s is not an element type", describeType(typ))
	return t
}

// ToSet projects typ to *SetType. Fatal if typ is not a SetType.
func ToSet(typ Type) *SetType {
	t, ok := typ.(*SetType)
	invariant(ok, "type %s is not a set type", describeType(typ))
	return t
}

// ToTuple projects typ to *TupleType. Fatal if typ is not a TupleType.
func ToTuple(typ Type) *TupleType {
	t, ok := typ.(*TupleType)
	invariant(ok, "type %s is not a tuple type", describeType(typ))
	return t
}

func describeType(typ Type) string {
	if !Defined(typ) {
		return "<undefined>"
	}
	return typ.String()
}

// IsScalar reports whether typ is a tensor of order 0.
func IsScalar(typ Type) bool {
	return IsTensor(typ) && ToTensor(typ).Order() == 0
}

// ---------------------------------------------------------------------------
// TensorType

// TensorType is a (possibly order-0) tensor over zero or more index domains.
type TensorType struct {
	Component    ScalarKind
	Dimensions   []IndexDomain
	ColumnVector bool
}

func (*TensorType) typeNode()      {}
func (*TensorType) Kind() TypeKind { return TensorTypeKind }

// Order is the number of dimensions; an order-0 tensor is a scalar.
func (t *TensorType) Order() int { return len(t.Dimensions) }

// Size returns the tensor's element count (the product of the cardinalities of
// all its dimensions) and whether that count is statically known.
func (t *TensorType) Size() (int, bool) {
	total := 1
	for _, dim := range t.Dimensions {
		c, ok := dim.Cardinality()
		if !ok {
			return 0, false
		}
		total *= c
	}
	return total, true
}

// Equal implements structural equality: components equal, dimension sequences
// equal element-wise, and ColumnVector flags equal.
func (t *TensorType) Equal(other Type) bool {
	o, ok := other.(*TensorType)
	if !ok {
		return false
	}
	if t == o {
		return true
	}
	if !t.Component.Equal(o.Component) || t.ColumnVector != o.ColumnVector {
		return false
	}
	if len(t.Dimensions) != len(o.Dimensions) {
		return false
	}
	for i, dim := range t.Dimensions {
		if !dim.Equal(o.Dimensions[i]) {
			return false
		}
	}
	return true
}

func (t *TensorType) String() string {
	var b strings.Builder
	b.WriteString(t.Component.String())
	for _, dim := range t.Dimensions {
		b.WriteByte('[')
		if c, ok := dim.Cardinality(); ok {
			b.WriteString(strconv.Itoa(c))
		} else {
			b.WriteByte('*')
		}
		b.WriteByte(']')
	}
	if t.ColumnVector {
		b.WriteString(" (col)")
	}
	return b.String()
}

// TensorTypeMake builds a tensor Type. Dims may be omitted for a scalar tensor.
func TensorTypeMake(component ScalarKind, dims ...IndexDomain) Type {
	return &TensorType{Component: component, Dimensions: dims}
}

// TensorTypeMakeColumn builds a tensor Type with an explicit ColumnVector flag.
func TensorTypeMakeColumn(component ScalarKind, columnVector bool, dims ...IndexDomain) Type {
	return &TensorType{Component: component, Dimensions: dims, ColumnVector: columnVector}
}

// IntType is the convenience scalar tensor constructor for integers.
func IntType(bits int) Type {
	return TensorTypeMake(IntKind(bits))
}

// FloatType is the convenience scalar tensor constructor for floats.
func FloatType(bits int) Type {
	return TensorTypeMake(FloatKind(bits))
}

// ---------------------------------------------------------------------------
// ElementType

// ElementType is a named record type with typed fields. Field insertion order
// does not participate in semantics, but String/field enumeration is kept
// deterministic via a sorted key list.
type ElementType struct {
	Name   string
	Fields map[string]Type
}

func (*ElementType) typeNode()      {}
func (*ElementType) Kind() TypeKind { return ElementTypeKind }

// FieldNames returns the element's field names in a deterministic (sorted)
// order, used for printing.
func (t *ElementType) FieldNames() []string {
	names := maps.Keys(t.Fields)
	sort.Strings(names)
	return names
}

// Field returns the type of a named field and whether it exists.
func (t *ElementType) Field(name string) (Type, bool) {
	typ, ok := t.Fields[name]
	return typ, ok
}

// Equal implements structural equality: names and field mappings equal, name by
// name.
func (t *ElementType) Equal(other Type) bool {
	o, ok := other.(*ElementType)
	if !ok {
		return false
	}
	if t == o {
		return true
	}
	if t.Name != o.Name || len(t.Fields) != len(o.Fields) {
		return false
	}
	for name, typ := range t.Fields {
		otherTyp, ok := o.Fields[name]
		if !ok || !typ.Equal(otherTyp) {
			return false
		}
	}
	return true
}

func (t *ElementType) String() string {
	var b strings.Builder
	b.WriteString("element ")
	b.WriteString(t.Name)
	b.WriteString(" {")
	for i, name := range t.FieldNames() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(t.Fields[name].String())
	}
	b.WriteByte('}')
	return b.String()
}

// ElementTypeMake builds an element Type.
func ElementTypeMake(name string, fields map[string]Type) Type {
	return &ElementType{Name: name, Fields: fields}
}

// ---------------------------------------------------------------------------
// SetType

// SetType is a collection of elements of a single ElementType.
type SetType struct {
	ElementType Type
}

func (*SetType) typeNode()      {}
func (*SetType) Kind() TypeKind { return SetTypeKind }

func (t *SetType) Equal(other Type) bool {
	o, ok := other.(*SetType)
	if !ok {
		return false
	}
	return t.ElementType.Equal(o.ElementType)
}

func (t *SetType) String() string {
	return "set{" + t.ElementType.String() + "}"
}

// SetTypeMake builds a set Type. Asserts elementType is an ElementType.
func SetTypeMake(elementType Type) Type {
	invariant(IsElement(elementType), "set element type must be an element type, got %s", describeType(elementType))
	return &SetType{ElementType: elementType}
}

// ---------------------------------------------------------------------------
// TupleType

// TupleType is a fixed-size homogeneous collection of elements, used to bundle
// the endpoints of an edge.
type TupleType struct {
	ElementType Type
	Size        int
}

func (*TupleType) typeNode()      {}
func (*TupleType) Kind() TypeKind { return TupleTypeKind }

func (t *TupleType) Equal(other Type) bool {
	o, ok := other.(*TupleType)
	if !ok {
		return false
	}
	return t.Size == o.Size && t.ElementType.Equal(o.ElementType)
}

func (t *TupleType) String() string {
	return "tuple{" + t.ElementType.String() + "}[" + strconv.Itoa(t.Size) + "]"
}

// TupleTypeMake builds a tuple Type. Asserts elementType is an ElementType and
// size is positive.
func TupleTypeMake(elementType Type, size int) Type {
	invariant(IsElement(elementType), "tuple element type must be an element type, got %s", describeType(elementType))
	invariant(size > 0, "tuple size must be positive, got %d", size)
	return &TupleType{ElementType: elementType, Size: size}
}
