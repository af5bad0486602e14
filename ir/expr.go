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

// Node is the base of every IR node, expression or statement.
type Node interface {
	// node seals the interface: only types in this package may be Nodes.
	node()
}

// Expr is the handle every expression node is exposed through. Every expression
// caches its result Type at construction time.
type Expr interface {
	Node
	exprNode()

	// Type returns the expression's cached result type.
	Type() Type

	// Accept performs double dispatch to the visitor's overload for this
	// expression's concrete variant.
	Accept(Visitor)

	String() string
}

// exprBase is embedded by every concrete expression variant; it carries the
// cached type and seals the Node/Expr interfaces.
type exprBase struct {
	Typ Type
}

func (*exprBase) node()     {}
func (*exprBase) exprNode() {}

// Type returns the expression's cached result type.
func (e *exprBase) Type() Type { return e.Typ }

// IsaExpr reports whether e's dynamic variant is E.
func IsaExpr[E Expr](e Expr) bool {
	if e == nil {
		return false
	}
	_, ok := e.(E)
	return ok
}

// ToExpr safely projects e to E. Fatal if e's dynamic variant is not E.
func ToExpr[E Expr](e Expr) E {
	v, ok := e.(E)
	invariant(ok, "expression %s is not of the requested variant", describeExpr(e))
	return v
}

func describeExpr(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

// ---------------------------------------------------------------------------
// VarExpr

// VarExpr reads a variable's value.
type VarExpr struct {
	exprBase
	V Var
}

func (n *VarExpr) Accept(v Visitor) { v.VisitVarExpr(n) }
func (n *VarExpr) String() string   { return n.V.String() }

// NewVarExpr builds a VarExpr. Its type is the variable's type.
func NewVarExpr(v Var) Expr {
	invariant(v.Defined(), "VarExpr requires a defined variable")
	return &VarExpr{exprBase: exprBase{Typ: v.Type()}, V: v}
}

// ---------------------------------------------------------------------------
// FieldRead

// FieldRead reads a tensor from an element or set field.
type FieldRead struct {
	exprBase
	Base      Expr
	FieldName string
}

func (n *FieldRead) Accept(v Visitor) { v.VisitFieldRead(n) }
func (n *FieldRead) String() string   { return n.Base.String() + "." + n.FieldName }

// NewFieldRead builds a FieldRead. base's type must be Element or Set; the
// result type is looked up on the element descriptor, lifted over the set when
// base is a Set.
func NewFieldRead(base Expr, fieldName string) Expr {
	invariant(IsElement(base.Type()) || IsSet(base.Type()),
		"FieldRead base must have an element or set type, got %s", describeType(base.Type()))
	return &FieldRead{
		exprBase:  exprBase{Typ: getFieldType(base, fieldName)},
		Base:      base,
		FieldName: fieldName,
	}
}

func getFieldType(base Expr, fieldName string) Type {
	switch base.Type().Kind() {
	case ElementTypeKind:
		et := ToElement(base.Type())
		typ, ok := et.Field(fieldName)
		invariant(ok, "element %q has no field %q", et.Name, fieldName)
		return typ
	case SetTypeKind:
		st := ToSet(base.Type())
		et := ToElement(st.ElementType)
		typ, ok := et.Field(fieldName)
		invariant(ok, "element %q has no field %q", et.Name, fieldName)
		return liftFieldTypeOverSet(typ, base)
	default:
		unreachable("field read requires an element or set base type, got %s", describeType(base.Type()))
		return nil
	}
}

// liftFieldTypeOverSet prepends the set's cardinality as a new leading
// dimension of a per-element field's tensor type, the way reading a field off
// an entire Set yields one tensor value per element of the set.
func liftFieldTypeOverSet(fieldTyp Type, setExpr Expr) Type {
	invariant(IsTensor(fieldTyp), "field type lifted over a set must be a tensor type, got %s", describeType(fieldTyp))
	ft := ToTensor(fieldTyp)
	dims := make([]IndexDomain, 0, len(ft.Dimensions)+1)
	dims = append(dims, Dim(OfSet(setExpr)))
	dims = append(dims, ft.Dimensions...)
	return TensorTypeMakeColumn(ft.Component, ft.ColumnVector, dims...)
}

// ---------------------------------------------------------------------------
// TensorRead

// TensorRead reads a tensor from a tensor location.
type TensorRead struct {
	exprBase
	Tensor  Expr
	Indices []Expr
}

func (n *TensorRead) Accept(v Visitor) { v.VisitTensorRead(n) }
func (n *TensorRead) String() string   { return n.Tensor.String() + "(...)" }

// NewTensorRead builds a TensorRead. tensor's type must be Tensor; each index
// must be scalar or an element. The result type is the block type: the tensor's
// trailing dimensions not consumed by indices.
func NewTensorRead(tensor Expr, indices []Expr) Expr {
	invariant(IsTensor(tensor.Type()), "TensorRead requires a tensor, got %s", describeType(tensor.Type()))
	for i, idx := range indices {
		invariant(IsScalar(idx.Type()) || IsElement(idx.Type()),
			"TensorRead index %d must be scalar or element, got %s", i, describeType(idx.Type()))
	}
	return &TensorRead{
		exprBase: exprBase{Typ: getBlockType(tensor, indices)},
		Tensor:   tensor,
		Indices:  indices,
	}
}

// getBlockType computes the block type resulting from fixing len(indices)
// leading dimensions of tensor's type.
func getBlockType(tensor Expr, indices []Expr) Type {
	tt := ToTensor(tensor.Type())
	invariant(len(indices) <= tt.Order(),
		"tensor read has %d indices but tensor only has order %d", len(indices), tt.Order())
	remaining := tt.Dimensions[len(indices):]
	return TensorTypeMakeColumn(tt.Component, tt.ColumnVector, remaining...)
}

// ---------------------------------------------------------------------------
// TupleRead

// TupleRead reads one element out of a Tuple.
type TupleRead struct {
	exprBase
	Tuple Expr
	Index Expr
}

func (n *TupleRead) Accept(v Visitor) { v.VisitTupleRead(n) }
func (n *TupleRead) String() string   { return n.Tuple.String() + "[" + n.Index.String() + "]" }

// NewTupleRead builds a TupleRead. tuple's type must be Tuple; the result type
// is the tuple's elementType.
func NewTupleRead(tuple, index Expr) Expr {
	invariant(IsTuple(tuple.Type()), "TupleRead requires a tuple, got %s", describeType(tuple.Type()))
	return &TupleRead{
		exprBase: exprBase{Typ: ToTuple(tuple.Type()).ElementType},
		Tuple:    tuple,
		Index:    index,
	}
}

// ---------------------------------------------------------------------------
// IndexRead

// IndexRead retrieves an index structure from an edge set, such as its
// endpoints.
type IndexRead struct {
	exprBase
	EdgeSet   Expr
	IndexName string
}

func (n *IndexRead) Accept(v Visitor) { v.VisitIndexRead(n) }
func (n *IndexRead) String() string   { return n.EdgeSet.String() + "." + n.IndexName }

// NewIndexRead builds an IndexRead. edgeSet's type must be Set; only the name
// "endpoints" is presently recognized. TODO: consider merging Length and
// IndexRead into a single PropertyRead once a second index name is needed.
func NewIndexRead(edgeSet Expr, indexName string) Expr {
	invariant(IsSet(edgeSet.Type()), "IndexRead requires a set, got %s", describeType(edgeSet.Type()))
	invariant(indexName == "endpoints", "only the %q index is supported, got %q", "endpoints", indexName)
	return &IndexRead{
		exprBase:  exprBase{Typ: TensorTypeMake(IntKind(64), Dim(OfSet(edgeSet)))},
		EdgeSet:   edgeSet,
		IndexName: indexName,
	}
}

// ---------------------------------------------------------------------------
// Length

// Length is the cardinality of an IndexSet as an integer scalar.
type Length struct {
	exprBase
	IndexSet IndexSet
}

func (n *Length) Accept(v Visitor) { v.VisitLength(n) }
func (n *Length) String() string   { return "len(...)" }

// NewLength builds a Length expression over indexSet.
func NewLength(indexSet IndexSet) Expr {
	return &Length{
		exprBase: exprBase{Typ: TensorTypeMake(IntKind(64))},
		IndexSet: indexSet,
	}
}

// ---------------------------------------------------------------------------
// IndexedTensor

// IndexedTensor accesses a single scalar of a tensor via index variables, the
// right-hand-side building block of an IndexExpr.
type IndexedTensor struct {
	exprBase
	Tensor    Expr
	IndexVars []IndexVar
}

func (n *IndexedTensor) Accept(v Visitor) { v.VisitIndexedTensor(n) }
func (n *IndexedTensor) String() string   { return n.Tensor.String() + "(indexed)" }

// NewIndexedTensor builds an IndexedTensor. len(indexVars) must equal the
// tensor's order, and each indexVars[i] must range over the tensor's i-th
// dimension. The result is a scalar of the tensor's component type.
func NewIndexedTensor(tensor Expr, indexVars []IndexVar) Expr {
	invariant(IsTensor(tensor.Type()), "IndexedTensor requires a tensor, only tensors can be indexed, got %s", describeType(tensor.Type()))
	tt := ToTensor(tensor.Type())
	invariant(len(indexVars) == tt.Order(),
		"IndexedTensor has %d index variables but tensor has order %d", len(indexVars), tt.Order())
	for i, iv := range indexVars {
		invariant(iv.Domain.Equal(tt.Dimensions[i]),
			"index variable %d domain does not match tensor dimension %d", i, i)
	}
	return &IndexedTensor{
		exprBase:  exprBase{Typ: TensorTypeMake(tt.Component)},
		Tensor:    tensor,
		IndexVars: indexVars,
	}
}

// ---------------------------------------------------------------------------
// IndexExpr

// IndexExpr constructs a tensor from a scalar value defined per combination of
// free index variables.
type IndexExpr struct {
	exprBase
	ResultVars []IndexVar
	Value      Expr
}

func (n *IndexExpr) Accept(v Visitor) { v.VisitIndexExpr(n) }
func (n *IndexExpr) String() string   { return "indexexpr(...)" }

// NewIndexExpr builds an IndexExpr. value must be scalar, and every result
// variable must be a free (non-reduction) index variable.
func NewIndexExpr(resultVars []IndexVar, value Expr) Expr {
	invariant(IsScalar(value.Type()), "IndexExpr value must be scalar, got %s", describeType(value.Type()))
	for i, rv := range resultVars {
		invariant(rv.IsFreeVar(), "IndexExpr result variable %d (%s) must be free, not a reduction variable", i, rv.Name)
	}
	return &IndexExpr{
		exprBase:   exprBase{Typ: getIndexExprType(resultVars, value)},
		ResultVars: resultVars,
		Value:      value,
	}
}

// getIndexExprType builds a tensor with one dimension per result variable's
// domain, with component type taken from the value's scalar type.
func getIndexExprType(resultVars []IndexVar, value Expr) Type {
	vt := ToTensor(value.Type())
	dims := make([]IndexDomain, len(resultVars))
	for i, rv := range resultVars {
		dims[i] = rv.Domain
	}
	return TensorTypeMake(vt.Component, dims...)
}

// Domain returns every index variable referenced by the IndexedTensor nodes of
// the expression's value, in first-seen order and without duplicates. Result
// variables that appear in the value are included alongside the reduction
// variables; nested IndexExpr nodes are not entered.
func (n *IndexExpr) Domain() []IndexVar {
	var found []IndexVar
	seen := func(iv IndexVar) bool {
		for _, f := range found {
			if f.Equal(iv) {
				return true
			}
		}
		return false
	}
	var walk func(e Expr)
	walk = func(e Expr) {
		switch t := e.(type) {
		case *IndexedTensor:
			for _, iv := range t.IndexVars {
				if !seen(iv) {
					found = append(found, iv)
				}
			}
			walk(t.Tensor)
		case *IndexExpr:
			// Do not cross into a nested index expression: its own result variables are
			// locally bound.
			return
		case nil:
			return
		default:
			for _, child := range childExprs(e) {
				walk(child)
			}
		}
	}
	walk(n.Value)
	return found
}

// ---------------------------------------------------------------------------
// Call

// Call invokes a function with a single result.
type Call struct {
	exprBase
	Func    *Function
	Actuals []Expr
}

func (n *Call) Accept(v Visitor) { v.VisitCall(n) }
func (n *Call) String() string   { return n.Func.Name + "(...)" }

// NewCall builds a Call. func must have exactly one result; multi-result calls
// only appear at statement level via Map.
func NewCall(fn *Function, actuals []Expr) Expr {
	invariant(len(fn.Results) == 1,
		"only calls to functions with exactly one result are supported, %q has %d", fn.Name, len(fn.Results))
	return &Call{
		exprBase: exprBase{Typ: fn.Results[0].Type()},
		Func:     fn,
		Actuals:  actuals,
	}
}

// ---------------------------------------------------------------------------
// Unary and binary scalar arithmetic

// Neg is scalar negation.
type Neg struct {
	exprBase
	A Expr
}

func (n *Neg) Accept(v Visitor) { v.VisitNeg(n) }
func (n *Neg) String() string   { return "-" + n.A.String() }

// NewNeg builds a Neg. a must be scalar.
func NewNeg(a Expr) Expr {
	invariant(IsScalar(a.Type()), "Neg requires a scalar operand, got %s", describeType(a.Type()))
	return &Neg{exprBase: exprBase{Typ: a.Type()}, A: a}
}

// binaryArith is embedded by Add, Sub, Mul and Div: all four require scalar
// operands of equal type and return that type.
type binaryArith struct {
	exprBase
	A, B Expr
}

func newBinaryArith(op string, a, b Expr) binaryArith {
	invariant(IsScalar(a.Type()), "%s requires scalar operands, got %s", op, describeType(a.Type()))
	invariant(a.Type().Equal(b.Type()), "%s requires equal operand types, got %s and %s", op, describeType(a.Type()), describeType(b.Type()))
	return binaryArith{exprBase: exprBase{Typ: a.Type()}, A: a, B: b}
}

// Add is scalar addition.
type Add struct{ binaryArith }

func (n *Add) Accept(v Visitor) { v.VisitAdd(n) }
func (n *Add) String() string   { return "(" + n.A.String() + " + " + n.B.String() + ")" }

// NewAdd builds an Add.
func NewAdd(a, b Expr) Expr { return &Add{newBinaryArith("Add", a, b)} }

// Sub is scalar subtraction.
type Sub struct{ binaryArith }

func (n *Sub) Accept(v Visitor) { v.VisitSub(n) }
func (n *Sub) String() string   { return "(" + n.A.String() + " - " + n.B.String() + ")" }

// NewSub builds a Sub.
func NewSub(a, b Expr) Expr { return &Sub{newBinaryArith("Sub", a, b)} }

// Mul is scalar multiplication.
type Mul struct{ binaryArith }

func (n *Mul) Accept(v Visitor) { v.VisitMul(n) }
func (n *Mul) String() string   { return "(" + n.A.String() + " * " + n.B.String() + ")" }

// NewMul builds a Mul.
func NewMul(a, b Expr) Expr { return &Mul{newBinaryArith("Mul", a, b)} }

// Div is scalar division.
type Div struct{ binaryArith }

func (n *Div) Accept(v Visitor) { v.VisitDiv(n) }
func (n *Div) String() string   { return "(" + n.A.String() + " / " + n.B.String() + ")" }

// NewDiv builds a Div.
func NewDiv(a, b Expr) Expr { return &Div{newBinaryArith("Div", a, b)} }

// ---------------------------------------------------------------------------
// Load

// Load reads a scalar out of a raw buffer at a computed index.
type Load struct {
	exprBase
	Buffer Expr
	Index  Expr
}

func (n *Load) Accept(v Visitor) { v.VisitLoad(n) }
func (n *Load) String() string   { return n.Buffer.String() + "[" + n.Index.String() + "]" }

// NewLoad builds a Load. index must be scalar; the result is a scalar of the
// buffer's component type. TODO: a dedicated buffer/array type would let us
// assert buffer's type directly instead of requiring it be a Tensor.
func NewLoad(buffer, index Expr) Expr {
	invariant(IsScalar(index.Type()), "Load index must be scalar, got %s", describeType(index.Type()))
	invariant(IsTensor(buffer.Type()), "Load buffer must be a tensor, got %s", describeType(buffer.Type()))
	return &Load{
		exprBase: exprBase{Typ: TensorTypeMake(ToTensor(buffer.Type()).Component)},
		Buffer:   buffer,
		Index:    index,
	}
}

// childExprs returns the direct expression children of e, used by
// IndexExpr.Domain's tree walk. It does not need to be exhaustive over every
// variant Load/Call/etc. can nest -- only over the arithmetic and indexing
// nodes that can legally appear inside an IndexExpr's value.
func childExprs(e Expr) []Expr {
	switch t := e.(type) {
	case *Neg:
		return []Expr{t.A}
	case *Add:
		return []Expr{t.A, t.B}
	case *Sub:
		return []Expr{t.A, t.B}
	case *Mul:
		return []Expr{t.A, t.B}
	case *Div:
		return []Expr{t.A, t.B}
	case *TensorRead:
		return append([]Expr{t.Tensor}, t.Indices...)
	case *FieldRead:
		return []Expr{t.Base}
	case *Call:
		return t.Actuals
	default:
		return nil
	}
}
