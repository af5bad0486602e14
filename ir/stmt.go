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

// Stmt is the handle every statement node is exposed through. Statements have
// no cached type.
type Stmt interface {
	Node
	stmtNode()
	Accept(Visitor)
	String() string
}

// stmtBase is embedded by every concrete statement variant; it seals the
// Node/Stmt interfaces.
type stmtBase struct{}

func (stmtBase) node()     {}
func (stmtBase) stmtNode() {}

// IsaStmt reports whether s's dynamic variant is S.
func IsaStmt[S Stmt](s Stmt) bool {
	if s == nil {
		return false
	}
	_, ok := s.(S)
	return ok
}

// ToStmt safely projects s to S. Fatal if s's dynamic variant is not S.
func ToStmt[S Stmt](s Stmt) S {
	v, ok := s.(S)
	invariant(ok, "statement %s is not of the requested variant", describeStmt(s))
	return v
}

func describeStmt(s Stmt) string {
	if s == nil {
		return "<nil>"
	}
	return s.String()
}

// ---------------------------------------------------------------------------
// AssignStmt

// AssignStmt assigns value to var.
type AssignStmt struct {
	stmtBase
	Var   Var
	Value Expr
}

func (n *AssignStmt) Accept(v Visitor) { v.VisitAssignStmt(n) }
func (n *AssignStmt) String() string   { return n.Var.String() + " = " + n.Value.String() }

// NewAssignStmt builds an AssignStmt. No precondition is enforced at the IR
// level beyond argument validity.
func NewAssignStmt(v Var, value Expr) Stmt {
	return &AssignStmt{Var: v, Value: value}
}

// ---------------------------------------------------------------------------
// Map

// ReductionOperator is the reduction a Map statement applies when writing its
// function's results back into vars.
type ReductionOperator int

const (
	// NoReduction assigns the function's results directly (the default).
	NoReduction ReductionOperator = iota
	// SumReduce accumulates the function's results with +=.
	SumReduce
)

// Map reduces a function over a target set, optionally joining with a neighbor
// set.
type Map struct {
	stmtBase
	Vars      []Var
	Function  *Function
	Target    Expr
	Neighbors Expr
	Reduction ReductionOperator
}

func (n *Map) Accept(v Visitor) { v.VisitMap(n) }
func (n *Map) String() string   { return "map " + n.Function.Name + " over " + n.Target.String() }

// MapOption configures a Map statement at construction.
type MapOption func(*Map)

// WithNeighbors sets a Map's neighbor set.
func WithNeighbors(neighbors Expr) MapOption {
	return func(m *Map) { m.Neighbors = neighbors }
}

// WithReduction sets a Map's reduction operator.
func WithReduction(op ReductionOperator) MapOption {
	return func(m *Map) { m.Reduction = op }
}

// NewMap builds a Map. target must be a set; neighbors, if given via
// WithNeighbors, must also be a set; len(vars) must equal the number of results
// function produces.
func NewMap(vars []Var, function *Function, target Expr, opts ...MapOption) Stmt {
	invariant(IsSet(target.Type()), "Map target must be a set, got %s", describeType(target.Type()))
	invariant(len(vars) == len(function.Results),
		"Map has %d result variables but function %q has %d results", len(vars), function.Name, len(function.Results))
	m := &Map{Vars: vars, Function: function, Target: target}
	for _, opt := range opts {
		opt(m)
	}
	if m.Neighbors != nil {
		invariant(IsSet(m.Neighbors.Type()),
			"Map neighbors must be a set, got %s", describeType(m.Neighbors.Type()))
	}
	return m
}

// ---------------------------------------------------------------------------
// FieldWrite, TensorWrite, Store

// FieldWrite writes value into an element or set field.
type FieldWrite struct {
	stmtBase
	ElementOrSet Expr
	FieldName    string
	Value        Expr
}

func (n *FieldWrite) Accept(v Visitor) { v.VisitFieldWrite(n) }
func (n *FieldWrite) String() string {
	return n.ElementOrSet.String() + "." + n.FieldName + " = " + n.Value.String()
}

// NewFieldWrite builds a FieldWrite.
func NewFieldWrite(elementOrSet Expr, fieldName string, value Expr) Stmt {
	invariant(IsElement(elementOrSet.Type()) || IsSet(elementOrSet.Type()),
		"FieldWrite target must have an element or set type, got %s", describeType(elementOrSet.Type()))
	return &FieldWrite{ElementOrSet: elementOrSet, FieldName: fieldName, Value: value}
}

// TensorWrite writes value into a tensor location.
type TensorWrite struct {
	stmtBase
	Tensor  Expr
	Indices []Expr
	Value   Expr
}

func (n *TensorWrite) Accept(v Visitor) { v.VisitTensorWrite(n) }
func (n *TensorWrite) String() string   { return n.Tensor.String() + "(...) = " + n.Value.String() }

// NewTensorWrite builds a TensorWrite, mirroring TensorRead's preconditions:
// tensor must be a tensor, and each index must be scalar or an element.
func NewTensorWrite(tensor Expr, indices []Expr, value Expr) Stmt {
	invariant(IsTensor(tensor.Type()), "TensorWrite requires a tensor, got %s", describeType(tensor.Type()))
	for i, idx := range indices {
		invariant(IsScalar(idx.Type()) || IsElement(idx.Type()),
			"TensorWrite index %d must be scalar or element, got %s", i, describeType(idx.Type()))
	}
	return &TensorWrite{Tensor: tensor, Indices: indices, Value: value}
}

// Store writes value into a raw buffer at a computed index.
type Store struct {
	stmtBase
	Buffer Expr
	Index  Expr
	Value  Expr
}

func (n *Store) Accept(v Visitor) { v.VisitStore(n) }
func (n *Store) String() string   { return n.Buffer.String() + "[" + n.Index.String() + "] = " + n.Value.String() }

// NewStore builds a Store, mirroring Load's preconditions: buffer must be a
// tensor and index must be scalar.
func NewStore(buffer, index, value Expr) Stmt {
	invariant(IsTensor(buffer.Type()), "Store buffer must be a tensor, got %s", describeType(buffer.Type()))
	invariant(IsScalar(index.Type()), "Store index must be scalar, got %s", describeType(index.Type()))
	return &Store{Buffer: buffer, Index: index, Value: value}
}

// ---------------------------------------------------------------------------
// ForRange, For, ForDomain

// ForRange is a loop over an integer range [start, end).
type ForRange struct {
	stmtBase
	Var   Var
	Start Expr
	End   Expr
	Body  Stmt
}

func (n *ForRange) Accept(v Visitor) { v.VisitForRange(n) }
func (n *ForRange) String() string   { return "for " + n.Var.String() + " in range" }

// NewForRange builds a ForRange.
func NewForRange(v Var, start, end Expr, body Stmt) Stmt {
	return &ForRange{Var: v, Start: start, End: end, Body: body}
}

// ForDomainKind is the closed set of things a For statement can iterate over.
type ForDomainKind int

const (
	// ForIndexSet iterates directly over an IndexSet.
	ForIndexSet ForDomainKind = iota
	// ForEndpoints iterates over the endpoints of edges incident to Var.
	ForEndpoints
	// ForEdges iterates over the edges incident to Var.
	ForEdges
)

// ForDomain is the tagged union a For statement iterates over: a raw index set,
// edge endpoints, or edges incident to a node.
type ForDomain struct {
	Kind     ForDomainKind
	IndexSet IndexSet // valid when Kind == ForIndexSet
	Set      Expr     // valid when Kind == ForEndpoints || Kind == ForEdges
	Var      Var      // valid when Kind == ForEndpoints || Kind == ForEdges
}

// OverIndexSet builds a ForDomain iterating over an IndexSet directly.
func OverIndexSet(indexSet IndexSet) ForDomain {
	return ForDomain{Kind: ForIndexSet, IndexSet: indexSet}
}

// OverEndpoints builds a ForDomain iterating over the endpoints of edges in set
// incident to v.
func OverEndpoints(set Expr, v Var) ForDomain {
	invariant(IsSet(set.Type()), "ForDomain endpoints requires a set, got %s", describeType(set.Type()))
	return ForDomain{Kind: ForEndpoints, Set: set, Var: v}
}

// OverEdges builds a ForDomain iterating over the edges in set incident to v.
func OverEdges(set Expr, v Var) ForDomain {
	invariant(IsSet(set.Type()), "ForDomain edges requires a set, got %s", describeType(set.Type()))
	return ForDomain{Kind: ForEdges, Set: set, Var: v}
}

// For iterates var over domain, running body once per element.
type For struct {
	stmtBase
	Var    Var
	Domain ForDomain
	Body   Stmt
}

func (n *For) Accept(v Visitor) { v.VisitFor(n) }
func (n *For) String() string   { return "for " + n.Var.String() }

// NewFor builds a For.
func NewFor(v Var, domain ForDomain, body Stmt) Stmt {
	return &For{Var: v, Domain: domain, Body: body}
}

// ---------------------------------------------------------------------------
// IfThenElse

// IfThenElse branches on condition.
type IfThenElse struct {
	stmtBase
	Condition Expr
	ThenBody  Stmt
	ElseBody  Stmt
}

func (n *IfThenElse) Accept(v Visitor) { v.VisitIfThenElse(n) }
func (n *IfThenElse) String() string   { return "if " + n.Condition.String() }

// NewIfThenElse builds an IfThenElse.
func NewIfThenElse(condition Expr, thenBody, elseBody Stmt) Stmt {
	return &IfThenElse{Condition: condition, ThenBody: thenBody, ElseBody: elseBody}
}

// ---------------------------------------------------------------------------
// Block

// Block is a linked pair of statements: First runs, then Rest.
type Block struct {
	stmtBase
	First Stmt
	Rest  Stmt
}

func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }
func (n *Block) String() string   { return "block" }

// NewBlockPair builds a Block out of two statements. first must be defined.
func NewBlockPair(first, rest Stmt) Stmt {
	invariant(first != nil, "empty block: first statement must be defined")
	return &Block{First: first, Rest: rest}
}

// NewBlock folds a non-empty sequence of statements right-to-left into a linked
// chain of Blocks.
func NewBlock(stmts []Stmt) Stmt {
	invariant(len(stmts) > 0, "empty block: statement list must be non-empty")
	var node Stmt
	for i := len(stmts); i > 0; i-- {
		node = NewBlockPair(stmts[i-1], node)
	}
	return node
}

// ---------------------------------------------------------------------------
// Pass

// Pass is a no-op statement, convenient during incremental construction.
type Pass struct {
	stmtBase
}

func (n *Pass) Accept(v Visitor) { v.VisitPass(n) }
func (n *Pass) String() string   { return "pass" }

// NewPass builds a Pass.
func NewPass() Stmt {
	return &Pass{}
}
