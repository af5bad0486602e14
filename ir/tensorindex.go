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

// PathExpression is an opaque handle later sparse-layout passes attach to a
// TensorIndex to describe how its coordinates are derived from a graph's
// edge structure. This package does not interpret it; it only carries it
// through construction and pretty-printing.
type PathExpression struct {
	description string
}

// NewPathExpression wraps an opaque description string as a PathExpression.
func NewPathExpression(description string) PathExpression {
	return PathExpression{description: description}
}

func (p PathExpression) String() string {
	if p.description == "" {
		return "<path expression>"
	}
	return p.description
}

// arrayOfInt is the `Array(Int)` type a TensorIndex's coordinate and sink
// Vars are given: a 1-D tensor with an unbounded dimension, since the node
// algebra's four-variant Type sum has no dedicated array variant.
func arrayOfInt() Type {
	return TensorTypeMake(IntKind(64), Dim(Unbounded()))
}

// TensorIndex is a pure descriptor used by later sparse-layout passes: a
// name, an opaque path expression, and two fabricated Vars holding the
// coordinate and sink arrays a sparse tensor's storage needs.
type TensorIndex struct {
	Name           string
	PathExpression PathExpression
	CoordArray     Var
	SinkArray      Var
}

// NewTensorIndex builds a TensorIndex. It fabricates two Vars named
// "{prefix}coords" and "{prefix}sinks", where prefix is name+"_" unless name
// is empty.
func NewTensorIndex(name string, pathExpression PathExpression) *TensorIndex {
	prefix := ""
	if name != "" {
		prefix = name + "_"
	}
	return &TensorIndex{
		Name:           name,
		PathExpression: pathExpression,
		CoordArray:     NewVar(prefix+"coords", arrayOfInt()),
		SinkArray:      NewVar(prefix+"sinks", arrayOfInt()),
	}
}

func (ti *TensorIndex) String() string {
	return "tensor index " + ti.Name + ": " + ti.PathExpression.String() +
		"\n  coords: " + ti.CoordArray.String() +
		"\n  sinks: " + ti.SinkArray.String()
}
