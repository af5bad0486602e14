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

// IndexVarKind distinguishes a free index variable (appears on the left-hand
// side of an IndexExpr) from a reduction variable (summed over).
type IndexVarKind int

const (
	// FreeIndexVar appears in an IndexExpr's result variables.
	FreeIndexVar IndexVarKind = iota
	// ReductionIndexVar is summed over inside an IndexExpr's value.
	ReductionIndexVar
)

// IndexVar is a bound name ranging over an IndexDomain. The path-expression
// algebra that later passes use to describe how an IndexVar maps onto sparse
// storage is out of scope for this package and is not modeled here; an IndexVar
// only carries what the node algebra's typing rules need: its name, its domain,
// and whether it is free or a reduction variable.
type IndexVar struct {
	Name   string
	Domain IndexDomain
	Kind   IndexVarKind
}

// NewFreeIndexVar builds a free index variable over domain.
func NewFreeIndexVar(name string, domain IndexDomain) IndexVar {
	return IndexVar{Name: name, Domain: domain, Kind: FreeIndexVar}
}

// NewReductionIndexVar builds a reduction index variable over domain.
func NewReductionIndexVar(name string, domain IndexDomain) IndexVar {
	return IndexVar{Name: name, Domain: domain, Kind: ReductionIndexVar}
}

// IsFreeVar reports whether the index variable is free.
func (v IndexVar) IsFreeVar() bool {
	return v.Kind == FreeIndexVar
}

// Equal reports whether two index variables have the same name, domain and
// kind.
func (v IndexVar) Equal(o IndexVar) bool {
	return v.Name == o.Name && v.Kind == o.Kind && v.Domain.Equal(o.Domain)
}

func (v IndexVar) String() string {
	return v.Name
}
