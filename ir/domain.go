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

// IndexSetKind distinguishes the ways an IndexSet's cardinality can be
// determined.
type IndexSetKind int

const (
	// RangeIndexSet is a fixed-size range [0, Size), known at construction.
	RangeIndexSet IndexSetKind = iota
	// SetIndexSet is backed by a Set-typed expression; its cardinality is whatever
	// that set's runtime size is, unknown to the IR.
	SetIndexSet
	// UnboundedIndexSet has no statically known cardinality at all; it backs the
	// raw coordinate/sink arrays a TensorIndex fabricates, which are buffers whose
	// length is determined by the sparse structure assembled at runtime, not by any
	// set or range in the program.
	UnboundedIndexSet
)

// IndexSet identifies a single dimension's worth of index space: a fixed-size
// range, the dynamic cardinality of a graph Set, or an unbounded extent.
type IndexSet struct {
	Kind IndexSetKind

	// Size is the cardinality for a RangeIndexSet. Unused otherwise.
	Size int

	// Set is the backing set expression for a SetIndexSet. Its type must be a
	// *SetType. Unused otherwise.
	Set Expr
}

// Range returns a fixed-size IndexSet of the given cardinality.
func Range(size int) IndexSet {
	invariant(size >= 0, "range index set size must be non-negative, got %d", size)
	return IndexSet{Kind: RangeIndexSet, Size: size}
}

// OfSet returns an IndexSet whose cardinality is the runtime size of set.
func OfSet(set Expr) IndexSet {
	invariant(set != nil && set.Type() != nil && set.Type().Kind() == SetTypeKind,
		"OfSet requires a Set-typed expression")
	return IndexSet{Kind: SetIndexSet, Set: set}
}

// Unbounded returns an IndexSet with no statically known cardinality.
func Unbounded() IndexSet {
	return IndexSet{Kind: UnboundedIndexSet}
}

// Cardinality returns the IndexSet's size and whether it is statically known.
func (s IndexSet) Cardinality() (int, bool) {
	if s.Kind == RangeIndexSet {
		return s.Size, true
	}
	return 0, false
}

// Equal reports structural/reference equality between two IndexSets: range sets
// compare by size, set-backed sets compare by the identity of their backing
// expression, and unbounded sets are always equal to one another.
func (s IndexSet) Equal(o IndexSet) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case RangeIndexSet:
		return s.Size == o.Size
	case SetIndexSet:
		return s.Set == o.Set
	default:
		return true
	}
}

// IndexDomain is an ordered product of IndexSets: it is what a single tensor
// dimension or IndexVar ranges over. A domain of one IndexSet is the common
// case; multiple IndexSets model a blocked dimension assembled from several
// element kinds.
type IndexDomain struct {
	Sets []IndexSet
}

// Dim builds an IndexDomain from one or more IndexSets.
func Dim(sets ...IndexSet) IndexDomain {
	invariant(len(sets) > 0, "an index domain must have at least one index set")
	return IndexDomain{Sets: sets}
}

// Cardinality returns the domain's size (the product of its IndexSets'
// cardinalities) and whether it is statically known.
func (d IndexDomain) Cardinality() (int, bool) {
	total := 1
	for _, s := range d.Sets {
		c, ok := s.Cardinality()
		if !ok {
			return 0, false
		}
		total *= c
	}
	return total, true
}

// Equal reports whether two index domains have element-wise equal IndexSets.
func (d IndexDomain) Equal(o IndexDomain) bool {
	if len(d.Sets) != len(o.Sets) {
		return false
	}
	for i, s := range d.Sets {
		if !s.Equal(o.Sets[i]) {
			return false
		}
	}
	return true
}
