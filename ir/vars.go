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

// varDescriptor is the shared payload behind a Var. Variables have reference
// identity: two Vars with identical name and type are the same variable only if
// they share a descriptor.
type varDescriptor struct {
	name string
	typ  Type
}

// Var is a named, typed binding. Var is a thin handle over a shared descriptor;
// copying a Var copies only the pointer, and the IR uses Vars as hashable keys
// by descriptor identity, not by name/type value.
type Var struct {
	d *varDescriptor
}

// NewVar allocates a new variable descriptor.
func NewVar(name string, typ Type) Var {
	return Var{d: &varDescriptor{name: name, typ: typ}}
}

// UndefinedVar constructs the undefined sentinel Var.
func UndefinedVar() Var {
	return Var{}
}

// Defined reports whether v is not the undefined sentinel.
func (v Var) Defined() bool {
	return v.d != nil
}

// Name returns the variable's name.
func (v Var) Name() string {
	invariant(v.Defined(), "Name called on an undefined variable")
	return v.d.name
}

// Type returns the variable's type.
func (v Var) Type() Type {
	invariant(v.Defined(), "Type called on an undefined variable")
	return v.d.typ
}

// Equal reports whether v and o refer to the same variable descriptor.
func (v Var) Equal(o Var) bool {
	return v.d == o.d
}

func (v Var) String() string {
	if !v.Defined() {
		return "<undefined var>"
	}
	return v.d.name
}
