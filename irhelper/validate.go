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

package irhelper

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/simit-lang/simit-ir/ir"
)

// validator is a BaseVisitor that records every defensive inconsistency it
// finds instead of stopping at the first one, unlike the node constructors'
// fatal assertions which stop at construction time.
type validator struct {
	ir.BaseVisitor
	errs error
}

func (v *validator) fail(format string, args ...any) {
	v.errs = multierr.Append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) VisitVarExpr(n *ir.VarExpr) {
	if !n.V.Defined() {
		v.fail("VarExpr references an undefined variable")
	}
}

func (v *validator) VisitIndexExpr(n *ir.IndexExpr) {
	for _, rv := range n.ResultVars {
		if !rv.IsFreeVar() {
			v.fail("IndexExpr result variable %q is not free", rv.Name)
		}
	}
	v.BaseVisitor.VisitIndexExpr(n)
}

func (v *validator) VisitMap(n *ir.Map) {
	if n.Function == nil {
		v.fail("Map statement has no function")
		return
	}
	if len(n.Vars) != len(n.Function.Results) {
		v.fail("Map assigns %d variables but function %q has %d results", len(n.Vars), n.Function.Name, len(n.Function.Results))
	}
	v.BaseVisitor.VisitMap(n)
}

func (v *validator) VisitFunction(fn *ir.Function) {
	if fn.Kind == ir.InternalFunc && fn.Body == nil {
		v.fail("internal function %q has no body", fn.Name)
		return
	}
	if fn.Kind == ir.IntrinsicFunc && fn.Body != nil {
		v.fail("intrinsic function %q unexpectedly has a body", fn.Name)
	}
	v.BaseVisitor.VisitFunction(fn)
}

// Validate walks fn with the visitor, collecting every defensive
// inconsistency it can find rather than panicking on the first one. It
// returns nil if fn is well-formed.
func Validate(fn *ir.Function) error {
	v := &validator{}
	v.Self = v
	fn.Accept(v)
	return v.errs
}
