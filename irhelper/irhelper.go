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

// Package irhelper provides helper functions to build ir programmatically,
// for use by tests and by passes assembling IR outside of a parser.
package irhelper

import "github.com/simit-lang/simit-ir/ir"

// Float64 returns the 64-bit scalar float type.
func Float64() ir.Type { return ir.FloatType(64) }

// Int returns the 32-bit scalar int type.
func Int() ir.Type { return ir.IntType(32) }

// Vector returns a column-vector tensor type of size elements of component.
func Vector(component ir.ScalarKind, size int) ir.Type {
	return ir.TensorTypeMakeColumn(component, true, ir.Dim(ir.Range(size)))
}

// Matrix returns a rows-by-cols tensor type of component.
func Matrix(component ir.ScalarKind, rows, cols int) ir.Type {
	return ir.TensorTypeMake(component, ir.Dim(ir.Range(rows)), ir.Dim(ir.Range(cols)))
}

// Element builds an element type from alternating field name/type pairs.
func Element(name string, fieldsAndTypes ...any) ir.Type {
	fields := make(map[string]ir.Type, len(fieldsAndTypes)/2)
	for i := 0; i+1 < len(fieldsAndTypes); i += 2 {
		fields[fieldsAndTypes[i].(string)] = fieldsAndTypes[i+1].(ir.Type)
	}
	return ir.ElementTypeMake(name, fields)
}

// Var allocates a fresh variable.
func Var(name string, typ ir.Type) ir.Var {
	return ir.NewVar(name, typ)
}

// Vars allocates one fresh variable per name, all of the same type.
func Vars(typ ir.Type, names ...string) []ir.Var {
	vars := make([]ir.Var, len(names))
	for i, name := range names {
		vars[i] = ir.NewVar(name, typ)
	}
	return vars
}

// Block folds a non-empty sequence of statements into a linked Block chain.
func Block(stmts ...ir.Stmt) ir.Stmt {
	return ir.NewBlock(stmts)
}

// Scalar builds a scalar Literal out of a single float64 value.
func Scalar(component ir.ScalarKind, value float64) *ir.Literal {
	return ir.LiteralFromFloat64s(ir.TensorTypeMake(component), []float64{value})
}

// Func builds an internal function out of argument/result variables and a
// body, folding a non-empty statement slice into a Block chain; with no
// statements the body is a Pass.
func Func(name string, arguments, results []ir.Var, body ...ir.Stmt) *ir.Function {
	var stmt ir.Stmt
	if len(body) > 0 {
		stmt = ir.NewBlock(body)
	} else {
		stmt = ir.NewPass()
	}
	return ir.NewFunction(name, arguments, results, stmt)
}
