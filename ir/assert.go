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

import "github.com/pkg/errors"

// invariant panics with a formatted message if cond is false. Every
// precondition check in this package funnels through here. A failure means a
// caller (parser, pass) built the tree incorrectly; it is a compiler-internal
// bug, not a recoverable error, so we panic rather than return an error.
func invariant(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(errors.Errorf(format, args...))
}

// unreachable panics unconditionally with a formatted message.
func unreachable(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}
