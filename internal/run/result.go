// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"cmp"
	"go/types"
	"iter"
	"maps"
	"slices"

	"fillmore-labs.com/dealguard/contracts"
	"fillmore-labs.com/dealguard/docfmt"
)

// Result maps the decorated functions, methods and interface methods of a package to their contracts.
type Result struct {
	render    docfmt.Renderer
	contracts map[*types.Func][]contracts.Contract
}

func newResult(render docfmt.Renderer) *Result {
	return &Result{render: render, contracts: make(map[*types.Func][]contracts.Contract)}
}

// Contracts returns the contracts of fn.
func (r *Result) Contracts(fn *types.Func) []contracts.Contract {
	return slices.Clone(r.contracts[fn])
}

// Summary returns the documentation summary of fn.
func (r *Result) Summary(fn *types.Func) (docfmt.Summary, bool) {
	cs, ok := r.contracts[fn]
	if !ok {
		return docfmt.Summary{}, false
	}

	return docfmt.Summarize(FuncName(fn), r.render, cs), true
}

// Len returns the number of functions with contracts.
func (r *Result) Len() int {
	return len(r.contracts)
}

// All yields the functions with contracts in source order.
func (r *Result) All() iter.Seq2[*types.Func, []contracts.Contract] {
	return func(yield func(*types.Func, []contracts.Contract) bool) {
		funcs := slices.SortedFunc(maps.Keys(r.contracts), func(a, b *types.Func) int {
			return cmp.Compare(a.Pos(), b.Pos())
		})

		for _, fn := range funcs {
			if !yield(fn, slices.Clone(r.contracts[fn])) {
				return
			}
		}
	}
}

// FuncName returns the name of fn qualified by its receiver type name, like "Account.Withdraw".
func FuncName(fn *types.Func) string {
	recv := fn.Signature().Recv()
	if recv == nil {
		return fn.Name()
	}

	typ := types.Unalias(recv.Type())
	if p, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(p.Elem())
	}

	if named, ok := typ.(*types.Named); ok {
		return named.Obj().Name() + "." + fn.Name()
	}

	return fn.Name()
}
