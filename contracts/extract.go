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

package contracts

import (
	"go/ast"
	"iter"
	"slices"
)

// maxDepth bounds the nesting of chains, aliases and inherited contracts.
const maxDepth = 32

// Extractor finds the contracts declared by decorators.
type Extractor struct {
	tree Tree
}

// New creates an [Extractor] on tree.
func New(tree Tree) *Extractor {
	return &Extractor{tree: tree}
}

// Of returns the contracts declared on owner, a function declaration or an interface method.
func (e *Extractor) Of(owner ast.Node) iter.Seq[Contract] {
	return e.Contracts(e.tree.Decorators(owner))
}

// Contracts returns the contracts declared by decorators, in source order.
//
// The sequence is lazy and walks the decorators again on every iteration.
// Decorators not recognized as contracts are skipped.
func (e *Extractor) Contracts(decorators []ast.Expr) iter.Seq[Contract] {
	return func(yield func(Contract) bool) {
		w := walker{tree: e.tree, yield: yield}
		w.walk(decorators, 0)
	}
}

// Collect returns the contracts of seq as a slice.
func Collect(seq iter.Seq[Contract]) []Contract {
	return slices.Collect(seq)
}

// walker holds the state of a single iteration.
type walker struct {
	tree  Tree
	yield func(Contract) bool

	// expanded records classes whose inherited contracts were already yielded.
	expanded map[*ast.TypeSpec]struct{}
}

func (w *walker) walk(decorators []ast.Expr, depth int) bool {
	if depth > maxDepth {
		return true
	}

	for _, d := range decorators {
		if !w.decorator(d, depth) {
			return false
		}
	}

	return true
}

func (w *walker) decorator(d ast.Expr, depth int) bool {
	switch n := ast.Unparen(d).(type) {
	case *ast.SelectorExpr: // marker, like deal.Pure
		name, ok := w.tree.QualifiedName(n)
		if !ok {
			return true
		}

		if name == InheritName {
			return w.inherit(n, depth)
		}

		kind, ok := markers[name]
		if !ok {
			return true
		}

		return w.yield(newContract(kind, nil))

	case *ast.CallExpr: // contract, like deal.Pre(...)
		fun, ok := ast.Unparen(n.Fun).(*ast.SelectorExpr)
		if !ok {
			return true
		}

		name, ok := w.tree.QualifiedName(fun)
		if !ok {
			return true
		}

		if name == ChainName {
			return w.walk(n.Args, depth+1)
		}

		kind, ok := supported[name]
		if !ok {
			return true
		}

		return w.yield(newContract(kind, n.Args))

	case *ast.Ident: // contract stored in a variable
		value, ok := w.tree.Assignment(n)
		if !ok {
			return true
		}

		return w.walk([]ast.Expr{value}, depth+1)

	default:
		return true
	}
}

// inherit yields the contracts of all methods of the ancestors of the class the decorator is attached to.
//
// Each class is expanded at most once per iteration, so embedding cycles
// and diamonds do not repeat work.
func (w *walker) inherit(n ast.Node, depth int) bool {
	class, ok := w.tree.EnclosingClass(n)
	if !ok {
		return true
	}

	if _, ok := w.expanded[class]; ok {
		return true
	}

	if w.expanded == nil {
		w.expanded = make(map[*ast.TypeSpec]struct{})
	}
	w.expanded[class] = struct{}{}

	for _, ancestor := range w.tree.Ancestors(class) {
		for _, method := range w.tree.Methods(ancestor) {
			if !w.walk(w.tree.Decorators(method), depth+1) {
				return false
			}
		}
	}

	return true
}
