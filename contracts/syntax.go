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
	"go/token"

	"golang.org/x/tools/go/ast/inspector"
)

// SyntaxTree is a [Tree] on syntax alone. Names are resolved by identifier,
// import paths are mapped to package names by their last element.
type SyntaxTree struct {
	*index

	classes map[string]*ast.TypeSpec
	values  map[string]ast.Expr // nil for declarations without a simple value
}

// NewSyntaxTree creates a [SyntaxTree] for the files of one package.
func NewSyntaxTree(fset *token.FileSet, in *inspector.Inspector) *SyntaxTree {
	t := &SyntaxTree{
		classes: make(map[string]*ast.TypeSpec),
		values:  make(map[string]ast.Expr),
	}

	for d := range declarations(in) {
		switch spec := d.node.(type) {
		case *ast.TypeSpec:
			t.classes[spec.Name.Name] = spec

		case *ast.ValueSpec:
			for i, name := range spec.Names {
				t.values[name.Name] = simpleValue(spec, i)
			}
		}
	}

	t.index = newIndex(fset, in, t.receiver)

	return t
}

// QualifiedName implements [Tree].
func (t *SyntaxTree) QualifiedName(sel *ast.SelectorExpr) (string, bool) {
	x, ok := ast.Unparen(sel.X).(*ast.Ident)
	if !ok {
		return "", false
	}

	pkg := x.Name
	if f := t.file(sel); f != nil {
		if name, ok := t.imports[f][x.Name]; ok {
			pkg = name
		}
	}

	return pkg + "." + sel.Sel.Name, true
}

// Assignment implements [Tree].
func (t *SyntaxTree) Assignment(id *ast.Ident) (ast.Expr, bool) {
	value := t.values[id.Name]

	return value, value != nil
}

// Ancestors implements [Tree].
func (t *SyntaxTree) Ancestors(class *ast.TypeSpec) []*ast.TypeSpec {
	return breadthFirst(class, t.embedded)
}

func (t *SyntaxTree) embedded(class *ast.TypeSpec) []*ast.TypeSpec {
	var fields *ast.FieldList

	switch typ := class.Type.(type) {
	case *ast.StructType:
		fields = typ.Fields

	case *ast.InterfaceType:
		fields = typ.Methods

	default:
		return nil
	}

	var embedded []*ast.TypeSpec

	for _, field := range fields.List {
		if len(field.Names) > 0 {
			continue
		}

		id := receiverName(field.Type)
		if id == nil {
			continue // qualified or constraint
		}

		if spec, ok := t.classes[id.Name]; ok {
			embedded = append(embedded, spec)
		}
	}

	return embedded
}

func (t *SyntaxTree) receiver(_ *ast.File, expr ast.Expr) *ast.TypeSpec {
	id := receiverName(expr)
	if id == nil {
		return nil
	}

	return t.classes[id.Name]
}

// simpleValue returns the value bound to the i-th name of spec, or nil.
func simpleValue(spec *ast.ValueSpec, i int) ast.Expr {
	if len(spec.Values) != len(spec.Names) {
		return nil
	}

	return spec.Values[i]
}
