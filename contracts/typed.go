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
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// TypedTree is a [Tree] using type information: names resolve to their objects,
// embedded types are followed through aliases and generic instantiations.
type TypedTree struct {
	*index

	pkg     *types.Package
	info    *types.Info
	classes map[*types.TypeName]*ast.TypeSpec
	values  map[types.Object]ast.Expr // nil for declarations without a simple value
}

// NewTypedTree creates a [TypedTree] for the type-checked files of pkg.
// info needs Defs and Uses.
func NewTypedTree(fset *token.FileSet, in *inspector.Inspector, pkg *types.Package, info *types.Info) *TypedTree {
	t := &TypedTree{
		pkg:     pkg,
		info:    info,
		classes: make(map[*types.TypeName]*ast.TypeSpec),
		values:  make(map[types.Object]ast.Expr),
	}

	for d := range declarations(in) {
		switch spec := d.node.(type) {
		case *ast.TypeSpec:
			if obj, ok := info.Defs[spec.Name].(*types.TypeName); ok {
				t.classes[obj] = spec
			}

		case *ast.ValueSpec:
			for i, name := range spec.Names {
				if obj := info.Defs[name]; obj != nil {
					t.values[obj] = simpleValue(spec, i)
				}
			}
		}
	}

	t.index = newIndex(fset, in, t.receiver)

	return t
}

// QualifiedName implements [Tree].
func (t *TypedTree) QualifiedName(sel *ast.SelectorExpr) (string, bool) {
	x, ok := ast.Unparen(sel.X).(*ast.Ident)
	if !ok {
		return "", false
	}

	if obj, ok := t.info.Uses[x]; ok {
		pkgName, ok := obj.(*types.PkgName)
		if !ok {
			return "", false // field or method selection
		}

		return pkgName.Imported().Name() + "." + sel.Sel.Name, true
	}

	// decorator comments are not type checked, resolve against the imports of their file
	if f := t.file(sel); f != nil {
		for _, spec := range f.Imports {
			if pkgName := t.info.PkgNameOf(spec); pkgName != nil && pkgName.Name() == x.Name {
				return pkgName.Imported().Name() + "." + sel.Sel.Name, true
			}
		}
	}

	return x.Name + "." + sel.Sel.Name, true
}

// Assignment implements [Tree].
func (t *TypedTree) Assignment(id *ast.Ident) (ast.Expr, bool) {
	obj := t.info.Uses[id]
	if obj == nil {
		obj = t.pkg.Scope().Lookup(id.Name)
	}

	v, ok := obj.(*types.Var)
	if !ok {
		return nil, false
	}

	value := t.values[v]

	return value, value != nil
}

// Ancestors implements [Tree].
func (t *TypedTree) Ancestors(class *ast.TypeSpec) []*ast.TypeSpec {
	obj, ok := t.info.Defs[class.Name].(*types.TypeName)
	if !ok {
		return nil
	}

	var ancestors []*ast.TypeSpec

	for _, tn := range breadthFirst(namedOrSelf(obj), embeddedTypes) {
		if spec, ok := t.classes[tn]; ok && spec != class {
			ancestors = append(ancestors, spec)
		}
	}

	return ancestors
}

func (t *TypedTree) receiver(_ *ast.File, expr ast.Expr) *ast.TypeSpec {
	id := receiverName(expr)
	if id == nil {
		return nil
	}

	obj, ok := t.info.Uses[id].(*types.TypeName)
	if !ok {
		return nil
	}

	return t.classes[namedOrSelf(obj)]
}

// embeddedTypes returns the named types embedded in the struct or interface tn.
func embeddedTypes(tn *types.TypeName) []*types.TypeName {
	var embedded []*types.TypeName

	switch u := tn.Type().Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			if f := u.Field(i); f.Embedded() {
				if e := namedType(f.Type()); e != nil {
					embedded = append(embedded, e)
				}
			}
		}

	case *types.Interface:
		for i := range u.NumEmbeddeds() {
			if e := namedType(u.EmbeddedType(i)); e != nil {
				embedded = append(embedded, e)
			}
		}
	}

	return embedded
}

// namedType returns the generic origin of a possibly aliased named type or pointer to it.
func namedType(typ types.Type) *types.TypeName {
	typ = types.Unalias(typ)
	if p, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(p.Elem())
	}

	if n, ok := typ.(*types.Named); ok {
		return n.Origin().Obj()
	}

	return nil
}

// namedOrSelf resolves an alias type name to the named type it denotes.
func namedOrSelf(tn *types.TypeName) *types.TypeName {
	if !tn.IsAlias() {
		return tn
	}

	if named := namedType(tn.Type()); named != nil {
		return named
	}

	return tn
}
