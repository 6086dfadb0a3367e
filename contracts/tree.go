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
	"bytes"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"iter"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/dealguard/internal/directive"
)

// Tree is the syntax tree of one package as seen by the [Extractor].
//
// A class is a named type declared in the package: methods with this receiver type
// (or the methods of an interface type) are its methods, and its embedded types are its ancestors.
type Tree interface {
	// Decorators returns the parsed decorators of a function declaration or interface method in source order.
	Decorators(owner ast.Node) []ast.Expr

	// QualifiedName returns the name "pkg.Name" of a selector expression.
	QualifiedName(sel *ast.SelectorExpr) (string, bool)

	// Assignment returns the value bound to id by its nearest simple assignment.
	Assignment(id *ast.Ident) (ast.Expr, bool)

	// EnclosingClass returns the class owning the method a decorator node is attached to.
	EnclosingClass(node ast.Node) (*ast.TypeSpec, bool)

	// Ancestors returns the classes embedded in class, breadth first.
	Ancestors(class *ast.TypeSpec) []*ast.TypeSpec

	// Methods returns the methods class declares directly.
	Methods(class *ast.TypeSpec) []ast.Node

	// Source renders an expression of this tree.
	Source(expr ast.Expr) string
}

// Decorator is a decorator comment and its parsed expression.
type Decorator = directive.Decorator

// index holds what both [Tree] implementations share: the decorators of all functions and
// interface methods, the parent relation of decorator expressions and the methods of classes.
type index struct {
	fset   *token.FileSet
	files  []*ast.File
	parser *directive.Parser

	decorators map[ast.Node][]Decorator        // owner -> decorators
	parents    map[ast.Node]ast.Node           // decorator node -> parent, root -> owner
	owners     map[ast.Node]*ast.File          // owner -> file
	classOf    map[ast.Node]*ast.TypeSpec      // method -> class
	methods    map[*ast.TypeSpec][]ast.Node    // class -> methods
	imports    map[*ast.File]map[string]string // file -> local name -> package name
}

// declaration is a package level declaration found by [declarations].
type declaration struct {
	file *ast.File
	node ast.Node // *ast.FuncDecl, *ast.TypeSpec or a variable *ast.ValueSpec
}

// declarations yields the function declarations, type specs and variable specs
// at package level of all files of in.
func declarations(in *inspector.Inspector) iter.Seq[declaration] {
	filter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.TypeSpec)(nil),
		(*ast.ValueSpec)(nil),
	}

	return func(yield func(declaration) bool) {
		for fc := range in.Root().Children() {
			f, ok := fc.Node().(*ast.File)
			if !ok {
				continue
			}

			for c := range fc.Preorder(filter...) {
				switch c.Node().(type) {
				case *ast.TypeSpec:
					if c.Parent().Parent() != fc {
						continue // local type
					}

				case *ast.ValueSpec:
					gen := c.Parent()
					if gen.Parent() != fc || gen.Node().(*ast.GenDecl).Tok != token.VAR {
						continue // local or constant
					}
				}

				if !yield(declaration{file: f, node: c.Node()}) {
					return
				}
			}
		}
	}
}

// newIndex builds an index. receiver resolves the receiver type expression of a method to its class.
func newIndex(fset *token.FileSet, in *inspector.Inspector, receiver func(f *ast.File, expr ast.Expr) *ast.TypeSpec) *index {
	x := &index{
		fset:       fset,
		parser:     directive.NewParser(fset),
		decorators: make(map[ast.Node][]Decorator),
		parents:    make(map[ast.Node]ast.Node),
		owners:     make(map[ast.Node]*ast.File),
		classOf:    make(map[ast.Node]*ast.TypeSpec),
		methods:    make(map[*ast.TypeSpec][]ast.Node),
		imports:    make(map[*ast.File]map[string]string),
	}

	for fc := range in.Root().Children() {
		if f, ok := fc.Node().(*ast.File); ok {
			x.files = append(x.files, f)
			x.imports[f] = importNames(f)
		}
	}

	for d := range declarations(in) {
		switch n := d.node.(type) {
		case *ast.FuncDecl:
			x.addOwner(d.file, n, n.Doc)

			if n.Recv == nil || len(n.Recv.List) != 1 {
				continue
			}

			if class := receiver(d.file, n.Recv.List[0].Type); class != nil {
				x.addMethod(class, n)
			}

		case *ast.TypeSpec:
			iface, ok := n.Type.(*ast.InterfaceType)
			if !ok {
				continue
			}

			for _, method := range iface.Methods.List {
				if len(method.Names) != 1 {
					continue // embedded interface or type constraint
				}

				x.addOwner(d.file, method, method.Doc)
				x.addMethod(n, method)
			}
		}
	}

	return x
}

func (x *index) addOwner(f *ast.File, owner ast.Node, doc *ast.CommentGroup) {
	decorators := x.parser.Parse(doc)
	if len(decorators) == 0 {
		return
	}

	x.decorators[owner] = decorators
	x.owners[owner] = f

	for _, d := range decorators {
		if d.Expr == nil {
			continue
		}

		x.parents[d.Expr] = owner

		var stack []ast.Node
		ast.Inspect(d.Expr, func(n ast.Node) bool {
			if n == nil {
				stack = stack[:len(stack)-1]

				return false
			}

			if len(stack) > 0 {
				x.parents[n] = stack[len(stack)-1]
			}

			stack = append(stack, n)

			return true
		})
	}
}

func (x *index) addMethod(class *ast.TypeSpec, method ast.Node) {
	x.classOf[method] = class
	x.methods[class] = append(x.methods[class], method)
}

// Decorators implements [Tree].
func (x *index) Decorators(owner ast.Node) []ast.Expr {
	decorators := x.decorators[owner]

	exprs := make([]ast.Expr, 0, len(decorators))
	for _, d := range decorators {
		if d.Expr != nil {
			exprs = append(exprs, d.Expr)
		}
	}

	return exprs
}

// Comments returns all decorators of owner, including malformed ones.
func (x *index) Comments(owner ast.Node) []Decorator {
	return x.decorators[owner]
}

// EnclosingClass implements [Tree].
func (x *index) EnclosingClass(node ast.Node) (*ast.TypeSpec, bool) {
	owner := x.owner(node)
	if owner == nil {
		return nil, false
	}

	class, ok := x.classOf[owner]

	return class, ok
}

// Methods implements [Tree].
func (x *index) Methods(class *ast.TypeSpec) []ast.Node {
	return x.methods[class]
}

// Source implements [Tree].
func (x *index) Source(expr ast.Expr) string {
	fset := x.fset
	if x.parser.Owns(expr.Pos()) {
		fset = x.parser.FileSet()
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, expr); err != nil {
		return types.ExprString(expr)
	}

	return buf.String()
}

// owner returns the function declaration or interface method a decorator node belongs to.
func (x *index) owner(node ast.Node) ast.Node {
	for n := node; n != nil; {
		parent, ok := x.parents[n]
		if !ok {
			return nil
		}

		if _, ok := x.decorators[parent]; ok {
			return parent
		}

		n = parent
	}

	return nil
}

// file returns the file containing node.
func (x *index) file(node ast.Node) *ast.File {
	if owner := x.owner(node); owner != nil {
		return x.owners[owner]
	}

	pos := node.Pos()
	for _, f := range x.files {
		if f.FileStart <= pos && pos <= f.FileEnd {
			return f
		}
	}

	return nil
}

// importNames maps the local names of imports to package names guessed from the import path.
func importNames(f *ast.File) map[string]string {
	names := make(map[string]string, len(f.Imports))

	for _, spec := range f.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := packageName(importPath)

		local := name
		if spec.Name != nil {
			local = spec.Name.Name
		}

		if local == "_" || local == "." {
			continue
		}

		names[local] = name
	}

	return names
}

// packageName guesses the package name of an import path.
func packageName(importPath string) string {
	dir, name := path.Split(importPath)
	if isMajorVersion(name) && dir != "" {
		name = path.Base(dir)
	}

	name, _, _ = strings.Cut(name, ".")

	return strings.ReplaceAll(name, "-", "_")
}

func isMajorVersion(s string) bool {
	v, ok := strings.CutPrefix(s, "v")
	if !ok || v == "" {
		return false
	}

	_, err := strconv.Atoi(v)

	return err == nil
}

// receiverName returns the type name of a receiver type expression like *T or T[K].
func receiverName(expr ast.Expr) *ast.Ident {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		default:
			return nil
		}
	}
}

// breadthFirst returns the nodes reachable from start via next, breadth first, without start and duplicates.
func breadthFirst[K comparable](start K, next func(K) []K) []K {
	seen := map[K]struct{}{start: {}}

	var result []K
	for queue := []K{start}; len(queue) > 0; queue = queue[1:] {
		for _, k := range next(queue[0]) {
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}
			result = append(result, k)
			queue = append(queue, k)
		}
	}

	return result
}
