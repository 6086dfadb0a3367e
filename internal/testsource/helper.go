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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// Sources are complete files of a package named `test` and may import
// "fillmore-labs.com/dealguard/deal", which is served from a stub during type checking.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

// DealPath is the import path of the contract declaration package.
const DealPath = "fillmore-labs.com/dealguard/deal"

const dealStub = `package deal

type Contract struct{ kind int }

type Contracts []Contract

var (
	Pure    = Contract{}
	Safe    = Contract{}
	Inherit = Contract{}
)

func Pre(validator any) Contract          { return Contract{} }
func Post(validator any) Contract         { return Contract{} }
func Ensure(validator any) Contract       { return Contract{} }
func Example(example func() bool) Contract { return Contract{} }
func Raises(errs ...error) Contract       { return Contract{} }
func Has(markers ...string) Contract      { return Contract{} }
func Chain(contracts ...Contract) Contracts { return contracts }
`

// Parse parses a Go source file including its comments and builds an inspector on it.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File, *inspector.Inspector) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f, inspector.New([]*ast.File{f})
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, files ...*ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: stubImporter{tb: tb, fset: fset, fallback: importer.Default()}}

	pkg, err := conf.Check("test", fset, files, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Decl finds the declaration named name in f: "Func" for a function,
// "Type.Method" for a method or an interface method.
func Decl(f *ast.File, name string) ast.Node {
	typeName, method, isMethod := strings.Cut(name, ".")

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil), (*ast.TypeSpec)(nil)) {
		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			if !isMethod {
				if n.Recv == nil && n.Name.Name == name {
					return n
				}

				continue
			}

			if n.Recv != nil && n.Name.Name == method && recvName(n.Recv.List[0].Type) == typeName {
				return n
			}

		case *ast.TypeSpec:
			iface, ok := n.Type.(*ast.InterfaceType)
			if !ok || !isMethod || n.Name.Name != typeName {
				continue
			}

			for _, m := range iface.Methods.List {
				if len(m.Names) == 1 && m.Names[0].Name == method {
					return m
				}
			}
		}
	}

	return nil
}

func recvName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}

type stubImporter struct {
	tb       testing.TB
	fset     *token.FileSet
	fallback types.Importer
}

func (i stubImporter) Import(path string) (*types.Package, error) {
	if path != DealPath {
		return i.fallback.Import(path)
	}

	f, err := parser.ParseFile(i.fset, "deal.go", dealStub, parser.SkipObjectResolution)
	if err != nil {
		i.tb.Fatalf("failed to parse deal stub: %v", err)
	}

	conf := types.Config{Importer: i.fallback}

	return conf.Check(DealPath, i.fset, []*ast.File{f}, nil)
}
