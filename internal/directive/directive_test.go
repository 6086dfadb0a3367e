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

package directive_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	. "fillmore-labs.com/dealguard/internal/directive"
)

const src = `package test

// Div divides.
//
//@deal.Pre(func(a, b int) bool { return b != 0 })
//@ deal.Pure
//@deal.Pre(
// not a decorator
func Div(a, b int) int { return a / b }

func NoDoc() {}
`

func TestParse(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	p := NewParser(fset)

	div := f.Decls[0].(*ast.FuncDecl)
	decorators := p.Parse(div.Doc)

	if got, want := len(decorators), 3; got != want {
		t.Fatalf("Got %d decorators, want %d", got, want)
	}

	wants := [...]string{"deal.Pre((func(a, b int) bool literal))", "deal.Pure", ""}
	for i, d := range decorators {
		if d.Comment == nil {
			t.Errorf("Decorator %d without comment", i)
		}

		if wants[i] == "" {
			if d.Err == nil || d.Expr != nil {
				t.Errorf("Decorator %d: expected parse error, got %v", i, d.Expr)
			}

			continue
		}

		if d.Err != nil {
			t.Fatalf("Decorator %d: unexpected error %v", i, d.Err)
		}

		if got := types.ExprString(d.Expr); got != wants[i] {
			t.Errorf("Decorator %d = %q, want %q", i, got, wants[i])
		}

		if !p.Owns(d.Expr.Pos()) {
			t.Errorf("Decorator %d position %d not owned by parser", i, d.Expr.Pos())
		}

		if p.Owns(div.Pos()) {
			t.Errorf("Source position %d owned by parser", div.Pos())
		}
	}

	if got := p.Parse(f.Decls[1].(*ast.FuncDecl).Doc); got != nil {
		t.Errorf("Got decorators %v for function without doc", got)
	}
}
