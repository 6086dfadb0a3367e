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

package contracts_test

import (
	"go/ast"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	. "fillmore-labs.com/dealguard/contracts"
	"fillmore-labs.com/dealguard/internal/testsource"
)

const source = `package test

import (
	"errors"

	d "fillmore-labs.com/dealguard/deal"
)

var errNegative = errors.New("negative")

var nonZero = d.Pre(func(a, b int) bool { return b != 0 })

var checks = d.Chain(d.Pre(func(x int) bool { return x > 0 }), d.Raises(errNegative))

var nested = checks

var noValue d.Contract

//@deal.Pre(func(a, b int) bool { return b != 0 })
func Div(a, b int) int { return a / b }

//@d.Pure
func Pure() {}

//@nonZero
func DivAlias(a, b int) int { return a / b }

//@checks
func Chained(x int) {}

//@nested
func Nested(x int) {}

//@noValue
//@missing
//@Div
func Unbound() {}

// Ordered has a description.
//
//@deal.Chain(deal.Pre(p), deal.Post(q), deal.Ensure(r))
//@deal.Example(func() bool { return true })
func Ordered() {}

//@fmt.Println("x")
//@other.Pre(x)
//@deal.Unknown(1)
//@deal.Inv
//@deal.Pre(
//@deal
func Unrelated() {}

//@deal.Raises(errNegative, io.EOF)
//@deal.Has("io", "stdout")
//@deal.Safe()
//@(deal.Pure)
func Effects() {}

//@deal.Inherit
func Orphan() {}

type Base struct{}

//@deal.Pre(a)
func (*Base) Get() {}

//@deal.Post(b)
func (Base) Set() {}

type Mid struct{ *Base }

type Top struct {
	Mid
	name string
}

//@deal.Inherit
func (Top) Get() {}

//@deal.Chain(deal.Inherit, deal.Safe)
func (Top) Set() {}

type Validator interface {
	//@deal.Post(r)
	Validate() error
}

type Impl struct{ Validator }

//@deal.Inherit
func (Impl) Validate() error { return nil }

type Alias = Base

type Aliased struct{ Alias }

//@deal.Inherit
func (Aliased) Get() {}

type A struct {
	*B
	*C
}

type B struct{ *A }

type C struct{ *A }

//@deal.Inherit
func (A) M() {}

//@deal.Inherit
func (B) M() {}

//@deal.Inherit
func (C) M() {}

func Local() {
	type Base struct{ Impl }

	var local = d.Pure

	_, _ = Base{}, local
}

//@local
func Shadowed() {}

type Box[T any] struct{ Base }

//@deal.Inherit
func (*Box[T]) Get() {}
`

type treeBuilder func(t *testing.T) (Tree, *ast.File)

func syntaxTree(t *testing.T) (Tree, *ast.File) {
	t.Helper()

	fset, f, in := testsource.Parse(t, source)

	return NewSyntaxTree(fset, in), f
}

func typedTree(t *testing.T) (Tree, *ast.File) {
	t.Helper()

	fset, f, in := testsource.Parse(t, source)
	pkg, info := testsource.Check(t, fset, f)

	return NewTypedTree(fset, in, pkg, info), f
}

func TestExtract(t *testing.T) {
	t.Parallel()

	trees := [...]struct {
		name  string
		build treeBuilder
	}{
		{"syntax", syntaxTree},
		{"typed", typedTree},
	}

	inherited := []string{"pre(a)", "post(b)"}

	tests := [...]struct {
		decl       string
		want       []string
		wantSyntax []string // when different from want
	}{
		{decl: "Div", want: []string{"pre(func(a, b int) bool { return b != 0 })"}},
		{decl: "Pure", want: []string{"pure()"}},
		{decl: "DivAlias", want: []string{"pre(func(a, b int) bool { return b != 0 })"}},
		{decl: "Chained", want: []string{"pre(func(x int) bool { return x > 0 })", "raises(errNegative)"}},
		{decl: "Nested", want: []string{"pre(func(x int) bool { return x > 0 })", "raises(errNegative)"}},
		{decl: "Unbound", want: nil},
		{decl: "Ordered", want: []string{"pre(p)", "post(q)", "ensure(r)", "example(func() bool { return true })"}},
		{decl: "Unrelated", want: nil},
		{decl: "Effects", want: []string{"raises(errNegative, io.EOF)", `has("io", "stdout")`, "safe()", "pure()"}},
		{decl: "Orphan", want: nil},
		{decl: "Base.Get", want: []string{"pre(a)"}},
		{decl: "Top.Get", want: inherited},
		{decl: "Top.Set", want: append(inherited, "safe()")},
		{decl: "Validator.Validate", want: []string{"post(r)"}},
		{decl: "Impl.Validate", want: []string{"post(r)"}},
		{decl: "Aliased.Get", want: inherited, wantSyntax: []string{}},
		{decl: "A.M", want: nil},
		{decl: "C.M", want: nil},
		{decl: "Shadowed", want: nil},
		{decl: "Box.Get", want: inherited},
	}

	for _, tr := range trees {
		t.Run(tr.name, func(t *testing.T) {
			t.Parallel()

			tree, f := tr.build(t)
			e := New(tree)

			for _, tt := range tests {
				t.Run(tt.decl, func(t *testing.T) {
					owner := testsource.Decl(f, tt.decl)
					if owner == nil {
						t.Fatalf("Can't find %s", tt.decl)
					}

					want := tt.want
					if tr.name == "syntax" && tt.wantSyntax != nil {
						want = tt.wantSyntax
					}

					got := render(tree, Collect(e.Of(owner)))
					if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
						t.Errorf("Of(%s) mismatch (-want +got):\n%s", tt.decl, diff)
					}
				})
			}
		})
	}
}

func TestExtractLazy(t *testing.T) {
	t.Parallel()

	tree, f := syntaxTree(t)
	seq := New(tree).Of(testsource.Decl(f, "Ordered"))

	var n int
	for range seq {
		n++

		break
	}

	if n != 1 {
		t.Errorf("Got %d contracts before break, want 1", n)
	}

	if got := len(Collect(seq)); got != 4 {
		t.Errorf("Got %d contracts on second iteration, want 4", got)
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"deal.Pre", "deal.Pure", "deal.Chain", "deal.Inherit", "deal.Has"} {
		if !Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}

	for _, name := range []string{"deal.Inv", "deal.Unknown", "fmt.Println", "Pre"} {
		if Known(name) {
			t.Errorf("Known(%q) = true, want false", name)
		}
	}
}

func render(tree Tree, cs []Contract) []string {
	var result []string

	for _, c := range cs {
		args := c.Args()

		src := make([]string, 0, len(args))
		for _, arg := range args {
			src = append(src, tree.Source(arg))
		}

		result = append(result, c.Kind().String()+"("+strings.Join(src, ", ")+")")
	}

	return result
}
