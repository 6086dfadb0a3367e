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

package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/dealguard/internal/astutil"
	"fillmore-labs.com/dealguard/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text string
		want bool
	}{
		{"//nolint:dealguard", true},
		{"// nolint:errcheck,dealguard", true},
		{"//nolint:all", true},
		{"//nolint:DealGuard", true},
		{"//nolint:errcheck", false},
		{"// dealguard", false},
		{"//@deal.Pure", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `//nolint:dealguard
package test

func a() {} //nolint:dealguard

func b() {}
`

	fset, f, _ := testsource.Parse(t, src)

	c := NewCurrentFile(fset, f)
	if !c.Valid() {
		t.Fatal("Expected valid file")
	}

	if c.Generated() {
		t.Error("Expected non-generated file")
	}

	if !c.NoLint() {
		t.Error("Expected file level nolint")
	}

	a, b := f.Decls[0].(*ast.FuncDecl), f.Decls[1].(*ast.FuncDecl)

	if !c.NoLintComment(a.Pos()) {
		t.Error("Expected nolint on a")
	}

	if c.NoLintComment(b.Pos()) {
		t.Error("Unexpected nolint on b")
	}

	if NewCurrentFile(fset, nil).Valid() {
		t.Error("Expected invalid file")
	}
}
