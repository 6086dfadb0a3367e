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

// Package directive parses decorator comments.
//
// A decorator comment is a line in a doc comment starting with "//@", followed by a Go
// expression:
//
//	//@deal.Pre(func(x int) bool { return x > 0 })
//	func Sqrt(x int) int
package directive

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// Prefix starts a decorator comment.
const Prefix = "//@"

// Decorator is a decorator comment and its parsed expression.
type Decorator struct {
	// Comment is the decorator comment.
	Comment *ast.Comment
	// Expr is the parsed expression, nil if the comment is malformed.
	Expr ast.Expr
	// Err is the parse error of a malformed comment.
	Err error
}

// Parser parses decorator comments of a set of source files.
//
// Parsed expressions live in a private [token.FileSet] with positions above
// the positions of the source files, so that both can be told apart.
type Parser struct {
	fset  *token.FileSet
	first token.Pos
}

// NewParser creates a [Parser] for decorators in files of source.
func NewParser(source *token.FileSet) *Parser {
	fset := token.NewFileSet()
	fset.AddFile("", -1, source.Base()) // reserve the source positions

	return &Parser{fset: fset, first: token.Pos(fset.Base())}
}

// FileSet returns the file set of parsed decorator expressions.
func (p *Parser) FileSet() *token.FileSet { return p.fset }

// Owns reports whether pos is the position of a parsed decorator expression.
func (p *Parser) Owns(pos token.Pos) bool { return pos >= p.first }

// Parse returns the decorators of a doc comment in source order.
func (p *Parser) Parse(doc *ast.CommentGroup) []Decorator {
	if doc == nil {
		return nil
	}

	var decorators []Decorator

	for _, c := range doc.List {
		src, ok := strings.CutPrefix(c.Text, Prefix)
		if !ok {
			continue
		}

		d := Decorator{Comment: c}

		expr, err := parser.ParseExprFrom(p.fset, "decorator", strings.TrimSpace(src), parser.SkipObjectResolution)
		if err != nil {
			d.Err = err
		} else {
			d.Expr = expr
		}

		decorators = append(decorators, d)
	}

	return decorators
}
