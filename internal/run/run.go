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

// Package run implements the pipeline of the dealguard analyzer.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/dealguard/contracts"
	"fillmore-labs.com/dealguard/docfmt"
	"fillmore-labs.com/dealguard/internal/astutil"
	"fillmore-labs.com/dealguard/internal/config"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// tree is a [contracts.Tree] that also keeps malformed decorators.
type tree interface {
	contracts.Tree
	Comments(owner ast.Node) []contracts.Decorator
}

// Run executes the dealguard analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("dealguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx, task := trace.NewTask(context.Background(), "DealGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	t := o.newTree(ctx, p, in)

	c := checker{
		pass:        p,
		tree:        t,
		extractor:   contracts.New(t),
		diagnostics: o.Diagnostics,
		result:      newResult(t),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Contracts of generated and excluded files are collected, but not reported
		report := !currentFile.NoLint() &&
			(!currentFile.Generated() || o.Behavior.Enabled(config.IncludeGenerated))

		for n := range f.Preorder((*ast.FuncDecl)(nil), (*ast.InterfaceType)(nil)) {
			switch node := n.Node().(type) {
			case *ast.FuncDecl:
				nolint := astutil.DocHasNoLint(node.Doc) || currentFile.NoLintComment(node.Pos())
				c.check(ctx, node, node.Name, report && !nolint)

			case *ast.InterfaceType:
				for _, method := range node.Methods.List {
					if len(method.Names) != 1 {
						continue // embedded interface or type constraint
					}

					nolint := astutil.DocHasNoLint(method.Doc)
					c.check(ctx, method, method.Names[0], report && !nolint)
				}
			}
		}
	}

	return c.result, nil
}

func (o *Options) newTree(ctx context.Context, p *analysis.Pass, in *inspector.Inspector) tree {
	defer trace.StartRegion(ctx, "index").End()

	if o.Behavior.Enabled(config.TypedTree) {
		return contracts.NewTypedTree(p.Fset, in, p.Pkg, p.TypesInfo)
	}

	return contracts.NewSyntaxTree(p.Fset, in)
}

// checker extracts and reports the contracts of one package.
type checker struct {
	pass        *analysis.Pass
	tree        tree
	extractor   *contracts.Extractor
	diagnostics config.Diagnostics
	result      *Result
}

func (c *checker) check(ctx context.Context, owner ast.Node, name *ast.Ident, report bool) {
	decorators := c.tree.Comments(owner)
	if len(decorators) == 0 {
		return
	}

	if report && c.diagnostics.Enabled(config.CheckUnknown) {
		c.checkUnknown(decorators)
	}

	if report && c.diagnostics.Enabled(config.CheckInherit) {
		c.checkInherit(name, decorators)
	}

	region := trace.StartRegion(ctx, "extract")
	cs := contracts.Collect(c.extractor.Of(owner))
	region.End()

	if len(cs) == 0 {
		return
	}

	displayName := name.Name
	if fn, ok := c.pass.TypesInfo.Defs[name].(*types.Func); ok {
		c.result.contracts[fn] = cs
		displayName = FuncName(fn)
	}

	if report && c.diagnostics.Enabled(config.ReportContracts) {
		summary := docfmt.Summarize(displayName, c.tree, cs)
		c.pass.Reportf(name.Pos(), "Function '%s' declares contracts: %s (dg:con)", displayName, summary.Short())
	}
}

// checkUnknown reports malformed decorators and unknown names of the deal package.
func (c *checker) checkUnknown(decorators []contracts.Decorator) {
	for _, d := range decorators {
		if d.Err != nil {
			c.pass.Report(analysis.Diagnostic{
				Pos:      d.Comment.Pos(),
				End:      d.Comment.End(),
				Category: "unknown",
				Message:  fmt.Sprintf("Malformed decorator: %v (dg:unk)", d.Err),
			})

			continue
		}

		c.unknown(d.Comment, d.Expr)
	}
}

func (c *checker) unknown(comment *ast.Comment, expr ast.Expr) {
	var (
		sel  *ast.SelectorExpr
		args []ast.Expr
	)

	switch n := ast.Unparen(expr).(type) {
	case *ast.SelectorExpr:
		sel = n

	case *ast.CallExpr:
		sel, _ = ast.Unparen(n.Fun).(*ast.SelectorExpr)
		args = n.Args
	}

	if sel == nil {
		return
	}

	name, ok := c.tree.QualifiedName(sel)
	if !ok {
		return
	}

	switch pkg, _, _ := strings.Cut(name, "."); {
	case pkg != "deal":

	case !contracts.Known(name):
		c.pass.Report(analysis.Diagnostic{
			Pos:      comment.Pos(),
			End:      comment.End(),
			Category: "unknown",
			Message:  fmt.Sprintf("Unknown contract '%s' (dg:unk)", name),
		})

	case name == contracts.ChainName:
		for _, arg := range args {
			c.unknown(comment, arg)
		}
	}
}

// checkInherit reports deal.Inherit decorators without anything to inherit.
func (c *checker) checkInherit(name *ast.Ident, decorators []contracts.Decorator) {
	for _, d := range decorators {
		if d.Expr == nil {
			continue
		}

		inherit := c.findInherit(d.Expr)
		if inherit == nil {
			continue
		}

		class, ok := c.tree.EnclosingClass(inherit)
		if !ok {
			c.pass.Report(analysis.Diagnostic{
				Pos:      d.Comment.Pos(),
				End:      d.Comment.End(),
				Category: "inherit",
				Message:  fmt.Sprintf("deal.Inherit on function '%s' without receiver type (dg:inh)", name.Name),
			})

			continue
		}

		if c.inherits(class) {
			continue
		}

		c.pass.Report(analysis.Diagnostic{
			Pos:      d.Comment.Pos(),
			End:      d.Comment.End(),
			Category: "inherit",
			Message:  fmt.Sprintf("Type '%s' embeds no contracts to inherit (dg:inh)", class.Name.Name),
			Related:  []analysis.RelatedInformation{{Pos: class.Name.Pos(), Message: "Type declared here"}},
		})
	}
}

// findInherit returns the first deal.Inherit selector in expr.
func (c *checker) findInherit(expr ast.Expr) (inherit *ast.SelectorExpr) {
	ast.Inspect(expr, func(n ast.Node) bool {
		if inherit != nil {
			return false
		}

		if sel, ok := n.(*ast.SelectorExpr); ok {
			if name, ok := c.tree.QualifiedName(sel); ok && name == contracts.InheritName {
				inherit = sel
			}
		}

		return true
	})

	return inherit
}

// inherits reports whether any method of an ancestor of class has decorators.
func (c *checker) inherits(class *ast.TypeSpec) bool {
	for _, ancestor := range c.tree.Ancestors(class) {
		for _, method := range c.tree.Methods(ancestor) {
			if len(c.tree.Decorators(method)) > 0 {
				return true
			}
		}
	}

	return false
}
