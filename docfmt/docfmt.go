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

package docfmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/dealguard/contracts"
	"fillmore-labs.com/dealguard/deal"
)

// Renderer renders an argument expression as source text. [contracts.Tree] implements it.
type Renderer interface {
	Source(expr ast.Expr) string
}

// Condition is a pre- or postcondition with its source text.
type Condition struct {
	Kind   string `yaml:"kind"`
	Source string `yaml:"source"`
}

// Summary is the documentation of one function.
type Summary struct {
	Name        string      `yaml:"name,omitempty"`
	SideEffects []string    `yaml:"side-effects,omitempty"`
	Raises      []string    `yaml:"raises,omitempty"`
	Contracts   []Condition `yaml:"contracts,omitempty"`
	Examples    []string    `yaml:"examples,omitempty"`
	Markers     []string    `yaml:"markers,omitempty"`
}

// Summarize collects the contracts cs of the function name.
//
// Declared errors are sorted and deduplicated, everything else keeps source order.
// Summarize panics on contracts of an invalid kind.
func Summarize(name string, r Renderer, cs []contracts.Contract) Summary {
	s := Summary{Name: name}

	for _, c := range cs {
		args := c.Args()

		switch c.Kind().Category() {
		case deal.Exception:
			for _, arg := range args {
				s.Raises = append(s.Raises, r.Source(arg))
			}

		case deal.Condition:
			s.Contracts = append(s.Contracts, Condition{Kind: c.Kind().String(), Source: join(r, args)})

		case deal.SideEffect:
			for _, arg := range args {
				s.SideEffects = append(s.SideEffects, marker(r, arg))
			}

		case deal.Sample:
			s.Examples = append(s.Examples, join(r, args))

		case deal.Marker:
			s.Markers = append(s.Markers, c.Kind().String())

		default:
			panic(fmt.Sprintf("docfmt: unreachable contract %v", c))
		}
	}

	slices.Sort(s.Raises)
	s.Raises = slices.Compact(s.Raises)

	return s
}

// Lines renders the contracts cs as documentation lines.
func Lines(r Renderer, cs []contracts.Contract) []string {
	return Summarize("", r, cs).Lines()
}

// Lines renders s as documentation lines.
func (s Summary) Lines() []string {
	var lines []string

	if len(s.SideEffects) > 0 {
		lines = append(lines, ":side-effects:")
		lines = appendItems(lines, s.SideEffects, false)
	}

	for _, e := range s.Raises {
		lines = append(lines, ":raises "+e+":")
	}

	if len(s.Contracts) > 0 {
		lines = append(lines, ":contracts:")
		for _, c := range s.Contracts {
			lines = append(lines, "  * ``"+c.Source+"``")
		}
	}

	if len(s.Examples) > 0 {
		lines = append(lines, ":examples:")
		lines = appendItems(lines, s.Examples, true)
	}

	if len(s.Markers) > 0 {
		lines = append(lines, ":markers:")
		lines = appendItems(lines, s.Markers, false)
	}

	return lines
}

// Short renders s on a single line, like "pre, raises ErrOverflow, safe".
func (s Summary) Short() string {
	var parts []string

	for _, c := range s.Contracts {
		parts = append(parts, c.Kind)
	}

	for _, e := range s.Raises {
		parts = append(parts, "raises "+e)
	}

	if len(s.SideEffects) > 0 {
		parts = append(parts, "has "+strings.Join(s.SideEffects, " "))
	}

	if len(s.Examples) > 0 {
		parts = append(parts, "example")
	}

	parts = append(parts, s.Markers...)

	return strings.Join(parts, ", ")
}

// YAML marshals s.
func (s Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

func appendItems(lines, items []string, code bool) []string {
	for _, item := range items {
		if code {
			item = "``" + item + "``"
		}

		lines = append(lines, "  * "+item)
	}

	return lines
}

func join(r Renderer, args []ast.Expr) string {
	src := make([]string, 0, len(args))
	for _, arg := range args {
		src = append(src, r.Source(arg))
	}

	return strings.Join(src, ", ")
}

// marker renders a side effect marker, unquoting string literals.
func marker(r Renderer, arg ast.Expr) string {
	if lit, ok := ast.Unparen(arg).(*ast.BasicLit); ok && lit.Kind == token.STRING {
		if s, err := strconv.Unquote(lit.Value); err == nil {
			return s
		}
	}

	return r.Source(arg)
}
