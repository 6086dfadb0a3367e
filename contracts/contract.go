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
	"fmt"
	"go/ast"
	"slices"

	"fillmore-labs.com/dealguard/deal"
)

// Contract is a contract found in source: its kind and the unevaluated argument expressions.
type Contract struct {
	kind deal.Kind
	args []ast.Expr
}

// newContract panics on invalid kinds, which indicate a bug in the extractor.
func newContract(kind deal.Kind, args []ast.Expr) Contract {
	if !kind.Valid() {
		panic(fmt.Sprintf("contracts: unreachable kind %v", kind))
	}

	return Contract{kind: kind, args: args}
}

// Kind returns the contract kind.
func (c Contract) Kind() deal.Kind { return c.kind }

// Args returns the argument expressions in source order.
func (c Contract) Args() []ast.Expr { return slices.Clone(c.args) }

// String implements [fmt.Stringer].
func (c Contract) String() string {
	return fmt.Sprintf("%v/%d", c.kind, len(c.args))
}

// Qualified names with special meaning to the extractor.
const (
	ChainName   = "deal.Chain"
	InheritName = "deal.Inherit"
)

// supported are the contracts declared by a call.
var supported = map[string]deal.Kind{
	"deal.Ensure":  deal.KindEnsure,
	"deal.Example": deal.KindExample,
	"deal.Has":     deal.KindHas,
	"deal.Post":    deal.KindPost,
	"deal.Pre":     deal.KindPre,
	"deal.Pure":    deal.KindPure,
	"deal.Raises":  deal.KindRaises,
	"deal.Safe":    deal.KindSafe,
}

// markers are the contracts declared without a call. deal.Inherit is resolved separately.
var markers = map[string]deal.Kind{
	"deal.Pure": deal.KindPure,
	"deal.Safe": deal.KindSafe,
}

// Known reports whether name is a qualified name the extractor recognizes,
// either as a contract, a marker or as deal.Chain.
func Known(name string) bool {
	if name == ChainName || name == InheritName {
		return true
	}

	_, ok := supported[name]

	return ok
}
