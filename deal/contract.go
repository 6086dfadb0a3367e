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

package deal

import (
	"slices"
	"strconv"
)

// Contract is a declared contract: a [Kind] and its unevaluated arguments.
//
// Contract values are immutable and carry no behavior on their own. They exist so that contracts
// can be declared in ordinary Go code and referenced by name from decorator comments.
type Contract struct {
	kind Kind
	args []any
}

// Kind returns the contract kind.
func (c Contract) Kind() Kind { return c.kind }

// Args returns a copy of the contract arguments in declaration order.
func (c Contract) Args() []any { return slices.Clone(c.args) }

// String returns the kind and the number of arguments, e.g. "pre/1".
func (c Contract) String() string {
	return c.kind.String() + "/" + strconv.Itoa(len(c.args))
}

// Markers without arguments.
var (
	Pure    = Contract{kind: KindPure}
	Safe    = Contract{kind: KindSafe}
	Inherit = Contract{kind: KindInherit}
)

// Pre declares a precondition. The validator usually has the signature of the guarded function
// with a bool or error result.
func Pre(validator any) Contract { return Contract{KindPre, []any{validator}} }

// Post declares a postcondition on the result.
func Post(validator any) Contract { return Contract{KindPost, []any{validator}} }

// Ensure declares a postcondition over arguments and result.
func Ensure(validator any) Contract { return Contract{KindEnsure, []any{validator}} }

// Example declares a usage example that should evaluate to true.
func Example(example func() bool) Contract { return Contract{KindExample, []any{example}} }

// Raises declares the errors a function is allowed to return.
func Raises(errs ...error) Contract {
	args := make([]any, len(errs))
	for i, err := range errs {
		args[i] = err
	}

	return Contract{KindRaises, args}
}

// Has declares the side effects of a function, like "io" or "stdout".
func Has(markers ...string) Contract {
	args := make([]any, len(markers))
	for i, m := range markers {
		args[i] = m
	}

	return Contract{KindHas, args}
}

// Contracts is an ordered list of contracts.
type Contracts []Contract

// Chain combines contracts into one decorator, preserving their order.
func Chain(contracts ...Contract) Contracts { return slices.Clone(contracts) }

// Kinds returns the kinds of all contracts in order.
func (cs Contracts) Kinds() []Kind {
	kinds := make([]Kind, len(cs))
	for i, c := range cs {
		kinds[i] = c.kind
	}

	return kinds
}
