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

// Package invariant enforces object invariants at run time.
//
// # Overview
//
// A [Class] collects the invariants of a type. Every invariant is a [Check]: a plain predicate
// on the object ([Simple], [Assert]) or a schema validator on its exported fields ([Schema]).
// Objects are accessed through a [Guard], which validates all invariants before and after each
// method call and after each field write:
//
//	accounts := invariant.Of[Account]().
//		Invariant(invariant.Simple(func(a *Account) bool { return a.Balance >= 0 })).
//		Invariant(invariant.Schema[Account](invariant.NewRules(nil, map[string]any{"Owner": "required"})))
//
//	acc := accounts.Wrap(&Account{Owner: "alice"})
//	withdraw := invariant.Method(acc, (*Account).Withdraw)
//
//	if _, err := withdraw(100); errors.Is(err, invariant.ErrInvariant) {
//		// the account would be overdrawn
//	}
//
// # Chaining
//
// [Apply] prepends an invariant to the chain of a class. Validation runs the most recently
// applied invariant first and stops at the first violation.
//
// # Failures
//
// A violation before a call prevents the call. A violation after a call or a write is reported,
// but the object keeps its new state.
//
// A [ContractError] carries the message of the violated invariant. By default this is the
// function name and location of the predicate, which for a closure is a generated name
// like "main.main.func1 (main.go:20)". Pass [WithMessage] for predicates written inline:
//
//	accounts.Invariant(invariant.Simple(func(a *Account) bool { return a.Balance >= 0 }),
//		invariant.WithMessage("balance must not be negative"))
package invariant
