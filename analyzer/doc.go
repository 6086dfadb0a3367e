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

// Package analyzer implements the dealguard static analysis pass.
//
// # Overview
//
// DealGuard reads Design-by-Contract decorators, "//@" lines in the doc comments of functions,
// methods and interface methods, and resolves them to contracts without executing any code:
//
//	var nonZero = deal.Pre(func(a, b int) bool { return b != 0 })
//
//	//@nonZero
//	//@deal.Raises(ErrOverflow)
//	func Div(a, b int) (int, error)
//
// Decorators may be chained with deal.Chain, bound to package level variables, or inherited
// from the methods of embedded types with deal.Inherit.
//
// # Diagnostics
//
//   - (dg:unk) malformed decorators and names of the deal package that are not contracts
//   - (dg:inh) deal.Inherit on a function without receiver, or on a type embedding no contracts
//   - (dg:con) the contracts of every decorated function, when enabled with -report
//
// # Result
//
// Other analyzers can depend on [Analyzer] and use its [*Result], which maps every
// decorated function object to its contracts.
package analyzer
