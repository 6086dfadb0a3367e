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

// Package deal declares Design-by-Contract contracts for Go functions and methods.
//
// Contracts are attached to a declaration with decorator comments, lines starting with "//@"
// in the doc comment followed by a Go expression:
//
//	//@deal.Pre(func(a, b int) bool { return b != 0 })
//	//@deal.Raises(ErrOverflow)
//	func Div(a, b int) (int, error)
//
// Contract values may also be declared in code and referenced by name:
//
//	var nonZero = deal.Pre(func(a, b int) bool { return b != 0 })
//
//	//@nonZero
//	func Mod(a, b int) int
//
// The decorators are read by the dealguard analyzer and never executed. Invariants on object
// state are enforced at run time by package [fillmore-labs.com/dealguard/invariant].
package deal
