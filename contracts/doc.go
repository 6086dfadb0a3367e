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

// Package contracts extracts the contracts declared by decorator comments from Go source.
//
// A decorator is a line "//@<expr>" in the doc comment of a function, method or interface method.
// The [Extractor] resolves each decorator expression:
//
//   - deal.Pure, deal.Safe: a marker contract without arguments
//   - deal.Pre(...), deal.Raises(...), ...: a contract with the call arguments
//   - deal.Chain(...): the contracts of the arguments, in order
//   - deal.Inherit: the contracts of all methods of the embedded types
//   - a name: the contracts of the value bound to a package level variable
//
// Everything else is skipped. Nothing is evaluated: contract arguments are kept as syntax.
//
// Names are resolved by a [Tree]. [SyntaxTree] works on parsed files alone,
// [TypedTree] uses type information and follows aliases and generic types.
package contracts
