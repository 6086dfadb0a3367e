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

package a

import "test/deal"

var nonZero = deal.Pre(func(a, b int) bool { return b != 0 })

//@deal.Inv // want "Unknown contract 'deal.Inv'"
func Unknown() {}

//@deal.Pre( // want "Malformed decorator"
func Malformed() {}

//@deal.Chain(deal.Pre(nil), deal.Invariant(nil)) // want "Unknown contract 'deal.Invariant'"
func ChainUnknown() {}

//@nonZero
//@fmt.Println()
//@deal.Safe()
func Div(a, b int) int { return a / b }

//@deal.Inherit // want "deal.Inherit on function 'Orphan' without receiver type"
func Orphan() {}

type Base struct{}

//@deal.Pre(nil)
func (Base) Get() {}

type Child struct{ Base }

//@deal.Inherit
func (Child) Get() {}

type Other struct{}

func (Other) Get() {}

type Lonely struct{ Other }

//@deal.Chain(deal.Inherit, deal.Pure) // want "Type 'Lonely' embeds no contracts to inherit"
func (Lonely) Get() {}

type Reader interface {
	//@deal.Unknown() // want "Unknown contract 'deal.Unknown'"
	Read() error
}

//nolint:dealguard
//@deal.Inv
func Excluded() {}

//@deal.Inv
func Trailing() {} //nolint:dealguard
