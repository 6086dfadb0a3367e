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

package report

import (
	"errors"

	"test/deal"
)

var ErrOverflow = errors.New("overflow")

var positive = deal.Chain(deal.Pre(func(x int) bool { return x > 0 }), deal.Raises(ErrOverflow))

//@deal.Pre(func(a, b int) bool { return b != 0 })
//@deal.Raises(ErrOverflow)
//@deal.Safe
func Div(a, b int) int { // want "Function 'Div' declares contracts: pre, raises ErrOverflow, safe"
	return a / b
}

//@positive
//@deal.Has("stdout")
func Print(x int) {} // want "Function 'Print' declares contracts: pre, raises ErrOverflow, has stdout"

type Account struct{ balance int }

//@deal.Post(func(r int) bool { return r >= 0 })
func (a *Account) Balance() int { return a.balance } // want "Function 'Account.Balance' declares contracts: post"

type Savings struct{ *Account }

//@deal.Inherit
//@deal.Pure
func (s Savings) Balance() int { return 0 } // want "Function 'Savings.Balance' declares contracts: post, pure"

type Store interface {
	//@deal.Example(func() bool { return true })
	Load() int // want "Function 'Store.Load' declares contracts: example"
}

//@fmt.Println()
func Other() {}
