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

package invariant

import "sync/atomic"

// Invariant is a predicate that has to hold on an object before and after every guarded
// method call and after every guarded write.
//
// An Invariant is bound to one [Class] by [Apply]. When it is applied to a class already carrying
// invariants, it keeps the validation function of that class as its child and runs it after its
// own predicate.
type Invariant[T any] struct {
	check   Check[T]
	message string
	wrap    func(err *ContractError) error

	child   func(obj *T) error
	applied atomic.Bool
}

// New creates an [Invariant] from a [Check].
func New[T any](check Check[T], opts ...Option) *Invariant[T] {
	if check == nil {
		panic("invariant: nil check")
	}

	var o invariantOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		opt.applyInvariant(&o)
	}

	return &Invariant[T]{check: check, message: o.message, wrap: o.wrap}
}

// Validate checks the predicate of this invariant only.
func (i *Invariant[T]) Validate(obj *T) error {
	ok, payload := i.check.check(obj)
	if ok {
		return nil
	}

	err := &ContractError{Message: i.message, Payload: payload}
	if err.Message == "" && payload == nil {
		err.Message = i.check.source()
	}

	if i.wrap != nil {
		return i.wrap(err)
	}

	return err
}

// ValidateChain checks the predicate of this invariant, then the invariants applied before it.
func (i *Invariant[T]) ValidateChain(obj *T) error {
	if err := i.Validate(obj); err != nil {
		return err
	}

	if i.child == nil {
		return nil
	}

	return i.child(obj)
}
