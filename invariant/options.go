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

import "go.uber.org/zap"

// Option configures an [Invariant].
type Option interface {
	applyInvariant(o *invariantOptions)
}

type invariantOptions struct {
	message string
	wrap    func(err *ContractError) error
}

// WithMessage is an [Option] replacing the rendered predicate in error messages.
func WithMessage(message string) Option { return messageOption{message: message} }

type messageOption struct{ message string }

func (o messageOption) applyInvariant(r *invariantOptions) { r.message = o.message }

// WithError is an [Option] to convert violations into a custom error.
// The returned error should wrap its argument, so that [errors.Is] with [ErrInvariant] holds.
func WithError(wrap func(err *ContractError) error) Option { return errorOption{wrap: wrap} }

type errorOption struct {
	wrap func(err *ContractError) error
}

func (o errorOption) applyInvariant(r *invariantOptions) { r.wrap = o.wrap }

// ClassOption configures a [Class].
type ClassOption interface {
	applyClass(o *classOptions)
}

type classOptions struct {
	logger  *zap.Logger
	locking bool
}

// WithLogger is a [ClassOption] setting the logger for invariant violations.
func WithLogger(logger *zap.Logger) ClassOption { return loggerOption{logger: logger} }

type loggerOption struct{ logger *zap.Logger }

func (o loggerOption) applyClass(r *classOptions) {
	if o.logger == nil {
		r.logger = zap.NewNop()

		return
	}

	r.logger = o.logger
}

// WithLocking is a [ClassOption] serializing calls and writes on each guarded instance.
//
// The lock is not reentrant: callbacks passed to [Guard.Do], [Call], [Method] and [Guard.Update]
// run while it is held and must work on their obj argument. Calling Get, Set, Value or Do on the
// same [Guard] from inside a callback deadlocks.
func WithLocking(locking bool) ClassOption { return lockingOption{locking: locking} }

type lockingOption struct{ locking bool }

func (o lockingOption) applyClass(r *classOptions) { r.locking = o.locking }
