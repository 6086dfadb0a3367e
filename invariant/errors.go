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

import (
	"errors"
	"strings"
)

var (
	// ErrInvariant is matched by every invariant violation, see [ContractError].
	ErrInvariant = errors.New("invariant contract violated")

	// ErrNoField is returned when a guarded field read or write names an unknown or unexported field.
	ErrNoField = errors.New("no such field")

	// ErrNotAssignable is returned when a guarded field write has a value of the wrong type.
	ErrNotAssignable = errors.New("value not assignable")

	// ErrNoFields is the payload of a schema check on an object without an attribute mapping.
	ErrNoFields = errors.New("object has no fields")
)

// kindInvariant identifies invariant violations.
const kindInvariant = "invariant"

// ContractError is returned when an invariant does not hold.
//
// Message is the explicit message of the invariant (see [WithMessage]) or the function
// name and source location of the failing predicate.
// Payload is the structured error reported by the predicate itself, if any.
type ContractError struct {
	Message string
	Payload error
}

// Kind returns the contract kind, always "invariant".
func (e *ContractError) Kind() string { return kindInvariant }

// Error implements [error].
func (e *ContractError) Error() string {
	var b strings.Builder

	b.WriteString(ErrInvariant.Error()) // ignore error

	if e.Message != "" {
		b.WriteString(": ")       // ignore error
		b.WriteString(e.Message) // ignore error
	}

	if e.Payload != nil {
		b.WriteString(": ")               // ignore error
		b.WriteString(e.Payload.Error()) // ignore error
	}

	return b.String()
}

// Is reports whether target is [ErrInvariant].
func (e *ContractError) Is(target error) bool { return target == ErrInvariant }

// Unwrap returns the payload.
func (e *ContractError) Unwrap() error { return e.Payload }
