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

// Kind identifies a contract kind. The set of kinds is closed.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment

const (
	invalidKind Kind = iota // invalid

	// KindEnsure is a postcondition relating arguments and result.
	KindEnsure // ensure

	// KindExample is an executable usage example.
	KindExample // example

	// KindHas declares the side effects of a function.
	KindHas // has

	// KindInherit picks up the contracts of the embedded types' methods.
	KindInherit // inherit

	// KindPost is a postcondition on the result.
	KindPost // post

	// KindPre is a precondition on the arguments.
	KindPre // pre

	// KindPure marks a function without side effects that does not fail.
	KindPure // pure

	// KindRaises lists the errors a function may return.
	KindRaises // raises

	// KindSafe marks a function that does not fail.
	KindSafe // safe

	numKinds
)

// Valid reports whether k is one of the known contract kinds.
func (k Kind) Valid() bool {
	return k > invalidKind && k < numKinds
}

// Category classifies contract kinds for documentation output.
type Category uint8

const (
	// Unknown is the category of invalid kinds.
	Unknown Category = iota
	// Condition covers pre- and postconditions.
	Condition
	// Exception covers declared errors.
	Exception
	// SideEffect covers declared side effects.
	SideEffect
	// Sample covers usage examples.
	Sample
	// Marker covers argument-less markers.
	Marker
)

// Category returns the documentation category of k.
func (k Kind) Category() Category {
	switch k {
	case KindPre, KindPost, KindEnsure:
		return Condition
	case KindRaises:
		return Exception
	case KindHas:
		return SideEffect
	case KindExample:
		return Sample
	case KindPure, KindSafe, KindInherit:
		return Marker
	default:
		return Unknown
	}
}

// ParseKind returns the [Kind] with the given name.
func ParseKind(name string) (Kind, bool) {
	for k := invalidKind + 1; k < numKinds; k++ {
		if k.String() == name {
			return k, true
		}
	}

	return invalidKind, false
}
