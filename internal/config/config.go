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

package config

// DiagnosticFlags selects the diagnostics reported by the analyzer.
type DiagnosticFlags uint8

const (
	// ReportContracts reports the contracts of every decorated function.
	ReportContracts DiagnosticFlags = 1 << iota

	// CheckInherit reports deal.Inherit decorators that cannot inherit anything.
	CheckInherit

	// CheckUnknown reports malformed decorators and unknown deal contracts.
	CheckUnknown
)

// Diagnostics is the set of enabled diagnostics.
type Diagnostics = BitMask[DiagnosticFlags]

// DefaultDiagnostics returns the diagnostics enabled by default.
func DefaultDiagnostics() Diagnostics {
	return NewBitMask(CheckInherit | CheckUnknown)
}

// BehaviorFlags represents configuration options for the analyzer.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// TypedTree resolves names with type information instead of syntax alone.
	TypedTree
)

// Behavior is the set of enabled behavior options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the behavior enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask(TypedTree)
}
