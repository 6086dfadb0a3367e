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

package gclplugin

import dealguard "fillmore-labs.com/dealguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
// A nil field keeps the analyzer default.
type Settings struct {
	// Typed resolves names with type information (default true).
	// False also selects the syntax load mode, see [Plugin.GetLoadMode].
	Typed *bool `json:"typed,omitzero"`
	// Report reports the contracts of every decorated function (dg:con, default false).
	Report *bool `json:"report,omitzero"`
	// Inherit checks deal.Inherit decorators (dg:inh, default true).
	Inherit *bool `json:"inherit,omitzero"`
	// Unknown reports malformed decorators and unknown contracts (dg:unk, default true).
	Unknown *bool `json:"unknown,omitzero"`
}

// Options converts [Settings] into a list of [dealguard.Option] for the dealguard analyzer.
// Only explicitly set (non-nil) settings are applied.
func (s Settings) Options() []dealguard.Option {
	var opts []dealguard.Option

	opts = appendOption(opts, s.Typed, dealguard.WithTyped)
	opts = appendOption(opts, s.Report, dealguard.WithReport)
	opts = appendOption(opts, s.Inherit, dealguard.WithInherit)
	opts = appendOption(opts, s.Unknown, dealguard.WithUnknown)

	return opts
}

// appendOption appends a non-nil setting to a [dealguard.Option] list.
func appendOption[T any](opts []dealguard.Option, value *T, constructor func(T) dealguard.Option) []dealguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
