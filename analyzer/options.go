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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/dealguard/internal/config"
	"fillmore-labs.com/dealguard/internal/run"
)

// Option configures specific behavior of a [New] dealguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithTyped is an [Option] to resolve names with type information. Enabled by default.
func WithTyped(typed bool) Option { return typedOption{typed: typed} }

type typedOption struct{ typed bool }

func (o typedOption) apply(r *run.Options) {
	r.Behavior.Set(config.TypedTree, o.typed)
}

func (o typedOption) LogAttr() slog.Attr {
	return slog.Bool("typed", o.typed)
}

// WithReport is an [Option] to report the contracts of every decorated function.
func WithReport(report bool) Option { return reportOption{report: report} }

type reportOption struct{ report bool }

func (o reportOption) apply(r *run.Options) {
	r.Diagnostics.Set(config.ReportContracts, o.report)
}

func (o reportOption) LogAttr() slog.Attr {
	return slog.Bool("report", o.report)
}

// WithInherit is an [Option] to configure whether deal.Inherit decorators are checked.
func WithInherit(inherit bool) Option { return inheritOption{inherit: inherit} }

type inheritOption struct{ inherit bool }

func (o inheritOption) apply(r *run.Options) {
	r.Diagnostics.Set(config.CheckInherit, o.inherit)
}

func (o inheritOption) LogAttr() slog.Attr {
	return slog.Bool("inherit", o.inherit)
}

// WithUnknown is an [Option] to configure whether malformed decorators and unknown contracts are reported.
func WithUnknown(unknown bool) Option { return unknownOption{unknown: unknown} }

type unknownOption struct{ unknown bool }

func (o unknownOption) apply(r *run.Options) {
	r.Diagnostics.Set(config.CheckUnknown, o.unknown)
}

func (o unknownOption) LogAttr() slog.Attr {
	return slog.Bool("unknown", o.unknown)
}
