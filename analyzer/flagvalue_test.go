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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/dealguard/analyzer"
	"fillmore-labs.com/dealguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial bool
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: false,
			args:    []string{"-report"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: true,
			args:    []string{"-report=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(config.CheckInherit)
			flags.Set(config.ReportContracts, tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.ReportContracts
			fv := NewFlagValue(&flags, value)
			fs.Var(fv, "report", "report contracts")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("ReportContracts enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if !flags.Enabled(config.CheckInherit) {
				t.Error("Unrelated flag changed")
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	flags := config.DefaultBehavior()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewFlagValue(&flags, config.TypedTree), "typed", "typed tree")

	if err := fs.Parse([]string{"-typed=maybe"}); err == nil {
		t.Error("Expected parse error")
	}

	if !flags.Enabled(config.TypedTree) {
		t.Error("Flag changed on parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.DefaultBehavior()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewFlagValue(&flags, config.TypedTree)
	fs.Var(fv, "typed", "resolve names with type information")

	const expectedUsage = `
  -typed
    	resolve names with type information (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
