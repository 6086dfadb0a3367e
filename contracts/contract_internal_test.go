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

package contracts

import (
	"testing"

	"fillmore-labs.com/dealguard/deal"
)

func TestUnreachableKind(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on invalid kind")
		}
	}()

	_ = newContract(deal.Kind(0), nil)
}

func TestPackageName(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		path, want string
	}{
		{"fillmore-labs.com/dealguard/deal", "deal"},
		{"github.com/go-playground/validator/v10", "validator"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"github.com/golangci/plugin-module-register", "plugin_module_register"},
		{"v2", "v2"},
	}

	for _, tt := range tests {
		if got := packageName(tt.path); got != tt.want {
			t.Errorf("packageName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBreadthFirst(t *testing.T) {
	t.Parallel()

	graph := map[int][]int{1: {2, 3}, 2: {4, 1}, 3: {4}, 4: {2}}

	got := breadthFirst(1, func(k int) []int { return graph[k] })

	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("breadthFirst = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("breadthFirst = %v, want %v", got, want)
		}
	}
}
