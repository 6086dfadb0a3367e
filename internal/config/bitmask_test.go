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

package config_test

import (
	"testing"

	. "fillmore-labs.com/dealguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	d := DefaultDiagnostics()

	if d.Enabled(ReportContracts) {
		t.Error("ReportContracts enabled by default")
	}

	if !d.Enabled(CheckInherit) || !d.Enabled(CheckUnknown) {
		t.Error("Expected inherit and unknown checks enabled by default")
	}

	d.Set(ReportContracts, true)
	d.Set(CheckUnknown, false)

	if !d.Enabled(ReportContracts) || d.Enabled(CheckUnknown) {
		t.Errorf("Set did not apply: %v", d.LogValue())
	}

	if got, want := d.LogValue().Uint64(), uint64(ReportContracts|CheckInherit); got != want {
		t.Errorf("LogValue() = %d, want %d", got, want)
	}

	b := DefaultBehavior()
	if !b.Enabled(TypedTree) || b.Enabled(IncludeGenerated) {
		t.Errorf("Unexpected default behavior %v", b.LogValue())
	}
}
