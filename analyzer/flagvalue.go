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
	"strconv"

	"fillmore-labs.com/dealguard/internal/config"
)

// flagValue is a boolean [flag.Value] switching one flag of a [config.BitMask].
type flagValue[F ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	flags *config.BitMask[F]
	value F
}

func newFlagValue[F ~uint8 | ~uint16 | ~uint32 | ~uint64](flags *config.BitMask[F], value F) flagValue[F] {
	return flagValue[F]{flags: flags, value: value}
}

// Set implements [flag.Value].
func (f flagValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f flagValue[_]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f flagValue[_]) Get() any {
	return f.enabled()
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f flagValue[_]) IsBoolFlag() bool { return true }

// enabled handles the zero value the flag package creates for usage output.
func (f flagValue[_]) enabled() bool {
	return f.flags != nil && f.flags.Enabled(f.value)
}

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
