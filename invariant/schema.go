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
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// Rules is a [FieldValidator] checking fields against validator tags, e.g.
//
//	invariant.NewRules(nil, map[string]any{"Balance": "gte=0", "Owner": "required"})
type Rules struct {
	validate *validator.Validate
	rules    map[string]any
}

// NewRules creates a [Rules] validator. A nil validate uses a default [validator.Validate].
// Values of rules are tag strings or nested rule maps for map-valued fields.
func NewRules(validate *validator.Validate, rules map[string]any) *Rules {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	return &Rules{validate: validate, rules: maps.Clone(rules)}
}

// ValidateFields implements [FieldValidator]. Failing fields are combined in field name order.
func (r *Rules) ValidateFields(fields map[string]any) error {
	failed := r.validate.ValidateMap(fields, r.rules)
	if len(failed) == 0 {
		return nil
	}

	var err error
	for _, name := range slices.Sorted(maps.Keys(failed)) {
		err = multierr.Append(err, &FieldError{Field: name, Err: asError(failed[name])})
	}

	return err
}

// FieldError is the validation failure of a single field.
type FieldError struct {
	Field string
	Err   error
}

// Error implements [error].
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *FieldError) Unwrap() error { return e.Err }

// asError converts a [validator.Validate.ValidateMap] result value to an error.
func asError(v any) error {
	switch v := v.(type) {
	case error:
		return v

	case map[string]any:
		var err error
		for _, name := range slices.Sorted(maps.Keys(v)) {
			err = multierr.Append(err, &FieldError{Field: name, Err: asError(v[name])})
		}

		return err

	default:
		return fmt.Errorf("%v", v)
	}
}
