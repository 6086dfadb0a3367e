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
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// Check is a predicate on an object of type T.
//
// The variant is chosen at construction: [Simple] and [Assert] receive the object itself,
// [Schema] receives the object's attribute mapping.
type Check[T any] interface {
	// check returns true if the object is valid, or false and an optional structured payload.
	check(obj *T) (bool, error)

	// source renders the predicate for error messages.
	source() string
}

// Simple returns a [Check] calling fn with the object.
//
// Without [WithMessage], violations name fn by its function name and location,
// like "account.nonNegative (account.go:12)". Closures only have generated names
// like "account.init.func1", so give them a message.
func Simple[T any](fn func(obj *T) bool) Check[T] {
	if fn == nil {
		panic("invariant: nil predicate")
	}

	return simpleCheck[T]{fn: fn, src: funcSource(fn)}
}

type simpleCheck[T any] struct {
	fn  func(obj *T) bool
	src string
}

func (c simpleCheck[T]) check(obj *T) (bool, error) { return c.fn(obj), nil }

func (c simpleCheck[T]) source() string { return c.src }

// Assert returns a [Check] calling fn with the object. A non-nil error fails the check
// and becomes the payload of the [ContractError].
func Assert[T any](fn func(obj *T) error) Check[T] {
	if fn == nil {
		panic("invariant: nil predicate")
	}

	return assertCheck[T]{fn: fn, src: funcSource(fn)}
}

type assertCheck[T any] struct {
	fn  func(obj *T) error
	src string
}

func (c assertCheck[T]) check(obj *T) (bool, error) {
	if err := c.fn(obj); err != nil {
		return false, err
	}

	return true, nil
}

func (c assertCheck[T]) source() string { return c.src }

// FieldValidator validates an attribute mapping, field name to value.
type FieldValidator interface {
	ValidateFields(fields map[string]any) error
}

// Fielder is implemented by types supplying their own attribute mapping.
type Fielder interface {
	Fields() map[string]any
}

// Schema returns a [Check] validating the attribute mapping of the object with v.
//
// The mapping is taken from [Fielder] when implemented by *T, otherwise from the exported
// fields of the struct T. Objects without a mapping fail with [ErrNoFields].
func Schema[T any](v FieldValidator) Check[T] {
	if v == nil {
		panic("invariant: nil field validator")
	}

	return schemaCheck[T]{v: v}
}

type schemaCheck[T any] struct {
	v FieldValidator
}

func (c schemaCheck[T]) check(obj *T) (bool, error) {
	fields, err := fieldsOf(obj)
	if err != nil {
		return false, err
	}

	if err := c.v.ValidateFields(fields); err != nil {
		return false, err
	}

	return true, nil
}

func (c schemaCheck[T]) source() string { return fmt.Sprintf("%T", c.v) }

// fieldsOf returns the attribute mapping of obj.
func fieldsOf[T any](obj *T) (map[string]any, error) {
	if f, ok := any(obj).(Fielder); ok {
		return f.Fields(), nil
	}

	v := reflect.ValueOf(obj).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: %w", v.Type(), ErrNoFields)
	}

	fields := make(map[string]any)

	for _, f := range reflect.VisibleFields(v.Type()) {
		if f.Anonymous || !f.IsExported() {
			continue
		}

		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			continue // promoted through a nil embedded pointer
		}

		fields[f.Name] = fv.Interface()
	}

	return fields, nil
}

// funcSource renders a function as "pkg.name (file:line)".
func funcSource(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()

	f := runtime.FuncForPC(pc)
	if f == nil {
		return "<unknown predicate>"
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	file, line := f.FileLine(pc)

	return name + " (" + filepath.Base(file) + ":" + strconv.Itoa(line) + ")"
}
