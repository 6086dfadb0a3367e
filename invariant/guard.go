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
	"reflect"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Validation stages, used in log messages.
const (
	stagePreCall  = "pre-call"
	stagePostCall = "post-call"
	stageSet      = "set"
)

// Guard wraps an object and validates the invariants of its [Class] around every method call
// and after every write.
//
// Reads through a Guard never validate. Failed validations are returned to the caller and
// leave the object as it is; there is no rollback.
type Guard[T any] struct {
	class *Class[T]
	obj   *T
	mu    sync.Mutex
}

// Class returns the class of the guarded object.
func (g *Guard[T]) Class() *Class[T] { return g.class }

// Do calls fn on the guarded object, validating before and after.
// With [WithLocking], fn must not use g, see there.
func (g *Guard[T]) Do(fn func(obj *T) error) error {
	_, err := Call(g, func(obj *T) (struct{}, error) { return struct{}{}, fn(obj) })

	return err
}

// Call calls fn on the guarded object, validating before and after.
//
// When validation before the call fails, fn is not called. When validation after the call fails,
// the result of fn is returned together with the violation, joined with the error of fn, if any.
func Call[T, R any](g *Guard[T], fn func(obj *T) (R, error)) (R, error) {
	defer g.lock()()

	if err := g.validate(stagePreCall); err != nil {
		var zero R

		return zero, err
	}

	result, err := fn(g.obj)

	if verr := g.validate(stagePostCall); verr != nil {
		return result, multierr.Append(err, verr)
	}

	return result, err
}

// Method binds a method expression like (*Account).Withdraw to the guarded object.
func Method[T, A, R any](g *Guard[T], method func(obj *T, arg A) (R, error)) func(arg A) (R, error) {
	return func(arg A) (R, error) {
		return Call(g, func(obj *T) (R, error) { return method(obj, arg) })
	}
}

// Value returns a copy of the guarded object without validation.
func (g *Guard[T]) Value() T {
	defer g.lock()()

	return *g.obj
}

// Get returns the value of an exported field without validation.
func (g *Guard[T]) Get(name string) (any, error) {
	defer g.lock()()

	f, err := g.field(name)
	if err != nil {
		return nil, err
	}

	return f.Interface(), nil
}

// Set assigns value to an exported field and validates afterwards.
// The assignment is kept even when the validation fails.
func (g *Guard[T]) Set(name string, value any) error {
	defer g.lock()()

	f, err := g.field(name)
	if err != nil {
		return err
	}

	v, err := assignable(value, f.Type())
	if err != nil {
		return fmt.Errorf("%s.%s: %w", g.class.name, name, err)
	}

	f.Set(v)

	return g.validate(stageSet)
}

// Update applies fn to the guarded object and validates afterwards.
// The changes are kept even when the validation fails.
func (g *Guard[T]) Update(fn func(obj *T)) error {
	defer g.lock()()

	fn(g.obj)

	return g.validate(stageSet)
}

// Unwrap returns the guarded object. Access through the returned pointer is not validated.
func (g *Guard[T]) Unwrap() *T { return g.obj }

func (g *Guard[T]) validate(stage string) error {
	err := g.class.Validate(g.obj)
	if err != nil {
		g.class.logger.Debug("Invariant violated",
			zap.String("type", g.class.name),
			zap.String("stage", stage),
			zap.Error(err))
	}

	return err
}

func (g *Guard[T]) lock() (unlock func()) {
	if !g.class.locking {
		return func() {}
	}

	g.mu.Lock()

	return g.mu.Unlock
}

// field returns the addressable exported field name of the guarded object.
func (g *Guard[T]) field(name string) (reflect.Value, error) {
	v := reflect.ValueOf(g.obj).Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%s.%s: %w", g.class.name, name, ErrNoField)
	}

	sf, ok := v.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, fmt.Errorf("%s.%s: %w", g.class.name, name, ErrNoField)
	}

	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%s.%s: %w", g.class.name, name, ErrNoField)
	}

	return f, nil
}

// assignable converts value for assignment to a field of type typ.
func assignable(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(typ), nil

		default:
			return reflect.Value{}, fmt.Errorf("nil for %s: %w", typ, ErrNotAssignable)
		}
	}

	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(typ) {
		return reflect.Value{}, fmt.Errorf("%s to %s: %w", v.Type(), typ, ErrNotAssignable)
	}

	return v, nil
}
