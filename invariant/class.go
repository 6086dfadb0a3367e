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
	"reflect"

	"go.uber.org/zap"
)

// Class describes a type T together with its chain of invariants.
//
// A Class is immutable; [Apply] returns a new Class. Instances are guarded with [Class.Wrap].
type Class[T any] struct {
	validate func(obj *T) error
	size     int
	name     string
	classOptions
}

// Of returns a Class for T without invariants.
func Of[T any](opts ...ClassOption) *Class[T] {
	c := &Class[T]{
		name:         reflect.TypeFor[T]().String(),
		classOptions: classOptions{logger: zap.NewNop()},
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		opt.applyClass(&c.classOptions)
	}

	return c
}

// Apply returns a new Class validating inv in addition to the invariants of cls.
//
// The first invariant becomes the validation function of the class. Later invariants
// validate their own predicate and then delegate to the previous validation function,
// so the most recently applied invariant runs first. cls is not modified.
//
// Apply panics when inv has already been applied.
func Apply[T any](inv *Invariant[T], cls *Class[T]) *Class[T] {
	if !inv.applied.CompareAndSwap(false, true) {
		panic("invariant: invariant already applied to a class")
	}

	if cls == nil {
		cls = Of[T]()
	}

	patched := *cls

	if cls.validate == nil {
		patched.validate = inv.Validate
	} else {
		inv.child = cls.validate
		patched.validate = inv.ValidateChain
	}

	patched.size++

	return &patched
}

// Invariant is a shortcut for [Apply] with a new [Invariant] of check.
func (c *Class[T]) Invariant(check Check[T], opts ...Option) *Class[T] {
	return Apply(New(check, opts...), c)
}

// Len returns the number of invariants of this class.
func (c *Class[T]) Len() int { return c.size }

// Name returns the name of T.
func (c *Class[T]) Name() string { return c.name }

// Validate runs the invariant chain on obj.
func (c *Class[T]) Validate(obj *T) error {
	if c.validate == nil {
		return nil
	}

	return c.validate(obj)
}

// Wrap returns a [Guard] for obj. The guard is the only access path that enforces invariants.
func (c *Class[T]) Wrap(obj *T) *Guard[T] {
	if obj == nil {
		panic("invariant: wrap of nil object")
	}

	return &Guard[T]{class: c, obj: obj}
}
