// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import "fmt"

// Constant lifts a comparable value into a nominal wrapper.
// Two constants are the same iff their wrapped values are equal, so
// results of different operations compose with == and with each other.
type Constant[V comparable] struct {
	value V
}

// Const wraps v.
func Const[V comparable](v V) Constant[V] {
	return Constant[V]{value: v}
}

// Value returns the wrapped value.
func (c Constant[V]) Value() V { return c.value }

func (c Constant[V]) String() string { return fmt.Sprint(c.value) }

// Bool is the boolean constant returned by [Equal] and by predicates.
type Bool = Constant[bool]

// Int is the integral constant returned by [SizeOf].
type Int = Constant[int]

var (
	// True is the true boolean constant.
	True = Bool{value: true}
	// False is the false boolean constant.
	False = Bool{value: false}
)

// Boolean lifts b into a [Bool].
func Boolean(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Not negates b.
func Not(b Bool) Bool { return Boolean(!b.value) }

// And reports whether every operand is true. And() is True.
func And(bs ...Bool) Bool {
	for _, b := range bs {
		if !b.value {
			return False
		}
	}
	return True
}

// Or reports whether any operand is true. Or() is False.
func Or(bs ...Bool) Bool {
	for _, b := range bs {
		if b.value {
			return True
		}
	}
	return False
}

// Conditional returns then if cond is true and otherwise if it is false.
// Both branches are evaluated by the caller; use an if statement when
// one of them is expensive.
func Conditional[T any](cond Bool, then, otherwise T) T {
	if cond.value {
		return then
	}
	return otherwise
}
