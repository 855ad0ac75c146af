// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import "reflect"

// Equaler is implemented by element types that define their own identity.
// Every [Seq] implements it, so nested sequences compare structurally.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports whether a and b have the same length and identical
// elements at every position.
//
// Elements are identical when the first implements [Equaler] and reports
// equality, or otherwise when both have the same comparable dynamic type
// and compare equal with ==. Incomparable elements are never identical,
// including comparable types whose interface fields hold incomparable
// values.
//
// Sequences that share cells are equal from the first shared cell on
// without comparing those elements, so Equal(s, s) is true for every s,
// even when its elements are incomparable. Sequences built separately
// from incomparable elements are unequal.
func Equal[T any](a, b Seq[T]) Bool {
	return EqualFunc(a, b, identical[T])
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T any](a, b Seq[T], eq func(x, y T) bool) Bool {
	if a.Len() != b.Len() {
		return False
	}
	return Boolean(equalCells(a, b, eq))
}

func equalCells[T any](a, b Seq[T], eq func(x, y T) bool) bool {
	switch {
	case a.c == nil && b.c == nil:
		return true
	case a.c == nil || b.c == nil:
		return false
	case a.c == b.c:
		// Shared cells: identity implies equality.
		return true
	}
	return eq(a.c.head, b.c.head) && equalCells(a.c.tail, b.c.tail, eq)
}

// Equal implements [Equaler]. An empty sequence equals every empty
// sequence regardless of element type.
func (s Seq[T]) Equal(other any) bool {
	switch o := other.(type) {
	case Seq[T]:
		return Equal(s, o).Value()
	case Sequence:
		return s.IsEmpty() && o.IsEmpty()
	}
	return false
}

// identical is a named generic function so that Equal passes a static
// function value instead of allocating a closure per call.
func identical[T any](x, y T) bool {
	vx, vy := any(x), any(y)
	if e, ok := vx.(Equaler); ok {
		return e.Equal(vy)
	}
	if vx == nil || vy == nil {
		return vx == nil && vy == nil
	}
	if reflect.TypeOf(vx) != reflect.TypeOf(vy) {
		return false
	}
	// Value.Comparable looks through interface fields, so a struct holding
	// a slice in an any field is rejected here instead of panicking in ==.
	if !reflect.ValueOf(vx).Comparable() || !reflect.ValueOf(vy).Comparable() {
		return false
	}
	return vx == vy
}
