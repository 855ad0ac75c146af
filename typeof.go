// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import "reflect"

// Sequences of Go types.
// A reflect.Type is comparable and unique per type, so Seq[reflect.Type]
// gets type identity from Equal without further setup.

// TypeOf returns the reflect.Type of T. Interface types are returned as
// themselves, not as the dynamic type of some value.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Types builds a sequence of types. It is Make specialized to reflect.Type.
func Types(ts ...reflect.Type) Seq[reflect.Type] {
	return Make(ts...)
}

// SameType reports whether all of ts are the same type.
// It has the shape of a [Func], so Apply(SameType, t) is the predicate
// "is t".
func SameType(ts ...reflect.Type) Bool {
	for _, t := range ts[min(1, len(ts)):] {
		if t != ts[0] {
			return False
		}
	}
	return True
}

// KindIs returns the predicate matching types of kind k.
func KindIs(k reflect.Kind) Predicate[reflect.Type] {
	return func(t reflect.Type) Bool {
		return Boolean(t != nil && t.Kind() == k)
	}
}

// CommonType returns the common type of a and b, or nil if there is
// none. The ranking is modelled on std::common_type and does not
// guarantee lossless conversion: int64 with float32 gives float32.
// Identical types give themselves. Between arithmetic types complex
// outranks float, float outranks integer, the wider type wins, and
// unsigned wins over signed of the same width. Ties go to a. An
// interface type wins over a type that implements it. A nil operand
// gives nil, so a failed step propagates through [Reduce].
func CommonType(a, b reflect.Type) reflect.Type {
	if a == nil || b == nil {
		return nil
	}
	if a == b {
		return a
	}
	if ra, rb := arithmeticRank(a), arithmeticRank(b); ra > 0 && rb > 0 {
		if rb > ra {
			return b
		}
		return a
	}
	if a.Kind() == reflect.Interface && b.Implements(a) {
		return a
	}
	if b.Kind() == reflect.Interface && a.Implements(b) {
		return b
	}
	return nil
}

// arithmeticRank orders arithmetic types; 0 means not arithmetic.
func arithmeticRank(t reflect.Type) int {
	size := int(t.Size())
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 100 + 2*size
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 100 + 2*size + 1
	case reflect.Float32, reflect.Float64:
		return 200 + size
	case reflect.Complex64, reflect.Complex128:
		return 300 + size
	}
	return 0
}
