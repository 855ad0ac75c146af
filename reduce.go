// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

// Reduce folds s with the binary operation f, without a seed.
//
// The two last elements are combined first and each earlier element is
// combined with the reduced remainder: for (a b c) the result is
// f(a, f(b, c)). f need not be associative or commutative; the nesting
// is part of the contract.
//
// Reduce returns an error matching [ErrTooShort] when s has fewer than
// two elements. No identity or passthrough result is defined for them.
func Reduce[T any](s Seq[T], f func(T, T) T) (T, error) {
	if n := s.Len(); n < 2 {
		var zero T
		return zero, &reduceError{size: n}
	}
	return reduce(s, f), nil
}

// MustReduce is like [Reduce] but panics instead of returning an error.
func MustReduce[T any](s Seq[T], f func(T, T) T) T {
	v, err := Reduce(s, f)
	if err != nil {
		panic(err)
	}
	return v
}

// reduce requires s.Len() >= 2.
func reduce[T any](s Seq[T], f func(T, T) T) T {
	next := s.c.tail
	if next.c.tail.c == nil {
		return f(s.c.head, next.c.head)
	}
	return f(s.c.head, reduce(next, f))
}
