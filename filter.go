// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

// Predicate decides whether an element is kept by [Filter].
type Predicate[T any] func(T) Bool

// Lift adapts a plain boolean function into a [Predicate].
func Lift[T any](f func(T) bool) Predicate[T] {
	return func(v T) Bool { return Boolean(f(v)) }
}

// Always is the predicate that accepts every element.
func Always[T any](T) Bool { return True }

// Never is the predicate that rejects every element.
func Never[T any](T) Bool { return False }

// Filter returns the elements of s for which p is true, in their
// original order. When every element is kept the result is s itself.
func Filter[T any](s Seq[T], p Predicate[T]) Seq[T] {
	if s.c == nil {
		return s
	}
	rest := Filter(s.c.tail, p)
	if !p(s.c.head).Value() {
		return rest
	}
	if rest.c == s.c.tail.c {
		return s
	}
	return Cons(s.c.head, rest)
}
