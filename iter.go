// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// All returns an iterator over the elements of s, in order.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := s.c; c != nil; c = c.tail.c {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Collect returns the elements of s as a new slice.
func Collect[T any](s Seq[T]) []T {
	return seq.Collect(s.All())
}

// FromSlice builds a sequence from xs, eliding empty sequences as
// [Make] does.
func FromSlice[T any](xs []T) Seq[T] {
	return Make(xs...)
}

// FromIter builds a sequence from the values produced by it, eliding
// empty sequences as [Make] does. it must be finite.
func FromIter[T any](it iter.Seq[T]) Seq[T] {
	return Make(seq.Collect(it)...)
}
