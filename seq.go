// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import (
	"fmt"
	"strings"
)

// Sequence is implemented by every [Seq] instantiation and by nothing else.
// It lets untyped code recognize a sequence, and in particular the empty
// sequence, without knowing its element type.
type Sequence interface {
	Len() int
	IsEmpty() bool
	sequence()
}

// Seq is an immutable, finite, ordered sequence of elements of type T.
//
// The zero value is the empty sequence. A non-empty Seq is a cons cell
// holding a head element and a tail Seq. Cells are never modified after
// construction, so sequences may share tails and are safe for concurrent
// use.
type Seq[T any] struct {
	c *cell[T]
}

type cell[T any] struct {
	head T
	tail Seq[T]
	size int
}

func (Seq[T]) sequence() {}

// Empty returns the empty sequence. It is equal to the zero Seq[T].
func Empty[T any]() Seq[T] { return Seq[T]{} }

// Cons returns the sequence with head in front of tail.
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return Seq[T]{c: &cell[T]{head: head, tail: tail, size: tail.Len() + 1}}
}

// Link is Cons for a tail whose type is only known at run time.
// It returns [ErrMalformed] unless tail is a Seq[T] or an empty
// sequence of any element type.
func Link[T any](head T, tail any) (Seq[T], error) {
	switch t := tail.(type) {
	case Seq[T]:
		return Cons(head, t), nil
	case Sequence:
		if t.IsEmpty() {
			return Cons(head, Seq[T]{}), nil
		}
	}
	return Seq[T]{}, fmt.Errorf("%w: got %T", ErrMalformed, tail)
}

// Make builds a sequence from elems, left to right. Any element that is
// itself an empty sequence is dropped, so Make(Empty, a, Empty, b) and
// Make(a, b) are equal, and Make(Empty) is the empty sequence.
func Make[T any](elems ...T) Seq[T] {
	switch len(elems) {
	case 0:
		return Seq[T]{}
	case 1:
		if isEmptySeq(elems[0]) {
			return Seq[T]{}
		}
		return Cons(elems[0], Seq[T]{})
	}
	rest := Make(elems[1:]...)
	if isEmptySeq(elems[0]) {
		return rest
	}
	return Cons(elems[0], rest)
}

// IsSeq reports whether v is a sequence of any element type.
func IsSeq(v any) bool {
	_, ok := v.(Sequence)
	return ok
}

func isEmptySeq(v any) bool {
	s, ok := v.(Sequence)
	return ok && s.IsEmpty()
}

// IsEmpty reports whether s has no elements.
func (s Seq[T]) IsEmpty() bool { return s.c == nil }

// Len returns the number of elements in s.
func (s Seq[T]) Len() int {
	if s.c == nil {
		return 0
	}
	return s.c.size
}

// Head returns the first element of s.
// Panics if s is empty; use TryHead when s may be empty.
func (s Seq[T]) Head() T {
	if s.c == nil {
		panic("fuse: head of empty sequence")
	}
	return s.c.head
}

// Tail returns s without its first element.
// Panics if s is empty; use Uncons when s may be empty.
func (s Seq[T]) Tail() Seq[T] {
	if s.c == nil {
		panic("fuse: tail of empty sequence")
	}
	return s.c.tail
}

// TryHead returns the first element of s, or (zero, false) if s is empty.
func (s Seq[T]) TryHead() (T, bool) {
	if s.c == nil {
		var zero T
		return zero, false
	}
	return s.c.head, true
}

// Uncons splits s into its head and tail.
// Returns (zero, Empty, false) if s is empty.
func (s Seq[T]) Uncons() (T, Seq[T], bool) {
	if s.c == nil {
		var zero T
		return zero, Seq[T]{}, false
	}
	return s.c.head, s.c.tail, true
}

// String formats s as a parenthesized, space-separated list, e.g. "(int bool)".
func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for c := s.c; c != nil; c = c.tail.c {
		if c != s.c {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, c.head)
	}
	b.WriteByte(')')
	return b.String()
}

// Size returns the number of elements in s.
func Size[T any](s Seq[T]) int { return s.Len() }

// SizeOf returns the size of s as an [Int] constant.
func SizeOf[T any](s Seq[T]) Int { return Const(s.Len()) }
