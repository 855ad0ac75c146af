// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

// Get returns the element of s at index.
//
// A negative index counts from the end: -1 is the last element and
// -Len(s) the first. Get returns an [*IndexError] wrapping
// [ErrOutOfBounds] when s is empty or the index, after normalization,
// falls outside [0, Len(s)-1].
func Get[T any](s Seq[T], index int) (T, error) {
	n := s.Len()
	i := index
	if i < 0 {
		i += n
	}
	if s.c == nil || i < 0 || i >= n {
		var zero T
		return zero, &IndexError{Index: index, Size: n}
	}
	return at(s, i), nil
}

// MustGet is like [Get] but panics with the *IndexError instead of
// returning it.
func MustGet[T any](s Seq[T], index int) T {
	v, err := Get(s, index)
	if err != nil {
		panic(err)
	}
	return v
}

// at walks i cells down s. The caller guarantees 0 <= i < s.Len().
func at[T any](s Seq[T], i int) T {
	if i == 0 {
		return s.c.head
	}
	return at(s.c.tail, i-1)
}
