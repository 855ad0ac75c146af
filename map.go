// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

// Map returns the sequence of f applied to every element of s, in order.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	if s.c == nil {
		return Seq[U]{}
	}
	return Cons(f(s.c.head), Map(s.c.tail, f))
}
