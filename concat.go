// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

// Concat returns the elements of a followed by the elements of b.
// Only a is rebuilt; the result shares b.
func Concat[T any](a, b Seq[T]) Seq[T] {
	switch {
	case a.c == nil:
		return b
	case b.c == nil:
		return a
	}
	return Cons(a.c.head, Concat(a.c.tail, b))
}
