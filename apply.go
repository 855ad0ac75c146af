// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import "slices"

// Func is an operation over a variable number of arguments of type T.
type Func[T, R any] func(args ...T) R

// Apply partially applies f to the fixed leading arguments. Calling the
// result with rest invokes f(fixed..., rest...).
//
// fixed is copied, so later changes to the caller's slice do not affect
// the returned Func.
func Apply[T, R any](f Func[T, R], fixed ...T) Func[T, R] {
	prefix := slices.Clone(fixed)
	return func(rest ...T) R {
		args := make([]T, 0, len(prefix)+len(rest))
		args = append(args, prefix...)
		args = append(args, rest...)
		return f(args...)
	}
}

// Unary adapts f to a one-argument function, the shape [Map] takes.
func Unary[T, R any](f Func[T, R]) func(T) R {
	return func(v T) R { return f(v) }
}

// Binary adapts f to a two-argument function, the shape [Reduce] takes.
func Binary[T, R any](f Func[T, R]) func(T, T) R {
	return func(x, y T) R { return f(x, y) }
}
