// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fuse provides an immutable sequence algebra and functional
// combinators over it.
//
// The core type [Seq] is a persistent cons list: either empty, or a head
// element followed by a tail sequence. Every operation is a pure function
// that decomposes sequences into head and tail and rebuilds new ones;
// nothing is ever modified in place. Sequences can hold any element type,
// including Go types themselves as reflect.Type values.
//
// # Design Philosophy
//
// fuse provides:
//   - A minimal representation: the zero [Seq] is the empty sequence, and
//     all empty sequences are equal
//   - Total, structurally recursive operations with explicit base cases
//   - Explicit failures: out-of-range indices and too-short reductions are
//     returned as errors, never answered with a sentinel element
//
// # Construction
//
//   - [Empty]: The empty sequence
//   - [Cons]: Prepend a head to a tail
//   - [Make]: Build from elements, dropping embedded empty sequences
//   - [Link]: Cons with a run-time checked tail ([ErrMalformed])
//   - [FromSlice], [FromIter]: Build from a slice or an iterator
//
// Empty elision: Make(Empty, a, Empty, b) is equal to Make(a, b), and
// Make(Empty) is the empty sequence. An element counts as empty when it is
// an empty [Seq] of any element type.
//
// # Inspection
//
//   - [Seq.Head], [Seq.Tail]: Decompose (panic on empty)
//   - [Seq.TryHead], [Seq.Uncons]: Non-panicking variants
//   - [Seq.Len], [Size], [SizeOf]: Number of elements
//   - [Seq.All], [Collect]: Iterate or export
//   - [IsSeq], [Sequence]: Recognize a sequence of unknown element type
//
// # Algebra
//
//   - [Equal], [EqualFunc]: Positional structural equality as a [Bool]
//   - [Concat]: Append; the right operand is shared, not copied
//   - [Get], [MustGet]: Indexed access, negative indices count from the end
//
// Indices are normalized before the walk: on a sequence of four elements,
// index -1 resolves to 3 and -4 to 0. Any index that still falls outside
// the sequence yields an [*IndexError] wrapping [ErrOutOfBounds].
//
// # Combinators
//
//   - [Map]: Apply a function to every element
//   - [Filter]: Keep elements accepted by a [Predicate]
//   - [Reduce]: Seedless fold over two or more elements ([ErrTooShort] otherwise)
//   - [Apply]: Fix leading arguments of a [Func]
//
// Reduce nests from the right: Reduce of (a b c) is f(a, f(b, c)). This
// order is observable whenever f is not associative, as with [CommonType].
//
// # Constants
//
// [Constant] wraps a comparable value in a nominal type. [Bool] and [Int]
// are its boolean and integral instantiations, returned by [Equal],
// predicates and [SizeOf]; [Not], [And], [Or] and [Conditional] compose them.
//
// # Types as Elements
//
//   - [TypeOf], [Types]: Build sequences of reflect.Type
//   - [SameType]: Type identity, a [Func] suitable for [Apply]
//   - [KindIs]: Predicate on the kind of a type
//   - [CommonType]: Binary operation for [Reduce]
//
// # Example
//
//	s := fuse.Types(fuse.TypeOf[int](), fuse.TypeOf[string](), fuse.TypeOf[int]())
//
//	ints := fuse.Filter(s, fuse.Unary(fuse.Apply(fuse.SameType, fuse.TypeOf[int]())))
//	// ints == (int int)
//
//	last, err := fuse.Get(s, -1)
//	// last == int, err == nil
//
//	_, err = fuse.Get(s, 3)
//	// errors.Is(err, fuse.ErrOutOfBounds)
package fuse
