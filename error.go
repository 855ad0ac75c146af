// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by every [*IndexError].
	ErrOutOfBounds = errors.New("fuse: index out of bounds")

	// ErrMalformed is returned by [Link] when the tail is not a sequence
	// of the same element type.
	ErrMalformed = errors.New("fuse: tail parameter of sequence must be a sequence")

	// ErrTooShort is returned by [Reduce] for sequences with fewer than
	// two elements.
	ErrTooShort = errors.New("fuse: reduce requires at least two elements")
)

// IndexError reports an index that does not address an element.
// Index is the index as given, before negative normalization.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("fuse: index %d out of bounds for sequence of size %d", e.Index, e.Size)
}

// Unwrap returns [ErrOutOfBounds].
func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

// reduceError annotates ErrTooShort with the offending size.
type reduceError struct {
	size int
}

func (e *reduceError) Error() string {
	return fmt.Sprintf("%v, got %d", ErrTooShort, e.size)
}

func (e *reduceError) Unwrap() error { return ErrTooShort }
