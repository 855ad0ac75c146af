// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/fuse"
)

func TestFilterEmpty(t *testing.T) {
	got := fuse.Filter(fuse.Empty[int](), fuse.Always[int])
	if !got.IsEmpty() {
		t.Fatalf("Filter(Empty) = %v, want empty", got)
	}
}

func TestFilterAlways(t *testing.T) {
	s := fuse.Make(1, 2, 3)
	got := fuse.Filter(s, fuse.Always[int])
	if !fuse.Equal(got, s).Value() {
		t.Fatalf("got %v, want %v", got, s)
	}
}

func TestFilterNever(t *testing.T) {
	got := fuse.Filter(fuse.Make(1, 2, 3), fuse.Never[int])
	if !got.IsEmpty() {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	even := fuse.Lift(func(x int) bool { return x%2 == 0 })
	got := fuse.Filter(fuse.Make(1, 2, 3, 4, 5, 6), even)
	if !fuse.Equal(got, fuse.Make(2, 4, 6)).Value() {
		t.Fatalf("got %v, want (2 4 6)", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	s := fuse.Make("a", "b", "c")
	once := fuse.Filter(s, fuse.Always[string])
	twice := fuse.Filter(once, fuse.Always[string])
	if !fuse.Equal(twice, s).Value() {
		t.Fatalf("got %v, want %v", twice, s)
	}
}

func TestFilterByKind(t *testing.T) {
	s := fuse.Types(tInt, tBool, tInt16, fuse.TypeOf[string](), tBool)
	got := fuse.Filter(s, fuse.KindIs(reflect.Bool))
	if !fuse.Equal(got, fuse.Types(tBool, tBool)).Value() {
		t.Fatalf("got %v, want (bool bool)", got)
	}
}

func TestFilterWithAppliedPredicate(t *testing.T) {
	s := fuse.Types(tInt, tByte, tInt, tBool)
	isInt := fuse.Unary(fuse.Apply(fuse.SameType, tInt))
	got := fuse.Filter(s, isInt)
	if !fuse.Equal(got, fuse.Types(tInt, tInt)).Value() {
		t.Fatalf("got %v, want (int int)", got)
	}
	notInt := func(typ reflect.Type) fuse.Bool { return fuse.Not(isInt(typ)) }
	got = fuse.Filter(s, notInt)
	if !fuse.Equal(got, fuse.Types(tByte, tBool)).Value() {
		t.Fatalf("got %v, want (uint8 bool)", got)
	}
}

func TestFilterSizeNeverGrows(t *testing.T) {
	s := fuse.Make(5, 1, 4, 2, 3)
	for k := range 7 {
		got := fuse.Filter(s, fuse.Lift(func(x int) bool { return x < k }))
		if got.Len() > s.Len() {
			t.Fatalf("Len(Filter) = %d > %d", got.Len(), s.Len())
		}
	}
}
