// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/fuse"
)

func join(args ...string) string { return strings.Join(args, ",") }

func TestApplyPrefixOrder(t *testing.T) {
	f := fuse.Apply(join, "a", "b")
	if got := f("c", "d"); got != "a,b,c,d" {
		t.Fatalf("got %q, want %q", got, "a,b,c,d")
	}
	if got := f(); got != "a,b" {
		t.Fatalf("got %q, want %q", got, "a,b")
	}
}

func TestApplyNoFixedArgs(t *testing.T) {
	f := fuse.Apply[string, string](join)
	if got := f("x", "y"); got != "x,y" {
		t.Fatalf("got %q, want %q", got, "x,y")
	}
}

func TestApplyNested(t *testing.T) {
	f := fuse.Apply(fuse.Apply(join, "a"), "b")
	if got := f("c"); got != "a,b,c" {
		t.Fatalf("got %q, want %q", got, "a,b,c")
	}
}

func TestApplyCopiesPrefix(t *testing.T) {
	fixed := []string{"a", "b"}
	f := fuse.Apply(join, fixed...)
	fixed[0] = "z"
	if got := f("c"); got != "a,b,c" {
		t.Fatalf("got %q, want %q", got, "a,b,c")
	}
}

func TestApplyIsReusable(t *testing.T) {
	f := fuse.Apply(join, "p")
	first := f("1")
	second := f("2")
	if first != "p,1" || second != "p,2" {
		t.Fatalf("got %q and %q", first, second)
	}
}

func TestApplyWithMap(t *testing.T) {
	got := fuse.Map(fuse.Make("x", "y"), fuse.Unary(fuse.Apply(join, "pre")))
	if !fuse.Equal(got, fuse.Make("pre,x", "pre,y")).Value() {
		t.Fatalf("got %v", got)
	}
}

func TestApplyWithReduce(t *testing.T) {
	got := fuse.MustReduce(fuse.Make("a", "b", "c"), fuse.Binary(fuse.Apply(join, "|")))
	if got != "|,a,|,b,c" {
		t.Fatalf("got %q, want %q", got, "|,a,|,b,c")
	}
}
