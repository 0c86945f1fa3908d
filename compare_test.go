// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq_test

import (
	"hash/maphash"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/Lexer747/seq"
)

func TestEqual(t *testing.T) {
	t.Parallel()
	assert.Check(t, seq.Equal(seq.New(1, 2, 3), seq.New(1, 2, 3)))
	assert.Check(t, !seq.Equal(seq.New(1, 2, 3), seq.New(1, 2)))
	assert.Check(t, !seq.Equal(seq.New(1, 2, 3), seq.New(3, 2, 1)))
	assert.Check(t, seq.Equal(seq.Empty[int](), seq.Empty[int]()))
	assert.Check(t, seq.Equal[int](nil, nil))
	assert.Check(t, !seq.Equal(nil, seq.Empty[int]()))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()
	a := seq.New("GO", "Seq")
	b := seq.New("go", "seq")
	assert.Check(t, seq.EqualFunc(a, b, strings.EqualFold))
	assert.Check(t, !seq.EqualFunc(a, b, func(x, y string) bool { return x == y }))
}

func TestHashConsistentWithEqual_Property(t *testing.T) {
	t.Parallel()
	seed := maphash.MakeSeed()
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOfN(rapid.Int(), 0, 64).Draw(t, "elems")
		a, b := seq.From(elems), seq.From(elems)
		if !seq.Equal(a, b) {
			t.Fatalf("equal construction disagreed")
		}
		if seq.Hash(seed, a) != seq.Hash(seed, b) {
			t.Fatalf("equal sequences %v hashed differently", a)
		}
	})
}

func TestHashDistinguishesContents(t *testing.T) {
	t.Parallel()
	seed := maphash.MakeSeed()
	a := seq.Hash(seed, seq.New(1, 2, 3))
	b := seq.Hash(seed, seq.New(3, 2, 1))
	c := seq.Hash(seed, seq.New(1, 2))
	// Not guaranteed in general, but a hash which collides on these trivial cases is broken.
	assert.Check(t, a != b, "order must influence the hash")
	assert.Check(t, a != c, "length must influence the hash")
}

func TestHashBy(t *testing.T) {
	t.Parallel()
	seed := maphash.MakeSeed()
	a := seq.New("Apple", "Banana")
	b := seq.New("APPLE", "BANANA")
	assert.Check(t, is.Equal(
		seq.HashBy(seed, a, strings.ToLower),
		seq.HashBy(seed, b, strings.ToLower),
	), "sequences equal under the key function must hash identically")
}

func TestContainsIndexOf(t *testing.T) {
	t.Parallel()
	s := seq.New("a", "b", "a", "c")

	assert.Check(t, seq.Contains(s, "b"))
	assert.Check(t, !seq.Contains(s, "z"))
	assert.Check(t, s.ContainsFunc(func(v string) bool { return v == "c" }))

	assert.Check(t, is.Equal(0, seq.IndexOf(s, "a")))
	assert.Check(t, is.Equal(2, seq.LastIndexOf(s, "a")))
	assert.Check(t, is.Equal(-1, seq.IndexOf(s, "z")))
	assert.Check(t, is.Equal(-1, seq.LastIndexOf(s, "z")))

	assert.Check(t, is.Equal(1, s.IndexOfFunc(func(v string) bool { return v > "a" })))
	assert.Check(t, is.Equal(3, s.LastIndexOfFunc(func(v string) bool { return v > "a" })))
	assert.Check(t, is.Equal(-1, s.IndexOfFunc(func(v string) bool { return v == "z" })))
}
