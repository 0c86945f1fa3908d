// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/Lexer747/seq"
	"github.com/Lexer747/seq/utils/th"
)

func TestIntersect(t *testing.T) {
	t.Parallel()
	t.Run("Bag semantics consume one match each", multisetCase{
		A:         []string{"a", "a", "b"},
		B:         []string{"a"},
		Intersect: []string{"a"},
		Diff:      []string{"a", "b"},
	}.Run)
	t.Run("Duplicates in B allow duplicates through", multisetCase{
		A:         []string{"a", "a", "b"},
		B:         []string{"a", "a", "a"},
		Intersect: []string{"a", "a"},
		Diff:      []string{"b"},
	}.Run)
	t.Run("Order comes from A", multisetCase{
		A:         []string{"c", "b", "a"},
		B:         []string{"a", "b", "c"},
		Intersect: []string{"c", "b", "a"},
		Diff:      []string{},
	}.Run)
	t.Run("Disjoint", multisetCase{
		A:         []string{"x", "y"},
		B:         []string{"z"},
		Intersect: []string{},
		Diff:      []string{"x", "y"},
	}.Run)
	t.Run("Empty B short-circuits", multisetCase{
		A:         []string{"a", "b"},
		B:         []string{},
		Intersect: []string{},
		Diff:      []string{"a", "b"},
	}.Run)
	t.Run("Empty A", multisetCase{
		A:         []string{},
		B:         []string{"a"},
		Intersect: []string{},
		Diff:      []string{},
	}.Run)
}

type multisetCase struct {
	A, B      []string
	Intersect []string
	Diff      []string
}

func (tc multisetCase) Run(t *testing.T) {
	t.Helper()
	t.Parallel()
	a, b := seq.From(tc.A), seq.From(tc.B)
	assert.DeepEqual(t, tc.Intersect, seq.Intersect(a, b).ToSlice())
	assert.DeepEqual(t, tc.Diff, seq.Difference(a, b).ToSlice())
	assert.Check(t, is.DeepEqual(tc.A, a.ToSlice()), "operands must be untouched")
	assert.Check(t, is.DeepEqual(tc.B, b.ToSlice()), "operands must be untouched")
}

func TestDifferenceEmptyBIsIndependentCopy(t *testing.T) {
	t.Parallel()
	a := seq.New(1, 2, 3)
	diff := seq.Difference(a, seq.Empty[int]())
	diff.Set(0, 99)
	assert.Check(t, is.Equal(1, a.Get(0)), "the short-circuit copy must not share a backing store with A")
}

func TestMultisetSizeLaw_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		var (
			a = rapid.SliceOfN(rapid.IntRange(0, 8), 0, 64).Draw(t, "a")
			b = rapid.SliceOfN(rapid.IntRange(0, 8), 0, 64).Draw(t, "b")
		)
		sa, sb := seq.From(a), seq.From(b)
		inter := seq.Intersect(sa, sb)
		diff := seq.Difference(sa, sb)
		if inter.Len()+diff.Len() != sa.Len() {
			t.Fatalf("len(intersect)=%d + len(difference)=%d != len(A)=%d", inter.Len(), diff.Len(), sa.Len())
		}
		// Interleaving intersect and difference back together in A's order rebuilds A exactly.
		rebuilt := seq.Intersect(sa, sb).AppendSeq(diff)
		counts := map[int]int{}
		for _, v := range a {
			counts[v]++
		}
		for _, v := range rebuilt.ToSlice() {
			counts[v]--
		}
		for v, c := range counts {
			if c != 0 {
				t.Fatalf("element %d miscounted by %d between intersect and difference", v, c)
			}
		}
	})
}

func TestIntersectByKey(t *testing.T) {
	t.Parallel()
	type user struct {
		Name string
		ID   int
	}
	a := seq.New(user{"Ann", 1}, user{"Bob", 2}, user{"Cat", 3})
	b := seq.New(user{"ann", 1}, user{"cat", 3})
	byID := func(u user) int { return u.ID }

	inter := seq.IntersectBy(a, b, byID)
	assert.DeepEqual(t, []user{{"Ann", 1}, {"Cat", 3}}, inter.ToSlice())
	diff := seq.DifferenceBy(a, b, byID)
	assert.DeepEqual(t, []user{{"Bob", 2}}, diff.ToSlice())

	th.AssertPanicsWith(t, seq.ErrNilArgument, func() { seq.IntersectBy(a, nil, byID) })
	th.AssertPanicsWith(t, seq.ErrNilArgument, func() { seq.IntersectBy[user, int](a, b, nil) })
}

func TestDistinct(t *testing.T) {
	t.Parallel()
	s := seq.New(3, 1, 3, 2, 1)
	assert.DeepEqual(t, []int{3, 1, 2}, seq.Distinct(s).ToSlice())
	assert.Check(t, is.DeepEqual([]int{3, 1, 3, 2, 1}, s.ToSlice()), "Distinct returns a copy")

	result := seq.DistinctInPlace(s)
	assert.Check(t, is.Equal(s, result))
	assert.DeepEqual(t, []int{3, 1, 2}, s.ToSlice())
}

func TestDistinctBy(t *testing.T) {
	t.Parallel()
	s := seq.New("Apple", "apple", "Banana", "APPLE")
	got := seq.DistinctBy(s, strings.ToLower)
	assert.DeepEqual(t, []string{"Apple", "Banana"}, got.ToSlice())
}

func TestCompact(t *testing.T) {
	t.Parallel()
	s := seq.New("a", "", "b", "", "")
	assert.DeepEqual(t, []string{"a", "b"}, seq.Compact(s).ToSlice())
	assert.DeepEqual(t, []string{"a", "", "b", "", ""}, s.ToSlice())

	seq.CompactInPlace(s)
	assert.DeepEqual(t, []string{"a", "b"}, s.ToSlice())
}
