// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq

import (
	"math/rand/v2"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sort returns a new sequence ordered by [cmp], which must return a negative number when a sorts before b,
// zero when they tie, and a positive number otherwise. The sort is stable, tied elements keep their source
// order.
func (s *Seq[T]) Sort(cmp func(a, b T) int) *Seq[T] {
	if cmp == nil {
		panicNil("comparator")
	}
	ret := slices.Clone(s.elems)
	slices.SortStableFunc(ret, cmp)
	return &Seq[T]{elems: ret}
}

// SortInPlace stably sorts the elements by [cmp], returning the receiver.
func (s *Seq[T]) SortInPlace(cmp func(a, b T) int) *Seq[T] {
	if cmp == nil {
		panicNil("comparator")
	}
	slices.SortStableFunc(s.elems, cmp)
	return s
}

// SortOrdered returns a new sequence in ascending natural order, for element types carrying one.
func SortOrdered[T constraints.Ordered](s *Seq[T]) *Seq[T] {
	ret := slices.Clone(s.elems)
	slices.Sort(ret)
	return &Seq[T]{elems: ret}
}

// Min returns the smallest element and true, or the zero value and false on an empty sequence.
func Min[T constraints.Ordered](s *Seq[T]) (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	return slices.Min(s.elems), true
}

// Max returns the largest element and true, or the zero value and false on an empty sequence.
func Max[T constraints.Ordered](s *Seq[T]) (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	return slices.Max(s.elems), true
}

// Shuffle uses [rand.Shuffle] to shuffle all the elements and return the result as a new sequence, the
// receiver is untouched.
func (s *Seq[T]) Shuffle() *Seq[T] {
	return s.Clone().ShuffleInPlace()
}

// ShuffleInPlace uses [rand.Shuffle] to reorder the elements uniformly at random, returning the receiver.
func (s *Seq[T]) ShuffleInPlace() *Seq[T] {
	rand.Shuffle(len(s.elems), func(i, j int) {
		s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	})
	return s
}

// Sample returns [n] elements picked uniformly at random without replacement, or every element in random
// order when n exceeds the size. Panics wrapping [ErrInvalidArgument] when n is negative.
func (s *Seq[T]) Sample(n int) *Seq[T] {
	if n < 0 {
		panicInvalid("sample size %d must not be negative", n)
	}
	return s.Shuffle().SubSeq(0, min(n, len(s.elems)))
}
