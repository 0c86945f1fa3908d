// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq

import "github.com/Lexer747/seq/utils/check"

// materialize copies the elements referenced by the index vector into a fresh independent sequence.
func (s *Seq[T]) materialize(indices []int) *Seq[T] {
	ret := make([]T, len(indices))
	for i, idx := range indices {
		ret[i] = s.elems[idx]
	}
	return &Seq[T]{elems: ret}
}

// ForEachCombination calls [action] once for every combination of [n] elements of the sequence,
// synchronously and in lexicographic order of the chosen index vectors, so the relative source order of the
// elements is preserved within every combination. Each combination is a fresh sequence, mutating it affects
// neither the source nor any other combination. Only the current index vector is held between emissions,
// memory use is O(n) however many combinations there are.
//
// Panics wrapping [ErrInvalidArgument] when n is not positive and [ErrNilArgument] when action is nil.
// n larger than the size yields no combinations and is not an error.
func (s *Seq[T]) ForEachCombination(n int, action func(*Seq[T])) {
	if action == nil {
		panicNil("action")
	}
	if n <= 0 {
		panicInvalid("combination size %d must be positive", n)
	}
	size := len(s.elems)
	if n > size {
		return
	}

	// comb holds the indices of the current combination, always strictly increasing. Index k maxes out at
	// size-n+k, the value it takes in the final combination [size-n .. size-1].
	comb := make([]int, n)
	for i := range comb {
		comb[i] = i
	}
	action(s.materialize(comb))

	for comb[0] < size-n {
		// Advance: the rightmost index below its maximum steps forward, and every index after it restarts
		// as close behind as it can, giving the next vector in lexicographic order.
		k := n - 1
		for comb[k] == size-n+k {
			check.Checkf(k > 0, "combination state %v claims an advance but no index can move", comb)
			k--
		}
		comb[k]++
		for j := k + 1; j < n; j++ {
			comb[j] = comb[j-1] + 1
		}
		action(s.materialize(comb))
	}
}

// EachCombination collects every combination of [n] elements into a sequence of sequences, in the same order
// [Seq.ForEachCombination] emits them. The result holds C(size, n) entries, which grows exponentially: for
// even modest sizes this can exhaust memory, prefer the streaming [Seq.ForEachCombination] when the
// combinations do not all need to be live at once.
func EachCombination[T any](s *Seq[T], n int) *Seq[*Seq[T]] {
	ret := &Seq[*Seq[T]]{}
	s.ForEachCombination(n, func(c *Seq[T]) {
		ret.elems = append(ret.elems, c)
	})
	return ret
}

// EachCons returns every run of [n] consecutive elements of [s] as an independent sequence, in order:
// size-n+1 windows, or none when n exceeds the size. Panics wrapping [ErrInvalidArgument] when n is not
// positive.
func EachCons[T any](s *Seq[T], n int) *Seq[*Seq[T]] {
	if n <= 0 {
		panicInvalid("window size %d must be positive", n)
	}
	ret := &Seq[*Seq[T]]{}
	for i := 0; i+n <= len(s.elems); i++ {
		ret.elems = append(ret.elems, s.SubSeq(i, i+n))
	}
	return ret
}

// EachSlice cuts [s] into ceil(size/n) chunks of [n] elements, the last chunk holding whatever remains.
// Every chunk is an independent sequence. Panics wrapping [ErrInvalidArgument] when n is not positive.
func EachSlice[T any](s *Seq[T], n int) *Seq[*Seq[T]] {
	if n <= 0 {
		panicInvalid("slice size %d must be positive", n)
	}
	ret := &Seq[*Seq[T]]{}
	for i := 0; i < len(s.elems); i += n {
		ret.elems = append(ret.elems, s.SubSeq(i, min(i+n, len(s.elems))))
	}
	return ret
}
