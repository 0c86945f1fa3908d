// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq

import "github.com/Lexer747/seq/utils/check"

// normalizeDistance folds an arbitrary rotation distance into [0, size), negative distances wrap to their
// positive equivalent. Callers must ensure size > 0.
func normalizeDistance(distance, size int) int {
	distance %= size
	if distance < 0 {
		distance += size
	}
	return distance
}

// Rotate returns a new sequence with every element shifted [distance] positions towards the back, wrapping
// around, so Rotate(1) moves the last element to the front. Negative distances rotate the opposite way. A
// distance which is a multiple of the size, or an empty sequence, yields an unchanged copy.
func (s *Seq[T]) Rotate(distance int) *Seq[T] {
	size := len(s.elems)
	if size == 0 {
		return &Seq[T]{}
	}
	distance = normalizeDistance(distance, size)
	ret := make([]T, size)
	for i := range s.elems {
		ret[i] = s.elems[(size+i-distance)%size]
	}
	return &Seq[T]{elems: ret}
}

// RotateInPlace rotates the elements [distance] positions towards the back in place, returning the
// receiver. It is element-for-element equivalent to [Seq.Rotate] but uses O(1) extra space: the index
// permutation i -> (i + distance) mod size splits into gcd(size, distance) disjoint cycles, and each cycle
// is walked once carrying a single displaced element, for exactly size writes in total.
//
// An empty sequence or a distance which is a multiple of the size is a no-op.
func (s *Seq[T]) RotateInPlace(distance int) *Seq[T] {
	size := len(s.elems)
	if size == 0 || distance%size == 0 {
		return s
	}
	distance = normalizeDistance(distance, size)

	moved := 0
	for cycleStart := 0; moved != size; cycleStart++ {
		check.Checkf(cycleStart < size, "rotation moved %d of %d elements with no cycle left to walk", moved, size)
		displaced := s.elems[cycleStart]
		i := cycleStart
		for {
			i += distance
			if i >= size {
				i -= size
			}
			s.elems[i], displaced = displaced, s.elems[i]
			moved++
			if i == cycleStart {
				break
			}
		}
	}
	return s
}
