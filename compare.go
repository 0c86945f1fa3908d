// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq

import (
	"encoding/binary"
	"hash/maphash"
	"slices"
)

// Equal reports whether [a] and [b] have the same size and equal elements at every position. Two nil
// sequences are equal, a nil sequence only equals an empty one if both are nil.
func Equal[T comparable](a, b *Seq[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.elems, b.elems)
}

// EqualFunc is [Equal] comparing elements with [eq], for element types which are not comparable themselves.
func EqualFunc[A, B any](a *Seq[A], b *Seq[B], eq func(A, B) bool) bool {
	if eq == nil {
		panicNil("equality function")
	}
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	return slices.EqualFunc(a.elems, b.elems, eq)
}

// Hash returns a hash of the sequence contents under [seed]. It is consistent with [Equal]: two equal
// sequences always hash identically for the same seed. Different seeds give unrelated hashes, so a seed must
// be shared by every sequence hashed into the same table.
func Hash[T comparable](seed maphash.Seed, s *Seq[T]) uint64 {
	return HashBy(seed, s, identity[T])
}

// HashBy is [Hash] hashing the comparable key [key] extracts from every element, consistent with the
// equality [EqualFunc] would compute from the same keys.
func HashBy[T any, K comparable](seed maphash.Seed, s *Seq[T], key func(T) K) uint64 {
	if key == nil {
		panicNil("key function")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	var buf [8]byte
	for _, v := range s.elems {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, key(v)))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Contains reports whether [v] occurs in the sequence.
func Contains[T comparable](s *Seq[T], v T) bool {
	return slices.Contains(s.elems, v)
}

// ContainsFunc reports whether at least one element satisfies [pred].
func (s *Seq[T]) ContainsFunc(pred func(T) bool) bool {
	if pred == nil {
		panicNil("predicate")
	}
	return slices.ContainsFunc(s.elems, pred)
}

// IndexOf returns the index of the first occurrence of [v], or -1 when absent.
func IndexOf[T comparable](s *Seq[T], v T) int {
	return slices.Index(s.elems, v)
}

// IndexOfFunc returns the index of the first element satisfying [pred], or -1 when none does.
func (s *Seq[T]) IndexOfFunc(pred func(T) bool) int {
	if pred == nil {
		panicNil("predicate")
	}
	return slices.IndexFunc(s.elems, pred)
}

// LastIndexOf returns the index of the last occurrence of [v], or -1 when absent.
func LastIndexOf[T comparable](s *Seq[T], v T) int {
	for i := len(s.elems) - 1; i >= 0; i-- {
		if s.elems[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexOfFunc returns the index of the last element satisfying [pred], or -1 when none does.
func (s *Seq[T]) LastIndexOfFunc(pred func(T) bool) int {
	if pred == nil {
		panicNil("predicate")
	}
	for i := len(s.elems) - 1; i >= 0; i-- {
		if pred(s.elems[i]) {
			return i
		}
	}
	return -1
}
