// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq

// countOccurrences builds the multiset view of a sequence: how many times each key occurs.
func countOccurrences[T any, K comparable](s *Seq[T], key func(T) K) map[K]int {
	counts := make(map[K]int, len(s.elems))
	for _, v := range s.elems {
		counts[key(v)]++
	}
	return counts
}

func identity[T comparable](v T) T { return v }

// Intersect returns the elements of [a] which also occur in [b], in a's order, each element repeated
// min(count in a, count in b) times. This is a multiset operation: every duplicate in [a] consumes its own
// match from [b], so Intersect([a a b], [a]) is [a], not [a a].
func Intersect[T comparable](a, b *Seq[T]) *Seq[T] {
	return IntersectBy(a, b, identity[T])
}

// IntersectBy is [Intersect] matching elements by the comparable key [key] extracts, for element types
// which are not comparable themselves.
func IntersectBy[T any, K comparable](a, b *Seq[T], key func(T) K) *Seq[T] {
	if a == nil || b == nil {
		panicNil("operand sequence")
	}
	if key == nil {
		panicNil("key function")
	}
	if b.IsEmpty() {
		return &Seq[T]{}
	}
	remaining := countOccurrences(b, key)
	ret := &Seq[T]{}
	for _, v := range a.elems {
		k := key(v)
		if count := remaining[k]; count > 0 {
			ret.elems = append(ret.elems, v)
			if count == 1 {
				delete(remaining, k)
			} else {
				remaining[k] = count - 1
			}
		}
	}
	return ret
}

// Difference returns the elements of [a] with no remaining match in [b], in a's order. Like [Intersect]
// this is a multiset operation: each occurrence in [b] cancels at most one occurrence in [a], so
// Difference([a a b], [a]) is [a b].
func Difference[T comparable](a, b *Seq[T]) *Seq[T] {
	return DifferenceBy(a, b, identity[T])
}

// DifferenceBy is [Difference] matching elements by the comparable key [key] extracts.
func DifferenceBy[T any, K comparable](a, b *Seq[T], key func(T) K) *Seq[T] {
	if a == nil || b == nil {
		panicNil("operand sequence")
	}
	if key == nil {
		panicNil("key function")
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	remaining := countOccurrences(b, key)
	ret := &Seq[T]{}
	for _, v := range a.elems {
		k := key(v)
		if count := remaining[k]; count > 0 {
			if count == 1 {
				delete(remaining, k)
			} else {
				remaining[k] = count - 1
			}
		} else {
			ret.elems = append(ret.elems, v)
		}
	}
	return ret
}

// Distinct returns a new sequence keeping only the first occurrence of every element, preserving that
// first-occurrence order: Distinct([3 1 3 2 1]) is [3 1 2].
func Distinct[T comparable](s *Seq[T]) *Seq[T] {
	return DistinctBy(s, identity[T])
}

// DistinctBy is [Distinct] where elements are considered duplicates when [key] maps them to the same value.
func DistinctBy[T any, K comparable](s *Seq[T], key func(T) K) *Seq[T] {
	if key == nil {
		panicNil("key function")
	}
	seen := make(map[K]struct{}, len(s.elems))
	ret := &Seq[T]{}
	for _, v := range s.elems {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		ret.elems = append(ret.elems, v)
	}
	return ret
}

// DistinctInPlace removes every element equal to an earlier one, returning the receiver.
func DistinctInPlace[T comparable](s *Seq[T]) *Seq[T] {
	seen := make(map[T]struct{}, len(s.elems))
	return s.compact(func(v T) bool {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}

// Compact returns a new sequence dropping every element equal to the zero value of T.
func Compact[T comparable](s *Seq[T]) *Seq[T] {
	var zero T
	return s.Filter(func(v T) bool { return v != zero })
}

// CompactInPlace removes every element equal to the zero value of T, returning the receiver.
func CompactInPlace[T comparable](s *Seq[T]) *Seq[T] {
	var zero T
	return s.compact(func(v T) bool { return v != zero })
}
