// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package seq implements a generic ordered sequence with a rich functional surface: transforms, grouping,
// combinatorics, rotation and multiset operations. Every operation comes in at most two flavours, a
// copy-returning one which never touches its operands, and an InPlace one which mutates the receiver and
// returns it so calls can be chained. The returned receiver of an InPlace method aliases the sequence it was
// called on, no new ownership is created.
//
// Indices may be negative: index -1 addresses the last element, -size the first, exactly mirroring the
// positive range. Any index outside [-size, size) panics with an error wrapping [ErrOutOfRange], the
// non-panicking [Seq.Lookup] is the query form.
//
// Operations which need a capability the element type may not have, equality, hashing or ordering, live as
// package functions constrained on that capability ([Equal], [Intersect], [Min], ...) with By variants
// taking an explicit key function for element types which are not comparable themselves.
//
// A Seq is a single-owner structure: it is not safe for concurrent mutation, external synchronisation is the
// caller's job if one is shared across goroutines. Copy-returning operations are safe to call from multiple
// readers as long as no writer is running.
package seq

import (
	"fmt"
	"iter"
	"slices"
)

// Seq is an ordered, insertion-order preserving container of T. The zero value is not useful, construct
// with [New], [From], [Collect] or [Empty].
type Seq[T any] struct {
	elems []T
}

// New builds a sequence holding the given elements. The variadic slice is copied, the caller keeps any
// backing array it passed in.
func New[T any](elems ...T) *Seq[T] {
	return &Seq[T]{elems: slices.Clone(elems)}
}

// From builds a sequence copying the elements of [s]. Later mutation of [s] never affects the returned
// sequence and vice versa.
func From[T any, S ~[]T](s S) *Seq[T] {
	return &Seq[T]{elems: append([]T{}, s...)}
}

// Empty builds a sequence with no elements.
func Empty[T any]() *Seq[T] {
	return &Seq[T]{}
}

// Clone returns an independent copy of the sequence.
func (s *Seq[T]) Clone() *Seq[T] {
	return &Seq[T]{elems: slices.Clone(s.elems)}
}

// Len returns the number of elements.
func (s *Seq[T]) Len() int { return len(s.elems) }

// IsEmpty reports whether the sequence holds no elements.
func (s *Seq[T]) IsEmpty() bool { return len(s.elems) == 0 }

// normalizeIndex resolves a possibly negative logical index against [size], reporting whether it was in the
// valid range [-size, size). Every positional accessor routes through this so that Get(-1), Set(-1, v) and
// friends all address the same physical slot.
func normalizeIndex(index, size int) (int, bool) {
	if index >= size || index < -size {
		return 0, false
	}
	if index < 0 {
		return size + index, true
	}
	return index, true
}

func (s *Seq[T]) index(i int) int {
	p, ok := normalizeIndex(i, len(s.elems))
	if !ok {
		panicOutOfRange(i, len(s.elems))
	}
	return p
}

// Get returns the element at [index]. A negative index counts from the end, Get(-1) is the last element.
// Panics wrapping [ErrOutOfRange] when index is outside [-size, size).
func (s *Seq[T]) Get(index int) T {
	return s.elems[s.index(index)]
}

// Lookup is the non-panicking [Seq.Get]: it returns the element at [index] and true, or the zero value and
// false when the index is out of range.
func (s *Seq[T]) Lookup(index int) (T, bool) {
	p, ok := normalizeIndex(index, len(s.elems))
	if !ok {
		var zero T
		return zero, false
	}
	return s.elems[p], true
}

// Set writes [value] at [index] (negative indices allowed) and returns the receiver. Panics wrapping
// [ErrOutOfRange] when index is outside [-size, size).
func (s *Seq[T]) Set(index int, value T) *Seq[T] {
	s.elems[s.index(index)] = value
	return s
}

// Swap returns a copy of the sequence with the elements at [i] and [j] exchanged.
func (s *Seq[T]) Swap(i, j int) *Seq[T] {
	return s.Clone().SwapInPlace(i, j)
}

// SwapInPlace exchanges the elements at [i] and [j], returning the receiver.
func (s *Seq[T]) SwapInPlace(i, j int) *Seq[T] {
	pi, pj := s.index(i), s.index(j)
	s.elems[pi], s.elems[pj] = s.elems[pj], s.elems[pi]
	return s
}

// Append returns a copy of the sequence with [values] added at the end.
func (s *Seq[T]) Append(values ...T) *Seq[T] {
	ret := make([]T, 0, len(s.elems)+len(values))
	ret = append(ret, s.elems...)
	ret = append(ret, values...)
	return &Seq[T]{elems: ret}
}

// AppendSeq returns a copy of the sequence with all elements of [other] added at the end.
func (s *Seq[T]) AppendSeq(other *Seq[T]) *Seq[T] {
	if other == nil {
		panicNil("other sequence")
	}
	return s.Append(other.elems...)
}

// AppendInPlace adds [values] at the end, returning the receiver.
func (s *Seq[T]) AppendInPlace(values ...T) *Seq[T] {
	s.elems = append(s.elems, values...)
	return s
}

// AppendSeqInPlace adds all elements of [other] at the end, returning the receiver.
func (s *Seq[T]) AppendSeqInPlace(other *Seq[T]) *Seq[T] {
	if other == nil {
		panicNil("other sequence")
	}
	s.elems = append(s.elems, other.elems...)
	return s
}

// Prepend returns a copy of the sequence with [values] inserted at the front, in the order given.
func (s *Seq[T]) Prepend(values ...T) *Seq[T] {
	ret := make([]T, 0, len(s.elems)+len(values))
	ret = append(ret, values...)
	ret = append(ret, s.elems...)
	return &Seq[T]{elems: ret}
}

// PrependSeq returns a copy of the sequence with all elements of [other] inserted at the front.
func (s *Seq[T]) PrependSeq(other *Seq[T]) *Seq[T] {
	if other == nil {
		panicNil("other sequence")
	}
	return s.Prepend(other.elems...)
}

// PrependInPlace inserts [values] at the front, returning the receiver.
func (s *Seq[T]) PrependInPlace(values ...T) *Seq[T] {
	s.elems = slices.Insert(s.elems, 0, values...)
	return s
}

// PrependSeqInPlace inserts all elements of [other] at the front, returning the receiver.
func (s *Seq[T]) PrependSeqInPlace(other *Seq[T]) *Seq[T] {
	if other == nil {
		panicNil("other sequence")
	}
	s.elems = slices.Insert(s.elems, 0, other.elems...)
	return s
}

// SubSeq returns a new sequence copying the half-open range [from, to). Unlike single-element accessors the
// range is not subject to negative indexing: it must satisfy 0 <= from <= to <= size, anything else panics
// wrapping [ErrOutOfRange].
func (s *Seq[T]) SubSeq(from, to int) *Seq[T] {
	if from < 0 || from > to || to > len(s.elems) {
		panicBadRange(from, to, len(s.elems))
	}
	return &Seq[T]{elems: append([]T{}, s.elems[from:to]...)}
}

// Clear removes every element, returning the receiver.
func (s *Seq[T]) Clear() *Seq[T] {
	s.elems = s.elems[:0]
	return s
}

// ToSlice returns the elements as a fresh slice, never the backing store itself. The result is non-nil
// even for an empty sequence.
func (s *Seq[T]) ToSlice() []T {
	ret := make([]T, len(s.elems))
	copy(ret, s.elems)
	return ret
}

func (s *Seq[T]) String() string {
	return fmt.Sprintf("%v", s.elems)
}

// All returns an iterator over (index, element) pairs in order.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (s *Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.elems {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, element) pairs from the last element to the first.
func (s *Seq[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.elems) - 1; i >= 0; i-- {
			if !yield(i, s.elems[i]) {
				return
			}
		}
	}
}

// ForEach calls [f] once per element, in order.
func (s *Seq[T]) ForEach(f func(T)) {
	if f == nil {
		panicNil("function")
	}
	for _, v := range s.elems {
		f(v)
	}
}

// Collect builds a sequence by draining the iterator [it].
func Collect[T any](it iter.Seq[T]) *Seq[T] {
	if it == nil {
		panicNil("iterator")
	}
	ret := &Seq[T]{}
	for v := range it {
		ret.elems = append(ret.elems, v)
	}
	return ret
}
