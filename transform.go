// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq

import "slices"

// Map will create a new sequence of type [OUT] from which every element comes from [s] after the function
// [f] has been applied to it.
func Map[IN, OUT any](s *Seq[IN], f func(IN) OUT) *Seq[OUT] {
	if f == nil {
		panicNil("map function")
	}
	ret := make([]OUT, len(s.elems))
	for i, in := range s.elems {
		ret[i] = f(in)
	}
	return &Seq[OUT]{elems: ret}
}

// MapIndexed is [Map] where [f] also receives the element's index.
func MapIndexed[IN, OUT any](s *Seq[IN], f func(IN, int) OUT) *Seq[OUT] {
	if f == nil {
		panicNil("map function")
	}
	ret := make([]OUT, len(s.elems))
	for i, in := range s.elems {
		ret[i] = f(in, i)
	}
	return &Seq[OUT]{elems: ret}
}

// FlatMap applies [f] to every element and concatenates the resulting sequences into one, in source order.
func FlatMap[IN, OUT any](s *Seq[IN], f func(IN) *Seq[OUT]) *Seq[OUT] {
	if f == nil {
		panicNil("flat map function")
	}
	ret := &Seq[OUT]{}
	for _, in := range s.elems {
		if sub := f(in); sub != nil {
			ret.elems = append(ret.elems, sub.elems...)
		}
	}
	return ret
}

// Fold is a left fold over the sequence, applying f(element, acc) to every element and returning the final
// [OUT] accumulation.
func Fold[IN, OUT any](s *Seq[IN], base OUT, f func(IN, OUT) OUT) OUT {
	if f == nil {
		panicNil("fold function")
	}
	ret := base
	for _, in := range s.elems {
		ret = f(in, ret)
	}
	return ret
}

// Filter returns a new sequence of the elements satisfying [pred], in source order.
func (s *Seq[T]) Filter(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	ret := &Seq[T]{}
	for _, v := range s.elems {
		if pred(v) {
			ret.elems = append(ret.elems, v)
		}
	}
	return ret
}

// Reject returns a new sequence of the elements not satisfying [pred], in source order.
func (s *Seq[T]) Reject(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	return s.Filter(func(v T) bool { return !pred(v) })
}

// FilterWhile returns a new sequence of the longest prefix whose elements all satisfy [pred].
func (s *Seq[T]) FilterWhile(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	end := 0
	for ; end < len(s.elems) && pred(s.elems[end]); end++ {
	}
	return &Seq[T]{elems: append([]T{}, s.elems[:end]...)}
}

// RejectWhile returns a new sequence dropping the longest prefix whose elements all satisfy [pred],
// keeping everything from the first non-satisfying element onwards.
func (s *Seq[T]) RejectWhile(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	start := 0
	for ; start < len(s.elems) && pred(s.elems[start]); start++ {
	}
	return &Seq[T]{elems: append([]T{}, s.elems[start:]...)}
}

// compact retains, in order, exactly the elements satisfying [keep], shifting survivors left in one pass and
// zeroing the abandoned tail so removed elements are not kept alive by the backing store.
func (s *Seq[T]) compact(keep func(T) bool) *Seq[T] {
	n := 0
	for _, v := range s.elems {
		if keep(v) {
			s.elems[n] = v
			n++
		}
	}
	clear(s.elems[n:])
	s.elems = s.elems[:n]
	return s
}

// FilterInPlace removes every element not satisfying [pred], returning the receiver. Survivors keep their
// relative order.
func (s *Seq[T]) FilterInPlace(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	return s.compact(pred)
}

// RejectInPlace removes every element satisfying [pred], returning the receiver. Survivors keep their
// relative order.
func (s *Seq[T]) RejectInPlace(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	return s.compact(func(v T) bool { return !pred(v) })
}

// FilterWhileInPlace truncates the sequence to the longest prefix whose elements all satisfy [pred],
// returning the receiver.
func (s *Seq[T]) FilterWhileInPlace(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	end := 0
	for ; end < len(s.elems) && pred(s.elems[end]); end++ {
	}
	clear(s.elems[end:])
	s.elems = s.elems[:end]
	return s
}

// RejectWhileInPlace drops the longest prefix whose elements all satisfy [pred], returning the receiver.
func (s *Seq[T]) RejectWhileInPlace(pred func(T) bool) *Seq[T] {
	if pred == nil {
		panicNil("predicate")
	}
	start := 0
	for ; start < len(s.elems) && pred(s.elems[start]); start++ {
	}
	n := copy(s.elems, s.elems[start:])
	clear(s.elems[n:])
	s.elems = s.elems[:n]
	return s
}

// Reverse returns a new sequence with the elements in opposite order.
func (s *Seq[T]) Reverse() *Seq[T] {
	ret := make([]T, len(s.elems))
	for i, v := range s.elems {
		ret[len(ret)-1-i] = v
	}
	return &Seq[T]{elems: ret}
}

// ReverseInPlace reverses the element order, returning the receiver.
func (s *Seq[T]) ReverseInPlace() *Seq[T] {
	slices.Reverse(s.elems)
	return s
}

// Repeat returns a new sequence holding the receiver's elements [times] times over. Panics wrapping
// [ErrInvalidArgument] when times is not positive.
func (s *Seq[T]) Repeat(times int) *Seq[T] {
	if times <= 0 {
		panicInvalid("repeat count %d must be positive", times)
	}
	ret := make([]T, 0, len(s.elems)*times)
	for range times {
		ret = append(ret, s.elems...)
	}
	return &Seq[T]{elems: ret}
}

// RepeatInPlace appends the receiver's own elements until they appear [times] times over, returning the
// receiver. Panics wrapping [ErrInvalidArgument] when times is not positive.
func (s *Seq[T]) RepeatInPlace(times int) *Seq[T] {
	if times <= 0 {
		panicInvalid("repeat count %d must be positive", times)
	}
	base := len(s.elems)
	s.elems = slices.Grow(s.elems, base*(times-1))
	for range times - 1 {
		s.elems = append(s.elems, s.elems[:base]...)
	}
	return s
}
