// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package seq

import "github.com/Lexer747/seq/utils/errors"

// The sequence operations treat a bad argument as a programmer error and report it synchronously by
// panicking with an error wrapping one of these sentinels. Recovered panic values can be classified with
// [errors.Is] from the standard library.
var (
	// ErrOutOfRange is the panic cause for an index outside [-size, size), or a subsequence range outside
	// the sequence bounds.
	ErrOutOfRange = errors.New("seq: index out of range")
	// ErrInvalidArgument is the panic cause for a non-positive group size, repeat count or sample size.
	ErrInvalidArgument = errors.New("seq: invalid argument")
	// ErrNilArgument is the panic cause for an absent function or sequence argument where one is mandatory.
	ErrNilArgument = errors.New("seq: nil argument")
)

func panicOutOfRange(index, size int) {
	panic(errors.Wrapf(ErrOutOfRange, "index %d, size %d, should be within [%d, %d)", index, size, -size, size))
}

func panicBadRange(from, to, size int) {
	panic(errors.Wrapf(ErrOutOfRange, "subsequence [%d, %d), size %d, needs 0 <= from <= to <= size", from, to, size))
}

func panicInvalid(format string, args ...any) {
	panic(errors.Wrapf(ErrInvalidArgument, format, args...))
}

func panicNil(what string) {
	panic(errors.Wrapf(ErrNilArgument, "%s must not be nil", what))
}
