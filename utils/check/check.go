// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package check

import "fmt"

// Checkf asserts that the given condition is true, if it is not this is assumed to be an unrecoverable
// violation of the state of the program and will result in a panic. E.g.
//
//	for i, item := range items {
//		check.Checkf(i < len(items), "i:%d should never be larger than the number of items", i)
//	}
//
// The message is formatted according to normal go printf semantics.
func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic("check failed: " + fmt.Sprintf(format, a...))
	}
}
