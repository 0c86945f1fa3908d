// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"github.com/Lexer747/seq/utils/errors"
)

// T is the most generic test interface shared by all the frameworks these tests lean on, it lets the same
// helper serve both plain [*testing.T] tests and [rapid.Check] property bodies.
type T interface {
	rapid.TB
}

// AllowAllUnexported lets [cmp.Diff] see through the unexported backing store of a sequence, which is the
// whole point when asserting on sequence contents.
var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// AssertPanicsWith runs [f] expecting it to panic with an error wrapping [sentinel], failing the test when
// [f] returns normally or panics with anything else.
func AssertPanicsWith(t T, sentinel error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic wrapping %q, got no panic", sentinel)
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
			return
		}
		assert.Check(t, errors.Is(err, sentinel), "panic %v does not wrap %q", err, sentinel)
	}()
	f()
}
