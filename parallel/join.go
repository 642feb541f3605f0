/**
 * Copyright (c) 2026, The Taskjoin Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package parallel

import "errors"

// A Joiner is the erased handle to an in-flight join. Every join state in
// this package implements it; it exists so joins of different shapes can be
// advanced uniformly. The return value of a chain continuation is the main
// use, since it may be a join of any arity or a list join.
type Joiner[M any] interface {
	// Step folds one notification into the join, like the typed Update
	// methods, with the next state erased to a Joiner.
	Step(msg Msg) (Joiner[M], Cmd[M])
}

// Errors reported by config validation.
var (
	// ErrNilTask indicates a join config with a missing task.
	ErrNilTask = errors.New("parallel: every task of a join must be non-nil")

	// ErrNilHandler indicates a join config with a missing OnProgress,
	// OnSuccess or OnFailure callback.
	ErrNilHandler = errors.New("parallel: OnProgress, OnSuccess and OnFailure must be non-nil")
)

// mustValidate turns an invalid config into a panic. Dispatch itself cannot
// fail (a task's own failure is an ordinary outcome, not a dispatch error),
// so a config that cannot even be dispatched is programmer error on the
// level of a nil function call.
func mustValidate(err error) {
	if err != nil {
		panic(err)
	}
}

// handlerErr reports ErrNilHandler unless all three handler slots were
// provided. The callbacks themselves are type-specific per config; callers
// pass the nilness of each.
func handlerErr(progress, success, failure bool) error {
	if progress || success || failure {
		return ErrNilHandler
	}
	return nil
}

// slotValue reads the filled slot i back at its static type. A task whose
// result was an untyped nil comes back as the zero value of T.
func slotValue[T any](acc accumulator, i int) T {
	v, _ := acc.slots[i].(T)
	return v
}
