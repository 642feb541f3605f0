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

import (
	"context"

	"github.com/google/uuid"
)

// A Task is one unit of asynchronous work. Running it yields exactly one
// outcome: a value of type T, or an error. Tasks in a join are launched
// together and are never re-entered, cancelled or retried by this package.
type Task[T any] func(ctx context.Context) (T, error)

// An Effect is one schedulable action addressed to the host. It is either a
// task launch, which the host should run asynchronously and whose produced
// message it should deliver back into its own loop, or an immediate message
// delivery carrying a terminal outcome.
type Effect[M any] interface {
	// Immediate returns (msg, true) when the effect delivers msg without
	// running any work. Hosts should short-circuit such effects straight
	// into their message stream instead of scheduling them.
	Immediate() (M, bool)

	// Perform runs the effect to produce its message. For a task launch this
	// runs the task (potentially blocking on IO) and maps the outcome; for an
	// immediate delivery it just returns the message.
	Perform(ctx context.Context) M
}

// Cmd is a batch of independent effects returned to the host. The effects of
// one Cmd carry no ordering between them; a nil Cmd means there is nothing
// to do.
type Cmd[M any] []Effect[M]

// performEffect launches one task of a join.
type performEffect[M any] struct {
	run func(ctx context.Context) M
}

var _ Effect[int] = performEffect[int]{}

// Immediate implements Effect.
func (e performEffect[M]) Immediate() (M, bool) {
	var zero M
	return zero, false
}

// Perform implements Effect.
func (e performEffect[M]) Perform(ctx context.Context) M {
	return e.run(ctx)
}

// emitEffect delivers an already-built message with zero delay. It carries a
// join's terminal outcome into the host's message stream without re-running
// any task.
type emitEffect[M any] struct {
	msg M
}

var _ Effect[int] = emitEffect[int]{}

// Immediate implements Effect.
func (e emitEffect[M]) Immediate() (M, bool) {
	return e.msg, true
}

// Perform implements Effect.
func (e emitEffect[M]) Perform(context.Context) M {
	return e.msg
}

// emit wraps msg into a single-effect Cmd.
func emit[M any](msg M) Cmd[M] {
	return Cmd[M]{emitEffect[M]{msg: msg}}
}

// launch builds the batch of effects that starts every task of a join at
// once. The outcome of task i is tagged with the join token and its slot
// index so the accumulator can tell which slot it fills, then routed through
// onProgress to become a host message.
func launch[M any](token uuid.UUID, tasks []Task[any], onProgress func(Msg) M) Cmd[M] {
	cmd := make(Cmd[M], len(tasks))
	for i, task := range tasks {
		i, task := i, task
		cmd[i] = performEffect[M]{
			run: func(ctx context.Context) M {
				value, err := task(ctx)
				return onProgress(notification{
					token: token,
					index: i,
					value: value,
					err:   err,
				})
			},
		}
	}
	return cmd
}

// eraseTask adapts a typed task for storage alongside tasks of other result
// types. The value travels as an "any" until the join's final pack restores
// its static type.
func eraseTask[T any](task Task[T]) Task[any] {
	return func(ctx context.Context) (any, error) {
		return task(ctx)
	}
}
