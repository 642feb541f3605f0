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

// TryList configures a join over an arbitrary-length collection of tasks
// that share one result type.
type TryList[M, A any] struct {
	// (Required) The tasks to launch, all dispatched together. An empty
	// collection is legal: the join succeeds immediately with an empty
	// result.
	Tasks []Task[A]

	// (Required) See the Try2 fields of the same names.
	OnProgress func(Msg) M
	OnSuccess  func([]A) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *TryList[M, A]) Validate() error {
	for _, task := range cfg.Tasks {
		if task == nil {
			return ErrNilTask
		}
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// ListState tracks an in-flight join over a collection of same-typed tasks.
// Like the fixed-arity states it is an immutable value whose length never
// changes after AttemptList.
type ListState[M, A any] struct {
	acc       accumulator
	onSuccess func([]A) M
	onFailure func(error) M
}

var _ Joiner[int] = ListState[int, int]{}

// AttemptList launches every task of cfg together and returns the
// all-pending join state plus the launch batch. The aggregated success
// preserves the original collection order via the index carried in each
// notification, independent of completion order. Panics if cfg is invalid,
// as Attempt2 does.
func AttemptList[M, A any](cfg TryList[M, A]) (ListState[M, A], Cmd[M]) {
	mustValidate(cfg.Validate())

	acc := newAccumulator(len(cfg.Tasks))
	state := ListState[M, A]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
		onFailure: cfg.OnFailure,
	}

	if len(cfg.Tasks) == 0 {
		// Nothing to wait for. The join is born terminal and the success is
		// delivered as an immediate effect.
		state.acc.phase = joinSucceeded
		return state, emit(cfg.OnSuccess([]A{}))
	}

	tasks := make([]Task[any], len(cfg.Tasks))
	for i, task := range cfg.Tasks {
		tasks[i] = eraseTask(task)
	}
	return state, launch(acc.token, tasks, cfg.OnProgress)
}

// Update folds one notification into the join. The emitted success list has
// exactly the length and order of the launched collection. See
// State2.Update for the terminal-state rules.
func (s ListState[M, A]) Update(msg Msg) (ListState[M, A], Cmd[M]) {
	n, ok := msg.(notification)
	if !ok {
		return s, nil
	}
	acc, ev, err := s.acc.apply(n)
	next := s
	next.acc = acc
	switch ev {
	case eventFailed:
		return next, emit(s.onFailure(err))
	case eventSucceeded:
		return next, emit(s.onSuccess(listValues[A](acc)))
	}
	return next, nil
}

// Step implements Joiner.
func (s ListState[M, A]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

// listValues reads every filled slot back at its element type, in launch
// order.
func listValues[A any](acc accumulator) []A {
	values := make([]A, len(acc.slots))
	for i := range acc.slots {
		values[i] = slotValue[A](acc, i)
	}
	return values
}
