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

// Chained joins: the success handler is replaced by a continuation that
// synchronously launches the next stage. The stage's own success never
// reaches the host: when the last slot fills, the continuation runs inside
// Step and its (next state, launch batch) pair is returned in place of a
// success message. Failures still surface through OnFailure, whichever stage
// they occur in.
//
// A continuation returns any Joiner, so stages compose freely: the next
// stage may be a plain AttemptN/AttemptList whose success finally reaches
// the host, or another ChainN, nesting pipelines to arbitrary depth.

// chainState is the arity-independent state of one chained stage. The
// continuation is pre-bound to the typed value pack by the ChainN
// constructor, so a single implementation serves every arity and the list
// form.
type chainState[M any] struct {
	acc accumulator

	// complete packs the filled slots at their static types and invokes the
	// caller's continuation.
	complete func(acc accumulator) (Joiner[M], Cmd[M])

	onFailure func(error) M
}

var _ Joiner[int] = chainState[int]{}

// Step implements Joiner. On the stage's first failure it freezes and emits
// the failure message; on completion it hands control to the continuation.
// Notifications for a stage that already handed off (or froze) are no-ops.
func (s chainState[M]) Step(msg Msg) (Joiner[M], Cmd[M]) {
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
		return s.complete(acc)
	}
	return next, nil
}

//===----------------------------------------------------------------------------------------====//
// Then2 .. Then9 / ThenList
//===----------------------------------------------------------------------------------------====//

// Then2 configures a chained join over two tasks: like Try2, but OnSuccess
// is a continuation that starts the next stage instead of building a
// message.
type Then2[M, R1, R2 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]

	OnProgress func(Msg) M

	// OnSuccess receives the aggregated values in launch order and must
	// return the next stage's state and launch batch, typically by calling
	// one of the Attempt or Chain constructors.
	OnSuccess func(R1, R2) (Joiner[M], Cmd[M])

	OnFailure func(error) M
}

// Validate verifies config values.
func (cfg *Then2[M, R1, R2]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain2 launches both tasks of cfg together and returns the stage's erased
// state plus the launch batch. Panics if cfg is invalid, as Attempt2 does.
func Chain2[M, R1, R2 any](cfg Then2[M, R1, R2]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(2)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
	}, cfg.OnProgress)
}

// Then3 is Then2 for three tasks.
type Then3[M, R1, R2, R3 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Then3[M, R1, R2, R3]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain3 launches all three tasks of cfg together. See Chain2.
func Chain3[M, R1, R2, R3 any](cfg Then3[M, R1, R2, R3]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(3)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
				slotValue[R3](acc, 2),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
	}, cfg.OnProgress)
}

// Then4 is Then2 for four tasks.
type Then4[M, R1, R2, R3, R4 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Then4[M, R1, R2, R3, R4]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain4 launches all four tasks of cfg together. See Chain2.
func Chain4[M, R1, R2, R3, R4 any](cfg Then4[M, R1, R2, R3, R4]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(4)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
				slotValue[R3](acc, 2),
				slotValue[R4](acc, 3),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
		eraseTask(cfg.Task4),
	}, cfg.OnProgress)
}

// Then5 is Then2 for five tasks.
type Then5[M, R1, R2, R3, R4, R5 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Then5[M, R1, R2, R3, R4, R5]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain5 launches all five tasks of cfg together. See Chain2.
func Chain5[M, R1, R2, R3, R4, R5 any](cfg Then5[M, R1, R2, R3, R4, R5]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(5)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
				slotValue[R3](acc, 2),
				slotValue[R4](acc, 3),
				slotValue[R5](acc, 4),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
		eraseTask(cfg.Task4),
		eraseTask(cfg.Task5),
	}, cfg.OnProgress)
}

// Then6 is Then2 for six tasks.
type Then6[M, R1, R2, R3, R4, R5, R6 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]
	Task6 Task[R6]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5, R6) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Then6[M, R1, R2, R3, R4, R5, R6]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain6 launches all six tasks of cfg together. See Chain2.
func Chain6[M, R1, R2, R3, R4, R5, R6 any](cfg Then6[M, R1, R2, R3, R4, R5, R6]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(6)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
				slotValue[R3](acc, 2),
				slotValue[R4](acc, 3),
				slotValue[R5](acc, 4),
				slotValue[R6](acc, 5),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
		eraseTask(cfg.Task4),
		eraseTask(cfg.Task5),
		eraseTask(cfg.Task6),
	}, cfg.OnProgress)
}

// Then7 is Then2 for seven tasks.
type Then7[M, R1, R2, R3, R4, R5, R6, R7 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]
	Task6 Task[R6]
	Task7 Task[R7]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5, R6, R7) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Then7[M, R1, R2, R3, R4, R5, R6, R7]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil || cfg.Task7 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain7 launches all seven tasks of cfg together. See Chain2.
func Chain7[M, R1, R2, R3, R4, R5, R6, R7 any](cfg Then7[M, R1, R2, R3, R4, R5, R6, R7]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(7)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
				slotValue[R3](acc, 2),
				slotValue[R4](acc, 3),
				slotValue[R5](acc, 4),
				slotValue[R6](acc, 5),
				slotValue[R7](acc, 6),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
		eraseTask(cfg.Task4),
		eraseTask(cfg.Task5),
		eraseTask(cfg.Task6),
		eraseTask(cfg.Task7),
	}, cfg.OnProgress)
}

// Then8 is Then2 for eight tasks.
type Then8[M, R1, R2, R3, R4, R5, R6, R7, R8 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]
	Task6 Task[R6]
	Task7 Task[R7]
	Task8 Task[R8]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5, R6, R7, R8) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Then8[M, R1, R2, R3, R4, R5, R6, R7, R8]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil || cfg.Task7 == nil || cfg.Task8 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain8 launches all eight tasks of cfg together. See Chain2.
func Chain8[M, R1, R2, R3, R4, R5, R6, R7, R8 any](cfg Then8[M, R1, R2, R3, R4, R5, R6, R7, R8]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(8)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
				slotValue[R3](acc, 2),
				slotValue[R4](acc, 3),
				slotValue[R5](acc, 4),
				slotValue[R6](acc, 5),
				slotValue[R7](acc, 6),
				slotValue[R8](acc, 7),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
		eraseTask(cfg.Task4),
		eraseTask(cfg.Task5),
		eraseTask(cfg.Task6),
		eraseTask(cfg.Task7),
		eraseTask(cfg.Task8),
	}, cfg.OnProgress)
}

// Then9 is Then2 for nine tasks.
type Then9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]
	Task6 Task[R6]
	Task7 Task[R7]
	Task8 Task[R8]
	Task9 Task[R9]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5, R6, R7, R8, R9) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Then9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil || cfg.Task7 == nil || cfg.Task8 == nil ||
		cfg.Task9 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// Chain9 launches all nine tasks of cfg together. See Chain2.
func Chain9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9 any](cfg Then9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(9)
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(
				slotValue[R1](acc, 0),
				slotValue[R2](acc, 1),
				slotValue[R3](acc, 2),
				slotValue[R4](acc, 3),
				slotValue[R5](acc, 4),
				slotValue[R6](acc, 5),
				slotValue[R7](acc, 6),
				slotValue[R8](acc, 7),
				slotValue[R9](acc, 8),
			)
		},
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
		eraseTask(cfg.Task4),
		eraseTask(cfg.Task5),
		eraseTask(cfg.Task6),
		eraseTask(cfg.Task7),
		eraseTask(cfg.Task8),
		eraseTask(cfg.Task9),
	}, cfg.OnProgress)
}

// ThenList is TryList with the continuation-style success handler of Then2.
type ThenList[M, A any] struct {
	Tasks []Task[A]

	OnProgress func(Msg) M
	OnSuccess  func([]A) (Joiner[M], Cmd[M])
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *ThenList[M, A]) Validate() error {
	for _, task := range cfg.Tasks {
		if task == nil {
			return ErrNilTask
		}
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// ChainList launches every task of cfg together; the continuation receives
// the aggregated values in original collection order. An empty collection
// runs the continuation immediately. See Chain2.
func ChainList[M, A any](cfg ThenList[M, A]) (Joiner[M], Cmd[M]) {
	mustValidate(cfg.Validate())

	if len(cfg.Tasks) == 0 {
		return cfg.OnSuccess([]A{})
	}

	acc := newAccumulator(len(cfg.Tasks))
	state := chainState[M]{
		acc: acc,
		complete: func(acc accumulator) (Joiner[M], Cmd[M]) {
			return cfg.OnSuccess(listValues[A](acc))
		},
		onFailure: cfg.OnFailure,
	}

	tasks := make([]Task[any], len(cfg.Tasks))
	for i, task := range cfg.Tasks {
		tasks[i] = eraseTask(task)
	}
	return state, launch(acc.token, tasks, cfg.OnProgress)
}
