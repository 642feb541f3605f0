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

// This file holds the fixed-arity joins for 2 through 9 heterogeneously
// typed tasks. The state machine itself lives in accumulator.go and is
// arity-independent; everything here is the typed shell around it: a config
// struct, a launch function and an Update that packs the aggregated values
// back at their static types, repeated per arity because Go has no variadic
// type parameters.

//===----------------------------------------------------------------------------------------====//
// Try2 / State2
//===----------------------------------------------------------------------------------------====//

// Try2 configures a join over two concurrently-running tasks of possibly
// different result types.
type Try2[M, R1, R2 any] struct {
	// (Required) The tasks to launch. All of them are dispatched together the
	// moment Attempt2 is called.
	Task1 Task[R1]
	Task2 Task[R2]

	// (Required) OnProgress wraps a slot notification into a host message.
	// The host must hand the wrapped Msg back to Update; it carries which
	// task completed and with what outcome.
	OnProgress func(Msg) M

	// (Required) OnSuccess builds the message delivered exactly once, after
	// every task has succeeded. Values appear in launch order (Task1's
	// result first) regardless of completion order.
	OnSuccess func(R1, R2) M

	// (Required) OnFailure builds the message delivered exactly once, as soon
	// as the first task fails. Outcomes of the remaining in-flight tasks are
	// absorbed silently afterwards.
	OnFailure func(error) M
}

// Validate verifies config values.
func (cfg *Try2[M, R1, R2]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State2 tracks an in-flight join of two tasks. It is an immutable value:
// Update returns the successor state and never modifies its receiver. The
// internal representation is not part of the contract.
type State2[M, R1, R2 any] struct {
	acc       accumulator
	onSuccess func(R1, R2) M
	onFailure func(error) M
}

var _ Joiner[int] = State2[int, int, int]{}

// Attempt2 launches both tasks of cfg together and returns the all-pending
// join state plus the launch batch for the host to execute. Dispatch cannot
// fail; Attempt2 panics if cfg itself is invalid (a nil task or handler).
func Attempt2[M, R1, R2 any](cfg Try2[M, R1, R2]) (State2[M, R1, R2], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(2)
	state := State2[M, R1, R2]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
	}, cfg.OnProgress)
}

// Update folds one notification into the join. It returns the successor
// state and at most one effect: the success message when the notification
// filled the last empty slot, the failure message when it carried the first
// failure, and nothing otherwise. Updating a join that already reached a
// terminal state is a no-op.
func (s State2[M, R1, R2]) Update(msg Msg) (State2[M, R1, R2], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State2[M, R1, R2]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

//===----------------------------------------------------------------------------------------====//
// Try3 / State3
//===----------------------------------------------------------------------------------------====//

// Try3 is Try2 for three tasks.
type Try3[M, R1, R2, R3 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Try3[M, R1, R2, R3]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State3 tracks an in-flight join of three tasks.
type State3[M, R1, R2, R3 any] struct {
	acc       accumulator
	onSuccess func(R1, R2, R3) M
	onFailure func(error) M
}

var _ Joiner[int] = State3[int, int, int, int]{}

// Attempt3 launches all three tasks of cfg together. See Attempt2.
func Attempt3[M, R1, R2, R3 any](cfg Try3[M, R1, R2, R3]) (State3[M, R1, R2, R3], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(3)
	state := State3[M, R1, R2, R3]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
	}, cfg.OnProgress)
}

// Update folds one notification into the join. See State2.Update.
func (s State3[M, R1, R2, R3]) Update(msg Msg) (State3[M, R1, R2, R3], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
			slotValue[R3](acc, 2),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State3[M, R1, R2, R3]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

//===----------------------------------------------------------------------------------------====//
// Try4 / State4
//===----------------------------------------------------------------------------------------====//

// Try4 is Try2 for four tasks.
type Try4[M, R1, R2, R3, R4 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Try4[M, R1, R2, R3, R4]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State4 tracks an in-flight join of four tasks.
type State4[M, R1, R2, R3, R4 any] struct {
	acc       accumulator
	onSuccess func(R1, R2, R3, R4) M
	onFailure func(error) M
}

var _ Joiner[int] = State4[int, int, int, int, int]{}

// Attempt4 launches all four tasks of cfg together. See Attempt2.
func Attempt4[M, R1, R2, R3, R4 any](cfg Try4[M, R1, R2, R3, R4]) (State4[M, R1, R2, R3, R4], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(4)
	state := State4[M, R1, R2, R3, R4]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
		onFailure: cfg.OnFailure,
	}
	return state, launch(acc.token, []Task[any]{
		eraseTask(cfg.Task1),
		eraseTask(cfg.Task2),
		eraseTask(cfg.Task3),
		eraseTask(cfg.Task4),
	}, cfg.OnProgress)
}

// Update folds one notification into the join. See State2.Update.
func (s State4[M, R1, R2, R3, R4]) Update(msg Msg) (State4[M, R1, R2, R3, R4], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
			slotValue[R3](acc, 2),
			slotValue[R4](acc, 3),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State4[M, R1, R2, R3, R4]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

//===----------------------------------------------------------------------------------------====//
// Try5 / State5
//===----------------------------------------------------------------------------------------====//

// Try5 is Try2 for five tasks.
type Try5[M, R1, R2, R3, R4, R5 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Try5[M, R1, R2, R3, R4, R5]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State5 tracks an in-flight join of five tasks.
type State5[M, R1, R2, R3, R4, R5 any] struct {
	acc       accumulator
	onSuccess func(R1, R2, R3, R4, R5) M
	onFailure func(error) M
}

var _ Joiner[int] = State5[int, int, int, int, int, int]{}

// Attempt5 launches all five tasks of cfg together. See Attempt2.
func Attempt5[M, R1, R2, R3, R4, R5 any](cfg Try5[M, R1, R2, R3, R4, R5]) (State5[M, R1, R2, R3, R4, R5], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(5)
	state := State5[M, R1, R2, R3, R4, R5]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
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

// Update folds one notification into the join. See State2.Update.
func (s State5[M, R1, R2, R3, R4, R5]) Update(msg Msg) (State5[M, R1, R2, R3, R4, R5], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
			slotValue[R3](acc, 2),
			slotValue[R4](acc, 3),
			slotValue[R5](acc, 4),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State5[M, R1, R2, R3, R4, R5]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

//===----------------------------------------------------------------------------------------====//
// Try6 / State6
//===----------------------------------------------------------------------------------------====//

// Try6 is Try2 for six tasks.
type Try6[M, R1, R2, R3, R4, R5, R6 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]
	Task6 Task[R6]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5, R6) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Try6[M, R1, R2, R3, R4, R5, R6]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State6 tracks an in-flight join of six tasks.
type State6[M, R1, R2, R3, R4, R5, R6 any] struct {
	acc       accumulator
	onSuccess func(R1, R2, R3, R4, R5, R6) M
	onFailure func(error) M
}

var _ Joiner[int] = State6[int, int, int, int, int, int, int]{}

// Attempt6 launches all six tasks of cfg together. See Attempt2.
func Attempt6[M, R1, R2, R3, R4, R5, R6 any](cfg Try6[M, R1, R2, R3, R4, R5, R6]) (State6[M, R1, R2, R3, R4, R5, R6], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(6)
	state := State6[M, R1, R2, R3, R4, R5, R6]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
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

// Update folds one notification into the join. See State2.Update.
func (s State6[M, R1, R2, R3, R4, R5, R6]) Update(msg Msg) (State6[M, R1, R2, R3, R4, R5, R6], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
			slotValue[R3](acc, 2),
			slotValue[R4](acc, 3),
			slotValue[R5](acc, 4),
			slotValue[R6](acc, 5),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State6[M, R1, R2, R3, R4, R5, R6]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

//===----------------------------------------------------------------------------------------====//
// Try7 / State7
//===----------------------------------------------------------------------------------------====//

// Try7 is Try2 for seven tasks.
type Try7[M, R1, R2, R3, R4, R5, R6, R7 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]
	Task6 Task[R6]
	Task7 Task[R7]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5, R6, R7) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Try7[M, R1, R2, R3, R4, R5, R6, R7]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil || cfg.Task7 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State7 tracks an in-flight join of seven tasks.
type State7[M, R1, R2, R3, R4, R5, R6, R7 any] struct {
	acc       accumulator
	onSuccess func(R1, R2, R3, R4, R5, R6, R7) M
	onFailure func(error) M
}

var _ Joiner[int] = State7[int, int, int, int, int, int, int, int]{}

// Attempt7 launches all seven tasks of cfg together. See Attempt2.
func Attempt7[M, R1, R2, R3, R4, R5, R6, R7 any](cfg Try7[M, R1, R2, R3, R4, R5, R6, R7]) (State7[M, R1, R2, R3, R4, R5, R6, R7], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(7)
	state := State7[M, R1, R2, R3, R4, R5, R6, R7]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
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

// Update folds one notification into the join. See State2.Update.
func (s State7[M, R1, R2, R3, R4, R5, R6, R7]) Update(msg Msg) (State7[M, R1, R2, R3, R4, R5, R6, R7], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
			slotValue[R3](acc, 2),
			slotValue[R4](acc, 3),
			slotValue[R5](acc, 4),
			slotValue[R6](acc, 5),
			slotValue[R7](acc, 6),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State7[M, R1, R2, R3, R4, R5, R6, R7]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

//===----------------------------------------------------------------------------------------====//
// Try8 / State8
//===----------------------------------------------------------------------------------------====//

// Try8 is Try2 for eight tasks.
type Try8[M, R1, R2, R3, R4, R5, R6, R7, R8 any] struct {
	Task1 Task[R1]
	Task2 Task[R2]
	Task3 Task[R3]
	Task4 Task[R4]
	Task5 Task[R5]
	Task6 Task[R6]
	Task7 Task[R7]
	Task8 Task[R8]

	OnProgress func(Msg) M
	OnSuccess  func(R1, R2, R3, R4, R5, R6, R7, R8) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Try8[M, R1, R2, R3, R4, R5, R6, R7, R8]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil || cfg.Task7 == nil || cfg.Task8 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State8 tracks an in-flight join of eight tasks.
type State8[M, R1, R2, R3, R4, R5, R6, R7, R8 any] struct {
	acc       accumulator
	onSuccess func(R1, R2, R3, R4, R5, R6, R7, R8) M
	onFailure func(error) M
}

var _ Joiner[int] = State8[int, int, int, int, int, int, int, int, int]{}

// Attempt8 launches all eight tasks of cfg together. See Attempt2.
func Attempt8[M, R1, R2, R3, R4, R5, R6, R7, R8 any](cfg Try8[M, R1, R2, R3, R4, R5, R6, R7, R8]) (State8[M, R1, R2, R3, R4, R5, R6, R7, R8], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(8)
	state := State8[M, R1, R2, R3, R4, R5, R6, R7, R8]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
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

// Update folds one notification into the join. See State2.Update.
func (s State8[M, R1, R2, R3, R4, R5, R6, R7, R8]) Update(msg Msg) (State8[M, R1, R2, R3, R4, R5, R6, R7, R8], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
			slotValue[R3](acc, 2),
			slotValue[R4](acc, 3),
			slotValue[R5](acc, 4),
			slotValue[R6](acc, 5),
			slotValue[R7](acc, 6),
			slotValue[R8](acc, 7),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State8[M, R1, R2, R3, R4, R5, R6, R7, R8]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}

//===----------------------------------------------------------------------------------------====//
// Try9 / State9
//===----------------------------------------------------------------------------------------====//

// Try9 is Try2 for nine tasks. Callers who outgrow nine heterogeneous tasks
// should regroup them or use AttemptList for homogeneous collections.
type Try9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9 any] struct {
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
	OnSuccess  func(R1, R2, R3, R4, R5, R6, R7, R8, R9) M
	OnFailure  func(error) M
}

// Validate verifies config values.
func (cfg *Try9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9]) Validate() error {
	if cfg.Task1 == nil || cfg.Task2 == nil || cfg.Task3 == nil || cfg.Task4 == nil ||
		cfg.Task5 == nil || cfg.Task6 == nil || cfg.Task7 == nil || cfg.Task8 == nil ||
		cfg.Task9 == nil {
		return ErrNilTask
	}
	return handlerErr(cfg.OnProgress == nil, cfg.OnSuccess == nil, cfg.OnFailure == nil)
}

// State9 tracks an in-flight join of nine tasks.
type State9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9 any] struct {
	acc       accumulator
	onSuccess func(R1, R2, R3, R4, R5, R6, R7, R8, R9) M
	onFailure func(error) M
}

var _ Joiner[int] = State9[int, int, int, int, int, int, int, int, int, int]{}

// Attempt9 launches all nine tasks of cfg together. See Attempt2.
func Attempt9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9 any](cfg Try9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9]) (State9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9], Cmd[M]) {
	mustValidate(cfg.Validate())
	acc := newAccumulator(9)
	state := State9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9]{
		acc:       acc,
		onSuccess: cfg.OnSuccess,
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

// Update folds one notification into the join. See State2.Update.
func (s State9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9]) Update(msg Msg) (State9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9], Cmd[M]) {
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
		return next, emit(s.onSuccess(
			slotValue[R1](acc, 0),
			slotValue[R2](acc, 1),
			slotValue[R3](acc, 2),
			slotValue[R4](acc, 3),
			slotValue[R5](acc, 4),
			slotValue[R6](acc, 5),
			slotValue[R7](acc, 6),
			slotValue[R8](acc, 7),
			slotValue[R9](acc, 8),
		))
	}
	return next, nil
}

// Step implements Joiner.
func (s State9[M, R1, R2, R3, R4, R5, R6, R7, R8, R9]) Step(msg Msg) (Joiner[M], Cmd[M]) {
	next, cmd := s.Update(msg)
	return next, cmd
}
