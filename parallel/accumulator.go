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

import "github.com/google/uuid"

// joinPhase is the lifecycle phase of a join.
type joinPhase int

const (
	// Some slots are still waiting for their task's outcome.
	joinPending joinPhase = iota

	// Every slot is filled; the success has been emitted. Terminal.
	joinSucceeded

	// A failure arrived; the join is frozen. Terminal.
	joinFailed
)

// pendingSlot serves as the sentinel stored in slots whose task has not
// reported an outcome yet. Using a private type rules out collisions with
// task values.
type pendingSlot int

const slotPending pendingSlot = 0

// isPending reports whether a slot still holds the pending sentinel.
func isPending(slot any) bool {
	_, pending := slot.(pendingSlot)
	return pending
}

// event tells the typed wrapper around an accumulator what, if anything, to
// emit after folding one notification.
type event int

const (
	// Nothing to emit; the join is still waiting (or the notification was a
	// no-op against a terminal join).
	eventNone event = iota

	// The last empty slot was just filled; emit the aggregated success.
	eventSucceeded

	// The notification carried the join's first failure; emit it.
	eventFailed
)

// accumulator is the arity-independent join state machine shared by every
// fixed-arity join and by the list join. It is an immutable value: apply
// copies before writing, so an accumulator held by a caller never changes
// underneath them.
//
// The slot count is fixed at construction and never changes for the
// lifetime of the join. Exactly one of the following holds at any time: all
// slots filled (joinSucceeded), frozen by a failure (joinFailed), or at
// least one slot pending (joinPending).
type accumulator struct {
	// Identity of the join instance. Notifications carrying a different token
	// belong to some other (possibly already superseded) join and are
	// ignored.
	token uuid.UUID

	phase joinPhase

	// One slot per task, in launch order. Unfilled slots hold slotPending.
	slots []any

	// Number of slots still holding slotPending. Kept alongside slots to
	// avoid rescanning on every fill.
	remaining int
}

// newAccumulator creates the all-pending state for a join of the given
// arity.
func newAccumulator(arity int) accumulator {
	slots := make([]any, arity)
	for i := range slots {
		slots[i] = slotPending
	}
	return accumulator{
		token:     uuid.New(),
		phase:     joinPending,
		slots:     slots,
		remaining: arity,
	}
}

// apply folds one notification into the accumulator and returns the next
// state plus the emission decision. It is pure: same inputs, same outputs,
// no IO, and the receiver is never modified.
//
// The returned error is non-nil exactly when the returned event is
// eventFailed; it is the failure to surface to the join's OnFailure
// handler.
func (acc accumulator) apply(n notification) (accumulator, event, error) {
	// A terminal join absorbs everything: late completions of sibling tasks
	// after a failure, duplicate deliveries, and notifications addressed to a
	// join this one replaced in a chain.
	if acc.phase != joinPending || n.token != acc.token {
		return acc, eventNone, nil
	}

	if n.err != nil {
		// First failure wins. Slot contents are dead from here on; drop them so
		// the frozen state doesn't pin task values.
		return accumulator{
			token: acc.token,
			phase: joinFailed,
		}, eventFailed, n.err
	}

	if n.index < 0 || n.index >= len(acc.slots) || !isPending(acc.slots[n.index]) {
		// Out-of-range or duplicate fill. Neither can be produced by this
		// package's own launch effects; treat as a no-op rather than corrupt
		// the join.
		return acc, eventNone, nil
	}

	slots := make([]any, len(acc.slots))
	copy(slots, acc.slots)
	slots[n.index] = n.value

	next := accumulator{
		token:     acc.token,
		phase:     joinPending,
		slots:     slots,
		remaining: acc.remaining - 1,
	}

	if next.remaining == 0 {
		next.phase = joinSucceeded
		return next, eventSucceeded, nil
	}

	return next, eventNone, nil
}
