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

// Package parallel joins the results of concurrently-running tasks.
//
// A join waits for a fixed set of tasks that were all launched together and
// aggregates their results: it reports success exactly once when every task
// has succeeded, or reports the first failure exactly once and ignores
// everything that arrives afterwards. This is the "all-or-first-error"
// pattern (cf. Promise.all), packaged so that callers don't hand-write the
// per-task bookkeeping every time.
//
// The package is purely a state machine. It never runs a task itself and it
// never calls a handler directly; Attempt2 through Attempt9 (and AttemptList
// for a homogeneous collection) return an initial state plus a Cmd, a batch
// of effects for the host to execute. As task outcomes come back, the host
// feeds each one into the state's Update method, stores the returned state,
// and executes the returned Cmd. States are immutable values: Update returns
// a fresh state and leaves its receiver untouched, so there is never shared
// mutable state between the host and an in-flight join.
//
// A minimal host loop lives in the sibling program package; any message loop
// that can run an Effect and route the produced message back into Update
// works equally well.
//
// # Joining two tasks
//
//	state, cmd := parallel.Attempt2(parallel.Try2[appMsg, User, []Order]{
//		Task1:      loadUser,
//		Task2:      loadOrders,
//		OnProgress: func(m parallel.Msg) appMsg { return joinProgress{m} },
//		OnSuccess:  func(u User, o []Order) appMsg { return profileLoaded{u, o} },
//		OnFailure:  func(err error) appMsg { return loadFailed{err} },
//	})
//
// Each time the host receives a joinProgress message it forwards the inner
// Msg to state.Update and executes whatever Cmd comes back. The aggregated
// success always presents values in launch order (Task1's value first), no
// matter the order in which the tasks finished.
//
// # Chaining
//
// Chain2 through Chain9 and ChainList replace the success handler with a
// continuation that launches a follow-up join from the aggregated values.
// The first stage's success never surfaces to the host: the continuation
// runs synchronously inside Update and its launch batch is returned in
// place of a success message. Continuations may themselves chain, composing
// pipelines of arbitrary depth.
//
// # What this package does not do
//
// No retries, no timeouts, no cancellation and no throttling: a task that
// was launched runs to completion as far as the join is concerned. A failure
// freezes the join but cannot retract the other in-flight tasks; their
// eventual outcomes are absorbed as no-ops. Callers that want a concurrency
// bound apply it in the substrate that executes the effects (see
// concurrent.PoolConfig), not here.
package parallel
