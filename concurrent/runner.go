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

// Package concurrent provides the execution substrate that runs the effects
// of a join: fire-and-forget jobs executed on a bounded pool of goroutine
// workers. Jobs carry their outcome back through whatever message channel
// the caller wired into them (see the program package); the substrate
// itself offers no per-job handle, no cancellation and no retry.
package concurrent

import (
	"context"
	"errors"
)

// Job represents one fire-and-forget unit of work submitted to a Runner.
type Job interface {
	// Run performs the work. The context is the runner's base context; jobs
	// that block on IO should honor it.
	Run(ctx context.Context)
}

// The JobFunc type is an adapter to allow the use of ordinary functions as a
// Job.
type JobFunc func(ctx context.Context)

// JobFunc implements Job.
var _ Job = (JobFunc)(nil)

// Run implements Job. It calls f(ctx).
func (f JobFunc) Run(ctx context.Context) {
	f(ctx)
}

// ErrRunnerClosed is returned by Submit when the runner has been shut down
// and accepts no further jobs.
var ErrRunnerClosed = errors.New("concurrent: runner is shut down")

// Runner executes submitted jobs asynchronously.
type Runner interface {
	// Submit arranges job for execution. The method only schedules; the
	// actual run may occur any time later, on any worker. Returns
	// ErrRunnerClosed after Shutdown.
	Submit(job Job) error

	// Shutdown stops the runner. Previously submitted jobs are still
	// executed but no new jobs are accepted; calling it again is a no-op.
	// The returned channel receives one value once every remaining job has
	// completed.
	Shutdown() <-chan bool
}
