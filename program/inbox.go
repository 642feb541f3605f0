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

package program

import "sync"

// inbox serializes messages for the update loop. It is a closable FIFO that
// also tracks the number of launch effects still in flight, so Next can tell
// the difference between "nothing yet, wait" and "nothing ever again,
// quiesce".
type inbox[M any] struct {
	mutex sync.Mutex
	cond  *sync.Cond

	queue []M

	// Number of launch effects submitted whose message has not been pushed
	// yet. Guarded by mutex.
	pending int

	closed bool
}

func newInbox[M any]() *inbox[M] {
	in := &inbox[M]{}
	in.cond = sync.NewCond(&in.mutex)
	return in
}

// Push appends msg for delivery. Returns false when the inbox is closed and
// the message was dropped.
func (in *inbox[M]) Push(msg M) bool {
	in.mutex.Lock()
	if in.closed {
		in.mutex.Unlock()
		return false
	}
	in.queue = append(in.queue, msg)
	in.cond.Signal()
	in.mutex.Unlock()
	return true
}

// AddPending records n launch effects handed to the runner.
func (in *inbox[M]) AddPending(n int) {
	in.mutex.Lock()
	in.pending += n
	in.mutex.Unlock()
}

// Done records that one pending launch effect has delivered (or dropped) its
// message.
func (in *inbox[M]) Done() {
	in.mutex.Lock()
	in.pending--
	if in.pending == 0 {
		// The loop may be parked waiting for this last effect; wake it so it
		// can observe quiescence.
		in.cond.Broadcast()
	}
	in.mutex.Unlock()
}

// Next pops the oldest message, blocking while the inbox is empty but work
// is still in flight. It returns ok=false when the inbox is closed, or when
// it is empty with nothing pending, meaning the program is quiescent and no
// message can ever arrive again.
func (in *inbox[M]) Next() (msg M, ok bool) {
	in.mutex.Lock()
	defer in.mutex.Unlock()

	for {
		if len(in.queue) > 0 {
			msg = in.queue[0]
			in.queue = in.queue[1:]
			return msg, true
		}
		if in.closed || in.pending == 0 {
			var zero M
			return zero, false
		}
		in.cond.Wait()
	}
}

// Close stops the inbox. Messages already queued are discarded, subsequent
// Push calls report the drop, and a parked Next returns immediately.
func (in *inbox[M]) Close() {
	in.mutex.Lock()
	if !in.closed {
		in.closed = true
		in.queue = nil
		in.cond.Broadcast()
	}
	in.mutex.Unlock()
}
