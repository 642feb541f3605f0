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

// A Msg is a tagged notification reporting one task's outcome, addressed to
// the join that launched the task. Msg values are created only by the launch
// effects of a join; callers wrap them into their own message type via a
// join's OnProgress callback and hand them back to Update unchanged. The
// payload is deliberately opaque: which slot a Msg fills and whether it
// carries a value or an error is the accumulator's business, not the
// host's.
type Msg interface {
	// msg restricts implementations to this package.
	msg()
}

// notification is the one Msg implementation. The token identifies the join
// instance the notification belongs to; index identifies the slot within
// that join. Delivery to a join with a different token is a no-op, which is
// what makes late completions from an already-terminal or superseded join
// harmless.
type notification struct {
	token uuid.UUID
	index int
	value any
	err   error
}

var _ Msg = notification{}

func (notification) msg() {}
