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

package parallel_test

import (
	"errors"

	"github.com/0ui/taskjoin/parallel"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Attempt2: join two heterogeneous tasks", func() {
	newJoin := func() (parallel.State2[any, string, int], parallel.Cmd[any]) {
		return parallel.Attempt2(parallel.Try2[any, string, int]{
			Task1:      constTask("a"),
			Task2:      constTask(42),
			OnProgress: onProgress,
			OnSuccess: func(s string, n int) any {
				return succeeded{values: []interface{}{s, n}}
			},
			OnFailure: onFailure,
		})
	}

	It("launches one effect per task", func() {
		_, cmd := newJoin()
		Expect(cmd).Should(HaveLen(2))
	})

	It("aggregates in launch order even when completions arrive reversed", func() {
		state, cmd := newJoin()
		msgs := perform(cmd)

		// Task2 completes first.
		state, out := state.Update(msgs[1])
		Expect(out).Should(BeEmpty())

		state, out = state.Update(msgs[0])
		Expect(emitted(out)).Should(Equal([]any{
			succeeded{values: []interface{}{"a", 42}},
		}))
	})

	It("emits the success at most once", func() {
		state, cmd := newJoin()
		msgs := perform(cmd)

		state, _ = state.Update(msgs[0])
		state, _ = state.Update(msgs[1])

		// Redelivering every notification to the terminal state emits nothing
		// and leaves the state unchanged in behavior.
		for _, msg := range msgs {
			var out parallel.Cmd[any]
			state, out = state.Update(msg)
			Expect(out).Should(BeEmpty())
		}
	})

	It("rejects invalid configs at dispatch", func() {
		Expect(func() {
			parallel.Attempt2(parallel.Try2[any, string, int]{
				Task1:      constTask("a"),
				OnProgress: onProgress,
				OnSuccess:  func(string, int) any { return nil },
				OnFailure:  onFailure,
			})
		}).Should(Panic())

		Expect(func() {
			parallel.Attempt2(parallel.Try2[any, string, int]{
				Task1: constTask("a"),
				Task2: constTask(42),
			})
		}).Should(Panic())
	})
})

var _ = Describe("Attempt3: order independence and failure short-circuit", func() {
	It("produces the same launch-order aggregate for every completion order", func() {
		for _, perm := range permutations(3) {
			state, cmd := parallel.Attempt3(parallel.Try3[any, string, int, bool]{
				Task1:      constTask("a"),
				Task2:      constTask(42),
				Task3:      constTask(true),
				OnProgress: onProgress,
				OnSuccess: func(s string, n int, b bool) any {
					return succeeded{values: []interface{}{s, n, b}}
				},
				OnFailure: onFailure,
			})
			msgs := perform(cmd)

			var outs []any
			for _, i := range perm {
				var out parallel.Cmd[any]
				state, out = state.Update(msgs[i])
				outs = append(outs, emitted(out)...)
			}

			Expect(outs).Should(Equal([]any{
				succeeded{values: []interface{}{"a", 42, true}},
			}), "completion order %v", perm)
		}
	})

	It("surfaces only the first failure and ignores later outcomes", func() {
		networkErr := errors.New("network error")

		state, cmd := parallel.Attempt3(parallel.Try3[any, string, int, bool]{
			Task1:      constTask("a"),
			Task2:      failTask[int](networkErr),
			Task3:      constTask(true),
			OnProgress: onProgress,
			OnSuccess: func(s string, n int, b bool) any {
				return succeeded{values: []interface{}{s, n, b}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)

		state, out := state.Update(msgs[1])
		Expect(emitted(out)).Should(Equal([]any{failed{err: networkErr}}))

		// The remaining tasks report their outcomes afterwards; the frozen
		// join absorbs them without further emissions.
		state, out = state.Update(msgs[0])
		Expect(out).Should(BeEmpty())
		_, out = state.Update(msgs[2])
		Expect(out).Should(BeEmpty())
	})

	It("keeps the frozen state a no-op under repeated delivery", func() {
		bang := errors.New("bang")

		state, cmd := parallel.Attempt3(parallel.Try3[any, string, int, bool]{
			Task1:      constTask("a"),
			Task2:      failTask[int](bang),
			Task3:      constTask(true),
			OnProgress: onProgress,
			OnSuccess: func(s string, n int, b bool) any {
				return succeeded{values: []interface{}{s, n, b}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)

		state, _ = state.Update(msgs[1])

		for round := 0; round < 3; round++ {
			for _, msg := range msgs {
				var out parallel.Cmd[any]
				state, out = state.Update(msg)
				Expect(out).Should(BeEmpty())
			}
		}
	})
})

var _ = Describe("Attempt4 through Attempt8: remaining fixed arities", func() {
	// Every slot succeeds with its own distinct value and completions are
	// delivered in reverse, so a value packed into the wrong position shows
	// up in the aggregate.

	It("packs four values in launch order", func() {
		state, cmd := parallel.Attempt4(parallel.Try4[any, int, int, int, int]{
			Task1:      constTask(1),
			Task2:      constTask(2),
			Task3:      constTask(3),
			Task4:      constTask(4),
			OnProgress: onProgress,
			OnSuccess: func(v1, v2, v3, v4 int) any {
				return succeeded{values: []interface{}{v1, v2, v3, v4}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)

		var outs []any
		for i := len(msgs) - 1; i >= 0; i-- {
			var out parallel.Cmd[any]
			state, out = state.Update(msgs[i])
			outs = append(outs, emitted(out)...)
		}

		Expect(outs).Should(Equal([]any{
			succeeded{values: []interface{}{1, 2, 3, 4}},
		}))
	})

	It("packs five values in launch order", func() {
		state, cmd := parallel.Attempt5(parallel.Try5[any, int, int, int, int, int]{
			Task1:      constTask(1),
			Task2:      constTask(2),
			Task3:      constTask(3),
			Task4:      constTask(4),
			Task5:      constTask(5),
			OnProgress: onProgress,
			OnSuccess: func(v1, v2, v3, v4, v5 int) any {
				return succeeded{values: []interface{}{v1, v2, v3, v4, v5}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)

		var outs []any
		for i := len(msgs) - 1; i >= 0; i-- {
			var out parallel.Cmd[any]
			state, out = state.Update(msgs[i])
			outs = append(outs, emitted(out)...)
		}

		Expect(outs).Should(Equal([]any{
			succeeded{values: []interface{}{1, 2, 3, 4, 5}},
		}))
	})

	It("packs six values in launch order", func() {
		state, cmd := parallel.Attempt6(parallel.Try6[any, int, int, int, int, int, int]{
			Task1:      constTask(1),
			Task2:      constTask(2),
			Task3:      constTask(3),
			Task4:      constTask(4),
			Task5:      constTask(5),
			Task6:      constTask(6),
			OnProgress: onProgress,
			OnSuccess: func(v1, v2, v3, v4, v5, v6 int) any {
				return succeeded{values: []interface{}{v1, v2, v3, v4, v5, v6}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)

		var outs []any
		for i := len(msgs) - 1; i >= 0; i-- {
			var out parallel.Cmd[any]
			state, out = state.Update(msgs[i])
			outs = append(outs, emitted(out)...)
		}

		Expect(outs).Should(Equal([]any{
			succeeded{values: []interface{}{1, 2, 3, 4, 5, 6}},
		}))
	})

	It("packs seven values in launch order", func() {
		state, cmd := parallel.Attempt7(parallel.Try7[any, int, int, int, int, int, int, int]{
			Task1:      constTask(1),
			Task2:      constTask(2),
			Task3:      constTask(3),
			Task4:      constTask(4),
			Task5:      constTask(5),
			Task6:      constTask(6),
			Task7:      constTask(7),
			OnProgress: onProgress,
			OnSuccess: func(v1, v2, v3, v4, v5, v6, v7 int) any {
				return succeeded{values: []interface{}{v1, v2, v3, v4, v5, v6, v7}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)

		var outs []any
		for i := len(msgs) - 1; i >= 0; i-- {
			var out parallel.Cmd[any]
			state, out = state.Update(msgs[i])
			outs = append(outs, emitted(out)...)
		}

		Expect(outs).Should(Equal([]any{
			succeeded{values: []interface{}{1, 2, 3, 4, 5, 6, 7}},
		}))
	})

	It("packs eight values in launch order", func() {
		state, cmd := parallel.Attempt8(parallel.Try8[any, int, int, int, int, int, int, int, int]{
			Task1:      constTask(1),
			Task2:      constTask(2),
			Task3:      constTask(3),
			Task4:      constTask(4),
			Task5:      constTask(5),
			Task6:      constTask(6),
			Task7:      constTask(7),
			Task8:      constTask(8),
			OnProgress: onProgress,
			OnSuccess: func(v1, v2, v3, v4, v5, v6, v7, v8 int) any {
				return succeeded{values: []interface{}{v1, v2, v3, v4, v5, v6, v7, v8}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)

		var outs []any
		for i := len(msgs) - 1; i >= 0; i-- {
			var out parallel.Cmd[any]
			state, out = state.Update(msgs[i])
			outs = append(outs, emitted(out)...)
		}

		Expect(outs).Should(Equal([]any{
			succeeded{values: []interface{}{1, 2, 3, 4, 5, 6, 7, 8}},
		}))
	})
})

var _ = Describe("Attempt9: the widest fixed arity", func() {
	It("packs nine values in launch order from reversed completions", func() {
		state, cmd := parallel.Attempt9(parallel.Try9[any, int, int, int, int, int, int, int, int, int]{
			Task1:      constTask(1),
			Task2:      constTask(2),
			Task3:      constTask(3),
			Task4:      constTask(4),
			Task5:      constTask(5),
			Task6:      constTask(6),
			Task7:      constTask(7),
			Task8:      constTask(8),
			Task9:      constTask(9),
			OnProgress: onProgress,
			OnSuccess: func(v1, v2, v3, v4, v5, v6, v7, v8, v9 int) any {
				return succeeded{values: []interface{}{v1, v2, v3, v4, v5, v6, v7, v8, v9}}
			},
			OnFailure: onFailure,
		})
		msgs := perform(cmd)
		Expect(msgs).Should(HaveLen(9))

		var outs []any
		for i := len(msgs) - 1; i >= 0; i-- {
			var out parallel.Cmd[any]
			state, out = state.Update(msgs[i])
			outs = append(outs, emitted(out)...)
		}

		Expect(outs).Should(Equal([]any{
			succeeded{values: []interface{}{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		}))
	})
})
