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

package concurrent

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newTestJob() *pooledJob {
	return &pooledJob{Job: JobFunc(func(context.Context) {})}
}

var _ = Describe("jobQueue", func() {
	It("pops jobs in push order", func() {
		queue := newJobQueue()

		jobs := []*pooledJob{newTestJob(), newTestJob(), newTestJob()}
		for _, job := range jobs {
			Expect(queue.Push(job)).Should(Succeed())
		}

		for _, job := range jobs {
			Expect(queue.Poll()).Should(BeIdenticalTo(job))
		}
		Expect(queue.Empty()).Should(BeTrue())
	})

	It("hands every job to exactly one consumer", func() {
		const (
			numJobs      = 1000
			numProducers = 4
			numConsumers = 4
		)

		queue := newJobQueue()

		jobs := make([]*pooledJob, numJobs)
		for i := range jobs {
			jobs[i] = newTestJob()
		}

		var wg sync.WaitGroup

		for i := 0; i < numProducers; i++ {
			wg.Add(1)
			go func(producerIndex int) {
				defer wg.Done()
				for jobIndex, job := range jobs {
					if jobIndex%numProducers == producerIndex {
						Expect(queue.Push(job)).Should(Succeed())
					}
				}
			}(i)
		}

		var (
			seenMutex sync.Mutex
			seen      = map[*pooledJob]bool{}
		)
		for i := 0; i < numConsumers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					job := queue.Poll()
					if job == nil {
						// Queue closed and drained.
						return
					}
					seenMutex.Lock()
					Expect(seen).ShouldNot(HaveKey(job))
					seen[job] = true
					if len(seen) == numJobs {
						// Unblock the other consumers parked in Poll.
						queue.Close()
					}
					seenMutex.Unlock()
				}
			}()
		}

		wg.Wait()
		Expect(seen).Should(HaveLen(numJobs))
	})

	It("removes a queued job from any position", func() {
		head, middle, tail := newTestJob(), newTestJob(), newTestJob()

		fill := func() *jobQueue {
			queue := newJobQueue()
			for _, job := range []*pooledJob{head, middle, tail} {
				Expect(queue.Push(job)).Should(Succeed())
			}
			return queue
		}

		queue := fill()
		Expect(queue.Remove(head)).Should(BeTrue())
		Expect(queue.Poll()).Should(BeIdenticalTo(middle))
		Expect(queue.Poll()).Should(BeIdenticalTo(tail))

		queue = fill()
		Expect(queue.Remove(middle)).Should(BeTrue())
		Expect(queue.Poll()).Should(BeIdenticalTo(head))
		Expect(queue.Poll()).Should(BeIdenticalTo(tail))

		queue = fill()
		Expect(queue.Remove(tail)).Should(BeTrue())
		Expect(queue.Poll()).Should(BeIdenticalTo(head))
		Expect(queue.Poll()).Should(BeIdenticalTo(middle))
		Expect(queue.Empty()).Should(BeTrue())
	})

	It("removes the only job and reports a job no longer queued", func() {
		queue := newJobQueue()

		job := newTestJob()
		Expect(queue.Push(job)).Should(Succeed())
		Expect(queue.Remove(job)).Should(BeTrue())
		Expect(queue.Empty()).Should(BeTrue())

		// Already taken.
		Expect(queue.Remove(job)).Should(BeFalse())
		Expect(queue.Remove(newTestJob())).Should(BeFalse())
	})

	It("refuses pushes after close but drains what remains", func() {
		queue := newJobQueue()

		job := newTestJob()
		Expect(queue.Push(job)).Should(Succeed())

		queue.Close()

		Expect(queue.Push(newTestJob())).Should(MatchError(ErrRunnerClosed))
		Expect(queue.Poll()).Should(BeIdenticalTo(job))
		Expect(queue.Poll()).Should(BeNil())
	})
})
