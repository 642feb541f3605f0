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

package concurrent_test

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/0ui/taskjoin/concurrent"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("PoolRunner", func() {
	It("cannot be created with an invalid pool size", func() {
		var err error

		_, err = concurrent.NewPoolRunner(concurrent.PoolConfig{})
		Expect(err.Error()).Should(ContainSubstring("MaxWorkers must be a non-zero value"))

		_, err = concurrent.NewPoolRunner(concurrent.PoolConfig{
			MaxWorkers: 50,
			MinWorkers: 100,
		})
		Expect(err.Error()).Should(ContainSubstring("MaxWorkers (50) should be greater than MinWorkers (100)"))
	})

	It("runs a submitted job", func() {
		runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
			MaxWorkers: uint32(runtime.GOMAXPROCS(-1)),
		})
		Expect(err).ShouldNot(HaveOccurred())

		done := make(chan string, 1)
		err = runner.Submit(concurrent.JobFunc(func(context.Context) {
			done <- "job result"
		}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(<-done).Should(Equal("job result"))

		Expect(<-runner.Shutdown()).Should(BeTrue())
	})

	It("executes every job submitted before shutdown", func() {
		runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
			MaxWorkers: 4,
		})
		Expect(err).ShouldNot(HaveOccurred())

		const numJobs = 100

		var executed int64
		var wg sync.WaitGroup
		for i := 0; i < numJobs; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				Expect(runner.Submit(concurrent.JobFunc(func(context.Context) {
					atomic.AddInt64(&executed, 1)
				}))).Should(Succeed())
			}()
		}
		wg.Wait()

		Expect(<-runner.Shutdown()).Should(BeTrue())
		Expect(atomic.LoadInt64(&executed)).Should(Equal(int64(numJobs)))
	})

	It("keeps MinWorkers spawning eagerly", func() {
		runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
			MinWorkers: 2,
			MaxWorkers: 4,
		})
		Expect(err).ShouldNot(HaveOccurred())

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			Expect(runner.Submit(concurrent.JobFunc(func(context.Context) {
				wg.Done()
			}))).Should(Succeed())
		}
		wg.Wait()

		Expect(<-runner.Shutdown()).Should(BeTrue())
	})

	It("rejects jobs after shutdown", func() {
		runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
			MaxWorkers: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(<-runner.Shutdown()).Should(BeTrue())

		err = runner.Submit(concurrent.JobFunc(func(context.Context) {}))
		Expect(err).Should(MatchError(concurrent.ErrRunnerClosed))
	})

	It("tolerates repeated shutdown", func() {
		runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
			MaxWorkers: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())

		first := runner.Shutdown()
		second := runner.Shutdown()
		Expect(<-first).Should(BeTrue())
		Expect(<-second).Should(BeTrue())
	})

	It("never strands a job accepted while shutting down", func() {
		// Submit and Shutdown race from a standing start. Whatever the
		// interleaving, an accepted submission must run before termination
		// and a rejected one must never run; the termination channel must
		// fire either way.
		for i := 0; i < 500; i++ {
			runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
				MaxWorkers: 1,
			})
			Expect(err).ShouldNot(HaveOccurred())

			var (
				ran       int64
				submitErr error
			)
			start := make(chan struct{})
			termination := make(chan bool, 1)

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				<-start
				submitErr = runner.Submit(concurrent.JobFunc(func(context.Context) {
					atomic.AddInt64(&ran, 1)
				}))
			}()
			go func() {
				defer wg.Done()
				<-start
				termination <- <-runner.Shutdown()
			}()

			close(start)
			wg.Wait()

			select {
			case <-termination:
			case <-time.After(2 * time.Second):
				Fail(fmt.Sprintf("shutdown never terminated (iteration %d, submit err=%v)", i, submitErr))
			}

			if submitErr == nil {
				Expect(atomic.LoadInt64(&ran)).Should(Equal(int64(1)), "iteration %d", i)
			} else {
				Expect(submitErr).Should(MatchError(concurrent.ErrRunnerClosed))
				Expect(atomic.LoadInt64(&ran)).Should(Equal(int64(0)), "iteration %d", i)
			}
		}
	})

	It("passes the configured base context to jobs", func() {
		type ctxKey struct{}

		ctx := context.WithValue(context.Background(), ctxKey{}, "taskjoin")
		runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
			MaxWorkers:  1,
			BaseContext: ctx,
		})
		Expect(err).ShouldNot(HaveOccurred())

		value := make(chan interface{}, 1)
		Expect(runner.Submit(concurrent.JobFunc(func(ctx context.Context) {
			value <- ctx.Value(ctxKey{})
		}))).Should(Succeed())
		Expect(<-value).Should(Equal("taskjoin"))

		Expect(<-runner.Shutdown()).Should(BeTrue())
	})
})
