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
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

//===----------------------------------------------------------------------------------------====//
// PoolConfig
//===----------------------------------------------------------------------------------------====//

// PoolConfig contains options to configure a PoolRunner.
type PoolConfig struct {
	// The maximum number of workers allowed in the pool (required, must be
	// greater than 0). This is also the effective concurrency bound for a
	// very large list join executed on the runner: tasks beyond MaxWorkers
	// wait in the queue.
	MaxWorkers uint32

	// The minimum number of workers to keep spawning eagerly on submission
	MinWorkers uint32

	// BaseContext, if set, is passed to every job's Run. Defaults to
	// context.Background().
	BaseContext context.Context
}

// Validate verifies config values.
func (config *PoolConfig) Validate() error {
	if config.MaxWorkers == 0 {
		return errors.New(`PoolRunner: MaxWorkers must be a non-zero value which bounds the number ` +
			`of workers created by the runner. If you have no idea, try to set the value to ` +
			`uint32(runtime.GOMAXPROCS(-1)).`)
	}

	if config.MaxWorkers < config.MinWorkers {
		return fmt.Errorf(`PoolRunner: MaxWorkers (%d) should be greater than MinWorkers (%d)`,
			config.MaxWorkers, config.MinWorkers)
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// poolRunnerState
//===----------------------------------------------------------------------------------------====//

// poolRunnerState is a lock-free state word combining the run state of the
// PoolRunner (high 32 bits) and the current worker count (low 32 bits). It
// is updated atomically with CAS.
type poolRunnerState int64

// poolRunState indicates the running state of a PoolRunner. The low 32 bits
// of a poolRunState must be 0.
type poolRunState int64

// Enumeration of poolRunState
const (
	poolRunStateMask int64 = -4294967296 // 0xffffffff00000000

	// Runner accepts and processes jobs. The constant is the only run state
	// that sets the sign bit, which makes a running state word negative and
	// enables the fast IsRunning check.
	poolRunStateRunning poolRunState = poolRunState(poolRunStateMask)

	// Shutdown was requested. Queued jobs are processed but no new jobs are
	// accepted.
	poolRunStateShutdown = 0 // 0x0 << 32

	// The queue is empty, all workers have exited and no new jobs are
	// accepted.
	poolRunStateTerminated = 4294967296 // 0x1 << 32
)

// RunState reads the run state from the state word.
func (s poolRunnerState) RunState() poolRunState {
	return poolRunState(int64(s) & poolRunStateMask)
}

// WorkerCount returns the number of workers currently in the pool.
func (s poolRunnerState) WorkerCount() uint32 {
	return uint32(s & 0xffffffff)
}

// Load loads the state word with atomic.LoadInt64 because it is a lock-free
// variable read concurrently with CAS updates.
func (s *poolRunnerState) Load() poolRunnerState {
	return poolRunnerState(atomic.LoadInt64((*int64)(s)))
}

// SetRunState advances the run state. States only ever transition from
// RUNNING to SHUTDOWN to TERMINATED; attempts to move backwards are ignored.
func (s *poolRunnerState) SetRunState(newRunState poolRunState) (oldState poolRunnerState) {
	for {
		oldState = s.Load()
		if int64(oldState) >= int64(newRunState) {
			return
		}

		newState := makePoolRunnerState(newRunState, oldState.WorkerCount())
		if atomic.CompareAndSwapInt64((*int64)(s), int64(oldState), int64(newState)) {
			return
		}
	}
}

// IsRunning returns true if the run state is poolRunStateRunning.
func (s poolRunnerState) IsRunning() bool {
	return s < 0
}

// IsShutdown returns true if the runner has received a shutdown request.
func (s poolRunnerState) IsShutdown() bool {
	return s >= poolRunStateShutdown
}

// IsTerminated returns true if the runner is terminated.
func (s poolRunnerState) IsTerminated() bool {
	return s >= poolRunStateTerminated
}

// CompareAndIncWorkerCount increments the worker count in the given state by
// 1 with CAS.
func (s *poolRunnerState) CompareAndIncWorkerCount(old poolRunnerState) (done bool) {
	return atomic.CompareAndSwapInt64((*int64)(s), int64(old), int64(old+1))
}

// DecWorkerCount decrements the worker count by 1 and returns the new state.
func (s *poolRunnerState) DecWorkerCount() poolRunnerState {
	return poolRunnerState(atomic.AddInt64((*int64)(s), int64(-1)))
}

// makePoolRunnerState creates a poolRunnerState from the given run state and
// worker count.
func makePoolRunnerState(runState poolRunState, workerCount uint32) poolRunnerState {
	return poolRunnerState(int64(runState) | int64(workerCount))
}

//===----------------------------------------------------------------------------------------====//
// pooledJob / jobQueue
//===----------------------------------------------------------------------------------------====//

// pooledJob wraps a submitted Job with the intrusive link used by jobQueue.
type pooledJob struct {
	Job

	// The next job in the jobQueue
	next *pooledJob
}

// jobQueue stores jobs waiting for a worker. It is a circular linked list
// which makes use of the intrusive link in pooledJob to avoid per-element
// allocation.
type jobQueue struct {
	// Tail of the linked list; tail.next is the head.
	//
	// The actual type is *pooledJob. "tail" is read in Empty without locking
	// and may race with Push and Poll writing a new tail, so it is accessed
	// with atomic.{Load,Store}Pointer via loadTail and storeTail.
	tail unsafe.Pointer // *pooledJob

	// Lock that guards tail updates and pollCond.
	mutex sync.Mutex

	// Condition variable for Poll to wait for Push; set to nil once the
	// queue is closed.
	pollCond *sync.Cond
}

func newJobQueue() *jobQueue {
	queue := &jobQueue{}
	queue.pollCond = sync.NewCond(&queue.mutex)
	return queue
}

func (queue *jobQueue) loadTail() *pooledJob {
	return (*pooledJob)(atomic.LoadPointer(&queue.tail))
}

func (queue *jobQueue) storeTail(tail *pooledJob) {
	atomic.StorePointer(&queue.tail, unsafe.Pointer(tail))
}

// Push appends a job at the end of the queue. Returns ErrRunnerClosed if the
// queue has been closed.
func (queue *jobQueue) Push(job *pooledJob) error {
	mutex := &queue.mutex
	mutex.Lock()

	cond := queue.pollCond
	if cond == nil {
		mutex.Unlock()
		return ErrRunnerClosed
	}

	tail := queue.loadTail()
	empty := queue.Empty()

	if empty {
		// job is also the head.
		job.next = job
	} else {
		// Link head to job.next and append job after tail.
		job.next = tail.next
		tail.next = job
	}
	queue.storeTail(job)

	if empty {
		cond.Signal()
	}

	mutex.Unlock()

	return nil
}

// Poll pops one job from the head of the queue, blocking until a job is
// pushed or the queue is closed. Returns nil once the queue is closed and
// drained.
func (queue *jobQueue) Poll() *pooledJob {
	mutex := &queue.mutex
	mutex.Lock()

	for queue.Empty() {
		// A waken waiter may find its job already taken by another consumer;
		// loop to park again rather than report an empty open queue.
		cond := queue.pollCond
		if cond == nil {
			mutex.Unlock()
			return nil
		}
		cond.Wait()
	}

	tail := queue.loadTail()
	head := tail.next

	if tail == head {
		// Becomes an empty queue.
		queue.storeTail(nil)
	} else {
		tail.next = head.next
	}

	// Help GC.
	head.next = nil

	mutex.Unlock()

	return head
}

// Remove unlinks job from the queue. Returns false when the job is no
// longer queued, which means a consumer already claimed it.
func (queue *jobQueue) Remove(job *pooledJob) bool {
	mutex := &queue.mutex
	mutex.Lock()
	defer mutex.Unlock()

	tail := queue.loadTail()
	if tail == nil {
		return false
	}

	prev := tail
	for {
		curr := prev.next
		if curr == job {
			if curr == prev {
				// job was the only element.
				queue.storeTail(nil)
			} else {
				prev.next = curr.next
				if curr == tail {
					queue.storeTail(prev)
				}
			}
			curr.next = nil
			return true
		}
		if curr == tail {
			return false
		}
		prev = curr
	}
}

// Close stops the queue from accepting new jobs and unblocks all waiters.
// Jobs already in the queue remain available via Poll.
func (queue *jobQueue) Close() {
	mutex := &queue.mutex
	mutex.Lock()
	cond := queue.pollCond
	if cond != nil {
		cond.Broadcast()
		queue.pollCond = nil
	}
	mutex.Unlock()
}

// Empty returns true if the queue contains no jobs.
func (queue *jobQueue) Empty() bool {
	return queue.loadTail() == nil
}

//===----------------------------------------------------------------------------------------====//
// poolWorker
//===----------------------------------------------------------------------------------------====//

type poolWorker struct {
	// Runner that pools this worker
	runner *PoolRunner
}

// Start creates a goroutine to execute the run loop.
func (w poolWorker) Start(firstJob *pooledJob) {
	go w.run(firstJob)
}

// run executes jobs from the queue until the runner shuts down and the queue
// drains.
func (w poolWorker) run(firstJob *pooledJob) {
	runner := w.runner
	ctx := runner.baseContext()
	job := firstJob

	for {
		if job == nil {
			job = runner.pollJob()
			if job == nil {
				// No further jobs will ever arrive; terminate the worker.
				break
			}
		}

		job.Run(ctx)

		job = nil
	}

	runner.terminateWorker()
}

//===----------------------------------------------------------------------------------------====//
// PoolRunner
//===----------------------------------------------------------------------------------------====//

// PoolRunner runs submitted jobs on a pool of goroutine-backed workers. The
// implementation is influenced by Doug Lea's PooledExecutor [0] which was
// released into the public domain [1].
//
// The pool does not preallocate worker goroutines. A worker is created when
// a job arrives and fewer than MinWorkers exist, or when the queue would
// otherwise have no worker to drain it, up to MaxWorkers. Idle workers park
// on the queue until more work or shutdown arrives.
//
// [0]: http://gee.cs.oswego.edu/dl/classes/EDU/oswego/cs/dl/util/concurrent/intro.html
// [1]: http://creativecommons.org/publicdomain/zero/1.0/
type PoolRunner struct {
	// A lock-free word that contains the run state and worker count
	state poolRunnerState

	// Configuration
	config *PoolConfig

	// Jobs waiting for a worker
	queue *jobQueue

	// Mutex guarding terminations
	mutex sync.Mutex

	// Channels waiting for termination; guarded by mutex.
	terminations []chan<- bool
}

// PoolRunner implements Runner.
var _ Runner = (*PoolRunner)(nil)

// NewPoolRunner creates a PoolRunner from the given config.
func NewPoolRunner(config PoolConfig) (*PoolRunner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &PoolRunner{
		state:  makePoolRunnerState(poolRunStateRunning, 0),
		config: &config,
		queue:  newJobQueue(),
	}, nil
}

func (runner *PoolRunner) baseContext() context.Context {
	if ctx := runner.config.BaseContext; ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadState loads the current state word.
func (runner *PoolRunner) loadState() poolRunnerState {
	return runner.state.Load()
}

// Submit implements Runner.
//
// While fewer than MinWorkers workers are running, a new worker is always
// created to process the job, even if others are idle. Otherwise the job is
// queued for an existing worker, and a worker is created only if the queue
// would have none to drain it.
func (runner *PoolRunner) Submit(job Job) error {
	pooled := &pooledJob{Job: job}

	config := runner.config
	state := runner.loadState()

	// Ensure the minimum number of workers.
	if state.WorkerCount() < config.MinWorkers {
		if err := runner.addWorker(pooled, config.MinWorkers); err == nil {
			return nil
		}
		// Ignore the error and reload state.
		state = runner.loadState()
	}

	if state.IsRunning() {
		return runner.addJob(pooled)
	}

	// Final try by directly requesting a worker to perform the job; fails
	// when the runner is shutting down.
	return runner.addWorker(pooled, config.MaxWorkers)
}

// Shutdown implements Runner.
func (runner *PoolRunner) Shutdown() <-chan bool {
	mutex := &runner.mutex

	// Hold the lock for the modification of runner.terminations. This also
	// avoids racing with the signals sent in tryTerminate.
	mutex.Lock()

	termination := make(chan bool, 1)

	// Transition to SHUTDOWN. After this, addWorker and addJob refuse any
	// request.
	prevState := runner.state.SetRunState(poolRunStateShutdown)

	if prevState.IsTerminated() {
		// Runner was already terminated.
		termination <- true
	} else {
		runner.terminations = append(runner.terminations, termination)

		if prevState.IsRunning() {
			// Close the queue. This also unblocks all workers parked on an empty
			// queue.
			runner.queue.Close()
		}
	}

	mutex.Unlock()

	// Try to advance to TERMINATED.
	runner.tryTerminate()

	return termination
}

// tryTerminate transitions to TERMINATED once the runner is shut down, the
// queue is empty and every worker has exited.
func (runner *PoolRunner) tryTerminate() {
	state := runner.loadState()

	if !state.IsShutdown() || state.IsTerminated() {
		return
	}

	if !runner.queue.Empty() {
		return
	}

	if state.WorkerCount() > 0 {
		return
	}

	// Lock mutex to send termination signals after the transition.
	mutex := &runner.mutex
	mutex.Lock()
	defer mutex.Unlock()

	if !state.IsTerminated() {
		runner.state.SetRunState(poolRunStateTerminated)

		terminations := runner.terminations
		runner.terminations = nil
		for _, termination := range terminations {
			termination <- true
		}
	}
}

var errPoolSaturated = errors.New("concurrent: worker pool is full")

// addWorker tries to create a worker to execute firstJob. limit bounds the
// pool size; an error is returned if adding the worker would exceed it, or
// if the runner is shutting down.
func (runner *PoolRunner) addWorker(firstJob *pooledJob, limit uint32) error {
	for {
		state := runner.loadState()
		if state.IsShutdown() {
			return ErrRunnerClosed
		}

		if (state.WorkerCount() + 1) > limit {
			return errPoolSaturated
		}

		if runner.state.CompareAndIncWorkerCount(state) {
			break
		}

		// CAS failed. Restart the loop to load the new state.
	}

	poolWorker{runner: runner}.Start(firstJob)

	return nil
}

// terminateWorker is called from the goroutine of a worker that has exited.
// Workers exit only on the shutdown path of pollJob, with the worker count
// already decremented there, so the only duty left is to advance the
// termination.
func (runner *PoolRunner) terminateWorker() {
	runner.tryTerminate()
}

// addJob puts the job in the queue and ensures there will be a worker to run
// it.
func (runner *PoolRunner) addJob(job *pooledJob) error {
	if err := runner.queue.Push(job); err != nil {
		return err
	}

	for {
		// During the enqueue someone may have shut the runner down or the pool
		// may have no worker at all (MinWorkers of zero).
		state := runner.loadState()

		if state.IsShutdown() {
			// Shutdown raced in after the state check in Submit. Take the job
			// back and reject the submission; when the take-back fails a
			// worker has already claimed the job, so it runs and the
			// submission stands.
			if runner.queue.Remove(job) {
				runner.tryTerminate()
				return ErrRunnerClosed
			}
			return nil
		}

		if state.WorkerCount() == 0 {
			if err := runner.addWorker(nil, 1); err != nil {
				// Retry.
				continue
			}
		}

		return nil
	}
}

// pollJob blocks the calling worker until a job is available. It returns nil
// once the runner has been shut down and the queue is drained; the worker
// count in the state word is decremented before returning nil.
func (runner *PoolRunner) pollJob() *pooledJob {
	queue := runner.queue

	for {
		state := runner.loadState()

		if state.IsShutdown() && queue.Empty() {
			runner.state.DecWorkerCount()
			return nil
		}

		if job := queue.Poll(); job != nil {
			return job
		}

		// Poll returned nil: the queue was closed and drained. Restart the
		// loop to exit through the shutdown path above.
	}
}
