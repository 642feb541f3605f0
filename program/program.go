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

// Package program runs an update function against a stream of messages, the
// host side of the contract expected by the parallel package: launch effects
// are executed on a concurrent.Runner, each produced message is delivered
// back into the update function one at a time, and the state is exclusively
// owned by the loop between updates.
//
// The loop is strictly serial. However many tasks run at once, updates never
// overlap, so update functions need no synchronization of their own.
package program

import (
	"context"
	"errors"
	"log"
	"runtime"

	"github.com/0ui/taskjoin/concurrent"
	"github.com/0ui/taskjoin/parallel"
)

// Config describes a program over state type S and message type M.
type Config[S, M any] struct {
	// (Required) Init produces the initial state and the startup command,
	// typically one of the parallel Attempt or Chain constructors.
	Init func() (S, parallel.Cmd[M])

	// (Required) Update folds one message into the state and returns the
	// successor state plus further effects to execute.
	Update func(state S, msg M) (S, parallel.Cmd[M])

	// (Optional) Done reports that the state is terminal. Run returns as
	// soon as it holds. When nil, Run returns once the program is quiescent:
	// no queued message and no launch effect in flight.
	Done func(state S) bool

	// (Optional) Runner executes the launch effects. When nil, a
	// concurrent.PoolRunner sized to GOMAXPROCS is created for the program
	// and shut down when Run returns.
	Runner concurrent.Runner
}

// Validate verifies config values.
func (config *Config[S, M]) Validate() error {
	if config.Init == nil || config.Update == nil {
		return errors.New("program: Init and Update must be non-nil")
	}
	return nil
}

// A Program drives one Config to completion. Create it with New and run it
// with Run; a Program is single-use.
type Program[S, M any] struct {
	config Config[S, M]

	runner concurrent.Runner

	// True when the runner was created by New and should be shut down by
	// Run on exit.
	ownsRunner bool

	in *inbox[M]
}

// New creates a Program from the given config.
func New[S, M any](config Config[S, M]) (*Program[S, M], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Program[S, M]{
		config: config,
		runner: config.Runner,
		in:     newInbox[M](),
	}

	if p.runner == nil {
		runner, err := concurrent.NewPoolRunner(concurrent.PoolConfig{
			MaxWorkers: uint32(runtime.GOMAXPROCS(-1)),
		})
		if err != nil {
			return nil, err
		}
		p.runner = runner
		p.ownsRunner = true
	}

	return p, nil
}

// Run executes Init's command and then loops: pop one message, call Update,
// execute the returned effects. It returns the final state when Done reports
// terminal, when the program quiesces, when ctx is cancelled (the returned
// error is then ctx.Err()), or after Stop.
//
// Tasks still in flight when Run returns are not cancelled; their messages
// are dropped with a warning once they complete.
func (p *Program[S, M]) Run(ctx context.Context) (S, error) {
	// Unpark the loop when the context is cancelled.
	watchdog := make(chan struct{})
	defer close(watchdog)
	go func() {
		select {
		case <-ctx.Done():
			p.in.Close()
		case <-watchdog:
		}
	}()

	if p.ownsRunner {
		// Let the in-flight jobs finish in the background; their messages are
		// dropped by the closed inbox.
		defer p.runner.Shutdown()
	}
	defer p.in.Close()

	state, cmd := p.config.Init()
	p.exec(cmd)

	for {
		if p.config.Done != nil && p.config.Done(state) {
			break
		}
		msg, ok := p.in.Next()
		if !ok {
			break
		}
		state, cmd = p.config.Update(state, msg)
		p.exec(cmd)
	}

	return state, ctx.Err()
}

// Stop makes Run return after the update in progress, if any. Safe to call
// from any goroutine, including from inside Update.
func (p *Program[S, M]) Stop() {
	p.in.Close()
}

// exec executes one command: immediate effects go straight into the inbox,
// launch effects are handed to the runner, which delivers the produced
// message when the task completes.
func (p *Program[S, M]) exec(cmd parallel.Cmd[M]) {
	for _, effect := range cmd {
		if msg, ok := effect.Immediate(); ok {
			p.deliver(msg)
			continue
		}

		effect := effect
		p.in.AddPending(1)
		err := p.runner.Submit(concurrent.JobFunc(func(ctx context.Context) {
			p.deliver(effect.Perform(ctx))
			p.in.Done()
		}))
		if err != nil {
			p.in.Done()
			log.Printf("[WARN] program: launch effect dropped: %v", err)
		}
	}
}

func (p *Program[S, M]) deliver(msg M) {
	if !p.in.Push(msg) {
		log.Printf("[WARN] program: message dropped after program stopped")
	}
}
