// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/settings"
)

// Status is the status of a call made through [Ready].
type Status int32

const (
	// Pending means the simulation is not ready yet: the call is
	// queued and runs when it is.
	Pending Status = iota

	// Failed means the simulation could not be made.
	Failed

	// Done means the call has run.
	Done
)

func (st Status) String() string {
	switch st {
	case Pending:
		return "Pending"
	case Failed:
		return "Failed"
	case Done:
		return "Done"
	}
	return fmt.Sprintf("Status(%d)", int32(st))
}

// Result is the result of a call made through [Ready].
type Result[T any] struct {

	// Status is the status of the call.
	Status Status

	// Value is the value returned by a Done call.
	Value T

	// Err is the reason a Failed call could not run.
	Err error
}

// InitFunc makes a new simulation, which can take a while.
type InitFunc func(ctx context.Context) (*Sim, error)

// DefaultInit returns an [InitFunc] making a simulation with settings
// from the given file, or the default settings if it is "".
func DefaultInit(settingsFile string) InitFunc {
	return func(ctx context.Context) (*Sim, error) {
		if settingsFile == "" {
			return New(nil), nil
		}
		st, err := settings.Open(settingsFile)
		if st == nil {
			return nil, err
		}
		if err != nil {
			slog.Warn("sim: fixed invalid settings", "file", settingsFile, "err", err)
		}
		return New(st), ctx.Err()
	}
}

// Ready makes a simulation on another goroutine and runs calls on it
// once it exists, in the order they were made. Calls made before then
// are queued. The results of making the simulation are only applied by
// [Ready.Poll] or [Ready.Wait] on the host goroutine, so queued calls
// always run before any later direct call.
type Ready struct {

	// Init makes the simulation; it is started by the first call
	// if [Ready.Start] has not been called.
	Init InitFunc

	mu      sync.Mutex
	status  Status
	sim     *Sim
	err     error
	started bool
	done    chan struct{}

	// finished holds the results of Init until they are applied.
	finished bool
	newSim   *Sim
	newErr   error

	queue []func(sm *Sim, err error)
}

// NewReady returns a new [Ready] using the given init function.
func NewReady(init InitFunc) *Ready {
	return &Ready{Init: init, done: make(chan struct{})}
}

// Start starts making the simulation, if it has not been started.
func (r *Ready) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startLocked(ctx)
}

func (r *Ready) startLocked(ctx context.Context) {
	if r.started {
		return
	}
	r.started = true
	if r.done == nil {
		r.done = make(chan struct{})
	}
	init := r.Init
	go func() {
		var sm *Sim
		var err error
		if init == nil {
			err = errors.New("sim.Ready: no init function")
		} else {
			sm, err = init(ctx)
			if err == nil && sm == nil {
				err = errors.New("sim.Ready: init returned no simulation")
			}
		}
		r.mu.Lock()
		r.finished = true
		r.newSim, r.newErr = sm, err
		r.mu.Unlock()
		close(r.done)
	}()
}

// Poll applies the results of making the simulation if it has finished,
// running any queued calls, and returns the resulting status.
// It must be called on the host goroutine.
func (r *Ready) Poll() Status {
	r.mu.Lock()
	if r.status != Pending || !r.finished {
		st := r.status
		r.mu.Unlock()
		return st
	}
	if r.newErr != nil {
		r.status = Failed
		r.err = fmt.Errorf("sim.Ready: init failed: %w", r.newErr)
		slog.Error(r.err.Error())
	} else {
		r.status = Done
		r.sim = r.newSim
	}
	queue := r.queue
	r.queue = nil
	sm, err, st := r.sim, r.err, r.status
	r.mu.Unlock()
	for _, fn := range queue {
		fn(sm, err)
	}
	return st
}

// Wait waits until the simulation is made or the context is done,
// and then applies the results with [Ready.Poll]. It returns the error
// of making the simulation, or of the context.
func (r *Ready) Wait(ctx context.Context) error {
	r.Start(ctx)
	select {
	case <-r.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if r.Poll() == Failed {
		return r.Err()
	}
	return nil
}

// Status returns the current status.
func (r *Ready) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Err returns the error of making the simulation, if it failed.
func (r *Ready) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Sim returns the simulation once it is ready, or nil.
func (r *Ready) Sim() *Sim {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim
}

// enqueue returns the current status and simulation, adding fn to the
// queue if it is Pending, and starting Init if needed.
func (r *Ready) enqueue(fn func(sm *Sim, err error)) (Status, *Sim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == Pending {
		r.startLocked(context.Background())
		r.queue = append(r.queue, fn)
	}
	return r.status, r.sim, r.err
}

// Run runs the given function on the simulation if it is ready,
// or queues it to run when it is.
func (r *Ready) Run(fn func(sm *Sim)) Result[struct{}] {
	st, sm, err := r.enqueue(func(sm *Sim, err error) {
		if err == nil {
			fn(sm)
		}
	})
	if st == Done {
		fn(sm)
	}
	return Result[struct{}]{Status: st, Err: err}
}

// Query returns the value of the given function on the simulation if it
// is ready. Otherwise it returns a Pending result and queues the function,
// calling then with its result when the simulation is made, or with a
// Failed result if it cannot be. then may be nil.
func Query[T any](r *Ready, fn func(sm *Sim) T, then func(Result[T])) Result[T] {
	st, sm, err := r.enqueue(func(sm *Sim, err error) {
		var res Result[T]
		if err != nil {
			res = Result[T]{Status: Failed, Err: err}
		} else {
			res = Result[T]{Status: Done, Value: fn(sm)}
		}
		if then != nil {
			then(res)
		}
	})
	res := Result[T]{Status: st, Err: err}
	if st == Done {
		res.Value = fn(sm)
	}
	return res
}
