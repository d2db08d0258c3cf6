// Package runner tracks the lifecycle of something that can only be started and stopped once, such as the http server.
package runner

import (
	"errors"
	"sync"
)

// state is the stage of the lifecycle.
type state int

const (
	idle state = iota
	running
	stopped
)

var (
	// ErrAlreadyRunning is returned when starting a runner that is running.
	ErrAlreadyRunning = errors.New("already running")
	// ErrStopped is returned when starting a runner that has been stopped.
	ErrStopped = errors.New("already stopped, it can only be run once")
	// ErrNotRunning is returned when stopping a runner that was never started.
	ErrNotRunning = errors.New("not running")
)

// Runner is a thread-safe lifecycle that can be run, stopped, and queried.
// The zero value is ready to run.
type Runner struct {
	mu    sync.Mutex
	state state
}

// Run marks the runner as running.  An error is returned if it has already been run.
func (r *Runner) Run() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case running:
		return ErrAlreadyRunning
	case stopped:
		return ErrStopped
	}
	r.state = running
	return nil
}

// Stop marks the runner as done, so it can not be run again.
// An error is returned if it was not running, but it is still stopped.
func (r *Runner) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	wasRunning := r.state == running
	r.state = stopped
	if !wasRunning {
		return ErrNotRunning
	}
	return nil
}

// IsRunning determines if the runner is running.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == running
}
