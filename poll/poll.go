// Package poll runs a function periodically until it is stopped.
package poll

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type (
	// Poller calls a function immediately when started and then once every period.
	// It is safe to start and stop from multiple goroutines.
	Poller struct {
		fn     func(ctx context.Context)
		mu     sync.Mutex
		ticker clockwork.Ticker
		stop   chan struct{}
		Config
	}

	// Config contains the options for a Poller.
	Config struct {
		// Period is the time between polls.
		Period time.Duration
		// Clock supplies the ticker.  The real clock is used if it is nil.
		Clock clockwork.Clock
	}
)

// New creates a Poller that calls the function.
func (cfg Config) New(fn func(ctx context.Context)) (*Poller, error) {
	if err := cfg.validate(fn); err != nil {
		return nil, errors.New("creating poller: validation: " + err.Error())
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	p := Poller{
		fn:     fn,
		Config: cfg,
	}
	return &p, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(fn func(ctx context.Context)) error {
	switch {
	case fn == nil:
		return errors.New("poll function required")
	case cfg.Period <= 0:
		return errors.New("positive period required")
	}
	return nil
}

// Start polls once and then keeps polling on every tick of the period.
// Each poll is run on its own goroutine with the context, so a slow poll does not delay the next one.
// Start returns false without doing anything if the poller is already running.
func (p *Poller) Start(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return false
	}
	p.ticker = p.Clock.NewTicker(p.Period)
	p.stop = make(chan struct{})
	go p.fn(ctx)
	go p.run(ctx, p.ticker, p.stop)
	return true
}

// Stop ends polling.  Polls that have already started are not cancelled.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopRun(p.stop)
}

// stopRun stops the ticker and closes the stop channel if the run for the stop channel is the current run.
// The mutex must be locked when this is called.
func (p *Poller) stopRun(stop chan struct{}) {
	if p.stop == nil || p.stop != stop {
		return
	}
	p.ticker.Stop()
	close(p.stop)
	p.ticker = nil
	p.stop = nil
}

// Running determines if the poller has been started and not stopped.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// run polls on each tick until it is stopped or the context is done.
func (p *Poller) run(ctx context.Context, ticker clockwork.Ticker, stop chan struct{}) {
	for { // BLOCKING
		select {
		case <-ctx.Done():
			p.mu.Lock()
			p.stopRun(stop)
			p.mu.Unlock()
			return
		case <-stop:
			return
		case <-ticker.Chan():
			go p.fn(ctx)
		}
	}
}
