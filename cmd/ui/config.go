//go:build js && wasm

package main

import (
	"context"
	"sync"
	"time"

	"github.com/jacobpatterson1549/scoreboard-panel/controller"
	"github.com/jacobpatterson1549/scoreboard-panel/poll"
	"github.com/jacobpatterson1549/scoreboard-panel/ui"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/api"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/http"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/log"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/panel"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/view"
)

type (
	// flags contains options for the the ui.
	flags struct {
		dom           *ui.DOM
		httpTimeout   time.Duration
		refreshPeriod time.Duration
		// baseURL is the address of the scoreboard, empty when the host of the page forwards requests to it.
		baseURL string
	}

	// domInitializer adds functions to the the dom
	domInitializer interface {
		InitDom(ctx context.Context, wg *sync.WaitGroup)
	}
)

// initDom creates, initializes, and links up dom components.
// The returned panel has not started refreshing.
func (f *flags) initDom(ctx context.Context, wg *sync.WaitGroup) (*controller.Panel, error) {
	log, p, err := f.createPanel(ctx)
	if err != nil {
		return nil, err
	}
	component := panel.New(f.dom, log, p)
	domInitializers := []domInitializer{log, component}
	for _, di := range domInitializers {
		di.InitDom(ctx, wg)
	}
	return p, nil
}

// createPanel creates the log and the panel with its dependencies.
func (f *flags) createPanel(ctx context.Context) (*log.Log, *controller.Panel, error) {
	timeFunc := func() int64 {
		return time.Now().Unix()
	}
	log := log.New(f.dom, timeFunc)
	httpClient := http.New(f.dom, f.httpTimeout)
	apiClient := api.New(f.dom, httpClient, f.baseURL)
	params := controller.Parameters{
		Log:          log,
		API:          apiClient,
		View:         view.Bind(f.dom, log),
		Page:         f.dom,
		NewScheduler: f.newScheduler,
	}
	p, err := params.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	return log, p, nil
}

// newScheduler creates a poller that runs the function every refresh period.
func (f *flags) newScheduler(fn func(ctx context.Context)) (controller.Scheduler, error) {
	cfg := poll.Config{
		Period: f.refreshPeriod,
	}
	p, err := cfg.New(fn)
	if err != nil {
		return nil, err
	}
	return p, nil
}
