//go:build js && wasm

// Package main binds the control panel to the page and runs as long as the webpage is open.
package main

import (
	"context"
	"sync"
	"syscall/js"
	"time"

	"github.com/jacobpatterson1549/scoreboard-panel/ui"
)

// main initializes the wasm code for the web dom and runs as long as the browser is open.
func main() {
	ctx := context.Background()
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	f := flags{
		dom:           ui.NewDOM(js.Global()),
		httpTimeout:   10 * time.Second,
		refreshPeriod: time.Second,
	}
	var wg sync.WaitGroup
	p, err := f.initDom(ctx, &wg)
	if err != nil {
		f.dom.Console("error", "initializing panel: "+err.Error())
		return
	}
	initBeforeUnloadFn(cancelFunc, &wg)
	p.StartRefreshing()
	wg.Wait() // BLOCKING
	p.Wait()
}

// initBeforeUnloadFn registers a function to cancel the context when the browser is about to close.
// This should trigger other dom functions to release and abort requests.
func initBeforeUnloadFn(cancelFunc context.CancelFunc, wg *sync.WaitGroup) {
	wg.Add(1)
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cancelFunc()
		fn.Release()
		wg.Done()
		return nil
	})
	global := js.Global()
	global.Call("addEventListener", "beforeunload", fn)
}
