//go:build js && wasm

// Package log writes messages of the panel to the browser console.
package log

import (
	"context"
	"sync"
	"syscall/js"
)

type (
	// Log writes timestamped messages to the console.
	Log struct {
		dom Dom
		// TimeFunc is a function which should supply the current time since the unix epoch.
		// This is used for logging message timestamps
		TimeFunc func() int64
	}

	// Dom interacts with the page.
	Dom interface {
		Console(level, text string)
		ClearConsole()
		FormatTime(utcSeconds int64) string
		NewJsFunc(fn func()) js.Func
		RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func)
	}
)

// New creates a log.
func New(dom Dom, timeFunc func() int64) *Log {
	l := Log{
		dom:      dom,
		TimeFunc: timeFunc,
	}
	return &l
}

// InitDom registers log dom functions.
func (l *Log) InitDom(ctx context.Context, wg *sync.WaitGroup) {
	jsFuncs := map[string]js.Func{
		"clear": l.dom.NewJsFunc(l.Clear),
	}
	l.dom.RegisterFuncs(ctx, wg, "log", jsFuncs)
}

// Info logs an info-styled message.
func (l *Log) Info(text string) {
	l.add("info", text)
}

// Warning logs an warning-styled message.
func (l *Log) Warning(text string) {
	l.add("warn", text)
}

// Error logs an error-styled message.
func (l *Log) Error(text string) {
	l.add("error", text)
}

// Clear clears the log.
func (l *Log) Clear() {
	l.dom.ClearConsole()
}

// add writes a log item at the console level.
func (l *Log) add(level, text string) {
	time := l.dom.FormatTime(l.TimeFunc())
	l.dom.Console(level, time+" : "+text)
}
