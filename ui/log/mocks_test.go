//go:build js && wasm

package log

import (
	"context"
	"sync"
	"syscall/js"
)

type mockDOM struct {
	ConsoleFunc       func(level, text string)
	ClearConsoleFunc  func()
	FormatTimeFunc    func(utcSeconds int64) string
	NewJsFuncFunc     func(fn func()) js.Func
	RegisterFuncsFunc func(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func)
}

func (m mockDOM) Console(level, text string) {
	m.ConsoleFunc(level, text)
}

func (m mockDOM) ClearConsole() {
	m.ClearConsoleFunc()
}

func (m mockDOM) FormatTime(utcSeconds int64) string {
	return m.FormatTimeFunc(utcSeconds)
}

func (m *mockDOM) NewJsFunc(fn func()) js.Func {
	return m.NewJsFuncFunc(fn)
}

func (m *mockDOM) RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func) {
	m.RegisterFuncsFunc(ctx, wg, parentName, jsFuncs)
}
