//go:build js && wasm

package http

import (
	"syscall/js"
)

type mockDOM struct {
	NewXHRFunc         func() js.Value
	NewJsEventFuncFunc func(fn func(event js.Value)) js.Func
}

func (m *mockDOM) NewXHR() js.Value {
	return m.NewXHRFunc()
}

func (m *mockDOM) NewJsEventFunc(fn func(event js.Value)) js.Func {
	return m.NewJsEventFuncFunc(fn)
}

// mockXHR records the calls of the client to an XMLHttpRequest.
// Send dispatches the event type to the registered listener unless it is empty.
type mockXHR struct {
	eventType         string
	responseStatus    int
	responseBody      string
	onSend            func()
	gotOpenMethod     string
	gotOpenURL        string
	gotRequestHeaders map[string]string
	gotBody           string
	aborted           bool
	value             js.Value
	jsFuncs           []js.Func
}

func (m *mockXHR) dom() *mockDOM {
	m.gotRequestHeaders = make(map[string]string)
	return &mockDOM{
		NewXHRFunc: func() js.Value {
			eventListeners := make(map[string]js.Value, 4)
			dispatch := func(eventType string) {
				if handler, ok := eventListeners[eventType]; ok {
					event := js.ValueOf(map[string]interface{}{
						"type": eventType,
					})
					handler.Invoke(event)
				}
			}
			open := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				m.gotOpenMethod = args[0].String()
				m.gotOpenURL = args[1].String()
				return nil
			})
			setRequestHeader := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				k, v := args[0].String(), args[1].String()
				m.gotRequestHeaders[k] = v
				return nil
			})
			addEventListener := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				eventType, handler := args[0].String(), args[1]
				eventListeners[eventType] = handler
				return nil
			})
			send := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				m.gotBody = args[0].String()
				if m.onSend != nil {
					m.onSend()
				}
				if len(m.eventType) != 0 {
					dispatch(m.eventType)
				}
				return nil
			})
			abort := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				m.aborted = true
				dispatch("abort")
				return nil
			})
			m.jsFuncs = append(m.jsFuncs, open, setRequestHeader, addEventListener, send, abort)
			m.value = js.ValueOf(map[string]interface{}{
				"open":             open,
				"setRequestHeader": setRequestHeader,
				"addEventListener": addEventListener,
				"send":             send,
				"abort":            abort,
				"status":           m.responseStatus,
				"response":         m.responseBody,
			})
			return m.value
		},
		NewJsEventFuncFunc: func(fn func(event js.Value)) js.Func {
			f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				event := args[0]
				fn(event)
				return nil
			})
			m.jsFuncs = append(m.jsFuncs, f)
			return f
		},
	}
}

func (m *mockXHR) Release() {
	for _, f := range m.jsFuncs {
		f.Release()
	}
}
