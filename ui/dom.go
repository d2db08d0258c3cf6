//go:build js && wasm

// Package ui contains the browser side of the scoreboard panel.
// It compiles to webassembly and binds the panel to the elements of the page.
package ui

import (
	"errors"
	"syscall/js"
	"time"
)

// DOM wraps the global object of the browser.
type DOM struct {
	global js.Value
}

// NewDOM creates a DOM for the global object, which is usually js.Global().
func NewDOM(global js.Value) *DOM {
	dom := DOM{
		global: global,
	}
	return &dom
}

// ElementByID returns the element with the id, or null if the document has no such element.
func (dom *DOM) ElementByID(id string) js.Value {
	document := dom.global.Get("document")
	return document.Call("getElementById", id)
}

// HasClass determines if the class is in the element's class list.
func (dom *DOM) HasClass(element js.Value, class string) bool {
	classList := element.Get("classList")
	contains := classList.Call("contains", class)
	return contains.Bool()
}

// SetClass adds the class to the element's class list if present is true, otherwise it removes the class.
func (dom *DOM) SetClass(element js.Value, class string, present bool) {
	classList := element.Get("classList")
	switch {
	case present:
		classList.Call("add", class)
	default:
		classList.Call("remove", class)
	}
}

// SetText replaces the content of the element with the text.
func (dom *DOM) SetText(element js.Value, text string) {
	element.Set("textContent", text)
}

// FormatTime formats a datetime to HH:MM:SS.
func (*DOM) FormatTime(utcSeconds int64) string {
	t := time.Unix(utcSeconds, 0).Local() // uses local timezone
	return t.Format("15:04:05")
}

// SetTimeout runs the function after the delay on the browser's event loop.
func (dom *DOM) SetTimeout(fn func(), delay time.Duration) {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer dom.AlertOnPanic()
		jsFunc.Release()
		fn()
		return nil
	})
	dom.global.Call("setTimeout", jsFunc, delay.Milliseconds())
}

// Defer runs the function after the current turn of the event loop.
func (dom *DOM) Defer(fn func()) {
	dom.SetTimeout(fn, 0)
}

// Reload reloads the document.
func (dom *DOM) Reload() {
	location := dom.global.Get("location")
	location.Call("reload")
}

// Console writes the text to the browser console at the level (info, warn, error).
func (dom *DOM) Console(level, text string) {
	console := dom.global.Get("console")
	console.Call(level, text)
}

// ClearConsole clears the browser console.
func (dom *DOM) ClearConsole() {
	console := dom.global.Get("console")
	console.Call("clear")
}

// NewXHR creates a new XML HTTP Request.
func (dom *DOM) NewXHR() js.Value {
	xhr := dom.global.Get("XMLHttpRequest")
	return xhr.New()
}

// ParseJSON converts the text to a javascript value using the browser's JSON parser.
func (dom *DOM) ParseJSON(text string) (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("parsing json: " + dom.recoverError(r).Error())
		}
	}()
	json := dom.global.Get("JSON")
	return json.Call("parse", text), nil
}

// ObjectKeys returns the names of the object's own enumerable properties.
func (dom *DOM) ObjectKeys(v js.Value) []string {
	object := dom.global.Get("Object")
	keys := object.Call("keys", v)
	names := make([]string, keys.Length())
	for i := range names {
		names[i] = keys.Index(i).String()
	}
	return names
}

// alert shows a popup in the browser.
func (dom *DOM) alert(message string) {
	dom.global.Call("alert", message)
}
