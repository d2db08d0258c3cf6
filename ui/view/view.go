//go:build js && wasm

package view

import (
	"syscall/js"

	"github.com/jacobpatterson1549/scoreboard-panel/controller"
	"github.com/jacobpatterson1549/scoreboard-panel/game"
)

type (
	// Dom reads and changes elements of the page.
	Dom interface {
		ElementByID(id string) js.Value
		HasClass(element js.Value, class string) bool
		SetClass(element js.Value, class string, present bool)
		SetText(element js.Value, text string)
	}

	// Log is notified of elements missing from the page.
	Log interface {
		Warning(text string)
	}

	// element is a control, text, or name button on the page.
	element struct {
		dom   Dom
		value js.Value
	}

	// missingElement stands in for an element that is not on the page.
	// It is never disabled and ignores changes.
	missingElement struct{}
)

// Bind looks up every element of the panel once.
// Elements that are missing are logged and bound to elements that do nothing.
func Bind(dom Dom, log Log) controller.View {
	b := binder{
		dom: dom,
		log: log,
	}
	v := controller.View{
		Start:  b.element(StartID),
		Stop:   b.element(StopID),
		Pause:  b.element(PauseID),
		Status: b.element(StatusID),
	}
	for _, s := range game.Slots() {
		pv := &v.Players[s]
		pv.Name = b.element(NameID(s))
		pv.Drop = b.element(DropID(s))
		pv.Score = b.element(ScoreID(s))
		pv.ScoreDropdown = b.element(ScoreDropdownID(s))
		for i := range pv.Events {
			pv.Events[i] = b.element(EventID(s, i))
		}
	}
	return v
}

type binder struct {
	dom Dom
	log Log
}

// element binds the element with the id.
func (b binder) element(id string) interface {
	controller.Control
	controller.NameButton
} {
	value := b.dom.ElementByID(id)
	if value.IsNull() || value.IsUndefined() {
		b.log.Warning("missing element #" + id)
		return missingElement{}
	}
	e := element{
		dom:   b.dom,
		value: value,
	}
	return e
}

// Disabled determines if the element has the disabled class.
func (e element) Disabled() bool {
	return e.dom.HasClass(e.value, DisabledClass)
}

// SetDisabled adds or removes the disabled class.
func (e element) SetDisabled(disabled bool) {
	e.dom.SetClass(e.value, DisabledClass, disabled)
}

// SetText replaces the text of the element.
func (e element) SetText(text string) {
	e.dom.SetText(e.value, text)
}

// SetHighlighted adds or removes the serving class.
func (e element) SetHighlighted(highlighted bool) {
	e.dom.SetClass(e.value, ServingClass, highlighted)
}

func (missingElement) Disabled() bool {
	return false
}

func (missingElement) SetDisabled(disabled bool) {
	// NOOP
}

func (missingElement) SetText(text string) {
	// NOOP
}

func (missingElement) SetHighlighted(highlighted bool) {
	// NOOP
}
