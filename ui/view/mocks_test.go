//go:build js && wasm

package view

import "syscall/js"

type mockDOM struct {
	ElementByIDFunc func(id string) js.Value
	HasClassFunc    func(element js.Value, class string) bool
	SetClassFunc    func(element js.Value, class string, present bool)
	SetTextFunc     func(element js.Value, text string)
}

func (m mockDOM) ElementByID(id string) js.Value {
	return m.ElementByIDFunc(id)
}

func (m mockDOM) HasClass(element js.Value, class string) bool {
	return m.HasClassFunc(element, class)
}

func (m mockDOM) SetClass(element js.Value, class string, present bool) {
	m.SetClassFunc(element, class, present)
}

func (m mockDOM) SetText(element js.Value, text string) {
	m.SetTextFunc(element, text)
}

type mockLog struct {
	warnings []string
}

func (m *mockLog) Warning(text string) {
	m.warnings = append(m.warnings, text)
}

// classDOM stores the classes and text of elements, which are js strings of their ids.
type classDOM struct {
	classes map[string]map[string]bool
	texts   map[string]string
	missing map[string]bool
}

func newClassDOM(missingIDs ...string) *classDOM {
	d := classDOM{
		classes: make(map[string]map[string]bool),
		texts:   make(map[string]string),
		missing: make(map[string]bool),
	}
	for _, id := range missingIDs {
		d.missing[id] = true
	}
	return &d
}

func (d *classDOM) mock() mockDOM {
	return mockDOM{
		ElementByIDFunc: func(id string) js.Value {
			if d.missing[id] {
				return js.Null()
			}
			return js.ValueOf(id)
		},
		HasClassFunc: func(element js.Value, class string) bool {
			return d.classes[element.String()][class]
		},
		SetClassFunc: func(element js.Value, class string, present bool) {
			id := element.String()
			if d.classes[id] == nil {
				d.classes[id] = make(map[string]bool)
			}
			d.classes[id][class] = present
		},
		SetTextFunc: func(element js.Value, text string) {
			d.texts[element.String()] = text
		},
	}
}
