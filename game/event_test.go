package game

import "testing"

func TestEventValidate(t *testing.T) {
	for i, e := range Events() {
		if err := e.Validate(); err != nil {
			t.Errorf("Test %v: unwanted error for known event %q: %v", i, e, err)
		}
	}
	for i, e := range []Event{"", "CHAINBALL", "touchdown"} {
		if err := e.Validate(); err == nil {
			t.Errorf("Test %v: wanted error for unknown event %q", i, e)
		}
	}
}

func TestEventsCoverButtons(t *testing.T) {
	if len(Events()) < NumEventButtons {
		t.Errorf("wanted at least %v events to fill the buttons, got %v", NumEventButtons, len(Events()))
	}
}
