package game

import "errors"

// Event is a referee scoring event that is recorded for a player.
type Event string

// NumEventButtons is the number of referee event buttons each player has on the panel.
const NumEventButtons = 8

const (
	// Chainball awards a point.
	Chainball Event = "chainball"
	// Jailbreak awards two points.
	Jailbreak Event = "jailbreak"
	// Ratmeat removes a point.
	Ratmeat Event = "ratmeat"
	// Mudskipper removes a point.
	Mudskipper Event = "mudskipper"
	// SailorMoon removes two points.
	SailorMoon Event = "sailormoon"
	// Fault removes a point on the second consecutive fault.
	Fault Event = "fault"
	// DoubleFault removes a point.
	DoubleFault Event = "doublefault"
	// Slowpoke removes a point.
	Slowpoke Event = "slowpoke"
	// Deadball passes the turn to the next player.
	Deadball Event = "deadball"
)

// Events returns all known events.
func Events() []Event {
	return []Event{
		Chainball,
		Jailbreak,
		Ratmeat,
		Mudskipper,
		SailorMoon,
		Fault,
		DoubleFault,
		Slowpoke,
		Deadball,
	}
}

// Validate returns an error if the event is not known to the scoreboard.
func (e Event) Validate() error {
	for _, e2 := range Events() {
		if e == e2 {
			return nil
		}
	}
	return errors.New("unknown scoring event: " + string(e))
}
