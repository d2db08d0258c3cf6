package game

import (
	"errors"
	"strconv"
)

// Slot is the position of a player on the scoreboard.
type Slot int

const (
	// NumSlots is the number of player positions on the scoreboard.
	NumSlots = 4
	// NoSlot is used when no player is serving, such as when the game is paused.
	NoSlot Slot = -1
)

// Slots returns every valid slot in order.
func Slots() []Slot {
	slots := make([]Slot, NumSlots)
	for i := range slots {
		slots[i] = Slot(i)
	}
	return slots
}

// ParseSlot converts the text into a valid slot.
func ParseSlot(text string) (Slot, error) {
	i, err := strconv.Atoi(text)
	if err != nil {
		return NoSlot, errors.New("parsing slot: " + err.Error())
	}
	s := Slot(i)
	if err := s.Validate(); err != nil {
		return NoSlot, err
	}
	return s, nil
}

// Validate returns an error if the slot is not in [0, NumSlots).
func (s Slot) Validate() error {
	if s < 0 || s >= NumSlots {
		return errors.New("slot out of range: " + s.String())
	}
	return nil
}

// String returns the decimal slot number used in urls and element ids.
func (s Slot) String() string {
	return strconv.Itoa(int(s))
}
