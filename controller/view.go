package controller

import "github.com/jacobpatterson1549/scoreboard-panel/game"

type (
	// Control is a button that can be disabled to gate an action.
	Control interface {
		// Disabled determines if the control is disabled.
		Disabled() bool
		// SetDisabled disables or enables the control.
		SetDisabled(disabled bool)
	}

	// Text displays a value.
	Text interface {
		// SetText replaces the displayed text.
		SetText(text string)
	}

	// NameButton shows a player's name and whether the player is serving.
	// Clicking it sets the turn to the player.
	NameButton interface {
		Text
		// SetHighlighted marks or unmarks the player as serving.
		SetHighlighted(highlighted bool)
	}

	// View contains the elements of the page that the panel reads and updates.
	View struct {
		// Start begins a game.
		Start Control
		// Stop ends a game.
		Stop Control
		// Pause pauses or unpauses a game.
		Pause Control
		// Status shows the response of starting a game.
		Status Text
		// Players are the elements for each slot.
		Players [game.NumSlots]PlayerView
	}

	// PlayerView contains the elements for a single player slot.
	PlayerView struct {
		// Name is the player's name button.
		Name NameButton
		// Drop opens the menu to change the player in the slot.
		Drop Control
		// Score is the player's displayed score.
		Score Text
		// Events are the referee scoring event buttons.
		Events [game.NumEventButtons]Control
		// ScoreDropdown opens the menu of the referee scoring event buttons.
		ScoreDropdown Control
	}
)

// setControlsDisabled toggles the referee controls for the player.
func (pv PlayerView) setControlsDisabled(disabled bool) {
	for _, e := range pv.Events {
		e.SetDisabled(disabled)
	}
	pv.ScoreDropdown.SetDisabled(disabled)
}
