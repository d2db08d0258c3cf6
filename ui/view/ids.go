// Package view binds the elements of the panel page to the controller.
// The element ids are shared with the host, which renders the page.
package view

import (
	"strconv"

	"github.com/jacobpatterson1549/scoreboard-panel/game"
)

const (
	// StartID is the id of the button that starts a game.
	StartID = "game-start-btn"
	// StopID is the id of the button that stops the game.
	StopID = "game-stop-btn"
	// PauseID is the id of the button that pauses and unpauses the game.
	PauseID = "game-pause-btn"
	// StatusID is the id of the element that shows the response of starting a game.
	StatusID = "game-status"
	// DisabledClass marks controls that cannot be used.
	DisabledClass = "disabled"
	// ServingClass highlights the name of the serving player.
	ServingClass = "btn-danger"
)

// NameID is the id of the player's name button.
func NameID(player game.Slot) string {
	return "pline-" + player.String()
}

// DropID is the id of the player's change player dropdown.
func DropID(player game.Slot) string {
	return NameID(player) + "-drop"
}

// ScoreID is the id of the element that shows the player's score.
func ScoreID(player game.Slot) string {
	return "pscore-" + player.String()
}

// EventID is the id of the player's referee scoring event button at the index.
func EventID(player game.Slot, index int) string {
	return "p" + player.String() + "Evt" + strconv.Itoa(index)
}

// ScoreDropdownID is the id of the button that opens the player's score dropdown.
func ScoreDropdownID(player game.Slot) string {
	return "scoreDropdownBtn" + player.String()
}

// IDs lists the id of every element of the page the panel uses.
func IDs() []string {
	ids := []string{StartID, StopID, PauseID, StatusID}
	for _, s := range game.Slots() {
		ids = append(ids, NameID(s), DropID(s), ScoreID(s), ScoreDropdownID(s))
		for i := 0; i < game.NumEventButtons; i++ {
			ids = append(ids, EventID(s, i))
		}
	}
	return ids
}
