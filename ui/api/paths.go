// Package api requests the status of the scoreboard and controls its games.
package api

import "github.com/jacobpatterson1549/scoreboard-panel/game"

const (
	beginPath          = "/control/gbegin"
	endPath            = "/control/gend"
	pauseUnpausePath   = "/control/pauseunpause"
	canStartPath       = "/status/can_start"
	gamePath           = "/status/game"
	playersPath        = "/status/players"
	setTurnPath        = "/debug/setturn/"
	scoreEventPath     = "/control/scoreevt/"
	updateRegistryPath = "/persist/update"
)

// Prefixes are the path prefixes of every request made to the scoreboard.
func Prefixes() []string {
	return []string{"/control/", "/status/", "/debug/", "/persist/"}
}

// SetTurnPath is the path that makes it the player's turn.
func SetTurnPath(player game.Slot) string {
	return setTurnPath + player.String()
}

// ScoreEventPath is the path that records the scoring event for the player.
func ScoreEventPath(player game.Slot, event game.Event) string {
	return scoreEventPath + player.String() + "," + string(event)
}
