// Package game contains the state the scoreboard reports about games and players.
package game

// Status is the state of the game as reported by the scoreboard.
type Status string

const (
	// Stopped is the status of a scoreboard with no game in progress.
	// Players can be changed and a new game can be started when the scoreboard is stopped.
	Stopped Status = "stopped"
	// Started is the status of a game in progress with a serving player.
	Started Status = "started"
	// Paused is the status of a game in progress that has been paused.  Paused games have no serving player.
	Paused Status = "paused"
)

// Running determines if a game is in progress.
// Any status other than Stopped is treated as running, including statuses this panel does not know about.
func (s Status) Running() bool {
	return s != Stopped
}

// String returns the display value for the status.
func (s Status) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Started:
		return "In Progress"
	case Paused:
		return "Paused"
	case "":
		return "?"
	}
	return string(s)
}
