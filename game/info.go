package game

type (
	// Info is a snapshot of the game on the scoreboard.
	Info struct {
		// Status is the state of the game.
		Status Status
		// Scores are the current points of players in a running game.
		Scores map[Slot]int
		// Serving is the player whose turn it is, or NoSlot.
		Serving Slot
		// GameID is the scoreboard's identifier of the current game series.
		GameID string
		// UserID is the identifier assigned to the game by the organizers, if any.
		UserID string
	}

	// Player is a registered player's display information.
	Player struct {
		// WebText is the name shown on the panel.
		WebText string
		// PanelText is the short name shown on the physical scoreboard.
		PanelText string
		// RemoteID identifies the player's paired remote, if Paired.
		RemoteID int
		// Paired is true when the player has a remote.
		Paired bool
	}

	// Players are the registered players by slot.
	Players map[Slot]Player
)

// IsServing determines if the player in the slot is serving.
func (i Info) IsServing(s Slot) bool {
	return i.Serving != NoSlot && i.Serving == s
}
