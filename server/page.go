package server

import (
	"github.com/jacobpatterson1549/scoreboard-panel/game"
	"github.com/jacobpatterson1549/scoreboard-panel/server/layout"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/view"
)

type (
	// pageData is rendered into the index template.
	pageData struct {
		Title    string
		Version  string
		StartID  string
		StopID   string
		PauseID  string
		StatusID string
		Players  []playerData
	}

	// playerData contains the ids and labels of the elements of a slot.
	playerData struct {
		Slot            game.Slot
		Name            string
		NameID          string
		DropID          string
		ScoreID         string
		ScoreDropdownID string
		Buttons         []eventButton
		ExtraEvents     []game.Event
	}

	// eventButton records the event for a player.
	eventButton struct {
		ID    string
		Event game.Event
		Label string
	}
)

// newPageData creates the data for the page from the layout.
func newPageData(l layout.Layout, version string) pageData {
	d := pageData{
		Title:    l.Title,
		Version:  version,
		StartID:  view.StartID,
		StopID:   view.StopID,
		PauseID:  view.PauseID,
		StatusID: view.StatusID,
	}
	extraEvents := l.ExtraEvents()
	for _, s := range game.Slots() {
		p := playerData{
			Slot:            s,
			Name:            l.PlayerName(s),
			NameID:          view.NameID(s),
			DropID:          view.DropID(s),
			ScoreID:         view.ScoreID(s),
			ScoreDropdownID: view.ScoreDropdownID(s),
			ExtraEvents:     extraEvents,
		}
		for i, b := range l.Buttons {
			e := eventButton{
				ID:    view.EventID(s, i),
				Event: b.Event,
				Label: b.Label,
			}
			p.Buttons = append(p.Buttons, e)
		}
		d.Players = append(d.Players, p)
	}
	return d
}
