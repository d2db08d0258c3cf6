// Package layout describes the buttons and labels of the panel page.
package layout

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jacobpatterson1549/scoreboard-panel/game"
	"gopkg.in/yaml.v3"
)

type (
	// Layout is the arrangement of the panel page.
	Layout struct {
		// Title is shown at the top of the page.
		Title string `yaml:"title"`
		// Players are the names shown for slots before the scoreboard reports registered players.
		Players []string `yaml:"players"`
		// Buttons are the referee scoring event buttons each player has, in order.
		Buttons []Button `yaml:"buttons"`
	}

	// Button records a scoring event.
	Button struct {
		Event game.Event `yaml:"event"`
		Label string     `yaml:"label"`
	}
)

// Default creates the standard layout, which has a button for every event except deadball.
func Default() Layout {
	return Layout{
		Title: "Chainball Scoreboard",
		Buttons: []Button{
			{Event: game.Chainball, Label: "Chainball"},
			{Event: game.Jailbreak, Label: "Jailbreak"},
			{Event: game.Ratmeat, Label: "Rat Meat"},
			{Event: game.Mudskipper, Label: "Mudskipper"},
			{Event: game.SailorMoon, Label: "Sailor Moon"},
			{Event: game.Fault, Label: "Fault"},
			{Event: game.DoubleFault, Label: "Double Fault"},
			{Event: game.Slowpoke, Label: "Slowpoke"},
		},
	}
}

// Parse reads the layout from the yaml.  Missing fields are filled from the default layout.
func Parse(r io.Reader) (*Layout, error) {
	var l Layout
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	def := Default()
	if len(l.Title) == 0 {
		l.Title = def.Title
	}
	if len(l.Buttons) == 0 {
		l.Buttons = def.Buttons
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validating layout: %w", err)
	}
	return &l, nil
}

// Validate ensures the layout has a button for every event button on the page.
func (l Layout) Validate() error {
	switch {
	case len(l.Buttons) != game.NumEventButtons:
		return fmt.Errorf("wanted %v buttons, got %v", game.NumEventButtons, len(l.Buttons))
	case len(l.Players) > game.NumSlots:
		return fmt.Errorf("wanted at most %v player names, got %v", game.NumSlots, len(l.Players))
	}
	for i, b := range l.Buttons {
		if err := b.Event.Validate(); err != nil {
			return fmt.Errorf("button %v: %w", i, err)
		}
		if len(b.Label) == 0 {
			return fmt.Errorf("button %v: label required", i)
		}
	}
	return nil
}

// PlayerName is the name shown for the slot until the scoreboard reports the registered player.
func (l Layout) PlayerName(s game.Slot) string {
	if int(s) < len(l.Players) && s >= 0 && len(l.Players[s]) != 0 {
		return l.Players[s]
	}
	return "Player " + strconv.Itoa(int(s)+1)
}

// ExtraEvents are the known events that have no button, in order.
func (l Layout) ExtraEvents() []game.Event {
	var extra []game.Event
	for _, e := range game.Events() {
		if !l.hasButton(e) {
			extra = append(extra, e)
		}
	}
	return extra
}

func (l Layout) hasButton(e game.Event) bool {
	for _, b := range l.Buttons {
		if b.Event == e {
			return true
		}
	}
	return false
}
