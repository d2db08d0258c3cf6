//go:build js && wasm

package panel

import (
	"context"

	"github.com/jacobpatterson1549/scoreboard-panel/game"
)

type mockLog struct {
	warnings []string
}

func (m *mockLog) Warning(text string) {
	m.warnings = append(m.warnings, text)
}

// mockPanel records the name and arguments of each call.
type mockPanel struct {
	calls          []string
	refreshStatusC chan context.Context
}

func (m *mockPanel) call(name string, args ...interface{}) {
	for _, a := range args {
		switch v := a.(type) {
		case game.Slot:
			name += " " + v.String()
		case game.Event:
			name += " " + string(v)
		case string:
			name += " " + v
		case int:
			name += " " + game.Slot(v).String()
		}
	}
	m.calls = append(m.calls, name)
}

func (m *mockPanel) StartGame()    { m.call("StartGame") }
func (m *mockPanel) StopGame()     { m.call("StopGame") }
func (m *mockPanel) PauseGame()    { m.call("PauseGame") }
func (m *mockPanel) CanStartGame() { m.call("CanStartGame") }
func (m *mockPanel) StartRefreshing() bool {
	m.call("StartRefreshing")
	return true
}
func (m *mockPanel) StopRefreshing() { m.call("StopRefreshing") }
func (m *mockPanel) RefreshStatus(ctx context.Context) {
	m.refreshStatusC <- ctx
}
func (m *mockPanel) SetScore(player game.Slot, score int, servingPlayer game.Slot) {
	m.call("SetScore", player, score, servingPlayer)
}
func (m *mockPanel) SetTurn(player game.Slot) { m.call("SetTurn", player) }
func (m *mockPanel) ScoringEvent(player game.Slot, event game.Event) {
	m.call("ScoringEvent", player, event)
}
func (m *mockPanel) DisableControls(player game.Slot) { m.call("DisableControls", player) }
func (m *mockPanel) EnableControls(player game.Slot)  { m.call("EnableControls", player) }
func (m *mockPanel) PlayerNameClick(player game.Slot) { m.call("PlayerNameClick", player) }
func (m *mockPanel) AddPlayer(player game.Slot, username string) {
	m.call("AddPlayer", player, username)
}
func (m *mockPanel) RemovePlayer(player game.Slot) { m.call("RemovePlayer", player) }
func (m *mockPanel) PairRemote(player game.Slot)   { m.call("PairRemote", player) }
func (m *mockPanel) UpdateRegistry()               { m.call("UpdateRegistry") }
