package controller

import (
	"context"
	"sync"

	"github.com/jacobpatterson1549/scoreboard-panel/game"
)

type mockAPI struct {
	BeginFunc          func(ctx context.Context) (string, error)
	EndFunc            func(ctx context.Context) error
	PauseUnpauseFunc   func(ctx context.Context) error
	CanStartFunc       func(ctx context.Context) (bool, error)
	GameFunc           func(ctx context.Context) (*game.Info, error)
	PlayersFunc        func(ctx context.Context) (game.Players, error)
	SetTurnFunc        func(ctx context.Context, player game.Slot) error
	ScoreEventFunc     func(ctx context.Context, player game.Slot, event game.Event) error
	UpdateRegistryFunc func(ctx context.Context) error
}

func (m mockAPI) Begin(ctx context.Context) (string, error) {
	return m.BeginFunc(ctx)
}

func (m mockAPI) End(ctx context.Context) error {
	return m.EndFunc(ctx)
}

func (m mockAPI) PauseUnpause(ctx context.Context) error {
	return m.PauseUnpauseFunc(ctx)
}

func (m mockAPI) CanStart(ctx context.Context) (bool, error) {
	return m.CanStartFunc(ctx)
}

func (m mockAPI) Game(ctx context.Context) (*game.Info, error) {
	return m.GameFunc(ctx)
}

func (m mockAPI) Players(ctx context.Context) (game.Players, error) {
	return m.PlayersFunc(ctx)
}

func (m mockAPI) SetTurn(ctx context.Context, player game.Slot) error {
	return m.SetTurnFunc(ctx, player)
}

func (m mockAPI) ScoreEvent(ctx context.Context, player game.Slot, event game.Event) error {
	return m.ScoreEventFunc(ctx, player, event)
}

func (m mockAPI) UpdateRegistry(ctx context.Context) error {
	return m.UpdateRegistryFunc(ctx)
}

// mockElement is a control, text, and name button that remembers its state.
type mockElement struct {
	mu          sync.Mutex
	disabled    bool
	text        string
	highlighted bool
}

func (m *mockElement) Disabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disabled
}

func (m *mockElement) SetDisabled(disabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = disabled
}

func (m *mockElement) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

func (m *mockElement) SetHighlighted(highlighted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highlighted = highlighted
}

func (m *mockElement) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *mockElement) Highlighted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highlighted
}

// mockView is a view with every element bound to a mockElement.
type mockView struct {
	start, stop, pause, status *mockElement
	players                    [game.NumSlots]mockPlayerView
}

type mockPlayerView struct {
	name, drop, score, scoreDropdown *mockElement
	events                           [game.NumEventButtons]*mockElement
}

func newMockView() *mockView {
	m := mockView{
		start:  new(mockElement),
		stop:   new(mockElement),
		pause:  new(mockElement),
		status: new(mockElement),
	}
	for i := range m.players {
		pv := &m.players[i]
		pv.name = new(mockElement)
		pv.drop = new(mockElement)
		pv.score = new(mockElement)
		pv.scoreDropdown = new(mockElement)
		for j := range pv.events {
			pv.events[j] = new(mockElement)
		}
	}
	return &m
}

func (m *mockView) View() View {
	v := View{
		Start:  m.start,
		Stop:   m.stop,
		Pause:  m.pause,
		Status: m.status,
	}
	for i, mpv := range m.players {
		pv := PlayerView{
			Name:          mpv.name,
			Drop:          mpv.drop,
			Score:         mpv.score,
			ScoreDropdown: mpv.scoreDropdown,
		}
		for j, e := range mpv.events {
			pv.Events[j] = e
		}
		v.Players[i] = pv
	}
	return v
}

// controlsDisabled determines if all the referee controls of the player are disabled (true) or enabled (false).
// The ok return value is false if some controls are disabled and others are not.
func (mpv mockPlayerView) controlsDisabled() (disabled, ok bool) {
	disabled = mpv.scoreDropdown.Disabled()
	for _, e := range mpv.events {
		if e.Disabled() != disabled {
			return disabled, false
		}
	}
	return disabled, true
}

type mockPage struct {
	mu          sync.Mutex
	reloadCount int
	deferredFns []func()
}

func (m *mockPage) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloadCount++
}

func (m *mockPage) Defer(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deferredFns = append(m.deferredFns, fn)
}

// runDeferred runs the deferred functions, as if the event loop turn has ended.
func (m *mockPage) runDeferred() {
	m.mu.Lock()
	fns := m.deferredFns
	m.deferredFns = nil
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type mockLog struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLog) Warning(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, text)
}

func (m *mockLog) numWarnings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warnings)
}

type mockScheduler struct {
	StartFunc func(ctx context.Context) bool
	StopFunc  func()
}

func (m mockScheduler) Start(ctx context.Context) bool {
	return m.StartFunc(ctx)
}

func (m mockScheduler) Stop() {
	m.StopFunc()
}
