// Package controller contains the view controller of the scoreboard control panel.
package controller

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/jacobpatterson1549/scoreboard-panel/game"
)

type (
	// Panel starts and stops games, polls the scoreboard, and reflects its state into the view.
	Panel struct {
		ctx       context.Context
		wg        sync.WaitGroup
		log       Log
		api       API
		view      View
		page      Page
		scheduler Scheduler
		statusMu  sync.RWMutex
		status    game.Status
	}

	// Parameters contains the dependencies of the panel.
	Parameters struct {
		Log  Log
		API  API
		View View
		Page Page
		// NewScheduler creates the scheduler that refreshes the status with the function.
		NewScheduler func(fn func(ctx context.Context)) (Scheduler, error)
	}

	// API makes requests to the scoreboard.
	API interface {
		// Begin starts a game, returning the text of the response.
		Begin(ctx context.Context) (string, error)
		// End stops the game.
		End(ctx context.Context) error
		// PauseUnpause pauses a running game or resumes a paused one.
		PauseUnpause(ctx context.Context) error
		// CanStart determines if a game can be started.
		CanStart(ctx context.Context) (bool, error)
		// Game gets the status and scores of the game.
		Game(ctx context.Context) (*game.Info, error)
		// Players gets the registered players.
		Players(ctx context.Context) (game.Players, error)
		// SetTurn makes it the player's turn.
		SetTurn(ctx context.Context, player game.Slot) error
		// ScoreEvent records a referee scoring event for the player.
		ScoreEvent(ctx context.Context, player game.Slot, event game.Event) error
		// UpdateRegistry asks the scoreboard to update its local registry.
		UpdateRegistry(ctx context.Context) error
	}

	// Page controls the document the panel is on.
	Page interface {
		// Reload reloads the document.
		Reload()
		// Defer runs the function after the current turn of the event loop.
		Defer(fn func())
	}

	// Log records problems the panel does not show to the user.
	Log interface {
		Warning(text string)
	}

	// Scheduler runs the refresh periodically.
	Scheduler interface {
		Start(ctx context.Context) bool
		Stop()
	}
)

// New creates a panel.  All requests the panel makes use the context, which should be cancelled when the page is unloaded.
func (p Parameters) New(ctx context.Context) (*Panel, error) {
	if err := p.validate(); err != nil {
		return nil, errors.New("creating panel: validation: " + err.Error())
	}
	panel := Panel{
		ctx:  ctx,
		log:  p.Log,
		api:  p.API,
		view: p.View,
		page: p.Page,
	}
	scheduler, err := p.NewScheduler(panel.RefreshStatus)
	if err != nil {
		return nil, errors.New("creating panel: " + err.Error())
	}
	panel.scheduler = scheduler
	return &panel, nil
}

// validate ensures the parameters have no errors.
func (p Parameters) validate() error {
	switch {
	case p.Log == nil:
		return errors.New("log required")
	case p.API == nil:
		return errors.New("api required")
	case p.Page == nil:
		return errors.New("page required")
	case p.NewScheduler == nil:
		return errors.New("scheduler creator required")
	}
	return p.View.validate()
}

// validate ensures every element of the view is bound.
func (v View) validate() error {
	switch {
	case v.Start == nil, v.Stop == nil, v.Pause == nil:
		return errors.New("game controls required")
	case v.Status == nil:
		return errors.New("game status text required")
	}
	for i, pv := range v.Players {
		switch {
		case pv.Name == nil, pv.Drop == nil, pv.Score == nil, pv.ScoreDropdown == nil:
			return errors.New("player elements required for slot " + strconv.Itoa(i))
		}
		for _, e := range pv.Events {
			if e == nil {
				return errors.New("event controls required for slot " + strconv.Itoa(i))
			}
		}
	}
	return nil
}

// Status is the game status from the most recent successful refresh.
func (p *Panel) Status() game.Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// setStatus stores the game status.
func (p *Panel) setStatus(s game.Status) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status = s
}

// Wait blocks until all requests the panel has started are finished.
func (p *Panel) Wait() {
	p.wg.Wait()
}

// StartGame starts a game if the start control is enabled.
// The page is reloaded after the current turn of the event loop, which is after the request has been sent.
func (p *Panel) StartGame() {
	if p.view.Start.Disabled() {
		return
	}
	p.async(func(ctx context.Context) {
		text, err := p.api.Begin(ctx)
		if err != nil {
			p.log.Warning("starting game: " + err.Error())
			return
		}
		p.view.Status.SetText(text)
	})
	p.page.Defer(p.page.Reload)
}

// StopGame stops the game if the stop control is enabled.
func (p *Panel) StopGame() {
	if p.view.Stop.Disabled() {
		return
	}
	p.async(func(ctx context.Context) {
		if err := p.api.End(ctx); err != nil {
			p.log.Warning("stopping game: " + err.Error())
		}
	})
}

// PauseGame pauses or unpauses the game if the pause control is enabled.
func (p *Panel) PauseGame() {
	if p.view.Pause.Disabled() {
		return
	}
	p.async(func(ctx context.Context) {
		if err := p.api.PauseUnpause(ctx); err != nil {
			p.log.Warning("pausing game: " + err.Error())
		}
	})
}

// CanStartGame enables the start control if a game can be started.
func (p *Panel) CanStartGame() {
	p.async(p.canStartGame)
}

// canStartGame asks the scoreboard if a game can be started and updates the start control.
func (p *Panel) canStartGame(ctx context.Context) {
	canStart, err := p.api.CanStart(ctx)
	if err != nil {
		p.log.Warning("checking if game can start: " + err.Error())
		return
	}
	p.view.Start.SetDisabled(!canStart)
}

// StartRefreshing refreshes the status now and then every period until StopRefreshing is called.
// It returns false if the panel is already refreshing.
func (p *Panel) StartRefreshing() bool {
	return p.scheduler.Start(p.ctx)
}

// StopRefreshing stops refreshing the status.  Refreshes in progress are not cancelled.
func (p *Panel) StopRefreshing() {
	p.scheduler.Stop()
}

// RefreshStatus gets the player names and game status concurrently and updates the view.
func (p *Panel) RefreshStatus(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.refreshPlayerNames(ctx)
	}()
	go func() {
		defer wg.Done()
		p.refreshGame(ctx)
	}()
	wg.Wait()
}

// refreshPlayerNames shows the names of the registered players.
func (p *Panel) refreshPlayerNames(ctx context.Context) {
	players, err := p.api.Players(ctx)
	if err != nil {
		p.log.Warning("getting player names: " + err.Error())
		return
	}
	for s, player := range players {
		if err := s.Validate(); err != nil {
			p.log.Warning("showing player name: " + err.Error())
			continue
		}
		p.view.Players[s].Name.SetText(player.WebText)
	}
}

// refreshGame updates the scores and controls for the status of the game.
func (p *Panel) refreshGame(ctx context.Context) {
	info, err := p.api.Game(ctx)
	if err != nil {
		p.log.Warning("getting game status: " + err.Error())
		return
	}
	p.setStatus(info.Status)
	running := info.Status.Running()
	if running {
		for s, score := range info.Scores {
			p.SetScore(s, score, info.Serving)
		}
	}
	for _, pv := range p.view.Players {
		pv.setControlsDisabled(!running)
		pv.Drop.SetDisabled(running)
	}
	p.view.Stop.SetDisabled(!running)
	p.view.Pause.SetDisabled(!running)
	if running {
		p.view.Start.SetDisabled(true)
		return
	}
	p.canStartGame(ctx)
}

// SetScore shows the player's score and highlights the player if it is serving.
func (p *Panel) SetScore(player game.Slot, score int, servingPlayer game.Slot) {
	if err := player.Validate(); err != nil {
		p.log.Warning("setting score: " + err.Error())
		return
	}
	pv := p.view.Players[player]
	pv.Name.SetHighlighted(player == servingPlayer)
	pv.Score.SetText(strconv.Itoa(score))
}

// SetTurn makes it the player's turn.
func (p *Panel) SetTurn(player game.Slot) {
	if err := player.Validate(); err != nil {
		p.log.Warning("setting turn: " + err.Error())
		return
	}
	p.async(func(ctx context.Context) {
		if err := p.api.SetTurn(ctx, player); err != nil {
			p.log.Warning("setting turn: " + err.Error())
		}
	})
}

// ScoringEvent records the referee scoring event for the player.
func (p *Panel) ScoringEvent(player game.Slot, event game.Event) {
	if err := player.Validate(); err != nil {
		p.log.Warning("recording scoring event: " + err.Error())
		return
	}
	if err := event.Validate(); err != nil {
		p.log.Warning("recording scoring event: " + err.Error())
		return
	}
	p.async(func(ctx context.Context) {
		if err := p.api.ScoreEvent(ctx, player, event); err != nil {
			p.log.Warning("recording scoring event: " + err.Error())
		}
	})
}

// DisableControls disables the referee controls for the player.
func (p *Panel) DisableControls(player game.Slot) {
	p.setControlsDisabled(player, true)
}

// EnableControls enables the referee controls for the player.
func (p *Panel) EnableControls(player game.Slot) {
	p.setControlsDisabled(player, false)
}

func (p *Panel) setControlsDisabled(player game.Slot, disabled bool) {
	if err := player.Validate(); err != nil {
		p.log.Warning("toggling controls: " + err.Error())
		return
	}
	p.view.Players[player].setControlsDisabled(disabled)
}

// PlayerNameClick sets the turn to the player if the game is not stopped.
func (p *Panel) PlayerNameClick(player game.Slot) {
	if p.Status() == game.Stopped {
		// TODO: open the roster editor once the scoreboard can register players from the panel
		return
	}
	p.SetTurn(player)
}

// AddPlayer does nothing.  Players are registered on the setup page.
func (*Panel) AddPlayer(player game.Slot, username string) {
	// NOOP
}

// RemovePlayer does nothing.  Players are unregistered on the setup page.
func (*Panel) RemovePlayer(player game.Slot) {
	// NOOP
}

// PairRemote does nothing.  Remotes are paired on the setup page.
func (*Panel) PairRemote(player game.Slot) {
	// NOOP
}

// UpdateRegistry asks the scoreboard to update its local registry.
func (p *Panel) UpdateRegistry() {
	p.async(func(ctx context.Context) {
		if err := p.api.UpdateRegistry(ctx); err != nil {
			p.log.Warning("updating registry: " + err.Error())
		}
	})
}

// async runs the function on a new goroutine so callers on the browser's event loop do not block.
func (p *Panel) async(fn func(ctx context.Context)) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fn(p.ctx)
	}()
}
