//go:build js && wasm

// Package panel exposes the control panel to the scripts of the page.
package panel

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"syscall/js"

	"github.com/jacobpatterson1549/scoreboard-panel/game"
)

type (
	// Component registers the functions of the panel on the global panel object.
	Component struct {
		dom   Dom
		log   Log
		panel Panel
	}

	// Dom creates and registers javascript functions.
	Dom interface {
		NewJsFunc(fn func()) js.Func
		NewJsArgsFunc(fn func(args []js.Value), async bool) js.Func
		RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func)
	}

	// Log is notified when a function is called with invalid arguments.
	Log interface {
		Warning(text string)
	}

	// Panel is the view controller the functions call.
	Panel interface {
		StartGame()
		StopGame()
		PauseGame()
		CanStartGame()
		StartRefreshing() bool
		StopRefreshing()
		RefreshStatus(ctx context.Context)
		SetScore(player game.Slot, score int, servingPlayer game.Slot)
		SetTurn(player game.Slot)
		ScoringEvent(player game.Slot, event game.Event)
		DisableControls(player game.Slot)
		EnableControls(player game.Slot)
		PlayerNameClick(player game.Slot)
		AddPlayer(player game.Slot, username string)
		RemovePlayer(player game.Slot)
		PairRemote(player game.Slot)
		UpdateRegistry()
	}
)

// New creates a component for the panel.
func New(dom Dom, log Log, panel Panel) *Component {
	c := Component{
		dom:   dom,
		log:   log,
		panel: panel,
	}
	return &c
}

// InitDom registers the panel dom functions.
func (c *Component) InitDom(ctx context.Context, wg *sync.WaitGroup) {
	jsFuncs := map[string]js.Func{
		"startGame":       c.dom.NewJsFunc(c.panel.StartGame),
		"stopGame":        c.dom.NewJsFunc(c.panel.StopGame),
		"pauseGame":       c.dom.NewJsFunc(c.panel.PauseGame),
		"canStartGame":    c.dom.NewJsFunc(c.panel.CanStartGame),
		"startRefreshing": c.dom.NewJsFunc(func() { c.panel.StartRefreshing() }),
		"stopRefreshing":  c.dom.NewJsFunc(c.panel.StopRefreshing),
		"updateRegistry":  c.dom.NewJsFunc(c.panel.UpdateRegistry),
		"refreshStatus": c.dom.NewJsArgsFunc(func(args []js.Value) {
			c.panel.RefreshStatus(ctx)
		}, true),
		"setScore":        c.argsFunc("setScore", c.setScore),
		"setTurn":         c.slotFunc("setTurn", c.panel.SetTurn),
		"scoringEvt":      c.argsFunc("scoringEvt", c.scoringEvent),
		"disableControls": c.slotFunc("disableControls", c.panel.DisableControls),
		"enableControls":  c.slotFunc("enableControls", c.panel.EnableControls),
		"pnameClick":      c.slotFunc("pnameClick", c.panel.PlayerNameClick),
		"addPlayer":       c.argsFunc("addPlayer", c.addPlayer),
		"rmPlayer":        c.slotFunc("rmPlayer", c.panel.RemovePlayer),
		"pairRemote":      c.slotFunc("pairRemote", c.panel.PairRemote),
	}
	c.dom.RegisterFuncs(ctx, wg, "panel", jsFuncs)
}

// argsFunc creates a function that logs the error if fn fails.
func (c *Component) argsFunc(name string, fn func(args []js.Value) error) js.Func {
	return c.dom.NewJsArgsFunc(func(args []js.Value) {
		if err := fn(args); err != nil {
			c.log.Warning(name + ": " + err.Error())
		}
	}, false)
}

// slotFunc creates a function that calls fn with the player of its first argument.
func (c *Component) slotFunc(name string, fn func(player game.Slot)) js.Func {
	return c.argsFunc(name, func(args []js.Value) error {
		player, err := slotArg(args, 0)
		if err != nil {
			return err
		}
		fn(player)
		return nil
	})
}

// setScore calls setScore(player, score, servingPlayer).
func (c *Component) setScore(args []js.Value) error {
	player, err := slotArg(args, 0)
	if err != nil {
		return err
	}
	score, err := intArg(args, 1)
	if err != nil {
		return err
	}
	servingPlayer := game.NoSlot
	if len(args) > 2 && !args[2].IsNull() && !args[2].IsUndefined() {
		if servingPlayer, err = slotArg(args, 2); err != nil {
			return err
		}
	}
	c.panel.SetScore(player, score, servingPlayer)
	return nil
}

// scoringEvent calls scoringEvt(player, eventType).
func (c *Component) scoringEvent(args []js.Value) error {
	player, err := slotArg(args, 0)
	if err != nil {
		return err
	}
	event, err := stringArg(args, 1)
	if err != nil {
		return err
	}
	c.panel.ScoringEvent(player, game.Event(event))
	return nil
}

// addPlayer calls addPlayer(player, username).
func (c *Component) addPlayer(args []js.Value) error {
	player, err := slotArg(args, 0)
	if err != nil {
		return err
	}
	username, err := stringArg(args, 1)
	if err != nil {
		return err
	}
	c.panel.AddPlayer(player, username)
	return nil
}

// slotArg converts the argument at the index, which can be a number or a numeric string, into a valid slot.
func slotArg(args []js.Value, i int) (game.Slot, error) {
	n, err := intArg(args, i)
	if err != nil {
		return game.NoSlot, err
	}
	s := game.Slot(n)
	if err := s.Validate(); err != nil {
		return game.NoSlot, err
	}
	return s, nil
}

// intArg converts the argument at the index, which can be a number or a numeric string, into an int.
func intArg(args []js.Value, i int) (int, error) {
	if i >= len(args) {
		return 0, errors.New("missing argument " + strconv.Itoa(i))
	}
	a := args[i]
	switch a.Type() {
	case js.TypeNumber:
		return a.Int(), nil
	case js.TypeString:
		n, err := strconv.Atoi(a.String())
		if err != nil {
			return 0, errors.New("argument " + strconv.Itoa(i) + " is not an integer: " + err.Error())
		}
		return n, nil
	}
	return 0, errors.New("argument " + strconv.Itoa(i) + " is not a number")
}

// stringArg returns the argument at the index, which must be a string.
func stringArg(args []js.Value, i int) (string, error) {
	if i >= len(args) {
		return "", errors.New("missing argument " + strconv.Itoa(i))
	}
	a := args[i]
	if a.Type() != js.TypeString {
		return "", errors.New("argument " + strconv.Itoa(i) + " is not a string")
	}
	return a.String(), nil
}
