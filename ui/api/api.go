//go:build js && wasm

package api

import (
	"context"
	"errors"
	"strconv"
	"syscall/js"

	"github.com/jacobpatterson1549/scoreboard-panel/game"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/http"
)

type (
	// Client makes requests to the scoreboard.
	Client struct {
		dom        Dom
		httpClient HTTPClient
		// BaseURL is prepended to the path of each request.  It is empty when the panel is served by the host that forwards requests.
		BaseURL string
	}

	// Dom decodes responses.
	Dom interface {
		ParseJSON(text string) (js.Value, error)
		ObjectKeys(v js.Value) []string
	}

	// HTTPClient makes requests.
	HTTPClient interface {
		Do(ctx context.Context, req http.Request) (*http.Response, error)
	}
)

// New creates a client for the scoreboard at the url.
func New(dom Dom, httpClient HTTPClient, baseURL string) *Client {
	c := Client{
		dom:        dom,
		httpClient: httpClient,
		BaseURL:    baseURL,
	}
	return &c
}

// Begin starts a game, returning the text of the response.
func (c Client) Begin(ctx context.Context) (string, error) {
	return c.get(ctx, beginPath)
}

// End stops the game.
func (c Client) End(ctx context.Context) error {
	_, err := c.get(ctx, endPath)
	return err
}

// PauseUnpause pauses a running game or resumes a paused one.
func (c Client) PauseUnpause(ctx context.Context) error {
	_, err := c.get(ctx, pauseUnpausePath)
	return err
}

// SetTurn makes it the player's turn.
func (c Client) SetTurn(ctx context.Context, player game.Slot) error {
	_, err := c.get(ctx, SetTurnPath(player))
	return err
}

// ScoreEvent records a referee scoring event for the player.
func (c Client) ScoreEvent(ctx context.Context, player game.Slot, event game.Event) error {
	_, err := c.get(ctx, ScoreEventPath(player, event))
	return err
}

// UpdateRegistry asks the scoreboard to update its local registry.
func (c Client) UpdateRegistry(ctx context.Context) error {
	_, err := c.get(ctx, updateRegistryPath)
	return err
}

// CanStart determines if a game can be started.
func (c Client) CanStart(ctx context.Context) (bool, error) {
	v, err := c.getStatus(ctx, canStartPath)
	if err != nil {
		return false, err
	}
	canStart := v.Get("can_start")
	if canStart.Type() != js.TypeBoolean {
		return false, errors.New("checking if game can start: can_start is not a boolean")
	}
	return canStart.Bool(), nil
}

// Game gets the status and scores of the game.
func (c Client) Game(ctx context.Context) (*game.Info, error) {
	v, err := c.getStatus(ctx, gamePath)
	if err != nil {
		return nil, err
	}
	status := v.Get("game")
	if status.Type() != js.TypeString {
		return nil, errors.New("getting game: game status is not a string")
	}
	scores, err := c.scores(v.Get("scores"))
	if err != nil {
		return nil, errors.New("getting game: " + err.Error())
	}
	info := game.Info{
		Status:  game.Status(status.String()),
		Scores:  scores,
		Serving: slotOrNone(v.Get("serving")),
		GameID:  text(v.Get("game_id")),
		UserID:  text(v.Get("user_id")),
	}
	return &info, nil
}

// Players gets the registered players.
func (c Client) Players(ctx context.Context) (game.Players, error) {
	v, err := c.getJSON(ctx, playersPath)
	if err != nil {
		return nil, err
	}
	if v.Type() != js.TypeObject {
		return nil, errors.New("getting players: response is not an object")
	}
	players := make(game.Players)
	for _, k := range c.dom.ObjectKeys(v) {
		s, err := game.ParseSlot(k)
		if err != nil {
			return nil, errors.New("getting players: " + err.Error())
		}
		p := v.Get(k)
		if p.Type() != js.TypeObject {
			return nil, errors.New("getting players: player " + k + " is not an object")
		}
		player := game.Player{
			WebText:   text(p.Get("web_txt")),
			PanelText: text(p.Get("panel_txt")),
		}
		if remoteID := p.Get("remote_id"); remoteID.Type() == js.TypeNumber {
			player.RemoteID = remoteID.Int()
			player.Paired = true
		}
		players[s] = player
	}
	return players, nil
}

// scores converts the map of slots to points.
func (c Client) scores(v js.Value) (map[game.Slot]int, error) {
	scores := make(map[game.Slot]int)
	switch v.Type() {
	case js.TypeUndefined, js.TypeNull:
		return scores, nil
	case js.TypeObject:
	default:
		return nil, errors.New("scores is not an object")
	}
	for _, k := range c.dom.ObjectKeys(v) {
		s, err := game.ParseSlot(k)
		if err != nil {
			return nil, errors.New("score: " + err.Error())
		}
		score := v.Get(k)
		if score.Type() != js.TypeNumber {
			return nil, errors.New("score of player " + k + " is not a number")
		}
		scores[s] = score.Int()
	}
	return scores, nil
}

// getStatus gets the json object at the path, ensuring its status is ok.
func (c Client) getStatus(ctx context.Context, path string) (js.Value, error) {
	v, err := c.getJSON(ctx, path)
	if err != nil {
		return js.Undefined(), err
	}
	if v.Type() != js.TypeObject {
		return js.Undefined(), errors.New("requesting " + path + ": response is not an object")
	}
	if status := text(v.Get("status")); status != "ok" {
		return js.Undefined(), errors.New("requesting " + path + ": status not ok: " + status)
	}
	return v, nil
}

// getJSON gets the path and parses the response.
func (c Client) getJSON(ctx context.Context, path string) (js.Value, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return js.Undefined(), err
	}
	v, err := c.dom.ParseJSON(body)
	if err != nil {
		return js.Undefined(), errors.New("requesting " + path + ": " + err.Error())
	}
	return v, nil
}

// get requests the path, returning the body of a successful response.
func (c Client) get(ctx context.Context, path string) (string, error) {
	req := http.Request{
		Method: "GET",
		URL:    c.BaseURL + path,
	}
	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return "", errors.New("requesting " + path + ": " + err.Error())
	}
	if resp.Code < 200 || resp.Code >= 300 {
		return "", errors.New("requesting " + path + ": unwanted response code: " + strconv.Itoa(resp.Code) + ": " + resp.Body)
	}
	return resp.Body, nil
}

// slotOrNone converts the number or numeric string into a slot, returning NoSlot if it is not a valid slot.
func slotOrNone(v js.Value) game.Slot {
	switch v.Type() {
	case js.TypeNumber:
		s := game.Slot(v.Int())
		if s.Validate() == nil {
			return s
		}
	case js.TypeString:
		if s, err := game.ParseSlot(v.String()); err == nil {
			return s
		}
	}
	return game.NoSlot
}

// text converts strings and numbers to text, returning the empty string for other types.
func text(v js.Value) string {
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return ""
}
