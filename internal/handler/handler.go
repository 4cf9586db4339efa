package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"schafkopf/internal/engine"
	"schafkopf/internal/player"
)

// HumanSeat is the seat driven over HTTP; the remaining seats are bots.
const HumanSeat engine.Seat = 0

// session is one table: a human at seat 0 playing against three bots. The
// engine itself is strictly sequential, so every command on a session runs
// under the registry lock.
type session struct {
	game *engine.Game
	bots map[engine.Seat]player.Agent
}

// Handler serves the game API over a registry of sessions.
type Handler struct {
	mu       sync.Mutex
	sessions map[string]*session
	newAgent player.AgentFactory
}

func New() *Handler {
	return &Handler{
		sessions: make(map[string]*session),
		newAgent: player.NewFirstLegalBot,
	}
}

type declareRequest struct {
	GameType string `json:"gameType"`
	Color    string `json:"color"`
	Flags    string `json:"flags"`
}

type playRequest struct {
	Slot int `json:"slot"`
}

type cardView struct {
	Slot int    `json:"slot"`
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type trickView struct {
	Leader int        `json:"leader"`
	Cards  []cardView `json:"cards"`
	Winner *int       `json:"winner,omitempty"`
}

type gameView struct {
	ID            string     `json:"id"`
	CurrentPlayer int        `json:"currentPlayer"`
	Declaration   string     `json:"declaration,omitempty"`
	Hand          []cardView `json:"hand"`
	Playable      []bool     `json:"playable"`
	CurrentTrick  *trickView `json:"currentTrick,omitempty"`
	PreviousTrick *trickView `json:"previousTrick,omitempty"`
	Outcome       string     `json:"outcome"`
	DeclarerScore int        `json:"declarerScore"`
}

// CreateGame opens a new session and deals the first hand.
func (h *Handler) CreateGame(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	s := &session{
		game: engine.NewGame(),
		bots: make(map[engine.Seat]player.Agent),
	}
	for seat := engine.Seat(0); seat < engine.NumSeats; seat++ {
		if seat != HumanSeat {
			s.bots[seat] = h.newAgent()
		}
	}
	s.game.Start()
	h.sessions[id] = s

	return c.JSON(http.StatusCreated, viewOf(id, s.game))
}

// GetGame returns the current session state as seen from the human seat.
func (h *Handler) GetGame(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewOf(c.Param("id"), s.game))
}

// Declare sets the game type for the session's current deal and lets the
// bots play until it is the human's turn.
func (h *Handler) Declare(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, err := h.session(c)
	if err != nil {
		return err
	}

	var req declareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	gameType, err := engine.ParseGameType(req.GameType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	color := engine.ColorLess
	if req.Color != "" {
		if color, err = engine.ParseGameColor(req.Color); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	flags := engine.Normal
	switch req.Flags {
	case "", "normal":
	case "tout":
		flags = engine.Tout
	case "sie":
		flags = engine.Sie
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown flags "+req.Flags)
	}

	if err := s.game.SetGameType(gameType, color, HumanSeat, flags); err != nil {
		return httpError(err)
	}
	if err := s.advanceBots(); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, viewOf(c.Param("id"), s.game))
}

// Play plays the human's card at the given hand slot, then lets the bots
// answer until control returns to the human or the deal ends.
func (h *Handler) Play(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, err := h.session(c)
	if err != nil {
		return err
	}
	if s.game.CurrentPlayer() != HumanSeat {
		return echo.NewHTTPError(http.StatusConflict, "not your turn")
	}

	var req playRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.game.PlayCard(req.Slot); err != nil {
		return httpError(err)
	}
	if err := s.advanceBots(); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, viewOf(c.Param("id"), s.game))
}

// Restart begins the next deal of the session, keeping seat rotation.
func (h *Handler) Restart(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.game.Start()
	return c.JSON(http.StatusOK, viewOf(c.Param("id"), s.game))
}

func (h *Handler) session(c echo.Context) (*session, error) {
	s, ok := h.sessions[c.Param("id")]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "no such game")
	}
	return s, nil
}

// advanceBots plays computer seats synchronously until the human is up
// again or the deal is resolved.
func (s *session) advanceBots() error {
	g := s.game
	for g.Rules() != nil && g.Winner() == engine.Undetermined && g.CurrentPlayer() != HumanSeat {
		seat := g.CurrentPlayer()
		idx, err := s.bots[seat].ChooseCard(g.Rules(), g.CurrentTrick(), g.Players[seat])
		if err != nil {
			return err
		}
		if err := g.PlayCard(idx); err != nil {
			return err
		}
	}
	return nil
}

func httpError(err error) error {
	switch {
	case errors.Is(err, engine.ErrIllegalCard), errors.Is(err, engine.ErrIllegalDeclaration):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, engine.ErrInvalidCommand):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func viewOf(id string, g *engine.Game) gameView {
	v := gameView{
		ID:            id,
		CurrentPlayer: int(g.CurrentPlayer()),
		Outcome:       g.Winner().String(),
		DeclarerScore: g.DeclarerPoints(),
	}
	if r := g.Rules(); r != nil {
		v.Declaration = r.Type.String() + " " + r.Color.String()
	}

	human := g.Players[HumanSeat]
	for i, c := range human.Cards {
		if c != nil {
			v.Hand = append(v.Hand, cardView{Slot: i, Suit: c.Suit.String(), Rank: c.Rank.String()})
		}
	}
	if g.CurrentPlayer() == HumanSeat {
		for _, c := range g.PlayableCards() {
			v.Playable = append(v.Playable, c != nil)
		}
	}
	v.CurrentTrick = trickViewOf(g.CurrentTrick())
	v.PreviousTrick = trickViewOf(g.PreviousTrick())
	return v
}

func trickViewOf(t *engine.Trick) *trickView {
	if t == nil {
		return nil
	}
	v := &trickView{Leader: int(t.Leader)}
	for i, c := range t.Cards {
		v.Cards = append(v.Cards, cardView{Slot: i, Suit: c.Suit.String(), Rank: c.Rank.String()})
	}
	if len(t.Cards) > 0 {
		w := int(t.Winner)
		v.Winner = &w
	}
	return v
}
