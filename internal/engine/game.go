package engine

import (
	"errors"
	"fmt"
)

// Command failure categories. Every failed command wraps one of these and
// leaves the game state untouched.
var (
	ErrInvalidCommand     = errors.New("invalid command")
	ErrIllegalCard        = errors.New("illegal card")
	ErrIllegalDeclaration = errors.New("illegal declaration")
	ErrInvariant          = errors.New("invariant violation")
)

// Outcome is the resolved result of a deal from the declaring side's view.
type Outcome int

const (
	Undetermined Outcome = iota
	DeclarersWon
	DeclarersLost
)

func (o Outcome) String() string {
	switch o {
	case DeclarersWon:
		return "declarers won"
	case DeclarersLost:
		return "declarers lost"
	default:
		return "undetermined"
	}
}

// Game is the sequential state machine for a four-seat table. It owns the
// players, the trick stack and the active rules, and must be driven by a
// single caller: every command runs to completion before the next.
type Game struct {
	Players [NumSeats]*Player

	stack   *Stack
	rules   *Rules
	current Seat
	first   Seat

	declarer Seat
	partner  *Seat
	outcome  Outcome
	started  bool
}

// NewGame creates a table with four empty seats. Seat identities are stable
// for the lifetime of the game.
func NewGame() *Game {
	g := &Game{}
	for i := range g.Players {
		g.Players[i] = &Player{Seat: Seat(i)}
	}
	return g
}

// Start begins a new deal: fresh shuffled deck, eight cards per seat dealt
// round-robin, empty stack led by the first player. Any in-progress deal is
// discarded; the first-player rotation survives across deals.
func (g *Game) Start() {
	g.deal(ShuffleDeck(NewDeck()))
}

func (g *Game) deal(deck []Card) {
	g.stack = NewStack(g.first)
	g.current = g.first
	g.rules = nil
	g.partner = nil
	g.outcome = Undetermined
	g.started = true

	for _, p := range g.Players {
		p.Cards = make([]*Card, 0, HandSize)
	}
	for i := range deck {
		c := deck[i]
		g.Players[i%NumSeats].Cards = append(g.Players[i%NumSeats].Cards, &c)
	}
}

// SetGameType declares the game for the current deal. A deal can only be
// declared once. For Sau the declarer must not hold the game ace and must
// hold at least one plain card of the game color; the partner is the seat
// holding the game ace, located once here and fixed for the deal.
func (g *Game) SetGameType(gameType GameType, gameColor GameColor, declarer Seat, flags ExtraFlags) error {
	if !g.started {
		return fmt.Errorf("%w: game not started", ErrInvalidCommand)
	}
	if g.rules != nil {
		return fmt.Errorf("%w: cannot change running game", ErrInvalidCommand)
	}

	rules, err := NewRules(gameType, gameColor, flags)
	if err != nil {
		return err
	}

	if gameType == Sau {
		p := g.Players[declarer]
		if rules.PlayerHasGameAce(p) {
			return fmt.Errorf("%w: declarer holds the game ace", ErrIllegalDeclaration)
		}
		if !rules.PlayerHasColor(p, Suit(gameColor)) {
			return fmt.Errorf("%w: declarer holds no card of the game color", ErrIllegalDeclaration)
		}
	}

	g.rules = rules
	g.declarer = declarer
	g.partner = nil
	if gameType == Sau {
		for _, p := range g.Players {
			if rules.PlayerHasGameAce(p) {
				seat := p.Seat
				g.partner = &seat
				break
			}
		}
	}
	return nil
}

// PlayCard plays the current player's card at the given hand slot. The slot
// becomes empty, the trick's running winner is updated and the turn
// advances; a fourth card resolves the trick and a fully played-out deal
// resolves the game winner.
func (g *Game) PlayCard(cardIndex int) error {
	if g.rules == nil {
		return fmt.Errorf("%w: no game declared", ErrInvalidCommand)
	}
	if g.outcome != Undetermined {
		return fmt.Errorf("%w: deal is finished", ErrInvalidCommand)
	}

	p := g.Players[g.current]
	if cardIndex < 0 || cardIndex >= len(p.Cards) || p.Cards[cardIndex] == nil {
		return fmt.Errorf("%w: no card at slot %d", ErrIllegalCard, cardIndex)
	}
	card := *p.Cards[cardIndex]
	if !g.rules.IsCardAllowed(card, g.stack.Current, p) {
		return fmt.Errorf("%w: %s", ErrIllegalCard, card)
	}

	p.Cards[cardIndex] = nil
	trick := g.stack.Current
	trick.Cards = append(trick.Cards, card)

	if len(trick.Cards) == 1 {
		trick.Winner, trick.WinningCard = g.current, 0
	} else if g.rules.IsHigherCard(trick.Cards[trick.WinningCard], card) {
		trick.Winner, trick.WinningCard = g.current, len(trick.Cards)-1
	}

	if trick.Complete() {
		return g.finishTrick()
	}
	g.current = g.current.Next()
	return nil
}

func (g *Game) finishTrick() error {
	winner := g.stack.Current.Winner
	g.current = winner
	if err := g.stack.Finalize(winner); err != nil {
		return err
	}
	// All seats exhaust in lockstep, so one empty hand means the deal is over.
	if g.Players[winner].CardsLeft() == 0 {
		g.finishDeal()
	}
	return nil
}

func (g *Game) finishDeal() {
	if g.DeclarerPoints() > WinThreshold {
		g.outcome = DeclarersWon
	} else {
		g.outcome = DeclarersLost
	}
	g.first = g.first.Next()
	g.current = g.first
}

// PlayableCards returns a slice shaped like the current player's hand where
// each slot holds the card if it may legally be played now, nil otherwise.
// All slots are nil while no game is declared.
func (g *Game) PlayableCards() []*Card {
	p := g.Players[g.current]
	out := make([]*Card, len(p.Cards))
	if g.rules == nil {
		return out
	}
	for i, c := range p.Cards {
		if c != nil && g.rules.IsCardAllowed(*c, g.stack.Current, p) {
			out[i] = c
		}
	}
	return out
}

// DeclarerPoints returns the declaring side's accumulated trick points: the
// declarer's bucket plus the partner's, when a partner exists.
func (g *Game) DeclarerPoints() int {
	if g.rules == nil || g.stack == nil {
		return 0
	}
	points := g.stack.Points()
	total := points[g.declarer]
	if g.partner != nil {
		total += points[*g.partner]
	}
	return total
}

// CurrentPlayer returns the seat whose turn it is.
func (g *Game) CurrentPlayer() Seat { return g.current }

// Rules returns the active declaration, or nil before one is set.
func (g *Game) Rules() *Rules { return g.rules }

// CurrentTrick returns the trick in progress, or nil before the first deal.
func (g *Game) CurrentTrick() *Trick {
	if g.stack == nil {
		return nil
	}
	return g.stack.Current
}

// PreviousTrick returns the most recently completed trick, or nil when none
// has been completed this deal.
func (g *Game) PreviousTrick() *Trick {
	if g.stack == nil || len(g.stack.Completed) == 0 {
		return nil
	}
	return g.stack.Completed[len(g.stack.Completed)-1]
}

// Declarer returns the declaring seat; ok is false before a declaration.
func (g *Game) Declarer() (Seat, bool) {
	if g.rules == nil {
		return 0, false
	}
	return g.declarer, true
}

// Partner returns the declarer's partner seat; ok is false for games
// without one.
func (g *Game) Partner() (Seat, bool) {
	if g.partner == nil {
		return 0, false
	}
	return *g.partner, true
}

// Winner returns the resolved outcome of the deal.
func (g *Game) Winner() Outcome { return g.outcome }

// Stack returns the trick stack of the current deal, or nil before the
// first deal.
func (g *Game) Stack() *Stack { return g.stack }
