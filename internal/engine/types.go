package engine

import (
	"fmt"
	"math/rand"
)

// Suit represents a Bavarian card suit.
type Suit int

const (
	Bells Suit = iota
	Hearts
	Leaves
	Acorns
)

func (s Suit) String() string {
	switch s {
	case Bells:
		return "Bells"
	case Hearts:
		return "Hearts"
	case Leaves:
		return "Leaves"
	case Acorns:
		return "Acorns"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Rank represents a card rank, ordered by strength within a plain suit.
type Rank int

const (
	Seven Rank = iota
	Eight
	Nine
	Jack
	Queen
	King
	Ten
	Ace
)

func (r Rank) String() string {
	switch r {
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ten:
		return "Ten"
	case Ace:
		return "Ace"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// PointsFor returns the counting value of a rank for trick scoring.
func PointsFor(r Rank) int {
	switch r {
	case Ace:
		return 11
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	default:
		return 0
	}
}

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// Points returns the counting value of the card.
func (c Card) Points() int { return PointsFor(c.Rank) }

func (c Card) String() string {
	return c.Suit.String() + " " + c.Rank.String()
}

const (
	// NumSeats is the number of players at the table.
	NumSeats = 4
	// HandSize is the number of cards dealt to each seat.
	HandSize = 8
	// DeckSize is the number of cards in the deck.
	DeckSize = NumSeats * HandSize
	// TotalPoints is the point value of the full deck.
	TotalPoints = 120
	// WinThreshold is the score the declaring side must strictly exceed.
	WinThreshold = 60
)

// NewDeck returns the 32-card deck in suit then rank order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Bells; s <= Acorns; s++ {
		for r := Seven; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Seat identifies a position at the table.
type Seat int

// Next returns the seat that follows in playing order.
func (s Seat) Next() Seat { return (s + 1) % NumSeats }

// Player holds the per-seat hand. Cards is a fixed slot array: a played
// card's slot becomes nil rather than being removed, so a slot index stays
// a stable handle for the lifetime of the deal.
type Player struct {
	Seat  Seat
	Cards []*Card
}

// CardsLeft counts the non-empty slots in the hand.
func (p *Player) CardsLeft() int {
	n := 0
	for _, c := range p.Cards {
		if c != nil {
			n++
		}
	}
	return n
}
