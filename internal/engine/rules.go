package engine

import (
	"fmt"
	"sort"
	"strings"
)

// GameType selects which cards are trump for a deal.
type GameType int

const (
	Solo GameType = iota
	Wenz
	Geier
	Sau
)

func (t GameType) String() string {
	switch t {
	case Solo:
		return "Solo"
	case Wenz:
		return "Wenz"
	case Geier:
		return "Geier"
	case Sau:
		return "Sau"
	default:
		return fmt.Sprintf("GameType(%d)", int(t))
	}
}

// GameColor is the declared suit of a game. It mirrors Suit numbering and
// adds ColorLess for games played without a declared suit.
type GameColor int

const (
	ColorBells GameColor = iota
	ColorHearts
	ColorLeaves
	ColorAcorns
	ColorLess
)

func (c GameColor) String() string {
	if c == ColorLess {
		return "ColorLess"
	}
	return Suit(c).String()
}

// ExtraFlags are game modifiers. They are accepted and stored but have no
// effect on legality or scoring yet.
type ExtraFlags int

const (
	Normal ExtraFlags = iota
	Tout
	Sie
)

// ParseGameType resolves a game type by name.
func ParseGameType(s string) (GameType, error) {
	for _, t := range []GameType{Solo, Wenz, Geier, Sau} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown game type %q", ErrIllegalDeclaration, s)
}

// ParseGameColor resolves a game color by name.
func ParseGameColor(s string) (GameColor, error) {
	for _, c := range []GameColor{ColorBells, ColorHearts, ColorLeaves, ColorAcorns, ColorLess} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown game color %q", ErrIllegalDeclaration, s)
}

// Rules evaluates card legality and trick precedence for one declared game.
// It is immutable once constructed; every method is a pure function of the
// declaration and its inputs.
type Rules struct {
	Type  GameType
	Color GameColor
	Flags ExtraFlags
	Trump GameColor
}

// NewRules validates a declaration and derives its trump suit. Hearts is
// always trump in Sau, otherwise the declared color is.
func NewRules(gameType GameType, gameColor GameColor, flags ExtraFlags) (*Rules, error) {
	if gameColor == ColorLess && (gameType == Solo || gameType == Sau) {
		return nil, fmt.Errorf("%w: %s requires a color", ErrIllegalDeclaration, gameType)
	}
	if gameType == Sau && gameColor == ColorHearts {
		return nil, fmt.Errorf("%w: hearts cannot be the game color in Sau", ErrIllegalDeclaration)
	}
	trump := gameColor
	if gameType == Sau {
		trump = ColorHearts
	}
	return &Rules{Type: gameType, Color: gameColor, Flags: flags, Trump: trump}, nil
}

// TrumpValue returns a strictly ordered trump rank for the card, or 0 when
// the card is not trump. Queens sit above Jacks above plain trump suit
// cards; within each tier the suit (or rank, for plain trumps) decides.
func (r *Rules) TrumpValue(c Card) int {
	if c.Rank == Queen && r.Type != Wenz {
		return (int(c.Suit) + 1) << 24
	}
	if c.Rank == Jack && r.Type != Geier {
		return (int(c.Suit) + 1) << 16
	}
	if c.Suit == Suit(r.Trump) {
		return int(c.Rank) + 1
	}
	return 0
}

// IsTrump reports whether the card is trump under this declaration.
func (r *Rules) IsTrump(c Card) bool { return r.TrumpValue(c) != 0 }

// IsGameAce reports whether the card is the ace of the declared color.
func (r *Rules) IsGameAce(c Card) bool {
	return c.Rank == Ace && c.Suit == Suit(r.Color)
}

// IsHigherCard reports whether challenger beats the card currently winning
// the trick. Equal trump values fall back to a rank comparison, which only
// matters between two non-trump cards of the led suit.
func (r *Rules) IsHigherCard(winning, challenger Card) bool {
	winningValue := r.TrumpValue(winning)
	challengerValue := r.TrumpValue(challenger)

	if challengerValue > winningValue {
		return true
	}
	if challengerValue < winningValue {
		return false
	}
	if winning.Suit == challenger.Suit {
		return challenger.Rank > winning.Rank
	}
	return false
}

// IsCardAllowed reports whether the player may play the card into the trick.
func (r *Rules) IsCardAllowed(c Card, trick *Trick, p *Player) bool {
	if len(trick.Cards) == 0 {
		if r.Type != Sau || !r.PlayerHasGameAce(p) {
			return true
		}
		// The ace holder may not lead a plain card of the game color
		// other than the ace itself.
		if !r.IsTrump(c) && c.Suit == Suit(r.Color) && c.Rank != Ace {
			return false
		}
		return true
	}

	first := trick.Cards[0]

	if r.Type == Sau && r.PlayerHasGameAce(p) {
		// Game color led: the ace holder must surrender the ace.
		if first.Suit == Suit(r.Color) {
			return r.IsGameAce(c)
		}
		if r.IsGameAce(c) {
			return false
		}
	}

	if r.IsTrump(first) {
		if r.IsTrump(c) {
			return true
		}
		return !r.PlayerHasTrump(p)
	}

	if first.Suit == c.Suit && !r.IsTrump(c) {
		return true
	}
	return !r.PlayerHasColor(p, first.Suit)
}

// PlayerHasTrump reports whether the player still holds any trump.
func (r *Rules) PlayerHasTrump(p *Player) bool {
	for _, c := range p.Cards {
		if c != nil && r.IsTrump(*c) {
			return true
		}
	}
	return false
}

// PlayerHasColor reports whether the player holds a plain card of the suit.
// Trumps of that suit do not count for follow-suit purposes.
func (r *Rules) PlayerHasColor(p *Player, s Suit) bool {
	for _, c := range p.Cards {
		if c != nil && c.Suit == s && !r.IsTrump(*c) {
			return true
		}
	}
	return false
}

// PlayerColorCount counts the plain cards of the suit in the player's hand.
func (r *Rules) PlayerColorCount(p *Player, s Suit) int {
	n := 0
	for _, c := range p.Cards {
		if c != nil && c.Suit == s && !r.IsTrump(*c) {
			n++
		}
	}
	return n
}

// PlayerHasGameAce reports whether the player holds the ace of the declared
// color.
func (r *Rules) PlayerHasGameAce(p *Player) bool {
	for _, c := range p.Cards {
		if c != nil && r.IsGameAce(*c) {
			return true
		}
	}
	return false
}

// CardSortRank orders cards for hand display: trumps above everything in
// trump order, plain cards by rank then suit. Empty slots sort last. Not
// used for legality or trick resolution.
func (r *Rules) CardSortRank(c *Card) int {
	if c == nil {
		return -1
	}
	if tv := r.TrumpValue(*c); tv != 0 {
		return tv * 64
	}
	return int(c.Rank) + int(c.Suit)*8
}

// Compare orders two hand slots descending by display rank.
func (r *Rules) Compare(a, b *Card) int {
	return r.CardSortRank(b) - r.CardSortRank(a)
}

// SortCards orders the hand for display using the rules comparator. Slot
// indices are reassigned, so this is only safe between deals or for
// presentation copies.
func (p *Player) SortCards(r *Rules) {
	sort.SliceStable(p.Cards, func(i, j int) bool {
		return r.Compare(p.Cards[i], p.Cards[j]) < 0
	})
}
