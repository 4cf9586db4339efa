package engine

import "fmt"

// TrickSize is the number of cards in a completed trick.
const TrickSize = NumSeats

// Trick is one round of plays, led by Leader. Winner and WinningCard track
// the currently leading seat and the index of its card within Cards; they
// are meaningful once at least one card has been played.
type Trick struct {
	Leader      Seat
	Cards       []Card
	Winner      Seat
	WinningCard int
}

// NewTrick returns an empty trick led by the given seat.
func NewTrick(leader Seat) *Trick {
	return &Trick{Leader: leader, Cards: make([]Card, 0, TrickSize), WinningCard: -1}
}

// Complete reports whether the trick holds all four cards.
func (t *Trick) Complete() bool { return len(t.Cards) == TrickSize }

// Points returns the total counting value of the cards played so far.
func (t *Trick) Points() int {
	sum := 0
	for _, c := range t.Cards {
		sum += c.Points()
	}
	return sum
}

// Stack holds the completed tricks of the current deal plus the trick in
// progress. It is created at deal start and discarded on the next deal.
type Stack struct {
	Current   *Trick
	Completed []*Trick
}

// NewStack opens a stack whose first trick is led by the given seat.
func NewStack(leader Seat) *Stack {
	return &Stack{Current: NewTrick(leader)}
}

// Finalize archives the current trick and opens a new one led by
// nextLeader. Archiving an incomplete trick is an invariant violation.
func (s *Stack) Finalize(nextLeader Seat) error {
	if !s.Current.Complete() {
		return fmt.Errorf("%w: cannot finalize trick with %d cards", ErrInvariant, len(s.Current.Cards))
	}
	s.Completed = append(s.Completed, s.Current)
	s.Current = NewTrick(nextLeader)
	return nil
}

// Points sums each completed trick into the bucket of its winning seat.
// Over a full deal the buckets add up to TotalPoints.
func (s *Stack) Points() [NumSeats]int {
	var points [NumSeats]int
	for _, t := range s.Completed {
		points[t.Winner] += t.Points()
	}
	return points
}
