package player

import "schafkopf/internal/engine"

// Agent decides which card a computer-controlled seat plays. ChooseCard
// must return the slot index of a card that is legal for the given trick;
// the game rejects anything else.
type Agent interface {
	Name() string
	ChooseCard(rules *engine.Rules, trick *engine.Trick, seat *engine.Player) (int, error)
}

type AgentFactory func() Agent

// legalSlots lists the hand slots the seat may legally play.
func legalSlots(rules *engine.Rules, trick *engine.Trick, seat *engine.Player) []int {
	var slots []int
	for i, c := range seat.Cards {
		if c != nil && rules.IsCardAllowed(*c, trick, seat) {
			slots = append(slots, i)
		}
	}
	return slots
}
