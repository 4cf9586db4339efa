package player

import (
	"errors"

	"schafkopf/internal/engine"
)

// FirstLegalBot plays the first legal card in hand order. It is the
// reference strategy, a placeholder rather than a serious opponent.
type FirstLegalBot struct {
	BotName string
}

func (b *FirstLegalBot) Name() string {
	if b.BotName == "" {
		b.BotName = "FirstLegalBot"
	}
	return b.BotName
}

func (b *FirstLegalBot) ChooseCard(rules *engine.Rules, trick *engine.Trick, seat *engine.Player) (int, error) {
	slots := legalSlots(rules, trick, seat)
	if len(slots) == 0 {
		return -1, errors.New("no playable card")
	}
	return slots[0], nil
}

func NewFirstLegalBot() Agent {
	return &FirstLegalBot{}
}
