package player

import (
	"errors"
	"math/rand"
	"strconv"

	"schafkopf/internal/engine"
)

// RandomBot plays a uniformly random legal card.
type RandomBot struct {
	BotName string
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + strconv.Itoa(rand.Intn(100))
	}
	return b.BotName
}

func (b *RandomBot) ChooseCard(rules *engine.Rules, trick *engine.Trick, seat *engine.Player) (int, error) {
	slots := legalSlots(rules, trick, seat)
	if len(slots) == 0 {
		return -1, errors.New("no playable card")
	}
	return slots[rand.Intn(len(slots))], nil
}

func NewRandomBot() Agent {
	return &RandomBot{}
}
