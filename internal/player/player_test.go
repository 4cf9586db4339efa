package player

import (
	"testing"

	"schafkopf/internal/engine"
)

func testHand(cards ...engine.Card) *engine.Player {
	p := &engine.Player{}
	for i := range cards {
		c := cards[i]
		p.Cards = append(p.Cards, &c)
	}
	return p
}

func testRules(t *testing.T) *engine.Rules {
	t.Helper()
	r, err := engine.NewRules(engine.Solo, engine.ColorHearts, engine.Normal)
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	return r
}

func TestFirstLegalBotFollowsSuit(t *testing.T) {
	r := testRules(t)
	seat := testHand(
		engine.Card{Suit: engine.Acorns, Rank: engine.Ace},
		engine.Card{Suit: engine.Bells, Rank: engine.Nine},
		engine.Card{Suit: engine.Bells, Rank: engine.King},
	)
	trick := engine.NewTrick(0)
	trick.Cards = append(trick.Cards, engine.Card{Suit: engine.Bells, Rank: engine.Seven})

	bot := NewFirstLegalBot()
	idx, err := bot.ChooseCard(r, trick, seat)
	if err != nil {
		t.Fatalf("ChooseCard: %v", err)
	}
	if idx != 1 {
		t.Fatalf("slot = %d, want 1 (first bells card)", idx)
	}
}

func TestFirstLegalBotSkipsEmptySlots(t *testing.T) {
	r := testRules(t)
	seat := testHand(
		engine.Card{Suit: engine.Bells, Rank: engine.Nine},
		engine.Card{Suit: engine.Leaves, Rank: engine.King},
	)
	seat.Cards[0] = nil
	trick := engine.NewTrick(0)

	bot := NewFirstLegalBot()
	idx, err := bot.ChooseCard(r, trick, seat)
	if err != nil {
		t.Fatalf("ChooseCard: %v", err)
	}
	if idx != 1 {
		t.Fatalf("slot = %d, want 1", idx)
	}
}

func TestRandomBotChoosesLegalCard(t *testing.T) {
	r := testRules(t)
	seat := testHand(
		engine.Card{Suit: engine.Acorns, Rank: engine.Ace},
		engine.Card{Suit: engine.Bells, Rank: engine.Nine},
		engine.Card{Suit: engine.Hearts, Rank: engine.Jack},
	)
	trick := engine.NewTrick(0)
	trick.Cards = append(trick.Cards, engine.Card{Suit: engine.Hearts, Rank: engine.Ten})

	bot := NewRandomBot()
	for i := 0; i < 20; i++ {
		idx, err := bot.ChooseCard(r, trick, seat)
		if err != nil {
			t.Fatalf("ChooseCard: %v", err)
		}
		if idx != 2 {
			t.Fatalf("slot = %d, want 2 (only trump is legal)", idx)
		}
	}
}

func TestAgentsCompleteADeal(t *testing.T) {
	factories := []AgentFactory{NewFirstLegalBot, NewRandomBot}
	for _, factory := range factories {
		g := engine.NewGame()
		g.Start()
		if err := g.SetGameType(engine.Solo, engine.ColorHearts, 0, engine.Normal); err != nil {
			t.Fatalf("declaration: %v", err)
		}
		agents := [engine.NumSeats]Agent{factory(), factory(), factory(), factory()}
		for g.Winner() == engine.Undetermined {
			seat := g.CurrentPlayer()
			idx, err := agents[seat].ChooseCard(g.Rules(), g.CurrentTrick(), g.Players[seat])
			if err != nil {
				t.Fatalf("%s: %v", agents[seat].Name(), err)
			}
			if err := g.PlayCard(idx); err != nil {
				t.Fatalf("%s played an illegal card: %v", agents[seat].Name(), err)
			}
		}
	}
}
