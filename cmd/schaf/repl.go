package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"schafkopf/internal/engine"
	"schafkopf/internal/player"
)

const humanSeat engine.Seat = 0

type repl struct {
	game *engine.Game
	bots map[engine.Seat]player.Agent
}

func runREPL() {
	r := &repl{
		game: engine.NewGame(),
		bots: map[engine.Seat]player.Agent{
			1: player.NewFirstLegalBot(),
			2: player.NewFirstLegalBot(),
			3: player.NewFirstLegalBot(),
		},
	}

	pterm.Println("Schafkopf. Commands: start, game <type> <color>, play <slot>, playable, print, score, quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		pterm.Print("SCHAF> ")
		if !scanner.Scan() {
			return
		}
		if !r.dispatch(strings.Fields(scanner.Text())) {
			return
		}
	}
}

// dispatch runs one command; it returns false to quit.
func (r *repl) dispatch(args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "start":
		r.game.Start()
		r.print()
	case "game":
		if len(args) < 2 {
			pterm.Warning.Println("usage: game <type> [color]")
			return true
		}
		r.declare(args[1:])
	case "play":
		if len(args) < 2 {
			pterm.Warning.Println("usage: play <slot>")
			return true
		}
		r.play(args[1])
	case "playable":
		r.printPlayable()
	case "print":
		r.print()
	case "score":
		pterm.Printfln("Declaring side holds %d points", r.game.DeclarerPoints())
	case "quit", "exit":
		return false
	default:
		pterm.Warning.Printfln("unknown command %q", args[0])
	}
	return true
}

func (r *repl) declare(args []string) {
	gameType, err := engine.ParseGameType(args[0])
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	color := engine.ColorLess
	if len(args) > 1 {
		if color, err = engine.ParseGameColor(args[1]); err != nil {
			pterm.Error.Println(err)
			return
		}
	}

	if err := r.game.SetGameType(gameType, color, humanSeat, engine.Normal); err != nil {
		pterm.Error.Println(err)
		return
	}
	r.game.Players[humanSeat].SortCards(r.game.Rules())
	pterm.Printfln("New game: %s %s", gameType, color)

	if r.game.CurrentPlayer() != humanSeat {
		r.botPlay()
	}
	r.printPlayable()
}

func (r *repl) play(arg string) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		pterm.Error.Printfln("not a slot: %q", arg)
		return
	}
	p := r.game.Players[humanSeat]
	if r.game.CurrentPlayer() != humanSeat {
		pterm.Warning.Println("not your turn")
		return
	}
	if slot < 0 || slot >= len(p.Cards) || p.Cards[slot] == nil {
		pterm.Error.Println("no card at that slot")
		return
	}
	card := *p.Cards[slot]
	if err := r.game.PlayCard(slot); err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Printfln("You play %s", cardString(card))
	r.reportTrick()
	r.botPlay()
}

// botPlay drives the computer seats until the human is up or the deal ends.
func (r *repl) botPlay() {
	g := r.game
	for g.Rules() != nil && g.Winner() == engine.Undetermined && g.CurrentPlayer() != humanSeat {
		seat := g.CurrentPlayer()
		idx, err := r.bots[seat].ChooseCard(g.Rules(), g.CurrentTrick(), g.Players[seat])
		if err != nil {
			pterm.Error.Printfln("seat %d: %v", seat, err)
			return
		}
		card := *g.Players[seat].Cards[idx]
		if err := g.PlayCard(idx); err != nil {
			pterm.Error.Printfln("seat %d: %v", seat, err)
			return
		}
		pterm.Printfln("Seat %d plays %s", seat, cardString(card))
		r.reportTrick()
	}
}

func (r *repl) reportTrick() {
	g := r.game
	if t := g.PreviousTrick(); t != nil && len(g.CurrentTrick().Cards) == 0 && g.Winner() == engine.Undetermined {
		pterm.Printfln("Seat %d takes the trick", t.Winner)
	}
	switch g.Winner() {
	case engine.DeclarersWon:
		pterm.Success.Printfln("Declaring side wins with %d points", g.DeclarerPoints())
	case engine.DeclarersLost:
		pterm.Error.Printfln("Declaring side loses with %d points", g.DeclarerPoints())
	}
}

func (r *repl) print() {
	g := r.game
	if rules := g.Rules(); rules != nil {
		pterm.Printfln("Current game: %s %s", rules.Type, rules.Color)
	}
	pterm.Printfln("Current player: seat %d", g.CurrentPlayer())
	p := g.Players[humanSeat]
	for i, c := range p.Cards {
		if c == nil {
			pterm.Printfln("  %d: -", i)
			continue
		}
		pterm.Printfln("  %d: %s", i, cardString(*c))
	}
}

func (r *repl) printPlayable() {
	for i, c := range r.game.PlayableCards() {
		if c != nil {
			pterm.Printfln("  %d: %s", i, cardString(*c))
		}
	}
}

func cardString(c engine.Card) string {
	name := c.Suit.String() + " " + c.Rank.String()
	switch c.Suit {
	case engine.Bells:
		return pterm.Yellow(name)
	case engine.Hearts:
		return pterm.LightRed(name)
	case engine.Leaves:
		return pterm.Green(name)
	default:
		return pterm.LightWhite(name)
	}
}
