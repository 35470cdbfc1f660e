// Package choice provides cards.ChoiceProvider implementations: scripted
// answers for tests and replays, a seeded random bot, and an interactive
// terminal prompt.
package choice

import (
	"errors"
	"os"

	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/models"
	"golang.org/x/term"
)

// ErrNoCandidates is returned when there is nothing legal to choose from.
var ErrNoCandidates = errors.New("choice: no cars to choose from")

// OpponentCars lists every car owned by a player other than p, in seating order.
func OpponentCars(gs cards.GameState, p cards.Player) []*models.Car {
	var out []*models.Car
	for _, other := range gs.Players() {
		if other.PlayerID() == p.PlayerID() {
			continue
		}
		out = append(out, other.Cars()...)
	}
	return out
}

// IsInteractive reports whether f is attached to a terminal, i.e. whether a
// Prompt reading from it has a human on the other end.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
