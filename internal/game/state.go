// internal/game/state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/deck"
	"github.com/jason-s-yu/carlot/internal/models"
)

// State is the shared table: the seated players in turn order, the car deck
// (the auto exchange) and the insurance deck.
type State struct {
	ID uuid.UUID

	players       []*models.Player
	carDeck       *deck.Deck[*models.Car]
	insuranceDeck *deck.Deck[*models.Insurance]
}

// NewState seats the players in the given order. Nil decks are treated as empty.
func NewState(players []*models.Player, carDeck *deck.Deck[*models.Car], insuranceDeck *deck.Deck[*models.Insurance]) *State {
	if carDeck == nil {
		carDeck = deck.New[*models.Car]()
	}
	if insuranceDeck == nil {
		insuranceDeck = deck.New[*models.Insurance]()
	}
	seated := make([]*models.Player, len(players))
	copy(seated, players)
	return &State{
		ID:            uuid.New(),
		players:       seated,
		carDeck:       carDeck,
		insuranceDeck: insuranceDeck,
	}
}

// Players implements cards.GameState.
func (s *State) Players() []cards.Player {
	out := make([]cards.Player, len(s.players))
	for i, p := range s.players {
		out[i] = p
	}
	return out
}

// CarDeck implements cards.GameState.
func (s *State) CarDeck() cards.Deck[*models.Car] {
	return s.carDeck
}

// InsuranceDeck implements cards.GameState.
func (s *State) InsuranceDeck() cards.Deck[*models.Insurance] {
	return s.insuranceDeck
}

// Roster returns the concrete players in seating order.
func (s *State) Roster() []*models.Player {
	out := make([]*models.Player, len(s.players))
	copy(out, s.players)
	return out
}

// PlayerByID returns the seated player with the given ID, or nil.
func (s *State) PlayerByID(id uuid.UUID) *models.Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CarsRemaining and InsurancesRemaining report deck sizes without exposing the decks.
func (s *State) CarsRemaining() int       { return s.carDeck.Remaining() }
func (s *State) InsurancesRemaining() int { return s.insuranceDeck.Remaining() }
