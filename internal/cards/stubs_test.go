package cards

import (
	"context"

	"github.com/jason-s-yu/carlot/internal/models"
)

// stubDeck mimics the bare {remaining, pop} objects card tests are written against.
type stubDeck[T any] struct {
	remaining int
	pop       func() T
	pops      int
}

func (d *stubDeck[T]) Remaining() int { return d.remaining }

func (d *stubDeck[T]) Pop() T {
	d.pops++
	if d.remaining > 0 {
		d.remaining--
	}
	return d.pop()
}

type stubState struct {
	players       []Player
	carDeck       *stubDeck[*models.Car]
	insuranceDeck *stubDeck[*models.Insurance]
}

func (s *stubState) Players() []Player { return s.players }

func (s *stubState) CarDeck() Deck[*models.Car] {
	if s.carDeck == nil {
		return &stubDeck[*models.Car]{}
	}
	return s.carDeck
}

func (s *stubState) InsuranceDeck() Deck[*models.Insurance] {
	if s.insuranceDeck == nil {
		return &stubDeck[*models.Insurance]{}
	}
	return s.insuranceDeck
}

func newState(players ...*models.Player) *stubState {
	s := &stubState{}
	for _, p := range players {
		s.players = append(s.players, p)
	}
	return s
}

// stubChoices answers with fixed functions; a nil function fails the test by panicking.
type stubChoices struct {
	ownCar      func() (*models.Car, error)
	opponentCar func() (*models.Car, error)
	block       func(victim Player) (bool, error)

	blockAsked []Player
}

func (c *stubChoices) ChooseOwnCar(context.Context, GameState, Player) (*models.Car, error) {
	return c.ownCar()
}

func (c *stubChoices) ChooseOpponentCar(context.Context, GameState, Player) (*models.Car, error) {
	return c.opponentCar()
}

func (c *stubChoices) AllowBlockAttack(_ context.Context, _ GameState, victim Player) (bool, error) {
	c.blockAsked = append(c.blockAsked, victim)
	return c.block(victim)
}

func playerWithCars(money int, names ...string) *models.Player {
	p := models.NewPlayer("", money)
	for _, n := range names {
		p.GainCar(models.NewCar(n, 1, 1))
	}
	return p
}
