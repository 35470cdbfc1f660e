// internal/cards/card.go
package cards

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jason-s-yu/carlot/internal/models"
)

// Kind names a card rule. It is the key used in scenario files.
type Kind string

const (
	KindSellForListPlusN        Kind = "sell_for_list_plus_n"
	KindBuyFromAutoExchangeForN Kind = "buy_from_auto_exchange_for_n"
	KindFree                    Kind = "free_insurance"
	KindAttack                  Kind = "attack"
)

// ErrInvalidChoice is returned by Play when the ChoiceProvider answers with
// something the rules do not allow, e.g. a car the player does not own.
var ErrInvalidChoice = errors.New("invalid choice")

// Card is a single rule: when it may be played and what it does.
//
// CanPlay must be side-effect free. Play may block on the ChoiceProvider and
// only mutates state after every choice it depends on has been answered. The
// caller must hold exclusive access to the player and game state for the
// duration of Play; cards do no locking.
type Card interface {
	Kind() Kind
	CanPlay(p Player, gs GameState) bool
	Play(ctx context.Context, p Player, gs GameState, choices ChoiceProvider) error
}

// Player is the bookkeeping a card needs from a player.
type Player interface {
	PlayerID() uuid.UUID
	Money() int
	Credit(amount int)
	Debit(amount int)
	Cars() []*models.Car
	GainCar(c *models.Car)
	LoseCar(c *models.Car)
	HasCar(c *models.Car) bool
	GainInsurance(i *models.Insurance)
	HasInsurance(i *models.Insurance) bool
}

// Deck is a finite supply of items. Pop must not be called when Remaining is 0.
type Deck[T any] interface {
	Remaining() int
	Pop() T
}

// GameState is the shared state cards read and mutate.
type GameState interface {
	Players() []Player
	CarDeck() Deck[*models.Car]
	InsuranceDeck() Deck[*models.Insurance]
}

// ChoiceProvider resolves decisions made by a human or a bot during Play.
// Each call may take arbitrarily long; cancellation and timeouts are carried
// by ctx and are the caller's business.
type ChoiceProvider interface {
	// ChooseOwnCar returns one of the cars owned by p.
	ChooseOwnCar(ctx context.Context, gs GameState, p Player) (*models.Car, error)
	// ChooseOpponentCar returns a car owned by some player other than p.
	ChooseOpponentCar(ctx context.Context, gs GameState, p Player) (*models.Car, error)
	// AllowBlockAttack asks the victim whether they block the attack. True means blocked.
	AllowBlockAttack(ctx context.Context, gs GameState, victim Player) (bool, error)
}
