// internal/cards/attack.go
package cards

import (
	"context"
	"fmt"

	"github.com/jason-s-yu/carlot/internal/models"
)

// Attack revokes an opponent's car unless the victim blocks it. The car is
// removed from play; nobody is compensated and nobody gains it.
type Attack struct {
	eligibility
}

func NewAttack() *Attack {
	return &Attack{eligibility: eligibility{canPlay: OpponentsHaveCar}}
}

func (c *Attack) Kind() Kind { return KindAttack }

func (c *Attack) Play(ctx context.Context, p Player, gs GameState, choices ChoiceProvider) error {
	car, err := choices.ChooseOpponentCar(ctx, gs, p)
	if err != nil {
		return fmt.Errorf("%s: choose opponent car: %w", c.Kind(), err)
	}
	victim := ownerOf(gs, car, p)
	if victim == nil {
		return fmt.Errorf("%s: chosen car is not owned by an opponent: %w", c.Kind(), ErrInvalidChoice)
	}

	blocked, err := choices.AllowBlockAttack(ctx, gs, victim)
	if err != nil {
		return fmt.Errorf("%s: ask victim to block: %w", c.Kind(), err)
	}
	if blocked {
		return nil
	}

	victim.LoseCar(car)
	return nil
}

// ownerOf finds the player other than attacker who owns car.
func ownerOf(gs GameState, car *models.Car, attacker Player) Player {
	if car == nil {
		return nil
	}
	for _, other := range gs.Players() {
		if other.PlayerID() == attacker.PlayerID() {
			continue
		}
		if other.HasCar(car) {
			return other
		}
	}
	return nil
}
