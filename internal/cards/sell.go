// internal/cards/sell.go
package cards

import (
	"context"
	"fmt"
)

// SellForListPlusN sells one of the player's cars back to the bank.
//
// The bonus n is part of the card's identity but is not added to the payout:
// the player is credited the car's list price only. That matches the rule as
// it has always been played; see DESIGN.md before changing it.
type SellForListPlusN struct {
	eligibility
	n int
}

func NewSellForListPlusN(n int) *SellForListPlusN {
	return &SellForListPlusN{eligibility: eligibility{canPlay: NeedsCar}, n: n}
}

func (c *SellForListPlusN) Kind() Kind { return KindSellForListPlusN }

// Bonus returns the configured n.
func (c *SellForListPlusN) Bonus() int { return c.n }

func (c *SellForListPlusN) Play(ctx context.Context, p Player, gs GameState, choices ChoiceProvider) error {
	car, err := choices.ChooseOwnCar(ctx, gs, p)
	if err != nil {
		return fmt.Errorf("%s: choose own car: %w", c.Kind(), err)
	}
	if car == nil || !p.HasCar(car) {
		return fmt.Errorf("%s: chosen car is not owned by the player: %w", c.Kind(), ErrInvalidChoice)
	}

	p.Credit(car.ListPrice)
	p.LoseCar(car)
	return nil
}
