// internal/cards/buy.go
package cards

import "context"

// BuyFromAutoExchangeForN buys the top car of the car deck for a fixed cost.
type BuyFromAutoExchangeForN struct {
	cost int
}

func NewBuyFromAutoExchangeForN(cost int) *BuyFromAutoExchangeForN {
	return &BuyFromAutoExchangeForN{cost: cost}
}

func (c *BuyFromAutoExchangeForN) Kind() Kind { return KindBuyFromAutoExchangeForN }

// Cost returns the fixed price of the car.
func (c *BuyFromAutoExchangeForN) Cost() int { return c.cost }

func (c *BuyFromAutoExchangeForN) CanPlay(p Player, gs GameState) bool {
	return p.Money() >= c.cost && gs.CarDeck().Remaining() > 0
}

// Play needs no choices, so choices may be nil.
func (c *BuyFromAutoExchangeForN) Play(_ context.Context, p Player, gs GameState, _ ChoiceProvider) error {
	car := gs.CarDeck().Pop()
	p.Debit(c.cost)
	p.GainCar(car)
	return nil
}
