// internal/cards/free.go
package cards

import "context"

// Free grants the top insurance of the insurance deck at no cost.
type Free struct{}

func NewFree() *Free { return &Free{} }

func (c *Free) Kind() Kind { return KindFree }

func (c *Free) CanPlay(_ Player, gs GameState) bool {
	return gs.InsuranceDeck().Remaining() > 0
}

// Play needs no choices, so choices may be nil.
func (c *Free) Play(_ context.Context, p Player, gs GameState, _ ChoiceProvider) error {
	p.GainInsurance(gs.InsuranceDeck().Pop())
	return nil
}
