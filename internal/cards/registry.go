// internal/cards/registry.go
package cards

import (
	"fmt"
	"slices"
)

// constructors maps each Kind to a builder taking the card's numeric parameter.
// Kinds without a parameter ignore it.
var constructors = map[Kind]func(amount int) Card{
	KindSellForListPlusN:        func(n int) Card { return NewSellForListPlusN(n) },
	KindBuyFromAutoExchangeForN: func(cost int) Card { return NewBuyFromAutoExchangeForN(cost) },
	KindFree:                    func(int) Card { return NewFree() },
	KindAttack:                  func(int) Card { return NewAttack() },
}

// New builds the card registered for kind.
func New(kind Kind, amount int) (Card, error) {
	build, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("unknown card kind %q", kind)
	}
	if amount < 0 {
		return nil, fmt.Errorf("card %q: amount must be non-negative, got %d", kind, amount)
	}
	return build(amount), nil
}

// Kinds lists the registered kinds in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// TakesAmount reports whether the kind uses its numeric parameter.
func TakesAmount(kind Kind) bool {
	return kind == KindSellForListPlusN || kind == KindBuyFromAutoExchangeForN
}

// Describe returns a short human readable summary of a card.
func Describe(c Card) string {
	switch card := c.(type) {
	case *SellForListPlusN:
		return fmt.Sprintf("sell one of your cars for list price (+%d)", card.Bonus())
	case *BuyFromAutoExchangeForN:
		return fmt.Sprintf("buy the top car of the auto exchange for %d", card.Cost())
	case *Free:
		return "take the top insurance for free"
	case *Attack:
		return "revoke an opponent's car unless they block"
	default:
		return string(c.Kind())
	}
}
