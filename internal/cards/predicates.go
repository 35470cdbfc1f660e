// internal/cards/predicates.go
package cards

// Predicate is a reusable CanPlay check. Cards sharing an eligibility rule
// delegate CanPlay to the same Predicate instead of repeating it.
type Predicate func(p Player, gs GameState) bool

// NeedsCar is true when the player owns at least one car.
func NeedsCar(p Player, _ GameState) bool {
	return len(p.Cars()) > 0
}

// OpponentsHaveCar is true when any other player owns at least one car.
func OpponentsHaveCar(p Player, gs GameState) bool {
	for _, other := range gs.Players() {
		if other.PlayerID() == p.PlayerID() {
			continue
		}
		if len(other.Cars()) > 0 {
			return true
		}
	}
	return false
}

// eligibility lets a card take its CanPlay from a shared Predicate.
type eligibility struct {
	canPlay Predicate
}

func (e eligibility) CanPlay(p Player, gs GameState) bool {
	return e.canPlay(p, gs)
}
