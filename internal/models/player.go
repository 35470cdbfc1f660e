package models

import (
	"slices"

	"github.com/google/uuid"
)

// Player holds a player's money and the cars and insurances they own.
// It does no validation of its own; callers (the cards) check eligibility
// before mutating it.
type Player struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	money      int
	cars       []*Car
	insurances []*Insurance
}

// NewPlayer creates a player with a fresh ID and the given starting balance.
func NewPlayer(name string, money int) *Player {
	return &Player{
		ID:    uuid.New(),
		Name:  name,
		money: money,
	}
}

// PlayerID returns the player's ID.
func (p *Player) PlayerID() uuid.UUID {
	return p.ID
}

// Money returns the current balance.
func (p *Player) Money() int {
	return p.money
}

// Credit adds amount to the balance.
func (p *Player) Credit(amount int) {
	p.money += amount
}

// Debit subtracts amount from the balance. It does not check for a negative result.
func (p *Player) Debit(amount int) {
	p.money -= amount
}

// Cars returns a copy of the cars owned by the player.
func (p *Player) Cars() []*Car {
	return slices.Clone(p.cars)
}

// Insurances returns a copy of the insurances owned by the player.
func (p *Player) Insurances() []*Insurance {
	return slices.Clone(p.insurances)
}

// GainCar adds the car to the player's collection.
func (p *Player) GainCar(c *Car) {
	p.cars = append(p.cars, c)
}

// LoseCar removes the car from the player's collection. Losing a car the
// player does not own is a no-op.
func (p *Player) LoseCar(c *Car) {
	p.cars = slices.DeleteFunc(p.cars, func(owned *Car) bool {
		return owned.ID == c.ID
	})
}

// HasCar reports whether the player owns the car.
func (p *Player) HasCar(c *Car) bool {
	return slices.ContainsFunc(p.cars, func(owned *Car) bool {
		return owned.ID == c.ID
	})
}

// GainInsurance adds the insurance to the player's collection.
func (p *Player) GainInsurance(i *Insurance) {
	p.insurances = append(p.insurances, i)
}

// HasInsurance reports whether the player owns the insurance.
func (p *Player) HasInsurance(i *Insurance) bool {
	return slices.ContainsFunc(p.insurances, func(owned *Insurance) bool {
		return owned.ID == i.ID
	})
}

// String returns the player's name, or a short form of the ID when unnamed.
func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID.String()[:8]
}
