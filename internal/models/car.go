package models

import "github.com/google/uuid"

// Car is a single car card. Cars are compared by ID, so two cars with the same
// name and prices are still distinct cards.
type Car struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ListPrice int       `json:"listPrice"` // price paid out when the car is sold at list
	Value     int       `json:"value"`     // current market value
}

// NewCar builds a car with a fresh random ID.
func NewCar(name string, listPrice, value int) *Car {
	return &Car{
		ID:        uuid.New(),
		Name:      name,
		ListPrice: listPrice,
		Value:     value,
	}
}
