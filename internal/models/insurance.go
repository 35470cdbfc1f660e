package models

import "github.com/google/uuid"

// Insurance is an insurance policy card held by at most one player.
type Insurance struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewInsurance(name string) *Insurance {
	return &Insurance{ID: uuid.New(), Name: name}
}
