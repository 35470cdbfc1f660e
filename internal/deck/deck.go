// internal/deck/deck.go
package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmpty is the panic value raised by Pop on an empty deck. Drawing from an
// empty deck is a caller defect; card eligibility checks are expected to
// prevent it.
var ErrEmpty = errors.New("deck: pop from empty deck")

// Deck is a finite, ordered supply of items. Index 0 is the top of the deck.
type Deck[T any] struct {
	items []T
}

// New builds a deck whose top item is the first argument.
func New[T any](items ...T) *Deck[T] {
	d := &Deck[T]{items: make([]T, len(items))}
	copy(d.items, items)
	return d
}

// Remaining returns how many items are left.
func (d *Deck[T]) Remaining() int {
	return len(d.items)
}

// Pop removes and returns the top item. It panics with ErrEmpty if the deck is empty.
func (d *Deck[T]) Pop() T {
	if len(d.items) == 0 {
		panic(ErrEmpty)
	}
	top := d.items[0]
	var zero T
	d.items[0] = zero // drop the reference held by the backing array
	d.items = d.items[1:]
	return top
}

// Shuffle randomizes the deck order. A zero seed uses the current time.
func (d *Deck[T]) Shuffle(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(d.items), func(i, j int) {
		d.items[i], d.items[j] = d.items[j], d.items[i]
	})
}
