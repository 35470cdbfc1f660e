// internal/choice/random.go
package choice

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/models"
)

// Random is a bot that picks uniformly among the legal cars and blocks
// attacks with probability BlockChance.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand

	BlockChance float64
}

// NewRandom builds a bot. A zero seed uses the current time.
func NewRandom(seed int64, blockChance float64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rng:         rand.New(rand.NewSource(seed)),
		BlockChance: blockChance,
	}
}

func (r *Random) ChooseOwnCar(ctx context.Context, _ cards.GameState, p cards.Player) (*models.Car, error) {
	return r.pick(ctx, p.Cars())
}

func (r *Random) ChooseOpponentCar(ctx context.Context, gs cards.GameState, p cards.Player) (*models.Car, error) {
	return r.pick(ctx, OpponentCars(gs, p))
}

func (r *Random) AllowBlockAttack(ctx context.Context, _ cards.GameState, _ cards.Player) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64() < r.BlockChance, nil
}

// Intn exposes the bot's random source so a driver can pick cards with the same seed.
func (r *Random) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *Random) pick(ctx context.Context, candidates []*models.Car) (*models.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates[r.Intn(len(candidates))], nil
}
