// internal/choice/scripted.go
package choice

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/models"
)

// ErrNoAnswer is returned when a Scripted provider runs out of queued answers.
var ErrNoAnswer = errors.New("choice: no scripted answer left")

// Call records one request made to a Scripted provider.
type Call struct {
	Method   string
	PlayerID uuid.UUID
}

// Scripted answers from queues filled ahead of time. Each answer is used once.
type Scripted struct {
	mu           sync.Mutex
	ownCars      []*models.Car
	opponentCars []*models.Car
	blocks       []bool
	calls        []Call

	// Err, when set, is returned by every call instead of an answer.
	Err error
}

func NewScripted() *Scripted {
	return &Scripted{}
}

// OwnCar queues answers for ChooseOwnCar.
func (s *Scripted) OwnCar(cars ...*models.Car) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownCars = append(s.ownCars, cars...)
	return s
}

// OpponentCar queues answers for ChooseOpponentCar.
func (s *Scripted) OpponentCar(cars ...*models.Car) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opponentCars = append(s.opponentCars, cars...)
	return s
}

// Block queues answers for AllowBlockAttack.
func (s *Scripted) Block(answers ...bool) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks = append(s.blocks, answers...)
	return s
}

// Calls returns every request made so far.
func (s *Scripted) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *Scripted) ChooseOwnCar(ctx context.Context, _ cards.GameState, p cards.Player) (*models.Car, error) {
	return next(ctx, s, "ChooseOwnCar", p, &s.ownCars)
}

func (s *Scripted) ChooseOpponentCar(ctx context.Context, _ cards.GameState, p cards.Player) (*models.Car, error) {
	return next(ctx, s, "ChooseOpponentCar", p, &s.opponentCars)
}

func (s *Scripted) AllowBlockAttack(ctx context.Context, _ cards.GameState, victim cards.Player) (bool, error) {
	return next(ctx, s, "AllowBlockAttack", victim, &s.blocks)
}

func next[T any](ctx context.Context, s *Scripted, method string, p cards.Player, queue *[]T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.calls = append(s.calls, Call{Method: method, PlayerID: p.PlayerID()})
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if s.Err != nil {
		return zero, s.Err
	}
	if len(*queue) == 0 {
		return zero, ErrNoAnswer
	}
	answer := (*queue)[0]
	*queue = (*queue)[1:]
	return answer, nil
}
