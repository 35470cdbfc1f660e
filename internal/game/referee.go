// internal/game/referee.go
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrIneligible is returned when a card is played while CanPlay is false.
	ErrIneligible = errors.New("card cannot be played now")
	// ErrUnknownPlayer is returned when the acting player is not seated at the table.
	ErrUnknownPlayer = errors.New("player is not seated at this table")
)

// PlayRecord describes one attempted play, in the order the referee saw them.
type PlayRecord struct {
	Index    int           `json:"index"`
	PlayerID uuid.UUID     `json:"playerId"`
	Kind     cards.Kind    `json:"kind"`
	Err      string        `json:"err,omitempty"`
	Duration time.Duration `json:"duration"`
	At       time.Time     `json:"at"`
}

// Referee is the boundary between a turn loop and the cards. It checks CanPlay
// before Play and serializes plays on its State, which the cards themselves
// never do. It logs rejected plays; outcomes go to History, and to the log
// when the cards are wrapped with middleware.LogPlays.
type Referee struct {
	mu     sync.Mutex
	state  *State
	logger *logrus.Logger

	// ChoiceTimeout bounds how long a single play may wait on its choices.
	// Zero means no limit.
	ChoiceTimeout time.Duration

	history []PlayRecord
}

// NewReferee wraps state. A nil logger discards output.
func NewReferee(state *State, logger *logrus.Logger) *Referee {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Referee{state: state, logger: logger}
}

// State returns the table being refereed.
func (r *Referee) State() *State {
	return r.state
}

// Playable returns the cards in hand that p may play right now.
func (r *Referee) Playable(p *models.Player, hand []cards.Card) []cards.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []cards.Card
	for _, c := range hand {
		if c.CanPlay(p, r.state) {
			out = append(out, c)
		}
	}
	return out
}

// Play checks the card is legal for p and then plays it. The table stays
// locked until the card resolves, including while it waits on choices.
func (r *Referee) Play(ctx context.Context, p *models.Player, c cards.Card, choices cards.ChoiceProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields := logrus.Fields{
		"game":   r.state.ID,
		"player": p.ID,
		"card":   c.Kind(),
	}

	if r.state.PlayerByID(p.ID) == nil {
		r.logger.WithFields(fields).Warn("Rejected play from unseated player")
		return fmt.Errorf("play %s: %w", c.Kind(), ErrUnknownPlayer)
	}
	if !c.CanPlay(p, r.state) {
		r.logger.WithFields(fields).Debug("Rejected ineligible play")
		return fmt.Errorf("play %s: %w", c.Kind(), ErrIneligible)
	}

	if r.ChoiceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.ChoiceTimeout)
		defer cancel()
	}

	start := time.Now()
	err := c.Play(ctx, p, r.state, choices)
	rec := PlayRecord{
		Index:    len(r.history) + 1,
		PlayerID: p.ID,
		Kind:     c.Kind(),
		Duration: time.Since(start),
		At:       start,
	}
	if err != nil {
		rec.Err = err.Error()
	}
	r.history = append(r.history, rec)
	return err
}

// History returns a copy of every play attempt that reached the card.
func (r *Referee) History() []PlayRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PlayRecord, len(r.history))
	copy(out, r.history)
	return out
}
