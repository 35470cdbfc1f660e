// internal/middleware/logging.go

package middleware

import (
	"context"
	"time"

	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/sirupsen/logrus"
)

// LogPlays wraps a card so every Play is logged with Logrus: the card kind,
// the acting player, the duration and the outcome. CanPlay is passed through
// untouched and never logged, so it stays side-effect free.
func LogPlays(logger *logrus.Logger) func(next cards.Card) cards.Card {
	return func(next cards.Card) cards.Card {
		return &loggedCard{Card: next, logger: logger}
	}
}

// Unwrap returns the card underneath any logging wrappers.
func Unwrap(c cards.Card) cards.Card {
	for {
		lc, ok := c.(*loggedCard)
		if !ok {
			return c
		}
		c = lc.Card
	}
}

type loggedCard struct {
	cards.Card
	logger *logrus.Logger
}

func (c *loggedCard) Play(ctx context.Context, p cards.Player, gs cards.GameState, choices cards.ChoiceProvider) error {
	start := time.Now()
	err := c.Card.Play(ctx, p, gs, choices)

	fields := logrus.Fields{
		"card":     c.Kind(),
		"player":   p.PlayerID(),
		"duration": time.Since(start),
		"money":    p.Money(),
	}
	if err != nil {
		fields["error"] = err
		c.logger.WithFields(fields).Warn("Card play failed")
		return err
	}
	c.logger.WithFields(fields).Info("Card played")
	return nil
}
