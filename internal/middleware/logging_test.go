package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/jason-s-yu/carlot/internal/cards"
	"github.com/jason-s-yu/carlot/internal/choice"
	"github.com/jason-s-yu/carlot/internal/deck"
	"github.com/jason-s-yu/carlot/internal/game"
	"github.com/jason-s-yu/carlot/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPlaysRecordsSuccess(t *testing.T) {
	logger, hook := test.NewNullLogger()
	me := models.NewPlayer("me", 0)
	gs := game.NewState([]*models.Player{me}, nil, deck.New(models.NewInsurance("theft")))

	card := LogPlays(logger)(cards.NewFree())
	assert.Equal(t, cards.KindFree, card.Kind())
	require.True(t, card.CanPlay(me, gs))
	assert.Empty(t, hook.AllEntries(), "CanPlay is never logged")

	require.NoError(t, card.Play(context.Background(), me, gs, nil))
	assert.Len(t, me.Insurances(), 1)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Card played", entry.Message)
	assert.Equal(t, cards.KindFree, entry.Data["card"])
	assert.Equal(t, me.ID, entry.Data["player"])
}

func TestLogPlaysRecordsFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	me := models.NewPlayer("me", 0)
	me.GainCar(models.NewCar("edsel", 10, 10))
	gs := game.NewState([]*models.Player{me}, nil, nil)
	down := errors.New("down")
	choices := choice.NewScripted()
	choices.Err = down

	card := LogPlays(logger)(cards.NewSellForListPlusN(5))
	err := card.Play(context.Background(), me, gs, choices)

	assert.ErrorIs(t, err, down)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, err, entry.Data["error"])
}

func TestUnwrap(t *testing.T) {
	logger, _ := test.NewNullLogger()
	inner := cards.NewSellForListPlusN(5)
	wrapped := LogPlays(logger)(LogPlays(logger)(inner))

	assert.Same(t, inner, Unwrap(wrapped))
	assert.Equal(t, "sell one of your cars for list price (+5)", cards.Describe(Unwrap(wrapped)))
}

func TestRefereedPlayLogsOnce(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	me := models.NewPlayer("me", 0)
	state := game.NewState([]*models.Player{me}, nil, deck.New(models.NewInsurance("theft")))
	ref := game.NewReferee(state, logger)

	require.NoError(t, ref.Play(context.Background(), me, LogPlays(logger)(cards.NewFree()), nil))

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Card played", entries[0].Message)
	assert.Len(t, ref.History(), 1)
}
