package cards

import (
	"context"
	"testing"

	"github.com/jason-s-yu/carlot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeCanPlay(t *testing.T) {
	me := models.NewPlayer("me", 0)

	empty := &stubState{insuranceDeck: &stubDeck[*models.Insurance]{remaining: 0}}
	assert.False(t, NewFree().CanPlay(me, empty))

	stocked := &stubState{insuranceDeck: &stubDeck[*models.Insurance]{remaining: 1}}
	assert.True(t, NewFree().CanPlay(me, stocked))
}

func TestFreeGivesInsurance(t *testing.T) {
	me := models.NewPlayer("me", 25)
	insurance := models.NewInsurance("collision")
	gs := &stubState{insuranceDeck: &stubDeck[*models.Insurance]{
		remaining: 1,
		pop:       func() *models.Insurance { return insurance },
	}}

	require.NoError(t, NewFree().Play(context.Background(), me, gs, nil))

	assert.True(t, me.HasInsurance(insurance))
	assert.Equal(t, 25, me.Money())
}
