package rating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBoard(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	board := NewBoard()

	board.Add([]uuid.UUID{a, b}, []uuid.UUID{c, d}, Win)

	assert.Equal(t, 1020, board.Elo(a))
	assert.Equal(t, 1020, board.Elo(b))
	assert.Equal(t, 980, board.Elo(c))
	assert.Equal(t, 980, board.Elo(d))
	assert.Equal(t, 1, board.Games(a))

	winner, wDev := board.Glicko(a)
	loser, _ := board.Glicko(c)
	assert.Greater(t, winner, loser)
	assert.Less(t, wDev, float64(glickoDeviation))

	unknown := uuid.New()
	assert.Equal(t, InitialElo, board.Elo(unknown))
	r, dev := board.Glicko(unknown)
	assert.Equal(t, float64(glickoRating), r)
	assert.Equal(t, float64(glickoDeviation), dev)
}

func TestBoard_IgnoresEmptyTeams(t *testing.T) {
	a := uuid.New()
	board := NewBoard()
	board.Add([]uuid.UUID{a}, nil, Win)
	assert.Equal(t, 0, board.Games(a))
	assert.Equal(t, InitialElo, board.Elo(a))
}
