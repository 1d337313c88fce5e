package rating

import (
	"github.com/google/uuid"
	glicko "github.com/zelenin/go-glicko2"
)

const (
	glickoRating     = 1500
	glickoDeviation  = 350
	glickoVolatility = 0.06
)

// Board accumulates Elo and Glicko-2 ratings over matches fed in chronological order.
// Each member of a team plays every member of the other team in Glicko-2 terms;
// in Elo terms the team is rated by its mean.
type Board struct {
	elo    map[uuid.UUID]int
	games  map[uuid.UUID]int
	glicko map[uuid.UUID]*glicko.Player
}

func NewBoard() *Board {
	return &Board{
		elo:    make(map[uuid.UUID]int),
		games:  make(map[uuid.UUID]int),
		glicko: make(map[uuid.UUID]*glicko.Player),
	}
}

// Add records one match; local scored pointsLocal, visitor the complement.
func (b *Board) Add(local []uuid.UUID, visitor []uuid.UUID, pointsLocal Points) {
	if len(local) == 0 || len(visitor) == 0 {
		return
	}
	b.addElo(local, visitor, pointsLocal)
	b.addGlicko(local, visitor, pointsLocal)
	for _, id := range local {
		b.games[id]++
	}
	for _, id := range visitor {
		b.games[id]++
	}
}

func (b *Board) addElo(local []uuid.UUID, visitor []uuid.UUID, pointsLocal Points) {
	localElo := TeamElo(b.ratings(local))
	visitorElo := TeamElo(b.ratings(visitor))
	b.shift(local, localElo, visitorElo, pointsLocal)
	b.shift(visitor, visitorElo, localElo, 1-pointsLocal)
}

func (b *Board) shift(team []uuid.UUID, own int, other int, points Points) {
	for _, id := range team {
		current := b.Elo(id)
		k := Coefficient(b.games[id], current)
		b.elo[id] = current + Elo(own, other, k, points) - own
	}
}

func (b *Board) ratings(ids []uuid.UUID) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.Elo(id))
	}
	return out
}

func (b *Board) addGlicko(local []uuid.UUID, visitor []uuid.UUID, pointsLocal Points) {
	period := glicko.NewRatingPeriod()
	for _, id := range append(append([]uuid.UUID{}, local...), visitor...) {
		period.AddPlayer(b.glickoPlayer(id))
	}
	result := glickoResult(pointsLocal)
	for _, l := range local {
		for _, v := range visitor {
			period.AddMatch(b.glickoPlayer(l), b.glickoPlayer(v), result)
		}
	}
	period.Calculate()
}

func glickoResult(p Points) glicko.MatchResult {
	switch p {
	case Win:
		return glicko.MATCH_RESULT_WIN
	case Lose:
		return glicko.MATCH_RESULT_LOSS
	}
	return glicko.MATCH_RESULT_DRAW
}

func (b *Board) glickoPlayer(id uuid.UUID) *glicko.Player {
	p, ok := b.glicko[id]
	if !ok {
		p = glicko.NewPlayer(glicko.NewRating(glickoRating, glickoDeviation, glickoVolatility))
		b.glicko[id] = p
	}
	return p
}

// Elo returns the player's rating, InitialElo when unrated.
func (b *Board) Elo(id uuid.UUID) int {
	r, ok := b.elo[id]
	if !ok {
		return InitialElo
	}
	return r
}

func (b *Board) Games(id uuid.UUID) int {
	return b.games[id]
}

// Glicko returns the rating and deviation of the player.
func (b *Board) Glicko(id uuid.UUID) (rating float64, deviation float64) {
	p, ok := b.glicko[id]
	if !ok {
		return glickoRating, glickoDeviation
	}
	return p.Rating().R(), p.Rating().Rd()
}
