// Package rating computes player ratings from finished Truco matches.
package rating

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

const (
	InitialElo     = 1000
	provisionalCap = 30
	masterElo      = 2400
)

// Elo returns the new rating of a side rated ra after scoring sa against a side rated rb.
// k is the development coefficient, see Coefficient.
func Elo(ra int, rb int, k int, sa Points) int {
	expected := 1.0 / (1.0 + math.Pow(10, float64(rb-ra)/400.0))
	return int(math.Round(float64(ra) + float64(k)*(float64(sa)-expected)))
}

// Coefficient is 40 during the first games, 10 for master level and 20 otherwise.
func Coefficient(gamesPlayed int, rating int) int {
	if gamesPlayed <= provisionalCap {
		return 40
	}
	if rating >= masterElo {
		return 10
	}
	return 20
}

// TeamElo is the mean rating of the team members.
func TeamElo(ratings []int) int {
	if len(ratings) == 0 {
		return InitialElo
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return int(math.Round(float64(sum) / float64(len(ratings))))
}
