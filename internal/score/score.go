// Package score holds the Truco scoring rules applied to a match tanteador.
package score

// MaxPoints ends the match: the first team to reach it wins.
const MaxPoints = 30

// Apply adds delta to current keeping the result within [0, MaxPoints].
func Apply(current int, delta int) int {
	current = min(max(current, 0), MaxPoints)
	delta = min(max(delta, -MaxPoints), MaxPoints)
	v := current + delta
	if v < 0 {
		return 0
	}
	if v > MaxPoints {
		return MaxPoints
	}
	return v
}

// FaltaEnvido is the amount awarded to the team winning a falta envido:
// whatever the leading team still lacks to reach MaxPoints.
func FaltaEnvido(local int, visitor int) int {
	lead := max(local, visitor)
	if lead >= MaxPoints {
		return 0
	}
	return MaxPoints - lead
}

type Side int

const (
	None Side = iota
	Local
	Visitor
)

// Winner reports which side reached MaxPoints.
func Winner(local int, visitor int) Side {
	switch {
	case local >= MaxPoints && local > visitor:
		return Local
	case visitor >= MaxPoints && visitor > local:
		return Visitor
	}
	return None
}
