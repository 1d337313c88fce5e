package domain

import (
	"time"

	"github.com/google/uuid"
)

type MatchState int

const (
	StatePending MatchState = iota + 1
	StateInProgress
	StateFinished
	StateCanceled
)

func (s MatchState) String() string {
	switch s {
	case StatePending:
		return "Pendiente"
	case StateInProgress:
		return "En progreso"
	case StateFinished:
		return "Finalizado"
	case StateCanceled:
		return "Cancelado"
	}
	return "Desconocido"
}

func (s MatchState) Valid() bool {
	return s >= StatePending && s <= StateCanceled
}

type Side string

const (
	SideLocal   Side = "local"
	SideVisitor Side = "visitor"
)

type TeamSlot struct {
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Players []Player `json:"players"`
}

type Match struct {
	ID             int        `json:"id"`
	TournamentID   int        `json:"tournamentId"`
	TournamentName string     `json:"tournamentName"`
	Date           time.Time  `json:"date"`
	Local          TeamSlot   `json:"local"`
	Visitor        TeamSlot   `json:"visitor"`
	State          MatchState `json:"stateId"`
	Winner         *Side      `json:"winner"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Slot returns the team playing on side.
func (m *Match) Slot(side Side) *TeamSlot {
	if side == SideLocal {
		return &m.Local
	}
	return &m.Visitor
}

// Plays reports the side the player is on, if any.
func (m Match) Plays(id uuid.UUID) (Side, bool) {
	for _, p := range m.Local.Players {
		if p.ID == id {
			return SideLocal, true
		}
	}
	for _, p := range m.Visitor.Players {
		if p.ID == id {
			return SideVisitor, true
		}
	}
	return "", false
}

type MatchFilter struct {
	State        MatchState
	TournamentID int
	Page         int
	Size         int
	Ascending    bool
}
