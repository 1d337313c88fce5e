// Package teamdraw implements "tirar reyes": random team formation out of the
// players present, or picking who sits out.
package teamdraw

import (
	"errors"
	"math/rand/v2"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

var (
	ErrInsufficientParticipants = errors.New("not enough participants for the requested draw")
	ErrDuplicateParticipant     = errors.New("participant listed more than once")
	ErrUnknownMode              = errors.New("unknown draw mode")
)

type Mode int

const (
	FormTeams Mode = iota + 1
	ExcludeSubset
)

func (m Mode) String() string {
	switch m {
	case FormTeams:
		return "form_teams"
	case ExcludeSubset:
		return "exclude_subset"
	}
	return "unknown"
}

type Participant struct {
	ID   uuid.UUID
	Name string
}

type Request struct {
	Participants []Participant
	Mode         Mode

	// FormTeams
	TeamCount int
	TeamSize  int

	// ExcludeSubset
	ExcludeCount int
}

type Team struct {
	Index   int
	Members []Participant
}

type Result struct {
	Teams    []Team
	Excluded []Participant
}

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

type Drawer struct {
	src Source
}

// New returns a drawer using src, or a runtime-seeded generator when src is nil.
func New(src Source) *Drawer {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Drawer{src: src}
}

// Shuffle permutes p in place with Fisher–Yates.
func Shuffle(src Source, p []Participant) {
	for i := len(p) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

func (d *Drawer) Draw(req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}
	pool := make([]Participant, len(req.Participants))
	copy(pool, req.Participants)
	Shuffle(d.src, pool)

	switch req.Mode {
	case FormTeams:
		teams := make([]Team, 0, req.TeamCount)
		for i := 0; i < req.TeamCount; i++ {
			members := make([]Participant, req.TeamSize)
			copy(members, pool[i*req.TeamSize:(i+1)*req.TeamSize])
			teams = append(teams, Team{Index: i + 1, Members: members})
		}
		var excluded []Participant
		if rest := pool[req.TeamCount*req.TeamSize:]; len(rest) > 0 {
			excluded = rest
		}
		return Result{Teams: teams, Excluded: excluded}, nil
	default:
		return Result{
			Teams:    []Team{},
			Excluded: pool[:req.ExcludeCount],
		}, nil
	}
}

func validate(req Request) error {
	seen := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, p := range req.Participants {
		if !seen.Add(p.ID) {
			return ErrDuplicateParticipant
		}
	}
	n := len(req.Participants)
	switch req.Mode {
	case FormTeams:
		if req.TeamCount < 1 || req.TeamSize < 1 || req.TeamSize > n/req.TeamCount {
			return ErrInsufficientParticipants
		}
	case ExcludeSubset:
		if req.ExcludeCount < 1 || n <= req.ExcludeCount {
			return ErrInsufficientParticipants
		}
	default:
		return ErrUnknownMode
	}
	return nil
}

// Pairings matches team 1 against team 2, team 3 against team 4 and so on.
// An odd last team stays unpaired.
func Pairings(r Result) [][2]Team {
	var pairs [][2]Team
	for i := 0; i+1 < len(r.Teams); i += 2 {
		pairs = append(pairs, [2]Team{r.Teams[i], r.Teams[i+1]})
	}
	return pairs
}
