package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type PlayerStorage interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (domain.Player, error)
	AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error)
}

type TournamentStorage interface {
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
	GetTournament(ctx context.Context, id int) (domain.Tournament, error)
	CreateTournament(ctx context.Context, t domain.Tournament) (domain.Tournament, error)
	RegisterPlayers(ctx context.Context, tournamentID int, playerIDs []uuid.UUID) error
	ListTournamentPlayers(ctx context.Context, tournamentID int) ([]domain.Player, error)
}

type MatchStorage interface {
	ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, int64, error)
	GetMatch(ctx context.Context, id int) (domain.Match, error)
	CreateMatch(ctx context.Context, match domain.Match) (domain.Match, error)
	// UpdateMatchScore persists scores, state and winner of the match.
	UpdateMatchScore(ctx context.Context, match domain.Match) error
}
