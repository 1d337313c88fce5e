package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/rating"
	"github.com/goserg/trucoserver/internal/storage"
	"github.com/sirupsen/logrus"
)

type TournamentService struct {
	tournaments storage.TournamentStorage
	matches     storage.MatchStorage
	log         *logrus.Entry
}

func NewTournamentService(ts storage.TournamentStorage, ms storage.MatchStorage, l *logrus.Logger) *TournamentService {
	return &TournamentService{
		tournaments: ts,
		matches:     ms,
		log:         l.WithField("from", "tournament-service"),
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, name string, createdBy string) (domain.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Tournament{}, invalid("el nombre del torneo no puede estar vacío")
	}
	t, err := s.tournaments.CreateTournament(ctx, domain.Tournament{
		Name:      name,
		CreatedBy: strings.TrimSpace(createdBy),
	})
	if err != nil {
		return domain.Tournament{}, err
	}
	t.Matches = []domain.Match{}
	return t, nil
}

// ListTournaments returns every tournament with its matches, newest match first.
func (s *TournamentService) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	tournaments, err := s.tournaments.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	matches, _, err := s.matches.ListMatches(ctx, domain.MatchFilter{})
	if err != nil {
		return nil, err
	}
	byTournament := make(map[int][]domain.Match)
	for _, m := range matches {
		byTournament[m.TournamentID] = append(byTournament[m.TournamentID], m)
	}
	for i := range tournaments {
		tournaments[i].Matches = byTournament[tournaments[i].ID]
		if tournaments[i].Matches == nil {
			tournaments[i].Matches = []domain.Match{}
		}
	}
	return tournaments, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id int) (domain.Tournament, error) {
	t, err := s.tournaments.GetTournament(ctx, id)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("torneo %d: %w", id, err)
	}
	t.Matches, _, err = s.matches.ListMatches(ctx, domain.MatchFilter{TournamentID: id})
	if err != nil {
		return domain.Tournament{}, err
	}
	return t, nil
}

func (s *TournamentService) RegisterPlayers(ctx context.Context, id int, playerIDs []uuid.UUID) error {
	if len(playerIDs) == 0 {
		return invalid("no hay jugadores para inscribir")
	}
	if _, err := s.tournaments.GetTournament(ctx, id); err != nil {
		return fmt.Errorf("torneo %d: %w", id, err)
	}
	err := s.tournaments.RegisterPlayers(ctx, id, playerIDs)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"tournament": id,
		"players":    len(playerIDs),
	}).Info("players registered")
	return nil
}

func (s *TournamentService) Players(ctx context.Context, id int) ([]domain.Player, error) {
	if _, err := s.tournaments.GetTournament(ctx, id); err != nil {
		return nil, fmt.Errorf("torneo %d: %w", id, err)
	}
	return s.tournaments.ListTournamentPlayers(ctx, id)
}

// Standings ranks every player of the tournament by wins, then win rate, then Elo.
// Only finished matches count.
func (s *TournamentService) Standings(ctx context.Context, id int) ([]domain.Standing, error) {
	players, err := s.Players(ctx, id)
	if err != nil {
		return nil, err
	}
	matches, _, err := s.matches.ListMatches(ctx, domain.MatchFilter{
		TournamentID: id,
		State:        domain.StateFinished,
		Ascending:    true,
	})
	if err != nil {
		return nil, err
	}

	standings := make(map[uuid.UUID]*domain.Standing, len(players))
	order := make([]uuid.UUID, 0, len(players))
	entry := func(p domain.Player) *domain.Standing {
		st, ok := standings[p.ID]
		if !ok {
			st = &domain.Standing{Player: p}
			standings[p.ID] = st
			order = append(order, p.ID)
		}
		return st
	}
	for _, p := range players {
		entry(p)
	}

	board := rating.NewBoard()
	for _, m := range matches {
		if m.Winner == nil {
			continue
		}
		pointsLocal := rating.Lose
		if *m.Winner == domain.SideLocal {
			pointsLocal = rating.Win
		}
		board.Add(playerIDs(m.Local.Players), playerIDs(m.Visitor.Players), pointsLocal)
		for _, side := range []domain.Side{domain.SideLocal, domain.SideVisitor} {
			for _, p := range m.Slot(side).Players {
				st := entry(p)
				st.Played++
				if side == *m.Winner {
					st.Won++
				} else {
					st.Lost++
				}
			}
		}
	}

	result := make([]domain.Standing, 0, len(order))
	for _, pid := range order {
		st := standings[pid]
		st.WinRate = winRate(st.Won, st.Played)
		st.Elo = board.Elo(pid)
		r, rd := board.Glicko(pid)
		st.Glicko = domain.Glicko2{Rating: r, Deviation: rd}
		result = append(result, *st)
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Won != b.Won {
			return a.Won > b.Won
		}
		ra, rb := ratio(a.Won, a.Played), ratio(b.Won, b.Played)
		if ra != rb {
			return ra > rb
		}
		return a.Elo > b.Elo
	})
	for i := range result {
		result[i].Rank = i + 1
	}
	return result, nil
}

func playerIDs(players []domain.Player) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return ids
}

func ratio(won int, played int) float64 {
	if played == 0 {
		return 0
	}
	return float64(won) / float64(played)
}

func winRate(won int, played int) string {
	return fmt.Sprintf("%.2f%%", ratio(won, played)*100)
}
