package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/metrics"
	"github.com/goserg/trucoserver/internal/teamdraw"
	"github.com/sirupsen/logrus"
)

const teamNameSeparator = " - "

type DrawRequest struct {
	// PlayerIDs are the players present; empty means every registered player.
	PlayerIDs    []uuid.UUID
	Mode         teamdraw.Mode
	TeamCount    int
	TeamSize     int
	ExcludeCount int
}

func (r DrawRequest) request(participants []teamdraw.Participant) teamdraw.Request {
	return teamdraw.Request{
		Participants: participants,
		Mode:         r.Mode,
		TeamCount:    r.TeamCount,
		TeamSize:     r.TeamSize,
		ExcludeCount: r.ExcludeCount,
	}
}

type DrawService struct {
	drawer      *teamdraw.Drawer
	players     *PlayerService
	tournaments *TournamentService
	matches     *MatchService
	metrics     *metrics.Metrics
	log         *logrus.Entry
}

func NewDrawService(
	d *teamdraw.Drawer,
	ps *PlayerService,
	ts *TournamentService,
	ms *MatchService,
	m *metrics.Metrics,
	l *logrus.Logger,
) *DrawService {
	return &DrawService{
		drawer:      d,
		players:     ps,
		tournaments: ts,
		matches:     ms,
		metrics:     m,
		log:         l.WithField("from", "draw-service"),
	}
}

// DrawLots runs the draw among players registered in the tournament.
func (s *DrawService) DrawLots(ctx context.Context, tournamentID int, req DrawRequest) (teamdraw.Result, error) {
	registered, err := s.tournaments.Players(ctx, tournamentID)
	if err != nil {
		return teamdraw.Result{}, err
	}
	byID := make(map[uuid.UUID]domain.Player, len(registered))
	for _, p := range registered {
		byID[p.ID] = p
	}
	present := registered
	if len(req.PlayerIDs) > 0 {
		present = make([]domain.Player, 0, len(req.PlayerIDs))
		for _, id := range req.PlayerIDs {
			p, ok := byID[id]
			if !ok {
				return teamdraw.Result{}, invalid("el jugador %s no está inscripto en el torneo %d", id, tournamentID)
			}
			present = append(present, p)
		}
	}
	return s.draw(present, req)
}

// DrawNames runs the draw among players looked up by name.
func (s *DrawService) DrawNames(ctx context.Context, names []string, req DrawRequest) (teamdraw.Result, error) {
	present := make([]domain.Player, 0, len(names))
	for _, name := range names {
		p, err := s.players.GetByName(ctx, name)
		if err != nil {
			return teamdraw.Result{}, err
		}
		present = append(present, p)
	}
	return s.draw(present, req)
}

func (s *DrawService) draw(present []domain.Player, req DrawRequest) (teamdraw.Result, error) {
	participants := make([]teamdraw.Participant, 0, len(present))
	for _, p := range present {
		participants = append(participants, teamdraw.Participant{ID: p.ID, Name: p.Name})
	}
	result, err := s.drawer.Draw(req.request(participants))
	if err != nil {
		return teamdraw.Result{}, err
	}
	s.metrics.Draw(req.Mode.String())
	s.log.WithFields(logrus.Fields{
		"mode":         req.Mode,
		"participants": len(participants),
		"teams":        len(result.Teams),
		"excluded":     len(result.Excluded),
	}).Info("lots drawn")
	return result, nil
}

// CreateMatchesFromDraw creates one match per pairing of drawn teams: 1 vs 2, 3 vs 4 and so on.
func (s *DrawService) CreateMatchesFromDraw(ctx context.Context, tournamentID int, date time.Time, result teamdraw.Result) ([]domain.Match, error) {
	pairs := teamdraw.Pairings(result)
	if len(pairs) == 0 {
		return nil, invalid("se necesitan al menos dos equipos")
	}
	created := make([]domain.Match, 0, len(pairs))
	for _, pair := range pairs {
		m, err := s.matches.CreateMatch(ctx, NewMatch{
			Date:             date,
			TournamentID:     tournamentID,
			LocalTeamName:    TeamName(pair[0]),
			LocalPlayerIDs:   memberIDs(pair[0]),
			VisitorTeamName:  TeamName(pair[1]),
			VisitorPlayerIDs: memberIDs(pair[1]),
		})
		if err != nil {
			return created, fmt.Errorf("equipos %d y %d: %w", pair[0].Index, pair[1].Index, err)
		}
		created = append(created, m)
	}
	return created, nil
}

// TeamName joins the member names the way drawn teams are labelled.
func TeamName(t teamdraw.Team) string {
	names := make([]string, 0, len(t.Members))
	for _, p := range t.Members {
		names = append(names, p.Name)
	}
	return strings.Join(names, teamNameSeparator)
}

func memberIDs(t teamdraw.Team) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Members))
	for _, p := range t.Members {
		ids = append(ids, p.ID)
	}
	return ids
}
