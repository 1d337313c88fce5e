package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/metrics"
	"github.com/goserg/trucoserver/internal/score"
	"github.com/goserg/trucoserver/internal/storage"
	"github.com/sirupsen/logrus"
)

type NewMatch struct {
	Date             time.Time
	TournamentID     int
	LocalTeamName    string
	LocalPlayerIDs   []uuid.UUID
	VisitorTeamName  string
	VisitorPlayerIDs []uuid.UUID
}

func (n NewMatch) Validate() error {
	var err error
	if n.TournamentID <= 0 {
		err = errors.Join(err, invalid("falta el torneo"))
	}
	if strings.TrimSpace(n.LocalTeamName) == "" || strings.TrimSpace(n.VisitorTeamName) == "" {
		err = errors.Join(err, invalid("los dos equipos necesitan nombre"))
	}
	if len(n.LocalPlayerIDs) == 0 || len(n.VisitorPlayerIDs) == 0 {
		err = errors.Join(err, invalid("los dos equipos necesitan jugadores"))
	}
	seen := make(map[uuid.UUID]struct{}, len(n.LocalPlayerIDs)+len(n.VisitorPlayerIDs))
	for _, id := range append(append([]uuid.UUID{}, n.LocalPlayerIDs...), n.VisitorPlayerIDs...) {
		if _, ok := seen[id]; ok {
			err = errors.Join(err, invalid("el jugador %s está repetido", id))
			break
		}
		seen[id] = struct{}{}
	}
	return err
}

type MatchService struct {
	matches  storage.MatchStorage
	players  *PlayerService
	metrics  *metrics.Metrics
	pageSize int
	log      *logrus.Entry

	// mu serializes read-modify-write of scores.
	mu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []func(domain.Match)
}

func NewMatchService(
	ms storage.MatchStorage,
	ps *PlayerService,
	m *metrics.Metrics,
	pageSize int,
	l *logrus.Logger,
) *MatchService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &MatchService{
		matches:  ms,
		players:  ps,
		metrics:  m,
		pageSize: pageSize,
		log:      l.WithField("from", "match-service"),
	}
}

// OnMatchCreated registers fn to be called after every created match.
func (s *MatchService) OnMatchCreated(fn func(domain.Match)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *MatchService) notify(m domain.Match) {
	s.listenersMu.RLock()
	defer s.listenersMu.RUnlock()
	for _, fn := range s.listeners {
		fn(m)
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, n NewMatch) (domain.Match, error) {
	if err := n.Validate(); err != nil {
		return domain.Match{}, err
	}
	local, err := s.players.Resolve(ctx, n.LocalPlayerIDs)
	if err != nil {
		return domain.Match{}, err
	}
	visitor, err := s.players.Resolve(ctx, n.VisitorPlayerIDs)
	if err != nil {
		return domain.Match{}, err
	}
	if n.Date.IsZero() {
		n.Date = time.Now()
	}
	m, err := s.matches.CreateMatch(ctx, domain.Match{
		TournamentID: n.TournamentID,
		Date:         n.Date,
		Local:        domain.TeamSlot{Name: strings.TrimSpace(n.LocalTeamName), Players: local},
		Visitor:      domain.TeamSlot{Name: strings.TrimSpace(n.VisitorTeamName), Players: visitor},
		State:        domain.StatePending,
	})
	if err != nil {
		return domain.Match{}, fmt.Errorf("torneo %d: %w", n.TournamentID, err)
	}
	s.metrics.MatchCreated()
	s.notify(m)
	return m, nil
}

// ListMatches returns one page of matches; a non-positive size falls back to the default page size.
func (s *MatchService) ListMatches(ctx context.Context, filter domain.MatchFilter) (domain.Page[domain.Match], error) {
	if filter.Size <= 0 {
		filter.Size = s.pageSize
	}
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Page > math.MaxInt32/filter.Size {
		return domain.Page[domain.Match]{}, invalid("página %d fuera de rango", filter.Page)
	}
	if filter.State != 0 && !filter.State.Valid() {
		return domain.Page[domain.Match]{}, invalid("estado %d desconocido", filter.State)
	}
	matches, total, err := s.matches.ListMatches(ctx, filter)
	if err != nil {
		return domain.Page[domain.Match]{}, err
	}
	return domain.NewPage(matches, filter.Page, filter.Size, total), nil
}

func (s *MatchService) GetMatch(ctx context.Context, id int) (domain.Match, error) {
	m, err := s.matches.GetMatch(ctx, id)
	if err != nil {
		return domain.Match{}, fmt.Errorf("partido %d: %w", id, err)
	}
	return m, nil
}

func (s *MatchService) CancelMatch(ctx context.Context, id int) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return domain.Match{}, err
	}
	switch m.State {
	case domain.StateCanceled:
		return m, nil
	case domain.StateFinished:
		return domain.Match{}, fmt.Errorf("partido %d: %w", id, ErrMatchFinished)
	}
	m.State = domain.StateCanceled
	m.Winner = nil
	if err := s.matches.UpdateMatchScore(ctx, m); err != nil {
		return domain.Match{}, err
	}
	s.log.WithField("match", id).Info("match canceled")
	return m, nil
}

// SetScore replaces both scores, clamped to the valid range.
func (s *MatchService) SetScore(ctx context.Context, id int, local int, visitor int) (domain.Match, error) {
	return s.update(ctx, id, "set", func(m *domain.Match) {
		m.Local.Score = score.Apply(0, local)
		m.Visitor.Score = score.Apply(0, visitor)
	})
}

// AddPoints adds delta (possibly negative) to one side.
func (s *MatchService) AddPoints(ctx context.Context, id int, side domain.Side, delta int) (domain.Match, error) {
	if side != domain.SideLocal && side != domain.SideVisitor {
		return domain.Match{}, invalid("lado %q desconocido", side)
	}
	return s.update(ctx, id, "points", func(m *domain.Match) {
		slot := m.Slot(side)
		slot.Score = score.Apply(slot.Score, delta)
	})
}

// AddFaltaEnvido awards side what the leading team lacks to finish the match.
func (s *MatchService) AddFaltaEnvido(ctx context.Context, id int, side domain.Side) (domain.Match, error) {
	if side != domain.SideLocal && side != domain.SideVisitor {
		return domain.Match{}, invalid("lado %q desconocido", side)
	}
	return s.update(ctx, id, "falta_envido", func(m *domain.Match) {
		slot := m.Slot(side)
		slot.Score = score.Apply(slot.Score, score.FaltaEnvido(m.Local.Score, m.Visitor.Score))
	})
}

// RestoreScore moves the stored score to a recorded snapshot, which applies
// the difference between the snapshot and whatever is stored now.
func (s *MatchService) RestoreScore(ctx context.Context, id int, local int, visitor int) (domain.Match, error) {
	return s.update(ctx, id, "restore", func(m *domain.Match) {
		m.Local.Score = score.Apply(0, local)
		m.Visitor.Score = score.Apply(0, visitor)
	})
}

func (s *MatchService) update(ctx context.Context, id int, kind string, mutate func(m *domain.Match)) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return domain.Match{}, err
	}
	if m.State == domain.StateCanceled {
		return domain.Match{}, fmt.Errorf("partido %d: %w", id, ErrMatchCanceled)
	}
	mutate(&m)
	settle(&m)
	if err := s.matches.UpdateMatchScore(ctx, m); err != nil {
		return domain.Match{}, err
	}
	s.metrics.ScoreUpdate(kind)
	s.log.WithFields(logrus.Fields{
		"match":   id,
		"kind":    kind,
		"local":   m.Local.Score,
		"visitor": m.Visitor.Score,
	}).Debug("score updated")
	return m, nil
}

// settle derives state and winner from the scores.
func settle(m *domain.Match) {
	switch score.Winner(m.Local.Score, m.Visitor.Score) {
	case score.Local:
		w := domain.SideLocal
		m.Winner = &w
		m.State = domain.StateFinished
		return
	case score.Visitor:
		w := domain.SideVisitor
		m.Winner = &w
		m.State = domain.StateFinished
		return
	}
	m.Winner = nil
	if m.State == domain.StatePending && m.Local.Score == 0 && m.Visitor.Score == 0 {
		return
	}
	m.State = domain.StateInProgress
}
