package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/metrics"
	"github.com/goserg/trucoserver/internal/scorehistory"
	"github.com/sirupsen/logrus"
)

// HistoryEntry is a snapshot the session can go back to.
type HistoryEntry struct {
	Index int `json:"index"`
	scorehistory.Snapshot
}

// Scoring keeps one score history per session owner (a web user or a telegram chat).
// Every score change made through a session is observed by its tracker.
type Scoring struct {
	matches *MatchService
	metrics *metrics.Metrics
	opts    []scorehistory.Option
	log     *logrus.Entry

	mu       sync.Mutex
	sessions map[string]*scorehistory.Tracker
}

func NewScoring(ms *MatchService, m *metrics.Metrics, l *logrus.Logger, opts ...scorehistory.Option) *Scoring {
	return &Scoring{
		matches:  ms,
		metrics:  m,
		opts:     opts,
		log:      l.WithField("from", "scoring"),
		sessions: make(map[string]*scorehistory.Tracker),
	}
}

func (s *Scoring) tracker(owner string) *scorehistory.Tracker {
	t, ok := s.sessions[owner]
	if !ok {
		t = scorehistory.New(s.opts...)
		s.sessions[owner] = t
		s.metrics.SessionsOpen(len(s.sessions))
	}
	return t
}

func (s *Scoring) observe(owner string, m domain.Match) {
	s.tracker(owner).Observe(m.ID, m.Local.Score, m.Visitor.Score)
}

// OpenMatch starts tracking the match in the owner's session.
func (s *Scoring) OpenMatch(ctx context.Context, owner string, matchID int) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		return domain.Match{}, err
	}
	s.observe(owner, m)
	return m, nil
}

func (s *Scoring) UpdateScore(ctx context.Context, owner string, matchID int, side domain.Side, delta int) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.matches.AddPoints(ctx, matchID, side, delta)
	if err != nil {
		return domain.Match{}, err
	}
	s.observe(owner, m)
	return m, nil
}

func (s *Scoring) FaltaEnvido(ctx context.Context, owner string, matchID int, side domain.Side) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.matches.AddFaltaEnvido(ctx, matchID, side)
	if err != nil {
		return domain.Match{}, err
	}
	s.observe(owner, m)
	return m, nil
}

func (s *Scoring) SetScore(ctx context.Context, owner string, matchID int, local int, visitor int) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.matches.SetScore(ctx, matchID, local, visitor)
	if err != nil {
		return domain.Match{}, err
	}
	s.observe(owner, m)
	return m, nil
}

// AnyMatch accepts whichever match is open in the session.
const AnyMatch = 0

// session returns the owner's tracker and the match it follows. A non-zero
// matchID must be the open match.
func (s *Scoring) session(owner string, matchID int) (*scorehistory.Tracker, int, error) {
	t, ok := s.sessions[owner]
	if !ok {
		return nil, 0, ErrNoOpenMatch
	}
	open, ok := t.MatchID()
	if !ok {
		return nil, 0, ErrNoOpenMatch
	}
	if matchID != AnyMatch && matchID != open {
		return nil, 0, fmt.Errorf("partido %d: %w", matchID, ErrNoOpenMatch)
	}
	return t, open, nil
}

// Current returns the match open in the owner's session.
func (s *Scoring) Current(owner string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, id, err := s.session(owner, AnyMatch)
	return id, err
}

// History lists the restorable snapshots of the open match, newest first.
func (s *Scoring) History(owner string, matchID int) (int, []HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, open, err := s.session(owner, matchID)
	if err != nil {
		return 0, nil, err
	}
	entries := []HistoryEntry{}
	for i, snap := range t.Restorable() {
		entries = append(entries, HistoryEntry{Index: i, Snapshot: snap})
	}
	return open, entries, nil
}

// Snapshots returns the whole history of the open match in chronological order.
func (s *Scoring) Snapshots(owner string, matchID int) (int, []scorehistory.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, open, err := s.session(owner, matchID)
	if err != nil {
		return 0, nil, err
	}
	return open, t.Snapshots(), nil
}

// Restore brings the open match back to the snapshot at index. The target is
// measured against the stored score, so changes made by other sessions in the
// meantime are undone too. The result is recorded as the newest snapshot.
func (s *Scoring) Restore(ctx context.Context, owner string, matchID int, index int) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, open, err := s.session(owner, matchID)
	if err != nil {
		return domain.Match{}, err
	}
	if _, _, err := t.RestoreDelta(index); err != nil {
		return domain.Match{}, fmt.Errorf("índice %d: %w", index, err)
	}
	target := t.Snapshots()[index]
	m, err := s.matches.RestoreScore(ctx, open, target.Local, target.Visitor)
	if err != nil {
		return domain.Match{}, err
	}
	t.Observe(m.ID, m.Local.Score, m.Visitor.Score)
	s.metrics.Restore()
	s.log.WithFields(logrus.Fields{
		"owner": owner,
		"match": open,
		"index": index,
	}).Info("score restored")
	return m, nil
}

func (s *Scoring) CloseSession(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.sessions[owner]; ok {
		t.Reset()
		delete(s.sessions, owner)
		s.metrics.SessionsOpen(len(s.sessions))
	}
}
