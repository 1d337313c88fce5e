// Package scorehistory keeps the recent score states of the match open in a
// scoring session and computes the adjustment needed to go back to one of them.
package scorehistory

import (
	"errors"
	"iter"
	"time"
)

// Size is the maximum number of snapshots kept for one match.
const Size = 10

var ErrInvalidRestoreTarget = errors.New("invalid restore target")

type Snapshot struct {
	Local   int       `json:"local"`
	Visitor int       `json:"visitor"`
	TakenAt time.Time `json:"takenAt"`
}

// Tracker is not safe for concurrent use.
type Tracker struct {
	matchID   int
	active    bool
	snapshots []Snapshot
	now       func() time.Time
}

type Option func(*Tracker)

// WithClock replaces time.Now as the snapshot timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(opts ...Option) *Tracker {
	t := &Tracker{
		now:       time.Now,
		snapshots: make([]Snapshot, 0, Size),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Observe records the authoritative score of a match. Switching to another
// match starts a fresh history; repeating the newest score is a no-op.
func (t *Tracker) Observe(matchID int, local int, visitor int) {
	snap := Snapshot{
		Local:   local,
		Visitor: visitor,
		TakenAt: t.now(),
	}
	if !t.active || t.matchID != matchID {
		t.matchID = matchID
		t.active = true
		t.snapshots = append(t.snapshots[:0], snap)
		return
	}
	last := t.snapshots[len(t.snapshots)-1]
	if last.Local == local && last.Visitor == visitor {
		return
	}
	if len(t.snapshots) == Size {
		copy(t.snapshots, t.snapshots[1:])
		t.snapshots = t.snapshots[:Size-1]
	}
	t.snapshots = append(t.snapshots, snap)
}

// Restorable yields every snapshot but the newest one, newest first, keyed by
// its chronological index.
func (t *Tracker) Restorable() iter.Seq2[int, Snapshot] {
	return func(yield func(int, Snapshot) bool) {
		for i := len(t.snapshots) - 2; i >= 0; i-- {
			if !yield(i, t.snapshots[i]) {
				return
			}
		}
	}
}

// RestoreDelta returns what has to be added to the current score to get back
// to snapshot i. The result is not clamped.
func (t *Tracker) RestoreDelta(i int) (local int, visitor int, err error) {
	if i < 0 || i >= len(t.snapshots)-1 {
		return 0, 0, ErrInvalidRestoreTarget
	}
	target := t.snapshots[i]
	current := t.snapshots[len(t.snapshots)-1]
	return target.Local - current.Local, target.Visitor - current.Visitor, nil
}

func (t *Tracker) Reset() {
	t.matchID = 0
	t.active = false
	t.snapshots = t.snapshots[:0]
}

// MatchID reports the match being tracked, if any.
func (t *Tracker) MatchID() (int, bool) {
	return t.matchID, t.active
}

func (t *Tracker) Len() int {
	return len(t.snapshots)
}

// Current returns the newest snapshot.
func (t *Tracker) Current() (Snapshot, bool) {
	if len(t.snapshots) == 0 {
		return Snapshot{}, false
	}
	return t.snapshots[len(t.snapshots)-1], true
}

// Snapshots returns a copy of the history in chronological order.
func (t *Tracker) Snapshots() []Snapshot {
	out := make([]Snapshot, len(t.snapshots))
	copy(out, t.snapshots)
	return out
}
