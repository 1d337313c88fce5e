package teamdraw

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays fixed picks, each reduced modulo n.
type seqSource struct {
	picks []int
	pos   int
}

func (s *seqSource) IntN(n int) int {
	v := s.picks[s.pos%len(s.picks)] % n
	s.pos++
	return v
}

func players(names ...string) []Participant {
	out := make([]Participant, 0, len(names))
	for _, n := range names {
		out = append(out, Participant{ID: uuid.New(), Name: n})
	}
	return out
}

func ids(p []Participant) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(p))
	for _, x := range p {
		out = append(out, x.ID)
	}
	return out
}

func TestShuffle_FisherYates(t *testing.T) {
	p := players("a", "b", "c", "d")
	// i=3 j=0, i=2 j=2, i=1 j=0
	Shuffle(&seqSource{picks: []int{0, 2, 0}}, p)
	var got []string
	for _, x := range p {
		got = append(got, x.Name)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, got)
}

func TestShuffle_Uniform(t *testing.T) {
	const trials = 60000
	src := rand.New(rand.NewPCG(1, 2))
	counts := make(map[string]int)
	base := players("a", "b", "c")
	for i := 0; i < trials; i++ {
		p := make([]Participant, len(base))
		copy(p, base)
		Shuffle(src, p)
		var b strings.Builder
		for _, x := range p {
			b.WriteString(x.Name)
		}
		counts[b.String()]++
	}
	require.Len(t, counts, 6)
	expected := float64(trials) / 6
	for perm, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.05, "permutation %s", perm)
	}
}

func TestDraw_FormTeams(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		teamCount    int
		teamSize     int
		wantExcluded int
		wantErr      error
	}{
		{name: "exact fit", participants: 8, teamCount: 4, teamSize: 2, wantExcluded: 0},
		{name: "overflow", participants: 7, teamCount: 2, teamSize: 3, wantExcluded: 1},
		{name: "single team", participants: 3, teamCount: 1, teamSize: 1, wantExcluded: 2},
		{name: "too few", participants: 3, teamCount: 2, teamSize: 2, wantErr: ErrInsufficientParticipants},
		{name: "zero teams", participants: 3, teamCount: 0, teamSize: 2, wantErr: ErrInsufficientParticipants},
		{name: "zero size", participants: 3, teamCount: 2, teamSize: 0, wantErr: ErrInsufficientParticipants},
		{name: "huge size", participants: 3, teamCount: 2, teamSize: math.MaxInt/2 + 1, wantErr: ErrInsufficientParticipants},
		{name: "product wraps", participants: 3, teamCount: 4, teamSize: math.MaxInt/4 + 1, wantErr: ErrInsufficientParticipants},
		{name: "huge count", participants: 3, teamCount: math.MaxInt, teamSize: 2, wantErr: ErrInsufficientParticipants},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			names := make([]string, tt.participants)
			for i := range names {
				names[i] = string(rune('a' + i))
			}
			pool := players(names...)
			d := New(rand.New(rand.NewPCG(7, 7)))
			res, err := d.Draw(Request{
				Participants: pool,
				Mode:         FormTeams,
				TeamCount:    tt.teamCount,
				TeamSize:     tt.teamSize,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, res.Teams)
				assert.Empty(t, res.Excluded)
				return
			}
			require.NoError(t, err)
			require.Len(t, res.Teams, tt.teamCount)
			assert.Len(t, res.Excluded, tt.wantExcluded)

			seen := mapset.NewSet[uuid.UUID]()
			for i, team := range res.Teams {
				assert.Equal(t, i+1, team.Index)
				assert.Len(t, team.Members, tt.teamSize)
				for _, m := range team.Members {
					assert.True(t, seen.Add(m.ID), "participant placed twice")
				}
			}
			for _, m := range res.Excluded {
				assert.True(t, seen.Add(m.ID), "participant placed twice")
			}
			assert.True(t, seen.Equal(mapset.NewSet(ids(pool)...)))
		})
	}
}

func TestDraw_FormTeamsKeepsShuffledOrder(t *testing.T) {
	pool := players("a", "b", "c", "d", "e")
	src := &seqSource{picks: []int{1, 3, 0, 1}}
	d := New(src)
	res, err := d.Draw(Request{Participants: pool, Mode: FormTeams, TeamCount: 2, TeamSize: 2})
	require.NoError(t, err)

	want := make([]Participant, len(pool))
	copy(want, pool)
	Shuffle(&seqSource{picks: []int{1, 3, 0, 1}}, want)

	assert.Equal(t, want[0:2], res.Teams[0].Members)
	assert.Equal(t, want[2:4], res.Teams[1].Members)
	assert.Equal(t, want[4:], res.Excluded)
	// the caller's slice is left untouched
	assert.Equal(t, "a", pool[0].Name)
	assert.Equal(t, "e", pool[4].Name)
}

func TestDraw_ExcludeSubset(t *testing.T) {
	pool := players("a", "b", "c", "d", "e")
	d := New(nil)
	res, err := d.Draw(Request{Participants: pool, Mode: ExcludeSubset, ExcludeCount: 2, TeamCount: 3, TeamSize: 3})
	require.NoError(t, err)
	assert.Empty(t, res.Teams)
	assert.Len(t, res.Excluded, 2)
	all := mapset.NewSet(ids(pool)...)
	for _, p := range res.Excluded {
		assert.True(t, all.Contains(p.ID))
	}

	_, err = d.Draw(Request{Participants: pool, Mode: ExcludeSubset, ExcludeCount: 5})
	assert.ErrorIs(t, err, ErrInsufficientParticipants)
	_, err = d.Draw(Request{Participants: pool, Mode: ExcludeSubset, ExcludeCount: 0})
	assert.ErrorIs(t, err, ErrInsufficientParticipants)
}

func TestDraw_Rejects(t *testing.T) {
	pool := players("a", "b")
	pool = append(pool, pool[0])
	d := New(nil)
	_, err := d.Draw(Request{Participants: pool, Mode: FormTeams, TeamCount: 1, TeamSize: 1})
	assert.ErrorIs(t, err, ErrDuplicateParticipant)

	_, err = d.Draw(Request{Participants: players("a", "b"), Mode: Mode(9)})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestPairings(t *testing.T) {
	teams := func(n int) Result {
		var r Result
		for i := 1; i <= n; i++ {
			r.Teams = append(r.Teams, Team{Index: i})
		}
		return r
	}
	tests := []struct {
		name  string
		teams int
		want  [][2]int
	}{
		{name: "none", teams: 0, want: nil},
		{name: "single", teams: 1, want: nil},
		{name: "two", teams: 2, want: [][2]int{{1, 2}}},
		{name: "odd", teams: 5, want: [][2]int{{1, 2}, {3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			for _, p := range Pairings(teams(tt.teams)) {
				got = append(got, [2]int{p[0].Index, p[1].Index})
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
