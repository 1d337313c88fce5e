package web

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/teamdraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func Test_setScore_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     setScore
		wantErr bool
	}{
		{name: "start", req: setScore{Local: intPtr(0), Visitor: intPtr(0)}},
		{name: "finish", req: setScore{Local: intPtr(30), Visitor: intPtr(12)}},
		{name: "missing visitor", req: setScore{Local: intPtr(3)}, wantErr: true},
		{name: "negative", req: setScore{Local: intPtr(-1), Visitor: intPtr(0)}, wantErr: true},
		{name: "over", req: setScore{Local: intPtr(4), Visitor: intPtr(31)}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_addScore_Validate(t *testing.T) {
	assert.NoError(t, addScore{Amount: 3}.Validate())
	assert.NoError(t, addScore{Amount: -30}.Validate())
	assert.ErrorIs(t, addScore{Amount: 31}.Validate(), ErrAmountRange)
	assert.ErrorIs(t, addScore{Amount: math.MaxInt}.Validate(), ErrAmountRange)
	assert.ErrorIs(t, addScore{Amount: math.MinInt}.Validate(), ErrAmountRange)
}

func Test_createMatch_toService(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	valid := createMatch{
		Date:             "2024-03-01",
		TournamentID:     1,
		LocalTeamName:    "Ana",
		LocalPlayerIDs:   []uuid.UUID{a},
		VisitorTeamName:  "Beto",
		VisitorPlayerIDs: []uuid.UUID{b},
	}
	n, err := valid.toService()
	require.NoError(t, err)
	assert.Equal(t, 2024, n.Date.Year())
	assert.Equal(t, time.March, n.Date.Month())

	bad := valid
	bad.Date = "01/03/2024"
	_, err = bad.toService()
	assert.ErrorIs(t, err, ErrBadDate)

	noDate := valid
	noDate.Date = ""
	n, err = noDate.toService()
	require.NoError(t, err)
	assert.False(t, n.Date.IsZero())

	same := valid
	same.VisitorPlayerIDs = []uuid.UUID{a}
	_, err = same.toService()
	assert.ErrorIs(t, err, service.ErrValidation)
}

func Test_drawLots_toService(t *testing.T) {
	req, err := drawLots{TeamCount: 2, TeamSize: 2}.toService()
	require.NoError(t, err)
	assert.Equal(t, teamdraw.FormTeams, req.Mode)

	req, err = drawLots{Mode: "exclude", ExcludeCount: 1}.toService()
	require.NoError(t, err)
	assert.Equal(t, teamdraw.ExcludeSubset, req.Mode)

	_, err = drawLots{Mode: "pairs"}.toService()
	assert.ErrorIs(t, err, ErrDrawMode)
}

func Test_drawMatches_toResult(t *testing.T) {
	a, b := participant{ID: uuid.New(), Name: "Ana"}, participant{ID: uuid.New(), Name: "Beto"}
	_, r, err := drawMatches{Teams: []team{
		{Index: 7, Members: []participant{a}},
		{Index: 9, Members: []participant{b}},
	}}.toResult()
	require.NoError(t, err)
	require.Len(t, r.Teams, 2)
	assert.Equal(t, 1, r.Teams[0].Index)
	assert.Equal(t, a.ID, r.Teams[0].Members[0].ID)

	_, _, err = drawMatches{Teams: []team{{Members: []participant{a}}}}.toResult()
	assert.ErrorIs(t, err, ErrDrawTeams)

	_, _, err = drawMatches{Teams: []team{{Members: []participant{a}}, {}}}.toResult()
	assert.ErrorIs(t, err, ErrMissingPlayers)
}

func Test_newMatchResponse(t *testing.T) {
	w := domain.SideVisitor
	resp := newMatchResponse(domain.Match{
		ID:      3,
		Date:    time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
		Local:   domain.TeamSlot{Name: "Ana - Beto", Score: 12},
		Visitor: domain.TeamSlot{Name: "Carla - Dani", Score: 30},
		State:   domain.StateFinished,
		Winner:  &w,
	})
	assert.Equal(t, "2024-03-01", resp.Date)
	assert.Equal(t, 12, resp.ScoreLocalTeam)
	assert.Equal(t, "Finalizado", resp.StateName)
	require.NotNil(t, resp.WinnerTeamName)
	assert.Equal(t, "Carla - Dani", *resp.WinnerTeamName)
}

func Test_signUpRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      signUpRequest
		wantErrs int
	}{
		{name: "ok", req: signUpRequest{Username: "pepe", Password: "x", PasswordRepeat: "x"}},
		{name: "mismatch", req: signUpRequest{Username: "pepe", Password: "x", PasswordRepeat: "y"}, wantErrs: 1},
		{name: "bad name", req: signUpRequest{Username: "1pepe", Password: "x", PasswordRepeat: "x"}, wantErrs: 1},
		{name: "all wrong", req: signUpRequest{Username: "", Password: "", PasswordRepeat: "y"}, wantErrs: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErrs == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Len(t, unwrap(err), tt.wantErrs)
		})
	}
}

func Test_statusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: badRequest(errors.New("x")), want: 400},
		{err: teamdraw.ErrInsufficientParticipants, want: 400},
		{err: service.ErrMatchCanceled, want: 409},
		{err: errors.New("boom"), want: 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}
