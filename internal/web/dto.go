package web

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/score"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/teamdraw"
)

var (
	ErrMissingName    = errors.New("el nombre no puede estar vacío")
	ErrMissingPlayers = errors.New("faltan jugadores")
	ErrBadDate        = errors.New("la fecha tiene que tener el formato AAAA-MM-DD")
	ErrScoreRange     = errors.New("el puntaje va de 0 a 30")
	ErrAmountRange    = errors.New("se suman o restan hasta 30 puntos")
	ErrMissingIndex   = errors.New("falta el índice a restaurar")
	ErrDrawMode       = errors.New("el modo es teams o exclude")
	ErrDrawTeams      = errors.New("hacen falta al menos dos equipos")
)

type createPlayer struct {
	Name string `json:"name"`
}

func (c createPlayer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	return nil
}

type createTournament struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (c createTournament) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	return nil
}

type registerPlayers struct {
	PlayerIDs []uuid.UUID `json:"playerIds"`
}

func (r registerPlayers) Validate() error {
	if len(r.PlayerIDs) == 0 {
		return ErrMissingPlayers
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return d, nil
}

type createMatch struct {
	Date             string      `json:"date"`
	TournamentID     int         `json:"tournamentId"`
	LocalTeamName    string      `json:"localTeamName"`
	LocalPlayerIDs   []uuid.UUID `json:"localTeamPlayerIds"`
	VisitorTeamName  string      `json:"visitorTeamName"`
	VisitorPlayerIDs []uuid.UUID `json:"visitorTeamPlayerIds"`
}

func (c createMatch) toService() (service.NewMatch, error) {
	date, err := parseDate(c.Date)
	if err != nil {
		return service.NewMatch{}, err
	}
	n := service.NewMatch{
		Date:             date,
		TournamentID:     c.TournamentID,
		LocalTeamName:    c.LocalTeamName,
		LocalPlayerIDs:   c.LocalPlayerIDs,
		VisitorTeamName:  c.VisitorTeamName,
		VisitorPlayerIDs: c.VisitorPlayerIDs,
	}
	return n, n.Validate()
}

type setScore struct {
	Local   *int `json:"scoreLocalTeam"`
	Visitor *int `json:"scoreVisitorTeam"`
}

func (s setScore) Validate() error {
	if s.Local == nil || s.Visitor == nil {
		return ErrScoreRange
	}
	for _, v := range []int{*s.Local, *s.Visitor} {
		if v < 0 || v > score.MaxPoints {
			return ErrScoreRange
		}
	}
	return nil
}

type addScore struct {
	Local  bool `json:"local"`
	Amount int  `json:"amount"`
}

func (a addScore) Validate() error {
	if a.Amount < -score.MaxPoints || a.Amount > score.MaxPoints {
		return ErrAmountRange
	}
	return nil
}

func (a addScore) side() domain.Side {
	return sideOf(a.Local)
}

type faltaEnvido struct {
	Local bool `json:"local"`
}

func sideOf(local bool) domain.Side {
	if local {
		return domain.SideLocal
	}
	return domain.SideVisitor
}

type restore struct {
	Index *int `json:"index"`
}

func (r restore) Validate() error {
	if r.Index == nil {
		return ErrMissingIndex
	}
	return nil
}

type drawLots struct {
	PlayerIDs    []uuid.UUID `json:"playerIds"`
	Mode         string      `json:"mode"`
	TeamCount    int         `json:"teamCount"`
	TeamSize     int         `json:"teamSize"`
	ExcludeCount int         `json:"excludeCount"`
}

func (d drawLots) toService() (service.DrawRequest, error) {
	req := service.DrawRequest{
		PlayerIDs:    d.PlayerIDs,
		TeamCount:    d.TeamCount,
		TeamSize:     d.TeamSize,
		ExcludeCount: d.ExcludeCount,
	}
	switch d.Mode {
	case "", "teams":
		req.Mode = teamdraw.FormTeams
	case "exclude":
		req.Mode = teamdraw.ExcludeSubset
	default:
		return service.DrawRequest{}, ErrDrawMode
	}
	return req, nil
}

type participant struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type team struct {
	Index   int           `json:"index"`
	Name    string        `json:"name"`
	Members []participant `json:"members"`
}

type drawResult struct {
	Teams    []team        `json:"teams"`
	Excluded []participant `json:"excluded"`
}

func participantsFrom(ps []teamdraw.Participant) []participant {
	out := make([]participant, 0, len(ps))
	for _, p := range ps {
		out = append(out, participant{ID: p.ID, Name: p.Name})
	}
	return out
}

func participantsTo(ps []participant) []teamdraw.Participant {
	out := make([]teamdraw.Participant, 0, len(ps))
	for _, p := range ps {
		out = append(out, teamdraw.Participant{ID: p.ID, Name: p.Name})
	}
	return out
}

func newDrawResult(r teamdraw.Result) drawResult {
	res := drawResult{
		Teams:    make([]team, 0, len(r.Teams)),
		Excluded: participantsFrom(r.Excluded),
	}
	for _, t := range r.Teams {
		res.Teams = append(res.Teams, team{
			Index:   t.Index,
			Name:    service.TeamName(t),
			Members: participantsFrom(t.Members),
		})
	}
	return res
}

// drawMatches posts back the teams of a draw to play them.
type drawMatches struct {
	Date  string `json:"date"`
	Teams []team `json:"teams"`
}

func (d drawMatches) toResult() (time.Time, teamdraw.Result, error) {
	date, err := parseDate(d.Date)
	if err != nil {
		return time.Time{}, teamdraw.Result{}, err
	}
	if len(d.Teams) < 2 {
		return time.Time{}, teamdraw.Result{}, ErrDrawTeams
	}
	r := teamdraw.Result{Teams: make([]teamdraw.Team, 0, len(d.Teams))}
	for i, t := range d.Teams {
		if len(t.Members) == 0 {
			return time.Time{}, teamdraw.Result{}, ErrMissingPlayers
		}
		r.Teams = append(r.Teams, teamdraw.Team{Index: i + 1, Members: participantsTo(t.Members)})
	}
	return date, r, nil
}

type matchResponse struct {
	ID                 int             `json:"id"`
	Date               string          `json:"date"`
	LocalTeamName      string          `json:"localTeamName"`
	LocalTeamPlayers   []domain.Player `json:"localTeamPlayers"`
	VisitorTeamName    string          `json:"visitorTeamName"`
	VisitorTeamPlayers []domain.Player `json:"visitorTeamPlayers"`
	ScoreLocalTeam     int             `json:"scoreLocalTeam"`
	ScoreVisitorTeam   int             `json:"scoreVisitorTeam"`
	TournamentID       int             `json:"tournamentId"`
	TournamentName     string          `json:"tournamentName"`
	WinnerTeamName     *string         `json:"winnerTeamName"`
	StateID            int             `json:"stateId"`
	StateName          string          `json:"stateName"`
}

func newMatchResponse(m domain.Match) matchResponse {
	resp := matchResponse{
		ID:                 m.ID,
		Date:               m.Date.Format(time.DateOnly),
		LocalTeamName:      m.Local.Name,
		LocalTeamPlayers:   m.Local.Players,
		VisitorTeamName:    m.Visitor.Name,
		VisitorTeamPlayers: m.Visitor.Players,
		ScoreLocalTeam:     m.Local.Score,
		ScoreVisitorTeam:   m.Visitor.Score,
		TournamentID:       m.TournamentID,
		TournamentName:     m.TournamentName,
		StateID:            int(m.State),
		StateName:          m.State.String(),
	}
	if m.Winner != nil {
		name := m.Slot(*m.Winner).Name
		resp.WinnerTeamName = &name
	}
	return resp
}

func newMatchResponses(matches []domain.Match) []matchResponse {
	out := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, newMatchResponse(m))
	}
	return out
}

func newMatchPage(p domain.Page[domain.Match]) domain.Page[matchResponse] {
	return domain.Page[matchResponse]{
		Content:          newMatchResponses(p.Content),
		TotalPages:       p.TotalPages,
		TotalElements:    p.TotalElements,
		Last:             p.Last,
		First:            p.First,
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: p.NumberOfElements,
		Empty:            p.Empty,
	}
}

type tournamentResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	CreatedBy string          `json:"createdBy"`
	Matches   []matchResponse `json:"partidos"`
}

func newTournamentResponse(t domain.Tournament) tournamentResponse {
	return tournamentResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedBy: t.CreatedBy,
		Matches:   newMatchResponses(t.Matches),
	}
}

type standingResponse struct {
	Position         int       `json:"position"`
	PlayerID         uuid.UUID `json:"playerId"`
	PlayerName       string    `json:"playerName"`
	TotalMatches     int       `json:"totalMatches"`
	MatchesWon       int       `json:"matchesWon"`
	MatchesLost      int       `json:"matchesLost"`
	WinRate          string    `json:"winRate"`
	Elo              int       `json:"elo"`
	Glicko2Rating    float64   `json:"glicko2Rating"`
	Glicko2Deviation float64   `json:"glicko2Deviation"`
}

func newStandingResponses(standings []domain.Standing) []standingResponse {
	out := make([]standingResponse, 0, len(standings))
	for _, st := range standings {
		out = append(out, standingResponse{
			Position:         st.Rank,
			PlayerID:         st.Player.ID,
			PlayerName:       st.Player.Name,
			TotalMatches:     st.Played,
			MatchesWon:       st.Won,
			MatchesLost:      st.Lost,
			WinRate:          st.WinRate,
			Elo:              st.Elo,
			Glicko2Rating:    st.Glicko.Rating,
			Glicko2Deviation: st.Glicko.Deviation,
		})
	}
	return out
}

type historyResponse struct {
	MatchID int                    `json:"matchId"`
	Entries []service.HistoryEntry `json:"entries"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
}

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}
