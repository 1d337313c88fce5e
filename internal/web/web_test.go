package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	authservice "github.com/goserg/trucoserver/auth/service"
	authsqlite "github.com/goserg/trucoserver/auth/storage/sqlite"
	"github.com/goserg/trucoserver/auth/users"
	"github.com/goserg/trucoserver/internal/config"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/metrics"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/storage"
	"github.com/goserg/trucoserver/internal/storage/sqlite"
	"github.com/goserg/trucoserver/internal/teamdraw"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "truco.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	l := logrus.New()
	l.SetOutput(io.Discard)

	st := sqlite.New(db, l)
	m := metrics.New()
	ps := service.NewPlayerService(st, l)
	ts := service.NewTournamentService(st, st, l)
	ms := service.NewMatchService(st, ps, m, 10, l)
	svc := service.Services{
		Players:     ps,
		Tournaments: ts,
		Matches:     ms,
		Scoring:     service.NewScoring(ms, m, l),
		Draws:       service.NewDrawService(teamdraw.New(rand.New(rand.NewPCG(1, 2))), ps, ts, ms, m, l),
	}

	authCfg := authservice.Config{
		Token:          "secret",
		Expiration:     "1h",
		RootPassword:   "rootpass",
		PasswordPepper: "pepper",
		Rules: []authservice.Rule{
			{Name: "guest read", Path: "^/api/(tournaments|matches|players)", Method: []string{"GET"}, Allow: []string{"*"}},
			{Name: "login", Path: "^/api/auth/login$", Method: []string{"POST"}, Allow: []string{"*"}},
			{Name: "signup", Path: "^/api/auth/signup$", Method: []string{"POST"}, Allow: []string{users.RoleAdmin}},
			{Name: "write", Path: "^/api", Method: []string{"*"}, Allow: []string{users.RoleAdmin, users.RoleUser}},
		},
	}
	auth, err := authservice.New(context.Background(), authCfg, authsqlite.New(db, l))
	require.NoError(t, err)

	s, err := New(svc, auth, m, config.Server{Host: "localhost", Auth: authCfg}, l)
	require.NoError(t, err)
	return s
}

type client struct {
	t      *testing.T
	s      *Server
	cookie string
}

func (c *client) do(method string, path string, body any) *http.Response {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.AddCookie(&http.Cookie{Name: authservice.CookieName, Value: c.cookie})
	}
	resp, err := c.s.app.Test(req, -1)
	require.NoError(c.t, err)
	return resp
}

func (c *client) decode(resp *http.Response, v any) {
	c.t.Helper()
	defer resp.Body.Close()
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(v))
}

func (c *client) login(name string, password string) {
	c.t.Helper()
	resp := c.do(http.MethodPost, "/api/auth/login", signInRequest{Username: name, Password: password})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	for _, ck := range resp.Cookies() {
		if ck.Name == authservice.CookieName {
			c.cookie = ck.Value
		}
	}
	require.NotEmpty(c.t, c.cookie)
}

func TestServer_Login(t *testing.T) {
	s := newTestServer(t)
	guest := &client{t: t, s: s}

	resp := guest.do(http.MethodPost, "/api/auth/login", signInRequest{Username: "root", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var failed loginResponse
	guest.decode(resp, &failed)
	assert.False(t, failed.Success)
	assert.Equal(t, authservice.ErrBadCredentials.Error(), failed.Message)

	resp = guest.do(http.MethodPost, "/api/auth/login", signInRequest{Username: "root", Password: "rootpass"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok loginResponse
	guest.decode(resp, &ok)
	assert.True(t, ok.Success)
	assert.Equal(t, "root", ok.Username)
}

func TestServer_Permissions(t *testing.T) {
	s := newTestServer(t)
	guest := &client{t: t, s: s}
	root := &client{t: t, s: s}
	root.login("root", "rootpass")

	assert.Equal(t, http.StatusOK, guest.do(http.MethodGet, "/api/players", nil).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, guest.do(http.MethodPost, "/api/players", createPlayer{Name: "Ana"}).StatusCode)
	assert.Equal(t, http.StatusCreated, root.do(http.MethodPost, "/api/players", createPlayer{Name: "Ana"}).StatusCode)

	resp := root.do(http.MethodPost, "/api/auth/signup", signUpRequest{Username: "pepe", Password: "x", PasswordRepeat: "x"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pepe := &client{t: t, s: s}
	pepe.login("pepe", "x")
	assert.Equal(t, http.StatusCreated, pepe.do(http.MethodPost, "/api/players", createPlayer{Name: "Beto"}).StatusCode)
	resp = pepe.do(http.MethodPost, "/api/auth/signup", signUpRequest{Username: "juan", Password: "x", PasswordRepeat: "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = root.do(http.MethodPost, "/api/players", createPlayer{Name: " ana "})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp = root.do(http.MethodPost, "/api/players", createPlayer{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e errorResponse
	root.decode(resp, &e)
	assert.Equal(t, ErrMissingName.Error(), e.Message)
}

func createPlayers(t *testing.T, c *client, names ...string) []domain.Player {
	t.Helper()
	players := make([]domain.Player, 0, len(names))
	for _, name := range names {
		resp := c.do(http.MethodPost, "/api/players", createPlayer{Name: name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var p domain.Player
		c.decode(resp, &p)
		players = append(players, p)
	}
	return players
}

func createTournamentWith(t *testing.T, c *client, players []domain.Player) tournamentResponse {
	t.Helper()
	resp := c.do(http.MethodPost, "/api/tournaments", createTournament{Name: "Copa"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tr tournamentResponse
	c.decode(resp, &tr)
	assert.Equal(t, "root", tr.CreatedBy)

	ids := make([]uuid.UUID, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	resp = c.do(http.MethodPost, "/api/tournaments/"+strconv.Itoa(tr.ID)+"/players", registerPlayers{PlayerIDs: ids})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return tr
}

func TestServer_MatchFlow(t *testing.T) {
	root := &client{t: t, s: newTestServer(t)}
	root.login("root", "rootpass")
	players := createPlayers(t, root, "Ana", "Beto", "Carla", "Dani")
	tr := createTournamentWith(t, root, players)

	resp := root.do(http.MethodGet, "/api/players?tournamentId="+strconv.Itoa(tr.ID), nil)
	var registered []domain.Player
	root.decode(resp, &registered)
	assert.Len(t, registered, 4)

	resp = root.do(http.MethodPost, "/api/matches", createMatch{
		Date:             "2024-03-01",
		TournamentID:     tr.ID,
		LocalTeamName:    "Ana - Beto",
		LocalPlayerIDs:   []uuid.UUID{players[0].ID, players[1].ID},
		VisitorTeamName:  "Carla - Dani",
		VisitorPlayerIDs: []uuid.UUID{players[2].ID, players[3].ID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var m matchResponse
	root.decode(resp, &m)
	assert.Equal(t, "2024-03-01", m.Date)
	assert.Equal(t, "Pendiente", m.StateName)
	path := "/api/matches/" + strconv.Itoa(m.ID)

	resp = root.do(http.MethodGet, path+"/history", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "no open match yet")

	require.Equal(t, http.StatusOK, root.do(http.MethodPost, path+"/open", nil).StatusCode)
	resp = root.do(http.MethodPost, path+"/score", addScore{Local: true, Amount: math.MaxInt})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = root.do(http.MethodPost, path+"/score", addScore{Local: true, Amount: 3})
	root.decode(resp, &m)
	assert.Equal(t, 3, m.ScoreLocalTeam)
	assert.Equal(t, "En progreso", m.StateName)
	resp = root.do(http.MethodPut, path, setScore{Local: intPtr(3), Visitor: intPtr(10)})
	root.decode(resp, &m)
	assert.Equal(t, 10, m.ScoreVisitorTeam)

	resp = root.do(http.MethodGet, path+"/history", nil)
	var h historyResponse
	root.decode(resp, &h)
	assert.Equal(t, m.ID, h.MatchID)
	require.Len(t, h.Entries, 2)
	assert.Equal(t, 1, h.Entries[0].Index)
	assert.Equal(t, 3, h.Entries[0].Local)

	resp = root.do(http.MethodPost, path+"/restore", restore{Index: intPtr(5)})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = root.do(http.MethodPost, path+"/restore", restore{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = root.do(http.MethodPost, path+"/restore", restore{Index: intPtr(1)})
	root.decode(resp, &m)
	assert.Equal(t, 3, m.ScoreLocalTeam)
	assert.Equal(t, 0, m.ScoreVisitorTeam)

	resp = root.do(http.MethodGet, path+"/history.png", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	resp = root.do(http.MethodPost, path+"/falta-envido", faltaEnvido{Local: true})
	root.decode(resp, &m)
	assert.Equal(t, 30, m.ScoreLocalTeam)
	assert.Equal(t, "Finalizado", m.StateName)
	require.NotNil(t, m.WinnerTeamName)
	assert.Equal(t, "Ana - Beto", *m.WinnerTeamName)

	resp = root.do(http.MethodPost, path+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = root.do(http.MethodGet, "/api/tournaments/"+strconv.Itoa(tr.ID)+"/standings", nil)
	var standings []standingResponse
	root.decode(resp, &standings)
	require.Len(t, standings, 4)
	assert.Equal(t, 1, standings[0].Position)
	assert.Equal(t, 1, standings[0].MatchesWon)
	assert.Equal(t, "100.00%", standings[0].WinRate)
	assert.Contains(t, []string{"Ana", "Beto"}, standings[0].PlayerName)

	resp = root.do(http.MethodGet, "/api/tournaments/"+strconv.Itoa(tr.ID)+"/standings.xlsx", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "posiciones-")

	resp = root.do(http.MethodGet, "/api/matches?stateId=3&size=5", nil)
	var page domain.Page[matchResponse]
	root.decode(resp, &page)
	assert.EqualValues(t, 1, page.TotalElements)
	assert.Equal(t, 5, page.Size)

	assert.Equal(t, http.StatusBadRequest, root.do(http.MethodGet, "/api/matches?stateId=9", nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, root.do(http.MethodGet, "/api/matches?page=9223372036854775807&size=10", nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, root.do(http.MethodGet, "/api/matches/999", nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, root.do(http.MethodGet, "/api/matches/abc", nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, root.do(http.MethodGet, "/api/tournaments/999", nil).StatusCode)

	assert.Equal(t, http.StatusNoContent, root.do(http.MethodDelete, "/api/session", nil).StatusCode)
	assert.Equal(t, http.StatusConflict, root.do(http.MethodGet, path+"/history", nil).StatusCode)
}

func TestServer_CanceledMatch(t *testing.T) {
	root := &client{t: t, s: newTestServer(t)}
	root.login("root", "rootpass")
	players := createPlayers(t, root, "Ana", "Beto")
	tr := createTournamentWith(t, root, players)

	resp := root.do(http.MethodPost, "/api/matches", createMatch{
		TournamentID:     tr.ID,
		LocalTeamName:    "Ana",
		LocalPlayerIDs:   []uuid.UUID{players[0].ID},
		VisitorTeamName:  "Beto",
		VisitorPlayerIDs: []uuid.UUID{players[1].ID},
	})
	var m matchResponse
	root.decode(resp, &m)
	path := "/api/matches/" + strconv.Itoa(m.ID)

	resp = root.do(http.MethodPost, path+"/cancel", nil)
	root.decode(resp, &m)
	assert.Equal(t, "Cancelado", m.StateName)
	require.Equal(t, http.StatusOK, root.do(http.MethodPost, path+"/open", nil).StatusCode)
	resp = root.do(http.MethodPost, path+"/score", addScore{Local: true, Amount: 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestServer_Draw(t *testing.T) {
	root := &client{t: t, s: newTestServer(t)}
	root.login("root", "rootpass")
	players := createPlayers(t, root, "Ana", "Beto", "Carla", "Dani", "Eva")
	tr := createTournamentWith(t, root, players)
	path := "/api/tournaments/" + strconv.Itoa(tr.ID) + "/draw"

	ids := make([]uuid.UUID, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	resp := root.do(http.MethodPost, path, drawLots{PlayerIDs: ids, Mode: "teams", TeamCount: 2, TeamSize: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var draw drawResult
	root.decode(resp, &draw)
	require.Len(t, draw.Teams, 2)
	require.Len(t, draw.Excluded, 1)
	assert.Equal(t, 1, draw.Teams[0].Index)
	assert.Len(t, draw.Teams[0].Members, 2)
	assert.Contains(t, draw.Teams[0].Name, " - ")

	resp = root.do(http.MethodPost, path+"/matches", drawMatches{Date: "2024-03-02", Teams: draw.Teams})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created []matchResponse
	root.decode(resp, &created)
	require.Len(t, created, 1)
	assert.Equal(t, draw.Teams[0].Name, created[0].LocalTeamName)
	assert.Equal(t, draw.Teams[1].Name, created[0].VisitorTeamName)

	resp = root.do(http.MethodPost, path, drawLots{PlayerIDs: ids, Mode: "exclude", ExcludeCount: 2})
	root.decode(resp, &draw)
	assert.Empty(t, draw.Teams)
	assert.Len(t, draw.Excluded, 2)

	resp = root.do(http.MethodPost, path, drawLots{PlayerIDs: ids, TeamCount: 3, TeamSize: 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = root.do(http.MethodPost, path, drawLots{PlayerIDs: ids, Mode: "pairs"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = root.do(http.MethodPost, path, drawLots{PlayerIDs: ids, TeamCount: 2, TeamSize: math.MaxInt/2 + 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Dashboard(t *testing.T) {
	root := &client{t: t, s: newTestServer(t)}
	root.login("root", "rootpass")
	players := createPlayers(t, root, "Ana", "Beto")
	createTournamentWith(t, root, players)

	resp := root.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Copa")
	assert.Contains(t, string(body), `<span id="username">root</span>`)

	guest := &client{t: t, s: root.s}
	resp = guest.do(http.MethodGet, "/", nil)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `id="guest"`)

	resp = guest.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "truco_scoring_sessions"))
}
