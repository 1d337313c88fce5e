package tgbot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
)

const topSize = 10

var errTournamentArg = errors.New("indicá el número de torneo, ver /torneos")

func tournamentArg(args string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return 0, errTournamentArg
	}
	return id, nil
}

type TopCommand struct {
	tournaments *service.TournamentService
}

func (c *TopCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	id, err := tournamentArg(args)
	if err != nil {
		return err
	}
	standings, err := c.tournaments.Standings(ctx, id)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, st := range standings[:min(topSize, len(standings))] {
		fmt.Fprintf(&b, "%d. %s %d/%d (%s) elo %d\n", st.Rank, st.Player.Name, st.Won, st.Played, st.WinRate, st.Elo)
	}
	resp.Text = b.String()
	if resp.Text == "" {
		resp.Text = "Sin jugadores"
	}
	return nil
}

func (c *TopCommand) Help() string {
	return "Tabla de posiciones. Uso: /top <torneo>"
}

func (c *TopCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *TopCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

type Glicko2TopCommand struct {
	tournaments *service.TournamentService
}

func (c *Glicko2TopCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	id, err := tournamentArg(args)
	if err != nil {
		return err
	}
	standings, err := c.tournaments.Standings(ctx, id)
	if err != nil {
		return err
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Glicko.Rating > standings[j].Glicko.Rating
	})
	resp.Text = formatGlicko(standings[:min(topSize, len(standings))])
	return nil
}

func formatGlicko(standings []domain.Standing) string {
	if len(standings) == 0 {
		return "Sin jugadores"
	}
	var b strings.Builder
	for i, st := range standings {
		fmt.Fprintf(&b, "%d. %s %.0f±%.0f\n", i+1, st.Player.Name, st.Glicko.Rating, st.Glicko.Deviation*2)
	}
	return b.String()
}

func (c *Glicko2TopCommand) Help() string {
	return "Ranking Glicko-2 del torneo. Uso: /glicko <torneo>"
}

func (c *Glicko2TopCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *Glicko2TopCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}
