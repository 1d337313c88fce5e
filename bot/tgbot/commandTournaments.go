package tgbot

import (
	"context"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
)

type TournamentsCommand struct {
	tournaments *service.TournamentService
}

func (c *TournamentsCommand) Run(ctx context.Context, _ model.User, _ string, resp *tgbotapi.MessageConfig) error {
	list, err := c.tournaments.ListTournaments(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		resp.Text = "No hay torneos"
		return nil
	}
	var b strings.Builder
	for _, t := range list {
		finished := 0
		for _, m := range t.Matches {
			if m.State == domain.StateFinished {
				finished++
			}
		}
		fmt.Fprintf(&b, "%d. %s (%d/%d partidos jugados)\n", t.ID, t.Name, finished, len(t.Matches))
	}
	resp.Text = b.String()
	return nil
}

func (c *TournamentsCommand) Help() string {
	return "Lista los torneos con su número"
}

func (c *TournamentsCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *TournamentsCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}
