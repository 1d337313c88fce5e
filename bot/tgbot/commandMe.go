package tgbot

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/botstorage"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/service"
)

const myMatches = 5

type MeCommand struct {
	playerService *service.PlayerService
	matches       *service.MatchService
	botStorage    botstorage.BotStorage
}

func (c *MeCommand) Run(ctx context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	playerID, err := c.botStorage.GetMyPlayer(user)
	if err != nil {
		return err
	}
	player, err := c.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	page, err := c.matches.ListMatches(ctx, domain.MatchFilter{Size: 100})
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(player.Name)
	b.WriteString("\n")
	shown := 0
	for _, m := range page.Content {
		if _, ok := m.Plays(player.ID); !ok {
			continue
		}
		b.WriteString(formatMatch(m))
		b.WriteString("\n")
		shown++
		if shown == myMatches {
			break
		}
	}
	if shown == 0 {
		b.WriteString("todavía sin partidos")
	}
	resp.Text = b.String()
	return nil
}

func (c *MeCommand) Help() string {
	return "Últimos partidos de tu jugador, se asocia con /soy"
}

func (c *MeCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *MeCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

type LinkPlayerCommand struct {
	playerService *service.PlayerService
	botStorage    botstorage.BotStorage
}

func (c *LinkPlayerCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	player, err := c.playerService.GetByName(ctx, args)
	if err != nil {
		return err
	}
	if err := c.botStorage.LinkPlayer(user, player.ID); err != nil {
		return err
	}
	resp.Text = "sos " + player.Name + ", ahora podés usar /yo"
	return nil
}

func (c *LinkPlayerCommand) Help() string {
	return "Asocia tu usuario a un jugador. Uso: /soy <nombre>"
}

func (c *LinkPlayerCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *LinkPlayerCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}
