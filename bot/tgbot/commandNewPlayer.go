package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/service"
)

type NewPlayerCommand struct {
	playerService *service.PlayerService
}

func (c *NewPlayerCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	player, err := c.playerService.CreatePlayer(ctx, args)
	if err != nil {
		return err
	}
	resp.Text = "jugador " + player.Name + " creado"
	return nil
}

func (c *NewPlayerCommand) Help() string {
	return "Agregar un jugador. Uso: /nuevo_jugador <nombre>"
}

func (c *NewPlayerCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

func (c *NewPlayerCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}
