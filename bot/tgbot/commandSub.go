package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/botstorage"
	"github.com/goserg/trucoserver/bot/model"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(int)
}

func (c *SubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	if user.Subscribed(model.NewMatch) {
		resp.Text = "Ya tenés los avisos activados"
		return nil
	}
	err := c.botStorage.Subscribe(user, model.NewMatch)
	if err != nil {
		return err
	}
	c.sub(user.ID)
	resp.Text = "Te vamos a avisar de cada partido nuevo, para dejar de recibir avisos: /unsub"
	return nil
}

func (c *SubCommand) Help() string {
	return `Avisos de partidos nuevos`
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}
