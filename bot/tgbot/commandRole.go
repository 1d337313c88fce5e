package tgbot

import (
	"context"
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/botstorage"
	"github.com/goserg/trucoserver/bot/model"
)

var errSameRole = errors.New("ya tenés ese rol")

type RoleCommand struct {
	adminPassword string
	botStorage    botstorage.BotStorage
}

func (c *RoleCommand) Run(_ context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	text, err := c.handleRole(user, args)
	if err != nil {
		return err
	}
	resp.Text = text
	return nil
}

func (c *RoleCommand) Help() string {
	return `Cambia el rol. Uso: /role user o /role admin <contraseña>`
}

func (c *RoleCommand) handleRole(user model.User, args string) (string, error) {
	a := strings.SplitN(strings.TrimSpace(args), " ", 2)
	switch a[0] {
	case "admin":
		if user.Role == model.RoleAdmin {
			return "", errSameRole
		}
		if len(a) != 2 || c.adminPassword == "" || a[1] != c.adminPassword {
			return "", ErrBadRequest
		}
		user.Role = model.RoleAdmin
	case "user":
		if user.Role == model.RoleUser {
			return "", errSameRole
		}
		user.Role = model.RoleUser
	default:
		return "", ErrBadRequest
	}
	err := c.botStorage.UpdateUserRole(user)
	if err != nil {
		return "", err
	}
	return "rol actualizado", nil
}

func (c *RoleCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *RoleCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}
