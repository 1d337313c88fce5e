package tgbot

import (
	"context"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/model"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if command, ok := c.commands[strings.TrimPrefix(args, "/")]; ok && command.Visibility().Contains(user.Role) {
		resp.Text = command.Help()
		return nil
	}
	names := make([]string, 0, len(c.commands))
	for name, command := range c.commands {
		if command.Visibility().Contains(user.Role) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("Comandos disponibles:\n")
	for _, name := range names {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Ayuda de un comando: /help y el nombre del comando")
	resp.Text = b.String()
	return nil
}

func (c *HelpCommand) Help() string {
	return "Lista los comandos disponibles"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *HelpCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}
