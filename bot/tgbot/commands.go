package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/botstorage"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/service"
)

type Command interface {
	Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

var (
	everyone = []model.UserRole{model.RoleAdmin, model.RoleModerator, model.RoleUser}
	staff    = []model.UserRole{model.RoleAdmin, model.RoleModerator}
)

type Commands struct {
	list map[string]Command
}

func NewCommands(
	svc service.Services,
	bs botstorage.BotStorage,
	adminPass string,
	subFn func(id int),
	unsubFn func(id int),
) *Commands {
	hc := &HelpCommand{}
	score := &ScoreCommand{scoring: svc.Scoring}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"torneos": &TournamentsCommand{
				tournaments: svc.Tournaments,
			},
			"top": &TopCommand{
				tournaments: svc.Tournaments,
			},
			"glicko": &Glicko2TopCommand{
				tournaments: svc.Tournaments,
			},
			"reyes": &DrawCommand{
				draws: svc.Draws,
			},
			"nuevo_jugador": &NewPlayerCommand{
				playerService: svc.Players,
			},
			"nuevo_partido": &NewMatchCommand{
				players: svc.Players,
				matches: svc.Matches,
			},
			"partido":   &OpenMatchCommand{scoring: svc.Scoring},
			"tanto":     score,
			"falta":     &FaltaEnvidoCommand{ScoreCommand: score},
			"historial": &HistoryCommand{scoring: svc.Scoring},
			"volver":    &RestoreCommand{scoring: svc.Scoring},
			"cerrar":    &CloseCommand{scoring: svc.Scoring},
			"soy": &LinkPlayerCommand{
				playerService: svc.Players,
				botStorage:    bs,
			},
			"yo": &MeCommand{
				playerService: svc.Players,
				matches:       svc.Matches,
				botStorage:    bs,
			},
			"role": &RoleCommand{
				adminPassword: adminPass,
				botStorage:    bs,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, user model.User, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	command, ok := uc.list[cmd]
	if !ok || !command.Permission().Contains(user.Role) {
		return ErrBadRequest
	}
	return command.Run(ctx, user, args, resp)
}
