package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/teamdraw"
)

var errDrawUsage = errors.New("uso: /reyes 2x2 ana beto carla dani o /reyes sale 1 ana beto carla")

type DrawCommand struct {
	draws *service.DrawService
}

func (c *DrawCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	req, names, err := parseDraw(args)
	if err != nil {
		return err
	}
	result, err := c.draws.DrawNames(ctx, names, req)
	if err != nil {
		if errors.Is(err, teamdraw.ErrInsufficientParticipants) {
			return errors.New("no alcanzan los jugadores para ese sorteo")
		}
		if errors.Is(err, teamdraw.ErrDuplicateParticipant) {
			return errors.New("hay jugadores repetidos")
		}
		return err
	}
	resp.Text = formatDraw(result)
	return nil
}

// parseDraw reads "<equipos>x<tamaño> nombres..." or "sale <n> nombres...".
func parseDraw(args string) (service.DrawRequest, []string, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return service.DrawRequest{}, nil, errDrawUsage
	}
	if strings.EqualFold(fields[0], "sale") {
		n, err := strconv.Atoi(fields[1])
		if err != nil || len(fields) < 3 {
			return service.DrawRequest{}, nil, errDrawUsage
		}
		return service.DrawRequest{
			Mode:         teamdraw.ExcludeSubset,
			ExcludeCount: n,
		}, fields[2:], nil
	}
	count, size, ok := strings.Cut(strings.ToLower(fields[0]), "x")
	if !ok {
		return service.DrawRequest{}, nil, errDrawUsage
	}
	teamCount, err := strconv.Atoi(count)
	if err != nil {
		return service.DrawRequest{}, nil, errDrawUsage
	}
	teamSize, err := strconv.Atoi(size)
	if err != nil {
		return service.DrawRequest{}, nil, errDrawUsage
	}
	return service.DrawRequest{
		Mode:      teamdraw.FormTeams,
		TeamCount: teamCount,
		TeamSize:  teamSize,
	}, fields[1:], nil
}

func (c *DrawCommand) Help() string {
	return `Tirar reyes. Armar equipos: /reyes 2x2 ana beto carla dani
Ver quién sale: /reyes sale 1 ana beto carla`
}

func (c *DrawCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}

func (c *DrawCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](everyone...)
}
