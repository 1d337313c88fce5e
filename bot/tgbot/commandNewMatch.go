package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/service"
)

var errNewMatchUsage = errors.New("uso: /nuevo_partido <torneo> ana beto vs carla dani")

type NewMatchCommand struct {
	players *service.PlayerService
	matches *service.MatchService
}

func (c *NewMatchCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	fields := strings.Fields(args)
	if len(fields) < 4 {
		return errNewMatchUsage
	}
	tournamentID, err := strconv.Atoi(fields[0])
	if err != nil {
		return errNewMatchUsage
	}
	var local, visitor []string
	side := &local
	for _, f := range fields[1:] {
		if strings.EqualFold(f, "vs") {
			side = &visitor
			continue
		}
		*side = append(*side, f)
	}
	if len(local) == 0 || len(visitor) == 0 {
		return errNewMatchUsage
	}
	localIDs, localName, err := c.resolve(ctx, local)
	if err != nil {
		return err
	}
	visitorIDs, visitorName, err := c.resolve(ctx, visitor)
	if err != nil {
		return err
	}
	m, err := c.matches.CreateMatch(ctx, service.NewMatch{
		TournamentID:     tournamentID,
		LocalTeamName:    localName,
		LocalPlayerIDs:   localIDs,
		VisitorTeamName:  visitorName,
		VisitorPlayerIDs: visitorIDs,
	})
	if err != nil {
		return err
	}
	resp.Text = "partido creado\n" + formatMatch(m)
	return nil
}

func (c *NewMatchCommand) resolve(ctx context.Context, names []string) ([]uuid.UUID, string, error) {
	ids := make([]uuid.UUID, 0, len(names))
	canonical := make([]string, 0, len(names))
	for _, name := range names {
		p, err := c.players.GetByName(ctx, name)
		if err != nil {
			return nil, "", err
		}
		ids = append(ids, p.ID)
		canonical = append(canonical, p.Name)
	}
	return ids, strings.Join(canonical, " - "), nil
}

func (c *NewMatchCommand) Help() string {
	return "Crear un partido. Uso: /nuevo_partido <torneo> ana beto vs carla dani"
}

func (c *NewMatchCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

func (c *NewMatchCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}
