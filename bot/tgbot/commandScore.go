package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/scorehistory"
	"github.com/goserg/trucoserver/internal/service"
)

var errSide = errors.New("el equipo es l (local) o v (visitante)")

func parseSide(s string) (domain.Side, error) {
	switch strings.ToLower(s) {
	case "l", "local":
		return domain.SideLocal, nil
	case "v", "visitante", "visitor":
		return domain.SideVisitor, nil
	}
	return "", errSide
}

type OpenMatchCommand struct {
	scoring *service.Scoring
}

func (c *OpenMatchCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return errors.New("uso: /partido <número>")
	}
	m, err := c.scoring.OpenMatch(ctx, user.SessionOwner(), id)
	if err != nil {
		return err
	}
	resp.Text = formatMatch(m) + "\nAnotá con /tanto l 2, /falta v, /historial"
	return nil
}

func (c *OpenMatchCommand) Help() string {
	return "Abre un partido para anotar. Uso: /partido <número>"
}

func (c *OpenMatchCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

func (c *OpenMatchCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

type ScoreCommand struct {
	scoring *service.Scoring
}

func (c *ScoreCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return errors.New("uso: /tanto <l|v> <puntos>, los puntos pueden ser negativos")
	}
	side, err := parseSide(fields[0])
	if err != nil {
		return err
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return errors.New("los puntos tienen que ser un número")
	}
	owner := user.SessionOwner()
	id, err := c.scoring.Current(owner)
	if err != nil {
		return err
	}
	m, err := c.scoring.UpdateScore(ctx, owner, id, side, amount)
	if err != nil {
		return err
	}
	resp.Text = formatMatch(m)
	return nil
}

func (c *ScoreCommand) Help() string {
	return "Suma o resta puntos al partido abierto. Uso: /tanto <l|v> <puntos>"
}

func (c *ScoreCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

func (c *ScoreCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

type FaltaEnvidoCommand struct {
	*ScoreCommand
}

func (c *FaltaEnvidoCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	side, err := parseSide(strings.TrimSpace(args))
	if err != nil {
		return err
	}
	owner := user.SessionOwner()
	id, err := c.scoring.Current(owner)
	if err != nil {
		return err
	}
	m, err := c.scoring.FaltaEnvido(ctx, owner, id, side)
	if err != nil {
		return err
	}
	resp.Text = formatMatch(m)
	return nil
}

func (c *FaltaEnvidoCommand) Help() string {
	return "Falta envido ganado por un equipo. Uso: /falta <l|v>"
}

type HistoryCommand struct {
	scoring *service.Scoring
}

func (c *HistoryCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	id, entries, err := c.scoring.History(user.SessionOwner(), service.AnyMatch)
	if err != nil {
		return err
	}
	resp.Text = formatHistory(id, entries)
	return nil
}

func (c *HistoryCommand) Help() string {
	return "Puntajes anteriores del partido abierto"
}

func (c *HistoryCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

func (c *HistoryCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

type RestoreCommand struct {
	scoring *service.Scoring
}

func (c *RestoreCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	index, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return errors.New("uso: /volver <n>, ver /historial")
	}
	m, err := c.scoring.Restore(ctx, user.SessionOwner(), service.AnyMatch, index)
	if err != nil {
		if errors.Is(err, scorehistory.ErrInvalidRestoreTarget) {
			return fmt.Errorf("no hay puntaje %d para volver, ver /historial", index)
		}
		return err
	}
	resp.Text = "puntaje restaurado\n" + formatMatch(m)
	return nil
}

func (c *RestoreCommand) Help() string {
	return "Vuelve a un puntaje anterior. Uso: /volver <n>"
}

func (c *RestoreCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

func (c *RestoreCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

type CloseCommand struct {
	scoring *service.Scoring
}

func (c *CloseCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	c.scoring.CloseSession(user.SessionOwner())
	resp.Text = "partido cerrado"
	return nil
}

func (c *CloseCommand) Help() string {
	return "Deja de anotar el partido abierto"
}

func (c *CloseCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}

func (c *CloseCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](staff...)
}
