package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/cache/mem"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/storage"
	"github.com/sirupsen/logrus"
)

type PlayerService struct {
	storage storage.PlayerStorage
	cache   *mem.PlayerCache
	log     *logrus.Entry
}

func NewPlayerService(ps storage.PlayerStorage, l *logrus.Logger) *PlayerService {
	return &PlayerService{
		storage: ps,
		cache:   mem.New(),
		log:     l.WithField("from", "player-service"),
	}
}

func (s *PlayerService) refresh(ctx context.Context) error {
	if s.cache.Valid() {
		return nil
	}
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}
	s.cache.Update(players)
	return nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, name string) (domain.Player, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return domain.Player{}, invalid("el nombre del jugador no puede estar vacío")
	}
	if err := s.refresh(ctx); err != nil {
		return domain.Player{}, err
	}
	if existing, ok := s.cache.GetPlayerByName(name); ok {
		return domain.Player{}, fmt.Errorf("jugador %q: %w", existing.Name, storage.ErrDuplicate)
	}
	player, err := s.storage.AddPlayer(ctx, domain.Player{Name: name})
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Put(player)
	return player, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return s.cache.List(), nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetByName looks the player up ignoring case, accents and spacing.
func (s *PlayerService) GetByName(ctx context.Context, name string) (domain.Player, error) {
	if err := s.refresh(ctx); err != nil {
		return domain.Player{}, err
	}
	player, ok := s.cache.GetPlayerByName(name)
	if !ok {
		return domain.Player{}, fmt.Errorf("jugador %q: %w", name, storage.ErrNotFound)
	}
	return player, nil
}

// Resolve loads the players with the given ids keeping their order.
func (s *PlayerService) Resolve(ctx context.Context, ids []uuid.UUID) ([]domain.Player, error) {
	players := make([]domain.Player, 0, len(ids))
	for _, id := range ids {
		p, err := s.storage.GetPlayer(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("jugador %s: %w", id, err)
		}
		players = append(players, p)
	}
	return players, nil
}
