package mem

import (
	"sort"
	"sync"

	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/normalize"
)

// PlayerCache indexes players by normalized name.
type PlayerCache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string]domain.Player
}

func New() *PlayerCache {
	return &PlayerCache{
		players: make(map[string]domain.Player),
	}
}

func (c *PlayerCache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player, len(players))
	for i := range players {
		c.players[normalize.Name(players[i].Name)] = players[i]
	}
	c.valid = true
}

func (c *PlayerCache) Put(player domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players[normalize.Name(player.Name)] = player
}

func (c *PlayerCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}

func (c *PlayerCache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.valid
}

func (c *PlayerCache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.players[normalize.Name(name)]
	return player, ok
}

// List returns the cached players sorted by name.
func (c *PlayerCache) List() []domain.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players := make([]domain.Player, 0, len(c.players))
	for _, player := range c.players {
		players = append(players, player)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return normalize.Name(players[i].Name) < normalize.Name(players[j].Name)
	})
	return players
}
