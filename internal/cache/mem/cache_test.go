package mem

import (
	"testing"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPlayerCache(t *testing.T) {
	c := New()
	assert.False(t, c.Valid())

	jose := domain.Player{ID: uuid.New(), Name: "José"}
	ana := domain.Player{ID: uuid.New(), Name: "Ana"}
	c.Update([]domain.Player{jose, ana})
	assert.True(t, c.Valid())

	got, ok := c.GetPlayerByName("jose")
	assert.True(t, ok)
	assert.Equal(t, jose.ID, got.ID)

	_, ok = c.GetPlayerByName("pedro")
	assert.False(t, ok)

	pedro := domain.Player{ID: uuid.New(), Name: "Pedro"}
	c.Put(pedro)
	_, ok = c.GetPlayerByName("PEDRO")
	assert.True(t, ok)

	list := c.List()
	assert.Equal(t, []string{"Ana", "José", "Pedro"}, []string{list[0].Name, list[1].Name, list[2].Name})

	c.Invalidate()
	assert.False(t, c.Valid())
}
