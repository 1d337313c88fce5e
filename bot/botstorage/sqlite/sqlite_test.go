package sqlite

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/goserg/trucoserver/bot/botstorage"
	"github.com/goserg/trucoserver/bot/model"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/storage"
	mainstorage "github.com/goserg/trucoserver/internal/storage/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "bot.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := New(db, l)

	_, err = s.GetUser(42)
	assert.ErrorIs(t, err, botstorage.ErrUserNotFound)

	u, err := s.NewUser(model.User{ID: 42, FirstName: "Ana", Username: "ana", CreatedAt: time.Now(), UpdatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Role)

	require.NoError(t, s.Log(u, "/help"))

	require.NoError(t, s.Subscribe(u, model.NewMatch))
	require.NoError(t, s.Subscribe(u, model.NewMatch))
	got, err := s.GetUser(42)
	require.NoError(t, err)
	assert.Equal(t, []model.EventType{model.NewMatch}, got.Subscriptions)

	u.Role = model.RoleAdmin
	require.NoError(t, s.UpdateUserRole(u))
	got, err = s.GetUser(42)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, got.Role)

	_, err = s.NewUser(model.User{ID: 7, FirstName: "Beto", CreatedAt: time.Now(), UpdatedAt: time.Now()})
	require.NoError(t, err)
	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 7, users[0].ID)
	assert.Empty(t, users[0].Subscriptions)
	assert.Len(t, users[1].Subscriptions, 1)

	require.NoError(t, s.Unsubscribe(u, model.NewMatch))
	got, err = s.GetUser(42)
	require.NoError(t, err)
	assert.Empty(t, got.Subscriptions)

	_, err = s.GetMyPlayer(u)
	assert.ErrorIs(t, err, botstorage.ErrNoPlayer)
	players := mainstorage.New(db, l)
	first, err := players.AddPlayer(context.Background(), domain.Player{Name: "Ana"})
	require.NoError(t, err)
	second, err := players.AddPlayer(context.Background(), domain.Player{Name: "Carla"})
	require.NoError(t, err)
	require.NoError(t, s.LinkPlayer(u, first.ID))
	require.NoError(t, s.LinkPlayer(u, second.ID))
	id, err := s.GetMyPlayer(u)
	require.NoError(t, err)
	assert.Equal(t, second.ID, id)
}
