package botstorage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/goserg/trucoserver/bot/model"
)

var (
	ErrUserNotFound = errors.New("bot user not found")
	ErrNoPlayer     = errors.New("no hay jugador asociado, usá /soy <nombre>")
)

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	ListUsers() ([]model.User, error)
	Log(user model.User, msg string) error
	Subscribe(user model.User, event model.EventType) error
	Unsubscribe(user model.User, event model.EventType) error
	UpdateUserRole(user model.User) error
	LinkPlayer(user model.User, playerID uuid.UUID) error
	GetMyPlayer(user model.User) (uuid.UUID, error)
}
