package users

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Roles        []string
	RegisteredAt time.Time
}

// Guest reports whether the request carried no valid session.
func (u User) Guest() bool {
	return u.ID == uuid.Nil
}

func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

type Secret struct {
	PasswordHash []byte
	Salt         []byte
}
