package model

import (
	"slices"
	"strconv"
	"time"
)

type EventType string

const (
	NewMatch EventType = "new_match"
)

type UserRole int

const (
	RoleAdmin UserRole = iota + 1
	RoleModerator
	RoleUser
)

type User struct {
	ID        int
	FirstName string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Role UserRole

	Subscriptions []EventType
}

// SessionOwner keys the scoring session a telegram user drives.
func (u User) SessionOwner() string {
	return "tg:" + strconv.Itoa(u.ID)
}

func (u User) Subscribed(event EventType) bool {
	return slices.Contains(u.Subscriptions, event)
}
