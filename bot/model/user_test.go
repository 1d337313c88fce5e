package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser(t *testing.T) {
	u := User{ID: 42}
	assert.Equal(t, "tg:42", u.SessionOwner())
	assert.False(t, u.Subscribed(NewMatch))

	u.Subscriptions = []EventType{NewMatch}
	assert.True(t, u.Subscribed(NewMatch))
}
