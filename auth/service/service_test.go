package service

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/goserg/trucoserver/auth/storage/sqlite"
	"github.com/goserg/trucoserver/auth/users"
	"github.com/goserg/trucoserver/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "auth.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	l := logrus.New()
	l.SetOutput(io.Discard)

	s, err := New(context.Background(), Config{
		Token:          "secret",
		Expiration:     "1h",
		RootPassword:   "rootpass",
		PasswordPepper: "pepper",
		Rules: []Rule{
			{Name: "login", Path: "^/api/auth/login$", Method: []string{"POST"}, Allow: []string{"*"}},
			{Name: "read", Path: "^/api/matches", Method: []string{"GET"}, Allow: []string{"*"}},
			{Name: "admin", Path: "^/api", Method: []string{"*"}, Allow: []string{users.RoleAdmin}},
		},
	}, sqlite.New(db, l))
	require.NoError(t, err)
	return s
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	root, err := s.Login(ctx, "root", "rootpass")
	require.NoError(t, err)
	assert.Equal(t, "root", root.Name)
	assert.True(t, root.HasRole(users.RoleAdmin))

	_, err = s.Login(ctx, "root", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = s.Login(ctx, "nobody", "rootpass")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestService_Auth(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	root, err := s.Login(ctx, "root", "rootpass")
	require.NoError(t, err)
	rootCookie, err := s.GenerateJWTCookie(root.ID, "localhost")
	require.NoError(t, err)
	assert.Equal(t, CookieName, rootCookie.Name)

	require.NoError(t, s.SignUp(ctx, "pepe", "pass"))
	pepe, err := s.Login(ctx, "pepe", "pass")
	require.NoError(t, err)
	pepeCookie, err := s.GenerateJWTCookie(pepe.ID, "localhost")
	require.NoError(t, err)

	tests := []struct {
		name    string
		cookie  string
		method  string
		url     string
		wantErr error
	}{
		{name: "guest login", method: "POST", url: "/api/auth/login"},
		{name: "guest read", method: "GET", url: "/api/matches?page=1"},
		{name: "guest write", method: "POST", url: "/api/matches", wantErr: ErrNotAuthorized},
		{name: "user write", cookie: pepeCookie.Value, method: "POST", url: "/api/matches", wantErr: ErrForbidden},
		{name: "admin write", cookie: rootCookie.Value, method: "POST", url: "/api/matches"},
		{name: "bad token", cookie: "garbage", method: "GET", url: "/api/matches", wantErr: ErrNotAuthorized},
		{name: "no rule", cookie: rootCookie.Value, method: "GET", url: "/other", wantErr: ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Auth(ctx, tt.cookie, tt.method, tt.url)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_User(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	guest, err := s.User(ctx, "")
	require.NoError(t, err)
	assert.True(t, guest.Guest())

	root, err := s.Login(ctx, "root", "rootpass")
	require.NoError(t, err)
	cookie, err := s.GenerateJWTCookie(root.ID, "localhost")
	require.NoError(t, err)
	user, err := s.User(ctx, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "root", user.Name)

	_, err = s.User(ctx, "garbage")
	assert.Error(t, err)
}
