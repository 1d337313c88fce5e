package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/goserg/trucoserver/auth/storage"
	"github.com/goserg/trucoserver/auth/users"
	"github.com/goserg/trucoserver/gen/model"
	"github.com/goserg/trucoserver/gen/table"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(db *sql.DB, l *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "auth-storage"),
	}
}

type userWithRoles struct {
	model.Users
	UserRoles []model.UserRoles
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dest userWithRoles
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
			table.UserRoles.AllColumns,
		).
		FROM(table.Users.LEFT_JOIN(table.UserRoles, table.UserRoles.UserID.EQ(table.Users.ID))).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String())).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return users.User{}, notFound(err)
	}
	return convertUserToDomain(dest.Users, dest.UserRoles)
}

func (s *Storage) GetUserSecret(ctx context.Context, user users.User) (users.Secret, error) {
	var where sqlite.BoolExpression
	switch {
	case user.ID != uuid.Nil:
		where = table.Users.ID.EQ(sqlite.String(user.ID.String()))
	case user.Name != "":
		where = table.Users.Username.EQ(sqlite.String(user.Name))
	default:
		return users.Secret{}, errors.New("empty user")
	}

	var dbUser model.Users
	err := table.Users.
		SELECT(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		).
		FROM(table.Users).
		WHERE(where.AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		return users.Secret{}, notFound(err)
	}
	hash, err := hex.DecodeString(dbUser.PasswordHash)
	if err != nil {
		return users.Secret{}, err
	}
	salt, err := hex.DecodeString(dbUser.PasswordSalt)
	if err != nil {
		return users.Secret{}, err
	}
	return users.Secret{
		PasswordHash: hash,
		Salt:         salt,
	}, nil
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	_, err = table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(model.Users{
			ID:           user.ID.String(),
			Username:     user.Name,
			PasswordHash: hex.EncodeToString(secret.PasswordHash),
			PasswordSalt: hex.EncodeToString(secret.Salt),
			CreatedAt:    time.Now(),
		}).
		ExecContext(ctx, tx)
	if err != nil {
		return errors.Join(err, tx.Rollback())
	}
	for _, role := range user.Roles {
		_, err = table.UserRoles.
			INSERT(table.UserRoles.AllColumns).
			MODEL(model.UserRoles{
				UserID: user.ID.String(),
				Role:   role,
			}).
			ExecContext(ctx, tx)
		if err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.log.WithField("user", user.Name).Info("user created")
	return nil
}

func (s *Storage) SignIn(ctx context.Context, name string, passwordHash []byte) (users.User, error) {
	var dest userWithRoles
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
			table.UserRoles.AllColumns,
		).
		FROM(table.Users.LEFT_JOIN(table.UserRoles, table.UserRoles.UserID.EQ(table.Users.ID))).
		WHERE(
			table.Users.Username.EQ(sqlite.String(name)).
				AND(table.Users.DeletedAt.IS_NULL()).
				AND(table.Users.PasswordHash.EQ(sqlite.String(hex.EncodeToString(passwordHash)))),
		).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return users.User{}, notFound(err)
	}
	return convertUserToDomain(dest.Users, dest.UserRoles)
}

func convertUserToDomain(user model.Users, roles []model.UserRoles) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	u := users.User{
		ID:           id,
		Name:         user.Username,
		Roles:        make([]string, 0, len(roles)),
		RegisteredAt: user.CreatedAt,
	}
	for _, role := range roles {
		u.Roles = append(u.Roles, role.Role)
	}
	return u, nil
}

func notFound(err error) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return storage.ErrUserNotFound
	}
	return err
}
