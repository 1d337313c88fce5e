package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/goserg/trucoserver/bot/botstorage"
	"github.com/goserg/trucoserver/bot/model"
	dbmodel "github.com/goserg/trucoserver/gen/model"
	"github.com/goserg/trucoserver/gen/table"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(db *sql.DB, l *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "bot-storage"),
	}
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	if user.Role == 0 {
		user.Role = model.RoleUser
	}
	var dbuser dbmodel.BotUsers
	err := table.BotUsers.
		INSERT(table.BotUsers.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.BotUsers.AllColumns).
		Query(s.db, &dbuser)
	if err != nil {
		return model.User{}, err
	}
	s.log.WithField("user_id", user.ID).Info("bot user created")
	return convertUserToDomain(dbuser, nil), nil
}

func convertUserFromDomain(user model.User) dbmodel.BotUsers {
	return dbmodel.BotUsers{
		ID:        int32(user.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		Role:      int32(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func convertUserToDomain(user dbmodel.BotUsers, events []dbmodel.BotUserEvents) model.User {
	converted := model.User{
		ID:        int(user.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Role:      model.UserRole(user.Role),
	}
	for i := range events {
		converted.Subscriptions = append(converted.Subscriptions, model.EventType(events[i].Event))
	}
	return converted
}

type userWithEvents struct {
	dbmodel.BotUsers
	BotUserEvents []dbmodel.BotUserEvents
}

func (s *Storage) GetUser(id int) (model.User, error) {
	var dest userWithEvents
	err := table.BotUsers.
		SELECT(table.BotUsers.AllColumns, table.BotUserEvents.AllColumns).
		FROM(table.BotUsers.
			LEFT_JOIN(table.BotUserEvents, table.BotUserEvents.UserID.EQ(table.BotUsers.ID)),
		).
		WHERE(table.BotUsers.ID.EQ(sqlite.Int(int64(id)))).
		Query(s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.User{}, botstorage.ErrUserNotFound
		}
		return model.User{}, err
	}
	return convertUserToDomain(dest.BotUsers, dest.BotUserEvents), nil
}

func (s *Storage) ListUsers() ([]model.User, error) {
	var dest []userWithEvents
	err := table.BotUsers.
		SELECT(table.BotUsers.AllColumns, table.BotUserEvents.AllColumns).
		FROM(table.BotUsers.
			LEFT_JOIN(table.BotUserEvents, table.BotUserEvents.UserID.EQ(table.BotUsers.ID)),
		).
		ORDER_BY(table.BotUsers.ID.ASC()).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(dest))
	for i := range dest {
		users = append(users, convertUserToDomain(dest[i].BotUsers, dest[i].BotUserEvents))
	}
	return users, nil
}

func (s *Storage) Log(user model.User, msg string) error {
	_, err := table.BotLog.
		INSERT(table.BotLog.MutableColumns).
		MODEL(dbmodel.BotLog{
			UserID:    int32(user.ID),
			Message:   msg,
			CreatedAt: time.Now(),
		}).
		Exec(s.db)
	return err
}

func (s *Storage) Subscribe(user model.User, event model.EventType) error {
	_, err := table.BotUserEvents.
		INSERT(table.BotUserEvents.AllColumns).
		MODEL(dbmodel.BotUserEvents{
			UserID: int32(user.ID),
			Event:  string(event),
		}).
		ON_CONFLICT(table.BotUserEvents.UserID, table.BotUserEvents.Event).
		DO_NOTHING().
		Exec(s.db)
	return err
}

func (s *Storage) Unsubscribe(user model.User, event model.EventType) error {
	_, err := table.BotUserEvents.
		DELETE().
		WHERE(
			table.BotUserEvents.UserID.EQ(sqlite.Int(int64(user.ID))).
				AND(table.BotUserEvents.Event.EQ(sqlite.String(string(event)))),
		).
		Exec(s.db)
	return err
}

func (s *Storage) UpdateUserRole(user model.User) error {
	_, err := table.BotUsers.
		UPDATE(table.BotUsers.Role, table.BotUsers.UpdatedAt).
		MODEL(dbmodel.BotUsers{
			Role:      int32(user.Role),
			UpdatedAt: time.Now(),
		}).
		WHERE(table.BotUsers.ID.EQ(sqlite.Int(int64(user.ID)))).
		Exec(s.db)
	return err
}

func (s *Storage) LinkPlayer(user model.User, playerID uuid.UUID) error {
	_, err := table.BotUserPlayers.
		INSERT(table.BotUserPlayers.AllColumns).
		MODEL(dbmodel.BotUserPlayers{
			UserID:   int32(user.ID),
			PlayerID: playerID.String(),
		}).
		ON_CONFLICT(table.BotUserPlayers.UserID).
		DO_UPDATE(sqlite.SET(
			table.BotUserPlayers.PlayerID.SET(sqlite.String(playerID.String())),
		)).
		Exec(s.db)
	return err
}

func (s *Storage) GetMyPlayer(user model.User) (uuid.UUID, error) {
	var up dbmodel.BotUserPlayers
	err := table.BotUserPlayers.
		SELECT(table.BotUserPlayers.AllColumns).
		FROM(table.BotUserPlayers).
		WHERE(table.BotUserPlayers.UserID.EQ(sqlite.Int(int64(user.ID)))).
		Query(s.db, &up)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return uuid.Nil, botstorage.ErrNoPlayer
		}
		return uuid.Nil, err
	}
	return uuid.Parse(up.PlayerID)
}
