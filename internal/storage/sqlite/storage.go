package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/goserg/trucoserver/gen/model"
	"github.com/goserg/trucoserver/gen/table"
	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/storage"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.TournamentStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(db *sql.DB, l *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "storage"),
	}
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) GetPlayer(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &player)
	if err != nil {
		return domain.Player{}, notFound(err)
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	if player.RegisteredAt.IsZero() {
		player.RegisteredAt = time.Now()
	}
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Player{}, duplicate(err)
	}
	s.log.WithField("player", player.Name).Info("player created")
	return player, nil
}

func (s *Storage) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	var tournaments []model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		ORDER_BY(table.Tournaments.ID.ASC()).
		QueryContext(ctx, s.db, &tournaments)
	if err != nil {
		return nil, err
	}
	return convertTournamentsToDomain(tournaments), nil
}

func (s *Storage) GetTournament(ctx context.Context, id int) (domain.Tournament, error) {
	var t model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		WHERE(table.Tournaments.ID.EQ(sqlite.Int(int64(id)))).
		QueryContext(ctx, s.db, &t)
	if err != nil {
		return domain.Tournament{}, notFound(err)
	}
	return convertTournamentToDomain(t), nil
}

func (s *Storage) CreateTournament(ctx context.Context, t domain.Tournament) (domain.Tournament, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	var created model.Tournaments
	err := table.Tournaments.
		INSERT(table.Tournaments.MutableColumns).
		MODEL(convertTournamentFromDomain(t)).
		RETURNING(table.Tournaments.AllColumns).
		QueryContext(ctx, s.db, &created)
	if err != nil {
		return domain.Tournament{}, err
	}
	s.log.WithFields(logrus.Fields{
		"tournament": created.Name,
		"id":         created.ID,
	}).Info("tournament created")
	return convertTournamentToDomain(created), nil
}

func (s *Storage) RegisterPlayers(ctx context.Context, tournamentID int, playerIDs []uuid.UUID) error {
	return inTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, id := range playerIDs {
			_, err := table.TournamentPlayers.
				INSERT(table.TournamentPlayers.AllColumns).
				MODEL(model.TournamentPlayers{
					TournamentID: int32(tournamentID),
					PlayerID:     id.String(),
				}).
				ON_CONFLICT(table.TournamentPlayers.TournamentID, table.TournamentPlayers.PlayerID).
				DO_NOTHING().
				ExecContext(ctx, tx)
			if err != nil {
				return constraint(err)
			}
		}
		return nil
	})
}

func (s *Storage) ListTournamentPlayers(ctx context.Context, tournamentID int) ([]domain.Player, error) {
	var players []model.Players
	err := sqlite.
		SELECT(table.Players.AllColumns).
		FROM(table.Players.
			INNER_JOIN(table.TournamentPlayers, table.TournamentPlayers.PlayerID.EQ(table.Players.ID)),
		).
		WHERE(table.TournamentPlayers.TournamentID.EQ(sqlite.Int(int64(tournamentID)))).
		ORDER_BY(table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func matchCondition(filter domain.MatchFilter) sqlite.BoolExpression {
	cond := sqlite.Bool(true)
	if filter.TournamentID != 0 {
		cond = cond.AND(table.Matches.TournamentID.EQ(sqlite.Int(int64(filter.TournamentID))))
	}
	if filter.State != 0 {
		cond = cond.AND(table.Matches.StateID.EQ(sqlite.Int(int64(filter.State))))
	}
	return cond
}

// ListMatches returns one page of matches and the number of matches the filter selects.
// A zero page size returns every match.
func (s *Storage) ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, int64, error) {
	cond := matchCondition(filter)

	var total int64
	query, args := sqlite.
		SELECT(sqlite.COUNT(sqlite.STAR)).
		FROM(table.Matches).
		WHERE(cond).
		Sql()
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := table.Matches.PlayedAt.DESC()
	if filter.Ascending {
		order = table.Matches.PlayedAt.ASC()
	}
	stmt := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(cond).
		ORDER_BY(order, table.Matches.ID.DESC())
	if filter.Size > 0 {
		stmt = stmt.LIMIT(int64(filter.Size)).OFFSET(int64(filter.Page * filter.Size))
	}
	var matches []model.Matches
	if err := stmt.QueryContext(ctx, s.db, &matches); err != nil {
		return nil, 0, err
	}
	converted, err := s.fillMatches(ctx, matches)
	if err != nil {
		return nil, 0, err
	}
	return converted, total, nil
}

func (s *Storage) GetMatch(ctx context.Context, id int) (domain.Match, error) {
	var m model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(sqlite.Int(int64(id)))).
		QueryContext(ctx, s.db, &m)
	if err != nil {
		return domain.Match{}, notFound(err)
	}
	matches, err := s.fillMatches(ctx, []model.Matches{m})
	if err != nil {
		return domain.Match{}, err
	}
	return matches[0], nil
}

// fillMatches converts matches and attaches their players and tournament names.
func (s *Storage) fillMatches(ctx context.Context, matches []model.Matches) ([]domain.Match, error) {
	if len(matches) == 0 {
		return []domain.Match{}, nil
	}
	ids := make([]sqlite.Expression, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, sqlite.Int(int64(m.ID)))
	}
	var matchPlayers []model.MatchPlayers
	err := table.MatchPlayers.
		SELECT(table.MatchPlayers.AllColumns).
		FROM(table.MatchPlayers).
		WHERE(table.MatchPlayers.MatchID.IN(ids...)).
		QueryContext(ctx, s.db, &matchPlayers)
	if err != nil {
		return nil, err
	}
	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	tournaments, err := s.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	return assembleMatches(matches, matchPlayers, players, tournaments), nil
}

func (s *Storage) CreateMatch(ctx context.Context, match domain.Match) (domain.Match, error) {
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now()
	}
	if !match.State.Valid() {
		match.State = domain.StatePending
	}
	var created model.Matches
	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		err := table.Matches.
			INSERT(table.Matches.MutableColumns).
			MODEL(convertMatchFromDomain(match)).
			RETURNING(table.Matches.AllColumns).
			QueryContext(ctx, tx, &created)
		if err != nil {
			return constraint(err)
		}
		for _, side := range []domain.Side{domain.SideLocal, domain.SideVisitor} {
			for _, p := range match.Slot(side).Players {
				_, err = table.MatchPlayers.
					INSERT(table.MatchPlayers.AllColumns).
					MODEL(model.MatchPlayers{
						MatchID:  created.ID,
						PlayerID: p.ID.String(),
						Side:     string(side),
					}).
					ExecContext(ctx, tx)
				if err != nil {
					return constraint(err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return domain.Match{}, err
	}
	s.log.WithFields(logrus.Fields{
		"match":   created.ID,
		"local":   created.LocalTeamName,
		"visitor": created.VisitorTeamName,
	}).Info("match created")
	return s.GetMatch(ctx, int(created.ID))
}

func (s *Storage) UpdateMatchScore(ctx context.Context, match domain.Match) error {
	res, err := table.Matches.
		UPDATE(
			table.Matches.ScoreLocal,
			table.Matches.ScoreVisitor,
			table.Matches.StateID,
			table.Matches.WinnerSide,
		).
		MODEL(convertMatchFromDomain(match)).
		WHERE(table.Matches.ID.EQ(sqlite.Int(int64(match.ID)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("match %d: %w", match.ID, storage.ErrNotFound)
	}
	return nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

func notFound(err error) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

func duplicate(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return storage.ErrDuplicate
	}
	return err
}

// constraint reports references to missing rows as ErrNotFound.
func constraint(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return storage.ErrNotFound
	}
	return duplicate(err)
}
