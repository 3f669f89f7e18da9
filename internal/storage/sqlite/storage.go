package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/AVick23/ML-Manager/gen/model"
	"github.com/AVick23/ML-Manager/gen/table"
	"github.com/AVick23/ML-Manager/internal/config"
	"github.com/AVick23/ML-Manager/internal/domain"
	sqlite3 "github.com/AVick23/ML-Manager/internal/migrate"
	"github.com/AVick23/ML-Manager/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.EventStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.RatingStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithField("name", "event-storage")
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("event storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func inTx[T any](ctx context.Context, db *sql.DB, f func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	res, err := f(tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return zero, errors.Join(err, rbErr)
		}
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, err
	}
	return res, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *Storage) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	row := convertEventFromDomain(event)
	var created model.Events
	err := table.Events.
		INSERT(table.Events.Title, table.Events.StartsAt, table.Events.Status, table.Events.CreatedAt).
		MODEL(row).
		RETURNING(table.Events.AllColumns).
		QueryContext(ctx, s.db, &created)
	if err != nil {
		return domain.Event{}, err
	}
	return convertEventToDomain(created), nil
}

func (s *Storage) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	var row model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Event{}, storage.ErrNotFound
		}
		return domain.Event{}, err
	}
	return convertEventToDomain(row), nil
}

func (s *Storage) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	var rows []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.Status.NOT_EQ(sqlite.String(string(domain.EventCompleted)))).
		ORDER_BY(table.Events.StartsAt.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(rows), nil
}

func (s *Storage) ListDue(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	var rows []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(
			table.Events.StartsAt.GT_EQ(sqlite.TimestampT(from)).
				AND(table.Events.StartsAt.LT_EQ(sqlite.TimestampT(to))).
				AND(table.Events.Status.NOT_EQ(sqlite.String(string(domain.EventCompleted)))).
				AND(table.Events.NotifiedAt.IS_NULL()),
		).
		ORDER_BY(table.Events.StartsAt.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(rows), nil
}

func (s *Storage) UpdateStatus(ctx context.Context, id int64, from, to domain.EventStatus) error {
	res, err := table.Events.
		UPDATE(table.Events.Status).
		SET(sqlite.String(string(to))).
		WHERE(
			table.Events.ID.EQ(sqlite.Int(id)).
				AND(table.Events.Status.EQ(sqlite.String(string(from)))),
		).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) MarkNotified(ctx context.Context, id int64, at time.Time) error {
	res, err := table.Events.
		UPDATE(table.Events.NotifiedAt).
		SET(sqlite.TimestampT(at)).
		WHERE(
			table.Events.ID.EQ(sqlite.Int(id)).
				AND(table.Events.NotifiedAt.IS_NULL()),
		).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id int64) error {
	_, err := inTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		matchIDs := table.EventMatches.
			SELECT(table.EventMatches.ID).
			FROM(table.EventMatches).
			WHERE(table.EventMatches.EventID.EQ(sqlite.Int(id)))
		participantIDs := table.MatchParticipants.
			SELECT(table.MatchParticipants.ID).
			FROM(table.MatchParticipants).
			WHERE(table.MatchParticipants.MatchID.IN(matchIDs))

		_, err := table.RoleRatings.
			DELETE().
			WHERE(table.RoleRatings.MatchParticipantID.IN(participantIDs)).
			ExecContext(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		_, err = table.MatchParticipants.
			DELETE().
			WHERE(table.MatchParticipants.MatchID.IN(matchIDs)).
			ExecContext(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		_, err = table.EventMatches.
			DELETE().
			WHERE(table.EventMatches.EventID.EQ(sqlite.Int(id))).
			ExecContext(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		_, err = table.EventParticipants.
			DELETE().
			WHERE(table.EventParticipants.EventID.EQ(sqlite.Int(id))).
			ExecContext(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		res, err := table.Events.
			DELETE().
			WHERE(table.Events.ID.EQ(sqlite.Int(id))).
			ExecContext(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return struct{}{}, err
		}
		if affected == 0 {
			return struct{}{}, storage.ErrNotFound
		}
		return struct{}{}, nil
	})
	return err
}

func (s *Storage) AddParticipant(ctx context.Context, eventID, userID int64) (int, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (int, error) {
		row := model.EventParticipants{
			EventID:  int32(eventID),
			UserID:   userID,
			JoinedAt: time.Now(),
		}
		_, err := table.EventParticipants.
			INSERT(table.EventParticipants.EventID, table.EventParticipants.UserID, table.EventParticipants.JoinedAt).
			MODEL(row).
			ExecContext(ctx, tx)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, storage.ErrDuplicate
			}
			return 0, err
		}
		return countParticipants(ctx, tx, eventID)
	})
}

func (s *Storage) RemoveParticipant(ctx context.Context, eventID, userID int64) (int, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (int, error) {
		res, err := table.EventParticipants.
			DELETE().
			WHERE(
				table.EventParticipants.EventID.EQ(sqlite.Int(eventID)).
					AND(table.EventParticipants.UserID.EQ(sqlite.Int(userID))),
			).
			ExecContext(ctx, tx)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if affected == 0 {
			return 0, storage.ErrNotFound
		}
		return countParticipants(ctx, tx, eventID)
	})
}

func countParticipants(ctx context.Context, tx *sql.Tx, eventID int64) (int, error) {
	var dest struct {
		Count int
	}
	err := table.EventParticipants.
		SELECT(sqlite.COUNT(table.EventParticipants.ID).AS("count")).
		FROM(table.EventParticipants).
		WHERE(table.EventParticipants.EventID.EQ(sqlite.Int(eventID))).
		QueryContext(ctx, tx, &dest)
	if err != nil {
		return 0, err
	}
	return dest.Count, nil
}

func (s *Storage) ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	var rows []model.EventParticipants
	err := table.EventParticipants.
		SELECT(table.EventParticipants.AllColumns).
		FROM(table.EventParticipants).
		WHERE(table.EventParticipants.EventID.EQ(sqlite.Int(eventID))).
		ORDER_BY(table.EventParticipants.JoinedAt.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	return convertParticipantsToDomain(rows), nil
}

func (s *Storage) CreateMatch(ctx context.Context, eventID int64, participants []domain.MatchParticipant) (domain.Match, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (domain.Match, error) {
		var matchRow model.EventMatches
		err := table.EventMatches.
			INSERT(table.EventMatches.EventID, table.EventMatches.CreatedAt).
			MODEL(model.EventMatches{
				EventID:   int32(eventID),
				CreatedAt: time.Now(),
			}).
			RETURNING(table.EventMatches.AllColumns).
			QueryContext(ctx, tx, &matchRow)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.Match{}, storage.ErrDuplicate
			}
			return domain.Match{}, err
		}

		rows := convertMatchParticipantsFromDomain(int64(matchRow.ID), participants)
		var created []model.MatchParticipants
		err = table.MatchParticipants.
			INSERT(
				table.MatchParticipants.MatchID,
				table.MatchParticipants.UserID,
				table.MatchParticipants.Team,
				table.MatchParticipants.RolePlayed,
				table.MatchParticipants.Played,
			).
			MODELS(rows).
			RETURNING(table.MatchParticipants.AllColumns).
			QueryContext(ctx, tx, &created)
		if err != nil {
			return domain.Match{}, err
		}

		_, err = table.Events.
			UPDATE(table.Events.Status).
			SET(sqlite.String(string(domain.EventLineupFixed))).
			WHERE(
				table.Events.ID.EQ(sqlite.Int(eventID)).
					AND(table.Events.Status.EQ(sqlite.String(string(domain.EventActive)))),
			).
			ExecContext(ctx, tx)
		if err != nil {
			return domain.Match{}, err
		}

		match := convertMatchToDomain(matchRow)
		match.Participants = convertMatchParticipantsToDomain(created)
		return match, nil
	})
}

func (s *Storage) GetMatchByEvent(ctx context.Context, eventID int64) (domain.Match, error) {
	var matchRow model.EventMatches
	err := table.EventMatches.
		SELECT(table.EventMatches.AllColumns).
		FROM(table.EventMatches).
		WHERE(table.EventMatches.EventID.EQ(sqlite.Int(eventID))).
		QueryContext(ctx, s.db, &matchRow)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Match{}, storage.ErrNotFound
		}
		return domain.Match{}, err
	}
	var participantRows []model.MatchParticipants
	err = table.MatchParticipants.
		SELECT(table.MatchParticipants.AllColumns).
		FROM(table.MatchParticipants).
		WHERE(table.MatchParticipants.MatchID.EQ(sqlite.Int(int64(matchRow.ID)))).
		ORDER_BY(table.MatchParticipants.ID.ASC()).
		QueryContext(ctx, s.db, &participantRows)
	if err != nil {
		return domain.Match{}, err
	}
	match := convertMatchToDomain(matchRow)
	match.Participants = convertMatchParticipantsToDomain(participantRows)
	return match, nil
}

func (s *Storage) GetMatchParticipant(ctx context.Context, id int64) (domain.MatchParticipant, error) {
	var row model.MatchParticipants
	err := table.MatchParticipants.
		SELECT(table.MatchParticipants.AllColumns).
		FROM(table.MatchParticipants).
		WHERE(table.MatchParticipants.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.MatchParticipant{}, storage.ErrNotFound
		}
		return domain.MatchParticipant{}, err
	}
	return convertMatchParticipantToDomain(row), nil
}

func (s *Storage) SetPlayed(ctx context.Context, matchParticipantID int64, played bool) error {
	res, err := table.MatchParticipants.
		UPDATE(table.MatchParticipants.Played).
		SET(sqlite.Bool(played)).
		WHERE(table.MatchParticipants.ID.EQ(sqlite.Int(matchParticipantID))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) AddRating(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	row := convertRatingFromDomain(rating)
	var created model.RoleRatings
	err := table.RoleRatings.
		INSERT(
			table.RoleRatings.MatchParticipantID,
			table.RoleRatings.UserID,
			table.RoleRatings.Rating,
			table.RoleRatings.Comment,
			table.RoleRatings.RatedBy,
			table.RoleRatings.CreatedAt,
		).
		MODEL(row).
		RETURNING(table.RoleRatings.AllColumns).
		QueryContext(ctx, s.db, &created)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Rating{}, storage.ErrDuplicate
		}
		return domain.Rating{}, err
	}
	return convertRatingToDomain(created), nil
}

func (s *Storage) ListMatchRatings(ctx context.Context, matchID int64) ([]domain.Rating, error) {
	participantIDs := table.MatchParticipants.
		SELECT(table.MatchParticipants.ID).
		FROM(table.MatchParticipants).
		WHERE(table.MatchParticipants.MatchID.EQ(sqlite.Int(matchID)))

	var rows []model.RoleRatings
	err := table.RoleRatings.
		SELECT(table.RoleRatings.AllColumns).
		FROM(table.RoleRatings).
		WHERE(table.RoleRatings.MatchParticipantID.IN(participantIDs)).
		ORDER_BY(table.RoleRatings.CreatedAt.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	return convertRatingsToDomain(rows), nil
}
