package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/AVick23/ML-Manager/bot/botstorage"
	dbmodel "github.com/AVick23/ML-Manager/bot/gen/model"
	"github.com/AVick23/ML-Manager/bot/gen/table"
	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/cache/mem"
	"github.com/AVick23/ML-Manager/internal/config"
	"github.com/AVick23/ML-Manager/internal/domain"
	sqlite3 "github.com/AVick23/ML-Manager/internal/migrate"
	"github.com/AVick23/ML-Manager/internal/notify"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db    *sql.DB
	users *mem.Cache
	log   *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithField("name", "bot-storage")
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:    db,
		users: mem.New(),
		log:   log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) UpsertUser(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now()
	user.UpdatedAt = now
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	var dbuser dbmodel.Users
	err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		ON_CONFLICT(table.Users.ID).
		DO_UPDATE(sqlite.SET(
			table.Users.FirstName.SET(table.Users.EXCLUDED.FirstName),
			table.Users.LastName.SET(table.Users.EXCLUDED.LastName),
			table.Users.Username.SET(table.Users.EXCLUDED.Username),
			table.Users.UpdatedAt.SET(sqlite.TimestampT(now)),
		)).
		RETURNING(table.Users.AllColumns).
		QueryContext(ctx, s.db, &dbuser)
	if err != nil {
		return model.User{}, err
	}
	converted := convertUserToDomain(dbuser)
	s.users.Put(converted)
	converted.Role = user.Role
	return converted, nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (model.User, error) {
	if user, ok := s.users.Get(id); ok {
		return user, nil
	}
	var dbuser dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &dbuser)
	if errors.Is(err, qrm.ErrNoRows) {
		return model.User{}, botstorage.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	user := convertUserToDomain(dbuser)
	s.users.Put(user)
	return user, nil
}

func (s *Storage) GetUsers(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	converted, misses := s.users.GetMany(ids)
	if len(misses) == 0 {
		return converted, nil
	}
	var dbusers []dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.IN(toExprList(misses)...)).
		QueryContext(ctx, s.db, &dbusers)
	if err != nil {
		return nil, err
	}
	for _, u := range dbusers {
		user := convertUserToDomain(u)
		s.users.Put(user)
		converted = append(converted, user)
	}
	return converted, nil
}

func (s *Storage) Log(ctx context.Context, user model.User, msg string) error {
	message := dbmodel.CommandLog{
		UserID:    user.ID,
		Message:   msg,
		CreatedAt: time.Now(),
	}
	_, err := table.CommandLog.
		INSERT(table.CommandLog.UserID, table.CommandLog.Message, table.CommandLog.CreatedAt).
		MODEL(message).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) SaveRegistration(ctx context.Context, reg model.Registration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now()
	}
	_, err := table.RoleRegistrations.
		INSERT(table.RoleRegistrations.AllColumns).
		MODEL(convertRegistrationFromDomain(reg)).
		ON_CONFLICT(table.RoleRegistrations.UserID).
		DO_UPDATE(sqlite.SET(
			table.RoleRegistrations.Role.SET(sqlite.String(string(reg.Role))),
			table.RoleRegistrations.MlID.SET(table.RoleRegistrations.EXCLUDED.MlID),
		)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) GetRegistration(ctx context.Context, userID int64) (model.Registration, error) {
	var reg dbmodel.RoleRegistrations
	err := table.RoleRegistrations.
		SELECT(table.RoleRegistrations.AllColumns).
		FROM(table.RoleRegistrations).
		WHERE(table.RoleRegistrations.UserID.EQ(sqlite.Int(userID))).
		QueryContext(ctx, s.db, &reg)
	if errors.Is(err, qrm.ErrNoRows) {
		return model.Registration{}, botstorage.ErrNotFound
	}
	if err != nil {
		return model.Registration{}, err
	}
	return convertRegistrationToDomain(reg)
}

func (s *Storage) ListRegistrations(ctx context.Context, userIDs []int64) ([]model.Registration, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var regs []dbmodel.RoleRegistrations
	err := table.RoleRegistrations.
		SELECT(table.RoleRegistrations.AllColumns).
		FROM(table.RoleRegistrations).
		WHERE(table.RoleRegistrations.UserID.IN(toExprList(userIDs)...)).
		QueryContext(ctx, s.db, &regs)
	if err != nil {
		return nil, err
	}
	converted := make([]model.Registration, 0, len(regs))
	for _, reg := range regs {
		r, err := convertRegistrationToDomain(reg)
		if err != nil {
			return nil, err
		}
		converted = append(converted, r)
	}
	return converted, nil
}

// Recipients builds mentionable call-up entries for the given users.
// Unknown ids are skipped, in-game ids come from the lane registry.
func (s *Storage) Recipients(ctx context.Context, userIDs []int64) ([]notify.Recipient, error) {
	users, err := s.GetUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	regs, err := s.ListRegistrations(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	mlIDs := make(map[int64]int64, len(regs))
	for _, reg := range regs {
		mlIDs[reg.UserID] = reg.MlID
	}
	recipients := make([]notify.Recipient, 0, len(users))
	for _, u := range users {
		r := notify.Recipient{Mention: u.DisplayName()}
		if id := mlIDs[u.ID]; id != 0 {
			r.MlID = strconv.FormatInt(id, 10)
		}
		recipients = append(recipients, r)
	}
	return recipients, nil
}

func toExprList(ids []int64) []sqlite.Expression {
	exprs := make([]sqlite.Expression, 0, len(ids))
	for _, id := range ids {
		exprs = append(exprs, sqlite.Int(id))
	}
	return exprs
}

func convertUserFromDomain(user model.User) dbmodel.Users {
	converted := dbmodel.Users{
		ID:        user.ID,
		FirstName: user.FirstName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.LastName != "" {
		lastName := user.LastName
		converted.LastName = &lastName
	}
	if user.Username != "" {
		username := user.Username
		converted.Username = &username
	}
	return converted
}

func convertUserToDomain(user dbmodel.Users) model.User {
	converted := model.User{
		ID:        user.ID,
		FirstName: user.FirstName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Role:      model.RoleUser,
	}
	if user.LastName != nil {
		converted.LastName = *user.LastName
	}
	if user.Username != nil {
		converted.Username = *user.Username
	}
	return converted
}

func convertRegistrationFromDomain(reg model.Registration) dbmodel.RoleRegistrations {
	converted := dbmodel.RoleRegistrations{
		ID:        reg.ID.String(),
		UserID:    reg.UserID,
		Role:      string(reg.Role),
		CreatedAt: reg.CreatedAt,
	}
	if reg.MlID != 0 {
		mlID := reg.MlID
		converted.MlID = &mlID
	}
	return converted
}

func convertRegistrationToDomain(reg dbmodel.RoleRegistrations) (model.Registration, error) {
	id, err := uuid.Parse(reg.ID)
	if err != nil {
		return model.Registration{}, err
	}
	converted := model.Registration{
		ID:        id,
		UserID:    reg.UserID,
		Role:      domain.Role(reg.Role),
		CreatedAt: reg.CreatedAt,
	}
	if reg.MlID != nil {
		converted.MlID = *reg.MlID
	}
	return converted, nil
}
