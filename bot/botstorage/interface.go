package botstorage

import (
	"context"
	"errors"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/notify"
)

var ErrNotFound = errors.New("not found")

type BotStorage interface {
	// UpsertUser inserts the user or refreshes the stored names.
	UpsertUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUsers(ctx context.Context, ids []int64) ([]model.User, error)
	Log(ctx context.Context, user model.User, msg string) error

	// SaveRegistration keeps at most one lane registration per user,
	// replacing the previous one.
	SaveRegistration(ctx context.Context, reg model.Registration) error
	GetRegistration(ctx context.Context, userID int64) (model.Registration, error)
	ListRegistrations(ctx context.Context, userIDs []int64) ([]model.Registration, error)

	// Recipients implements the scheduler's user directory.
	Recipients(ctx context.Context, userIDs []int64) ([]notify.Recipient, error)
}
