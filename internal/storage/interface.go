package storage

import (
	"context"
	"errors"
	"time"

	"github.com/AVick23/ML-Manager/internal/domain"
)

// Storage implementations map driver errors to these sentinels so the
// service layer never inspects constraint names.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

type EventStorage interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	ListUpcoming(ctx context.Context) ([]domain.Event, error)
	// ListDue returns events inside the notification window that were not
	// notified yet, completed events excluded.
	ListDue(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.EventStatus) error
	// MarkNotified flips the notified flag exactly once. A second call for
	// the same event returns ErrNotFound.
	MarkNotified(ctx context.Context, id int64, at time.Time) error
	// DeleteEvent removes the event and cascades to participants, the
	// match, its participants and their ratings in a single transaction.
	DeleteEvent(ctx context.Context, id int64) error

	AddParticipant(ctx context.Context, eventID, userID int64) (int, error)
	RemoveParticipant(ctx context.Context, eventID, userID int64) (int, error)
	ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error)
}

type MatchStorage interface {
	// CreateMatch persists the frozen lineup and flips the event to
	// lineup_fixed atomically. A second lineup for the same event returns
	// ErrDuplicate.
	CreateMatch(ctx context.Context, eventID int64, participants []domain.MatchParticipant) (domain.Match, error)
	GetMatchByEvent(ctx context.Context, eventID int64) (domain.Match, error)
	GetMatchParticipant(ctx context.Context, id int64) (domain.MatchParticipant, error)
	SetPlayed(ctx context.Context, matchParticipantID int64, played bool) error
}

type RatingStorage interface {
	AddRating(ctx context.Context, rating domain.Rating) (domain.Rating, error)
	ListMatchRatings(ctx context.Context, matchID int64) ([]domain.Rating, error)
}
