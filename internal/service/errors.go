package service

import "errors"

// Sentinel errors returned to callers. Frontends match on these to pick
// a user-facing reply, so storage details never leak upward.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrAlreadyCompleted    = errors.New("event already completed")
	ErrEventClosed         = errors.New("event is completed")
	ErrAlreadyJoined       = errors.New("already joined this event")
	ErrNotJoined           = errors.New("not joined this event")
	ErrLineupFixed         = errors.New("lineup already fixed")
	ErrNoLineup            = errors.New("lineup is not fixed yet")
	ErrTooFewPlayers       = errors.New("not enough players")
	ErrParticipantNotFound = errors.New("match participant not found")
	ErrInvalidScore        = errors.New("score must be between 1 and 5")
	ErrSelfRating          = errors.New("cannot rate own participation")
	ErrDuplicateRating     = errors.New("participant already rated by this user")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrTitleTooShort       = errors.New("title is too short")
	ErrStartInPast         = errors.New("start time is in the past")
)
