package domain

import "time"

type EventStatus string

const (
	EventActive      EventStatus = "active"
	EventLineupFixed EventStatus = "lineup_fixed"
	EventCompleted   EventStatus = "completed"
)

// Event is a scheduled group game players sign up for.
type Event struct {
	ID         int64
	Title      string
	StartsAt   time.Time
	Status     EventStatus
	NotifiedAt *time.Time
	CreatedAt  time.Time
}

// Notified reports whether the start call-up was already sent.
func (e Event) Notified() bool {
	return e.NotifiedAt != nil
}

type Participant struct {
	EventID  int64
	UserID   int64
	JoinedAt time.Time
}

type Team string

const (
	TeamRed       Team = "red"
	TeamBlue      Team = "blue"
	TeamSpectator Team = "spectator"
)

// Match is the frozen lineup of an event, created at most once.
type Match struct {
	ID           int64
	EventID      int64
	CreatedAt    time.Time
	Participants []MatchParticipant
}

type MatchParticipant struct {
	ID      int64
	MatchID int64
	UserID  int64
	Team    Team
	Role    Role
	Played  bool
}

// Rating is one 1..5 score given to a match participation by a rater.
// Ratings are append only, one per (participant, rater).
type Rating struct {
	ID                 int64
	MatchParticipantID int64
	UserID             int64
	Score              int
	Comment            string
	RatedBy            int64
	CreatedAt          time.Time
}

const (
	MinScore = 1
	MaxScore = 5
)

// Actor is the authenticated caller supplied by the identity provider.
type Actor struct {
	ID      int64
	Name    string
	IsAdmin bool
}
