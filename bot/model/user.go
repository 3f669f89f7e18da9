package model

import (
	"strconv"
	"time"

	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/google/uuid"
)

type UserRole int

const (
	RoleAdmin UserRole = 1
	RoleUser  UserRole = 2
)

// User is a Telegram account known to the bot. Role is derived from the
// configured admin list on every update, it is not persisted.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Role UserRole
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName prefers the username mention, falls back to the first
// name.
func (u User) DisplayName() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return strconv.FormatInt(u.ID, 10)
}

func (u User) Actor() domain.Actor {
	return domain.Actor{
		ID:      u.ID,
		Name:    u.DisplayName(),
		IsAdmin: u.IsAdmin(),
	}
}

// Registration is a user's declared lane preference, at most one per
// user. MlID is the in-game account id, zero when not provided.
type Registration struct {
	ID        uuid.UUID
	UserID    int64
	Role      domain.Role
	MlID      int64
	CreatedAt time.Time
}
