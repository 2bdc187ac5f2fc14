package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrLinkUsed       = errors.New("magic link already used")
	ErrLinkExpired    = errors.New("magic link expired")
	ErrInvalidSession = errors.New("invalid session")
)

// User is an authenticated account, identified by e-mail only. There are no
// passwords anywhere in the system.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// MagicLink is a single-use sign-in token delivered by e-mail.
type MagicLink struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
}
