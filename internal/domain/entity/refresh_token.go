package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one signed-in session. The raw token is handed to the client once;
// only its SHA-256 hash is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
