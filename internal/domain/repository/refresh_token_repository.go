package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores signed-in sessions by the hash of their refresh token.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash returns ErrRefreshTokenExpired for a stored but expired session.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends one session. ErrRefreshTokenNotFound when nothing matched.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredRefreshTokens purges expired sessions and reports how many went.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)

	// CountActiveSessionsByUserID counts the user's unexpired sessions.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
