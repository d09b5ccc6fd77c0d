// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a customer account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens along with the authenticated user.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// RefreshToken issues a new access token. The refresh token itself is returned unchanged.
	RefreshToken(ctx context.Context, refreshToken string) (*AuthOutput, error)
	Logout(ctx context.Context, refreshToken string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// CreateAdmin provisions an administrator account. It is only reachable from the operations CLI.
	CreateAdmin(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// PruneExpiredSessions deletes expired refresh tokens and reports how many were removed.
	PruneExpiredSessions(ctx context.Context) (int64, error)
}
