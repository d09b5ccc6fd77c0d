package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether the normalized email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// LockForSession takes a row lock on the user so session-cap checks serialize per user.
	LockForSession(ctx context.Context, id uuid.UUID) error

	// ListSummaries returns one page of users, each with the number of orders they placed.
	ListSummaries(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.UserSummary], error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
