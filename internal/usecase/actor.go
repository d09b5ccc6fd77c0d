package usecase

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsAdmin reports whether the caller holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(entity.RoleAdmin)
}
