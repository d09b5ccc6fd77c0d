// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Customers and administrators share this shape and differ only by Role.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	FirstName    string    // Given name.
	LastName     string    // Family name.
	Email        string    // Unique login identifier, stored lower-cased.
	PasswordHash string    // bcrypt hash of the user's password.
	Phone        string    // Optional contact number.
	Role         Role      // CUSTOMER or ADMIN.
	Enabled      bool      // Disabled accounts cannot log in.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// FullName joins the name parts, skipping empty ones.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lower-cases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserSummary is an admin listing row: the user plus how many orders they placed.
type UserSummary struct {
	User        *User
	TotalOrders int64
}
