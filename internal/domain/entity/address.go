package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressType says what an address is used for.
type AddressType string

const (
	AddressTypeShipping AddressType = "SHIPPING"
	AddressTypeBilling  AddressType = "BILLING"
	AddressTypeBoth     AddressType = "BOTH"
)

// Address is a postal address owned by a user. Orders reference it for shipping and billing.
type Address struct {
	ID         uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	UserID     uuid.UUID   // Owner of the address.
	Street     string      // Street line.
	City       string      // City or locality.
	State      string      // State, province or region.
	PostalCode string      // Postal or ZIP code.
	Country    string      // Country name.
	Type       AddressType // SHIPPING, BILLING or BOTH.
	IsDefault  bool        // Whether this is the user's default address.
	CreatedAt  time.Time   // Timestamp of when this address was created.
	UpdatedAt  time.Time   // Timestamp of the last modification.
}
