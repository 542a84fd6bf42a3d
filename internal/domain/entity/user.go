// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity shared by buyers and sellers. Account and
// credential management live outside this core; only the identity fields the
// marketplace needs are modeled here.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email.
	Name      string    // The user's display name.
	Profile   *Profile  // The user's marketplace profile. Nil until created.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Profile holds the marketplace-facing data of a user: the name shown on
// listings and the two owned addresses that drive location features.
type Profile struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	FullName        string    // Full name shown as the seller name on listings.
	BillingAddress  *Address  // The billing address. Nil until created.
	ShippingAddress *Address  // The shipping address. Nil until created.
	UpdatedAt       time.Time // Timestamp of the last modification.
}

// AddressOfKind returns the owned address of the given kind, or nil.
func (p *Profile) AddressOfKind(kind AddressKind) *Address {
	switch kind {
	case AddressKindBilling:
		return p.BillingAddress
	case AddressKindShipping:
		return p.ShippingAddress
	default:
		return nil
	}
}
