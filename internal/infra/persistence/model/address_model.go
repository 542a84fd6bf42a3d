package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The (profile, kind) pair is unique: a profile owns at most one billing and
// one shipping address. Latitude and Longitude are nullable and only ever
// written together.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_addresses_on_profile_kind"`
	Kind        string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_addresses_on_profile_kind"`
	HouseNumber string    `gorm:"type:varchar(20)"`
	StreetName  string    `gorm:"type:varchar(255)"`
	TownSuburb  string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(255)"`
	State       string    `gorm:"type:varchar(255)"`
	PostalCode  string    `gorm:"type:varchar(20)"`
	CountryCode string    `gorm:"type:varchar(2)"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
