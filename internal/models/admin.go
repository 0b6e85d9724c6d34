package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessLevel enumerates the role tiers carried in a JWT.
type AccessLevel int

const (
	// AccessUnapproved is a freshly registered admin awaiting approval.
	AccessUnapproved AccessLevel = 0
	// AccessClient is a client-portal login bound to a company.
	AccessClient AccessLevel = 1
	// AccessStaff is shop staff with read/write on jobs and parts.
	AccessStaff AccessLevel = 2
	// AccessManager can manage admins and financial fields.
	AccessManager AccessLevel = 3
)

type Admin struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	AccessLevel  AccessLevel `gorm:"not null;default:0" json:"access_level"`
	CompanyID    *uuid.UUID  `gorm:"type:uuid;index" json:"company_id,omitempty"`
	GoogleID     string      `json:"-"`
	GoogleToken  string      `json:"-"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

type Admins []*Admin
