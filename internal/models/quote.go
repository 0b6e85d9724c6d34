package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quote is a public quote request captured before any job exists.
// Fields holds the free-form form payload submitted by the requester.
type Quote struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Company   string            `gorm:"not null" json:"company"`
	Contact   string            `json:"contact,omitempty"`
	Email     string            `gorm:"not null" json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Details   string            `json:"details,omitempty"`
	Fields    datatypes.JSONMap `gorm:"type:json" json:"fields,omitempty"`
	CreatedAt time.Time         `gorm:"not null" json:"created_at"`
}

type Quotes []*Quote
