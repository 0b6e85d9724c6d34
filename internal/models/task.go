package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PartID      uuid.UUID `gorm:"type:uuid;index;not null" json:"part_id"`
	Description string    `gorm:"not null" json:"description"`
	Done        bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

type Tasks []*Task
