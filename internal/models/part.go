package models

import (
	"time"

	"github.com/google/uuid"
)

type Part struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Number      string    `gorm:"uniqueIndex;not null" json:"number"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Rev         string    `json:"rev,omitempty"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

type Parts []*Part

// JobPart associates a part with a job at a quantity, optionally
// overriding the part's price, rev and details for that job only.
type JobPart struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;index:idx_job_part,priority:1;not null" json:"job_id"`
	PartID    uuid.UUID `gorm:"type:uuid;index:idx_job_part,priority:2;not null" json:"part_id"`
	Quantity  int64     `gorm:"not null;default:1" json:"quantity"`
	Price     *float64  `json:"price,omitempty"`
	Rev       string    `json:"rev,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Part *Part `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

type JobParts []*JobPart

// UnitPrice returns the job-specific price override when present,
// falling back to the part's base price.
func (jp *JobPart) UnitPrice() float64 {
	if jp.Price != nil {
		return *jp.Price
	}
	if jp.Part != nil {
		return jp.Part.Price
	}
	return 0
}
