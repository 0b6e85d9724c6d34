package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteStatus enumerates the acknowledgement states of a note.
// Transitions are not enforced: any status can be set directly.
type NoteStatus string

const (
	NoteStatusNew          NoteStatus = "new"
	NoteStatusAcknowledged NoteStatus = "acknowledged"
	NoteStatusDone         NoteStatus = "done"
)

type Note struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"job_id"`
	AdminID   uuid.UUID  `gorm:"type:uuid;index" json:"admin_id"`
	Content   string     `gorm:"not null" json:"content"`
	Status    NoteStatus `gorm:"type:text;not null;default:'new'" json:"status"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	Files []*UploadedFile `gorm:"foreignKey:NoteID" json:"files,omitempty"`
}

type Notes []*Note
