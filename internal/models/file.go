package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadedFile stores attachment content in-row, linked to either
// a note or a part.
type UploadedFile struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NoteID    *uuid.UUID `gorm:"type:uuid;index" json:"note_id,omitempty"`
	PartID    *uuid.UUID `gorm:"type:uuid;index" json:"part_id,omitempty"`
	Filename  string     `gorm:"not null" json:"filename"`
	MimeType  string     `gorm:"not null" json:"mime_type"`
	Content   []byte     `gorm:"not null" json:"-"`
	Size      int64      `gorm:"not null" json:"size"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

type UploadedFiles []*UploadedFile
