// Package file stores uploaded attachments in-row, linked to either
// a note or a part.
package file

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/metrics"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

var (
	// ErrNoTarget is returned when an upload names neither a note
	// nor a part.
	ErrNoTarget = errors.New("upload requires a note_id or a part_id")
	// ErrTwoTargets is returned when an upload names both.
	ErrTwoTargets = errors.New("upload cannot target both a note and a part")
	// ErrEmpty is returned for zero-byte uploads.
	ErrEmpty = errors.New("uploaded file is empty")
)

type File interface {
	WithDatabase(*gorm.DB) File
	Get(uuid.UUID) (*models.UploadedFile, error)
	Upload(*UploadRequest) (*models.UploadedFile, error)
	Delete(uuid.UUID) error
}

type fileService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) File {
	return &fileService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (f *fileService) WithDatabase(conn *gorm.DB) File {
	f.db = conn
	return f
}

func (f *fileService) Get(id uuid.UUID) (*models.UploadedFile, error) {
	var (
		file = &models.UploadedFile{}
		q    = f.db.WithContext(f.ctx)
	)

	return file, q.First(file, "id = ?", id).Error
}

type UploadRequest struct {
	NoteID   *uuid.UUID
	PartID   *uuid.UUID
	Filename string
	MimeType string
	Content  []byte
}

func (f *fileService) Upload(req *UploadRequest) (*models.UploadedFile, error) {
	switch {
	case req.NoteID == nil && req.PartID == nil:
		return nil, ErrNoTarget
	case req.NoteID != nil && req.PartID != nil:
		return nil, ErrTwoTargets
	case len(req.Content) == 0:
		return nil, ErrEmpty
	}

	q := f.db.WithContext(f.ctx)

	if req.NoteID != nil {
		if err := q.First(&models.Note{}, "id = ?", req.NoteID).Error; err != nil {
			return nil, err
		}
	}
	if req.PartID != nil {
		if err := q.First(&models.Part{}, "id = ?", req.PartID).Error; err != nil {
			return nil, err
		}
	}

	file := &models.UploadedFile{
		ID:       uuid.New(),
		NoteID:   req.NoteID,
		PartID:   req.PartID,
		Filename: req.Filename,
		MimeType: req.MimeType,
		Content:  req.Content,
		Size:     int64(len(req.Content)),
	}

	if err := q.Create(file).Error; err != nil {
		return nil, err
	}

	metrics.FileUploadBytes.Observe(float64(file.Size))

	return file, nil
}

func (f *fileService) Delete(id uuid.UUID) error {
	result := f.db.WithContext(f.ctx).Delete(&models.UploadedFile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
