package note

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

var (
	// ErrContentRequired is returned when a note has no content.
	ErrContentRequired = errors.New("note content is required")
	// ErrBadStatus is returned for statuses outside new/acknowledged/done.
	ErrBadStatus = errors.New("invalid note status")
)

type Note interface {
	WithDatabase(*gorm.DB) Note
	List(*ListRequest) (models.Notes, int64, error)
	Get(uuid.UUID) (*models.Note, error)
	Create(*CreateRequest) (*models.Note, error)
	Update(uuid.UUID, *UpdateRequest) (*models.Note, error)
	Delete(uuid.UUID) error
}

type noteService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Note {
	return &noteService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (n *noteService) WithDatabase(conn *gorm.DB) Note {
	n.db = conn
	return n
}

func validStatus(status models.NoteStatus) bool {
	switch status {
	case models.NoteStatusNew, models.NoteStatusAcknowledged, models.NoteStatusDone:
		return true
	}
	return false
}

type ListRequest struct {
	Limit   uint64
	Offset  uint64
	OrderBy []string
	JobID   string
	Status  models.NoteStatus
}

func (n *noteService) List(req *ListRequest) (models.Notes, int64, error) {
	var (
		notes = make(models.Notes, 0)
		total int64
		q     = n.db.WithContext(n.ctx).Model(&models.Note{})
	)

	if req.JobID != "" {
		if _, err := uuid.Parse(req.JobID); err != nil {
			return nil, 0, err
		}

		q = q.Where("job_id = ?", req.JobID)
	}

	if req.Status != "" {
		if !validStatus(req.Status) {
			return nil, 0, ErrBadStatus
		}

		q = q.Where("status = ?", req.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, orderBy := range req.OrderBy {
		q = q.Order(orderBy)
	}

	if req.Limit > 0 {
		q = q.Limit(int(req.Limit))
	}

	if req.Offset > 0 {
		q = q.Offset(int(req.Offset))
	}

	return notes, total, q.Preload("Files").Find(&notes).Error
}

func (n *noteService) Get(id uuid.UUID) (*models.Note, error) {
	var (
		note = &models.Note{}
		q    = n.db.WithContext(n.ctx)
	)

	return note, q.Preload("Files").First(note, "id = ?", id).Error
}

type CreateRequest struct {
	JobID   uuid.UUID `json:"job_id"`
	AdminID uuid.UUID `json:"-"`
	Content string    `json:"content"`
}

func (n *noteService) Create(req *CreateRequest) (*models.Note, error) {
	if req.Content == "" {
		return nil, ErrContentRequired
	}

	q := n.db.WithContext(n.ctx)

	if err := q.First(&models.Job{}, "id = ?", req.JobID).Error; err != nil {
		return nil, err
	}

	note := &models.Note{
		ID:      uuid.New(),
		JobID:   req.JobID,
		AdminID: req.AdminID,
		Content: req.Content,
		Status:  models.NoteStatusNew,
	}

	return note, q.Create(note).Error
}

type UpdateRequest struct {
	Content *string            `json:"content,omitempty"`
	Status  *models.NoteStatus `json:"status,omitempty"`
}

// Update writes content and/or status. Status transitions are not
// restricted: any state may be set from any other.
func (n *noteService) Update(id uuid.UUID, req *UpdateRequest) (*models.Note, error) {
	note := &models.Note{}
	q := n.db.WithContext(n.ctx)

	if err := q.First(note, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, ErrContentRequired
		}
		updates["content"] = *req.Content
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrBadStatus
		}
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return note, nil
	}

	if err := q.Model(note).Updates(updates).Error; err != nil {
		return nil, err
	}

	return note, q.First(note, "id = ?", id).Error
}

func (n *noteService) Delete(id uuid.UUID) error {
	return n.db.WithContext(n.ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Note{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("note_id = ?", id).Delete(&models.UploadedFile{}).Error
	})
}
