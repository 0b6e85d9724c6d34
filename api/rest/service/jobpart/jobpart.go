// Package jobpart manages the join between jobs and parts: which
// parts a job includes, at what quantity, and any job-specific
// price/rev/details overrides.
package jobpart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

type JobPart interface {
	WithDatabase(*gorm.DB) JobPart
	ListByJob(uuid.UUID) (models.JobParts, error)
	Add(uuid.UUID, *AddRequest) (*models.JobPart, error)
	Update(jobID, partID uuid.UUID, req *UpdateRequest) (*models.JobPart, error)
	Remove(jobID, partID uuid.UUID) error
}

type jobPartService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) JobPart {
	return &jobPartService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (s *jobPartService) WithDatabase(conn *gorm.DB) JobPart {
	s.db = conn
	return s
}

func (s *jobPartService) ListByJob(jobID uuid.UUID) (models.JobParts, error) {
	var (
		parts = make(models.JobParts, 0)
		q     = s.db.WithContext(s.ctx)
	)

	return parts, q.Preload("Part").Where("job_id = ?", jobID).Find(&parts).Error
}

type AddRequest struct {
	PartID   uuid.UUID `json:"part_id"`
	Quantity int64     `json:"quantity"`
	Price    *float64  `json:"price,omitempty"`
	Rev      string    `json:"rev,omitempty"`
	Details  string    `json:"details,omitempty"`
}

func (s *jobPartService) Add(jobID uuid.UUID, req *AddRequest) (*models.JobPart, error) {
	q := s.db.WithContext(s.ctx)

	if err := q.First(&models.Job{}, "id = ?", jobID).Error; err != nil {
		return nil, err
	}
	if err := q.First(&models.Part{}, "id = ?", req.PartID).Error; err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	jp := &models.JobPart{
		ID:       uuid.New(),
		JobID:    jobID,
		PartID:   req.PartID,
		Quantity: quantity,
		Price:    req.Price,
		Rev:      req.Rev,
		Details:  req.Details,
	}

	return jp, q.Create(jp).Error
}

type UpdateRequest struct {
	Quantity *int64   `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Rev      *string  `json:"rev,omitempty"`
	Details  *string  `json:"details,omitempty"`
}

func (s *jobPartService) Update(jobID, partID uuid.UUID, req *UpdateRequest) (*models.JobPart, error) {
	jp := &models.JobPart{}
	q := s.db.WithContext(s.ctx)

	if err := q.First(jp, "job_id = ? AND part_id = ?", jobID, partID).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Rev != nil {
		updates["rev"] = *req.Rev
	}
	if req.Details != nil {
		updates["details"] = *req.Details
	}

	if len(updates) == 0 {
		return jp, nil
	}

	if err := q.Model(jp).Updates(updates).Error; err != nil {
		return nil, err
	}

	return jp, q.First(jp, "id = ?", jp.ID).Error
}

func (s *jobPartService) Remove(jobID, partID uuid.UUID) error {
	result := s.db.WithContext(s.ctx).
		Where("job_id = ? AND part_id = ?", jobID, partID).
		Delete(&models.JobPart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
