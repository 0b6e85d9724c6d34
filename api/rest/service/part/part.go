package part

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

var (
	// ErrNumberRequired is returned when a create request has no
	// part number.
	ErrNumberRequired = errors.New("part number is required")
	// ErrNumberTaken is returned when the part number already exists.
	ErrNumberTaken = errors.New("part number already exists")
)

type Part interface {
	WithDatabase(*gorm.DB) Part
	List(*ListRequest) (models.Parts, int64, error)
	Get(uuid.UUID) (*models.Part, error)
	Create(*CreateRequest) (*models.Part, error)
	Update(uuid.UUID, *UpdateRequest) (*models.Part, error)
	Delete(uuid.UUID) error
}

type partService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Part {
	return &partService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (p *partService) WithDatabase(conn *gorm.DB) Part {
	p.db = conn
	return p
}

type ListRequest struct {
	Limit   uint64
	Offset  uint64
	OrderBy []string
	Number  string
}

func (p *partService) List(req *ListRequest) (models.Parts, int64, error) {
	var (
		parts = make(models.Parts, 0)
		total int64
		q     = p.db.WithContext(p.ctx).Model(&models.Part{})
	)

	if req.Number != "" {
		q = q.Where("number = ?", req.Number)
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

	return parts, total, q.Find(&parts).Error
}

func (p *partService) Get(id uuid.UUID) (*models.Part, error) {
	var (
		part = &models.Part{}
		q    = p.db.WithContext(p.ctx)
	)

	return part, q.First(part, "id = ?", id).Error
}

type CreateRequest struct {
	Number      string  `json:"number"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Rev         string  `json:"rev,omitempty"`
	Details     string  `json:"details,omitempty"`
}

func (p *partService) Create(req *CreateRequest) (*models.Part, error) {
	if req.Number == "" {
		return nil, ErrNumberRequired
	}

	q := p.db.WithContext(p.ctx)

	var count int64
	if err := q.Model(&models.Part{}).Where("number = ?", req.Number).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNumberTaken
	}

	part := &models.Part{
		ID:          uuid.New(),
		Number:      req.Number,
		Description: req.Description,
		Price:       req.Price,
		Rev:         req.Rev,
		Details:     req.Details,
	}

	return part, q.Create(part).Error
}

type UpdateRequest struct {
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Rev         *string  `json:"rev,omitempty"`
	Details     *string  `json:"details,omitempty"`
}

func (p *partService) Update(id uuid.UUID, req *UpdateRequest) (*models.Part, error) {
	part := &models.Part{}
	q := p.db.WithContext(p.ctx)

	if err := q.First(part, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Description != nil {
		updates["description"] = *req.Description
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
		return part, nil
	}

	if err := q.Model(part).Updates(updates).Error; err != nil {
		return nil, err
	}

	return part, q.First(part, "id = ?", id).Error
}

// Delete removes a part and everything hanging off it. Tasks go
// first, then uploaded files, then the part row, so foreign key
// dependencies are satisfied.
func (p *partService) Delete(id uuid.UUID) error {
	return p.db.WithContext(p.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Part{}, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("part_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("part_id = ?", id).Delete(&models.UploadedFile{}).Error; err != nil {
			return err
		}

		if err := tx.Where("part_id = ?", id).Delete(&models.JobPart{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Part{}, "id = ?", id).Error
	})
}
