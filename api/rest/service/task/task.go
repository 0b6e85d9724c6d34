package task

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

// ErrDescriptionRequired is returned when a task has no description.
var ErrDescriptionRequired = errors.New("task description is required")

type Task interface {
	WithDatabase(*gorm.DB) Task
	List(*ListRequest) (models.Tasks, int64, error)
	Create(*CreateRequest) (*models.Task, error)
	Update(uuid.UUID, *UpdateRequest) (*models.Task, error)
	Delete(uuid.UUID) error
}

type taskService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Task {
	return &taskService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (t *taskService) WithDatabase(conn *gorm.DB) Task {
	t.db = conn
	return t
}

type ListRequest struct {
	Limit   uint64
	Offset  uint64
	OrderBy []string
	PartID  string
}

func (t *taskService) List(req *ListRequest) (models.Tasks, int64, error) {
	var (
		tasks = make(models.Tasks, 0)
		total int64
		q     = t.db.WithContext(t.ctx).Model(&models.Task{})
	)

	if req.PartID != "" {
		if _, err := uuid.Parse(req.PartID); err != nil {
			return nil, 0, err
		}

		q = q.Where("part_id = ?", req.PartID)
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

	return tasks, total, q.Find(&tasks).Error
}

type CreateRequest struct {
	PartID      uuid.UUID `json:"part_id"`
	Description string    `json:"description"`
}

func (t *taskService) Create(req *CreateRequest) (*models.Task, error) {
	if req.Description == "" {
		return nil, ErrDescriptionRequired
	}

	q := t.db.WithContext(t.ctx)

	if err := q.First(&models.Part{}, "id = ?", req.PartID).Error; err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		PartID:      req.PartID,
		Description: req.Description,
	}

	return task, q.Create(task).Error
}

type UpdateRequest struct {
	Description *string `json:"description,omitempty"`
	Done        *bool   `json:"done,omitempty"`
}

func (t *taskService) Update(id uuid.UUID, req *UpdateRequest) (*models.Task, error) {
	task := &models.Task{}
	q := t.db.WithContext(t.ctx)

	if err := q.First(task, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Done != nil {
		updates["done"] = *req.Done
	}

	if len(updates) == 0 {
		return task, nil
	}

	if err := q.Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}

	return task, q.First(task, "id = ?", id).Error
}

func (t *taskService) Delete(id uuid.UUID) error {
	result := t.db.WithContext(t.ctx).Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
