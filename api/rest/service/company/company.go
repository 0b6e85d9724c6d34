package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

var (
	// ErrCodeRequired is returned when a create request has no code.
	ErrCodeRequired = errors.New("company code is required")
	// ErrCodeTaken is returned when the company code already exists.
	ErrCodeTaken = errors.New("company code already exists")
)

type Company interface {
	WithDatabase(*gorm.DB) Company
	List(*ListRequest) (models.Companies, int64, error)
	Get(uuid.UUID) (*models.Company, error)
	Create(*CreateRequest) (*models.Company, error)
	Update(uuid.UUID, *UpdateRequest) (*models.Company, error)
	Delete(uuid.UUID) error
}

type companyService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Company {
	return &companyService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (c *companyService) WithDatabase(conn *gorm.DB) Company {
	c.db = conn
	return c
}

type ListRequest struct {
	Limit   uint64
	Offset  uint64
	OrderBy []string
}

func (c *companyService) List(req *ListRequest) (models.Companies, int64, error) {
	var (
		companies = make(models.Companies, 0)
		total     int64
		q         = c.db.WithContext(c.ctx).Model(&models.Company{})
	)

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

	return companies, total, q.Find(&companies).Error
}

func (c *companyService) Get(id uuid.UUID) (*models.Company, error) {
	var (
		company = &models.Company{}
		q       = c.db.WithContext(c.ctx)
	)

	return company, q.First(company, "id = ?", id).Error
}

type CreateRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
}

func (c *companyService) Create(req *CreateRequest) (*models.Company, error) {
	if req.Code == "" {
		return nil, ErrCodeRequired
	}

	q := c.db.WithContext(c.ctx)

	var count int64
	if err := q.Model(&models.Company{}).Where("code = ?", req.Code).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCodeTaken
	}

	company := &models.Company{
		ID:       uuid.New(),
		Code:     req.Code,
		Name:     req.Name,
		Address1: req.Address1,
		Address2: req.Address2,
	}

	return company, q.Create(company).Error
}

type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Address1 *string `json:"address1,omitempty"`
	Address2 *string `json:"address2,omitempty"`
}

func (c *companyService) Update(id uuid.UUID, req *UpdateRequest) (*models.Company, error) {
	company := &models.Company{}
	q := c.db.WithContext(c.ctx)

	if err := q.First(company, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address1 != nil {
		updates["address1"] = *req.Address1
	}
	if req.Address2 != nil {
		updates["address2"] = *req.Address2
	}

	if len(updates) == 0 {
		return company, nil
	}

	if err := q.Model(company).Updates(updates).Error; err != nil {
		return nil, err
	}

	return company, q.First(company, "id = ?", id).Error
}

func (c *companyService) Delete(id uuid.UUID) error {
	result := c.db.WithContext(c.ctx).Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
